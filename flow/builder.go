/*
 * Copyright 2023 VMKit Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package flow

import (
    `fmt`
)

type _Edge struct {
    from int
    to   int
}

// Builder assembles a Graph block by block. Frequencies and loop
// annotations can also be attached after Build, the graph only becomes
// immutable once handed to a trace builder.
type Builder struct {
    root   int
    edges  []_Edge
    blocks map[int]float64
}

func CreateBuilder() *Builder {
    return &Builder {
        root   : 0,
        blocks : make(map[int]float64),
    }
}

// Block declares the block id with the given relative frequency.
func (self *Builder) Block(id int, freq float64) {
    self.blocks[id] = freq
}

// Edge declares a control flow edge between two declared blocks.
func (self *Builder) Edge(from int, to int) {
    self.edges = append(self.edges, _Edge { from, to })
}

// Root sets the designated entry block, it defaults to block 0.
func (self *Builder) Root(id int) {
    self.root = id
}

func (self *Builder) checkBlocks() error {
    for id, freq := range self.blocks {
        if id < 0 || id >= len(self.blocks) {
            return GraphError { Block: id, Reason: fmt.Sprintf("block ids are not dense, %d of %d blocks", id, len(self.blocks)) }
        } else if freq < 0 {
            return GraphError { Block: id, Reason: fmt.Sprintf("negative relative frequency %g", freq) }
        }
    }
    return nil
}

func (self *Builder) checkEdges(seen map[_Edge]bool) error {
    for _, e := range self.edges {
        if _, ok := self.blocks[e.from]; !ok {
            return GraphError { Block: e.from, Reason: "edge from an undeclared block" }
        } else if _, ok = self.blocks[e.to]; !ok {
            return GraphError { Block: e.to, Reason: "edge to an undeclared block" }
        } else if seen[e] {
            return GraphError { Block: e.from, Reason: fmt.Sprintf("duplicate edge to bb_%d", e.to) }
        } else {
            seen[e] = true
        }
    }
    return nil
}

// Build validates the declarations and produces the graph, deriving
// predecessor lists from the declared successor edges.
func (self *Builder) Build() (*Graph, error) {
    nb := len(self.blocks)
    ed := make(map[_Edge]bool, len(self.edges))

    /* validate the blocks and edges */
    if nb == 0 {
        return nil, GraphError { Block: -1, Reason: "empty graph" }
    } else if err := self.checkBlocks(); err != nil {
        return nil, err
    } else if err = self.checkEdges(ed); err != nil {
        return nil, err
    }

    /* validate the root block */
    if _, ok := self.blocks[self.root]; !ok {
        return nil, GraphError { Block: self.root, Reason: "undeclared root block" }
    }

    /* allocate the block arena */
    ret := make([]*BasicBlock, nb)
    for id, freq := range self.blocks {
        ret[id] = &BasicBlock {
            Id               : id,
            Freq             : freq,
            LoopId           : NoLoop,
            LinearScanNumber : -1,
        }
    }

    /* connect the blocks in edge declaration order */
    for _, e := range self.edges {
        ret[e.from].Succ = append(ret[e.from].Succ, ret[e.to])
        ret[e.to].Pred = append(ret[e.to].Pred, ret[e.from])
    }

    /* construct the graph */
    return &Graph {
        Root   : ret[self.root],
        Blocks : ret,
    }, nil
}
