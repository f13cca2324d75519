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
    `strings`
)

// NoLoop marks a block that does not belong to any loop.
const NoLoop = -1

// BasicBlock is a single node of the control flow graph. Ids are dense
// and zero-based, so they index directly into per-block side tables.
type BasicBlock struct {
    Id         int
    Pred       []*BasicBlock
    Succ       []*BasicBlock
    Freq       float64
    LoopId     int
    LoopHeader bool
    LoopEnd    bool

    /* position of this block within its trace, assigned by the trace
     * builder, -1 before any builder has run */
    LinearScanNumber int
}

func (self *BasicBlock) String() string {
    return fmt.Sprintf("bb_%d", self.Id)
}

// BackEdge checks whether the edge (from, to) is a loop back edge, that
// is an edge from a loop's exiting block to its own header.
func BackEdge(from *BasicBlock, to *BasicBlock) bool {
    return from.LoopEnd && to.LoopHeader && from.LoopId == to.LoopId
}

// Graph is a finalized control flow graph. Blocks is indexed by block
// id, Root is the designated entry block.
type Graph struct {
    Root   *BasicBlock
    Blocks []*BasicBlock
}

func (self *Graph) NumBlocks() int {
    return len(self.Blocks)
}

func (self *Graph) String() string {
    nb := len(self.Blocks)
    buf := make([]string, 0, nb)

    /* print each block with its successors */
    for _, bb := range self.Blocks {
        ss := make([]string, 0, len(bb.Succ))
        for _, sv := range bb.Succ {
            ss = append(ss, sv.String())
        }
        buf = append(buf, fmt.Sprintf("%s(%g) -> {%s}", bb, bb.Freq, strings.Join(ss, ", ")))
    }

    /* join them together */
    return fmt.Sprintf(
        "Graph {\n    %s\n}",
        strings.Join(buf, "\n    "),
    )
}
