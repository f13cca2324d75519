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

package trace

import (
    `sort`

    `github.com/oleiade/lane`
    `github.com/vmkit/lirtrace/flow`
)

// BiDirectionalBuilder grows every trace around a seed block in both
// directions: backward through unscheduled non-back-edge predecessors
// to the natural head of the region, then forward through unscheduled
// successors to the tail. Seeds pop from a single worklist sorted once
// by descending frequency, so traces cluster around the hot paths
// without requiring full readiness ordering.
type BiDirectionalBuilder struct{}

/* selectPred picks the hottest unprocessed predecessor not reached
 * through a back edge, ties go to the lowest block id */
func (self BiDirectionalBuilder) selectPred(vis _BitVec, bb *flow.BasicBlock) *flow.BasicBlock {
    var nx *flow.BasicBlock
    for _, p := range bb.Pred {
        if !vis.test(p.Id) && !flow.BackEdge(p, bb) {
            if nx == nil || p.Freq > nx.Freq || (p.Freq == nx.Freq && p.Id < nx.Id) {
                nx = p
            }
        }
    }
    return nx
}

/* selectSucc picks the hottest unprocessed successor, the forward walk
 * may legitimately follow any edge, back edges included */
func (self BiDirectionalBuilder) selectSucc(vis _BitVec, bb *flow.BasicBlock) *flow.BasicBlock {
    var nx *flow.BasicBlock
    for _, sv := range bb.Succ {
        if !vis.test(sv.Id) {
            if nx == nil || sv.Freq > nx.Freq || (sv.Freq == nx.Freq && sv.Id < nx.Id) {
                nx = sv
            }
        }
    }
    return nx
}

func (self BiDirectionalBuilder) Build(g *flow.Graph, start *flow.BasicBlock, trivial TrivialPredicate) *BuilderResult {
    nb := g.NumBlocks()
    vis := newBitVec(nb)
    ret := newBuilderResult(nb, trivial)

    /* order the seeds hottest first, ties by ascending block id; the
     * entry block always seeds first so that trace 0 leads with it */
    seeds := make([]*flow.BasicBlock, 0, nb)
    for _, bb := range g.Blocks {
        if bb != start {
            seeds = append(seeds, bb)
        }
    }
    sort.SliceStable(seeds, func(i int, j int) bool {
        return seeds[i].Freq > seeds[j].Freq
    })

    /* load the worklist */
    wl := lane.NewDeque()
    wl.Append(start)
    for _, bb := range seeds {
        wl.Append(bb)
    }

    /* drain the worklist */
    for !wl.Empty() {
        seed := wl.Shift().(*flow.BasicBlock)

        /* already absorbed by an earlier trace */
        if vis.test(seed.Id) {
            continue
        }

        /* walk backward to the head of the region, blocks are found in
         * reverse, so flip them before growing the tail; the entry
         * block is already the natural head of its own trace and never
         * walks backward, nothing may schedule in front of it */
        vis.set(seed.Id)
        tr := []*flow.BasicBlock { seed }
        if seed != start {
            for bb := self.selectPred(vis, seed); bb != nil; bb = self.selectPred(vis, bb) {
                vis.set(bb.Id)
                tr = append(tr, bb)
            }
            blockreverse(tr)
        }

        /* walk forward to the tail */
        for bb := self.selectSucc(vis, seed); bb != nil; bb = self.selectSucc(vis, bb) {
            vis.set(bb.Id)
            tr = append(tr, bb)
        }
        ret.add(&Trace { Bb: tr })
    }

    /* record the statistics */
    countResult(ret)
    return ret
}
