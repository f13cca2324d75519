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
    `container/heap`
    `fmt`

    `github.com/vmkit/lirtrace/flow`
)

// UniDirectionalBuilder grows every trace forward only. A block becomes
// a trace head once all of its non-back-edge predecessors have been
// assigned to a trace, and the trace extends with the hottest ready
// unprocessed successor at each step. Back edges never contribute to
// readiness, so loop headers unblock as soon as the paths into the loop
// are scheduled.
type UniDirectionalBuilder struct{}

/* unblock decrements the readiness count of every forward successor,
 * pushing the ones that just became ready */
func (self UniDirectionalBuilder) unblock(st *_BlockState, wl *_FreqHeap, bb *flow.BasicBlock) {
    for _, nx := range bb.Succ {
        if !st.processed.test(nx.Id) && !flow.BackEdge(bb, nx) {
            if st.blocked[nx.Id]--; st.blocked[nx.Id] == 0 {
                heap.Push(wl, nx)
            }
        }
    }
}

/* selectNext picks the hottest ready unprocessed successor, breaking
 * frequency ties by ascending block id */
func (self UniDirectionalBuilder) selectNext(st *_BlockState, bb *flow.BasicBlock) *flow.BasicBlock {
    var nx *flow.BasicBlock
    for _, sv := range bb.Succ {
        if !st.processed.test(sv.Id) && st.blocked[sv.Id] == 0 {
            if nx == nil || sv.Freq > nx.Freq || (sv.Freq == nx.Freq && sv.Id < nx.Id) {
                nx = sv
            }
        }
    }
    return nx
}

func (self UniDirectionalBuilder) Build(g *flow.Graph, start *flow.BasicBlock, trivial TrivialPredicate) *BuilderResult {
    nb := g.NumBlocks()
    st := newBlockState(nb)
    ret := newBuilderResult(nb, trivial)

    /* count the non-back-edge predecessors of every block, back edges
     * must never block readiness or loop headers would wait forever */
    for _, bb := range g.Blocks {
        for _, p := range bb.Pred {
            if !flow.BackEdge(p, bb) {
                st.blocked[bb.Id]++
            }
        }
    }

    /* the method entry is ready by definition */
    wl := new(_FreqHeap)
    heap.Push(wl, start)

    /* drain the worklist */
    for wl.Len() != 0 {
        seed := heap.Pop(wl).(*flow.BasicBlock)

        /* duplicate entries are tolerated, not an error */
        if st.processed.test(seed.Id) {
            continue
        }

        /* a head with unscheduled forward predecessors means the CFG
         * ordering upstream is broken, there is no way to recover */
        if st.blocked[seed.Id] != 0 && seed != start {
            panic(fmt.Sprintf("lirtrace: bb_%d scheduled before its predecessors", seed.Id))
        }

        /* grow the trace forward from the head */
        tr := make([]*flow.BasicBlock, 0, 4)
        for bb := seed; bb != nil; bb = self.selectNext(st, bb) {
            st.processed.set(bb.Id)
            tr = append(tr, bb)
            self.unblock(st, wl, bb)
        }
        ret.add(&Trace { Bb: tr })
    }

    /* blocks never becoming ready are unreachable from the entry, each
     * one still gets a deterministic singleton trace of its own */
    for _, bb := range g.Blocks {
        if !st.processed.test(bb.Id) {
            st.processed.set(bb.Id)
            ret.add(&Trace { Bb: []*flow.BasicBlock { bb } })
        }
    }

    /* record the statistics */
    countResult(ret)
    return ret
}
