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
    `github.com/oleiade/lane`
)

const (
    _S_white uint8 = iota
    _S_grey
    _S_black
)

type _LoopFrame struct {
    bb  *BasicBlock
    idx int
}

type _BackRef struct {
    from *BasicBlock
    to   *BasicBlock
}

// AnnotateLoops computes natural loop annotations for the graph: every
// edge that retreats to a block on the current DFS path marks its target
// a loop header and its source a loop end. Loop ids are assigned to
// headers in discovery order, loop bodies are claimed innermost first.
// Callers that already carry loop information from an earlier pass set
// the flags directly and skip this entirely.
//
// It returns the number of loops found.
func AnnotateLoops(g *Graph) int {
    nb := g.NumBlocks()
    vis := make([]uint8, nb)
    ids := make([]int, nb)
    ret := make([]_BackRef, 0, nb)

    /* reset all annotations */
    for _, bb := range g.Blocks {
        ids[bb.Id] = NoLoop
        bb.LoopId, bb.LoopHeader, bb.LoopEnd = NoLoop, false, false
    }

    /* depth-first traversal from the root */
    st := lane.NewStack()
    st.Push(&_LoopFrame { bb: g.Root })
    vis[g.Root.Id] = _S_grey

    /* scan until the stack is empty */
    for !st.Empty() {
        fr := st.Head().(*_LoopFrame)

        /* all successors visited, retire the block */
        if fr.idx >= len(fr.bb.Succ) {
            vis[fr.bb.Id] = _S_black
            st.Pop()
            continue
        }

        /* advance to the next successor */
        nx := fr.bb.Succ[fr.idx]
        fr.idx++

        /* a grey target is an ancestor on the DFS path, so this is a back edge */
        if vis[nx.Id] == _S_white {
            vis[nx.Id] = _S_grey
            st.Push(&_LoopFrame { bb: nx })
        } else if vis[nx.Id] == _S_grey {
            ret = append(ret, _BackRef { from: fr.bb, to: nx })
        }
    }

    /* number the loop headers in discovery order */
    loops := 0
    for _, e := range ret {
        if ids[e.to.Id] == NoLoop {
            ids[e.to.Id] = loops
            e.to.LoopId = loops
            e.to.LoopHeader = true
            loops++
        }
    }

    /* claim the loop bodies, walking backward from each loop end up to
     * the header; the first loop to reach a block keeps it */
    for _, e := range ret {
        id := ids[e.to.Id]
        mk := make(map[int]bool, nb)

        /* walk with an explicit worklist */
        q := lane.NewQueue()
        q.Enqueue(e.from)
        mk[e.to.Id] = true

        /* claim every block that reaches the loop end without crossing the header */
        for !q.Empty() {
            bb := q.Dequeue().(*BasicBlock)
            if !mk[bb.Id] {
                mk[bb.Id] = true
                if bb.LoopId == NoLoop {
                    bb.LoopId = id
                }
                for _, p := range bb.Pred {
                    q.Enqueue(p)
                }
            }
        }
    }

    /* pin the loop ends onto their header's loop so that back edge
     * classification stays coherent even across nested loops */
    for _, e := range ret {
        e.from.LoopEnd = true
        e.from.LoopId = ids[e.to.Id]
    }
    return loops
}
