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
    `github.com/vmkit/lirtrace/flow`
)

// SingleBlockBuilder is the degenerate strategy: every block forms its
// own trace. It serves as the baseline builder and as the reference for
// checking partition invariants independent of any scheduling
// heuristics.
type SingleBlockBuilder struct{}

func (self SingleBlockBuilder) Build(g *flow.Graph, start *flow.BasicBlock, trivial TrivialPredicate) *BuilderResult {
    ret := newBuilderResult(g.NumBlocks(), trivial)
    ret.add(&Trace { Bb: []*flow.BasicBlock { start } })

    /* remaining blocks in id order */
    for _, bb := range g.Blocks {
        if bb != start {
            ret.add(&Trace { Bb: []*flow.BasicBlock { bb } })
        }
    }

    /* record the statistics */
    countResult(ret)
    return ret
}
