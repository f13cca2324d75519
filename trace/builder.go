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
    `fmt`

    `github.com/vmkit/lirtrace/flow`
)

// Strategy selects the block-grouping heuristic. It is a compiler
// configuration decision, made once per compilation tier rather than
// per compilation unit.
type Strategy uint8

const (
    SingleBlock Strategy = iota
    UniDirectional
    BiDirectional
)

func (self Strategy) String() string {
    switch self {
        case SingleBlock    : return "single"
        case UniDirectional : return "uni"
        case BiDirectional  : return "bi"
        default             : return fmt.Sprintf("Strategy(%d)", uint8(self))
    }
}

// Builder partitions a finalized block graph into an ordered list of
// traces. All strategies produce results with identical invariants,
// they differ only in how blocks are grouped.
type Builder interface {
    Build(g *flow.Graph, start *flow.BasicBlock, trivial TrivialPredicate) *BuilderResult
}

func NewBuilder(s Strategy) Builder {
    switch s {
        case SingleBlock    : return SingleBlockBuilder{}
        case UniDirectional : return UniDirectionalBuilder{}
        case BiDirectional  : return BiDirectionalBuilder{}
        default             : panic("lirtrace: invalid strategy: " + s.String())
    }
}

func blockreverse(s []*flow.BasicBlock) {
    for i, j := 0, len(s) - 1; i < j; i, j = i + 1, j - 1 {
        s[i], s[j] = s[j], s[i]
    }
}
