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
    `strings`

    `github.com/vmkit/lirtrace/flow`
)

// Trace is a maximal linear sequence of basic blocks, scheduled and
// register-allocated as a unit. Traces are immutable once built.
type Trace struct {
    Id int
    Bb []*flow.BasicBlock
}

func (self *Trace) Size() int {
    return len(self.Bb)
}

func (self *Trace) First() *flow.BasicBlock {
    return self.Bb[0]
}

func (self *Trace) Last() *flow.BasicBlock {
    return self.Bb[len(self.Bb) - 1]
}

func (self *Trace) String() string {
    nb := len(self.Bb)
    buf := make([]string, 0, nb)

    /* add every block */
    for _, bb := range self.Bb {
        buf = append(buf, bb.String())
    }

    /* join them together */
    return fmt.Sprintf(
        "T%d [%s]",
        self.Id,
        strings.Join(buf, " "),
    )
}

// TrivialPredicate classifies traces that later passes may handle with
// a cheaper allocation strategy.
type TrivialPredicate func(t *Trace) bool

// IsTrivialTrace is the default TrivialPredicate: a single block that
// belongs to no loop.
func IsTrivialTrace(t *Trace) bool {
    return t.Size() == 1 && t.First().LoopId == flow.NoLoop
}

// BuilderResult is the complete partition of a graph into traces. Every
// block belongs to exactly one trace, and the trace containing the
// designated start block is always trace 0.
type BuilderResult struct {
    traces  []*Trace
    mapping []*Trace
    trivial TrivialPredicate
}

func newBuilderResult(nb int, trivial TrivialPredicate) *BuilderResult {
    if trivial == nil {
        trivial = IsTrivialTrace
    }
    return &BuilderResult {
        traces  : make([]*Trace, 0, nb),
        mapping : make([]*Trace, nb),
        trivial : trivial,
    }
}

/* add registers the trace under the next trace id, numbers its blocks
 * and records the block-to-trace mapping */
func (self *BuilderResult) add(t *Trace) {
    t.Id = len(self.traces)
    self.traces = append(self.traces, t)

    /* claim every block */
    for i, bb := range t.Bb {
        if self.mapping[bb.Id] != nil {
            panic(fmt.Sprintf("lirtrace: bb_%d assigned to multiple traces", bb.Id))
        }
        self.mapping[bb.Id] = t
        bb.LinearScanNumber = i
    }
}

// Traces lists all traces in discovery order, which is also id order.
func (self *BuilderResult) Traces() []*Trace {
    return self.traces
}

func (self *BuilderResult) NumTraces() int {
    return len(self.traces)
}

// TraceOf resolves the trace owning the block.
func (self *BuilderResult) TraceOf(bb *flow.BasicBlock) *Trace {
    return self.mapping[bb.Id]
}

// IsTrivial applies the configured trivial-trace predicate.
func (self *BuilderResult) IsTrivial(t *Trace) bool {
    return self.trivial(t)
}

func (self *BuilderResult) String() string {
    nb := len(self.traces)
    buf := make([]string, 0, nb)

    /* add every trace */
    for _, t := range self.traces {
        buf = append(buf, t.String())
    }

    /* join them together */
    return fmt.Sprintf(
        "BuilderResult {\n    %s\n}",
        strings.Join(buf, "\n    "),
    )
}
