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

// Package lirtrace partitions a method's control flow graph into an
// ordered sequence of traces, the linear code regions that drive
// instruction scheduling and linear scan register allocation further
// down the backend.
//
// The graph is built once per compilation unit with flow.CreateBuilder
// (or assembled directly), handed to BuildTraces, and the result is
// consumed read-only by the downstream passes:
//
//	res, err := lirtrace.BuildTraces(g, 0, lirtrace.WithStrategy(trace.BiDirectional))
package lirtrace

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/vmkit/lirtrace/flow"
	"github.com/vmkit/lirtrace/internal/opts"
	"github.com/vmkit/lirtrace/trace"
)

// BuildTraces partitions the graph into traces with the configured
// strategy, starting from the designated entry block.
//
// Caller mistakes (nil or empty graph, start id out of range) are
// reported as flow.GraphError. A graph whose predecessor ordering is
// broken upstream makes the builder panic instead: that is a compiler
// bug, and the compilation of this unit cannot proceed.
func BuildTraces(g *flow.Graph, start int, options ...Option) (*trace.BuilderResult, error) {
	opt := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&opt)
	}

	/* validate the inputs */
	if g == nil || g.NumBlocks() == 0 {
		return nil, flow.GraphError{Block: -1, Reason: "empty graph"}
	}
	if start < 0 || start >= g.NumBlocks() {
		return nil, flow.GraphError{Block: start, Reason: "start block out of range"}
	}

	/* run the configured strategy */
	entry := g.Blocks[start]
	ret := trace.NewBuilder(opt.Strategy).Build(g, entry, opt.Trivial)

	/* every builder upholds this by construction */
	if ret.Traces()[0].First() != entry {
		panic("lirtrace: start block does not lead the first trace")
	}

	/* dump the result when asked to */
	if opt.DebugDump {
		spew.Fdump(os.Stderr, ret)
	}
	return ret, nil
}
