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

package lirtrace

import (
	"github.com/vmkit/lirtrace/internal/opts"
	"github.com/vmkit/lirtrace/trace"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithStrategy selects the trace building strategy.
//
// This is a compiler configuration decision: pick it once per
// compilation tier, not per compilation unit.
//
// The default is trace.UniDirectional, or the value of the
// `LIRTRACE_STRATEGY` environment variable if set.
func WithStrategy(s trace.Strategy) Option {
	switch s {
	case trace.SingleBlock, trace.UniDirectional, trace.BiDirectional:
		return func(o *opts.Options) { o.Strategy = s }
	default:
		panic("lirtrace: invalid strategy: " + s.String())
	}
}

// WithTrivialPredicate overrides the rule classifying traces that the
// register allocator may handle with a cheaper allocation strategy.
//
// The default considers a trace trivial when it holds a single block
// that belongs to no loop.
func WithTrivialPredicate(p trace.TrivialPredicate) Option {
	return func(o *opts.Options) { o.Trivial = p }
}

// WithDebugDump makes BuildTraces dump the built result to stderr.
func WithDebugDump(v bool) Option {
	return func(o *opts.Options) { o.DebugDump = v }
}
