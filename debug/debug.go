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

package debug

import (
	"sync/atomic"

	"github.com/vmkit/lirtrace/trace"
)

// A Stats records statistics about the trace builder.
type Stats struct {
	Units   int
	Traces  int
	Trivial int
}

// GetStats returns cumulative statistics over all builds so far.
func GetStats() Stats {
	return Stats{
		Units:   int(atomic.LoadInt64(&trace.UnitCount)),
		Traces:  int(atomic.LoadInt64(&trace.TraceCount)),
		Trivial: int(atomic.LoadInt64(&trace.TrivialCount)),
	}
}
