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
    `sync/atomic`
)

/* cumulative build counters, read by the debug package; builds of
 * different units may run on different goroutines, hence the atomics */
var (
    UnitCount    int64
    TraceCount   int64
    TrivialCount int64
)

func countResult(ret *BuilderResult) {
    nt := int64(0)
    for _, t := range ret.traces {
        if ret.trivial(t) {
            nt++
        }
    }
    atomic.AddInt64(&UnitCount, 1)
    atomic.AddInt64(&TraceCount, int64(len(ret.traces)))
    atomic.AddInt64(&TrivialCount, nt)
}
