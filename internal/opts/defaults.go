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

package opts

import (
	"os"

	"github.com/vmkit/lirtrace/trace"
)

// DefaultStrategy is the trace building strategy used when no option
// overrides it. It can be configured with the `LIRTRACE_STRATEGY`
// environment variable, accepting "single", "uni" or "bi".
var DefaultStrategy = parseOrDefault("LIRTRACE_STRATEGY", trace.UniDirectional)

func parseOrDefault(key string, def trace.Strategy) trace.Strategy {
	switch env := os.Getenv(key); env {
	case "":
		return def
	case "single":
		return trace.SingleBlock
	case "uni":
		return trace.UniDirectional
	case "bi":
		return trace.BiDirectional
	default:
		panic("lirtrace: invalid value for " + key)
	}
}
