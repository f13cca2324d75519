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
    `fmt`
)

// GraphError occures when a control flow graph fails validation.
type GraphError struct {
    Block  int
    Reason string
}

func (self GraphError) Error() string {
    if self.Block < 0 {
        return fmt.Sprintf("GraphError: %s", self.Reason)
    } else {
        return fmt.Sprintf("GraphError(bb_%d): %s", self.Block, self.Reason)
    }
}
