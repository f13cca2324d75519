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

/* _FreqHeap is a binary heap keyed by (-frequency, block id), so equal
 * frequencies always pop in ascending id order */
type _FreqHeap []*flow.BasicBlock

func (self _FreqHeap) Len() int {
    return len(self)
}

func (self _FreqHeap) Less(i int, j int) bool {
    a, b := self[i], self[j]
    return a.Freq > b.Freq || (a.Freq == b.Freq && a.Id < b.Id)
}

func (self _FreqHeap) Swap(i int, j int) {
    self[i], self[j] = self[j], self[i]
}

func (self *_FreqHeap) Push(v interface{}) {
    *self = append(*self, v.(*flow.BasicBlock))
}

func (self *_FreqHeap) Pop() interface{} {
    old := *self
    ret := old[len(old) - 1]
    *self = old[:len(old) - 1]
    return ret
}
