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

/* _BitVec is a dense bit vector over block ids */
type _BitVec []uint64

func newBitVec(nb int) _BitVec {
    return make(_BitVec, (nb + 63) / 64)
}

func (self _BitVec) set(i int) {
    self[i >> 6] |= 1 << (i & 63)
}

func (self _BitVec) test(i int) bool {
    return self[i >> 6] & (1 << (i & 63)) != 0
}

/* _BlockState is the builder-local side table of per-block scratch
 * state; it never outlives a single Build call, so the shared graph
 * carries no builder fields */
type _BlockState struct {
    processed _BitVec
    blocked   []int32
}

func newBlockState(nb int) *_BlockState {
    return &_BlockState {
        processed : newBitVec(nb),
        blocked   : make([]int32, nb),
    }
}
