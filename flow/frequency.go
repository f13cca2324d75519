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
    `gonum.org/v1/gonum/floats`
)

// NormalizeFrequencies rescales raw profile counts into relative
// frequencies in [0, 1], with the hottest block at 1. Graphs that are
// never executed (all counts zero) are left untouched.
func NormalizeFrequencies(g *Graph) {
    nb := g.NumBlocks()
    fv := make([]float64, nb)

    /* collect the raw counts */
    for i, bb := range g.Blocks {
        fv[i] = bb.Freq
    }

    /* nothing to scale on a cold graph */
    max := floats.Max(fv)
    if max == 0 {
        return
    }

    /* scale and write back */
    floats.Scale(1 / max, fv)
    for i, bb := range g.Blocks {
        bb.Freq = fv[i]
    }
}
