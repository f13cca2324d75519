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
    `os`

    `github.com/ajstarks/svgo`
)

const (
    _CellW = 96
    _CellH = 28
    _PadX  = 24
    _PadY  = 48
)

// DrawTraces renders the trace layout as an SVG file, one column per
// trace, blocks top to bottom in linear scan order. Loop headers are
// stroked, hotter blocks are darker.
func DrawTraces(fn string, ret *BuilderResult) {
    maxb := 0
    maxf := 0.0

    /* measure the layout */
    for _, t := range ret.traces {
        if t.Size() > maxb {
            maxb = t.Size()
        }
        for _, bb := range t.Bb {
            if bb.Freq > maxf {
                maxf = bb.Freq
            }
        }
    }

    /* open the output file */
    fp, err := os.OpenFile(fn, os.O_RDWR | os.O_CREATE | os.O_TRUNC, 0644)
    if err != nil {
        panic(err)
    }

    /* canvas with one column per trace */
    p := svg.New(fp)
    p.Start(len(ret.traces) * (_CellW + _PadX) + _PadX, maxb * _CellH + 2 * _PadY)

    /* draw every trace */
    for i, t := range ret.traces {
        x := _PadX + i * (_CellW + _PadX)
        p.Text(x, _PadY - 12, fmt.Sprintf("T%d", t.Id), "fill:gray;font-size:14px;font-family:monospace")

        /* draw every block, shaded by relative hotness */
        for j, bb := range t.Bb {
            y := _PadY + j * _CellH
            shade := 235
            if maxf > 0 {
                shade = 235 - int(bb.Freq / maxf * 120)
            }
            style := fmt.Sprintf("fill:rgb(%d,%d,255)", shade, shade)
            if bb.LoopHeader {
                style += ";stroke:black;stroke-width:2"
            }
            p.Rect(x, y, _CellW, _CellH - 4, style)
            p.Text(x + 6, y + _CellH - 12, fmt.Sprintf("%s #%d", bb, bb.LinearScanNumber), "fill:black;font-size:13px;font-family:monospace")
        }
    }

    /* flush the image */
    p.End()
    if err = fp.Close(); err != nil {
        panic(err)
    }
}
