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
    `testing`

    `github.com/stretchr/testify/require`
)

func TestBuilder_Build(t *testing.T) {
    p := CreateBuilder()
    p.Block(0, 1.0)
    p.Block(1, 0.9)
    p.Block(2, 0.1)
    p.Block(3, 1.0)
    p.Edge(0, 1)
    p.Edge(0, 2)
    p.Edge(1, 3)
    p.Edge(2, 3)
    g, err := p.Build()
    require.NoError(t, err)
    require.Equal(t, 4, g.NumBlocks())
    require.Same(t, g.Blocks[0], g.Root)
    require.Equal(t, []*BasicBlock { g.Blocks[1], g.Blocks[2] }, g.Blocks[0].Succ)
    require.Equal(t, []*BasicBlock { g.Blocks[1], g.Blocks[2] }, g.Blocks[3].Pred)
    for _, bb := range g.Blocks {
        require.Equal(t, -1, bb.LinearScanNumber)
        require.Equal(t, NoLoop, bb.LoopId)
    }
}

func TestBuilder_Validation(t *testing.T) {
    p := CreateBuilder()
    _, err := p.Build()
    require.EqualError(t, err, "GraphError: empty graph")

    /* sparse block ids */
    p = CreateBuilder()
    p.Block(0, 1.0)
    p.Block(5, 1.0)
    _, err = p.Build()
    require.Error(t, err)

    /* negative frequency */
    p = CreateBuilder()
    p.Block(0, -1.0)
    _, err = p.Build()
    require.EqualError(t, err, "GraphError(bb_0): negative relative frequency -1")

    /* dangling edge */
    p = CreateBuilder()
    p.Block(0, 1.0)
    p.Edge(0, 7)
    _, err = p.Build()
    require.EqualError(t, err, "GraphError(bb_7): edge to an undeclared block")

    /* duplicate edge */
    p = CreateBuilder()
    p.Block(0, 1.0)
    p.Block(1, 1.0)
    p.Edge(0, 1)
    p.Edge(0, 1)
    _, err = p.Build()
    require.EqualError(t, err, "GraphError(bb_0): duplicate edge to bb_1")

    /* undeclared root */
    p = CreateBuilder()
    p.Block(0, 1.0)
    p.Root(3)
    _, err = p.Build()
    require.EqualError(t, err, "GraphError(bb_3): undeclared root block")
}

func TestAnnotateLoops_Simple(t *testing.T) {
    p := CreateBuilder()
    p.Block(0, 1.0)
    p.Block(1, 9.0)
    p.Block(2, 9.0)
    p.Block(3, 1.0)
    p.Edge(0, 1)
    p.Edge(1, 2)
    p.Edge(2, 1)
    p.Edge(2, 3)
    g, err := p.Build()
    require.NoError(t, err)
    require.Equal(t, 1, AnnotateLoops(g))

    /* loop is {1, 2}, headed by 1, closed by 2 */
    require.True(t, g.Blocks[1].LoopHeader)
    require.True(t, g.Blocks[2].LoopEnd)
    require.Equal(t, 0, g.Blocks[1].LoopId)
    require.Equal(t, 0, g.Blocks[2].LoopId)
    require.Equal(t, NoLoop, g.Blocks[0].LoopId)
    require.Equal(t, NoLoop, g.Blocks[3].LoopId)
    require.True(t, BackEdge(g.Blocks[2], g.Blocks[1]))
    require.False(t, BackEdge(g.Blocks[1], g.Blocks[2]))
}

func TestAnnotateLoops_SelfLoop(t *testing.T) {
    p := CreateBuilder()
    p.Block(0, 1.0)
    p.Block(1, 5.0)
    p.Edge(0, 1)
    p.Edge(1, 1)
    g, err := p.Build()
    require.NoError(t, err)
    require.Equal(t, 1, AnnotateLoops(g))
    require.True(t, g.Blocks[1].LoopHeader)
    require.True(t, g.Blocks[1].LoopEnd)
    require.True(t, BackEdge(g.Blocks[1], g.Blocks[1]))
}

func TestAnnotateLoops_Nested(t *testing.T) {
    p := CreateBuilder()
    p.Block(0, 1.0)
    p.Block(1, 4.0)
    p.Block(2, 16.0)
    p.Block(3, 4.0)
    p.Block(4, 1.0)
    p.Edge(0, 1)
    p.Edge(1, 2)
    p.Edge(2, 2)
    p.Edge(2, 3)
    p.Edge(3, 1)
    p.Edge(3, 4)
    g, err := p.Build()
    require.NoError(t, err)
    require.Equal(t, 2, AnnotateLoops(g))

    /* inner self loop on 2, outer loop 1..3 */
    require.True(t, g.Blocks[2].LoopHeader)
    require.True(t, g.Blocks[2].LoopEnd)
    require.True(t, g.Blocks[1].LoopHeader)
    require.True(t, g.Blocks[3].LoopEnd)
    require.Equal(t, g.Blocks[1].LoopId, g.Blocks[3].LoopId)
    require.True(t, BackEdge(g.Blocks[2], g.Blocks[2]))
    require.True(t, BackEdge(g.Blocks[3], g.Blocks[1]))
    require.False(t, BackEdge(g.Blocks[2], g.Blocks[1]))
}

func TestAnnotateLoops_Rerun(t *testing.T) {
    p := CreateBuilder()
    p.Block(0, 1.0)
    p.Block(1, 1.0)
    p.Edge(0, 1)
    p.Edge(1, 0)
    g, err := p.Build()
    require.NoError(t, err)
    require.Equal(t, 1, AnnotateLoops(g))
    require.Equal(t, 1, AnnotateLoops(g))
    require.True(t, g.Blocks[0].LoopHeader)
    require.True(t, g.Blocks[1].LoopEnd)
}

func TestNormalizeFrequencies(t *testing.T) {
    p := CreateBuilder()
    p.Block(0, 10.0)
    p.Block(1, 40.0)
    p.Block(2, 0.0)
    p.Edge(0, 1)
    p.Edge(1, 2)
    g, err := p.Build()
    require.NoError(t, err)
    NormalizeFrequencies(g)
    require.Equal(t, 0.25, g.Blocks[0].Freq)
    require.Equal(t, 1.0, g.Blocks[1].Freq)
    require.Equal(t, 0.0, g.Blocks[2].Freq)

    /* a never executed graph stays untouched */
    p = CreateBuilder()
    p.Block(0, 0.0)
    g, err = p.Build()
    require.NoError(t, err)
    NormalizeFrequencies(g)
    require.Equal(t, 0.0, g.Blocks[0].Freq)
}
