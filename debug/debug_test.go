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
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmkit/lirtrace/flow"
	"github.com/vmkit/lirtrace/trace"
)

func TestGetStats(t *testing.T) {
	before := GetStats()

	p := flow.CreateBuilder()
	p.Block(0, 1.0)
	p.Block(1, 0.5)
	p.Block(2, 0.5)
	p.Edge(0, 1)
	p.Edge(0, 2)
	g, err := p.Build()
	require.NoError(t, err)

	trace.SingleBlockBuilder{}.Build(g, g.Root, nil)
	after := GetStats()
	require.Equal(t, before.Units+1, after.Units)
	require.Equal(t, before.Traces+3, after.Traces)
	require.Equal(t, before.Trivial+3, after.Trivial)
}
