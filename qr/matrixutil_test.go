/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFunctionPatternNoCollisionForVersion7(t *testing.T) {
	// Version 7's alignment center list is [6, 22, 38]; (22, 6) sits on
	// the horizontal timing row, so alignment patterns must be embedded
	// before timing fills still-empty cells, not after.
	m, err := buildFunctionPattern(7)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty(22, 6))
}

func TestBuildFunctionPatternLeavesOnlyDataCellsEmpty(t *testing.T) {
	m, err := buildFunctionPattern(1)
	require.NoError(t, err)

	emptyCount := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.IsEmpty(x, y) {
				emptyCount++
			}
		}
	}
	assert.True(t, emptyCount > 0)
}

func TestEmbedDarkDotAtLeftBottomCorner(t *testing.T) {
	m, err := buildFunctionPattern(1)
	require.NoError(t, err)
	assert.Equal(t, int8(1), m.Get(8, m.Height()-8))
}

func TestEmbedTypeInfoFillsAllFifteenCoordinates(t *testing.T) {
	m, err := buildFunctionPattern(1)
	require.NoError(t, err)
	require.NoError(t, embedTypeInfo(Low, 0, m))

	for _, c := range typeInfoCoordinates {
		assert.False(t, m.IsEmpty(c[0], c[1]))
	}
}

func TestEmbedVersionInfoNoopBelowVersion7(t *testing.T) {
	m, err := buildFunctionPattern(6)
	require.NoError(t, err)
	require.NoError(t, embedVersionInfo(6, m))
	// No version-info strip is written for version < 7; the cells it
	// would occupy in larger versions remain whatever buildFunctionPattern left.
	assert.True(t, m.IsEmpty(m.Width()-11, 0))
	assert.True(t, m.IsEmpty(0, m.Height()-11))
}

func TestBCHRoundTrip(t *testing.T) {
	bch := BCH(5, typeInfoPoly)
	assert.True(t, bch >= 0 && bch < 1<<10)
}
