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

	"github.com/grkuntzmd/barcodegen/common"
)

func TestCalculatePenaltyAllDarkIsExpensive(t *testing.T) {
	m, err := common.NewBitMatrix(21, 21)
	require.NoError(t, err)
	require.NoError(t, m.SetRegion(0, 0, 21, 21))

	checkerboard, err := common.NewBitMatrix(21, 21)
	require.NoError(t, err)
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			if (x+y)%2 == 0 {
				checkerboard.Set(x, y)
			}
		}
	}

	assert.True(t, CalculatePenalty(m) > CalculatePenalty(checkerboard))
}

func TestMaskSignatureIsDeterministic(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		a := maskSignature(mask, 3, 5)
		b := maskSignature(mask, 3, 5)
		assert.Equal(t, a, b)
	}
}

func TestMaskSignaturePanicsOnUnknownMask(t *testing.T) {
	assert.Panics(t, func() { maskSignature(8, 0, 0) })
}
