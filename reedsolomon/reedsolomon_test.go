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

package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grkuntzmd/barcodegen/gf"
)

func TestEncodeIsDeterministic(t *testing.T) {
	message := make([]int, 16+10)
	for i := 0; i < 16; i++ {
		message[i] = i * 3 % 256
	}

	require.NoError(t, Encode(gf.QRField, message, 10))

	// Re-encoding the same data codewords must deterministically reproduce
	// the same error-correction codewords (the remainder of a fixed
	// division is fixed).
	again := make([]int, 16+10)
	copy(again, message[:16])
	require.NoError(t, Encode(gf.QRField, again, 10))
	assert.Equal(t, message[16:], again[16:])
}

func TestEncodeRejectsBadInput(t *testing.T) {
	assert.Error(t, Encode(gf.QRField, make([]int, 10), 0))
	assert.Error(t, Encode(gf.QRField, make([]int, 10), 10))
	assert.Error(t, Encode(gf.QRField, make([]int, 10), 300))
}
