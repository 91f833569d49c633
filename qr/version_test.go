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
)

func TestDimension(t *testing.T) {
	assert.Equal(t, 21, Version(1).Dimension())
	assert.Equal(t, 177, Version(40).Dimension())
}

func TestValid(t *testing.T) {
	assert.True(t, Version(1).Valid())
	assert.True(t, Version(40).Valid())
	assert.False(t, Version(0).Valid())
	assert.False(t, Version(41).Valid())
}

// TestTotalCodewordsPartitioning is the spec's core QR invariant: for
// every version x ECC level, data codewords plus error-correction
// codewords equals the total codewords the symbol carries.
func TestTotalCodewordsPartitioning(t *testing.T) {
	for v := Version(MinVersion); v <= MaxVersion; v++ {
		for level := Low; level <= High; level++ {
			blocks := v.NumBlocks(level)
			ecPerBlock := v.NumECCodewordsPerBlock(level)
			dataTotal := v.NumDataCodewords(level)
			assert.Equal(t, v.TotalCodewords(), dataTotal+blocks*ecPerBlock, "version=%d level=%s", v, level)
		}
	}
}

func TestVersionForDataBitsPicksSmallestFit(t *testing.T) {
	version, err := VersionForDataBits(Low, 1, MinVersion, MaxVersion)
	assert.NoError(t, err)
	assert.Equal(t, Version(1), version)
}

func TestVersionForDataBitsOverflows(t *testing.T) {
	_, err := VersionForDataBits(High, 1<<20, MinVersion, MaxVersion)
	assert.Error(t, err)
}
