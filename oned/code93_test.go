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

package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode93ValueRoundTripsAlphabet(t *testing.T) {
	for i := 0; i < len(code93Alphabet); i++ {
		v, err := code93Value(code93Alphabet[i])
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestCode93ValueRejectsUnknownCharacter(t *testing.T) {
	_, err := code93Value('~')
	assert.Error(t, err)
}

func TestCode93ChecksumIsBoundedMod47(t *testing.T) {
	c := code93Checksum([]int{1, 2, 3, 4}, 20)
	assert.GreaterOrEqual(t, c, 0)
	assert.Less(t, c, 47)
}

func TestCode93PatternStartsAndEndsWithStartStopEncoding(t *testing.T) {
	pattern, err := Code93Pattern("CODE93")
	require.NoError(t, err)
	want := code93ModulePattern(code93StartStopEncoding)
	assert.Equal(t, want, pattern[:9])
	assert.Equal(t, want, pattern[len(pattern)-10:len(pattern)-1]) // before the termination bar.
}

func TestCode93PatternRejectsUnknownCharacter(t *testing.T) {
	_, err := Code93Pattern("code93")
	assert.Error(t, err)
}
