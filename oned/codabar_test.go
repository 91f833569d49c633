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

func TestCodabarPatternAddsDefaultGuardsWhenMissing(t *testing.T) {
	_, err := CodabarPattern("12345")
	assert.NoError(t, err)
}

func TestCodabarPatternResolvesStartStopAliases(t *testing.T) {
	_, err := CodabarPattern("E123E")
	assert.NoError(t, err)
}

func TestCodabarPatternAliasesMatchCanonicalLetters(t *testing.T) {
	want, err := CodabarPattern("A123A")
	require.NoError(t, err)
	got, err := CodabarPattern("T123T")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCodabarPatternStartsAndEndsDark(t *testing.T) {
	pattern, err := CodabarPattern("A12B")
	require.NoError(t, err)
	assert.True(t, pattern[0])
	assert.True(t, pattern[len(pattern)-1])
}

func TestCodabarPatternValidStartStopCombinations(t *testing.T) {
	for _, c := range []byte{'A', 'B', 'C', 'D'} {
		_, err := CodabarPattern(string(c) + "0" + string(c))
		assert.NoError(t, err)
	}
}

func TestCodabarPatternMatchesReferenceVector(t *testing.T) {
	pattern, err := CodabarPattern("B515-3/B")
	require.NoError(t, err)

	want := "1001001011" + "0110101001" + "0101011001" + "0110101001" +
		"0101001101" + "0110010101" + "01101101011" + "01001001011"

	got := make([]byte, len(pattern))
	for i, v := range pattern {
		if v {
			got[i] = '1'
		} else {
			got[i] = '0'
		}
	}
	assert.Equal(t, want, string(got))
}
