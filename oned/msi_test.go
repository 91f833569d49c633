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

func TestMSIMod10CheckDigitKnownValue(t *testing.T) {
	check, err := msiMod10CheckDigit("1234567")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, check, 0)
	assert.Less(t, check, 10)
	assert.Equal(t, 4, check)
}

func TestMSIPatternIsDeterministic(t *testing.T) {
	a, err := MSIPattern("4567")
	require.NoError(t, err)
	b, err := MSIPattern("4567")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMSIPatternLengthAccountsForCheckDigit(t *testing.T) {
	pattern, err := MSIPattern("4567")
	require.NoError(t, err)
	want := patternLen(msiStartPattern) + patternLen(msiStopPattern) + 8*5 // 4 data + 1 check digit.
	assert.Equal(t, want, len(pattern))
}

func TestMSIPatternRejectsEmpty(t *testing.T) {
	_, err := MSIPattern("")
	assert.Error(t, err)
}

func TestMSIPatternRejectsNonDigits(t *testing.T) {
	_, err := MSIPattern("12x4")
	assert.Error(t, err)
}
