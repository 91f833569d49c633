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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode39PatternRejectsTooLong(t *testing.T) {
	_, err := Code39Pattern(strings.Repeat("A", 81))
	assert.Error(t, err)
}

func TestCode39PatternBaseAlphabetAccepted(t *testing.T) {
	_, err := Code39Pattern("CODE-39 TEST.1/2+3%")
	assert.NoError(t, err)
}

func TestCode39PatternExtendedModeTranslatesLowercase(t *testing.T) {
	translated, err := toCode39Extended("abc")
	require.NoError(t, err)
	assert.Equal(t, "+A+B+C", translated)

	lower, err := Code39Pattern("abc")
	require.NoError(t, err)
	upper, err := Code39Pattern(translated)
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestCode39PatternRejectsUnmappableByte(t *testing.T) {
	_, err := toCode39Extended(string([]byte{127}))
	assert.Error(t, err)

	_, err = Code39Pattern(string([]byte{127}))
	assert.Error(t, err)
}

func TestCode39PatternStartsAndEndsWithStartStop(t *testing.T) {
	pattern, err := Code39Pattern("A")
	require.NoError(t, err)
	want := widthPattern(code39StartStopPattern)
	got := make([]bool, patternLen(want))
	appendPattern(got, 0, want, true)
	assert.Equal(t, got, pattern[:len(got)])
	assert.Equal(t, got, pattern[len(pattern)-len(got):])
}
