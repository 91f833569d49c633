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

func TestChooseMode(t *testing.T) {
	assert.Equal(t, Numeric, ChooseMode("0123456789"))
	assert.Equal(t, Alphanumeric, ChooseMode("HELLO WORLD"))
	assert.Equal(t, Byte, ChooseMode("hello, world!"))
}

func TestMakeNumericBitLength(t *testing.T) {
	seg, err := MakeNumeric("12345")
	require.NoError(t, err)
	// One group of 3 digits: 10 bits, remaining 2 digits: 7 bits.
	assert.Equal(t, 17, seg.Data.Size())
	assert.Equal(t, 5, seg.NumChars)
}

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	_, err := MakeNumeric("12a45")
	assert.Error(t, err)
}

func TestMakeAlphanumericBitLength(t *testing.T) {
	seg, err := MakeAlphanumeric("AC-42")
	require.NoError(t, err)
	// Two pairs at 11 bits, one leftover char at 6 bits.
	assert.Equal(t, 28, seg.Data.Size())
}

func TestMakeBytesBitLength(t *testing.T) {
	seg, err := MakeBytes([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 16, seg.Data.Size())
	assert.Equal(t, 2, seg.NumChars)
}

func TestMakeKanjiRejectsOddLength(t *testing.T) {
	_, err := MakeKanji([]byte{0x81})
	assert.Error(t, err)
}

func TestMakeKanjiValidPair(t *testing.T) {
	seg, err := MakeKanji([]byte{0x81, 0x40})
	require.NoError(t, err)
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, 13, seg.Data.Size())
}

func TestMakeECISmallValue(t *testing.T) {
	seg, err := MakeECI(26)
	require.NoError(t, err)
	assert.Equal(t, 8, seg.Data.Size())
}

func TestMakeECIRejectsNegative(t *testing.T) {
	_, err := MakeECI(-1)
	assert.Error(t, err)
}

func TestMakeSegmentsEmpty(t *testing.T) {
	segs, err := MakeSegments("")
	require.NoError(t, err)
	assert.Nil(t, segs)
}
