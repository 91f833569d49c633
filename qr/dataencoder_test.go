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

func TestBuildHeaderBitsOmitsECIForDefaultCharset(t *testing.T) {
	header, err := buildHeaderBits(Byte, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, header.Size()) // just the mode indicator.
}

func TestBuildHeaderBitsEmitsECIForExplicitCharset(t *testing.T) {
	header, err := buildHeaderBits(Byte, Options{CharacterSet: "UTF-8"})
	require.NoError(t, err)
	assert.Equal(t, 16, header.Size()) // ECI indicator(4) + value(8) + mode(4).
}

func TestBuildHeaderBitsRejectsUnknownCharset(t *testing.T) {
	_, err := buildHeaderBits(Byte, Options{CharacterSet: "bogus"})
	assert.Error(t, err)
}

func TestBuildHeaderBitsGS1(t *testing.T) {
	header, err := buildHeaderBits(Alphanumeric, Options{GS1Format: true})
	require.NoError(t, err)
	assert.Equal(t, 8, header.Size()) // FNC1(4) + mode(4).
}

func TestTerminateAndPadFillsAlternatingBytes(t *testing.T) {
	data := common.NewBitArray()
	require.NoError(t, data.AppendBits(0x1, 4))

	require.NoError(t, terminateAndPad(data, 24))
	assert.Equal(t, 24, data.Size())

	bytes := make([]byte, 3)
	data.ToBytes(0, bytes, 0, 3)
	assert.Equal(t, byte(0xEC), bytes[1])
	assert.Equal(t, byte(0x11), bytes[2])
}

func TestTerminateAndPadRejectsOverflow(t *testing.T) {
	data := common.NewBitArray()
	require.NoError(t, data.AppendBits(0xFFFF, 16))
	assert.Error(t, terminateAndPad(data, 8))
}
