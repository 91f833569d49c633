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

package barcodegen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDispatchesQRCode(t *testing.T) {
	m, err := Encode("hello", QRCode, 0, 0, Hints{})
	require.NoError(t, err)
	assert.True(t, m.Width() > 0)
}

func TestEncodeDispatchesEAN13(t *testing.T) {
	m, err := Encode("590123412345", EAN13, 0, 0, Hints{})
	require.NoError(t, err)
	assert.True(t, m.Width() > 0)
}

func TestEncodeRejectsNegativeDimensions(t *testing.T) {
	_, err := Encode("hello", QRCode, -1, 0, Hints{})
	assert.True(t, errors.Is(err, ErrBadInput))
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	_, err := Encode("hello", BarcodeFormat(999), 0, 0, Hints{})
	assert.True(t, errors.Is(err, ErrBadInput))
}

func TestBarcodeFormatString(t *testing.T) {
	assert.Equal(t, "QR_CODE", QRCode.String())
	assert.Equal(t, "UPC_A", UPCA.String())
	assert.Equal(t, "UNKNOWN", BarcodeFormat(999).String())
}
