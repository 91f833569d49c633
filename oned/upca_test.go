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

func TestEncodeUPCADelegatesToEAN13WithLeadingZero(t *testing.T) {
	upcA, err := EncodeUPCA("03600029145", 0, 0, Options{})
	require.NoError(t, err)
	ean13, err := EncodeEAN13("003600029145", 0, 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, ean13.StringWith("X", ".", "\n"), upcA.StringWith("X", ".", "\n"))
}

func TestEncodeUPCARejectsBadLength(t *testing.T) {
	_, err := EncodeUPCA("123", 0, 0, Options{})
	assert.Error(t, err)
}
