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

func TestEAN8PatternSelfCheckingMatchesComputedCheckDigit(t *testing.T) {
	withCheck, err := EAN8Pattern("96385074")
	require.NoError(t, err)
	computed, err := EAN8Pattern("9638507")
	require.NoError(t, err)
	assert.Equal(t, withCheck, computed)
}

func TestEAN8PatternRejectsWrongCheckDigit(t *testing.T) {
	_, err := EAN8Pattern("96385071")
	assert.Error(t, err)
}

func TestEAN8PatternRejectsBadLength(t *testing.T) {
	_, err := EAN8Pattern("123")
	assert.Error(t, err)
}
