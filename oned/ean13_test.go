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

func TestEAN13PatternSelfCheckingMatchesComputedCheckDigit(t *testing.T) {
	withCheck, err := EAN13Pattern("5901234123457")
	require.NoError(t, err)
	computed, err := EAN13Pattern("590123412345")
	require.NoError(t, err)
	assert.Equal(t, withCheck, computed)
}

func TestEAN13PatternRejectsWrongCheckDigit(t *testing.T) {
	_, err := EAN13Pattern("5901234123450")
	assert.Error(t, err)
}

func TestEAN13PatternRejectsBadLength(t *testing.T) {
	_, err := EAN13Pattern("123")
	assert.Error(t, err)
}

func TestEAN13PatternRejectsNonDigits(t *testing.T) {
	_, err := EAN13Pattern("59012341234X")
	assert.Error(t, err)
}

func TestEAN13PatternStartsAndEndsWithGuard(t *testing.T) {
	pattern, err := EAN13Pattern("590123412345")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, pattern[:3])
	assert.Equal(t, []bool{true, false, true}, pattern[len(pattern)-3:])
}
