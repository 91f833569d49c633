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

package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseRoundTrip(t *testing.T) {
	for a := 1; a < QRField.Size(); a++ {
		inv, err := QRField.Inverse(a)
		require.NoError(t, err)
		assert.Equal(t, 1, QRField.Multiply(a, inv), "a=%d", a)
	}
}

func TestInverseRejectsZero(t *testing.T) {
	_, err := QRField.Inverse(0)
	assert.Error(t, err)
}

func TestAddOrSubtractIsXOR(t *testing.T) {
	assert.Equal(t, 0, QRField.AddOrSubtract(5, 5))
	assert.Equal(t, 6, QRField.AddOrSubtract(5, 3))
}

func TestMultiplyByZero(t *testing.T) {
	assert.Equal(t, 0, QRField.Multiply(0, 123))
	assert.Equal(t, 0, QRField.Multiply(123, 0))
}

func TestExpLogRoundTrip(t *testing.T) {
	for a := 1; a < QRField.Size(); a++ {
		assert.Equal(t, a, QRField.Exp(QRField.Log(a)), "a=%d", a)
	}
}

func TestGeneratorIsMemoized(t *testing.T) {
	g1 := QRField.Generator(7)
	g2 := QRField.Generator(7)
	assert.Same(t, g1, g2)
	assert.Equal(t, 7, g1.Degree())
}
