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

func TestPolyTrimsLeadingZeros(t *testing.T) {
	p := NewPoly(QRField, []int{0, 0, 1, 2})
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, []int{1, 2}, p.Coefficients())
}

func TestPolyDivideSatisfiesIdentity(t *testing.T) {
	p := NewPoly(QRField, []int{1, 2, 3, 4, 5})
	d := NewPoly(QRField, []int{1, 1})

	q, r, err := p.Divide(d)
	require.NoError(t, err)

	reconstructed := q.Multiply(d).AddOrSubtract(r)
	assert.Equal(t, p.Coefficients(), reconstructed.Coefficients())
}

func TestPolyDivideRejectsZeroDivisor(t *testing.T) {
	p := NewPoly(QRField, []int{1, 2})
	zero := NewPoly(QRField, []int{0})
	_, _, err := p.Divide(zero)
	assert.Error(t, err)
}

func TestPolyIsZero(t *testing.T) {
	assert.True(t, NewPoly(QRField, []int{0}).IsZero())
	assert.False(t, NewPoly(QRField, []int{1}).IsZero())
}
