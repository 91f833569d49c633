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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteMatrixStartsEmpty(t *testing.T) {
	m := NewByteMatrix(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.True(t, m.IsEmpty(x, y))
		}
	}
}

func TestByteMatrixSetBool(t *testing.T) {
	m := NewByteMatrix(2, 2)
	m.SetBool(0, 0, true)
	m.SetBool(1, 0, false)
	assert.Equal(t, int8(1), m.Get(0, 0))
	assert.Equal(t, int8(0), m.Get(1, 0))
	assert.False(t, m.IsEmpty(0, 0))
	assert.True(t, m.IsEmpty(0, 1))
}
