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

// EmptyValue is the sentinel cell value meaning "not yet written", used by
// QR matrix construction to distinguish that from "written as 0".
const EmptyValue int8 = 2

// ByteMatrix is a 2-D grid of small integers (0, 1, or EmptyValue) indexed
// [x, y]. It exists because QR construction needs a three-valued cell state
// that a plain bit cannot represent.
type ByteMatrix struct {
	width, height int
	bytes         [][]int8
}

// NewByteMatrix returns a width x height matrix with every cell EmptyValue.
func NewByteMatrix(width, height int) *ByteMatrix {
	bytes := make([][]int8, height)
	for y := range bytes {
		row := make([]int8, width)
		for x := range row {
			row[x] = EmptyValue
		}
		bytes[y] = row
	}
	return &ByteMatrix{width: width, height: height, bytes: bytes}
}

// Width returns the matrix width.
func (m *ByteMatrix) Width() int { return m.width }

// Height returns the matrix height.
func (m *ByteMatrix) Height() int { return m.height }

// Get returns the cell value at (x, y).
func (m *ByteMatrix) Get(x, y int) int8 {
	return m.bytes[y][x]
}

// Set assigns the cell value at (x, y).
func (m *ByteMatrix) Set(x, y int, value int8) {
	m.bytes[y][x] = value
}

// SetBool assigns 1 or 0 at (x, y) depending on value.
func (m *ByteMatrix) SetBool(x, y int, value bool) {
	if value {
		m.bytes[y][x] = 1
	} else {
		m.bytes[y][x] = 0
	}
}

// IsEmpty reports whether the cell at (x, y) has not yet been written.
func (m *ByteMatrix) IsEmpty(x, y int) bool {
	return m.bytes[y][x] == EmptyValue
}
