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
	"fmt"
	"strings"
)

// BitMatrix is a 2-D grid of bits, origin at top-left, indexed [x, y]
// (column, row), stored row-major with ceil(width/32) words per row.
type BitMatrix struct {
	width      int
	height     int
	rowSize    int
	bits       []uint32
}

// NewBitMatrix returns a width x height matrix with every bit clear.
func NewBitMatrix(width, height int) (*BitMatrix, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: bit matrix dimensions must be positive (%d x %d)", ErrBadInput, width, height)
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		bits:    make([]uint32, rowSize*height),
	}, nil
}

// Width returns the matrix width in modules.
func (m *BitMatrix) Width() int { return m.width }

// Height returns the matrix height in modules.
func (m *BitMatrix) Height() int { return m.height }

// Get returns whether the module at (x, y) is set.
func (m *BitMatrix) Get(x, y int) bool {
	offset := y*m.rowSize + x/32
	return m.bits[offset]>>uint(x&31)&1 != 0
}

// Set sets the module at (x, y) to 1.
func (m *BitMatrix) Set(x, y int) {
	offset := y*m.rowSize + x/32
	m.bits[offset] |= 1 << uint(x&31)
}

// Flip inverts the module at (x, y).
func (m *BitMatrix) Flip(x, y int) {
	offset := y*m.rowSize + x/32
	m.bits[offset] ^= 1 << uint(x&31)
}

// SetRegion sets every module in the rectangle [left, left+w) x [top, top+h)
// to 1. It fails when the rectangle falls outside the matrix.
func (m *BitMatrix) SetRegion(left, top, w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: region width/height must be positive", ErrBadInput)
	}
	right, bottom := left+w, top+h
	if left < 0 || top < 0 || right > m.width || bottom > m.height {
		return fmt.Errorf("%w: region [%d,%d)x[%d,%d) out of bounds for %dx%d matrix", ErrBadInput, left, right, top, bottom, m.width, m.height)
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			m.Set(x, y)
		}
	}
	return nil
}

// XOR XORs this matrix with an equally-shaped mask.
func (m *BitMatrix) XOR(mask *BitMatrix) error {
	if m.width != mask.width || m.height != mask.height {
		return fmt.Errorf("%w: matrix dimensions differ", ErrBadInput)
	}
	for i := range m.bits {
		m.bits[i] ^= mask.bits[i]
	}
	return nil
}

// Rotate180 rotates the matrix in place by 180 degrees.
func (m *BitMatrix) Rotate180() {
	topRow, bottomRow := NewBitArray(), NewBitArray()
	for y, yEnd := 0, (m.height+1)/2; y < yEnd; y++ {
		topRow = m.row(y, topRow)
		bottomRow = m.row(m.height-1-y, bottomRow)
		topRow.Reverse()
		bottomRow.Reverse()
		m.setRow(y, bottomRow)
		m.setRow(m.height-1-y, topRow)
	}
}

func (m *BitMatrix) row(y int, row *BitArray) *BitArray {
	row.bits = make([]uint32, (m.width+31)/32)
	row.size = m.width
	offset := y * m.rowSize
	copy(row.bits, m.bits[offset:offset+m.rowSize])
	return row
}

func (m *BitMatrix) setRow(y int, row *BitArray) {
	offset := y * m.rowSize
	copy(m.bits[offset:offset+m.rowSize], row.bits)
}

// Row extracts a single row as a BitArray.
func (m *BitMatrix) Row(y int) *BitArray {
	return m.row(y, NewBitArray())
}

// String renders the matrix using "1 "/"0 " per module, one line per row.
func (m *BitMatrix) String() string {
	return m.StringWith("1 ", "0 ", "\n")
}

// StringWith renders the matrix using the given set/unset substrings and
// line separator.
func (m *BitMatrix) StringWith(setString, unsetString, lineSeparator string) string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteString(lineSeparator)
	}
	return sb.String()
}

// ParseBitMatrix parses the textual form produced by StringWith back into a
// BitMatrix. Any run of characters matching neither setString nor
// unsetString is treated as whitespace and ignored.
func ParseBitMatrix(s, setString, unsetString, lineSeparator string) (*BitMatrix, error) {
	lines := strings.Split(strings.Trim(s, lineSeparator), lineSeparator)
	var rows [][]bool
	width := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		var row []bool
		for len(line) > 0 {
			switch {
			case strings.HasPrefix(line, setString):
				row = append(row, true)
				line = line[len(setString):]
			case strings.HasPrefix(line, unsetString):
				row = append(row, false)
				line = line[len(unsetString):]
			default:
				line = line[1:]
			}
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("%w: ragged bit matrix rows", ErrBadInput)
		}
		rows = append(rows, row)
	}
	if width <= 0 || len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty bit matrix text", ErrBadInput)
	}
	m, err := NewBitMatrix(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			if v {
				m.Set(x, y)
			}
		}
	}
	return m, nil
}
