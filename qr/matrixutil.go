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
 *
 * Grounded on the teacher's qrcode.go drawFinderPattern/drawAlignmentPattern/
 * drawFormatBits/drawVersion/drawCodewords, reworked to build against a
 * common.ByteMatrix with the tri-valued (empty/0/1) cell state spec.md
 * calls for, instead of the teacher's Modules+IsFunction pair of slices.
 */

package qr

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

const (
	typeInfoPoly    = 0x537
	typeInfoMaskXOR = 0x5412
	versionInfoPoly = 0x1F25
)

// BCH computes the BCH error-correction code for value under the given
// generator polynomial of degree-bit length polyBitLength (the 1-based
// position of the generator's highest set bit).
func BCH(value, poly int) int {
	polyBitLength := msb(poly)
	value <<= uint(polyBitLength - 1)
	for msb(value) >= polyBitLength {
		value ^= poly << uint(msb(value)-polyBitLength)
	}
	return value
}

// msb returns the 1-based position of the highest set bit of v, or 0 if
// v == 0.
func msb(v int) int {
	n := 0
	for v != 0 {
		v >>= 1
		n++
	}
	return n
}

// buildFunctionPattern draws finders, separators, timing patterns,
// placeholder dark module, and alignment patterns (everything that does
// not depend on the chosen mask or on type/version info) into a fresh
// ByteMatrix of dim x dim cells, all initially empty.
func buildFunctionPattern(version Version) (*common.ByteMatrix, error) {
	dim := version.Dimension()
	m := common.NewByteMatrix(dim, dim)

	embedPositionDetectionPatterns(m)
	if err := embedDarkDotAtLeftBottomCorner(m); err != nil {
		return nil, err
	}
	if err := maybeEmbedPositionAdjustmentPatterns(m, version); err != nil {
		return nil, err
	}
	embedTimingPatterns(m)
	return m, nil
}

func embedPositionDetectionPatterns(m *common.ByteMatrix) {
	size := 7
	embedPositionDetectionPattern(0, 0, m, size)
	embedPositionDetectionPattern(m.Width()-size, 0, m, size)
	embedPositionDetectionPattern(0, m.Height()-size, m, size)
	embedHorizontalSeparationPattern(0, 7, m)
	embedHorizontalSeparationPattern(m.Width()-8, 7, m)
	embedHorizontalSeparationPattern(0, m.Height()-8, m)
	embedVerticalSeparationPattern(7, 0, m)
	embedVerticalSeparationPattern(m.Width()-8, 0, m)
	embedVerticalSeparationPattern(7, m.Height()-7, m)
}

// embedPositionDetectionPattern draws a single 7x7 finder square (including
// its 1-module white ring) with its top-left corner at (x, y).
func embedPositionDetectionPattern(x, y int, m *common.ByteMatrix, size int) {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			dark := dx == 0 || dx == size-1 || dy == 0 || dy == size-1 || (dx >= 2 && dx <= 4 && dy >= 2 && dy <= 4)
			m.SetBool(x+dx, y+dy, dark)
		}
	}
}

func embedHorizontalSeparationPattern(x, y int, m *common.ByteMatrix) {
	for dx := 0; dx < 8; dx++ {
		m.SetBool(x+dx, y, false)
	}
}

func embedVerticalSeparationPattern(x, y int, m *common.ByteMatrix) {
	for dy := 0; dy < 7; dy++ {
		m.SetBool(x, y+dy, false)
	}
}

func embedTimingPatterns(m *common.ByteMatrix) {
	for i := 8; i <= m.Width()-9; i++ {
		bit := int8((i + 1) % 2)
		if m.IsEmpty(i, 6) {
			m.Set(i, 6, bit)
		}
		if m.IsEmpty(6, i) {
			m.Set(6, i, bit)
		}
	}
}

func embedDarkDotAtLeftBottomCorner(m *common.ByteMatrix) error {
	if !m.IsEmpty(8, m.Height()-8) {
		return fmt.Errorf("%w: dark module cell was already written", common.ErrInternalInvariant)
	}
	m.Set(8, m.Height()-8, 1)
	return nil
}

func maybeEmbedPositionAdjustmentPatterns(m *common.ByteMatrix, version Version) error {
	centers := version.AlignmentPatternCenters()
	for _, x := range centers {
		for _, y := range centers {
			if m.IsEmpty(x, y) {
				if err := embedPositionAdjustmentPattern(x-2, y-2, m); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func embedPositionAdjustmentPattern(x, y int, m *common.ByteMatrix) error {
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 5; dx++ {
			dark := dx == 0 || dx == 4 || dy == 0 || dy == 4 || (dx == 2 && dy == 2)
			m.SetBool(x+dx, y+dy, dark)
		}
	}
	return nil
}

// embedTypeInfo draws the 15-bit type info (error correction level + mask)
// at the 15 fixed coordinates flanking the top-left finder, duplicated
// below/right of the other two finders.
func embedTypeInfo(level ECC, mask int, m *common.ByteMatrix) error {
	typeInfoBits := level.Bits()<<3 | mask
	bch := BCH(typeInfoBits, typeInfoPoly)
	bits := typeInfoBits<<10 | bch
	bits ^= typeInfoMaskXOR
	if msb(bits) > 15 {
		return fmt.Errorf("%w: type info exceeds 15 bits", common.ErrInternalInvariant)
	}

	for i := 0; i < 15; i++ {
		bit := int8(bits >> uint(i) & 1)
		x1, y1 := typeInfoCoordinates[i][0], typeInfoCoordinates[i][1]
		m.Set(x1, y1, bit)

		var x2, y2 int
		dim := m.Width()
		if i < 8 {
			x2, y2 = dim-1-i, 8
		} else {
			x2, y2 = 8, dim-15+i
		}
		m.Set(x2, y2, bit)
	}
	return nil
}

// typeInfoCoordinates lists the (x, y) cells of the first copy of the 15
// type-info bits, LSB first.
var typeInfoCoordinates = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// embedVersionInfo draws the 18-bit version info, for version >= 7, in the
// 3x6 strip above the bottom-left finder and its transpose left of the
// top-right finder.
func embedVersionInfo(version Version, m *common.ByteMatrix) error {
	if version < 7 {
		return nil
	}

	bch := BCH(int(version), versionInfoPoly)
	bits := int(version)<<12 | bch
	if msb(bits) > 18 {
		return fmt.Errorf("%w: version info exceeds 18 bits", common.ErrInternalInvariant)
	}

	for i := 0; i < 18; i++ {
		bit := int8(bits >> uint(i) & 1)
		a := m.Width() - 11 + i%3
		b := i / 3
		m.Set(a, b, bit)
		m.Set(b, a, bit)
	}
	return nil
}

// maskSignature is shouldMaskXY for the given mask pattern and coordinate.
func maskSignature(mask int, x, y int) bool {
	var intermediate, temp int
	switch mask {
	case 0:
		intermediate = (y + x) % 2
	case 1:
		intermediate = y % 2
	case 2:
		intermediate = x % 3
	case 3:
		intermediate = (y + x) % 3
	case 4:
		intermediate = (y/2 + x/3) % 2
	case 5:
		temp = y * x
		intermediate = temp%2 + temp%3
	case 6:
		temp = y * x
		intermediate = (temp%2 + temp%3) % 2
	case 7:
		temp = y * x
		intermediate = ((y+x)%2 + temp%3) % 2
	default:
		panic(fmt.Sprintf("qr: invalid mask pattern %d", mask))
	}
	return intermediate == 0
}

// embedDataBits writes data (and, if present, remainder padding bits) into
// every empty cell of m via the snake traversal, XOR-ing each written bit
// with the chosen mask. It returns an error if the data does not exactly
// fill every empty cell.
func embedDataBits(data *common.BitArray, mask int, m *common.ByteMatrix) error {
	bitIndex := 0
	dim := m.Width()

	for right := dim - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < dim; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				var y int
				if (right+1)&2 == 0 {
					y = dim - 1 - vert
				} else {
					y = vert
				}
				if !m.IsEmpty(x, y) {
					continue
				}

				var bit int8
				if bitIndex < data.Size() {
					if data.Get(bitIndex) {
						bit = 1
					}
					bitIndex++
				}
				if mask >= 0 && maskSignature(mask, x, y) {
					bit ^= 1
				}
				m.Set(x, y, bit)
			}
		}
	}

	if bitIndex != data.Size() {
		return fmt.Errorf("%w: not all data bits consumed (%d of %d)", common.ErrInternalInvariant, bitIndex, data.Size())
	}
	return nil
}

// toBitMatrix converts a fully-populated ByteMatrix (no empty cells) into a
// BitMatrix.
func toBitMatrix(m *common.ByteMatrix) (*common.BitMatrix, error) {
	bm, err := common.NewBitMatrix(m.Width(), m.Height())
	if err != nil {
		return nil, err
	}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.IsEmpty(x, y) {
				return nil, fmt.Errorf("%w: matrix cell (%d, %d) was never written", common.ErrInternalInvariant, x, y)
			}
			if m.Get(x, y) == 1 {
				bm.Set(x, y)
			}
		}
	}
	return bm, nil
}
