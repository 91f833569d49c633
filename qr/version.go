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
 * Tables transcribed from ISO/IEC 18004, identical to the teacher's
 * package.go eccCodeWordsPerBlock / numErrorCorrectionBlocks arrays; wrapped
 * here behind a Version type instead of bare package-level arrays so the
 * rest of the qr package reads lookups through methods.
 */

package qr

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

// Version is a QR code version, 1..40.
type Version int

// MinVersion and MaxVersion bound the legal QR code versions.
const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

// Dimension returns the width/height of the square symbol in modules.
func (v Version) Dimension() int {
	return 17 + 4*int(v)
}

// Valid reports whether v lies in [MinVersion, MaxVersion].
func (v Version) Valid() bool {
	return MinVersion <= v && v <= MaxVersion
}

// ecBlocksPerLevel[level][version] = number of blocks the data is split
// into; index 0 is an unused placeholder so version numbers index directly.
var ecBlocksPerLevel = [4][41]int{
	// Low
	{0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	// Medium
	{0, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	// Quartile
	{0, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	// High
	{0, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// ecCodewordsPerBlock[level][version] = error-correction codewords in each
// block.
var ecCodewordsPerBlock = [4][41]int{
	{0, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{0, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{0, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{0, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

var (
	numRawDataModules [41]int
	numDataCodewords  [4][41]int
	alignmentCenters  [41][]int
)

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		numRawDataModules[v] = result
	}

	for level := 0; level < 4; level++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[level][v] = numRawDataModules[v]/8 - ecCodewordsPerBlock[level][v]*ecBlocksPerLevel[level][v]
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentCenters[v] = computeAlignmentPatternCenters(Version(v))
	}
}

// TotalCodewords returns the total number of 8-bit codewords (data + EC)
// this version's symbol carries.
func (v Version) TotalCodewords() int {
	return numRawDataModules[int(v)] / 8
}

// NumDataCodewords returns the number of data (non-EC) codewords available
// at the given error correction level.
func (v Version) NumDataCodewords(level ECC) int {
	return numDataCodewords[level][int(v)]
}

// NumBlocks returns the number of Reed-Solomon blocks the data is split
// into at the given error correction level.
func (v Version) NumBlocks(level ECC) int {
	return ecBlocksPerLevel[level][int(v)]
}

// NumECCodewordsPerBlock returns the number of error-correction codewords
// appended to each block at the given error correction level.
func (v Version) NumECCodewordsPerBlock(level ECC) int {
	return ecCodewordsPerBlock[level][int(v)]
}

// AlignmentPatternCenters returns the ascending list of row/column centers
// at which alignment patterns are placed for this version (empty for
// version 1).
func (v Version) AlignmentPatternCenters() []int {
	return alignmentCenters[int(v)]
}

// computeAlignmentPatternCenters mirrors the teacher's
// getAlignmentPatternPositions.
func computeAlignmentPatternCenters(v Version) []int {
	if v == 1 {
		return nil
	}

	numAlign := int(v)/7 + 2
	var step int
	if v == 32 {
		step = 26
	} else {
		step = (int(v)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	pos := int(v)*4 + 17 - 7
	for i := len(result) - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

// VersionForDataBits returns the smallest version in [minVersion,
// maxVersion] whose data-byte capacity at level holds at least
// ceil(bits/8) bytes.
func VersionForDataBits(level ECC, bits int, minVersion, maxVersion Version) (Version, error) {
	if minVersion < MinVersion || maxVersion > MaxVersion || maxVersion < minVersion {
		return 0, fmt.Errorf("%w: invalid version range [%d, %d]", common.ErrBadInput, minVersion, maxVersion)
	}
	for v := minVersion; v <= maxVersion; v++ {
		if v.NumDataCodewords(level)*8 >= bits {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: data length %d bits does not fit any version in [%d, %d]", common.ErrOverflow, bits, minVersion, maxVersion)
}
