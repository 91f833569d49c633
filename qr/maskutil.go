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
 * Grounded on the teacher's qrcode.go getPenaltyScore/finderPenalty* family,
 * reworked against common.BitMatrix rather than the teacher's own
 * Modules/IsFunction slices.
 */

package qr

import "github.com/grkuntzmd/barcodegen/common"

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// finderLikePatterns holds the 11-module sequence (a 1:1:3:1:1 finder
// followed by four light modules) that penalty rule 3 looks for, and its
// mirror image.
var finderLikePatterns = [2][11]int{
	{1, 0, 1, 1, 1, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 0, 1, 1, 1, 0, 1},
}

// CalculatePenalty scores m under the four standard QR penalty rules; the
// lowest score wins.
func CalculatePenalty(m *common.BitMatrix) int {
	return applyRule1(m, true) + applyRule1(m, false) + applyRule2(m) + applyRule3(m) + applyRule4(m)
}

func applyRule1(m *common.BitMatrix, isHorizontal bool) int {
	penalty := 0
	size := m.Width()
	for i := 0; i < size; i++ {
		prevBit := false
		runLength := 0
		for j := 0; j < size; j++ {
			var bit bool
			if isHorizontal {
				bit = m.Get(j, i)
			} else {
				bit = m.Get(i, j)
			}
			if bit == prevBit {
				runLength++
			} else {
				if runLength >= 5 {
					penalty += penaltyN1 + (runLength - 5)
				}
				runLength = 1
				prevBit = bit
			}
		}
		if runLength >= 5 {
			penalty += penaltyN1 + (runLength - 5)
		}
	}
	return penalty
}

func applyRule2(m *common.BitMatrix) int {
	penalty := 0
	size := m.Width()
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			v := m.Get(x, y)
			if v == m.Get(x+1, y) && v == m.Get(x, y+1) && v == m.Get(x+1, y+1) {
				penalty += penaltyN2
			}
		}
	}
	return penalty
}

func applyRule3(m *common.BitMatrix) int {
	penalty := 0
	size := m.Width()
	for y := 0; y < size; y++ {
		for x := 0; x <= size-11; x++ {
			if matchesFinderLikePattern(m, x, y, true) {
				penalty += penaltyN3
			}
		}
	}
	for x := 0; x < size; x++ {
		for y := 0; y <= size-11; y++ {
			if matchesFinderLikePattern(m, x, y, false) {
				penalty += penaltyN3
			}
		}
	}
	return penalty
}

func matchesFinderLikePattern(m *common.BitMatrix, x, y int, horizontal bool) bool {
	for _, pattern := range finderLikePatterns {
		match := true
		for i := 0; i < 11; i++ {
			var bit bool
			if horizontal {
				bit = m.Get(x+i, y)
			} else {
				bit = m.Get(x, y+i)
			}
			if bit != (pattern[i] == 1) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func applyRule4(m *common.BitMatrix) int {
	size := m.Width()
	dark := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if m.Get(x, y) {
				dark++
			}
		}
	}
	total := size * size
	ratio := float64(dark) / float64(total)
	k := int(abs(ratio*2-1) * 20)
	return k * penaltyN4
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
