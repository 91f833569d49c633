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
 * Plessey encodes each digit as its 4-bit binary value, each bit as a
 * narrow-bar/wide-space (1) or wide-bar/narrow-space (0) pair, checked
 * with a CRC-style polynomial division (two trailing 4-bit check digits,
 * see plesseyCRC), bracketed by fixed start and stop patterns.
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

var plesseyStartPattern = []int{1, 2, 1, 2}
var plesseyStopPattern = []int{3, 1}

// plesseyCRC computes the two check digits appended to Plessey content:
// each digit's 4 bits, most significant first, are shifted through an
// 8-bit register with feedback taps 0x13 (generator x^8+x^4+x+1 over
// GF(2)), and the 8-bit remainder is split into two 4-bit check digits,
// high nibble first.
func plesseyCRC(digits string) (int, int, error) {
	const poly = 0x13
	reg := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return 0, 0, fmt.Errorf("%w: non-digit character in %q", common.ErrBadInput, digits)
		}
		for b := 3; b >= 0; b-- {
			bit := (d >> uint(b)) & 1
			top := (reg >> 7) & 1
			reg = (reg << 1) & 0xFF
			if top^bit != 0 {
				reg ^= poly
			}
		}
	}
	return (reg >> 4) & 0xF, reg & 0xF, nil
}

func plesseyDigitPattern(digit int) []int {
	pattern := make([]int, 8)
	for i := 0; i < 4; i++ {
		bit := (digit >> uint(i)) & 1
		if bit == 1 {
			pattern[2*i], pattern[2*i+1] = 1, 2
		} else {
			pattern[2*i], pattern[2*i+1] = 2, 1
		}
	}
	return pattern
}

// PlesseyPattern returns the boolean run-pattern for Plessey content,
// appending its two CRC check digits.
func PlesseyPattern(contents string) ([]bool, error) {
	if err := requireDigits(contents); err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: Plessey content must not be empty", common.ErrBadInput)
	}

	c1, c2, err := plesseyCRC(contents)
	if err != nil {
		return nil, err
	}
	full := contents

	total := patternLen(plesseyStartPattern) + patternLen(plesseyStopPattern) + 8*(len(full)+2)
	pattern := make([]bool, total)
	pos := 0
	pos += appendPattern(pattern, pos, plesseyStartPattern, true)

	for i := 0; i < len(full); i++ {
		digit := int(full[i] - '0')
		pos += appendPattern(pattern, pos, plesseyDigitPattern(digit), true)
	}
	pos += appendPattern(pattern, pos, plesseyDigitPattern(c1), true)
	pos += appendPattern(pattern, pos, plesseyDigitPattern(c2), true)

	appendPattern(pattern, pos, plesseyStopPattern, true)
	return pattern, nil
}

// EncodePlessey renders Plessey content to a BitMatrix, appending its two
// CRC check digits.
func EncodePlessey(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := PlesseyPattern(contents)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
