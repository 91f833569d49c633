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
 * MSI (Modified Plessey) encodes each decimal digit as its 4-bit binary
 * value, each bit as a wide-bar/narrow-space (1) or narrow-bar/wide-space
 * (0) pair, bracketed by fixed start and stop patterns.
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

var msiStartPattern = []int{2, 1}
var msiStopPattern = []int{1, 2, 1}

// msiMod10CheckDigit computes the standard single Mod 10 check digit used
// for MSI, the Luhn way: double every other digit starting from the
// rightmost, replace any doubled value above 9 by the sum of its digits,
// and return the amount that brings the total to a multiple of 10.
func msiMod10CheckDigit(digits string) (int, error) {
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return 0, fmt.Errorf("%w: non-digit character in %q", common.ErrBadInput, digits)
		}
		if double {
			d *= 2
			if d > 9 {
				d = d/10 + d%10
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10, nil
}

func msiDigitPattern(digit int) []int {
	pattern := make([]int, 8)
	for i := 0; i < 4; i++ {
		bit := (digit >> uint(3-i)) & 1
		if bit == 1 {
			pattern[2*i], pattern[2*i+1] = 2, 1
		} else {
			pattern[2*i], pattern[2*i+1] = 1, 2
		}
	}
	return pattern
}

// MSIPattern returns the boolean run-pattern for MSI content. A Mod 10
// check digit computed over the whole content is always appended; a
// trailing check digit already present in contents is not recognized.
func MSIPattern(contents string) ([]bool, error) {
	if err := requireDigits(contents); err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: MSI content must not be empty", common.ErrBadInput)
	}

	check, err := msiMod10CheckDigit(contents)
	if err != nil {
		return nil, err
	}
	full := fmt.Sprintf("%s%d", contents, check)

	total := patternLen(msiStartPattern) + patternLen(msiStopPattern) + 8*len(full)
	pattern := make([]bool, total)
	pos := 0
	pos += appendPattern(pattern, pos, msiStartPattern, true)

	for i := 0; i < len(full); i++ {
		digit := int(full[i] - '0')
		pos += appendPattern(pattern, pos, msiDigitPattern(digit), true)
	}

	appendPattern(pattern, pos, msiStopPattern, true)
	return pattern, nil
}

// EncodeMSI renders MSI content to a BitMatrix, appending a Mod 10 check
// digit.
func EncodeMSI(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := MSIPattern(contents)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
