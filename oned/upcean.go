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
 * Shared UPC/EAN alphabet, guards, and check-digit arithmetic for
 * ean13.go, ean8.go, upca.go, and upce.go.
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

// lPatterns are the left-hand odd-parity ("L") digit patterns, widths
// bar/space/bar/space summing to 7 modules.
var lPatterns = [10][4]int{
	{3, 2, 1, 1}, {2, 2, 2, 1}, {2, 1, 2, 2}, {1, 4, 1, 1}, {1, 1, 3, 2},
	{1, 2, 3, 1}, {1, 1, 1, 4}, {1, 3, 1, 2}, {1, 2, 1, 3}, {3, 1, 1, 2},
}

// gPatterns are the left-hand even-parity ("G") digit patterns: lPatterns
// reversed.
var gPatterns = [10][4]int{
	{1, 1, 2, 3}, {1, 2, 2, 2}, {2, 2, 1, 2}, {1, 1, 4, 1}, {2, 3, 1, 1},
	{1, 3, 2, 1}, {4, 1, 1, 1}, {2, 1, 3, 1}, {3, 1, 2, 1}, {2, 1, 1, 3},
}

// firstDigitEncodings packs, for each possible EAN-13 leading digit, which
// of digits 2-7 use the G pattern (bit set) versus L (bit clear), MSB to
// LSB.
var firstDigitEncodings = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// numSysAndCheckDigitPatterns packs, for UPC-E's numbering system (0 or 1)
// and check digit, which of the six data digits use G (bit set) versus L,
// MSB to LSB.
var numSysAndCheckDigitPatterns = [2][10]int{
	{0x38, 0x34, 0x32, 0x31, 0x2C, 0x26, 0x23, 0x2A, 0x29, 0x25},
	{0x07, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A},
}

var (
	startEndGuard = []int{1, 1, 1}
	middleGuard   = []int{1, 1, 1, 1, 1}
	upcEEndGuard  = []int{1, 1, 1, 1, 1, 1}
)

// checkDigit computes the UPC/EAN check digit for a string of digits that
// does not itself include one: weight 3 for digits at odd positions from
// the right, weight 1 for even positions.
func checkDigit(digits string) (int, error) {
	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return 0, fmt.Errorf("%w: non-digit character in %q", common.ErrBadInput, digits)
		}
		if (len(digits)-1-i)%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}
	return (1000 - sum) % 10, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func requireDigits(s string) error {
	if !allDigits(s) {
		return fmt.Errorf("%w: content contains a non-digit character", common.ErrBadInput)
	}
	return nil
}

// errBadLength reports a content length that does not match either of a
// symbology's two accepted lengths (with or without a supplied check
// digit).
func errBadLength(symbology string, got, want1, want2 int) error {
	return fmt.Errorf("%w: %s requires %d or %d digits, got %d", common.ErrBadInput, symbology, want1, want2, got)
}

// leftDigitPattern returns the 4-element width pattern for a left-half
// digit, chosen between L and G parity by the given bit (1 = G, 0 = L).
func leftDigitPattern(digit int, useG bool) [4]int {
	if useG {
		return gPatterns[digit]
	}
	return lPatterns[digit]
}
