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

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

// EAN13Pattern returns the boolean run-pattern for a 12- or 13-digit
// EAN-13 payload. A 12-digit input has its check digit computed; a
// 13-digit input has its trailing digit validated against the computed
// check digit.
func EAN13Pattern(contents string) ([]bool, error) {
	if err := requireDigits(contents); err != nil {
		return nil, err
	}

	switch len(contents) {
	case 12:
		cd, err := checkDigit(contents)
		if err != nil {
			return nil, err
		}
		contents = fmt.Sprintf("%s%d", contents, cd)
	case 13:
		cd, err := checkDigit(contents[:12])
		if err != nil {
			return nil, err
		}
		if int(contents[12]-'0') != cd {
			return nil, fmt.Errorf("%w: check digit %c does not match computed %d", common.ErrChecksumMismatch, contents[12], cd)
		}
	default:
		return nil, fmt.Errorf("%w: EAN-13 requires 12 or 13 digits, got %d", common.ErrBadInput, len(contents))
	}

	firstDigit := int(contents[0] - '0')
	parity := firstDigitEncodings[firstDigit]

	pattern := make([]bool, 3+6*7+5+6*7+3)
	pos := 0
	pos += appendPattern(pattern, pos, startEndGuard, true)

	for i := 0; i < 6; i++ {
		digit := int(contents[1+i] - '0')
		useG := parity>>uint(5-i)&1 == 1
		p := leftDigitPattern(digit, useG)
		pos += appendPattern(pattern, pos, p[:], false)
	}

	pos += appendPattern(pattern, pos, middleGuard, false)

	for i := 0; i < 6; i++ {
		digit := int(contents[7+i] - '0')
		pos += appendPattern(pattern, pos, lPatterns[digit][:], true)
	}

	appendPattern(pattern, pos, startEndGuard, true)
	return pattern, nil
}

// EncodeEAN13 renders a 12- or 13-digit EAN-13 payload to a BitMatrix.
func EncodeEAN13(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := EAN13Pattern(contents)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
