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

// EAN8Pattern returns the boolean run-pattern for a 7- or 8-digit EAN-8
// payload. All left-half digits use the L parity pattern.
func EAN8Pattern(contents string) ([]bool, error) {
	if err := requireDigits(contents); err != nil {
		return nil, err
	}

	switch len(contents) {
	case 7:
		cd, err := checkDigit(contents)
		if err != nil {
			return nil, err
		}
		contents = fmt.Sprintf("%s%d", contents, cd)
	case 8:
		cd, err := checkDigit(contents[:7])
		if err != nil {
			return nil, err
		}
		if int(contents[7]-'0') != cd {
			return nil, fmt.Errorf("%w: check digit %c does not match computed %d", common.ErrChecksumMismatch, contents[7], cd)
		}
	default:
		return nil, fmt.Errorf("%w: EAN-8 requires 7 or 8 digits, got %d", common.ErrBadInput, len(contents))
	}

	pattern := make([]bool, 3+4*7+5+4*7+3)
	pos := 0
	pos += appendPattern(pattern, pos, startEndGuard, true)

	for i := 0; i < 4; i++ {
		digit := int(contents[i] - '0')
		pos += appendPattern(pattern, pos, lPatterns[digit][:], false)
	}

	pos += appendPattern(pattern, pos, middleGuard, false)

	for i := 0; i < 4; i++ {
		digit := int(contents[4+i] - '0')
		pos += appendPattern(pattern, pos, lPatterns[digit][:], true)
	}

	appendPattern(pattern, pos, startEndGuard, true)
	return pattern, nil
}

// EncodeEAN8 renders a 7- or 8-digit EAN-8 payload to a BitMatrix.
func EncodeEAN8(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := EAN8Pattern(contents)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
