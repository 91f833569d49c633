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

// upcEToUPCA expands a 7-digit UPC-E payload (number system + 6 data
// digits) to its equivalent 11-digit UPC-A body, per the standard
// zero-suppression rules, so its check digit can be derived.
func upcEToUPCA(numSys int, digits string) (string, error) {
	if len(digits) != 6 {
		return "", fmt.Errorf("%w: UPC-E data must be 6 digits", common.ErrBadInput)
	}
	last := digits[5]
	var body string
	switch last {
	case '0', '1', '2':
		body = digits[0:2] + string(last) + "0000" + digits[2:5]
	case '3':
		body = digits[0:3] + "00000" + digits[3:5]
	case '4':
		body = digits[0:4] + "00000" + digits[4:5]
	default:
		body = digits[0:5] + "0000" + string(last)
	}
	return fmt.Sprintf("%d%s", numSys, body), nil
}

// upcaBodyFromUPCE splits a UPC-E payload into its numbering system digit
// and 6-digit data body, which must be 0 or 1.
func upcaBodyFromUPCE(contents string) (numSys int, digits string, err error) {
	numSys = int(contents[0] - '0')
	if numSys != 0 && numSys != 1 {
		return 0, "", fmt.Errorf("%w: UPC-E number system must be 0 or 1, got %d", common.ErrBadInput, numSys)
	}
	return numSys, contents[1:7], nil
}

// EncodeUPCE renders a 7- or 8-digit UPC-E payload to a BitMatrix. The
// first digit must be 0 or 1 (the numbering system); the check digit, if
// omitted, is derived from the equivalent UPC-A expansion.
func EncodeUPCE(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	if err := requireDigits(contents); err != nil {
		return nil, err
	}
	if len(contents) != 7 && len(contents) != 8 {
		return nil, errBadLength("UPC-E", len(contents), 7, 8)
	}

	numSys, dataDigits, err := upcaBodyFromUPCE(contents)
	if err != nil {
		return nil, err
	}

	upcA, err := upcEToUPCA(numSys, dataDigits)
	if err != nil {
		return nil, err
	}
	computedCheck, err := checkDigit(upcA)
	if err != nil {
		return nil, err
	}

	if len(contents) == 8 {
		if int(contents[7]-'0') != computedCheck {
			return nil, fmt.Errorf("%w: check digit %c does not match computed %d", common.ErrChecksumMismatch, contents[7], computedCheck)
		}
	}

	parity := numSysAndCheckDigitPatterns[numSys][computedCheck]

	pattern := make([]bool, 3+6*7+6)
	pos := 0
	pos += appendPattern(pattern, pos, startEndGuard, true)

	for i := 0; i < 6; i++ {
		digit := int(dataDigits[i] - '0')
		useG := parity>>uint(5-i)&1 == 1
		p := leftDigitPattern(digit, useG)
		pos += appendPattern(pattern, pos, p[:], false)
	}

	appendPattern(pattern, pos, upcEEndGuard, false)

	return Render(pattern, width, height, opts)
}
