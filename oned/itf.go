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
 * Digit table transcribed from the Interleaved 2 of 5 standard: each
 * digit is 5 bars, exactly two of which are wide.
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

var itfDigitPatterns = [10][5]int{
	{1, 1, 2, 2, 1}, {2, 1, 1, 1, 2}, {1, 2, 1, 1, 2}, {2, 2, 1, 1, 1},
	{1, 1, 2, 1, 2}, {2, 1, 2, 1, 1}, {1, 2, 2, 1, 1}, {1, 1, 1, 2, 2},
	{2, 1, 1, 2, 1}, {1, 2, 1, 2, 1},
}

var itfStartPattern = []int{1, 1, 1, 1}
var itfStopPattern = []int{2, 1, 1}

// ITFPattern returns the boolean run-pattern for Interleaved 2 of 5
// content. An odd-length digit string is left-padded with a zero, per
// the standard's requirement that data be encoded in bar/space pairs.
func ITFPattern(contents string) ([]bool, error) {
	if err := requireDigits(contents); err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: ITF content must not be empty", common.ErrBadInput)
	}
	if len(contents)%2 != 0 {
		contents = "0" + contents
	}

	pairs := len(contents) / 2
	// Each digit is 3 narrow and 2 wide elements (7 modules), so a pair spans 14.
	total := patternLen(itfStartPattern) + patternLen(itfStopPattern) + pairs*14
	pattern := make([]bool, total)
	pos := 0
	pos += appendPattern(pattern, pos, itfStartPattern, true)

	for i := 0; i < pairs; i++ {
		d1 := int(contents[2*i] - '0')
		d2 := int(contents[2*i+1] - '0')
		bars := itfDigitPatterns[d1]
		spaces := itfDigitPatterns[d2]
		interleaved := make([]int, 10)
		for j := 0; j < 5; j++ {
			interleaved[2*j] = bars[j]
			interleaved[2*j+1] = spaces[j]
		}
		pos += appendPattern(pattern, pos, interleaved, true)
	}

	appendPattern(pattern, pos, itfStopPattern, true)
	return pattern, nil
}

// EncodeITF renders Interleaved 2 of 5 content to a BitMatrix.
func EncodeITF(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := ITFPattern(contents)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
