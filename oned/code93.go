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
 * Alphabet transcribed from the AIM Code 93 standard table. Unlike
 * Code 39, each Code 93 character is a literal 9-module bar/space
 * sequence rather than a narrow/wide ratio, so its encoding table is
 * used directly as a bitmask instead of through appendPattern's
 * width/color pairs.
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

const code93Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code93Encodings holds the 9-bit literal module pattern (MSB first) for
// each base alphabet character, plus the four control characters used by
// full-ASCII shift encoding, indexed 43-46: ($), (%), (/), (+).
var code93Encodings = []int{
	0x114, 0x148, 0x144, 0x142, 0x128, 0x124, 0x122, 0x150, 0x112, 0x10A, // 0-9
	0x1A8, 0x1A4, 0x1A2, 0x194, 0x192, 0x18A, 0x168, 0x164, 0x162, 0x134, // A-J
	0x11A, 0x158, 0x14C, 0x146, 0x12C, 0x116, 0x1B4, 0x1B2, 0x1AC, 0x1A6, // K-T
	0x196, 0x19A, 0x16C, 0x166, 0x136, 0x13A, // U-Z
	0x12E, 0x1D4, 0x1D2, 0x1CA, 0x16E, 0x176, 0x1AE, // - . space $ / + %
	0x126, 0x1DA, 0x1D6, 0x132, // ($) (%) (/) (+)
}

const code93StartStopEncoding = 0x15E

func code93Value(c byte) (int, error) {
	for i := 0; i < len(code93Alphabet); i++ {
		if code93Alphabet[i] == c {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: character %q is not part of the Code 93 alphabet", common.ErrBadInput, c)
}

func code93ModulePattern(encoding int) []bool {
	modules := make([]bool, 9)
	for i := 0; i < 9; i++ {
		modules[i] = encoding&(1<<uint(8-i)) != 0
	}
	return modules
}

// code93Checksum computes a weighted mod-47 checksum over values (each a
// code93Alphabet index), weights cycling 1..maxWeight from the rightmost
// character.
func code93Checksum(values []int, maxWeight int) int {
	sum := 0
	weight := 1
	for i := len(values) - 1; i >= 0; i-- {
		sum += values[i] * weight
		weight++
		if weight > maxWeight {
			weight = 1
		}
	}
	return sum % 47
}

// Code93Pattern returns the boolean run-pattern for Code 93 content,
// appending the standard C (mod 47, weights 1-20) and K (mod 47, weights
// 1-15, including C) check characters between the data and the stop
// character.
func Code93Pattern(contents string) ([]bool, error) {
	values := make([]int, len(contents))
	for i := 0; i < len(contents); i++ {
		v, err := code93Value(contents[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	c := code93Checksum(values, 20)
	k := code93Checksum(append(append([]int{}, values...), c), 15)

	all := append(append([]int{}, values...), c, k)

	pattern := make([]bool, 0, 9*(len(all)+2))
	pattern = append(pattern, code93ModulePattern(code93StartStopEncoding)...)
	for _, v := range all {
		pattern = append(pattern, code93ModulePattern(code93Encodings[v])...)
	}
	pattern = append(pattern, code93ModulePattern(code93StartStopEncoding)...)
	pattern = append(pattern, true) // termination bar

	return pattern, nil
}

// EncodeCode93 renders Code 93 content to a BitMatrix.
func EncodeCode93(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := Code93Pattern(contents)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
