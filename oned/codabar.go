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
 * Alphabet transcribed from the AIM Codabar standard table: seven
 * elements (4 bars, 3 interleaved spaces) per character, narrow/wide
 * packed MSB-first into a 7-bit mask. Start/stop characters accept the
 * traditional T, N, * and E aliases for A, B, C and D, and content that arrives
 * without start/stop guards at all is wrapped in a default A..A pair,
 * per ISO/IEC 16388.
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

const codabarAlphabet = "0123456789-$:/.+ABCD"

// codabarGuardAliases maps every accepted start/stop character, including
// the T/N/*/E aliases, to its canonical A/B/C/D letter.
var codabarGuardAliases = map[byte]byte{
	'A': 'A', 'B': 'B', 'C': 'C', 'D': 'D',
	'T': 'A', 'N': 'B', '*': 'C', 'E': 'D',
}

func codabarIsGuard(c byte) bool {
	_, ok := codabarGuardAliases[c]
	return ok
}

var codabarEncodings = map[byte]int{
	'0': 0x003, '1': 0x006, '2': 0x009, '3': 0x060, '4': 0x012,
	'5': 0x042, '6': 0x021, '7': 0x024, '8': 0x030, '9': 0x048,
	'-': 0x00c, '$': 0x018, ':': 0x045, '/': 0x051, '.': 0x054, '+': 0x015,
	'A': 0x01A, 'B': 0x029, 'C': 0x00B, 'D': 0x00E,
}

func codabarPatternFor(code byte) ([]int, error) {
	bits, ok := codabarEncodings[code]
	if !ok {
		return nil, fmt.Errorf("%w: character %q is not part of the Codabar alphabet", common.ErrBadInput, code)
	}
	pattern := make([]int, 7)
	for i := 0; i < 7; i++ {
		if bits&(1<<uint(6-i)) != 0 {
			pattern[i] = 2
		} else {
			pattern[i] = 1
		}
	}
	return pattern, nil
}

// CodabarPattern returns the boolean run-pattern for Codabar content. If
// contents already carries start/stop characters (A, B, C, D, or the
// T/N/*/E aliases) on both ends, they are normalized to their canonical
// letter; otherwise contents is treated as pure data and wrapped in a
// default A..A guard pair, per ISO/IEC 16388.
func CodabarPattern(contents string) ([]bool, error) {
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: Codabar content must not be empty", common.ErrBadInput)
	}

	if len(contents) >= 2 && codabarIsGuard(contents[0]) && codabarIsGuard(contents[len(contents)-1]) {
		contents = string(codabarGuardAliases[contents[0]]) + contents[1:len(contents)-1] + string(codabarGuardAliases[contents[len(contents)-1]])
	} else {
		contents = "A" + contents + "A"
	}

	patterns := make([][]int, len(contents))
	total := len(contents) - 1 // one narrow-space gap between each pair of characters
	for i := 0; i < len(contents); i++ {
		p, err := codabarPatternFor(contents[i])
		if err != nil {
			return nil, err
		}
		patterns[i] = p
		total += patternLen(p)
	}

	pattern := make([]bool, total)
	pos := 0
	for i, p := range patterns {
		pos += appendPattern(pattern, pos, p, true)
		if i != len(patterns)-1 {
			pos += appendPattern(pattern, pos, []int{1}, false)
		}
	}
	return pattern, nil
}

// EncodeCodabar renders Codabar content to a BitMatrix, adding default
// start/stop guards if contents doesn't already carry them.
func EncodeCodabar(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := CodabarPattern(contents)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
