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
 * Alphabet transcribed from the AIM/ISO Code 39 standard table (narrow =
 * 1 module, wide = 2 modules across 5 bars and 4 interleaved spaces).
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code39Widths holds, per alphabet character, the 9-bit narrow(0)/wide(1)
// pattern across bar,space,bar,space,bar,space,bar,space,bar.
var code39Widths = map[byte]string{
	'0': "000110100", '1': "100100001", '2': "001100001", '3': "101100000",
	'4': "000110001", '5': "100110000", '6': "001110000", '7': "000100101",
	'8': "100100100", '9': "001100100",
	'A': "100001001", 'B': "001001001", 'C': "101001000", 'D': "000011001",
	'E': "100011000", 'F': "001011000", 'G': "000001101", 'H': "100001100",
	'I': "001001100", 'J': "000011100", 'K': "100000011", 'L': "001000011",
	'M': "101000010", 'N': "000010011", 'O': "100010010", 'P': "001010010",
	'Q': "000000111", 'R': "100000110", 'S': "001000110", 'T': "000010110",
	'U': "110000001", 'V': "011000001", 'W': "111000000", 'X': "010010001",
	'Y': "110010000", 'Z': "011010000",
	'-': "010000101", '.': "110000100", ' ': "011000100",
	'$': "010101000", '/': "010100010", '+': "010001010", '%': "000101010",
}

const code39StartStopPattern = "010010100"

// extendedPairs maps characters outside the base Code 39 alphabet to their
// two-character extended-mode translation.
var extendedPairs = buildExtendedPairs()

func buildExtendedPairs() map[byte]string {
	m := make(map[byte]string)
	for c := 0; c < 26; c++ {
		m[byte('a'+c)] = "+" + string(rune('A'+c))
	}
	for c := 0; c < 26; c++ {
		m[byte(1+c)] = "$" + string(rune('A'+c))
	}
	for c := 27; c < 32; c++ {
		m[byte(c)] = "%" + string(rune('A'+(c-27)))
	}
	m[0] = "%U"
	m['!'] = "/A"
	m['"'] = "/B"
	m['#'] = "/C"
	m['$'] = "/D"
	m['%'] = "/E"
	m['&'] = "/F"
	m['\''] = "/G"
	m['('] = "/H"
	m[')'] = "/I"
	m['*'] = "/J"
	m['+'] = "/K"
	m[','] = "/L"
	m['/'] = "/O"
	m[':'] = "/Z"
	m[';'] = "%F"
	m['<'] = "%G"
	m['='] = "%H"
	m['>'] = "%I"
	m['?'] = "%J"
	m['@'] = "%V"
	m['['] = "%K"
	m['\\'] = "%L"
	m[']'] = "%M"
	m['^'] = "%N"
	m['_'] = "%O"
	m['`'] = "%W"
	m['{'] = "%P"
	m['|'] = "%Q"
	m['}'] = "%R"
	m['~'] = "%S"
	return m
}

func widthPattern(bits string) []int {
	pattern := make([]int, len(bits))
	for i, b := range bits {
		if b == '1' {
			pattern[i] = 2
		} else {
			pattern[i] = 1
		}
	}
	return pattern
}

// toCode39Extended translates any byte outside the base alphabet into its
// two-character extended-mode equivalent; bytes already in the base
// alphabet pass through unchanged. A byte mapped by neither is rejected
// rather than silently dropped.
func toCode39Extended(contents string) (string, error) {
	var sb []byte
	for i := 0; i < len(contents); i++ {
		c := contents[i]
		if _, ok := code39Widths[c]; ok {
			sb = append(sb, c)
			continue
		}
		if pair, ok := extendedPairs[c]; ok {
			sb = append(sb, pair...)
			continue
		}
		return "", fmt.Errorf("%w: byte %#02x is not representable in Code 39 extended mode", common.ErrBadInput, c)
	}
	return string(sb), nil
}

// Code39Pattern returns the boolean run-pattern for Code 39 content.
// Characters outside the base 43-symbol alphabet are translated via
// extended mode; the translated content must not exceed 80 characters
// (the start/stop characters are not counted).
func Code39Pattern(contents string) ([]bool, error) {
	encoded, err := toCode39Extended(contents)
	if err != nil {
		return nil, err
	}
	if len(encoded) > 80 {
		return nil, fmt.Errorf("%w: Code 39 content exceeds 80 characters after extended-mode translation", common.ErrOverflow)
	}

	// 9 widths, exactly 3 of them wide, make 12 modules per character,
	// plus one narrow inter-character gap.
	modulesPerChar := 12 + 1
	total := modulesPerChar*(len(encoded)+2) - 1
	pattern := make([]bool, total)
	pos := 0

	pos += appendPattern(pattern, pos, widthPattern(code39StartStopPattern), true)
	pos += appendPattern(pattern, pos, []int{1}, false)

	for i := 0; i < len(encoded); i++ {
		bits, ok := code39Widths[encoded[i]]
		if !ok {
			return nil, fmt.Errorf("%w: character %q is not representable in Code 39", common.ErrBadInput, encoded[i])
		}
		pos += appendPattern(pattern, pos, widthPattern(bits), true)
		pos += appendPattern(pattern, pos, []int{1}, false)
	}

	appendPattern(pattern, pos, widthPattern(code39StartStopPattern), true)

	return pattern, nil
}

// EncodeCode39 renders Code 39 content to a BitMatrix.
func EncodeCode39(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := Code39Pattern(contents)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
