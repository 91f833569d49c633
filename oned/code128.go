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
 * Code 128 (ISO/IEC 15417) encoder: each of the 103 data values plus the
 * start/stop/function controls maps to a fixed six- (or, for the stop
 * character, seven-) element bar/space pattern, each element 1 to 4
 * modules wide, summing to 11 (13 for stop); this table is shared by all
 * three code sets. A greedy lookahead picks Code Set C for runs of four
 * or more digits (packed two to a symbol), Code Set A for control
 * characters, and Code Set B otherwise, switching between sets as
 * needed. FNC1-4 are represented in contents by the escape runes
 * U+00F1-U+00F4, matching the convention other ZXing-family encoders use.
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

const (
	code128CodeC  = 99
	code128CodeB  = 100
	code128CodeA  = 101
	code128FNC1   = 102
	code128FNC2   = 97
	code128FNC3   = 96
	code128StartA = 103
	code128StartB = 104
	code128StartC = 105
	code128Stop   = 106
)

// Escape runes standing in, within a content string, for the FNC1-4
// function codes. Code point order (FNC1=U+00F1 ... FNC4=U+00F4) lets
// code128Tokenize recover the FNC number arithmetically.
const (
	code128FNC1Escape = 'ñ'
	code128FNC2Escape = 'ò'
	code128FNC3Escape = 'ó'
	code128FNC4Escape = 'ô'
)

var code128Patterns = [106][6]int{
	{2, 1, 2, 2, 2, 2}, {2, 2, 2, 1, 2, 2}, {2, 2, 2, 2, 2, 1}, {1, 2, 1, 2, 2, 3},
	{1, 2, 1, 3, 2, 2}, {1, 3, 1, 2, 2, 2}, {1, 2, 2, 2, 1, 3}, {1, 2, 2, 3, 1, 2},
	{1, 3, 2, 2, 1, 2}, {2, 2, 1, 2, 1, 3}, {2, 2, 1, 3, 1, 2}, {2, 3, 1, 2, 1, 2},
	{1, 1, 2, 2, 3, 2}, {1, 2, 2, 1, 3, 2}, {1, 2, 2, 2, 3, 1}, {1, 1, 3, 2, 2, 2},
	{1, 2, 3, 1, 2, 2}, {1, 2, 3, 2, 2, 1}, {2, 2, 3, 2, 1, 1}, {2, 2, 1, 1, 3, 2},
	{2, 2, 1, 2, 3, 1}, {2, 1, 3, 2, 1, 2}, {2, 2, 3, 1, 1, 2}, {3, 1, 2, 1, 3, 1},
	{3, 1, 1, 2, 2, 2}, {3, 2, 1, 1, 2, 2}, {3, 2, 1, 2, 2, 1}, {3, 1, 2, 2, 1, 2},
	{3, 2, 2, 1, 1, 2}, {3, 2, 2, 2, 1, 1}, {2, 1, 2, 1, 2, 3}, {2, 1, 2, 3, 2, 1},
	{2, 3, 2, 1, 2, 1}, {1, 1, 1, 3, 2, 3}, {1, 3, 1, 1, 2, 3}, {1, 3, 1, 3, 2, 1},
	{1, 1, 2, 3, 1, 3}, {1, 3, 2, 1, 1, 3}, {1, 3, 2, 3, 1, 1}, {2, 1, 1, 3, 1, 3},
	{2, 3, 1, 1, 1, 3}, {2, 3, 1, 3, 1, 1}, {1, 1, 2, 1, 3, 3}, {1, 1, 2, 3, 3, 1},
	{1, 3, 2, 1, 3, 1}, {1, 1, 3, 1, 2, 3}, {1, 1, 3, 3, 2, 1}, {1, 3, 3, 1, 2, 1},
	{3, 1, 3, 1, 2, 1}, {2, 1, 1, 3, 3, 1}, {2, 3, 1, 1, 3, 1}, {2, 1, 3, 1, 1, 3},
	{2, 1, 3, 3, 1, 1}, {2, 1, 3, 1, 3, 1}, {3, 1, 1, 1, 2, 3}, {3, 1, 1, 3, 2, 1},
	{3, 3, 1, 1, 2, 1}, {3, 1, 2, 1, 1, 3}, {3, 1, 2, 3, 1, 1}, {3, 3, 2, 1, 1, 1},
	{3, 1, 4, 1, 1, 1}, {2, 2, 1, 4, 1, 1}, {4, 3, 1, 1, 1, 1}, {1, 1, 1, 2, 2, 4},
	{1, 1, 1, 4, 2, 2}, {1, 2, 1, 1, 2, 4}, {1, 2, 1, 4, 2, 1}, {1, 4, 1, 1, 2, 2},
	{1, 4, 1, 2, 2, 1}, {1, 1, 2, 2, 1, 4}, {1, 1, 2, 4, 1, 2}, {1, 2, 2, 1, 1, 4},
	{1, 2, 2, 4, 1, 1}, {1, 4, 2, 1, 1, 2}, {1, 4, 2, 2, 1, 1}, {2, 4, 1, 2, 1, 1},
	{2, 2, 1, 1, 1, 4}, {4, 1, 3, 1, 1, 1}, {2, 4, 1, 1, 1, 2}, {1, 3, 4, 1, 1, 1},
	{1, 1, 1, 2, 4, 2}, {1, 2, 1, 1, 4, 2}, {1, 2, 1, 2, 4, 1}, {1, 1, 4, 2, 1, 2},
	{1, 2, 4, 1, 1, 2}, {1, 2, 4, 2, 1, 1}, {4, 1, 1, 2, 1, 2}, {4, 2, 1, 1, 1, 2},
	{4, 2, 1, 2, 1, 1}, {2, 1, 2, 1, 4, 1}, {2, 1, 4, 1, 2, 1}, {4, 1, 2, 1, 2, 1},
	{1, 1, 1, 1, 4, 3}, {1, 1, 1, 3, 4, 1}, {1, 3, 1, 1, 4, 1}, {1, 1, 4, 1, 1, 3},
	{1, 1, 4, 3, 1, 1}, {4, 1, 1, 1, 1, 3}, {4, 1, 1, 3, 1, 1}, {1, 1, 3, 1, 4, 1},
	{1, 1, 4, 1, 3, 1}, {3, 1, 1, 1, 4, 1}, {4, 1, 1, 1, 3, 1}, {2, 1, 1, 4, 1, 2},
	{2, 1, 1, 2, 1, 4}, {2, 1, 1, 2, 3, 2},
}

// code128StopPattern is the unique seven-element stop character, longer
// than the other 106 patterns so a decoder can recognize the symbol's
// end unambiguously.
var code128StopPattern = []int{2, 3, 3, 1, 1, 1, 2}

func code128BCharValue(c byte) (int, error) {
	if v, ok := code128SetBValue(rune(c)); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: byte %#02x is outside Code 128 Code Set B", common.ErrBadInput, c)
}

// code128SetBValue maps a rune to its Code Set B value: printable ASCII
// 32-127 as value 0-95.
func code128SetBValue(r rune) (int, bool) {
	if r >= 32 && r <= 127 {
		return int(r) - 32, true
	}
	return 0, false
}

// code128SetAValue maps a rune to its Code Set A value: printable ASCII
// 32-95 as value 0-63, and control characters 0-31 as value 64-95.
func code128SetAValue(r rune) (int, bool) {
	switch {
	case r >= 32 && r <= 95:
		return int(r) - 32, true
	case r >= 0 && r < 32:
		return int(r) + 64, true
	default:
		return 0, false
	}
}

// code128Token is one planned symbol before a code set has necessarily
// been assigned: 'A'/'B' are literal characters requiring that set, 'C'
// is an already-packed digit pair, and 'F' is an FNC1-4 escape, which is
// set-independent and never forces a switch by itself.
type code128Token struct {
	set   byte
	value int
}

func code128DigitRunLength(runes []rune, i int) int {
	n := 0
	for i+n < len(runes) && runes[i+n] >= '0' && runes[i+n] <= '9' {
		n++
	}
	return n
}

// code128Tokenize applies the greedy lookahead switching rule: a run of
// four or more consecutive digits packs into Code Set C two at a time;
// an odd trailing digit becomes an ordinary Code Set B character.
// forceCodesetB disables both Set C packing and Set A, so control
// characters become an error rather than a silent switch.
func code128Tokenize(runes []rune, forceCodesetB bool) ([]code128Token, error) {
	var tokens []code128Token
	for i := 0; i < len(runes); {
		switch runes[i] {
		case code128FNC1Escape, code128FNC2Escape, code128FNC3Escape, code128FNC4Escape:
			tokens = append(tokens, code128Token{set: 'F', value: int(runes[i]-code128FNC1Escape) + 1})
			i++
			continue
		}

		if !forceCodesetB {
			if run := code128DigitRunLength(runes, i); run >= 4 {
				pairs := run &^ 1
				for p := 0; p < pairs; p += 2 {
					d1 := int(runes[i+p] - '0')
					d2 := int(runes[i+p+1] - '0')
					tokens = append(tokens, code128Token{set: 'C', value: d1*10 + d2})
				}
				i += pairs
				continue
			}
		}

		if v, ok := code128SetBValue(runes[i]); ok {
			tokens = append(tokens, code128Token{set: 'B', value: v})
			i++
			continue
		}
		if !forceCodesetB {
			if v, ok := code128SetAValue(runes[i]); ok {
				tokens = append(tokens, code128Token{set: 'A', value: v})
				i++
				continue
			}
		}
		return nil, fmt.Errorf("%w: rune %U is not representable in Code 128", common.ErrBadInput, runes[i])
	}
	return tokens, nil
}

// code128FNCValue resolves an FNC number (1-4) to its symbol value. FNC4
// shares its value with the Code A/B switch codes, disambiguated only by
// position (a switch is always followed by a data symbol in the new
// set; FNC4 is not), so the value depends on the set active when it
// appears.
func code128FNCValue(n int, current byte) int {
	switch n {
	case 1:
		return code128FNC1
	case 2:
		return code128FNC2
	case 3:
		return code128FNC3
	default:
		if current == 'A' {
			return code128CodeA
		}
		return code128CodeB
	}
}

func code128SwitchValue(target byte) int {
	switch target {
	case 'A':
		return code128CodeA
	case 'C':
		return code128CodeC
	default:
		return code128CodeB
	}
}

// code128PlanValues turns a token stream into the final symbol values
// (including switch codes), choosing the starting code set from the
// first token that isn't an FNC escape.
func code128PlanValues(tokens []code128Token) (values []int, startSet byte) {
	startSet = 'B'
	for _, t := range tokens {
		if t.set != 'F' {
			startSet = t.set
			break
		}
	}

	current := startSet
	for _, t := range tokens {
		switch t.set {
		case 'F':
			values = append(values, code128FNCValue(t.value, current))
		default:
			if current != t.set {
				values = append(values, code128SwitchValue(t.set))
				current = t.set
			}
			values = append(values, t.value)
		}
	}
	return values, startSet
}

func patternSum(pattern []int) int {
	s := 0
	for _, w := range pattern {
		s += w
	}
	return s
}

// Code128Pattern returns the boolean run-pattern for Code 128 content,
// implementing the full Set A/B/C switching algorithm described above.
// forceCodesetB disables switching away from Set B entirely; gs1
// prepends an FNC1 at position 0 (unless one is already there), per the
// GS1-128 application standard. The checksum is
// (startCode + sum(i*symbol_i)) mod 103, i 1-based over every symbol
// after the start code, matching ISO/IEC 15417 §5.3.
func Code128Pattern(contents string, forceCodesetB, gs1 bool) ([]bool, error) {
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: Code 128 content must not be empty", common.ErrBadInput)
	}

	runes := []rune(contents)
	if gs1 && runes[0] != code128FNC1Escape {
		runes = append([]rune{code128FNC1Escape}, runes...)
	}

	tokens, err := code128Tokenize(runes, forceCodesetB)
	if err != nil {
		return nil, err
	}

	values, startSet := code128PlanValues(tokens)

	startCode := code128StartB
	switch startSet {
	case 'A':
		startCode = code128StartA
	case 'C':
		startCode = code128StartC
	}

	checksum := startCode
	for i, v := range values {
		checksum += v * (i + 1)
	}
	checksum %= 103

	total := patternSum(code128Patterns[startCode][:]) + patternSum(code128Patterns[checksum][:]) + patternSum(code128StopPattern)
	for _, v := range values {
		total += patternSum(code128Patterns[v][:])
	}

	pattern := make([]bool, total)
	pos := 0
	pos += appendPattern(pattern, pos, code128Patterns[startCode][:], true)
	for _, v := range values {
		pos += appendPattern(pattern, pos, code128Patterns[v][:], true)
	}
	pos += appendPattern(pattern, pos, code128Patterns[checksum][:], true)
	appendPattern(pattern, pos, code128StopPattern, true)

	return pattern, nil
}

// EncodeCode128 renders Code 128 content to a BitMatrix, honoring
// opts.Code128ForceCodesetB and opts.GS1Format.
func EncodeCode128(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	pattern, err := Code128Pattern(contents, opts.Code128ForceCodesetB, opts.GS1Format)
	if err != nil {
		return nil, err
	}
	return Render(pattern, width, height, opts)
}
