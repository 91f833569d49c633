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

package qr

// Mode identifies how a QR segment's payload is encoded.
type Mode struct {
	indicator    int8
	charCountLen [3]int8 // char-count-indicator width for version brackets 1-9, 10-26, 27-40.
}

// The data and control modes a QR segment may use.
var (
	Numeric             = Mode{0x1, [3]int8{10, 12, 14}}
	Alphanumeric        = Mode{0x2, [3]int8{9, 11, 13}}
	Byte                = Mode{0x4, [3]int8{8, 16, 16}}
	Kanji               = Mode{0x8, [3]int8{8, 10, 12}}
	ECI                 = Mode{0x7, [3]int8{0, 0, 0}}
	FNC1FirstPosition   = Mode{0x5, [3]int8{0, 0, 0}}
	FNC1SecondPosition  = Mode{0x9, [3]int8{0, 0, 0}}
	StructuredAppend    = Mode{0x3, [3]int8{0, 0, 0}}
	Terminator          = Mode{0x0, [3]int8{0, 0, 0}}
)

// Indicator returns the 4-bit mode indicator.
func (m Mode) Indicator() int8 {
	return m.indicator
}

// CharCountBits returns the character-count-indicator width for this mode
// at the given version. The three brackets are versions 1-9, 10-26, and
// 27-40.
func (m Mode) CharCountBits(version Version) int {
	switch {
	case version <= 9:
		return int(m.charCountLen[0])
	case version <= 26:
		return int(m.charCountLen[1])
	default:
		return int(m.charCountLen[2])
	}
}

// alphanumericCharset is the 45-symbol alphanumeric alphabet, in encoding
// order: 0-9 A-Z SP $ % * + - . / :
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
