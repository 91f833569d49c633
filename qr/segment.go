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
 * Grounded on the teacher's qrsegment.go (MakeNumeric/MakeAlphanumeric/
 * MakeBytes/MakeECI/MakeSegments), generalized to use common.BitArray
 * instead of the teacher's one-bit-per-byte bitBuffer and to add Kanji
 * mode, which the teacher never implemented.
 */

package qr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grkuntzmd/barcodegen/common"
)

// Segment is one mode-tagged chunk of a QR payload. A QR symbol may carry
// several segments concatenated together.
type Segment struct {
	Mode     Mode
	NumChars int
	Data     *common.BitArray
}

// ChooseMode scans text once and returns the smallest-footprint data mode
// that can represent it: Numeric, then Alphanumeric, then Byte. Kanji
// selection is the caller's responsibility (via MakeKanji) since it
// requires the caller to assert the text is Shift_JIS-representable.
func ChooseMode(text string) Mode {
	if isNumeric(text) {
		return Numeric
	}
	if isAlphanumeric(text) {
		return Alphanumeric
	}
	return Byte
}

func isNumeric(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(text string) bool {
	for _, r := range text {
		if strings.IndexRune(alphanumericCharset, r) < 0 {
			return false
		}
	}
	return true
}

// MakeNumeric builds a Numeric segment from a string of decimal digits.
func MakeNumeric(digits string) (*Segment, error) {
	if !isNumeric(digits) {
		return nil, fmt.Errorf("%w: numeric segment contains a non-digit character", common.ErrBadInput)
	}

	data := common.NewBitArray()
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, err := strconv.Atoi(digits[i : i+n])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrBadInput, err)
		}
		if err := data.AppendBits(uint32(d), n*3+1); err != nil {
			return nil, err
		}
		i += n
	}

	return &Segment{Mode: Numeric, NumChars: len(digits), Data: data}, nil
}

// MakeAlphanumeric builds an Alphanumeric segment from text drawn from the
// 45-symbol alphanumeric alphabet.
func MakeAlphanumeric(text string) (*Segment, error) {
	if !isAlphanumeric(text) {
		return nil, fmt.Errorf("%w: alphanumeric segment contains an unsupported character", common.ErrBadInput)
	}

	data := common.NewBitArray()
	var i int
	for i = 0; i+1 < len(text); i += 2 {
		value := strings.IndexByte(alphanumericCharset, text[i])*45 + strings.IndexByte(alphanumericCharset, text[i+1])
		if err := data.AppendBits(uint32(value), 11); err != nil {
			return nil, err
		}
	}
	if i < len(text) {
		if err := data.AppendBits(uint32(strings.IndexByte(alphanumericCharset, text[i])), 6); err != nil {
			return nil, err
		}
	}

	return &Segment{Mode: Alphanumeric, NumChars: len(text), Data: data}, nil
}

// MakeBytes builds a Byte segment, encoding each input byte as 8 bits.
func MakeBytes(b []byte) (*Segment, error) {
	data := common.NewBitArray()
	for _, v := range b {
		if err := data.AppendBits(uint32(v), 8); err != nil {
			return nil, err
		}
	}
	return &Segment{Mode: Byte, NumChars: len(b), Data: data}, nil
}

// MakeKanji builds a Kanji segment from Shift_JIS-encoded bytes. Each 2-byte
// pair must fall in the Shift_JIS double-byte ranges 0x8140-0x9FFC or
// 0xE040-0xEBBF.
func MakeKanji(sjis []byte) (*Segment, error) {
	if len(sjis)%2 != 0 {
		return nil, fmt.Errorf("%w: kanji payload has an odd byte count", common.ErrBadInput)
	}

	data := common.NewBitArray()
	numChars := len(sjis) / 2
	for i := 0; i < len(sjis); i += 2 {
		pair := int(sjis[i])<<8 | int(sjis[i+1])
		var subtracted int
		switch {
		case pair >= 0x8140 && pair <= 0x9FFC:
			subtracted = pair - 0x8140
		case pair >= 0xE040 && pair <= 0xEBBF:
			subtracted = pair - 0xC140
		default:
			return nil, fmt.Errorf("%w: byte pair 0x%04X is outside the Shift_JIS kanji ranges", common.ErrBadInput, pair)
		}
		encoded := (subtracted>>8)*0xC0 + subtracted&0xFF
		if err := data.AppendBits(uint32(encoded), 13); err != nil {
			return nil, err
		}
	}

	return &Segment{Mode: Kanji, NumChars: numChars, Data: data}, nil
}

// MakeECI builds an ECI designator segment for the given assignment value.
func MakeECI(assignValue int) (*Segment, error) {
	data := common.NewBitArray()
	switch {
	case assignValue < 0:
		return nil, fmt.Errorf("%w: negative ECI assignment value", common.ErrBadInput)
	case assignValue < 1<<7:
		if err := data.AppendBits(uint32(assignValue), 8); err != nil {
			return nil, err
		}
	case assignValue < 1<<14:
		if err := data.AppendBits(2, 2); err != nil {
			return nil, err
		}
		if err := data.AppendBits(uint32(assignValue), 14); err != nil {
			return nil, err
		}
	case assignValue < 1_000_000:
		if err := data.AppendBits(6, 3); err != nil {
			return nil, err
		}
		if err := data.AppendBits(uint32(assignValue), 21); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: ECI assignment value out of range", common.ErrBadInput)
	}

	return &Segment{Mode: ECI, NumChars: 0, Data: data}, nil
}

// MakeSegments encodes text using the single most efficient mode that can
// represent it in full (Numeric, Alphanumeric, or Byte).
func MakeSegments(text string) ([]*Segment, error) {
	if len(text) == 0 {
		return nil, nil
	}

	switch ChooseMode(text) {
	case Numeric:
		s, err := MakeNumeric(text)
		return []*Segment{s}, err
	case Alphanumeric:
		s, err := MakeAlphanumeric(text)
		return []*Segment{s}, err
	default:
		s, err := MakeBytes([]byte(text))
		return []*Segment{s}, err
	}
}

// totalBits returns the bit length of the header + char-count-indicator +
// data for every segment concatenated at the given version, or an error if
// a segment's character count overflows its indicator width.
func totalBits(segs []*Segment, version Version) (int, error) {
	total := 0
	for _, seg := range segs {
		ccBits := seg.Mode.CharCountBits(version)
		if ccBits > 0 && seg.NumChars >= 1<<uint(ccBits) {
			return 0, fmt.Errorf("%w: segment length %d does not fit a %d-bit character count field", common.ErrOverflow, seg.NumChars, ccBits)
		}
		total += 4 + ccBits + seg.Data.Size()
	}
	return total, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
