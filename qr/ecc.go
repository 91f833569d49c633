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

// ECC is the error correction level used by a QR code: the fraction of
// codewords that may be corrupted and still recovered.
type ECC int8

// The four error correction levels, indexed in the order the version
// tables use.
const (
	Low      ECC = iota // ~7% recovery.
	Medium              // ~15% recovery.
	Quartile            // ~25% recovery.
	High                // ~30% recovery.
)

// Bits returns the 2-bit field value this level contributes to the 15-bit
// type info word.
func (e ECC) Bits() int {
	switch e {
	case Low:
		return 0x01
	case Medium:
		return 0x00
	case Quartile:
		return 0x03
	case High:
		return 0x02
	default:
		panic("qr: unknown error correction level")
	}
}

func (e ECC) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}
