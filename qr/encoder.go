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
 * Grounded on the teacher's qrcode.go EncodeSegments/EncodeText and
 * handleConstructorMasking, split so the ByteMatrix-building and masking
 * steps in matrixutil.go/maskutil.go are reusable and independently
 * testable.
 */

package qr

import (
	"fmt"
	"math"

	"github.com/grkuntzmd/barcodegen/common"
)

// Result is everything an encode call produces beyond the bit matrix
// itself: the chosen version, error correction level, and mask, which
// callers sometimes need to report or log.
type Result struct {
	Matrix  *common.BitMatrix
	Version Version
	Level   ECC
	Mask    int
}

// Encode builds a QR symbol from one or more pre-built segments.
func Encode(segs []*Segment, opts Options) (*Result, error) {
	if opts.Mask < -1 || opts.Mask > 7 {
		return nil, fmt.Errorf("%w: mask %d out of range [-1, 7]", common.ErrBadInput, opts.Mask)
	}

	minVersion, maxVersion := MinVersion, MaxVersion
	if opts.Version != 0 {
		if !opts.Version.Valid() {
			return nil, fmt.Errorf("%w: version %d out of range [1, 40]", common.ErrBadInput, opts.Version)
		}
		minVersion, maxVersion = opts.Version, opts.Version
	}

	level := opts.Level

	headers := make([]*common.BitArray, len(segs))
	for i, seg := range segs {
		h, err := buildHeaderBits(seg.Mode, headerOptsFor(seg, opts, i))
		if err != nil {
			return nil, err
		}
		headers[i] = h
	}

	// Start at the smallest version and recompute the bit count at each
	// candidate: the char-count-indicator width is version-dependent, so
	// the total can grow as the version does.
	version, err := fitVersion(segs, headers, level, minVersion, maxVersion)
	if err != nil {
		return nil, err
	}

	if !opts.DisableECLBoost {
		usedBits, err := totalBitsWithHeaders(segs, headers, version)
		if err != nil {
			return nil, err
		}
		for candidate := Medium; candidate <= High; candidate++ {
			if usedBits <= version.NumDataCodewords(candidate)*8 {
				level = candidate
			}
		}
	}

	payload := common.NewBitArray()
	for i, seg := range segs {
		p, err := assemblePayload(headers[i], seg, version)
		if err != nil {
			return nil, err
		}
		payload.AppendBitArray(p)
	}

	dataCapacityBits := version.NumDataCodewords(level) * 8
	if err := terminateAndPad(payload, dataCapacityBits); err != nil {
		return nil, err
	}

	dataBytes := make([]byte, payload.Size()/8)
	payload.ToBytes(0, dataBytes, 0, len(dataBytes))

	codewords, err := interleave(dataBytes, version, level)
	if err != nil {
		return nil, err
	}

	codewordBits := common.NewBitArray()
	for _, b := range codewords {
		if err := codewordBits.AppendBits(uint32(b), 8); err != nil {
			return nil, err
		}
	}

	mask, matrix, err := chooseMask(version, level, codewordBits, opts.Mask)
	if err != nil {
		return nil, err
	}

	return &Result{Matrix: matrix, Version: version, Level: level, Mask: mask}, nil
}

// EncodeText encodes text as a QR symbol, auto-selecting segment modes.
func EncodeText(text string, opts Options) (*Result, error) {
	segs, err := MakeSegments(text)
	if err != nil {
		return nil, err
	}
	return Encode(segs, opts)
}

// headerOptsFor returns the effective Options for building segment i's
// header: only the first segment in a GS1-format symbol carries the FNC1
// marker.
func headerOptsFor(seg *Segment, opts Options, index int) Options {
	h := opts
	if index != 0 {
		h.GS1Format = false
	}
	return h
}

func totalBitsWithHeaders(segs []*Segment, headers []*common.BitArray, version Version) (int, error) {
	total := 0
	for i, seg := range segs {
		ccBits := seg.Mode.CharCountBits(version)
		if ccBits > 0 && seg.NumChars >= 1<<uint(ccBits) {
			return 0, fmt.Errorf("%w: segment length %d does not fit a %d-bit character count field", common.ErrOverflow, seg.NumChars, ccBits)
		}
		total += headers[i].Size() + ccBits + seg.Data.Size()
	}
	return total, nil
}

func fitVersion(segs []*Segment, headers []*common.BitArray, level ECC, minVersion, maxVersion Version) (Version, error) {
	version := minVersion
	bits, err := totalBitsWithHeaders(segs, headers, version)
	if err != nil {
		return 0, err
	}
	for version.NumDataCodewords(level)*8 < bits {
		if version >= maxVersion {
			return 0, fmt.Errorf("%w: data length %d bits does not fit any version in [%d, %d] at level %s", common.ErrOverflow, bits, minVersion, maxVersion, level)
		}
		version++
		bits, err = totalBitsWithHeaders(segs, headers, version)
		if err != nil {
			return 0, err
		}
	}
	return version, nil
}

// chooseMask tries each mask (or only the pinned one) on a freshly built
// function-pattern skeleton, scoring with CalculatePenalty, and keeps
// the lowest-scoring candidate. Ties are broken by the lowest mask number
// because masks are tried in ascending order and only strictly-lower
// scores replace the incumbent.
func chooseMask(version Version, level ECC, codewordBits *common.BitArray, pinnedMask int) (int, *common.BitMatrix, error) {
	candidates := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if pinnedMask >= 0 {
		candidates = []int{pinnedMask}
	}

	bestMask := -1
	bestPenalty := math.MaxInt32
	var bestMatrix *common.BitMatrix

	for _, mask := range candidates {
		skeleton, err := buildFunctionPattern(version)
		if err != nil {
			return 0, nil, err
		}
		if err := embedTypeInfo(level, mask, skeleton); err != nil {
			return 0, nil, err
		}
		if err := embedVersionInfo(version, skeleton); err != nil {
			return 0, nil, err
		}
		if err := embedDataBits(codewordBits, mask, skeleton); err != nil {
			return 0, nil, err
		}

		matrix, err := toBitMatrix(skeleton)
		if err != nil {
			return 0, nil, err
		}

		penalty := CalculatePenalty(matrix)
		if penalty < bestPenalty {
			bestPenalty = penalty
			bestMask = mask
			bestMatrix = matrix
		}
	}

	return bestMask, bestMatrix, nil
}
