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
 * Grounded on the teacher's qrcode.go addECCAndInterleave, reworked to call
 * out to the standalone reedsolomon package instead of inline RS math.
 */

package qr

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
	"github.com/grkuntzmd/barcodegen/gf"
	"github.com/grkuntzmd/barcodegen/reedsolomon"
)

// interleave splits data into the version+level's Reed-Solomon block
// layout, computes each block's EC codewords, and interleaves data then EC
// bytes across blocks into the final codeword sequence.
func interleave(data []byte, version Version, level ECC) ([]byte, error) {
	numBlocks := version.NumBlocks(level)
	ecPerBlock := version.NumECCodewordsPerBlock(level)
	totalCodewords := version.TotalCodewords()

	if len(data) != version.NumDataCodewords(level) {
		return nil, fmt.Errorf("%w: data is %d bytes, expected %d", common.ErrInternalInvariant, len(data), version.NumDataCodewords(level))
	}

	numShortBlocks := numBlocks - totalCodewords%numBlocks
	shortBlockDataLen := totalCodewords/numBlocks - ecPerBlock

	dataBlocks := make([][]byte, numBlocks)
	ecBlocks := make([][]byte, numBlocks)

	k := 0
	for i := 0; i < numBlocks; i++ {
		dataLen := shortBlockDataLen
		if i >= numShortBlocks {
			dataLen++
		}

		block := make([]int, dataLen+ecPerBlock)
		for j := 0; j < dataLen; j++ {
			block[j] = int(data[k+j])
		}
		k += dataLen

		if err := reedsolomon.Encode(gf.QRField, block, ecPerBlock); err != nil {
			return nil, err
		}

		dataBlocks[i] = make([]byte, dataLen)
		for j := 0; j < dataLen; j++ {
			dataBlocks[i][j] = byte(block[j])
		}
		ecBlocks[i] = make([]byte, ecPerBlock)
		for j := 0; j < ecPerBlock; j++ {
			ecBlocks[i][j] = byte(block[dataLen+j])
		}
	}

	result := make([]byte, 0, totalCodewords)
	maxDataLen := shortBlockDataLen + 1
	for i := 0; i < maxDataLen; i++ {
		for _, block := range dataBlocks {
			if i < len(block) {
				result = append(result, block[i])
			}
		}
	}
	for i := 0; i < ecPerBlock; i++ {
		for _, block := range ecBlocks {
			result = append(result, block[i])
		}
	}

	if len(result) != totalCodewords {
		return nil, fmt.Errorf("%w: interleaved output is %d bytes, expected %d", common.ErrInternalInvariant, len(result), totalCodewords)
	}
	return result, nil
}
