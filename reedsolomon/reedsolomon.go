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
 * Generalizes the teacher's qrcode.go reedSolomonComputeDivisor/
 * reedSolomonComputeRemainder (which operated directly on GF(2^8)/0x11D
 * byte slices) to run over any gf.Field, caching generator polynomials by
 * degree the way AshokShau-qrcode's reedsolomon.go computes a fresh
 * generator per call but this package memoizes via gf.Field.Generator.
 */

package reedsolomon

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
	"github.com/grkuntzmd/barcodegen/gf"
)

// Encode computes ecCount error-correction symbols for message (integers
// in field) and appends them in place: message must already have ecCount
// trailing slots reserved, which this function fills.
func Encode(field *gf.Field, message []int, ecCount int) error {
	if ecCount <= 0 {
		return fmt.Errorf("%w: error correction symbol count must be positive", common.ErrBadInput)
	}
	if ecCount > field.Size() {
		return fmt.Errorf("%w: error correction symbol count %d exceeds field size %d", common.ErrBadInput, ecCount, field.Size())
	}
	dataCount := len(message) - ecCount
	if dataCount <= 0 {
		return fmt.Errorf("%w: message has no data symbols", common.ErrBadInput)
	}

	generator := field.Generator(ecCount)

	info := make([]int, dataCount)
	copy(info, message[:dataCount])
	infoPoly := gf.NewPoly(field, info)

	infoPoly, err := infoPoly.MultiplyMonomial(ecCount, 1)
	if err != nil {
		return err
	}

	_, remainder, err := infoPoly.Divide(generator)
	if err != nil {
		return err
	}

	coefficients := remainder.Coefficients()
	numZeroCoefficients := ecCount - len(coefficients)
	for i := 0; i < numZeroCoefficients; i++ {
		message[dataCount+i] = 0
	}
	copy(message[dataCount+numZeroCoefficients:], coefficients)
	return nil
}
