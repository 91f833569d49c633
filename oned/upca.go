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

package oned

import "github.com/grkuntzmd/barcodegen/common"

// EncodeUPCA renders an 11- or 12-digit UPC-A payload to a BitMatrix by
// prepending a 0 and encoding the result as EAN-13.
func EncodeUPCA(contents string, width, height int, opts Options) (*common.BitMatrix, error) {
	if err := requireDigits(contents); err != nil {
		return nil, err
	}
	if len(contents) != 11 && len(contents) != 12 {
		return nil, errUPCALength(len(contents))
	}
	return EncodeEAN13("0"+contents, width, height, opts)
}

func errUPCALength(n int) error {
	return errBadLength("UPC-A", n, 11, 12)
}
