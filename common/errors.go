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

package common

import "errors"

// The four error kinds every public encode operation reports by, per the
// package's error taxonomy. Wrap one of these with fmt.Errorf("%w: ...") so
// callers can errors.Is against the kind without string matching.
var (
	// ErrBadInput reports content or parameters the encoder cannot accept:
	// characters outside the symbology's alphabet, a length outside the
	// symbology's bounds, a negative dimension, or a mismatched format.
	ErrBadInput = errors.New("barcodegen: bad input")

	// ErrOverflow reports that the content will not fit any QR version, or
	// exceeds the 80-module bound some 1-D symbologies enforce.
	ErrOverflow = errors.New("barcodegen: content too long to encode")

	// ErrChecksumMismatch reports that a caller-supplied check digit
	// disagrees with the one this package computes.
	ErrChecksumMismatch = errors.New("barcodegen: checksum mismatch")

	// ErrInternalInvariant reports unexpected internal state. It should
	// never occur for valid input; its presence indicates a bug in this
	// package, not in the caller.
	ErrInternalInvariant = errors.New("barcodegen: internal invariant violated")
)
