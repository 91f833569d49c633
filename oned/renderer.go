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
 * There is no 1-D symbology code in the teacher; this file is grounded on
 * the teacher's general style (small exported helpers, explicit error
 * returns) applied to the shared ZXing-style one-dimensional renderer
 * spec.md section 4.K describes: encodeContents returns the minimal
 * "modules" boolean array, and a single shared function scales it to a
 * requested pixel width with quiet-zone margins.
 */

package oned

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
)

// DefaultMargin is the quiet-zone width, in modules, used when the caller
// does not override it via Options.Margin.
const DefaultMargin = 10

// DefaultHeight is the row count used when the caller requests height 0.
const DefaultHeight = 100

// Options configures the shared 1-D renderer and the handful of
// per-symbology hints that don't warrant their own encode signature.
type Options struct {
	Margin int // quiet-zone width override; 0 means DefaultMargin.

	// Code128ForceCodesetB disables Code 128's switching to Set A or C;
	// CODE_128 only, ignored by every other symbology.
	Code128ForceCodesetB bool

	// GS1Format prepends an FNC1 at position 0 (unless already present);
	// CODE_128 only, ignored by every other symbology.
	GS1Format bool
}

// Render scales a boolean run-pattern (one element per narrowest
// bar/space module, true = black) into a BitMatrix of (at least) the
// requested width and height, with a quiet zone of margin modules on
// either side.
func Render(pattern []bool, width, height int, opts Options) (*common.BitMatrix, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimension requested", common.ErrBadInput)
	}

	margin := opts.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	if margin < 0 {
		return nil, fmt.Errorf("%w: negative margin", common.ErrBadInput)
	}

	if height == 0 {
		height = DefaultHeight
	}

	sidesMargin := margin
	codeWidth := len(pattern) + sidesMargin*2

	outputWidth := width
	if outputWidth < codeWidth {
		outputWidth = codeWidth
	}
	outputHeight := height

	multiple := outputWidth / codeWidth
	leftPadding := (outputWidth - len(pattern)*multiple) / 2

	matrix, err := common.NewBitMatrix(outputWidth, outputHeight)
	if err != nil {
		return nil, err
	}

	inputX := 0
	for x := leftPadding; x < outputWidth && inputX < len(pattern); {
		if pattern[inputX] {
			if err := matrix.SetRegion(x, 0, multiple, outputHeight); err != nil {
				return nil, err
			}
		}
		x += multiple
		inputX++
	}

	return matrix, nil
}
