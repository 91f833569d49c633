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
 * Thin façade dispatching by BarcodeFormat to the qr and oned packages.
 * Grounded on the teacher's top-level qrcode.go entry points
 * (EncodeText/EncodeSegments), generalized to cover every symbology
 * BarcodeFormat names.
 */

package barcodegen

import (
	"fmt"

	"github.com/grkuntzmd/barcodegen/common"
	"github.com/grkuntzmd/barcodegen/oned"
	"github.com/grkuntzmd/barcodegen/qr"
)

// BarcodeFormat identifies which symbology Encode should produce.
type BarcodeFormat int

const (
	CODABAR BarcodeFormat = iota
	CODE39
	CODE93
	CODE128
	ITF
	MSI
	PLESSEY
	UPCA
	UPCE
	EAN8
	EAN13
	QRCode
)

func (f BarcodeFormat) String() string {
	switch f {
	case CODABAR:
		return "CODABAR"
	case CODE39:
		return "CODE_39"
	case CODE93:
		return "CODE_93"
	case CODE128:
		return "CODE_128"
	case ITF:
		return "ITF"
	case MSI:
		return "MSI"
	case PLESSEY:
		return "PLESSEY"
	case UPCA:
		return "UPC_A"
	case UPCE:
		return "UPC_E"
	case EAN8:
		return "EAN_8"
	case EAN13:
		return "EAN_13"
	case QRCode:
		return "QR_CODE"
	default:
		return "UNKNOWN"
	}
}

// Hints carries the closed set of optional knobs every encoder
// recognizes. A zero-value Hints selects each symbology's documented
// defaults.
type Hints struct {
	ErrorCorrection      qr.ECC // QR only; default Low.
	CharacterSet         string // QR BYTE mode only; default ISO-8859-1.
	QRVersion            int    // QR only; 0 means automatic.
	DisableECI           bool   // QR only.
	GS1Format            bool   // QR and CODE_128 only.
	Code128ForceCodesetB bool   // CODE_128 only; disables switching to Set A or C.
	Margin               int    // 1-D only; 0 means the symbology's default.
}

// Encode renders contents in the requested format to a BitMatrix. width
// and height are pixel preferences (1-D symbologies only; QR is always
// rendered at its natural module size); zero means natural size, negative
// is rejected, and the returned matrix may be larger than requested when
// the minimum pattern width exceeds it.
func Encode(contents string, format BarcodeFormat, width, height int, hints Hints) (*common.BitMatrix, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimension requested", common.ErrBadInput)
	}

	if format == QRCode {
		opts := qr.Options{
			Level:           hints.ErrorCorrection,
			CharacterSet:    hints.CharacterSet,
			DisableECI:      hints.DisableECI,
			GS1Format:       hints.GS1Format,
			Mask:            -1,
		}
		if hints.QRVersion != 0 {
			opts.Version = qr.Version(hints.QRVersion)
		}
		result, err := qr.EncodeText(contents, opts)
		if err != nil {
			return nil, err
		}
		return result.Matrix, nil
	}

	oneDOpts := oned.Options{
		Margin:               hints.Margin,
		Code128ForceCodesetB: hints.Code128ForceCodesetB,
		GS1Format:            hints.GS1Format,
	}

	switch format {
	case CODABAR:
		return oned.EncodeCodabar(contents, width, height, oneDOpts)
	case CODE39:
		return oned.EncodeCode39(contents, width, height, oneDOpts)
	case CODE93:
		return oned.EncodeCode93(contents, width, height, oneDOpts)
	case CODE128:
		return oned.EncodeCode128(contents, width, height, oneDOpts)
	case ITF:
		return oned.EncodeITF(contents, width, height, oneDOpts)
	case MSI:
		return oned.EncodeMSI(contents, width, height, oneDOpts)
	case PLESSEY:
		return oned.EncodePlessey(contents, width, height, oneDOpts)
	case UPCA:
		return oned.EncodeUPCA(contents, width, height, oneDOpts)
	case UPCE:
		return oned.EncodeUPCE(contents, width, height, oneDOpts)
	case EAN8:
		return oned.EncodeEAN8(contents, width, height, oneDOpts)
	case EAN13:
		return oned.EncodeEAN13(contents, width, height, oneDOpts)
	default:
		return nil, fmt.Errorf("%w: unknown barcode format %v", common.ErrBadInput, format)
	}
}
