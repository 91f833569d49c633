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
 * Demo CLI grounded on the teacher's own use of a flag-driven main plus
 * github.com/pkg/browser to preview generated output, applied here to a
 * generated PNG instead of the teacher's HTML/SVG preview.
 */

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/pkg/browser"

	barcodegen "github.com/grkuntzmd/barcodegen"
)

var formats = map[string]barcodegen.BarcodeFormat{
	"codabar":  barcodegen.CODABAR,
	"code39":   barcodegen.CODE39,
	"code93":   barcodegen.CODE93,
	"code128":  barcodegen.CODE128,
	"itf":      barcodegen.ITF,
	"msi":      barcodegen.MSI,
	"plessey":  barcodegen.PLESSEY,
	"upca":     barcodegen.UPCA,
	"upce":     barcodegen.UPCE,
	"ean8":     barcodegen.EAN8,
	"ean13":    barcodegen.EAN13,
	"qr":       barcodegen.QRCode,
}

func main() {
	format := flag.String("format", "qr", "barcode format: one of codabar, code39, code93, code128, itf, msi, plessey, upca, upce, ean8, ean13, qr")
	contents := flag.String("contents", "HELLO WORLD", "text to encode")
	width := flag.Int("width", 300, "requested pixel width (1-D only; 0 for natural size)")
	height := flag.Int("height", 100, "requested pixel height (1-D only; 0 for natural size)")
	out := flag.String("out", "", "output PNG path; defaults to a temp file")
	open := flag.Bool("open", true, "open the generated PNG in the default viewer")
	flag.Parse()

	bf, ok := formats[strings.ToLower(*format)]
	if !ok {
		log.Fatalf("unknown format %q", *format)
	}

	matrix, err := barcodegen.Encode(*contents, bf, *width, *height, barcodegen.Hints{})
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	img := renderImage(matrix)

	path := *out
	if path == "" {
		f, err := ioutil.TempFile("", "barcodegen-*.png")
		if err != nil {
			log.Fatalf("create temp file: %v", err)
		}
		path = f.Name()
		f.Close()
	}

	if err := writePNG(path, img); err != nil {
		log.Fatalf("write PNG: %v", err)
	}

	fmt.Println(path)

	if *open {
		if err := browser.OpenFile(path); err != nil {
			log.Printf("open browser: %v", err)
		}
	}
}

func renderImage(matrix interface {
	Width() int
	Height() int
	Get(x, y int) bool
}) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, matrix.Width(), matrix.Height()))
	for y := 0; y < matrix.Height(); y++ {
		for x := 0; x < matrix.Width(); x++ {
			if matrix.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
