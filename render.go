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

package qrgen

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"
)

// ToSVGString returns a scalable vector graphics (SVG) representation of the QR
// code: one path of unit squares for the black modules over a white background,
// with the modules offset by border on both axes.
func (q *QRCode) ToSVGString(border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("%w: border must be non-negative", ErrInvalidArgument)
	}
	if border > (math.MaxInt32-q.Size)/2 {
		return "", fmt.Errorf("%w: border too large", ErrInvalidArgument)
	}

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", q.Size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if q.module(x, y) {
				if !first {
					sb.WriteString(" ")
				}
				first = false
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}

// Image renders the QR code into a paletted image with scale pixels per
// module and a border of border modules on every side.
func (q *QRCode) Image(scale, border int, light, dark color.Color) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be positive", ErrInvalidArgument)
	}
	if border < 0 {
		return nil, fmt.Errorf("%w: border must be non-negative", ErrInvalidArgument)
	}
	dim := (int64(q.Size) + 2*int64(border)) * int64(scale)
	if dim > math.MaxInt32 {
		return nil, fmt.Errorf("%w: image dimensions overflow", ErrInvalidArgument)
	}

	img := image.NewPaletted(image.Rect(0, 0, int(dim), int(dim)), color.Palette{light, dark})
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if !q.module(x, y) {
				continue
			}
			startX := (x + border) * scale
			startY := (y + border) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(startX+dx, startY+dy, 1)
				}
			}
		}
	}

	return img, nil
}

// WritePNG writes the QR code to the given writer as a PNG, scale pixels per
// module with a border of border modules on every side.
func (q *QRCode) WritePNG(w io.Writer, scale, border int, light, dark color.Color) error {
	img, err := q.Image(scale, border, light, dark)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
