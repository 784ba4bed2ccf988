// Copyright 2026 The EdgeTX Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package proof prints a packed glyph strip to PDF for review. The strip is
// wrapped into rows across landscape A4 pages with a tick under every
// glyph offset of the coordinate table.
package proof

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/raphaelcoeffic/edgetx/internal/fontbitmap"
)

const (
	margin     = 28.0 // pt
	tickLength = 4.0
	labelEvery = 10
	rowGap     = 16.0
)

// Options tunes the proof sheet.
type Options struct {
	Title string
	Zoom  float64 // points per strip pixel, 2 if unset
}

type sheet struct {
	pdf         *gofpdf.Fpdf
	zoom        float64
	pageH, y    float64
	imageSerial int
}

// Write renders s to a PDF file at path.
func Write(path string, s *fontbitmap.Strip, opts Options) error {
	zoom := opts.Zoom
	if zoom <= 0 {
		zoom = 2
	}
	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("build-font-bitmap", true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	sh := &sheet{pdf: pdf, zoom: zoom, pageH: pageH, y: margin}
	if opts.Title != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(margin, margin, opts.Title)
		sh.y += rowGap
	}
	pdf.SetFont("Helvetica", "", 5)
	pdf.SetDrawColor(0xd0, 0, 0)
	pdf.SetLineWidth(0.3)

	rowPx := int((pageW - 2*margin) / zoom)
	if rowPx <= 0 {
		return fmt.Errorf("proof: zoom %g too large for the page", zoom)
	}
	width := s.Coords.Width()
	for x0 := 0; x0 < width; x0 += rowPx {
		if err := sh.row(s, x0, min(x0+rowPx, width), x0+rowPx >= width); err != nil {
			return err
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("proof: %w", err)
	}
	return pdf.OutputFileAndClose(path)
}

// row draws strip columns [x0, x1) and the offsets that fall inside them.
func (sh *sheet) row(s *fontbitmap.Strip, x0, x1 int, last bool) error {
	pdf := sh.pdf
	h := float64(s.Image.Bounds().Dy()) * sh.zoom
	if sh.y+h+rowGap > sh.pageH-margin {
		pdf.AddPage()
		sh.y = margin
	}

	var buf bytes.Buffer
	sub := s.Image.SubImage(image.Rect(x0, 0, x1, s.Image.Bounds().Dy()))
	if err := png.Encode(&buf, sub); err != nil {
		return fmt.Errorf("proof: encoding row: %w", err)
	}
	sh.imageSerial++
	name := "row" + strconv.Itoa(sh.imageSerial)
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opt, &buf)
	pdf.ImageOptions(name, margin, sh.y, float64(x1-x0)*sh.zoom, h, false, opt, 0, "")

	base := sh.y + h
	offsets := s.Coords.Offsets()
	for _, i := range rowTicks(offsets, x0, x1, last) {
		off := offsets[i]
		x := margin + float64(off-x0)*sh.zoom
		pdf.Line(x, base, x, base+tickLength)
		if i%labelEvery == 0 {
			pdf.Text(x+1, base+tickLength+5, strconv.Itoa(i))
		}
	}
	sh.y = base + rowGap
	return nil
}

// rowTicks returns the indices of the offsets ticked on the row holding
// columns [x0, x1). An offset on a row boundary belongs to the row it
// starts; only the last row also takes offsets equal to x1.
func rowTicks(offsets []int, x0, x1 int, last bool) []int {
	var ticks []int
	for i, off := range offsets {
		if off < x0 || off > x1 || (off == x1 && !last) {
			continue
		}
		ticks = append(ticks, i)
	}
	return ticks
}
