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

package fontbitmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// extraGlyphWidths are the pixel widths of the symbols drawn in the extra
// bitmap, left to right. The firmware's symbol indices depend on this exact
// sequence.
var extraGlyphWidths = [...]int{
	14, 14, 12, 12, 13, 13, 13, 13, 13,
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
}

// extraBitmapMaxWidth sizes the working canvas when there is no extra
// bitmap. It equals the sum of extraGlyphWidths. The strip is cropped
// afterwards, so it never reaches the output.
const extraBitmapMaxWidth = 297

func extraBitmapName(size int) string {
	return fmt.Sprintf("extra_%dpx.png", size)
}

// extraGlyphsWidth is the sum of extraGlyphWidths.
func extraGlyphsWidth() int {
	n := 0
	for _, w := range extraGlyphWidths {
		n += w
	}
	return n
}

// loadExtraBitmap reads the pre-rendered symbols for size from dir. A
// missing file is not an error: it returns a nil image.
func loadExtraBitmap(dir string, size int) (*image.RGBA, error) {
	f, err := os.Open(filepath.Join(dir, extraBitmapName(size)))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("fontbitmap: decoding %s: %w", f.Name(), err)
	}
	return toRGB(m), nil
}

// toRGB copies m into an opaque RGBA image anchored at (0, 0). Alpha is
// discarded, not composited: a transparent pixel keeps its color.
func toRGB(m image.Image) *image.RGBA {
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{c.R, c.G, c.B, 0xff})
		}
	}
	return dst
}
