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

// Package fontbitmap packs a font into the glyph strip format used by the
// radio firmware: one grayscale image with every glyph of a character
// subset laid edge to edge, and a coordinate table giving each glyph's left
// edge.
//
// The extra symbol block of a subset is not rasterized. It is replaced by
// a pre-rendered bitmap, extra_<size>px.png, whose symbols have the fixed
// widths in extraGlyphWidths. When that bitmap does not exist the block is
// left out entirely: no pixels and no coordinate entries.
package fontbitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"

	"github.com/raphaelcoeffic/edgetx/internal/charset"
)

// ErrNoExtraBitmap is returned in strict mode when the subset contains
// extra chars and there is no extra bitmap for the requested size.
var ErrNoExtraBitmap = errors.New("fontbitmap: no extra bitmap for subset with extra chars")

// The space glyph is never rasterized, only skipped over.
const spaceWidth = 4

// Options configures New. Subset, Size and Font are required.
type Options struct {
	Subset   string
	Chars    []rune // appended to the subset
	Size     int    // pixels per em
	Font     string // file name without extension
	FontsDir string // where fonts and extra bitmaps live

	// Strict turns a missing extra bitmap into ErrNoExtraBitmap instead
	// of silently dropping the extra chars.
	Strict bool

	Foreground color.Color // default black
	Background color.Color // default white

	Logger logrus.FieldLogger
}

// FontBitmap renders one character subset of one font at one size.
type FontBitmap struct {
	chars  charset.Subset
	fg, bg color.Color
	src    glyphSource
	extra  *image.RGBA
	strict bool
	log    logrus.FieldLogger
}

// Strip is a packed font: the glyph image and its coordinate table.
type Strip struct {
	Image  *image.Gray
	Coords Coords
}

type glyph struct {
	mask    *image.Alpha
	ink     image.Rectangle
	originX int // left edge of the glyph's slot, relative to the pen
	width   int
}

// New resolves the subset, loads the font and, if present, the extra
// bitmap.
func New(opts Options) (*FontBitmap, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("fontbitmap: invalid size %d", opts.Size)
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{
		"font":   opts.Font,
		"size":   opts.Size,
		"subset": opts.Subset,
	})

	chars, err := charset.Get(opts.Subset)
	if err != nil {
		return nil, err
	}
	chars = chars.Append(opts.Chars)

	src, path, err := loadFont(opts.FontsDir, opts.Font, opts.Size)
	if err != nil {
		return nil, err
	}
	extra, err := loadExtraBitmap(opts.FontsDir, opts.Size)
	if err != nil {
		return nil, err
	}

	counts := chars.Classify()
	log.WithFields(logrus.Fields{
		"path":     path,
		"standard": counts.Standard,
		"extra":    counts.Extra,
		"cjk":      counts.CJK,
		"other":    counts.Other,
	}).Debug("font loaded")
	switch {
	case extra == nil:
		log.Debugf("no %s", extraBitmapName(opts.Size))
	case extra.Bounds().Dx() != extraGlyphsWidth():
		log.Warnf("%s is %d px wide, extra glyph widths add up to %d px",
			extraBitmapName(opts.Size), extra.Bounds().Dx(), extraGlyphsWidth())
	}

	fg, bg := opts.Foreground, opts.Background
	if fg == nil {
		fg = color.Black
	}
	if bg == nil {
		bg = color.White
	}
	return &FontBitmap{
		chars:  chars,
		fg:     fg,
		bg:     bg,
		src:    src,
		extra:  extra,
		strict: opts.Strict,
		log:    log,
	}, nil
}

// Chars returns the characters in strip order.
func (b *FontBitmap) Chars() charset.Subset { return append(charset.Subset(nil), b.chars...) }

func (b *FontBitmap) measure(c rune) (*glyph, error) {
	if c == ' ' {
		return &glyph{width: spaceWidth}, nil
	}
	mask, err := b.src.glyph(c)
	if err != nil {
		return nil, err
	}
	g := &glyph{mask: mask, ink: inkBounds(mask)}
	if g.ink.Empty() {
		return g, nil
	}
	g.originX = min(0, g.ink.Min.X)
	g.width = g.ink.Max.X - g.originX
	return g, nil
}

// Pack lays out the subset in one pass and returns the cropped strip.
func (b *FontBitmap) Pack() (*Strip, error) {
	m, err := b.src.metrics()
	if err != nil {
		return nil, fmt.Errorf("fontbitmap: font metrics: %w", err)
	}
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	// Measure everything first. The sums give an upper bound for the
	// working canvas, and the ink extent gives the vertical crop.
	glyphs := make(map[rune]*glyph, len(b.chars))
	textWidth, inkTop, inkBottom := 0, 0, 0
	hasExtra := false
	for _, c := range b.chars {
		if charset.IsExtra(c) {
			hasExtra = true
			continue
		}
		if _, ok := glyphs[c]; ok {
			continue
		}
		g, err := b.measure(c)
		if err != nil {
			return nil, err
		}
		glyphs[c] = g
		textWidth += g.width
		if !g.ink.Empty() {
			inkTop = max(inkTop, -g.ink.Min.Y)
			inkBottom = max(inkBottom, g.ink.Max.Y)
		}
	}

	extra := b.extra
	extraWidth := extraBitmapMaxWidth
	if extra != nil {
		extraWidth = max(extra.Bounds().Dx(), extraGlyphsWidth())
	} else if hasExtra {
		if b.strict {
			return nil, ErrNoExtraBitmap
		}
		b.log.Debug("skipping extra chars")
	}

	// The pen sits at y = top. Rows above the tallest glyph are cropped
	// away, leaving baseline rows from there to the bottom of the descent.
	top := max(ascent, inkTop)
	offsetY := top - inkTop
	baseline := inkTop + descent

	canvas := image.NewRGBA(image.Rect(0, 0, textWidth+extraWidth, top+max(descent, inkBottom)))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(b.bg), image.Point{}, draw.Src)
	fg := image.NewUniform(b.fg)

	var coords Coords
	width := 0
	for _, c := range b.chars {
		if charset.IsExtra(c) {
			if extra == nil {
				continue
			}
			// Slots for the ASCII code points with no glyph.
			for i := 0; i < charset.PaddingSlots(); i++ {
				coords = append(coords, width)
			}
			draw.Draw(canvas, extra.Bounds().Add(image.Pt(width, offsetY)), extra, image.Point{}, draw.Src)
			for _, w := range extraGlyphWidths {
				coords = append(coords, width)
				width += w
			}
			// Pasted once for the whole block.
			extra = nil
			continue
		}

		g := glyphs[c]
		if g.mask != nil {
			dot := image.Pt(width-g.originX, top)
			draw.DrawMask(canvas, g.mask.Bounds().Add(dot), fg, image.Point{}, g.mask, g.mask.Bounds().Min, draw.Over)
		}
		coords = append(coords, width)
		width += g.width
	}
	coords = append(coords, width)

	img := luma(canvas, image.Rect(0, offsetY, width, offsetY+baseline))
	coords = append(Coords{img.Bounds().Dy()}, coords...)

	b.log.WithFields(logrus.Fields{
		"glyphs": len(coords) - 2,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Debug("packed")
	return &Strip{Image: img, Coords: coords}, nil
}

// Generate packs the font and writes filename.png and, if coordsFile is
// set, filename.specs.
func (b *FontBitmap) Generate(filename string, coordsFile bool) (*Strip, error) {
	s, err := b.Pack()
	if err != nil {
		return nil, err
	}
	if err := writePNG(filename+".png", s.Image); err != nil {
		return nil, err
	}
	if coordsFile {
		if err := writeCoordsFile(filename+".specs", s.Coords); err != nil {
			return nil, err
		}
	}
	b.log.WithFields(logrus.Fields{
		"output": filename,
		"width":  s.Coords.Width(),
		"height": s.Coords.Height(),
	}).Info("font bitmap written")
	return s, nil
}

func writePNG(name string, m image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("fontbitmap: encoding %s: %w", name, err)
	}
	return f.Close()
}
