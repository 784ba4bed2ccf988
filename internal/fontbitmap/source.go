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
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrFontNotFound is returned when no font file with a supported extension
// exists for the requested name.
var ErrFontNotFound = errors.New("fontbitmap: font not found")

// fontExts are tried in order.
var fontExts = []string{".ttf", ".otf", ".bdf"}

// glyphSource renders single characters into coverage masks. Mask bounds
// are in pixels relative to the pen origin on the baseline, with y
// increasing downwards.
type glyphSource interface {
	metrics() (font.Metrics, error)
	glyph(r rune) (*image.Alpha, error)
}

// loadFont finds name in dir and opens it at size pixels per em.
func loadFont(dir, name string, size int) (glyphSource, string, error) {
	for _, ext := range fontExts {
		path := filepath.Join(dir, name+ext)
		b, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		var src glyphSource
		if ext == ".bdf" {
			src, err = newBDFSource(b)
		} else {
			src, err = newSFNTSource(b, size)
		}
		if err != nil {
			return nil, "", fmt.Errorf("fontbitmap: %s: %w", path, err)
		}
		return src, path, nil
	}
	return nil, "", fmt.Errorf("%w: font file %s not found in %s", ErrFontNotFound, name, dir)
}

// sfntSource rasterizes TrueType and OpenType outlines.
type sfntSource struct {
	f    *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
	z    rasterizer
}

func newSFNTSource(b []byte, size int) (*sfntSource, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d", size)
	}
	f, err := sfnt.Parse(b)
	if err != nil {
		return nil, err
	}
	return &sfntSource{f: f, ppem: fixed.I(size)}, nil
}

func (s *sfntSource) metrics() (font.Metrics, error) {
	return s.f.Metrics(&s.buf, s.ppem, font.HintingNone)
}

// glyph renders r, or the font's .notdef glyph when r is not mapped.
func (s *sfntSource) glyph(r rune) (*image.Alpha, error) {
	x, err := s.f.GlyphIndex(&s.buf, r)
	if err != nil {
		return nil, fmt.Errorf("fontbitmap: glyph index of %q: %w", r, err)
	}
	segments, err := s.f.LoadGlyph(&s.buf, x, s.ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("fontbitmap: loading glyph %q: %w", r, err)
	}
	return s.z.rasterize(segments), nil
}

// faceSource adapts a font.Face, as used for bitmap fonts whose size is
// fixed by the file.
type faceSource struct {
	face font.Face
}

func newBDFSource(b []byte) (*faceSource, error) {
	f, err := bdf.Parse(b)
	if err != nil {
		return nil, err
	}
	return &faceSource{face: f.NewFace()}, nil
}

func (s *faceSource) metrics() (font.Metrics, error) {
	return s.face.Metrics(), nil
}

// glyph returns an empty mask for runes the face does not have.
func (s *faceSource) glyph(r rune) (*image.Alpha, error) {
	dr, mask, maskp, _, ok := s.face.Glyph(fixed.Point26_6{}, r)
	if !ok || mask == nil {
		return image.NewAlpha(image.Rectangle{}), nil
	}
	a := image.NewAlpha(dr)
	draw.Draw(a, dr, mask, maskp, draw.Src)
	return a, nil
}
