// Copyright 2016 Google Inc.
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
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type point struct {
	x, y float32
}

func pointOf(p fixed.Point26_6) point {
	return point{
		x: float32(p.X) / 64,
		y: float32(p.Y) / 64,
	}
}

func mul(m *f32.Aff3, p point) point {
	return point{
		x: m[0]*p.x + m[1]*p.y + m[2],
		y: m[3]*p.x + m[4]*p.y + m[5],
	}
}

// pixelBounds quantizes the sub-pixel outline bounds to whole pixels and
// returns the transform from glyph space to rasterizer space, where the
// top-left corner of the bounds is (0, 0).
func pixelBounds(b fixed.Rectangle26_6) (bounds image.Rectangle, transform f32.Aff3) {
	bounds.Min.X = b.Min.X.Floor()
	bounds.Min.Y = b.Min.Y.Floor()
	bounds.Max.X = b.Max.X.Ceil()
	bounds.Max.Y = b.Max.Y.Ceil()
	return bounds, f32.Aff3{
		1, 0, -float32(bounds.Min.X),
		0, 1, -float32(bounds.Min.Y),
	}
}

type rasterizer struct {
	z vector.Rasterizer
}

// rasterize returns the coverage mask of an outline. The mask's bounds are
// the outline's pixel bounds, so its origin is the glyph origin.
func (r *rasterizer) rasterize(segments sfnt.Segments) *image.Alpha {
	if len(segments) == 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	bounds, transform := pixelBounds(segments.Bounds())
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	z := &r.z
	z.Reset(w, h)
	z.DrawOp = draw.Src
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			p := mul(&transform, pointOf(seg.Args[0]))
			z.MoveTo(p.x, p.y)
			open = true
		case sfnt.SegmentOpLineTo:
			p := mul(&transform, pointOf(seg.Args[0]))
			z.LineTo(p.x, p.y)
		case sfnt.SegmentOpQuadTo:
			p := mul(&transform, pointOf(seg.Args[0]))
			q := mul(&transform, pointOf(seg.Args[1]))
			z.QuadTo(p.x, p.y, q.x, q.y)
		case sfnt.SegmentOpCubeTo:
			p := mul(&transform, pointOf(seg.Args[0]))
			q := mul(&transform, pointOf(seg.Args[1]))
			s := mul(&transform, pointOf(seg.Args[2]))
			z.CubeTo(p.x, p.y, q.x, q.y, s.x, s.y)
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// Same pixels, glyph-space coordinates.
	mask.Rect = bounds
	return mask
}

// inkBounds returns the smallest rectangle holding every pixel of m with
// nonzero coverage.
func inkBounds(m *image.Alpha) image.Rectangle {
	var ink image.Rectangle
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[(y-b.Min.Y)*m.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[x-b.Min.X] == 0 {
				continue
			}
			ink = ink.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return ink
}

// luma converts src to 8-bit gray using the ITU-R 601-2 transform
// L = R*299/1000 + G*587/1000 + B*114/1000. src must be opaque.
func luma(src *image.RGBA, r image.Rectangle) *image.Gray {
	r = r.Intersect(src.Bounds())
	dst := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		s := src.Pix[src.PixOffset(r.Min.X, r.Min.Y+y):]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+r.Dx()]
		for i := range d {
			red, green, blue := uint32(s[4*i+0]), uint32(s[4*i+1]), uint32(s[4*i+2])
			d[i] = uint8((19595*red + 38470*green + 7471*blue + 1<<15) >> 16)
		}
	}
	return dst
}
