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

package proof

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelcoeffic/edgetx/internal/fontbitmap"
)

// testStrip returns a strip of n glyphs, each w pixels wide and h high.
func testStrip(n, w, h int) *fontbitmap.Strip {
	img := image.NewGray(image.Rect(0, 0, n*w, h))
	coords := fontbitmap.Coords{h}
	for i := 0; i <= n; i++ {
		coords = append(coords, i*w)
	}
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	return &fontbitmap.Strip{Image: img, Coords: coords}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof.pdf")
	// Wide enough to wrap onto several rows and pages.
	require.NoError(t, Write(path, testStrip(800, 12, 20), Options{Title: "font_16"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
	assert.Greater(t, bytes.Count(b, []byte("/Type /Page\n")), 1)
}

func TestWriteZoomTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof.pdf")
	err := Write(path, testStrip(2, 4, 4), Options{Zoom: 10000})
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestRowTicks(t *testing.T) {
	offsets := []int{0, 4, 8, 10, 12, 16}

	// 8 sits on a row boundary and 16 ends the strip: each is ticked once.
	rows := []struct {
		x0, x1 int
		last   bool
		want   []int
	}{
		{0, 8, false, []int{0, 1}},
		{8, 16, true, []int{2, 3, 4, 5}},
	}
	seen := map[int]int{}
	for _, r := range rows {
		got := rowTicks(offsets, r.x0, r.x1, r.last)
		assert.Equal(t, r.want, got, "row [%d, %d)", r.x0, r.x1)
		for _, i := range got {
			seen[i]++
		}
	}
	for i := range offsets {
		assert.Equal(t, 1, seen[i], "offset %d", i)
	}
}
