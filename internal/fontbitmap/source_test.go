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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelcoeffic/edgetx/internal/charset"
)

// A 5x7 'A' on an 8 pixel body.
const testBDF = `STARTFONT 2.1
FONT -test-fixed-medium-r-normal--8-80-75-75-c-60-iso10646-1
SIZE 8 75 75
FONTBOUNDINGBOX 5 8 0 -1
STARTPROPERTIES 2
FONT_ASCENT 7
FONT_DESCENT 1
ENDPROPERTIES
CHARS 1
STARTCHAR A
ENCODING 65
SWIDTH 750 0
DWIDTH 6 0
BBX 5 7 0 0
BITMAP
20
50
88
88
F8
88
88
ENDCHAR
ENDFONT
`

func TestBDFGlyph(t *testing.T) {
	src, err := newBDFSource([]byte(testBDF))
	require.NoError(t, err)

	a, err := src.glyph('A')
	require.NoError(t, err)
	ink := inkBounds(a)
	assert.Equal(t, 5, ink.Dx())
	assert.Equal(t, 7, ink.Dy())
}

func TestLoadFontOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "F.bdf"), []byte(testBDF), 0o644))

	src, path, err := loadFont(dir, "F", testSize)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "F.bdf"), path)
	assert.IsType(t, &faceSource{}, src)

	_, _, err = loadFont(dir, "G", testSize)
	assert.ErrorIs(t, err, ErrFontNotFound)
}

func TestPackBDF(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "F.bdf"), []byte(testBDF), 0o644))
	b, err := New(Options{Subset: charset.ASCII, Size: 8, Font: "F", FontsDir: dir, Logger: quietLogger()})
	require.NoError(t, err)

	s, err := b.Pack()
	require.NoError(t, err)
	assertStripShape(t, s)

	assert.Equal(t, spaceWidth, s.Coords.Widths()[0])
	assert.Equal(t, 5, s.Coords.Widths()['A'-' '])
}
