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
	"io"
	"os"
	"strconv"
	"strings"
)

// Coords is the coordinate table stored in a .specs file: the strip height
// followed by the left edge of every glyph slot and, last, the strip width.
type Coords []int

// Height is the strip height in pixels.
func (c Coords) Height() int { return c[0] }

// Offsets are the glyph left edges, including the trailing strip width.
func (c Coords) Offsets() []int { return c[1:] }

// Width is the total strip width in pixels.
func (c Coords) Width() int { return c[len(c)-1] }

// Widths returns the width of every glyph slot.
func (c Coords) Widths() []int {
	off := c.Offsets()
	if len(off) == 0 {
		return nil
	}
	w := make([]int, len(off)-1)
	for i := range w {
		w[i] = off[i+1] - off[i]
	}
	return w
}

// String formats c the way the firmware build reads it: decimal integers
// joined by commas, without a trailing newline.
func (c Coords) String() string {
	s := make([]string, len(c))
	for i, v := range c {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

func (c Coords) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

// ParseCoords reads a table written by Coords.String.
func ParseCoords(s string) (Coords, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	c := make(Coords, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("fontbitmap: coordinate %d: %w", i, err)
		}
		c[i] = v
	}
	if len(c) < 2 {
		return nil, fmt.Errorf("fontbitmap: coordinate table too short")
	}
	return c, nil
}

func writeCoordsFile(name string, c Coords) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
