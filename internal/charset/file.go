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

package charset

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ReadChars reads a character list: UTF-8 text, optionally with a byte
// order mark, in which every non-space character is one glyph. The result
// is NFC normalized and free of duplicates, in order of first appearance.
func ReadChars(r io.Reader) ([]rune, error) {
	b, err := io.ReadAll(transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("charset: reading character list: %w", err)
	}
	b = norm.NFC.Bytes(b)

	var chars []rune
	seen := make(map[rune]struct{})
	for _, c := range string(b) {
		if c == utf8.RuneError {
			return nil, fmt.Errorf("charset: character list is not valid UTF-8")
		}
		if unicode.IsSpace(c) || unicode.IsControl(c) {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		chars = append(chars, c)
	}
	return chars, nil
}

// ReadCharsFile is ReadChars on the named file.
func ReadCharsFile(name string) ([]rune, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadChars(f)
}
