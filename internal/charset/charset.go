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

// Package charset holds the character tables the radio firmware expects
// its bitmap fonts to contain, in the order the renderer indexes them.
//
// A subset is laid out as the printable ASCII block, then the extra
// symbol block, then the language-specific characters. The renderer maps
// a code point to a glyph index by position, so this order is part of the
// font format.
package charset

import (
	"fmt"
	"sort"

	"golang.org/x/text/width"
)

// FirstExtraChar is the first code point of the extra symbol block. The
// block lives in the private use area so it never collides with a glyph
// a real font provides.
const FirstExtraChar = '\uE000'

// NumExtraChars is the number of symbols in the extra block.
const NumExtraChars = 21

// Slots reserved for ASCII in the renderer's index: 128 code points minus
// the 32 control characters.
const asciiSlots = 128 - 32

var (
	standardChars = printableASCII()
	extraChars    = extraBlock()

	standardSet = toSet(standardChars)
	extraSet    = toSet(extraChars)
)

// specialChars are the characters each language adds after the extra
// block. CJK languages take theirs from a character list file instead,
// since their glyph set follows the translations.
var specialChars = map[string]string{
	"en": "",
	"nl": "",
	"fr": "éèàîçêùôûâëïüœÉÈÀÎÇÊÙÔÛÂËÏÜŒ",
	"de": "ÄäÖöÜüß",
	"it": "àéèìíòóùÀÈÉÌÒÙ",
	"cz": "áčďéěíňóřšťúůýžÁČĎÉĚÍŇÓŘŠŤÚŮÝŽ",
	"es": "ÑñÁáÉéÍíÓóÚúÜü¿¡",
	"pl": "ąćęłńóśżźĄĆĘŁŃÓŚŻŹ",
	"pt": "ãáâàçéêíõóôúÃÁÂÀÇÉÊÍÕÓÔÚ",
	"se": "åäöÅÄÖ",
	"fi": "åäöÅÄÖ",
	"ru": cyrillic(),
	"ua": cyrillic() + "ІіЇїЄєҐґ",
	"he": "אבגדהוזחטיךכלםמןנסעףפץצקרשת",
	"cn": "",
	"tw": "",
	"jp": "",
	"ko": "",
}

func printableASCII() []rune {
	chars := make([]rune, 0, 0x7f-0x20)
	for r := rune(0x20); r < 0x7f; r++ {
		chars = append(chars, r)
	}
	return chars
}

func extraBlock() []rune {
	chars := make([]rune, NumExtraChars)
	for i := range chars {
		chars[i] = FirstExtraChar + rune(i)
	}
	return chars
}

func cyrillic() string {
	var chars []rune
	for r := 'А'; r <= 'я'; r++ {
		chars = append(chars, r)
	}
	return string(chars) + "Ёё"
}

func toSet(chars []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// StandardChars returns the characters every subset starts with.
func StandardChars() []rune { return append([]rune(nil), standardChars...) }

// ExtraChars returns the sentinel block that is replaced by a pre-rendered
// symbol bitmap instead of being rasterized from the font.
func ExtraChars() []rune { return append([]rune(nil), extraChars...) }

// NumStandardChars is len(StandardChars()).
func NumStandardChars() int { return len(standardChars) }

// PaddingSlots is the number of ASCII index slots with no glyph. The packer
// fills them with zero-width entries ahead of the extra block.
func PaddingSlots() int {
	if n := asciiSlots - len(standardChars); n > 0 {
		return n
	}
	return 0
}

func IsStandard(r rune) bool {
	_, ok := standardSet[r]
	return ok
}

func IsExtra(r rune) bool {
	_, ok := extraSet[r]
	return ok
}

// IsCJK reports whether r is a double-width East Asian character.
func IsCJK(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// Subsets lists the known subset identifiers in sorted order.
func Subsets() []string {
	ids := []string{ASCII}
	for id := range specialChars {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ASCII names the subset holding only the standard characters, with no
// extra block.
const ASCII = "ascii"

// Get returns the ordered characters of the subset id.
func Get(id string) (Subset, error) {
	if id == ASCII {
		return Subset(StandardChars()), nil
	}
	special, ok := specialChars[id]
	if !ok {
		return nil, fmt.Errorf("charset: unknown subset %q", id)
	}
	s := make(Subset, 0, len(standardChars)+len(extraChars)+len(special))
	s = append(s, standardChars...)
	s = append(s, extraChars...)
	return s.Append([]rune(special)), nil
}

// Subset is an ordered list of distinct code points.
type Subset []rune

// Append returns s extended with the runes of chars it does not already
// contain, in their original order.
func (s Subset) Append(chars []rune) Subset {
	seen := toSet(s)
	for _, r := range chars {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		s = append(s, r)
	}
	return s
}

// Counts breaks a subset down by character class.
type Counts struct {
	Standard, Extra, CJK, Other int
}

func (s Subset) Classify() Counts {
	var c Counts
	for _, r := range s {
		switch {
		case IsStandard(r):
			c.Standard++
		case IsExtra(r):
			c.Extra++
		case IsCJK(r):
			c.CJK++
		default:
			c.Other++
		}
	}
	return c
}

func (s Subset) String() string { return string(s) }
