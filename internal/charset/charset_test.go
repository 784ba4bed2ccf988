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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardChars(t *testing.T) {
	chars := StandardChars()
	require.Len(t, chars, 95)
	assert.Equal(t, ' ', chars[0])
	assert.Equal(t, '~', chars[len(chars)-1])
	assert.Equal(t, 1, PaddingSlots())

	// Callers get a copy.
	chars[0] = 'x'
	assert.Equal(t, ' ', StandardChars()[0])
}

func TestGetOrder(t *testing.T) {
	s, err := Get("de")
	require.NoError(t, err)

	n := NumStandardChars()
	require.Len(t, s, n+NumExtraChars+7)
	assert.Equal(t, StandardChars(), []rune(s[:n]))
	assert.Equal(t, ExtraChars(), []rune(s[n:n+NumExtraChars]))
	assert.Equal(t, "ÄäÖöÜüß", string(s[n+NumExtraChars:]))
}

func TestGetASCII(t *testing.T) {
	s, err := Get(ASCII)
	require.NoError(t, err)
	assert.Equal(t, Counts{Standard: 95}, s.Classify())
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("xx")
	assert.Error(t, err)
}

func TestSubsetsKnown(t *testing.T) {
	for _, id := range Subsets() {
		_, err := Get(id)
		assert.NoError(t, err, id)
	}
	assert.Contains(t, Subsets(), "cn")
	assert.Contains(t, Subsets(), ASCII)
}

func TestClassify(t *testing.T) {
	s, err := Get("fr")
	require.NoError(t, err)
	s = s.Append([]rune("中文한글A"))
	assert.Equal(t, Counts{Standard: 95, Extra: 21, CJK: 4, Other: 28}, s.Classify())
}

func TestIsCJK(t *testing.T) {
	for _, r := range "中文日本語한국어ＡＢ" {
		assert.True(t, IsCJK(r), "%q", r)
	}
	for _, r := range "Aé°ЖאÄ" {
		assert.False(t, IsCJK(r), "%q", r)
	}
	assert.False(t, IsCJK(FirstExtraChar))
}

func TestIsExtra(t *testing.T) {
	assert.True(t, IsExtra(FirstExtraChar))
	assert.True(t, IsExtra(FirstExtraChar+NumExtraChars-1))
	assert.False(t, IsExtra(FirstExtraChar+NumExtraChars))
	assert.False(t, IsExtra('A'))
}

func TestAppendSkipsDuplicates(t *testing.T) {
	s := Subset("ab").Append([]rune("bcac"))
	assert.Equal(t, "abc", s.String())
}

func TestReadChars(t *testing.T) {
	// BOM, spaces, newlines, a duplicate and a decomposed é.
	in := "\ufeff中 文\n中e\u0301\r\n"
	chars, err := ReadChars(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "中文\u00e9", string(chars))
}

func TestReadCharsInvalid(t *testing.T) {
	_, err := ReadChars(strings.NewReader("ab\xffc"))
	assert.Error(t, err)
}
