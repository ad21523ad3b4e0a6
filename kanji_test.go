/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeKanji(t *testing.T) {
	// 漢 is Shift JIS 0x8ABF, 字 is 0x8E9A; packed per the standard offset
	// rule they become 1855 and 2586.
	seg, err := MakeKanji("漢字")
	assert.Nil(t, err)
	assert.Equal(t, Kanji, seg.Mode)
	assert.Equal(t, 2, seg.NumChars)
	assert.Equal(t, 26, seg.BitLength())
	assert.Equal(t, "0011100111111"+"0101000011010", segmentBitString(seg))
}

func TestMakeKanjiEmpty(t *testing.T) {
	seg, err := MakeKanji("")
	assert.Nil(t, err)
	assert.Equal(t, 0, seg.NumChars)
	assert.Equal(t, 0, seg.BitLength())
}

func TestMakeKanjiRejectsNonKanji(t *testing.T) {
	cases := []string{
		"abc", // ASCII is single-byte Shift JIS.
		"漢a", // Mixed double- and single-byte.
		"ｱ",  // Half-width katakana is single-byte.
		"€",  // Not encodable in Shift JIS at all.
	}

	for _, text := range cases {
		_, err := MakeKanji(text)
		assert.ErrorIs(t, err, ErrInvalidArgument, text)
	}
}

func TestIsEncodableAsKanji(t *testing.T) {
	assert.True(t, IsEncodableAsKanji("漢字"))
	assert.True(t, IsEncodableAsKanji(""))
	assert.False(t, IsEncodableAsKanji("ABC"))
	assert.False(t, IsEncodableAsKanji("漢X"))
}

func TestKanjiSegmentEncodes(t *testing.T) {
	seg, err := MakeKanji("魔法")
	assert.Nil(t, err)

	code, err := EncodeSegments([]*QRSegment{seg}, Medium)
	assert.Nil(t, err)
	assert.Equal(t, Version(1), code.Version)
}
