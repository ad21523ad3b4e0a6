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
	"fmt"

	"golang.org/x/text/encoding/japanese"
)

// MakeKanji creates a kanji segment from the given text. Every character
// must convert to a double-byte Shift JIS glyph in one of the two QR kanji
// ranges (lead words 0x8140-0x9FFC and 0xE040-0xEBBF); each glyph is packed
// into 13 bits.
func MakeKanji(text string) (*QRSegment, error) {
	sjis, err := japanese.ShiftJIS.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("%w: string is not encodable in Shift JIS: %v", ErrInvalidArgument, err)
	}

	var bb bitBuffer
	for i := 0; i+1 < len(sjis); i += 2 {
		w := uint32(sjis[i])<<8 | uint32(sjis[i+1])
		switch {
		case 0x8140 <= w && w <= 0x9FFC:
			w -= 0x8140
		case 0xE040 <= w && w <= 0xEBBF:
			w -= 0xC140
		default:
			return nil, fmt.Errorf("%w: string contains characters outside the QR kanji range", ErrInvalidArgument)
		}
		bb.appendBits(w>>8*0xC0+w&0xFF, 13)
	}
	if len(sjis)%2 != 0 {
		return nil, fmt.Errorf("%w: string contains single-byte Shift JIS characters", ErrInvalidArgument)
	}

	return &QRSegment{
		Mode:      Kanji,
		NumChars:  len(sjis) / 2,
		data:      bb.words,
		bitLength: bb.length,
	}, nil
}

// IsEncodableAsKanji reports whether every character of the text can be
// carried by a kanji mode segment.
func IsEncodableAsKanji(text string) bool {
	_, err := MakeKanji(text)
	return err == nil
}
