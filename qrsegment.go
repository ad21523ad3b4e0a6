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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// QRSegment represents a single segment in a QR code. A QR code may contain
// more than one segment (numeric, alphanumeric, byte, kanji, or ECI).
// Instances are immutable after construction.
type QRSegment struct {
	Mode          // The mode of this segment (numeric, alphanumeric, byte, kanji, or ECI).
	NumChars  int // The length of this segments unencoded data.
	data      []uint32
	bitLength int
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// BitLength returns the number of data bits in this segment.
func (s *QRSegment) BitLength() int {
	return s.bitLength
}

func getTotalBits(segs []*QRSegment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1 // The segment's length does not fit the field's bit width.
		}

		result += int64(4 + int(ccBits) + seg.bitLength)
		if result > math.MaxInt32 {
			return -1 // The sum will overflow an integer type.
		}
	}

	return int(result)
}

// MakeAlphanumeric creates an alphanumeric segment from the given text
// (uppercase letters, digits, some symbols). Panics if the text contains
// characters outside the alphanumeric charset.
func MakeAlphanumeric(text string) *QRSegment {
	if !alphanumericRegexp.MatchString(text) {
		panic("string contains non-alphanumeric characters")
	}

	var bb bitBuffer
	var i int
	for i = 0; i <= len(text)-2; i += 2 { // Process groups of 2 characters.
		temp := strings.Index(alphanumericCharset, text[i:i+1]) * 45
		temp += strings.Index(alphanumericCharset, text[i+1:i+2])
		bb.appendBits(uint32(temp), 11)
	}

	if i < len(text) { // 1 character remaining.
		bb.appendBits(uint32(strings.Index(alphanumericCharset, text[i:i+1])), 6)
	}

	return &QRSegment{
		Mode:      Alphanumeric,
		NumChars:  len(text),
		data:      bb.words,
		bitLength: bb.length,
	}
}

// MakeBytes encodes a byte slice into a QR segment of type Byte.
func MakeBytes(data []byte) *QRSegment {
	var bb bitBuffer
	for _, b := range data {
		bb.appendBits(uint32(b), 8)
	}

	return &QRSegment{
		Mode:      Byte,
		NumChars:  len(data),
		data:      bb.words,
		bitLength: bb.length,
	}
}

// MakeECI creates a segment representing an extended channel interpretation
// (ECI) designator with the specified value.
func MakeECI(assignValue int) (*QRSegment, error) {
	var bb bitBuffer
	if assignValue < 0 {
		return nil, fmt.Errorf("%w: ECI assignment out of range", ErrInvalidArgument)
	} else if assignValue < 1<<7 {
		bb.appendBits(uint32(assignValue), 8)
	} else if assignValue < 1<<14 {
		bb.appendBits(2, 2)
		bb.appendBits(uint32(assignValue), 14)
	} else if assignValue < 1_000_000 {
		bb.appendBits(6, 3)
		bb.appendBits(uint32(assignValue), 21)
	} else {
		return nil, fmt.Errorf("%w: ECI assignment out of range", ErrInvalidArgument)
	}

	return &QRSegment{
		Mode:      ECI,
		NumChars:  0,
		data:      bb.words,
		bitLength: bb.length,
	}, nil
}

// MakeNumeric creates a numeric segment from the given digit string. Panics
// if the string contains characters other than 0 through 9.
func MakeNumeric(digits string) *QRSegment {
	if !numericRegexp.MatchString(digits) {
		panic("string contains non-numeric characters")
	}

	var bb bitBuffer
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n]) // We can safely ignore the possible conversion error because we have confirmed that the string contains only digits in the regexp above.
		bb.appendBits(uint32(d), n*3+1)
		i += n
	}

	return &QRSegment{
		Mode:      Numeric,
		NumChars:  len(digits),
		data:      bb.words,
		bitLength: bb.length,
	}
}

// MakeSegments encodes text into a QR segment, selecting the most efficient
// mode that can be used (numeric, alphanumeric, or byte).
func MakeSegments(text string) []*QRSegment {
	if len(text) == 0 {
		return []*QRSegment{}
	}

	if numericRegexp.MatchString(text) {
		return []*QRSegment{MakeNumeric(text)}
	}

	if alphanumericRegexp.MatchString(text) {
		return []*QRSegment{MakeAlphanumeric(text)}
	}

	return []*QRSegment{MakeBytes([]byte(text))}
}
