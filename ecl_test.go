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

func TestECLFormatBits(t *testing.T) {
	assert.Equal(t, 1, Low.formatBits())
	assert.Equal(t, 0, Medium.formatBits())
	assert.Equal(t, 3, Quartile.formatBits())
	assert.Equal(t, 2, High.formatBits())
}

func TestParseECL(t *testing.T) {
	cases := []struct {
		input string
		want  ECL
	}{
		{"L", Low},
		{"l", Low},
		{"low", Low},
		{"M", Medium},
		{"medium", Medium},
		{"Q", Quartile},
		{"QUARTILE", Quartile},
		{"H", High},
		{"High", High},
	}

	for _, tc := range cases {
		got, err := ParseECL(tc.input)
		assert.Nil(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseECL("X")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestECLString(t *testing.T) {
	assert.Equal(t, "L", Low.String())
	assert.Equal(t, "M", Medium.String())
	assert.Equal(t, "Q", Quartile.String())
	assert.Equal(t, "H", High.String())
}
