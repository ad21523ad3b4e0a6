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

// fieldMultiply returns the product of the two given field elements modulo
// GF(2^8/0x11D).
func fieldMultiply(x, y byte) byte {
	// Russian peasant multiplication.
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ z>>7*0x11D
		z ^= int(y >> i & 1 * x)
	}

	return byte(z)
}

// reedSolomonGenerator holds the generator polynomial for one error
// correction codeword count, together with a 256-row product table so the
// remainder loop multiplies a whole row at a time. Immutable once built;
// shared across encodings.
type reedSolomonGenerator struct {
	coefficients []byte
	table        [256][]byte
}

// newReedSolomonGenerator builds the generator for the given polynomial
// degree in the range [1, 255].
func newReedSolomonGenerator(degree int) *reedSolomonGenerator {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	// Polynomial coefficients are stored from highest to lowest power,
	// excluding the leading term, which is always 1. For example, the
	// polynomial x^3 + 255*x^2 + 8x + 93 is stored as the byte array [255, 8,
	// 93].
	coefficients := make([]byte, degree)
	coefficients[degree-1] = 1 // Start off with the monomial x^0.

	// Compute the product polynomial (x - r^0) * (x - r^1) * (x - r^2) * ... *
	// (x - r^(degree - 1)), and drop the highest monomial term which is always
	// 1*x^degree. Note that r = 0x02, which is a generator element of this
	// field GF(2^8/0x11D).
	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the current product by (x - r^i).
		for j := 0; j < len(coefficients); j++ {
			coefficients[j] = fieldMultiply(coefficients[j], root)
			if j+1 < len(coefficients) {
				coefficients[j] ^= coefficients[j+1]
			}
		}
		root = fieldMultiply(root, 0x02)
	}

	g := &reedSolomonGenerator{coefficients: coefficients}
	for v := 0; v < 256; v++ {
		row := make([]byte, degree)
		for j := 0; j < degree; j++ {
			row[j] = fieldMultiply(byte(v), coefficients[j])
		}
		g.table[v] = row
	}

	return g
}

// remainder returns the Reed-Solomon error correction codewords for the
// given data, running the polynomial division as a shift register over the
// precomputed rows.
func (g *reedSolomonGenerator) remainder(data []byte) []byte {
	result := make([]byte, len(g.coefficients))
	for _, b := range data {
		row := g.table[b^result[0]]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for j := range result {
			result[j] ^= row[j]
		}
	}

	return result
}
