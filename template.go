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

// versionTemplate holds the precomputed artifacts for one version: the base
// module grid with every function pattern drawn, a bitmap of which modules
// are function modules, the eight mask overlays, and the zig-zag order in
// which codeword bits are placed. Built once per version and shared
// read-only by every encoding of that version.
//
// The grid, function bitmap, and overlays all use the same packed layout:
// the module at (x, y) is bit (y*size+x)&31 of word (y*size+x)>>5. Masking
// a grid is therefore a whole-word XOR with an overlay.
type versionTemplate struct {
	version           Version
	size              int
	grid              []uint32
	functionModules   []uint32
	masks             [8][]uint32
	dataOutputIndexes []int32
}

func newVersionTemplate(version Version) *versionTemplate {
	if version < MinVersion || version > MaxVersion {
		panic("version out of range")
	}

	size := int(version)*4 + 17
	words := (size*size + 31) / 32
	t := &versionTemplate{
		version:         version,
		size:            size,
		grid:            make([]uint32, words),
		functionModules: make([]uint32, words),
	}

	t.drawFunctionPatterns()
	t.buildMasks()
	t.buildDataOutputIndexes()

	return t
}

func (t *versionTemplate) isFunction(x, y int) bool {
	i := y*t.size + x
	return t.functionModules[i>>5]>>(i&31)&1 != 0
}

func (t *versionTemplate) setFunctionModule(x, y int, isBlack bool) {
	i := y*t.size + x
	t.functionModules[i>>5] |= 1 << (i & 31)
	if isBlack {
		t.grid[i>>5] |= 1 << (i & 31)
	} else {
		t.grid[i>>5] &^= 1 << (i & 31)
	}
}

// drawFunctionPatterns draws all modules that correspond to "metadata" for
// the QR code symbol (non-data modules), such as finder patterns, timing
// patterns, and the version number. The format bit regions are reserved
// with light modules; the actual format bits depend on the mask and are
// drawn during encoding.
func (t *versionTemplate) drawFunctionPatterns() {
	// Draw horizontal and vertical timing patterns.
	for i := 0; i < t.size; i++ {
		t.setFunctionModule(6, i, i%2 == 0)
		t.setFunctionModule(i, 6, i%2 == 0)
	}

	// Draw 3 finder patterns (all corners except the bottom right; overwrites
	// some timing modules).
	t.drawFinderPattern(3, 3)
	t.drawFinderPattern(t.size-4, 3)
	t.drawFinderPattern(3, t.size-4)

	// Draw alignment patterns.
	alignPatPos := alignmentPatternPositions[t.version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			// Do not draw on the three finder corners.
			if !(i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0) {
				t.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
			}
		}
	}

	t.reserveFormatBits()
	t.drawVersion()
}

// drawFinderPattern draws a 9*9 finder pattern including the border separator,
// with the center module at (x, y).
func (t *versionTemplate) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := max(abs(dx), abs(dy))
			xx := x + dx
			yy := y + dy
			if 0 <= xx && xx < t.size && 0 <= yy && yy < t.size {
				t.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5*5 alignment pattern, with the center module at
// (x, y).
func (t *versionTemplate) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			t.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// reserveFormatBits marks the two format bit regions (and the always-black
// module next to the bottom-left finder) as light function modules.
func (t *versionTemplate) reserveFormatBits() {
	for i := 0; i <= 8; i++ {
		if i != 6 { // Skip the timing pattern.
			t.setFunctionModule(8, i, false)
			t.setFunctionModule(i, 8, false)
		}
	}
	for i := 0; i < 8; i++ {
		t.setFunctionModule(t.size-1-i, 8, false)
	}
	for i := t.size - 8; i < t.size; i++ {
		t.setFunctionModule(8, i, false)
	}
}

// drawVersion draws two copies of the version bits (with its own error
// correction code), based on this template's version, iff 7 <= version <= 40.
func (t *versionTemplate) drawVersion() {
	if t.version < 7 {
		return
	}

	// Calculate error correction code and pack bits.
	rem := int(t.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := int(t.version)<<12 | rem
	if bits>>18 != 0 {
		panic("incorrect version calculation")
	}

	// Draw two copies.
	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := t.size - 11 + i%3
		b := i / 3
		t.setFunctionModule(a, b, bit)
		t.setFunctionModule(b, a, bit)
	}
}

// buildMasks computes the eight mask overlays. An overlay bit is set where
// the mask condition holds and the module is not a function module, so
// applying a mask to a drawn grid is a word-wise XOR.
func (t *versionTemplate) buildMasks() {
	words := len(t.grid)
	for mask := 0; mask < 8; mask++ {
		overlay := make([]uint32, words)
		for y := 0; y < t.size; y++ {
			for x := 0; x < t.size; x++ {
				var invert bool
				switch mask {
				case 0:
					invert = (x+y)%2 == 0
				case 1:
					invert = y%2 == 0
				case 2:
					invert = x%3 == 0
				case 3:
					invert = (x+y)%3 == 0
				case 4:
					invert = (x/3+y/2)%2 == 0
				case 5:
					invert = x*y%2+x*y%3 == 0
				case 6:
					invert = (x*y%2+x*y%3)%2 == 0
				case 7:
					invert = ((x+y)%2+x*y%3)%2 == 0
				}
				if invert && !t.isFunction(x, y) {
					i := y*t.size + x
					overlay[i>>5] |= 1 << (i & 31)
				}
			}
		}
		t.masks[mask] = overlay
	}
}

// buildDataOutputIndexes walks the zig-zag scan over column pairs from the
// right edge leftward and records the linearized index (y*size+x) of every
// module a codeword bit lands in. Remainder bits (0 to 7 modules in the
// bottom-left) stay light and are not part of the sequence.
func (t *versionTemplate) buildDataOutputIndexes() {
	n := numRawDataModules[t.version] / 8 * 8
	indexes := make([]int32, 0, n)

	for right := t.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < t.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j // Actual x coordinate.
				upward := (right+1)&2 == 0

				y := vert // Actual y coordinate.
				if upward {
					y = t.size - 1 - vert
				}

				if !t.isFunction(x, y) && len(indexes) < n {
					indexes = append(indexes, int32(y*t.size+x))
				}
			}
		}
	}

	if len(indexes) != n {
		panic("incorrect data output index count")
	}
	t.dataOutputIndexes = indexes
}
