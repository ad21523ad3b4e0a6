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

import "strings"

// terminalQuietZone is the number of light modules surrounding the symbol
// when rendered for a terminal. Scanners need the quiet zone to lock on.
const terminalQuietZone = 4

// ToTerminalString renders the QR code using Unicode half-block characters,
// two module rows per line, so the symbol can be scanned straight off a
// terminal. Black modules render as set blocks on the light background of
// the quiet zone.
func (q *QRCode) ToTerminalString() string {
	var sb strings.Builder

	for y := -terminalQuietZone; y < q.Size+terminalQuietZone; y += 2 {
		for x := -terminalQuietZone; x < q.Size+terminalQuietZone; x++ {
			top := q.GetModule(x, y)
			bottom := q.GetModule(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
