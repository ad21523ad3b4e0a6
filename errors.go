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

import "errors"

// Error kinds returned by the encoding API. Failures wrap one of these
// sentinels, so callers can classify them with errors.Is while still
// receiving the detailed message.
var (
	// ErrInvalidArgument reports a parameter outside its documented range
	// or input that a segment factory cannot encode.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataTooLong reports that the segments do not fit any version up to
	// the configured maximum at the chosen error correction level. The
	// wrapped message carries the used bits and capacity when known.
	ErrDataTooLong = errors.New("data too long")
)
