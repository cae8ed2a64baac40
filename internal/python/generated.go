// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package python

import (
	"bytes"
	"regexp"
)

// generatedMarker matches a comment marking the file as generated.
var generatedMarker = regexp.MustCompile(`(?i)^#.*\bgenerated\b.*\bdo not edit\b`)

// IsGenerated reports whether src carries a generated code marker.
//
// Only the comment block at the top of the file is examined: blank lines and
// comment lines preceding the first statement.
func IsGenerated(src []byte) bool {
	for line := range bytes.Lines(src) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0:
			continue

		case line[0] != '#':
			return false

		case generatedMarker.Match(line):
			return true
		}
	}

	return false
}
