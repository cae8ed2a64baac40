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

package docstring

import (
	"math"
	"strings"
)

const tabSize = 8

// Clean normalizes the indentation of a raw docstring the way Python's inspect.cleandoc does:
// tabs are expanded, the first line is stripped of leading whitespace, the common
// indentation of the remaining lines is removed and leading and trailing blank lines are dropped.
func Clean(raw string) string {
	lines := strings.Split(expandTabs(raw), "\n")

	margin := math.MaxInt
	for _, line := range lines[1:] {
		content := len(strings.TrimLeft(line, whitespace))
		if content > 0 {
			margin = min(margin, len(line)-content)
		}
	}

	lines[0] = strings.TrimLeft(lines[0], whitespace)

	if margin < math.MaxInt {
		for i := 1; i < len(lines); i++ {
			lines[i] = lines[i][min(margin, len(lines[i])):]
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	return strings.Join(lines, "\n")
}

const whitespace = " \t\r\v\f"

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + tabSize)

	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n

		case '\n', '\r':
			b.WriteRune(r)
			col = 0

		default:
			b.WriteRune(r)
			col++
		}
	}

	return b.String()
}
