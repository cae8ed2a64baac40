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
	"strconv"
	"strings"
	"unicode/utf8"
)

// literal evaluates the source text of a single str literal.
//
// Bytes, f-strings and template strings are not str constants and are rejected.
func literal(text string) (string, bool) {
	i := strings.IndexAny(text, `"'`)
	if i < 0 {
		return "", false
	}

	prefix := strings.ToLower(text[:i])
	if strings.ContainsAny(prefix, "bft") {
		return "", false
	}

	body := text[i:]

	quote := body[:1]
	if strings.HasPrefix(body, strings.Repeat(quote, 3)) && len(body) >= 6 {
		quote = strings.Repeat(quote, 3)
	}

	if len(body) < 2*len(quote) || !strings.HasSuffix(body, quote) {
		return "", false
	}

	body = body[len(quote) : len(body)-len(quote)]

	if strings.Contains(prefix, "r") {
		return body, true
	}

	return unescape(body), true
}

// unescape decodes the backslash escapes of a non-raw str literal.
// Unknown escapes and \N{...} are kept verbatim.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		i := strings.IndexByte(s, '\\')
		if i < 0 || i+1 >= len(s) {
			b.WriteString(s)

			break
		}

		b.WriteString(s[:i])
		c := s[i+1]
		s = s[i+2:]

		switch c {
		case '\n': // line continuation

		case '\r':
			s = strings.TrimPrefix(s, "\n")

		case '\\', '\'', '"':
			b.WriteByte(c)

		case 'a':
			b.WriteByte('\a')

		case 'b':
			b.WriteByte('\b')

		case 'f':
			b.WriteByte('\f')

		case 'n':
			b.WriteByte('\n')

		case 'r':
			b.WriteByte('\r')

		case 't':
			b.WriteByte('\t')

		case 'v':
			b.WriteByte('\v')

		case '0', '1', '2', '3', '4', '5', '6', '7':
			n := 1
			for n < 3 && n-1 < len(s) && s[n-1] >= '0' && s[n-1] <= '7' {
				n++
			}

			v, _ := strconv.ParseUint(string(c)+s[:n-1], 8, 32)
			b.WriteRune(rune(v))
			s = s[n-1:]

		case 'x':
			s = hexEscape(&b, s, 2, 'x')

		case 'u':
			s = hexEscape(&b, s, 4, 'u')

		case 'U':
			s = hexEscape(&b, s, 8, 'U')

		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}

	return b.String()
}

// hexEscape decodes a fixed width hex escape from the start of s and returns the rest.
// Malformed escapes are written back unchanged.
func hexEscape(b *strings.Builder, s string, width int, c byte) string {
	if len(s) >= width {
		if v, err := strconv.ParseUint(s[:width], 16, 32); err == nil && utf8.ValidRune(rune(v)) {
			b.WriteRune(rune(v))

			return s[width:]
		}
	}

	b.WriteByte('\\')
	b.WriteByte(c)

	return s
}
