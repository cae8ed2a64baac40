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
	"iter"
	"regexp"
	"strings"
)

// googleTitles are the section titles of the Google convention. A title ends a preceding section.
var googleTitles = regexp.MustCompile(
	`(?m)^(Arguments|Args|Parameters|Params|Raises|Exceptions|Except|Attributes|Example|Examples|Returns|Yields):[ \t\r\f\v]*$`)

func isGoogleRaises(title string) bool {
	switch title {
	case "Raises", "Exceptions", "Except":
		return true

	default:
		return false
	}
}

// googleRaises reads the items of all Raises sections. Items are the lines at the
// section's first indentation level; the name is the text before the first colon.
func googleRaises(doc string) []string {
	var names []string

	for title, body := range sections(googleTitles, doc) {
		if !isGoogleRaises(title) {
			continue
		}

		indent := -1
		for line := range strings.SplitSeq(body, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}

			lead := len(line) - len(strings.TrimLeft(line, " \t"))
			if indent < 0 {
				indent = lead
			}

			if lead != indent {
				continue // description continuation or stray text
			}

			if name := itemName(line); name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}

// numpyTitles are the section titles of the numpydoc convention, underlined with dashes.
var numpyTitles = regexp.MustCompile(
	`(?m)^(Parameters|Params|Arguments|Args|Other Parameters|Other Params|Other Args|Other Arguments|` +
		`Receives|Receive|Raises|Raise|Warns|Warn|Attributes|Attribute|Returns|Return|Yields|Yield|` +
		`Examples|Example|Warnings|Warning|See Also|Related|Notes|Note|References|Reference)[ \t]*\n-{3,}[ \t]*$`)

// numpyRaises reads the items of all Raises sections. Items are lines starting in column 0.
func numpyRaises(doc string) []string {
	var names []string

	for title, body := range sections(numpyTitles, doc) {
		if title != "Raises" && title != "Raise" {
			continue
		}

		for line := range strings.SplitSeq(body, "\n") {
			if line == "" || line[0] == ' ' || line[0] == '\t' {
				continue
			}

			if name := strings.TrimSpace(line); name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}

// sections yields each title matched by titles with the text up to the next title.
func sections(titles *regexp.Regexp, doc string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		matches := titles.FindAllStringSubmatchIndex(doc, -1)
		for i, m := range matches {
			end := len(doc)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}

			if !yield(doc[m[2]:m[3]], doc[m[1]:end]) {
				return
			}
		}
	}
}

// itemName extracts the exception name from a Google style item line.
func itemName(line string) string {
	line = strings.TrimSpace(line)
	if before, _, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(before)
	}

	return line
}
