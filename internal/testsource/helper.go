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

// Package testsource provides utilities for parsing and checking Python source code in tests.
//
// It is designed to simplify testing of the docraise analyzer by handling common
// boilerplate code for parsing indented Python fragments and matching findings
// against "# want" annotations.
package testsource

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"fillmore-labs.com/docraise/internal/python"
	"fillmore-labs.com/docraise/internal/report"
	"fillmore-labs.com/docraise/internal/syntax"
)

// Parse parses a Python source fragment into a [syntax.Module].
// The fragment is dedented first, so it can be written as an indented raw string.
func Parse(tb testing.TB, src string) *syntax.Module {
	tb.Helper()

	m, err := python.Parse(context.Background(), []byte(Dedent(src)))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return m
}

// Func parses a Python source fragment and returns its first top-level function.
func Func(tb testing.TB, src string) *syntax.FuncDef {
	tb.Helper()

	m := Parse(tb, src)
	for def := range syntax.Functions(m.Body) {
		return def
	}

	tb.Fatal("Can't find function")

	return nil
}

// Dedent removes a leading newline and the longest common leading whitespace of all non-blank lines.
func Dedent(src string) string {
	src = strings.TrimPrefix(src, "\n")

	lines := strings.Split(src, "\n")

	margin := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	if margin <= 0 {
		return src
	}

	for i, line := range lines {
		if len(line) >= margin {
			lines[i] = line[margin:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}

	return strings.Join(lines, "\n")
}

var (
	wantComment = regexp.MustCompile(`#\s*want\s+(.*)$`)
	wantPattern = regexp.MustCompile("\"(?:[^\"\\\\]|\\\\.)*\"|`[^`]*`")
)

// Expectations collects the "# want" annotations of src, keyed by 1-based line.
//
// Each annotation holds one or more quoted regular expressions, each matching the
// "<code> <message>" text of a finding on that line.
func Expectations(tb testing.TB, src []byte) map[int][]*regexp.Regexp {
	tb.Helper()

	want := make(map[int][]*regexp.Regexp)

	for i, line := range strings.Split(string(src), "\n") {
		m := wantComment.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		for _, quoted := range wantPattern.FindAllString(m[1], -1) {
			pattern, err := strconv.Unquote(quoted)
			if err != nil {
				tb.Fatalf("line %d: invalid want pattern %s: %v", i+1, quoted, err)
			}

			re, err := regexp.Compile(pattern)
			if err != nil {
				tb.Fatalf("line %d: invalid want pattern %s: %v", i+1, quoted, err)
			}

			want[i+1] = append(want[i+1], re)
		}
	}

	return want
}

// Check matches violations against the "# want" annotations of src.
// Every violation must be expected and every expectation must be met.
func Check(tb testing.TB, src []byte, violations []report.Violation) {
	tb.Helper()

	want := Expectations(tb, src)

	for _, v := range violations {
		text := v.Code.String() + " " + v.Message

		expected := want[v.Line]
		idx := -1
		for i, re := range expected {
			if re.MatchString(text) {
				idx = i

				break
			}
		}

		if idx < 0 {
			tb.Errorf("%s: unexpected diagnostic: %s", v.Position(), text)

			continue
		}

		want[v.Line] = append(expected[:idx], expected[idx+1:]...)
	}

	for line, expected := range want {
		for _, re := range expected {
			tb.Errorf("%d: expected diagnostic matching %q not found", line, re)
		}
	}
}
