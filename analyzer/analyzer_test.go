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

package analyzer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "fillmore-labs.com/docraise/analyzer"
	"fillmore-labs.com/docraise/analyzer/level"
	"fillmore-labs.com/docraise/internal/python"
	"fillmore-labs.com/docraise/internal/testsource"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "default",
		},
		{
			name:    "Generated",
			dir:     "generated",
			options: WithGenerated(true),
		},
		{
			name:    "ReraiseAll",
			dir:     "reraiseall",
			options: WithReraise(level.ReraiseAll),
		},
		{
			name:    "Undocumented",
			dir:     "undocumented",
			options: Options{WithRaisedNotDocumented(true), WithDocumentedNotRaised(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)

			files, err := filepath.Glob(filepath.Join("testdata", tt.dir, "*.py"))
			if err != nil || len(files) == 0 {
				t.Fatalf("No test files in %s: %v", tt.dir, err)
			}

			for _, filename := range files {
				src, err := os.ReadFile(filename)
				if err != nil {
					t.Fatalf("Can't read %s: %v", filename, err)
				}

				result, err := a.CheckSource(context.Background(), filename, src)
				if err != nil {
					t.Fatalf("CheckSource(%s) failed: %v", filename, err)
				}

				testsource.Check(t, src, result.Violations)
			}
		})
	}
}

func TestCheckSourceSyntaxError(t *testing.T) {
	t.Parallel()

	src := []byte("def broken(:\n    raise ValueError\n")

	_, err := New().CheckSource(context.Background(), "broken.py", src)

	if !errors.Is(err, python.ErrSyntax) {
		t.Fatalf("Expected error %v, got %v", python.ErrSyntax, err)
	}

	var se *python.SyntaxError
	if !errors.As(err, &se) || se.Line < 1 {
		t.Errorf("Expected syntax error with a line number, got %v", err)
	}
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	src := []byte(testsource.Dedent(`
		def f(data):
		    """Doc.

		    Raises:
		        OSError: never.
		    """
		    try:
		        return data["key"]
		    except (KeyError, IndexError):
		        raise
	`))

	a := New()

	first, err := a.CheckSource(context.Background(), "f.py", src)
	if err != nil {
		t.Fatalf("CheckSource failed: %v", err)
	}

	second, err := a.CheckSource(context.Background(), "f.py", src)
	if err != nil {
		t.Fatalf("CheckSource failed: %v", err)
	}

	if len(first.Violations) != 3 {
		t.Fatalf("Expected 3 violations, got %v", first.Violations)
	}

	for i := range first.Violations {
		if first.Violations[i] != second.Violations[i] {
			t.Errorf("Run %d differs: %v != %v", i, first.Violations[i], second.Violations[i])
		}
	}
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	if New().Fingerprint() != New(WithLogger(nil)).Fingerprint() {
		t.Error("Logger changed the fingerprint")
	}

	if New().Fingerprint() == New(WithReraise(level.ReraiseAll)).Fingerprint() {
		t.Error("Reraise level did not change the fingerprint")
	}

	if New().Fingerprint() == New(WithDocumentedNotRaised(false)).Fingerprint() {
		t.Error("Checks did not change the fingerprint")
	}
}
