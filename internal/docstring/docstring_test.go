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

package docstring_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/docraise/internal/docstring"
)

func TestRaises(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "empty",
			doc:  "",
			want: nil,
		},
		{
			name: "no section",
			doc:  "Just a summary.\n\nRaises nothing at all.",
			want: nil,
		},
		{
			name: "rest",
			doc:  "Summary.\n\n:param x: value.\n:raises ValueError: if x is bad.\n:raise TypeError: never.\n:except KeyError: rarely.\n:exception OSError: on I/O.",
			want: []string{"ValueError", "TypeError", "KeyError", "OSError"},
		},
		{
			name: "rest qualified",
			doc:  ":raises requests.HTTPError: on failure.",
			want: []string{"requests.HTTPError"},
		},
		{
			name: "google",
			doc:  "Summary.\n\nArgs:\n    x: value.\n\nRaises:\n    ValueError: if x is bad.\n        More text.\n    TypeError: never.\n\nReturns:\n    Something.",
			want: []string{"ValueError", "TypeError"},
		},
		{
			name: "google exceptions title",
			doc:  "Summary.\n\nExceptions:\n    KeyError: missing.",
			want: []string{"KeyError"},
		},
		{
			name: "google without colon",
			doc:  "Summary.\n\nRaises:\n    KeyError",
			want: []string{"KeyError"},
		},
		{
			name: "google duplicates",
			doc:  "Raises:\n    KeyError: first.\n    KeyError: second.",
			want: []string{"KeyError", "KeyError"},
		},
		{
			name: "numpy",
			doc:  "Summary.\n\nParameters\n----------\nx : int\n    Value.\n\nRaises\n------\nValueError\n    If x is bad.\nTypeError\n    Never.\n\nNotes\n-----\nNothing.",
			want: []string{"ValueError", "TypeError"},
		},
		{
			name: "epydoc",
			doc:  "Summary.\n\n@param x: value.\n@raise ValueError: if x is bad.\n@raises TypeError: never.",
			want: []string{"ValueError", "TypeError"},
		},
		{
			name: "most entries win",
			doc:  ":raises KeyError: first.\n\nRaises:\n    ValueError: one.\n    TypeError: two.",
			want: []string{"ValueError", "TypeError"},
		},
		{
			name: "ties keep rest",
			doc:  ":raises KeyError: first.\n\nRaises:\n    ValueError: one.",
			want: []string{"KeyError"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Raises(tt.doc); !slices.Equal(got, tt.want) {
				t.Errorf("Raises() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleRaises(t *testing.T) {
	t.Parallel()

	const doc = ":raises KeyError: rest.\n\n@raise OSError: epydoc."

	tests := [...]struct {
		style Style
		want  []string
	}{
		{ReST, []string{"KeyError"}},
		{Google, nil},
		{NumPy, nil},
		{Epydoc, []string{"OSError"}},
		{Style(0), nil},
	}

	for _, tt := range tests {
		if got := tt.style.Raises(doc); !slices.Equal(got, tt.want) {
			t.Errorf("Style(%d).Raises() = %q, want %q", tt.style, got, tt.want)
		}
	}
}
