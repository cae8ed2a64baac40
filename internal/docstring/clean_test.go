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
	"testing"

	. "fillmore-labs.com/docraise/internal/docstring"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"one line", "  Summary.  ", "Summary.  "},
		{"margin", "Summary.\n\n    Raises:\n        KeyError: x.\n    ", "Summary.\n\nRaises:\n    KeyError: x."},
		{"leading blank", "\n    Summary.\n\n    More.\n", "Summary.\n\nMore."},
		{"tabs", "Summary.\n\tRaises:\n\t    KeyError: x.", "Summary.\nRaises:\n    KeyError: x."},
		{"short blank lines", "A.\n        B.\n  \n        C.", "A.\nB.\n\nC."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clean(tt.raw); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
