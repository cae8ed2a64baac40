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

package scope_test

import (
	"errors"
	"slices"
	"testing"

	"fillmore-labs.com/docraise/internal/exception"
	. "fillmore-labs.com/docraise/internal/scope"
	"fillmore-labs.com/docraise/internal/syntax"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	named := func(name string) exception.Ref { return exception.NewNamed(name, false) }
	bare := func(name string) exception.Ref { return exception.NewNamed(name, true) }
	pending := exception.NewPending()

	tests := [...]struct {
		name   string
		before []exception.Ref // appended before the clause
		body   []exception.Ref // appended by the clause body
		types  []string
		bound  string
		all    bool
		want   []string
	}{
		{
			name:  "bare re-raise",
			body:  []exception.Ref{pending},
			types: []string{"KeyError"},
			want:  []string{"KeyError"},
		},
		{
			name:  "tuple expands in place",
			body:  []exception.Ref{named("A"), pending},
			types: []string{"B", "C"},
			want:  []string{"A", "B", "C"},
		},
		{
			name: "catch-all drops",
			body: []exception.Ref{pending},
			want: nil,
		},
		{
			name:  "bound name",
			body:  []exception.Ref{bare("e")},
			types: []string{"KeyError"},
			bound: "e",
			want:  []string{"KeyError"},
		},
		{
			name:  "other name",
			body:  []exception.Ref{bare("x")},
			types: []string{"KeyError"},
			bound: "e",
			want:  []string{"x"},
		},
		{
			name:  "qualified name is not the bound name",
			body:  []exception.Ref{named("e")},
			types: []string{"KeyError"},
			bound: "e",
			want:  []string{"e"},
		},
		{
			name:  "unbound clause ignores names",
			body:  []exception.Ref{bare("e")},
			types: []string{"KeyError"},
			want:  []string{"e"},
		},
		{
			name:  "last only",
			body:  []exception.Ref{pending, named("RuntimeError")},
			types: []string{"KeyError"},
			want:  []string{"RuntimeError"},
		},
		{
			name:  "all",
			body:  []exception.Ref{pending, named("RuntimeError"), pending},
			types: []string{"KeyError", "IndexError"},
			all:   true,
			want:  []string{"KeyError", "IndexError", "RuntimeError", "KeyError", "IndexError"},
		},
		{
			name:   "empty body leaves earlier entries",
			before: []exception.Ref{pending},
			types:  []string{"KeyError"},
			all:    true,
			want:   nil,
		},
		{
			name:   "earlier entries are not resolved",
			before: []exception.Ref{pending, bare("e")},
			body:   []exception.Ref{named("OSError")},
			types:  []string{"KeyError"},
			bound:  "e",
			all:    true,
			want:   []string{"e", "OSError"},
		},
		{
			name:  "unknown stays excluded",
			body:  []exception.Ref{exception.NewUnknown()},
			types: []string{"KeyError"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := Open(&syntax.FuncDef{Name: "f"})
			for _, ref := range tt.before {
				f.Append(ref)
			}

			mark := f.Mark()
			for _, ref := range tt.body {
				f.Append(ref)
			}

			f.Resolve(mark, tt.types, tt.bound, tt.all)

			got, err := f.Close()
			if err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	def := &syntax.FuncDef{Name: "f"}
	f := Open(def)

	if f.Def() != def {
		t.Error("Def() does not return the opened function")
	}

	f.Append(exception.NewNamed("ValueError", false))

	if _, err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := f.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected error %v, got %v", ErrClosed, err)
	}
}
