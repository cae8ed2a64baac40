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

// Package scope tracks the exception references of a function body during traversal.
package scope

import (
	"errors"
	"slices"

	"fillmore-labs.com/docraise/internal/exception"
	"fillmore-labs.com/docraise/internal/syntax"
)

// ErrClosed is returned when a function scope is used after [Function.Close].
var ErrClosed = errors.New("function scope closed")

// Function accumulates the exception references of one function body in traversal order.
//
// A Function is created when the traversal enters a function definition and
// closed exactly once after its body has been visited.
type Function struct {
	def    *syntax.FuncDef
	raised []exception.Ref
	closed bool
}

// Open creates the scope for def.
func Open(def *syntax.FuncDef) *Function {
	return &Function{def: def}
}

// Def returns the function definition this scope belongs to.
func (f *Function) Def() *syntax.FuncDef { return f.def }

// Append adds a reference at the end of the sequence.
func (f *Function) Append(ref exception.Ref) {
	f.raised = append(f.raised, ref)
}

// Mark returns the current sequence length, used to find the references appended by a clause body.
func (f *Function) Mark() int { return len(f.raised) }

// Expand replaces the reference at index i with one named reference per caught type.
// An empty types list drops the reference.
func (f *Function) Expand(i int, types []string) {
	refs := make([]exception.Ref, 0, len(types))
	for _, name := range types {
		refs = append(refs, exception.NewNamed(name, false))
	}

	f.raised = slices.Replace(f.raised, i, i+1, refs...)
}

// Resolve rewrites the references a clause body appended after mark.
//
// Only eligible references (see [exception.Ref.Reraises]) are rewritten. Unless all is set,
// only the last reference appended after mark is inspected.
func (f *Function) Resolve(mark int, types []string, bound string, all bool) {
	if len(f.raised) <= mark {
		return // the clause body raised nothing
	}

	if !all {
		if last := len(f.raised) - 1; f.raised[last].Reraises(bound) {
			f.Expand(last, types)
		}

		return
	}

	// walk backwards so expansions don't shift the indices still to be visited
	for i := len(f.raised) - 1; i >= mark; i-- {
		if f.raised[i].Reraises(bound) {
			f.Expand(i, types)
		}
	}
}

// Close ends the scope and returns the resolved exception names in traversal order.
// Unknown and pending references are excluded.
func (f *Function) Close() ([]string, error) {
	if f.closed {
		return nil, ErrClosed
	}

	names := make([]string, 0, len(f.raised))
	for _, ref := range f.raised {
		if name, ok := ref.Name(); ok {
			names = append(names, name)
		}
	}

	f.raised, f.closed = nil, true

	return names, nil
}
