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

package exception

import (
	"iter"

	"fillmore-labs.com/docraise/internal/syntax"
)

// Resolve maps the operand of a raise statement to a reference.
// A nil operand is a bare re-raise.
func Resolve(exc syntax.Expr) Ref {
	switch e := exc.(type) {
	case nil:
		return NewPending()

	case *syntax.Name:
		return NewNamed(e.ID, true)

	case *syntax.Attribute:
		return NewNamed(e.Attr, false)

	case *syntax.Call:
		switch f := e.Func.(type) {
		case *syntax.Name:
			return NewNamed(f.ID, false)

		case *syntax.Attribute:
			return NewNamed(f.Attr, false)
		}

		return NewUnknown()

	case *syntax.Tuple, *syntax.Opaque:
		return NewUnknown()

	default:
		return NewUnknown()
	}
}

// CaughtTypes yields the exception names an except clause declares.
// A tuple yields one name per element; elements that do not resolve are skipped.
// A nil type (catch-all clause) yields nothing.
func CaughtTypes(typ syntax.Expr) iter.Seq[string] {
	return func(yield func(string) bool) {
		var elts []syntax.Expr
		if t, ok := typ.(*syntax.Tuple); ok {
			elts = t.Elts
		} else if typ != nil {
			elts = []syntax.Expr{typ}
		}

		for _, elt := range elts {
			var name string
			switch e := elt.(type) {
			case *syntax.Name:
				name = e.ID

			case *syntax.Attribute:
				name = e.Attr

			default:
				continue
			}

			if !yield(name) {
				return
			}
		}
	}
}
