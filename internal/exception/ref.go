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

// Package exception models the resolved identity of a single raise occurrence.
package exception

// Kind classifies an exception reference.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Unknown is a raise whose exception identity cannot be determined syntactically.
	Unknown Kind = iota // unknown

	// Named is a raise resolved to an exception name.
	Named // named

	// Pending is a bare re-raise waiting for its enclosing except clause.
	Pending // pending
)

// Ref is the identity of one raise occurrence. The zero value is an unknown reference.
type Ref struct {
	kind Kind
	name string
	bare bool
}

// NewNamed returns a reference to the named exception. bare records whether the
// operand was a plain identifier (raise e), which is how a bound name is re-raised.
func NewNamed(name string, bare bool) Ref { return Ref{kind: Named, name: name, bare: bare} }

// NewPending returns a reference for a bare re-raise.
func NewPending() Ref { return Ref{kind: Pending} }

// NewUnknown returns an unresolvable reference.
func NewUnknown() Ref { return Ref{kind: Unknown} }

// Kind returns the reference kind.
func (r Ref) Kind() Kind { return r.kind }

// Name returns the exception name and true if the reference is resolved.
func (r Ref) Name() (string, bool) {
	return r.name, r.kind == Named
}

// Reraises reports whether the reference re-raises the caught exception of a clause
// that binds bound (empty when the clause binds no name).
func (r Ref) Reraises(bound string) bool {
	switch r.kind {
	case Pending:
		return true

	case Named:
		return bound != "" && r.bare && r.name == bound

	default:
		return false
	}
}

// String returns the exception name or the kind in angle brackets.
func (r Ref) String() string {
	if r.kind == Named {
		return r.name
	}

	return "<" + r.kind.String() + ">"
}
