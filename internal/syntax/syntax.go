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

// Package syntax defines the closed set of Python syntax tree nodes the
// exception-flow analyzer works on.
//
// The tree is coarse: only the statements that matter for
// exception flow get their own variant. Every other compound statement is a
// [Block] holding the nested statements in source order, and every expression
// shape the resolution rules do not name is [Opaque].
package syntax

// Pos is a 1-based source line.
type Pos int

// Line returns the line number.
func (p Pos) Line() int { return int(p) }

// Node is a statement-level syntax tree node.
//
// The set of implementations is closed: [FuncDef], [ClassDef], [Raise], [Try] and [Block].
type Node interface {
	Line() int
	node()
}

// Module is a parsed translation unit.
type Module struct {
	Body []Node
	// Generated is true if the source carries a generated code marker.
	Generated bool
}

// FuncDef is a function definition (def or async def).
type FuncDef struct {
	Pos
	Name  string
	Async bool
	// Doc is the cleaned docstring, empty when absent.
	Doc  string
	Body []Node
}

// ClassDef is a class definition.
type ClassDef struct {
	Pos
	Name string
	Body []Node
}

// Raise is a raise statement. Exc is nil for a bare re-raise; the cause of
// "raise ... from ..." is not kept.
type Raise struct {
	Pos
	Exc Expr
}

// Try is a try statement with its handlers.
type Try struct {
	Pos
	Body     []Node
	Handlers []*Handler
	Else     []Node
	Finally  []Node
}

// Handler is an except clause; except* clauses are read the same way.
type Handler struct {
	Pos
	// Type is the caught type expression, nil for a catch-all clause.
	Type Expr
	// Name is the bound name from "as name", empty when unbound.
	Name string
	Body []Node
}

// Block is any other compound statement (if, for, while, with, match, ...).
type Block struct {
	Pos
	Body []Node
}

func (*FuncDef) node()  {}
func (*ClassDef) node() {}
func (*Raise) node()    {}
func (*Try) node()      {}
func (*Block) node()    {}

// Expr is an expression node.
//
// The set of implementations is closed: [Name], [Attribute], [Call], [Tuple] and [Opaque].
type Expr interface {
	expr()
}

// Name is a bare identifier.
type Name struct {
	ID string
}

// Attribute is a member access value.attr.
type Attribute struct {
	Value Expr
	Attr  string
}

// Call is a call expression; only the callee is kept.
type Call struct {
	Func Expr
}

// Tuple is a tuple display, possibly parenthesized.
type Tuple struct {
	Elts []Expr
}

// Opaque is any expression shape not modeled above.
type Opaque struct {
	Kind string
}

func (*Name) expr()      {}
func (*Attribute) expr() {}
func (*Call) expr()      {}
func (*Tuple) expr()     {}
func (*Opaque) expr()    {}
