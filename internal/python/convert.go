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

package python

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/docraise/internal/docstring"
	"fillmore-labs.com/docraise/internal/syntax"
)

// converter reduces a tree-sitter concrete syntax tree to [syntax] nodes.
type converter struct {
	src []byte
}

// simple are the statements that can neither raise nor contain statements.
var simple = map[string]struct{}{
	"expression_statement":    {},
	"return_statement":        {},
	"pass_statement":          {},
	"break_statement":         {},
	"continue_statement":      {},
	"import_statement":        {},
	"import_from_statement":   {},
	"future_import_statement": {},
	"global_statement":        {},
	"nonlocal_statement":      {},
	"assert_statement":        {},
	"delete_statement":        {},
	"print_statement":         {},
	"exec_statement":          {},
	"type_alias_statement":    {},
}

func (c converter) block(n *sitter.Node) []syntax.Node {
	var body []syntax.Node
	for child := range namedChildren(n) {
		body = append(body, c.stmt(child)...)
	}

	return body
}

func (c converter) stmt(n *sitter.Node) []syntax.Node {
	if _, ok := simple[n.Type()]; ok {
		return nil
	}

	switch n.Type() {
	case "function_definition":
		return []syntax.Node{c.funcDef(n)}

	case "class_definition":
		return []syntax.Node{c.classDef(n)}

	case "decorated_definition":
		if def := n.ChildByFieldName("definition"); def != nil {
			return c.stmt(def)
		}

		return nil

	case "raise_statement":
		return []syntax.Node{c.raise(n)}

	case "try_statement":
		return []syntax.Node{c.try(n)}

	case "block", "module":
		return c.block(n)

	default: // if, for, while, with, match and their clauses
		body := c.block(n)
		if len(body) == 0 {
			return nil
		}

		return []syntax.Node{&syntax.Block{Pos: pos(n), Body: body}}
	}
}

func (c converter) funcDef(n *sitter.Node) *syntax.FuncDef {
	def := &syntax.FuncDef{Pos: pos(n)}

	if name := n.ChildByFieldName("name"); name != nil {
		def.Name = name.Content(c.src)
	}

	for child := range children(n) {
		if child.Type() == "async" {
			def.Async = true
		}

		if child.Type() == "def" {
			break
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		def.Doc = c.docstring(body)
		def.Body = c.block(body)
	}

	return def
}

func (c converter) classDef(n *sitter.Node) *syntax.ClassDef {
	class := &syntax.ClassDef{Pos: pos(n)}

	if name := n.ChildByFieldName("name"); name != nil {
		class.Name = name.Content(c.src)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		class.Body = c.block(body)
	}

	return class
}

// raise splits the children of a raise statement at the "from" keyword.
func (c converter) raise(n *sitter.Node) *syntax.Raise {
	r := &syntax.Raise{Pos: pos(n)}

	for child := range children(n) {
		switch {
		case child.Type() == "from":
			return r

		case !child.IsNamed() || child.Type() == "comment":
			// keywords and extras

		case r.Exc == nil:
			r.Exc = c.expr(child)
		}
	}

	return r
}

func (c converter) try(n *sitter.Node) *syntax.Try {
	t := &syntax.Try{Pos: pos(n)}

	for child := range namedChildren(n) {
		switch child.Type() {
		case "block":
			t.Body = c.block(child)

		case "except_clause", "except_group_clause":
			t.Handlers = append(t.Handlers, c.handler(child))

		case "else_clause":
			t.Else = c.clauseBody(child)

		case "finally_clause":
			t.Finally = c.clauseBody(child)
		}
	}

	return t
}

func (c converter) clauseBody(n *sitter.Node) []syntax.Node {
	if body := firstNamed(n, "block"); body != nil {
		return c.block(body)
	}

	return nil
}

// handler reads an except clause. The grammar does not name its parts consistently
// across versions, so they are taken by position: the caught type, then the alias.
func (c converter) handler(n *sitter.Node) *syntax.Handler {
	h := &syntax.Handler{Pos: pos(n)}

	var parts []*sitter.Node
	for child := range namedChildren(n) {
		if child.Type() == "block" {
			h.Body = c.block(child)

			continue
		}

		parts = append(parts, child)
	}

	if len(parts) == 0 {
		return h
	}

	typ := parts[0]
	if typ.Type() == "as_pattern" {
		var alias *sitter.Node
		typ, alias = c.asPattern(typ)
		if alias != nil {
			h.Name = strings.TrimSpace(alias.Content(c.src))
		}
	}

	if typ != nil {
		h.Type = c.expr(typ)
	}

	if len(parts) > 1 {
		h.Name = strings.TrimSpace(parts[1].Content(c.src))
	}

	return h
}

// asPattern splits "expr as target".
func (c converter) asPattern(n *sitter.Node) (value, alias *sitter.Node) {
	for child := range namedChildren(n) {
		switch {
		case value == nil:
			value = child

		case alias == nil:
			alias = child
		}
	}

	return value, alias
}

func (c converter) expr(n *sitter.Node) syntax.Expr {
	if n == nil {
		return &syntax.Opaque{}
	}

	switch n.Type() {
	case "identifier":
		return &syntax.Name{ID: n.Content(c.src)}

	case "attribute":
		attr := n.ChildByFieldName("attribute")
		if attr == nil {
			break
		}

		return &syntax.Attribute{Value: c.expr(n.ChildByFieldName("object")), Attr: attr.Content(c.src)}

	case "call":
		return &syntax.Call{Func: c.expr(n.ChildByFieldName("function"))}

	case "tuple":
		elts := make([]syntax.Expr, 0, n.NamedChildCount())
		for child := range namedChildren(n) {
			elts = append(elts, c.expr(child))
		}

		return &syntax.Tuple{Elts: elts}

	case "parenthesized_expression":
		for child := range namedChildren(n) {
			return c.expr(child)
		}
	}

	return &syntax.Opaque{Kind: n.Type()}
}

// docstring returns the cleaned docstring of a function body, or "" when it has none.
func (c converter) docstring(body *sitter.Node) string {
	var first *sitter.Node
	for child := range namedChildren(body) {
		first = child

		break
	}

	if first == nil || first.Type() != "expression_statement" || first.NamedChildCount() != 1 {
		return ""
	}

	raw, ok := c.stringValue(first.NamedChild(0))
	if !ok {
		return ""
	}

	return docstring.Clean(raw)
}

// stringValue evaluates a str literal or an implicit concatenation of str literals.
func (c converter) stringValue(n *sitter.Node) (string, bool) {
	switch n.Type() {
	case "string":
		return literal(n.Content(c.src))

	case "concatenated_string":
		var b strings.Builder
		for child := range namedChildren(n) {
			s, ok := c.stringValue(child)
			if !ok {
				return "", false
			}

			b.WriteString(s)
		}

		return b.String(), true

	default:
		return "", false
	}
}

func pos(n *sitter.Node) syntax.Pos {
	return syntax.Pos(n.StartPoint().Row + 1)
}
