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

package analyze

import (
	"context"
	"log/slog"
	"slices"

	"fillmore-labs.com/docraise/internal/exception"
	"fillmore-labs.com/docraise/internal/scope"
	"fillmore-labs.com/docraise/internal/syntax"
)

// visitor is a depth-first traversal of one function body.
//
// Children are visited before a node's own resolution runs, so when an except
// clause closes every raise lexically inside it is already in the scope, in source order.
type visitor struct {
	ctx    context.Context
	pass   Pass
	scope  *scope.Function
	reAll  bool
	nested []*syntax.FuncDef
}

func (v *visitor) visitAll(body []syntax.Node) {
	for _, n := range body {
		v.visit(n)
	}
}

func (v *visitor) visit(n syntax.Node) {
	switch n := n.(type) {
	case *syntax.FuncDef:
		// A scope is already open: nested definitions are not analyzed.
		v.nested = append(v.nested, n)

	case *syntax.ClassDef:
		v.visitAll(n.Body)

	case *syntax.Raise:
		ref := exception.Resolve(n.Exc)
		if ref.Kind() == exception.Unknown {
			v.pass.debug(v.ctx, "Unresolved raise excluded",
				slog.String("function", v.scope.Def().Name),
				slog.Int("line", n.Line()),
				slog.String("shape", shape(n.Exc)))
		}

		v.scope.Append(ref)

	case *syntax.Try:
		v.visitAll(n.Body)

		for _, h := range n.Handlers {
			v.visitHandler(h)
		}

		v.visitAll(n.Else)
		v.visitAll(n.Finally)

	case *syntax.Block:
		v.visitAll(n.Body)

	default:
		v.pass.internalError(v.ctx, n, "Unexpected node type: %T", n)
	}
}

// visitHandler visits the clause body, then resolves re-raises of the caught exception.
func (v *visitor) visitHandler(h *syntax.Handler) {
	mark := v.scope.Mark()

	v.visitAll(h.Body)

	types := slices.Collect(exception.CaughtTypes(h.Type))
	v.scope.Resolve(mark, types, h.Name, v.reAll)
}

// shape names the syntactic form of an unresolvable raise operand.
func shape(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Opaque:
		return e.Kind

	case *syntax.Call:
		return "call of " + shape(e.Func)

	case *syntax.Attribute:
		return "attribute of " + shape(e.Value)

	case *syntax.Tuple:
		return "tuple"

	case *syntax.Name:
		return "name"

	default:
		return "unknown"
	}
}
