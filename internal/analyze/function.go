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
	"fmt"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/docraise/analyzer/level"
	"fillmore-labs.com/docraise/internal/config"
	"fillmore-labs.com/docraise/internal/docstring"
	"fillmore-labs.com/docraise/internal/report"
	"fillmore-labs.com/docraise/internal/scope"
	"fillmore-labs.com/docraise/internal/syntax"
)

// Pass holds the per-file settings of an analysis.
type Pass struct {
	// Filename stamps the reported violations; it is not interpreted.
	Filename string

	// Checks selects the reported violation kinds.
	Checks config.Checks

	// Reraise selects how re-raises inside except clauses are resolved.
	Reraise level.Reraise

	// Logger receives internal errors and the debug trail of excluded raises. May be nil.
	Logger *slog.Logger
}

// FunctionResult is the outcome of analyzing one function.
type FunctionResult struct {
	// Violations of the declared contract, raised-but-not-documented first.
	Violations []report.Violation

	// Nested function definitions that were skipped.
	Nested []*syntax.FuncDef
}

// Function analyzes the body of def and diffs the exceptions that can escape it
// against the contract declared in its docstring.
func (p Pass) Function(ctx context.Context, def *syntax.FuncDef) FunctionResult {
	defer trace.StartRegion(ctx, "Function").End()

	v := visitor{
		ctx:   ctx,
		pass:  p,
		scope: scope.Open(def),
		reAll: p.Reraise == level.ReraiseAll,
	}

	v.visitAll(def.Body)

	raised, err := v.scope.Close()
	if err != nil {
		p.internalError(ctx, def, "Function %s: %v", def.Name, err)

		return FunctionResult{Nested: v.nested}
	}

	declared := docstring.Raises(def.Doc)

	return FunctionResult{
		Violations: report.Diff(p.Filename, def.Line(), raised, declared, p.Checks),
		Nested:     v.nested,
	}
}

func (p Pass) internalError(ctx context.Context, n interface{ Line() int }, format string, args ...any) {
	if p.Logger == nil {
		return
	}

	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	p.Logger.LogAttrs(ctx, slog.LevelError, string(msg),
		slog.String("file", p.Filename),
		slog.Int("line", n.Line()))
}

func (p Pass) debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if p.Logger == nil {
		return
	}

	attrs = append([]slog.Attr{slog.String("file", p.Filename)}, attrs...)
	p.Logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
