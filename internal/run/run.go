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

package run

import (
	"context"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/docraise/internal/analyze"
	"fillmore-labs.com/docraise/internal/config"
	"fillmore-labs.com/docraise/internal/report"
	"fillmore-labs.com/docraise/internal/syntax"
)

// Result is the outcome of analyzing one translation unit.
type Result struct {
	// Violations in source order of the functions.
	Violations []report.Violation `json:"violations,omitempty"`

	// Skipped nested functions.
	Skipped []report.Skipped `json:"skipped,omitempty"`
}

// WithFilename returns a copy of r with every finding stamped with filename.
func (r Result) WithFilename(filename string) Result {
	c := Result{
		Violations: slices.Clone(r.Violations),
		Skipped:    slices.Clone(r.Skipped),
	}

	for i := range c.Violations {
		c.Violations[i].Filename = filename
	}

	for i := range c.Skipped {
		c.Skipped[i].Filename = filename
	}

	return c
}

// Run analyzes every function of the module that is not nested inside another function.
// The filename is only used to stamp findings.
func (o *Options) Run(ctx context.Context, filename string, m *syntax.Module) Result {
	ctx, task := trace.NewTask(ctx, "DocRaise")
	defer task.End()

	trace.Log(ctx, "file", filename)

	// Skip generated files
	if m.Generated && !o.Behavior.Enabled(config.IncludeGenerated) {
		return Result{}
	}

	p := analyze.Pass{
		Filename: filename,
		Checks:   o.Checks,
		Reraise:  o.Reraise,
		Logger:   o.Logger,
	}

	var r Result

	for def := range syntax.Functions(m.Body) {
		fr := p.Function(ctx, def)

		r.Violations = append(r.Violations, fr.Violations...)

		for _, n := range fr.Nested {
			r.Skipped = append(r.Skipped, report.Skipped{Filename: filename, Line: n.Line(), Function: n.Name})
		}
	}

	report.LogSkipped(ctx, o.Logger, r.Skipped)

	return r
}
