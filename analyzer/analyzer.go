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

package analyzer

import (
	"fillmore-labs.com/docraise/internal/report"
	"fillmore-labs.com/docraise/internal/run"
)

// Public API constants for the docraise analyzer.
const (
	name = "docraise"
	doc  = `docraise checks that documented exceptions match the exceptions a Python function can raise`
	url  = "https://pkg.go.dev/fillmore-labs.com/docraise"
)

// Result is the outcome of checking one source file.
type Result = run.Result

// Violation is a single finding.
type Violation = report.Violation

// Code identifies the kind of a [Violation].
type Code = report.Code

// Codes of reported violations.
const (
	// RaisedNotDocumented (DR001): an exception can escape the function but is not documented.
	RaisedNotDocumented = report.RaisedNotDocumented

	// DocumentedNotRaised (DR002): a documented exception is never raised.
	DocumentedNotRaised = report.DocumentedNotRaised
)

// Analyzer checks Python sources against their documented exception contracts.
//
// An Analyzer is immutable and safe for concurrent use.
type Analyzer struct {
	r *run.Options
}

// New creates a new docraise analyzer.
// It allows for programmatic configuration using [Option].
func New(opts ...Option) *Analyzer {
	return &Analyzer{r: makeRunOptions(opts)}
}

// Name returns the analyzer name.
func (*Analyzer) Name() string { return name }

// Doc returns a one-line description of the analyzer.
func (*Analyzer) Doc() string { return doc }

// URL returns the documentation location of the analyzer.
func (*Analyzer) URL() string { return url }
