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
	"context"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/docraise/internal/python"
	"fillmore-labs.com/docraise/internal/syntax"
)

// CheckSource parses Python source and checks every function in it.
//
// The filename only stamps findings and errors. Unparsable source is reported
// with an error wrapping [python.ErrSyntax].
func (a *Analyzer) CheckSource(ctx context.Context, filename string, src []byte) (Result, error) {
	region := trace.StartRegion(ctx, "Parse")
	m, err := python.Parse(ctx, src)
	region.End()

	if err != nil {
		return Result{}, fmt.Errorf("%s:%w", filename, err)
	}

	return a.CheckModule(ctx, filename, m), nil
}

// CheckModule checks every function of an already parsed module.
func (a *Analyzer) CheckModule(ctx context.Context, filename string, m *syntax.Module) Result {
	return a.r.Run(ctx, filename, m)
}
