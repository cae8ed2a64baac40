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

package report

import (
	"context"
	"log/slog"
	"strconv"
)

// Violation is a single contract finding. Line is the line of the function definition.
type Violation struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Code     Code   `json:"code"`
	Message  string `json:"message"`
}

// NewViolation creates the violation of kind code for the exception name.
func NewViolation(filename string, line int, code Code, name string) Violation {
	return Violation{
		Filename: filename,
		Line:     line,
		Code:     code,
		Message:  code.Message(name),
	}
}

// String renders the violation as "filename:line: code message".
func (v Violation) String() string {
	return v.Position() + ": " + v.Code.String() + " " + v.Message
}

// Position renders "filename:line".
func (v Violation) Position() string {
	return v.Filename + ":" + strconv.Itoa(v.Line)
}

// Skipped is a nested function definition that was not analyzed.
type Skipped struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

// LogSkipped reports skipped nested functions on the diagnostic channel.
func LogSkipped(ctx context.Context, logger *slog.Logger, skipped []Skipped) {
	if logger == nil {
		return
	}

	for _, s := range skipped {
		logger.LogAttrs(ctx, slog.LevelWarn, "nested functions are not supported, skipping",
			slog.String("file", s.Filename),
			slog.Int("line", s.Line),
			slog.String("function", s.Function))
	}
}
