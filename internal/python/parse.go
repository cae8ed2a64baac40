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

// Package python turns Python source into the [syntax] tree the analyzer consumes.
//
// Parsing is done with tree-sitter; the concrete syntax tree is then reduced to the
// closed node set of package syntax, keeping only what matters for exception flow.
package python

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	tspython "github.com/smacker/go-tree-sitter/python"

	"fillmore-labs.com/docraise/internal/syntax"
)

// ErrSyntax is wrapped by errors for source that does not parse.
var ErrSyntax = errors.New("invalid syntax")

// SyntaxError locates the first syntax error of a source file.
type SyntaxError struct {
	Line, Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Column, ErrSyntax)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse parses Python source into a [syntax.Module].
//
// Source with syntax errors is rejected with a [*SyntaxError].
func Parse(ctx context.Context, src []byte) (*syntax.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("python parse canceled: %w", err)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(tspython.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root)
	}

	c := converter{src: src}

	return &syntax.Module{
		Body:      c.block(root),
		Generated: IsGenerated(src),
	}, nil
}

// syntaxError locates the first error or missing node below n.
func syntaxError(n *sitter.Node) *SyntaxError {
	for n != nil && n.Type() != "ERROR" && !n.IsMissing() {
		var next *sitter.Node
		for child := range children(n) {
			if child.HasError() || child.IsMissing() {
				next = child

				break
			}
		}

		if next == nil {
			break // the error is n itself
		}

		n = next
	}

	p := n.StartPoint()

	return &SyntaxError{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}
