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
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
)

// children yields all children of n, named or not.
func children(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for i := range int(n.ChildCount()) {
			child := n.Child(i)
			if child == nil {
				continue
			}

			if !yield(child) {
				return
			}
		}
	}
}

// namedChildren yields the named children of n, skipping comments.
func namedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for i := range int(n.NamedChildCount()) {
			child := n.NamedChild(i)
			if child == nil || child.Type() == "comment" {
				continue // extras
			}

			if !yield(child) {
				return
			}
		}
	}
}

// firstNamed returns the first named, non-comment child of type typ, or nil.
func firstNamed(n *sitter.Node, typ string) *sitter.Node {
	for child := range namedChildren(n) {
		if child.Type() == typ {
			return child
		}
	}

	return nil
}
