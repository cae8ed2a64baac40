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

package syntax

import "iter"

// Functions yields, in source order, every function definition in body that is not
// nested inside another function: functions under compound statements and methods
// of classes are included, function bodies are not entered.
func Functions(body []Node) iter.Seq[*FuncDef] {
	return func(yield func(*FuncDef) bool) {
		walkFunctions(body, yield)
	}
}

func walkFunctions(body []Node, yield func(*FuncDef) bool) bool {
	for _, n := range body {
		if !walkFunction(n, yield) {
			return false
		}
	}

	return true
}

func walkFunction(n Node, yield func(*FuncDef) bool) bool {
	switch n := n.(type) {
	case *FuncDef:
		return yield(n)

	case *ClassDef:
		return walkFunctions(n.Body, yield)

	case *Try:
		if !walkFunctions(n.Body, yield) {
			return false
		}

		for _, h := range n.Handlers {
			if !walkFunctions(h.Body, yield) {
				return false
			}
		}

		return walkFunctions(n.Else, yield) && walkFunctions(n.Finally, yield)

	case *Block:
		return walkFunctions(n.Body, yield)

	default: // *Raise outside of a function
		return true
	}
}
