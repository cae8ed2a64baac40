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

// Package analyze implements the docraise exception-flow pass over one function.
//
// # Overview
//
// The pass walks a function body depth-first and records one exception reference
// per raise statement, in source order. When an except clause closes, the raise
// appended last by its body is inspected: a bare re-raise, or a raise of the name
// the clause binds, is replaced by the exception types the clause names.
//
// # Example
//
//	def load(data):
//	    try:
//	        return data["key"]
//	    except (KeyError, IndexError):
//	        raise                      # resolves to KeyError and IndexError
//
// # Architecture
//
//  1. Traversal: collect references in a [scope.Function]
//  2. Resolution: expand re-raises when an except clause closes
//  3. Report: diff the resolved names against the docstring contract
//
// # Current Limitations
//
//   - Nested function definitions are skipped, not analyzed
//   - Exception hierarchies are not considered, names match exactly
//   - Exceptions caught by a handler are still reported for the try body
package analyze
