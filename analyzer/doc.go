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

// Package analyzer implements the docraise exception contract check.
//
// # Overview
//
// DocRaise compares the exceptions a Python function documents in the Raises
// section of its docstring with the exceptions its body can raise, and reports
// the mismatches:
//
//   - DR001: an exception is raised but not documented
//   - DR002: an exception is documented but never raised
//
// # Example
//
//	def load(path):
//	    """Load a configuration.
//
//	    Raises:
//	        KeyError: if the file is empty.
//	    """
//	    if not path:
//	        raise ValueError("no path")  # DR001: ValueError is not documented
//	                                     # DR002: KeyError is never raised
//
// # Exception Flow
//
// Raises are matched by exact name, without any notion of exception hierarchy.
// A raise inside an except clause that re-raises the caught exception (a bare
// raise, or a raise of the name bound with "as") is replaced by the types named
// in the clause. A catch-all clause drops it. Raises whose exception cannot be
// resolved to a name are ignored, and nested functions are skipped.
package analyzer
