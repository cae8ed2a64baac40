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

import "fillmore-labs.com/docraise/internal/config"

// Diff compares the resolved raised exception names of a function with its declared contract.
//
// A raised name absent from the declared names yields a [RaisedNotDocumented] violation,
// a declared name absent from the raised names yields a [DocumentedNotRaised] violation.
// Membership is set membership; one violation is produced per entry on the reporting side,
// in the order of that side.
func Diff(filename string, line int, raised, declared []string, checks config.Checks) []Violation {
	var violations []Violation

	if checks.Enabled(config.RaisedNotDocumented) {
		documented := nameSet(declared)
		for _, name := range raised {
			if _, ok := documented[name]; !ok {
				violations = append(violations, NewViolation(filename, line, RaisedNotDocumented, name))
			}
		}
	}

	if checks.Enabled(config.DocumentedNotRaised) {
		raisedSet := nameSet(raised)
		for _, name := range declared {
			if _, ok := raisedSet[name]; !ok {
				violations = append(violations, NewViolation(filename, line, DocumentedNotRaised, name))
			}
		}
	}

	return violations
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}
