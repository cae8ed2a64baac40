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

// Package config holds the flag sets that configure an analysis run.
package config

// CheckFlags represents the individual contract checks.
type CheckFlags uint8

const (
	// RaisedNotDocumented enables reporting exceptions that are raised but not documented (DR001).
	RaisedNotDocumented CheckFlags = 1 << iota

	// DocumentedNotRaised enables reporting exceptions that are documented but never raised (DR002).
	DocumentedNotRaised
)

// BehaviorFlags represents behavioral options of a run.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to analyze generated files.
	IncludeGenerated BehaviorFlags = 1 << iota
)

// Checks is the set of enabled checks.
type Checks = BitMask[CheckFlags]

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultChecks enables all checks.
func DefaultChecks() Checks {
	return NewBitMask(RaisedNotDocumented | DocumentedNotRaised)
}

// DefaultBehavior excludes generated files.
func DefaultBehavior() Behavior {
	return NewBitMask[BehaviorFlags]()
}
