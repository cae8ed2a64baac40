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

import "fmt"

// Code identifies the kind of a contract violation.
type Code uint8

//go:generate go tool stringer -type Code -linecomment
const (
	_ Code = iota

	// RaisedNotDocumented marks an exception that can escape the function but is not documented.
	RaisedNotDocumented // DR001

	// DocumentedNotRaised marks a documented exception the function never raises.
	DocumentedNotRaised // DR002
)

// Kind returns the symbolic name of the violation kind.
func (c Code) Kind() string {
	switch c {
	case RaisedNotDocumented:
		return "RAISED_NOT_DOCUMENTED"

	case DocumentedNotRaised:
		return "DOCUMENTED_NOT_RAISED"

	default:
		return fmt.Sprintf("invalid(%d)", c)
	}
}

// Description returns a one-line explanation of the rule.
func (c Code) Description() string {
	switch c {
	case RaisedNotDocumented:
		return "an exception is raised but not documented"

	case DocumentedNotRaised:
		return "an exception is documented but never raised"

	default:
		return "unknown rule"
	}
}

// Message renders the human-readable message for the exception name.
func (c Code) Message(name string) string {
	switch c {
	case RaisedNotDocumented:
		return fmt.Sprintf(`Exception "%s" raised but not documented`, name)

	case DocumentedNotRaised:
		return fmt.Sprintf(`Exception "%s" documented but never raised`, name)

	default:
		return fmt.Sprintf(`Exception "%s": unknown violation %d`, name, c)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c Code) MarshalText() ([]byte, error) {
	switch c {
	case RaisedNotDocumented, DocumentedNotRaised:
		return []byte(c.String()), nil

	default:
		return nil, fmt.Errorf("unknown violation code %d", c)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Code) UnmarshalText(text []byte) error {
	switch string(text) {
	case "DR001":
		*c = RaisedNotDocumented

	case "DR002":
		*c = DocumentedNotRaised

	default:
		return fmt.Errorf("unknown violation code %q", string(text))
	}

	return nil
}
