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

// Package level defines text-configurable analysis levels.
package level

import (
	"fmt"
	"strings"
)

// Reraise specifies how re-raises inside an except clause are resolved.
type Reraise uint8

const (
	// ReraiseLast resolves only the last raise of an except clause body.
	// An earlier bare re-raise followed by another raise in the same clause is dropped.
	ReraiseLast Reraise = iota

	// ReraiseAll resolves every bare re-raise and every re-raise of the bound name
	// in an except clause body.
	ReraiseAll
)

// MarshalText implements [encoding.TextMarshaler].
func (o Reraise) MarshalText() ([]byte, error) {
	switch o {
	case ReraiseLast:
		return []byte("last"), nil

	case ReraiseAll:
		return []byte("all"), nil

	default:
		return nil, fmt.Errorf("unknown reraise level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Reraise) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "last":
		*o = ReraiseLast

	case "all":
		*o = ReraiseAll

	default:
		return fmt.Errorf("unknown reraise level %q", string(text))
	}

	return nil
}

// String implements [fmt.Stringer].
func (o Reraise) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Reraise(%d)", o)
	}

	return string(text)
}

// Set implements the command line flag value interface.
func (o *Reraise) Set(s string) error { return o.UnmarshalText([]byte(s)) }

// Type names the flag value type in usage messages.
func (*Reraise) Type() string { return "last|all" }
