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

// Package docstring reads the declared exception contract from Python docstrings.
//
// The reST, Google, NumPy and Epydoc conventions are understood. [Raises] parses
// the docstring in every convention and keeps the result with the most entries.
package docstring

import (
	"regexp"
	"strings"
)

// Style is a docstring convention.
type Style uint8

const (
	// ReST is the reStructuredText field list convention (:raises ValueError: ...).
	ReST Style = iota + 1

	// Google is the Google convention (Raises: section with indented items).
	Google

	// NumPy is the numpydoc convention (Raises section underlined with dashes).
	NumPy

	// Epydoc is the Epydoc convention (@raise ValueError: ...).
	Epydoc
)

// styles is the order in which conventions are tried; the first wins ties.
var styles = [...]Style{ReST, Google, NumPy, Epydoc}

// Raises returns the exception names documented in doc, in declaration order.
// Duplicates are kept. An empty doc declares nothing.
func Raises(doc string) []string {
	var best []string
	for _, style := range styles {
		if names := style.Raises(doc); len(names) > len(best) {
			best = names
		}
	}

	return best
}

// Raises returns the exception names documented in doc using this convention.
func (s Style) Raises(doc string) []string {
	if strings.TrimSpace(doc) == "" {
		return nil
	}

	switch s {
	case ReST:
		return fieldRaises(restPattern, doc)

	case Google:
		return googleRaises(doc)

	case NumPy:
		return numpyRaises(doc)

	case Epydoc:
		return fieldRaises(epydocPattern, doc)

	default:
		return nil
	}
}

var (
	restPattern   = regexp.MustCompile(`(?m)^:(?:raises|raise|except|exception)[ \t]+([^\s:]+)[ \t]*:`)
	epydocPattern = regexp.MustCompile(`(?m)^@(?:raises|raise)[ \t]+([^\s:]+)[ \t]*:`)
)

func fieldRaises(pattern *regexp.Regexp, doc string) []string {
	matches := pattern.FindAllStringSubmatch(doc, -1)
	if len(matches) == 0 {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}

	return names
}
