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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"fillmore-labs.com/docraise/analyzer"
)

// print writes the violations in the configured format.
func (c *command) print(violations []analyzer.Violation) error {
	if c.format == formatJSON {
		if violations == nil {
			violations = []analyzer.Violation{}
		}

		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(violations)
	}

	renderer := lipgloss.NewRenderer(c.stdout)
	codeStyle := renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	for _, v := range violations {
		code := v.Code.String()
		if !c.noColor {
			code = codeStyle.Render(code)
		}

		if _, err := fmt.Fprintf(c.stdout, "%s: %s %s\n", v.Position(), code, v.Message); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}
