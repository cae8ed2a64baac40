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
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// defaultExclude are skipped in addition to the configured patterns.
var defaultExclude = []string{".*", "__pycache__"}

// discover expands paths into the Python files to check, in walk order.
// Files named explicitly are always checked; files found in directories are
// checked when they end in .py and no path element matches an exclude pattern.
func discover(paths, exclude []string) (files []string, errs []error) {
	exclude = append(exclude, defaultExclude...)

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		if !info.IsDir() {
			files = append(files, root)

			continue
		}

		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				errs = append(errs, err)

				return nil
			}

			if p != root && excluded(p, d.Name(), exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.IsDir() && d.Type().IsRegular() && strings.HasSuffix(d.Name(), ".py") {
				files = append(files, p)
			}

			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("walking %s: %w", root, err))
		}
	}

	return files, errs
}

// excluded reports whether a pattern matches the base name or the slash separated path.
func excluded(p, name string, patterns []string) bool {
	slashed := filepath.ToSlash(filepath.Clean(p))

	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}

		if ok, _ := path.Match(pattern, slashed); ok {
			return true
		}
	}

	return false
}
