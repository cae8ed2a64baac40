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

// Package settings loads docraise configuration files.
//
// Settings are read from a .docraise.yaml file or from the [docraise] section of
// setup.cfg or tox.ini, and converted into analyzer options.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/docraise/analyzer"
	"fillmore-labs.com/docraise/analyzer/level"
)

// Section is the INI section holding docraise settings.
const Section = "docraise"

// ErrInvalid is returned for settings files that can't be interpreted.
var ErrInvalid = errors.New("invalid settings")

// Candidates are the settings files searched by [Discover], in order of precedence.
var Candidates = [...]string{".docraise.yaml", ".docraise.yml", "setup.cfg", "tox.ini"}

// Settings represents the configuration options of a docraise run.
type Settings struct {
	// RaisedNotDocumented enables DR001 findings.
	RaisedNotDocumented *bool `yaml:"dr001,omitempty"`
	// DocumentedNotRaised enables DR002 findings.
	DocumentedNotRaised *bool `yaml:"dr002,omitempty"`
	// Generated enables checking generated files.
	Generated *bool `yaml:"generated,omitempty"`
	// Reraise sets how re-raises in except clauses are resolved.
	Reraise *level.Reraise `yaml:"reraise,omitempty"`
	// Exclude lists glob patterns of paths to skip.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the docraise analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.RaisedNotDocumented, analyzer.WithRaisedNotDocumented)
	opts = appendOption(opts, s.DocumentedNotRaised, analyzer.WithDocumentedNotRaised)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Reraise, analyzer.WithReraise)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Load reads the settings file at path. Files named *.yaml or *.yml are YAML,
// everything else is INI with the settings in the [docraise] section.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	s, _, err := parse(path, data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Discover searches dir for the first of the [Candidates] holding docraise settings.
// An INI file without a [docraise] section is passed over. When nothing is found,
// the empty path and zero Settings are returned.
func Discover(dir string) (Settings, string, error) {
	for _, name := range Candidates {
		path := filepath.Join(dir, name)

		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return Settings{}, "", fmt.Errorf("reading settings: %w", err)
		}

		s, found, err := parse(path, data)
		if err != nil {
			return Settings{}, "", fmt.Errorf("%s: %w", path, err)
		}

		if found {
			return s, path, nil
		}
	}

	return Settings{}, "", nil
}

func parse(path string, data []byte) (Settings, bool, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		s, err := parseYAML(data)

		return s, true, err

	default:
		return parseINI(data)
	}
}

func parseYAML(data []byte) (Settings, error) {
	var s Settings

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return s, nil
}

// parseINI reads the [docraise] section. found is false when there is no such section.
func parseINI(data []byte) (s Settings, found bool, err error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{AllowPythonMultilineValues: true}, data)
	if err != nil {
		return Settings{}, false, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if !cfg.HasSection(Section) {
		return Settings{}, false, nil
	}

	sec := cfg.Section(Section)

	for _, key := range sec.Keys() {
		switch name := strings.ReplaceAll(key.Name(), "_", "-"); name {
		case "dr001":
			s.RaisedNotDocumented, err = iniBool(key)

		case "dr002":
			s.DocumentedNotRaised, err = iniBool(key)

		case "generated":
			s.Generated, err = iniBool(key)

		case "reraise":
			var r level.Reraise
			if err = r.UnmarshalText([]byte(key.String())); err == nil {
				s.Reraise = &r
			}

		case "exclude":
			s.Exclude = strings.FieldsFunc(key.String(), func(r rune) bool {
				return r == ',' || r == '\n' || r == '\r' || r == ' ' || r == '\t'
			})

		default:
			err = fmt.Errorf("unknown key %q", key.Name())
		}

		if err != nil {
			return Settings{}, true, fmt.Errorf("%w: [%s] %w", ErrInvalid, Section, err)
		}
	}

	return s, true, nil
}

func iniBool(key *ini.Key) (*bool, error) {
	b, err := key.Bool()
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", key.Name(), err)
	}

	return &b, nil
}
