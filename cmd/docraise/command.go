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
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/docraise/analyzer"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// command holds the state of one docraise invocation.
type command struct {
	stdout, stderr io.Writer

	configFile string
	format     string
	noColor    bool
	jobs       int
	exclude    []string
	cacheFile  string
	logLevel   string

	flagOptions func() analyzer.Options

	exitCode int
}

func newCommand(stdout, stderr io.Writer) *command {
	return &command{stdout: stdout, stderr: stderr}
}

func (c *command) cobraCommand() *cobra.Command {
	info := analyzer.New()

	cmd := &cobra.Command{
		Use:           info.Name() + " [flags] [PATH...]",
		Short:         "Check documented exceptions of Python functions",
		Long:          longHelp(info),
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), args)
		},
	}

	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	flags := cmd.Flags()
	c.flagOptions = analyzer.RegisterFlags(flags)

	flags.StringVar(&c.configFile, "config", "", "settings file (default: .docraise.yaml, setup.cfg or tox.ini)")
	flags.StringVar(&c.format, "format", formatText, "output format: text or json")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	flags.IntVarP(&c.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files checked in parallel")
	flags.StringArrayVar(&c.exclude, "exclude", nil, "glob pattern of paths to skip (repeatable)")
	flags.StringVar(&c.cacheFile, "cache", "", "result cache database")
	flags.StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	return cmd
}

func longHelp(info *analyzer.Analyzer) string {
	var b strings.Builder

	b.WriteString(info.Doc())
	b.WriteString(".\n\n")

	for _, code := range [...]analyzer.Code{analyzer.RaisedNotDocumented, analyzer.DocumentedNotRaised} {
		fmt.Fprintf(&b, "%s: %s.\n", code, code.Description())
	}

	fmt.Fprintf(&b, "\nDocumentation: %s", info.URL())

	return b.String()
}

func (c *command) validate() error {
	switch c.format {
	case formatText, formatJSON:

	default:
		return fmt.Errorf("unknown output format %q", c.format)
	}

	if c.jobs < 1 {
		c.jobs = runtime.GOMAXPROCS(0)
	}

	return nil
}

func (c *command) logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level})), nil
}
