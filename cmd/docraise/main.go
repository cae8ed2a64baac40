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

// Command docraise checks that the docstrings of Python functions document the
// exceptions the functions can raise.
//
// Usage:
//
//	docraise [flags] [PATH...]
//
// Every PATH is a Python file or a directory searched recursively for *.py files.
// Without paths, the current directory is checked. The exit status is 0 without
// findings, 1 with findings and 2 when files could not be checked.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
)

// version is set at build time via ldflags.
var version = "devel"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// execute runs the command line and returns the exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := newCommand(stdout, stderr)

	root := c.cobraCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)

		return ExitError
	}

	return c.exitCode
}
