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

package analyzer

import (
	"github.com/spf13/pflag"

	"fillmore-labs.com/docraise/internal/config"
	"fillmore-labs.com/docraise/internal/run"
)

// Flag names registered by [RegisterFlags].
const (
	FlagRaisedNotDocumented = "dr001"
	FlagDocumentedNotRaised = "dr002"
	FlagGenerated           = "generated"
	FlagReraise             = "reraise"
)

// RegisterFlags binds the analyzer options to command line flags.
//
// The returned function yields, after parsing, an [Option] for every flag that was
// set explicitly, so flags can override options from another source.
func RegisterFlags(flags *pflag.FlagSet) func() Options {
	r := run.DefaultOptions()

	boolVar(flags, boolValue[config.CheckFlags, *config.Checks]{&r.Checks, config.RaisedNotDocumented},
		FlagRaisedNotDocumented, "report exceptions that are raised but not documented")
	boolVar(flags, boolValue[config.CheckFlags, *config.Checks]{&r.Checks, config.DocumentedNotRaised},
		FlagDocumentedNotRaised, "report exceptions that are documented but never raised")
	boolVar(flags, boolValue[config.BehaviorFlags, *config.Behavior]{&r.Behavior, config.IncludeGenerated},
		FlagGenerated, "check generated files")
	flags.Var(&r.Reraise, FlagReraise, "resolve re-raises in except clauses: the last raise only, or all")

	return func() Options {
		var opts Options

		flags.Visit(func(f *pflag.Flag) {
			switch f.Name {
			case FlagRaisedNotDocumented:
				opts = append(opts, WithRaisedNotDocumented(r.Checks.Enabled(config.RaisedNotDocumented)))

			case FlagDocumentedNotRaised:
				opts = append(opts, WithDocumentedNotRaised(r.Checks.Enabled(config.DocumentedNotRaised)))

			case FlagGenerated:
				opts = append(opts, WithGenerated(r.Behavior.Enabled(config.IncludeGenerated)))

			case FlagReraise:
				opts = append(opts, WithReraise(r.Reraise))
			}
		})

		return opts
	}
}

func boolVar(flags *pflag.FlagSet, value pflag.Value, name, usage string) {
	f := flags.VarPF(value, name, "", usage)
	f.NoOptDefVal = "true"
}
