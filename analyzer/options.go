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
	"log/slog"

	"fillmore-labs.com/docraise/analyzer/level"
	"fillmore-labs.com/docraise/internal/config"
	"fillmore-labs.com/docraise/internal/run"
)

// Option configures specific behavior of a [New] docraise analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithRaisedNotDocumented is an [Option] to configure whether DR001 findings are reported.
func WithRaisedNotDocumented(enabled bool) Option {
	return raisedOption{enabled: enabled}
}

type raisedOption struct{ enabled bool }

func (o raisedOption) apply(r *run.Options) {
	r.Checks.Set(config.RaisedNotDocumented, o.enabled)
}

func (o raisedOption) LogAttr() slog.Attr {
	return slog.Bool("dr001", o.enabled)
}

// WithDocumentedNotRaised is an [Option] to configure whether DR002 findings are reported.
func WithDocumentedNotRaised(enabled bool) Option {
	return documentedOption{enabled: enabled}
}

type documentedOption struct{ enabled bool }

func (o documentedOption) apply(r *run.Options) {
	r.Checks.Set(config.DocumentedNotRaised, o.enabled)
}

func (o documentedOption) LogAttr() slog.Attr {
	return slog.Bool("dr002", o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithReraise is an [Option] to configure how re-raises inside except clauses are resolved.
func WithReraise(reraise level.Reraise) Option { return reraiseOption{reraise: reraise} }

type reraiseOption struct{ reraise level.Reraise }

func (o reraiseOption) apply(r *run.Options) {
	r.Reraise = o.reraise
}

func (o reraiseOption) LogAttr() slog.Attr {
	return slog.String("reraise", o.reraise.String())
}

// WithLogger is an [Option] to set the logger receiving skipped functions and internal errors.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
