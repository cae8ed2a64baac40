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
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/docraise/analyzer"
	"fillmore-labs.com/docraise/internal/cache"
	"fillmore-labs.com/docraise/internal/report"
	"fillmore-labs.com/docraise/internal/settings"
)

// fileResult is the outcome of checking one file.
type fileResult struct {
	filename   string
	violations []analyzer.Violation
	err        error
}

func (c *command) run(ctx context.Context, args []string) error {
	if err := c.validate(); err != nil {
		return err
	}

	logger, err := c.logger()
	if err != nil {
		return err
	}

	s, err := c.settings(logger)
	if err != nil {
		c.exitCode = ExitError
		logger.Error("Can't load settings", slog.Any("error", err))

		return nil
	}

	opts := analyzer.Options{analyzer.Options(s.Options()), c.flagOptions(), analyzer.WithLogger(logger)}
	logger.LogAttrs(ctx, slog.LevelDebug, "Configured analyzer", opts.LogAttr())

	a := analyzer.New(opts)

	if len(args) == 0 {
		args = []string{"."}
	}

	files, walkErrs := discover(args, append(s.Exclude, c.exclude...))
	for _, err := range walkErrs {
		logger.Error("Can't read path", slog.Any("error", err))
	}

	results := c.check(ctx, a, files, logger)

	var violations []analyzer.Violation

	failed := len(walkErrs) > 0
	for _, r := range results {
		if r.err != nil {
			failed = true

			logger.Error("Can't check file", slog.String("file", r.filename), slog.Any("error", r.err))

			continue
		}

		violations = append(violations, r.violations...)
	}

	if err := c.print(violations); err != nil {
		return err
	}

	switch {
	case failed:
		c.exitCode = ExitError

	case len(violations) > 0:
		c.exitCode = ExitFindings

	default:
		c.exitCode = ExitSuccess
	}

	return nil
}

// settings loads the explicitly configured settings file, or else the first one found
// in the working directory.
func (c *command) settings(logger *slog.Logger) (settings.Settings, error) {
	if c.configFile != "" {
		return settings.Load(c.configFile)
	}

	s, path, err := settings.Discover(".")
	if err == nil && path != "" {
		logger.Debug("Using settings", slog.String("file", path))
	}

	return s, err
}

// check analyzes files in parallel and returns the results in the order of files.
func (c *command) check(ctx context.Context, a *analyzer.Analyzer, files []string, logger *slog.Logger) []fileResult {
	ctx, task := trace.NewTask(ctx, "Check")
	defer task.End()

	rc := c.openCache(ctx, a, logger)
	if rc != nil {
		defer func() {
			if err := rc.Close(); err != nil {
				logger.Warn("Can't close cache", slog.Any("error", err))
			}
		}()
	}

	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs)

	for i, filename := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = checkFile(ctx, a, rc, filename, logger)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for i := range results {
			if results[i].filename == "" {
				results[i] = fileResult{filename: files[i], err: err}
			}
		}
	}

	return results
}

func checkFile(ctx context.Context, a *analyzer.Analyzer, rc *cache.Cache, filename string, logger *slog.Logger) fileResult {
	src, err := os.ReadFile(filename)
	if err != nil {
		return fileResult{filename: filename, err: err}
	}

	key := filename
	if abs, err := filepath.Abs(filename); err == nil {
		key = abs
	}

	if rc != nil {
		r, ok, err := rc.Get(ctx, key, src)
		if err != nil {
			logger.Warn("Cache read failed", slog.String("file", filename), slog.Any("error", err))
		}

		if ok {
			logger.Debug("Cache hit", slog.String("file", filename))

			r = r.WithFilename(filename)
			report.LogSkipped(ctx, logger, r.Skipped)

			return fileResult{filename: filename, violations: r.Violations}
		}
	}

	r, err := a.CheckSource(ctx, filename, src)
	if err != nil {
		return fileResult{filename: filename, err: err}
	}

	if rc != nil {
		if err := rc.Put(ctx, key, src, r); err != nil {
			logger.Warn("Cache write failed", slog.String("file", filename), slog.Any("error", err))
		}
	}

	return fileResult{filename: filename, violations: r.Violations}
}

// openCache opens the result cache, if configured. Failures disable the cache.
func (c *command) openCache(ctx context.Context, a *analyzer.Analyzer, logger *slog.Logger) *cache.Cache {
	if c.cacheFile == "" {
		return nil
	}

	rc, err := cache.Open(ctx, c.cacheFile, a.Fingerprint())
	if err != nil {
		logger.Warn("Result cache disabled", slog.Any("error", err))

		return nil
	}

	return rc
}
