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

// Package cache stores analysis results keyed by file content.
//
// Results are kept in a SQLite database. An entry is a hit only when the content
// hash of the file and the fingerprint of the analyzer configuration both match.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // database/sql driver

	"fillmore-labs.com/docraise/internal/run"
)

const schema = `CREATE TABLE IF NOT EXISTS results (
  filename    TEXT PRIMARY KEY,
  hash        TEXT NOT NULL,
  fingerprint TEXT NOT NULL,
  result      TEXT NOT NULL
)`

// Cache is a persistent result cache. It is safe for concurrent use.
type Cache struct {
	db          *sql.DB
	fingerprint string
}

// Open opens or creates the cache database at path for the given configuration fingerprint.
func Open(ctx context.Context, path, fingerprint string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, errors.Join(fmt.Errorf("creating cache schema: %w", err), db.Close())
	}

	return &Cache{db: db, fingerprint: fingerprint}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the stored result for filename, provided src and the configuration are unchanged.
func (c *Cache) Get(ctx context.Context, filename string, src []byte) (run.Result, bool, error) {
	var data string

	err := c.db.QueryRowContext(ctx,
		`SELECT result FROM results WHERE filename = ? AND hash = ? AND fingerprint = ?`,
		filename, Hash(src), c.fingerprint).Scan(&data)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return run.Result{}, false, nil

	case err != nil:
		return run.Result{}, false, fmt.Errorf("reading cache entry %s: %w", filename, err)
	}

	var r run.Result
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return run.Result{}, false, fmt.Errorf("decoding cache entry %s: %w", filename, err)
	}

	return r, true, nil
}

// Put stores the result for filename, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, filename string, src []byte, r run.Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding cache entry %s: %w", filename, err)
	}

	if _, err := c.db.ExecContext(ctx,
		`INSERT INTO results (filename, hash, fingerprint, result) VALUES (?, ?, ?, ?)
		 ON CONFLICT(filename) DO UPDATE SET hash = excluded.hash, fingerprint = excluded.fingerprint, result = excluded.result`,
		filename, Hash(src), c.fingerprint, string(data)); err != nil {
		return fmt.Errorf("writing cache entry %s: %w", filename, err)
	}

	return nil
}

// Hash returns the hex encoded SHA-256 digest of src.
func Hash(src []byte) string {
	sum := sha256.Sum256(src)

	return hex.EncodeToString(sum[:])
}
