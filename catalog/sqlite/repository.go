// Copyright 2025 Poiesic Systems
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


package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/poiesic/chatalogue/catalog"
	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/plan"
)

// Repository is a catalog.CourseRepository backed by a SQLite database.
type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Open opens (creating if necessary) the catalog database at filePath and
// bootstraps the schema.
func Open(filePath string, opts ...Option) (*Repository, error) {
	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}
	if strings.Contains(filePath, ":memory:") {
		// Pooled connections would each see their own empty database.
		db.SetMaxOpenConns(1)
	}

	repo := NewRepository(db, opts...)
	if err := repo.bootstrap(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// NewRepository wraps an existing database handle. The caller keeps
// ownership of schema bootstrap when using this constructor directly.
func NewRepository(db *sql.DB, opts ...Option) *Repository {
	repo := &Repository{
		db:     db,
		logger: slog.Default().With("component", "catalog"),
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// Query executes a built plan and returns the matching rows.
func (r *Repository) Query(ctx context.Context, q *plan.Query) ([]core.CourseRow, error) {
	if q == nil {
		return nil, catalog.ErrQueryRequired
	}

	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("executing catalog query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	var results []core.CourseRow
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}

		row := make(core.CourseRow, len(columns))
		for i, col := range columns {
			row[col] = values[i].String
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog rows: %w", err)
	}

	r.logger.Debug("catalog query executed", "rows", len(results))
	return results, nil
}

// FuzzyFindCourses resolves a free-text course title to course numbers,
// exact title matches first, partial matches only when no exact match
// exists.
func (r *Repository) FuzzyFindCourses(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, catalog.ErrEmptyName
	}

	exact := "SELECT DISTINCT course_number FROM " + plan.Table +
		" WHERE LOWER(course_name) = ? ORDER BY course_number ASC"
	codes, err := r.queryCodes(ctx, exact, strings.ToLower(name))
	if err != nil {
		return nil, err
	}
	if len(codes) > 0 {
		return codes, nil
	}

	partial := "SELECT DISTINCT course_number FROM " + plan.Table +
		" WHERE LOWER(course_name) LIKE ? ORDER BY course_number ASC"
	return r.queryCodes(ctx, partial, "%"+strings.ToLower(name)+"%")
}

func (r *Repository) queryCodes(ctx context.Context, query string, arg any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("resolving course name: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning course number: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Close closes the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}
