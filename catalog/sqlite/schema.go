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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS public_classes (
	course_number TEXT NOT NULL,
	course_name   TEXT NOT NULL DEFAULT '',
	section       TEXT NOT NULL DEFAULT '',
	instructor    TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	days          TEXT NOT NULL DEFAULT '',
	times         TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_public_classes_course_number
	ON public_classes (course_number);
CREATE INDEX IF NOT EXISTS idx_public_classes_course_name
	ON public_classes (course_name);
`

// csvColumns is the expected CSV header, which matches the table columns.
var csvColumns = []string{
	"course_number", "course_name", "section",
	"instructor", "location", "days", "times",
}

func (r *Repository) bootstrap(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("bootstrapping catalog schema: %w", err)
	}
	return nil
}

// ImportCSV loads course rows from a CSV file into the catalog, replacing
// any existing rows. The file must carry the canonical header.
func (r *Repository) ImportCSV(ctx context.Context, filePath string) (int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("opening course file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading course file header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting import transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM public_classes"); err != nil {
		return 0, fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO public_classes ("+strings.Join(csvColumns, ", ")+
			") VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading course row %d: %w", count+1, err)
		}

		args := make([]any, len(csvColumns))
		for i := range csvColumns {
			args[i] = strings.TrimSpace(record[i])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("inserting course row %d: %w", count+1, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}

	r.logger.Info("imported course catalog", "rows", count, "file", filePath)
	return count, nil
}

func validateHeader(header []string) error {
	if len(header) != len(csvColumns) {
		return fmt.Errorf("%w: expected %d columns, got %d",
			ErrBadHeader, len(csvColumns), len(header))
	}
	for i, col := range csvColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return fmt.Errorf("%w: column %d is %q, expected %q",
				ErrBadHeader, i, header[i], col)
		}
	}
	return nil
}
