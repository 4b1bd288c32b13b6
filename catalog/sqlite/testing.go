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

import "context"

// NewMemoryRepository creates an in-memory catalog repository for testing.
// Caller must close the repository when done.
func NewMemoryRepository() (*Repository, error) {
	return Open(":memory:")
}

// SeedRows inserts course rows directly, for tests. Each row follows the
// canonical column order.
func (r *Repository) SeedRows(ctx context.Context, rows ...[7]string) error {
	for _, row := range rows {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO public_classes (course_number, course_name, section, instructor, location, days, times)"+
				" VALUES (?, ?, ?, ?, ?, ?, ?)",
			row[0], row[1], row[2], row[3], row[4], row[5], row[6])
		if err != nil {
			return err
		}
	}
	return nil
}
