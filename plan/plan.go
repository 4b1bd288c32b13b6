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


package plan

import (
	"regexp"
	"strings"

	"github.com/poiesic/chatalogue/core"
)

var sectionRe = regexp.MustCompile(`^[A-Z]\d{1,2}$`)

// Query is one executable catalog lookup. SQL carries only placeholders;
// user-derived values travel exclusively through Args.
type Query struct {
	SQL  string
	Args []any
}

// Table is the catalog table every query reads from.
const Table = "public_classes"

// baseColumns appear in every query, in result order.
var baseColumns = []string{"course_number", "course_name", "section", "instructor"}

// intentColumns are the extra columns each intent asks for.
var intentColumns = map[core.Intent][]string{
	core.IntentCourseInfo:       {"location", "days", "times"},
	core.IntentInstructorLookup: nil,
	core.IntentCourseLocation:   {"location"},
	core.IntentCourseTime:       {"days", "times"},
	core.IntentScheduleQuery:    {"days", "times", "location"},
}

// weekdayTokens maps canonical weekday names onto the tokens the days
// column stores.
var weekdayTokens = map[string]string{
	"Mon": "M",
	"Tue": "T",
	"Wed": "W",
	"Thu": "R",
	"Fri": "F",
	"Sat": "SA",
	"Sun": "SU",
}

// Build turns a subquery into a parameterized SQL query. Course codes match
// with whitespace-insensitive LIKE, sections match exactly, instructors
// match with case-insensitive LIKE, and weekdays match the days column's
// token encoding. The subquery must carry at least one filter entity.
func Build(sub *core.Subquery) (*Query, error) {
	if sub == nil {
		return nil, ErrSubqueryRequired
	}
	if !sub.HasFilter() {
		return nil, ErrNoFilter
	}
	if !core.CourseIntents[sub.Intent] {
		return nil, ErrNotExecutable
	}

	var (
		where []string
		args  []any
	)

	if len(sub.CourseCodes) > 0 {
		var ors []string
		for _, code := range sub.CourseCodes {
			base, section := splitSection(code)
			if section == "" && sub.Section != "" {
				section = sub.Section
			}

			cond := "REPLACE(LOWER(course_number), ' ', '') LIKE ?"
			args = append(args, "%"+compact(base)+"%")
			if section != "" {
				cond = "(" + cond + " AND UPPER(section) = ?)"
				args = append(args, strings.ToUpper(section))
			}
			ors = append(ors, cond)
		}
		where = append(where, group(ors))
	}

	if len(sub.Instructors) > 0 {
		var ors []string
		for _, name := range sub.Instructors {
			ors = append(ors, "LOWER(instructor) LIKE ?")
			args = append(args, "%"+strings.ToLower(name)+"%")
		}
		where = append(where, group(ors))
	}

	// Weekdays are conjunctive: "MWF classes" means classes meeting on all
	// three days.
	for _, day := range sub.Weekdays {
		token, ok := weekdayTokens[day]
		if !ok {
			continue
		}
		where = append(where, "days LIKE ?")
		args = append(args, "%"+token+"%")
	}

	sql := "SELECT " + strings.Join(columnsFor(sub.Intent), ", ") +
		" FROM " + Table +
		" WHERE " + strings.Join(where, " AND ") +
		" ORDER BY course_number ASC, section ASC"

	return &Query{SQL: sql, Args: args}, nil
}

// columnsFor returns the result columns for an intent, base columns first.
func columnsFor(intent core.Intent) []string {
	cols := make([]string, 0, len(baseColumns)+3)
	cols = append(cols, baseColumns...)
	cols = append(cols, intentColumns[intent]...)
	return cols
}

// splitSection separates a trailing section token from a course code:
// "MET CS 575 A1" becomes ("MET CS 575", "A1").
func splitSection(code string) (string, string) {
	fields := strings.Fields(code)
	if len(fields) < 3 {
		return code, ""
	}
	last := fields[len(fields)-1]
	if sectionRe.MatchString(last) {
		return strings.Join(fields[:len(fields)-1], " "), last
	}
	return code, ""
}

// compact lowercases and strips whitespace so "MET CS 575" matches the
// stored "MET CS575" and "METCS575" spellings alike.
func compact(code string) string {
	return strings.ReplaceAll(strings.ToLower(code), " ", "")
}

func group(conds []string) string {
	if len(conds) == 1 {
		return conds[0]
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}
