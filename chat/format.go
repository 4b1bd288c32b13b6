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


package chat

import (
	"fmt"
	"strings"

	"github.com/poiesic/chatalogue/core"
)

// maxListedRows caps how many rows a list answer enumerates.
const maxListedRows = 10

const (
	emptyInputReply = "Ask me about a course, an instructor, or a meeting time."
	noResultsReply  = "I couldn't find an answer to that in the course catalog."
	unresolvedReply = "I couldn't find that. Try naming a course, like MET CS 575."
)

// chitchatReply answers non-catalog smalltalk.
func chitchatReply(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "thank"):
		return "You're welcome! Anything else about the catalog?"
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi "),
		strings.HasPrefix(lower, "hi"), strings.Contains(lower, "hey"):
		return "Hi! Ask me about courses, like: who teaches MET CS 575?"
	default:
		return "I can answer questions about courses, instructors, locations and meeting times."
	}
}

// formatRows renders one subquery's result rows deterministically.
func formatRows(sub *core.Subquery, rows []core.CourseRow) string {
	if len(rows) == 0 {
		return noResultsReply
	}

	if len(rows) == 1 {
		return formatDetail(rows[0])
	}

	switch sub.Intent {
	case core.IntentInstructorLookup:
		if len(sub.CourseCodes) > 0 {
			return formatByInstructor(sub, rows)
		}
		return formatCourseList(sub, rows)
	default:
		return formatCourseList(sub, rows)
	}
}

// formatDetail renders a single section as a detail block.
func formatDetail(row core.CourseRow) string {
	var b strings.Builder

	b.WriteString(row.Label())
	if name := row["course_name"]; name != "" {
		b.WriteString(": " + name)
	}

	if v := row["instructor"]; v != "" {
		b.WriteString("\n  Instructor: " + v)
	}
	if v := row["location"]; v != "" {
		b.WriteString("\n  Location: " + v)
	}
	if days, times := row["days"], row["times"]; days != "" || times != "" {
		b.WriteString("\n  Meets: " + strings.TrimSpace(days+" "+times))
	}

	return b.String()
}

// formatByInstructor answers "who teaches X" over multiple sections by
// grouping the sections per instructor.
func formatByInstructor(sub *core.Subquery, rows []core.CourseRow) string {
	course := rows[0].Course()
	if course == "" {
		course = strings.Join(sub.CourseCodes, ", ")
	}

	// Preserve row order within and across groups.
	var order []string
	seen := map[string]bool{}
	sections := map[string][]string{}
	for _, row := range rows {
		name := row["instructor"]
		if name == "" {
			name = "Staff"
		}
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
		if s := row["section"]; s != "" {
			sections[name] = append(sections[name], s)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is taught by:", course)
	for _, name := range order {
		b.WriteString("\n- " + name)
		if secs := sections[name]; len(secs) > 0 {
			fmt.Fprintf(&b, " (section %s)", strings.Join(secs, ", "))
		}
	}
	return b.String()
}

// formatCourseList renders rows as a bounded list, one section per line.
func formatCourseList(sub *core.Subquery, rows []core.CourseRow) string {
	var b strings.Builder

	subject := listSubject(sub)
	fmt.Fprintf(&b, "I found %d matching sections%s:", len(rows), subject)

	shown := rows
	if len(shown) > maxListedRows {
		shown = shown[:maxListedRows]
	}
	for _, row := range shown {
		b.WriteString("\n- " + row.Label())
		if name := row["course_name"]; name != "" {
			b.WriteString(" (" + name + ")")
		}
		var details []string
		if v := row["instructor"]; v != "" {
			details = append(details, v)
		}
		if days, times := row["days"], row["times"]; days != "" || times != "" {
			details = append(details, strings.TrimSpace(days+" "+times))
		}
		if v := row["location"]; v != "" {
			details = append(details, v)
		}
		if len(details) > 0 {
			b.WriteString(": " + strings.Join(details, ", "))
		}
	}

	if hidden := len(rows) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "\n…and %d more.", hidden)
	}
	return b.String()
}

func listSubject(sub *core.Subquery) string {
	switch {
	case len(sub.Instructors) > 0 && len(sub.CourseCodes) == 0:
		return " for " + strings.Join(sub.Instructors, ", ")
	case len(sub.Weekdays) > 0 && len(sub.CourseCodes) == 0:
		return " on " + strings.Join(sub.Weekdays, ", ")
	default:
		return ""
	}
}
