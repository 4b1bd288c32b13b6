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


package dialog

import (
	"strings"

	"github.com/poiesic/chatalogue/core"
)

// maxTopicTurns is the turn count after which the active topic is
// considered stale and reset before the next question.
const maxTopicTurns = 10

// resetPhrases switch the conversation topic when present in an utterance.
var resetPhrases = []string{
	"instead",
	"what about",
	"how about",
	"never mind",
	"forget that",
	"new question",
}

// pronounWords reference the active topic.
var pronounWords = map[string]bool{
	"it": true, "that": true, "this": true,
	"them": true, "those": true, "its": true,
}

// factColumns are the row columns remembered per course.
var factColumns = []string{"instructor", "location", "days", "times", "course_name"}

// Context tracks what the conversation is currently about. It accumulates
// across turns within one session and is only cleared by Reset.
type Context struct {
	ActiveCourses     []string
	ActiveSection     string
	ActiveInstructors []string
	ActiveWeekdays    []string
	LastIntent        core.Intent
	Turns             int

	// facts maps a course label to the attributes learned about it from
	// query results.
	facts map[string]map[string]string
}

// NewContext creates an empty conversation context.
func NewContext() *Context {
	return &Context{facts: map[string]map[string]string{}}
}

// ShouldReset reports whether the utterance switches topic: an explicit
// reset phrase, a course mention that does not overlap the active courses,
// or a stale topic past the turn limit.
func (c *Context) ShouldReset(parse *core.SemanticParse) bool {
	if c.Turns == 0 {
		return false
	}
	if c.Turns > maxTopicTurns {
		return true
	}

	lower := strings.ToLower(parse.RawText)
	for _, phrase := range resetPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	if len(parse.CourseCodes) > 0 && len(c.ActiveCourses) > 0 {
		for _, code := range parse.CourseCodes {
			if c.hasActiveCourse(code) {
				return false
			}
		}
		return true
	}

	return false
}

// Reset clears the active topic. Turn count and session identity are kept.
func (c *Context) Reset() {
	c.ActiveCourses = nil
	c.ActiveSection = ""
	c.ActiveInstructors = nil
	c.ActiveWeekdays = nil
	c.LastIntent = ""
	c.facts = map[string]map[string]string{}
}

// ResolvePronouns backfills entity-less subqueries from the active topic.
// A subquery qualifies when it requests attributes but carries no course or
// instructor of its own, and either the utterance uses a pronoun or the
// subquery has no filter at all.
func (c *Context) ResolvePronouns(parse *core.SemanticParse) {
	if len(c.ActiveCourses) == 0 && len(c.ActiveInstructors) == 0 {
		return
	}

	pronoun := hasPronoun(parse.RawText)

	for i := range parse.Subqueries {
		sub := &parse.Subqueries[i]
		if len(sub.CourseCodes) > 0 || len(sub.Instructors) > 0 {
			continue
		}
		if len(sub.Attributes) == 0 {
			continue
		}
		if !pronoun && sub.HasFilter() {
			continue
		}

		if len(c.ActiveCourses) > 0 {
			sub.CourseCodes = append([]string(nil), c.ActiveCourses...)
			if sub.Section == "" {
				sub.Section = c.ActiveSection
			}
		} else {
			sub.Instructors = append([]string(nil), c.ActiveInstructors...)
		}

		if !core.CourseIntents[sub.Intent] {
			sub.Intent = core.IntentForAttributes(sub.Attributes)
		}
	}
}

// Update records the executed parse and its results as the new active
// topic. Entities mentioned this turn win over earlier ones; unmentioned
// entities are kept.
func (c *Context) Update(parse *core.SemanticParse, results []core.CourseRow) {
	c.Turns++

	var codes, instructors, weekdays []string
	section := ""
	for _, sub := range parse.Subqueries {
		codes = append(codes, sub.CourseCodes...)
		instructors = append(instructors, sub.Instructors...)
		weekdays = append(weekdays, sub.Weekdays...)
		if sub.Section != "" {
			section = sub.Section
		}
	}

	if len(codes) > 0 {
		c.ActiveCourses = dedupe(codes)
		c.ActiveSection = section
	}
	if len(instructors) > 0 {
		c.ActiveInstructors = dedupe(instructors)
	}
	if len(weekdays) > 0 {
		c.ActiveWeekdays = dedupe(weekdays)
	}
	if core.CourseIntents[parse.PrimaryIntent] {
		c.LastIntent = parse.PrimaryIntent
	}

	for _, row := range results {
		label := row.Label()
		if label == "" {
			continue
		}
		facts, ok := c.facts[label]
		if !ok {
			facts = map[string]string{}
			c.facts[label] = facts
		}
		for _, col := range factColumns {
			if v := row[col]; v != "" {
				facts[col] = v
			}
		}
	}
}

// Fact returns a remembered attribute of a course label, or "".
func (c *Context) Fact(label, column string) string {
	return c.facts[label][column]
}

// Compress renders the context as a single line suitable for prompt
// injection and the REPL's context command.
func (c *Context) Compress() string {
	var parts []string
	if len(c.ActiveCourses) > 0 {
		course := strings.Join(c.ActiveCourses, ", ")
		if c.ActiveSection != "" {
			course += " section " + c.ActiveSection
		}
		parts = append(parts, "discussing "+course)
	}
	if len(c.ActiveInstructors) > 0 {
		parts = append(parts, "instructor "+strings.Join(c.ActiveInstructors, ", "))
	}
	if len(c.ActiveWeekdays) > 0 {
		parts = append(parts, "days "+strings.Join(c.ActiveWeekdays, ", "))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ")
}

func (c *Context) hasActiveCourse(code string) bool {
	norm := compactCode(code)
	for _, active := range c.ActiveCourses {
		a := compactCode(active)
		if strings.Contains(a, norm) || strings.Contains(norm, a) {
			return true
		}
	}
	return false
}

func compactCode(code string) string {
	return strings.ReplaceAll(strings.ToLower(code), " ", "")
}

func hasPronoun(text string) bool {
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if pronounWords[strings.Trim(tok, ".,;:!?'\"")] {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
