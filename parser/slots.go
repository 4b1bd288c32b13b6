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


package parser

import (
	"regexp"
	"strings"
)

// schoolPrefixes are the campus school identifiers that may open a course
// code, e.g. "MET CS 575".
var schoolPrefixes = map[string]bool{
	"MET": true, "CAS": true, "ENG": true, "QST": true,
	"GRS": true, "SAR": true, "SHA": true, "CFA": true,
	"COM": true, "SED": true, "SMG": true, "STH": true,
}

var (
	tokenRe       = regexp.MustCompile(`[A-Za-z0-9]+`)
	sectionTokRe  = regexp.MustCompile(`^[A-Z]\d{1,2}$`)
	gluedSchoolRe = regexp.MustCompile(`^([A-Z]{2,4})([A-Z]{2,4})(\d{3,4})$`)
	gluedDeptRe   = regexp.MustCompile(`^([A-Z]{2,4})(\d{3,4})$`)
	sectionKwRe   = regexp.MustCompile(`(?i)\bsection\s+([a-z]\d{1,2})\b`)
	quotedRe      = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
)

// ExtractCourseCodes extracts every course code mentioned in the text.
// Recognized shapes, most specific first:
//
//	SCHOOL DEPT NUM SECTION   (MET CS 575 A1)
//	SCHOOL DEPT NUM           (MET CS 575)
//	DEPT NUM SECTION          (CS 575 A1)
//	DEPT NUM                  (CS 575)
//	glued forms               (METCS575, CS575)
func ExtractCourseCodes(text string) []string {
	tokens := tokenRe.FindAllString(text, -1)
	if len(tokens) == 0 {
		return nil
	}

	up := make([]string, len(tokens))
	for i, tok := range tokens {
		up[i] = strings.ToUpper(tok)
	}

	var found []string

	isDept := func(tok string) bool {
		return isAlpha(tok) && len(tok) >= 2 && len(tok) <= 4
	}
	isNum := func(tok string) bool {
		return isDigits(tok) && len(tok) >= 3 && len(tok) <= 4
	}

	// SCHOOL + DEPT + NUM + SECTION
	for i := 0; i+3 < len(up); {
		if schoolPrefixes[up[i]] && isDept(up[i+1]) && isNum(up[i+2]) && sectionTokRe.MatchString(up[i+3]) {
			found = append(found, up[i]+" "+up[i+1]+" "+up[i+2]+" "+up[i+3])
			i += 4
			continue
		}
		i++
	}

	// SCHOOL + DEPT + NUM
	for i := 0; i+2 < len(up); {
		if schoolPrefixes[up[i]] && isDept(up[i+1]) && isNum(up[i+2]) {
			code := up[i] + " " + up[i+1] + " " + up[i+2]
			if !hasPrefixed(found, code) {
				found = append(found, code)
				i += 3
				continue
			}
		}
		i++
	}

	// DEPT + NUM + SECTION
	for i := 0; i+2 < len(up); {
		if isDept(up[i]) && isNum(up[i+1]) && sectionTokRe.MatchString(up[i+2]) {
			code := up[i] + " " + up[i+1] + " " + up[i+2]
			if !contains(found, code) {
				found = append(found, code)
				i += 3
				continue
			}
		}
		i++
	}

	// DEPT + NUM
	for i := 0; i+1 < len(up); {
		if isDept(up[i]) && isNum(up[i+1]) {
			code := up[i] + " " + up[i+1]
			if !overlapsKnown(found, code) {
				found = append(found, code)
				i += 2
				continue
			}
		}
		i++
	}

	// Glued forms: METCS575 and CS575.
	for _, tok := range up {
		if m := gluedSchoolRe.FindStringSubmatch(tok); m != nil && schoolPrefixes[m[1]] {
			code := m[1] + " " + m[2] + " " + m[3]
			if !overlapsKnown(found, code) {
				found = append(found, code)
			}
			continue
		}
		if m := gluedDeptRe.FindStringSubmatch(tok); m != nil {
			code := m[1] + " " + m[2]
			if !overlapsKnown(found, code) {
				found = append(found, code)
			}
		}
	}

	return found
}

// weekday bundles commonly used in schedule listings. A bundle token names
// its full day set, so matching one short-circuits the scan.
var weekdayBundles = map[string][]string{
	"mwf": {"Mon", "Wed", "Fri"},
	"tr":  {"Tue", "Thu"},
	"mw":  {"Mon", "Wed"},
	"tf":  {"Tue", "Fri"},
	"wf":  {"Wed", "Fri"},
}

var weekdayNames = []struct {
	re  *regexp.Regexp
	day string
}{
	{regexp.MustCompile(`\b(?:monday|mon)\b`), "Mon"},
	{regexp.MustCompile(`\b(?:tuesday|tues|tue)\b`), "Tue"},
	{regexp.MustCompile(`\b(?:wednesday|wed)\b`), "Wed"},
	{regexp.MustCompile(`\b(?:thursday|thurs|thur|thu)\b`), "Thu"},
	{regexp.MustCompile(`\b(?:friday|fri)\b`), "Fri"},
	{regexp.MustCompile(`\b(?:saturday|sat)\b`), "Sat"},
	{regexp.MustCompile(`\b(?:sunday|sun)\b`), "Sun"},
}

// ExtractWeekdays extracts weekday references from text. It handles full
// names, common abbreviations, bundle tokens (MWF, TR, ...) and "weekend".
func ExtractWeekdays(text string) []string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return nil
	}

	for _, token := range strings.Fields(lower) {
		token = strings.Trim(token, ".,;:!?")
		if days, ok := weekdayBundles[token]; ok {
			out := make([]string, len(days))
			copy(out, days)
			return out
		}
	}

	var found []string
	for _, entry := range weekdayNames {
		if entry.re.MatchString(lower) && !contains(found, entry.day) {
			found = append(found, entry.day)
		}
	}

	if strings.Contains(lower, "weekend") {
		if !contains(found, "Sat") {
			found = append(found, "Sat")
		}
		if !contains(found, "Sun") {
			found = append(found, "Sun")
		}
	}

	return found
}

// instructorStopWords are tokens that can never be instructor surnames.
var instructorStopWords = map[string]bool{
	"who": true, "what": true, "when": true, "where": true, "which": true,
	"why": true, "how": true, "does": true, "did": true, "will": true,
	"is": true, "are": true, "for": true, "my": true, "the": true,
	"this": true, "that": true, "prof": true, "professor": true, "dr": true,
	"ta": true, "instructor": true, "week": true, "days": true,
	"later": true, "earlier": true, "next": true, "last": true,
	"prior": true, "before": true, "after": true, "weekdays": true,
	"weekend": true, "today": true, "tomorrow": true, "tonight": true,
	"meeting": true, "meet": true, "time": true, "schedule": true,
	"room": true, "building": true, "location": true, "held": true,
	"description": true, "syllabus": true, "topics": true, "info": true,
	"information": true, "teach": true, "teaches": true, "teaching": true,
	"taught": true, "class": true, "classes": true, "course": true,
	"courses": true, "about": true, "section": true, "sections": true,
}

var instructorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\babout\s+([a-z]+)\b`),
	regexp.MustCompile(`\b(?:professor|prof|dr|ta|instructor)\.?\s+([a-z]+)\b`),
	regexp.MustCompile(`\b(?:does|did|will)\s+([a-z]+)\s+teach(?:es|ing)?\b`),
	regexp.MustCompile(`\bclasses\s+does\s+([a-z]+)\s+teach\b`),
	regexp.MustCompile(`\btaught\s+by\s+([a-z]+)\b`),
	regexp.MustCompile(`\b([a-z]+)\s+(?:class|classes|course|courses|section|sections)\b`),
}

// ExtractInstructors extracts instructor surnames, handling possessives,
// titles, "taught by" and "does X teach" phrasings.
func ExtractInstructors(text string) []string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.ReplaceAll(t, "'s", " ")
	t = strings.ReplaceAll(t, "’s", " ")

	var names []string
	for _, re := range instructorPatterns {
		for _, m := range re.FindAllStringSubmatch(t, -1) {
			token := m[1]
			if instructorStopWords[token] || !isAlpha(strings.ToUpper(token)) || len(token) < 3 {
				continue
			}
			cap := strings.ToUpper(token[:1]) + token[1:]
			if !contains(names, cap) {
				names = append(names, cap)
			}
		}
	}
	return names
}

// ExtractSection extracts an explicit section reference like "section B3".
// Returns "" when the text carries none.
func ExtractSection(text string) string {
	if m := sectionKwRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

// courseNameTriggers introduce a free-text course title.
var courseNameTriggers = regexp.MustCompile(
	`\b(?:teaches|teaching|take|taking|about|called|titled)\s+((?:[A-Z][A-Za-z]+\s+)+[A-Z][A-Za-z]+)`)

// ExtractCourseNames extracts free-text course titles: quoted spans, and
// Title Case runs of two or more words after a trigger verb. Titles that
// parse as course codes are excluded; the fuzzy matcher resolves the
// returned names to codes.
func ExtractCourseNames(text string) []string {
	var names []string

	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		name = strings.TrimSpace(name)
		if name != "" && len(ExtractCourseCodes(name)) == 0 && !contains(names, name) {
			names = append(names, name)
		}
	}

	for _, m := range courseNameTriggers.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" || contains(names, name) {
			continue
		}
		if len(ExtractCourseCodes(name)) > 0 {
			continue
		}
		names = append(names, name)
	}

	return names
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// hasPrefixed reports whether a longer code starting with code+" " is
// already known (e.g. the sectioned form of the same course).
func hasPrefixed(list []string, code string) bool {
	for _, item := range list {
		if strings.HasPrefix(item, code+" ") {
			return true
		}
	}
	return false
}

// overlapsKnown reports whether code is a prefix or suffix fragment of an
// already-extracted code.
func overlapsKnown(list []string, code string) bool {
	for _, item := range list {
		if item == code || strings.HasPrefix(item, code+" ") || strings.HasSuffix(item, " "+code) {
			return true
		}
	}
	return false
}
