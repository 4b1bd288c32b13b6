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

import "strings"

// whWords are the question words that signal the start of a new clause.
var whWords = map[string]bool{
	"who": true, "what": true, "when": true,
	"where": true, "which": true, "how": true,
}

// SplitClauses splits user input into candidate clauses for multi-intent
// handling. The first pass splits on '?'; the second splits each piece on
// " and " when the trailing part opens with a question word within its
// first three tokens. Consecutive identical clauses are deduplicated.
func SplitClauses(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var clauses []string
	for _, segment := range strings.Split(text, "?") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		for _, part := range splitOnAndWithWH(segment) {
			part = strings.Trim(part, ", ")
			if part != "" {
				clauses = append(clauses, part)
			}
		}
	}

	deduped := clauses[:0]
	for _, clause := range clauses {
		if len(deduped) == 0 || !strings.EqualFold(deduped[len(deduped)-1], clause) {
			deduped = append(deduped, clause)
		}
	}
	return deduped
}

// splitOnAndWithWH splits a clause at the first " and " that is followed by
// a question word, e.g. "Who teaches Digging Deep and when does it meet"
// becomes ["Who teaches Digging Deep", "when does it meet"].
func splitOnAndWithWH(clause string) []string {
	lower := strings.ToLower(clause)
	idx := strings.Index(lower, " and ")
	if idx == -1 {
		return []string{clause}
	}

	before := strings.TrimSpace(clause[:idx])
	after := strings.TrimSpace(clause[idx+len(" and "):])
	if after == "" {
		return []string{clause}
	}

	// Only split when the second part starts with (or contains, within the
	// first three tokens) a question word.
	tokens := strings.Fields(strings.ToLower(after))
	limit := 3
	if len(tokens) < limit {
		limit = len(tokens)
	}
	for _, token := range tokens[:limit] {
		if whWords[token] {
			return []string{before, after}
		}
	}

	return []string{clause}
}
