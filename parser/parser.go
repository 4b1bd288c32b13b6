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
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/nlu"
)

// Parser turns an utterance into a SemanticParse: clause splitting, intent
// classification per clause, slot extraction, and resolution of entity-less
// follow-up clauses from the surrounding clauses.
type Parser struct {
	classifier    nlu.IntentClassifier
	minConfidence float64
	logger        *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser) error

// WithMinConfidence sets the confidence below which an entity-less clause
// is treated as a follow-up reference. Default 0.5.
func WithMinConfidence(min float64) Option {
	return func(p *Parser) error {
		p.minConfidence = min
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// New creates a parser backed by the given intent classifier.
func New(classifier nlu.IntentClassifier, opts ...Option) (*Parser, error) {
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	p := &Parser{
		classifier:    classifier,
		minConfidence: 0.5,
		logger:        slog.Default().With("component", "parser"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Parse builds the full structured reading of one utterance.
func (p *Parser) Parse(ctx context.Context, text string) (*core.SemanticParse, error) {
	raw := text
	norm := strings.TrimSpace(raw)

	full, err := p.classifier.ClassifyIntent(ctx, norm)
	if err != nil {
		return nil, err
	}

	parse := &core.SemanticParse{
		PrimaryIntent:     asIntent(full.Primary),
		PrimaryConfidence: full.Confidence,
		RawText:           raw,
		CourseCodes:       ExtractCourseCodes(raw),
		CourseNames:       ExtractCourseNames(raw),
		Instructors:       ExtractInstructors(raw),
		Weekdays:          ExtractWeekdays(raw),
		Attributes:        DetectAttributes(raw),
	}

	// An explicit "section B3" attaches to the first sectionless code.
	if section := ExtractSection(raw); section != "" && len(parse.CourseCodes) > 0 {
		parse.CourseCodes[0] = attachSection(parse.CourseCodes[0], section)
	}

	clauses := SplitClauses(raw)
	if len(clauses) == 0 {
		clauses = []string{raw}
	}

	var clauseIntents []core.Intent
	for _, clause := range clauses {
		cNorm := strings.TrimSpace(clause)
		if cNorm == "" {
			continue
		}

		result, err := p.classifier.ClassifyIntent(ctx, cNorm)
		if err != nil {
			return nil, err
		}

		sub := core.Subquery{
			Intent:      asIntent(result.Primary),
			Confidence:  result.Confidence,
			Text:        clause,
			CourseCodes: ExtractCourseCodes(clause),
			CourseNames: ExtractCourseNames(clause),
			Instructors: ExtractInstructors(clause),
			Weekdays:    ExtractWeekdays(clause),
			Section:     ExtractSection(clause),
			Attributes:  DetectAttributes(clause),
		}
		if sub.Section != "" && len(sub.CourseCodes) > 0 {
			sub.CourseCodes[0] = attachSection(sub.CourseCodes[0], sub.Section)
		}

		clauseIntents = append(clauseIntents, sub.Intent)
		parse.Subqueries = append(parse.Subqueries, sub)
	}

	distinct := map[core.Intent]bool{}
	for _, intent := range clauseIntents {
		distinct[intent] = true
	}
	parse.MultiQuery = len(parse.Subqueries) > 1 && len(distinct) > 1

	if len(parse.Subqueries) > 1 {
		p.resolveClauseReferences(parse)
	}

	p.logger.Debug("parsed utterance",
		"intent", parse.PrimaryIntent,
		"confidence", parse.PrimaryConfidence,
		"clauses", len(parse.Subqueries),
		"multiQuery", parse.MultiQuery)

	return parse, nil
}

// resolveClauseReferences fills entity-less follow-up clauses ("and when
// does it meet") from the most recent clause that carried entities, falling
// back to the whole-utterance extraction. Most recent match wins; there is
// no other tie-break.
func (p *Parser) resolveClauseReferences(parse *core.SemanticParse) {
	var (
		contextCourses     []string
		contextInstructors []string
		contextWeekdays    []string
	)

	for i := range parse.Subqueries {
		sub := &parse.Subqueries[i]

		isFollowUp := len(sub.CourseCodes) == 0 &&
			len(sub.Instructors) == 0 &&
			len(sub.Attributes) > 0 &&
			(sub.Intent == core.IntentChitchat ||
				sub.Confidence < p.minConfidence ||
				hasPronoun(sub.Text))

		if !isFollowUp {
			if len(sub.CourseCodes) > 0 {
				contextCourses = sub.CourseCodes
			}
			if len(sub.Instructors) > 0 {
				contextInstructors = sub.Instructors
			}
			if len(sub.Weekdays) > 0 {
				contextWeekdays = sub.Weekdays
			}
			continue
		}

		if len(contextCourses) > 0 {
			sub.CourseCodes = append([]string(nil), contextCourses...)
		} else if len(parse.CourseCodes) > 0 {
			sub.CourseCodes = append([]string(nil), parse.CourseCodes...)
		}

		if len(contextInstructors) > 0 {
			sub.Instructors = append([]string(nil), contextInstructors...)
		} else if len(parse.Instructors) > 0 {
			sub.Instructors = append([]string(nil), parse.Instructors...)
		}

		if len(sub.Weekdays) == 0 {
			if len(contextWeekdays) > 0 {
				sub.Weekdays = append([]string(nil), contextWeekdays...)
			} else if len(parse.Weekdays) > 0 {
				sub.Weekdays = append([]string(nil), parse.Weekdays...)
			}
		}

		// A clause that only became answerable through inheritance gets its
		// intent retargeted from what it asked about.
		if len(sub.CourseCodes) > 0 && !core.CourseIntents[sub.Intent] {
			sub.Intent = core.IntentForAttributes(sub.Attributes)
		}
	}
}

// pronounWords are the references a follow-up clause uses to point back at
// an earlier subject.
var pronounWords = map[string]bool{
	"it": true, "that": true, "this": true,
	"them": true, "those": true, "its": true,
}

func hasPronoun(text string) bool {
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if pronounWords[strings.Trim(tok, ".,;:!?'\"")] {
			return true
		}
	}
	return false
}

// attachSection appends a section to a course code that lacks one.
func attachSection(code, section string) string {
	if sectionTokRe.MatchString(lastField(code)) {
		return code
	}
	return code + " " + section
}

func lastField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// asIntent maps a classifier label onto the known intent set.
func asIntent(label string) core.Intent {
	intent := core.Intent(label)
	if err := core.ValidateIntent(intent); err != nil {
		return core.IntentUnknown
	}
	return intent
}
