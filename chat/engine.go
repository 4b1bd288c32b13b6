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
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/chatalogue/catalog"
	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/dialog"
	"github.com/poiesic/chatalogue/nlu"
	"github.com/poiesic/chatalogue/parser"
	"github.com/poiesic/chatalogue/plan"
)

// Engine answers course catalog questions: parse, resolve against the
// conversation context, execute each subquery and render the answer. One
// Answer call is one turn; the engine holds no per-turn state of its own.
type Engine struct {
	parser    *parser.Parser
	courses   catalog.CourseRepository
	responder nlu.Responder
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithResponder sets the answer-polishing service. Without one, answers
// are the deterministic formatter output.
func WithResponder(responder nlu.Responder) Option {
	return func(e *Engine) error {
		e.responder = responder
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates an engine over the given parser and course repository.
func NewEngine(p *parser.Parser, courses catalog.CourseRepository, opts ...Option) (*Engine, error) {
	if p == nil {
		return nil, ErrParserRequired
	}
	if courses == nil {
		return nil, ErrRepositoryRequired
	}

	e := &Engine{
		parser:  p,
		courses: courses,
		logger:  slog.Default().With("component", "chat"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Answer handles one user turn within a session and returns the reply.
func (e *Engine) Answer(ctx context.Context, session *dialog.Session, text string) (string, error) {
	if session == nil {
		return "", ErrSessionRequired
	}
	if strings.TrimSpace(text) == "" {
		return emptyInputReply, nil
	}

	parse, err := e.parser.Parse(ctx, text)
	if err != nil {
		return "", err
	}

	if session.Context.ShouldReset(parse) {
		e.logger.Debug("topic change detected, resetting context")
		session.Context.Reset()
	}
	session.Context.ResolvePronouns(parse)

	if err := e.resolveCourseNames(ctx, parse); err != nil {
		return "", err
	}

	var (
		sections []string
		allRows  []core.CourseRow
		answered bool
	)

	for i := range parse.Subqueries {
		sub := &parse.Subqueries[i]
		if !core.CourseIntents[sub.Intent] {
			// A clause read as smalltalk that still names a course,
			// instructor or weekday is a lookup, not smalltalk.
			if !sub.HasFilter() {
				continue
			}
			sub.Intent = core.IntentForAttributes(sub.Attributes)
		}

		if !sub.HasFilter() {
			sections = append(sections, unresolvedReply)
			continue
		}

		q, err := plan.Build(sub)
		if err != nil {
			e.logger.Warn("skipping unplannable subquery", "intent", sub.Intent, "err", err)
			sections = append(sections, unresolvedReply)
			continue
		}

		rows, err := e.courses.Query(ctx, q)
		if err != nil {
			return "", err
		}

		answered = true
		allRows = append(allRows, rows...)
		sections = append(sections, formatRows(sub, rows))
	}

	answer := strings.Join(sections, "\n\n")
	if !answered && answer == "" {
		answer = chitchatReply(parse.RawText)
	}

	session.Context.Update(parse, allRows)

	if e.responder != nil && answered {
		polished, err := e.responder.Respond(ctx, parse.RawText, session.Context.Compress(), answer)
		if err != nil {
			e.logger.Warn("responder failed, using deterministic answer", "err", err)
		} else if polished != "" {
			answer = polished
		}
	}

	session.AddTurn(text, answer)
	return answer, nil
}

// resolveCourseNames turns free-text course titles into course codes via
// the catalog's fuzzy lookup. Unresolvable titles are left for the
// no-filter path to report.
func (e *Engine) resolveCourseNames(ctx context.Context, parse *core.SemanticParse) error {
	for i := range parse.Subqueries {
		sub := &parse.Subqueries[i]
		if len(sub.CourseCodes) > 0 || len(sub.CourseNames) == 0 {
			continue
		}

		for _, name := range sub.CourseNames {
			codes, err := e.courses.FuzzyFindCourses(ctx, name)
			if err != nil {
				return err
			}
			sub.CourseCodes = append(sub.CourseCodes, codes...)
		}

		// A resolved title means the user is asking about a course even if
		// the classifier read the clause as smalltalk.
		if len(sub.CourseCodes) > 0 && !core.CourseIntents[sub.Intent] {
			sub.Intent = core.IntentForAttributes(sub.Attributes)
		}
	}
	return nil
}
