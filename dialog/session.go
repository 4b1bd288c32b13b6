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
	"time"

	"github.com/google/uuid"

	"github.com/poiesic/chatalogue/core"
)

// maxHistory bounds the retained exchange history per session.
const maxHistory = 10

// Session is one conversation: a stable identifier, the active context and
// a bounded history of completed exchanges. Sessions are not safe for
// concurrent use; each belongs to a single conversation loop.
type Session struct {
	ID      string
	Context *Context

	history []core.Turn
}

// NewSession creates a session with a fresh context and a random ID.
func NewSession() *Session {
	return &Session{
		ID:      uuid.New().String(),
		Context: NewContext(),
	}
}

// AddTurn appends a completed exchange, evicting the oldest beyond the
// history bound.
func (s *Session) AddTurn(user, assistant string) {
	s.history = append(s.history, core.Turn{
		User:      user,
		Assistant: assistant,
		Context:   s.Context.Compress(),
		Number:    len(s.history) + 1,
		Timestamp: time.Now().UTC(),
	})
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}

// History returns the retained exchanges, oldest first.
func (s *Session) History() []core.Turn {
	return s.history
}

// Reset clears the context and history but keeps the session identity.
func (s *Session) Reset() {
	s.Context = NewContext()
	s.history = nil
}
