package dialog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	assert.NotEmpty(t, s.ID)
	assert.NotNil(t, s.Context)
	assert.Empty(t, s.History())

	other := NewSession()
	assert.NotEqual(t, s.ID, other.ID)
}

func TestAddTurn(t *testing.T) {
	s := NewSession()
	s.AddTurn("who teaches CS 575", "Zhang teaches MET CS 575 A1.")

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, "who teaches CS 575", history[0].User)
	assert.Equal(t, 1, history[0].Number)
	assert.False(t, history[0].Timestamp.IsZero())
}

func TestAddTurn_BoundedHistory(t *testing.T) {
	s := NewSession()
	for i := 0; i < maxHistory+5; i++ {
		s.AddTurn(fmt.Sprintf("question %d", i), "answer")
	}

	history := s.History()
	require.Len(t, history, maxHistory)
	assert.Equal(t, "question 5", history[0].User)
	assert.Equal(t, fmt.Sprintf("question %d", maxHistory+4), history[len(history)-1].User)
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	id := s.ID
	s.AddTurn("who teaches CS 575", "Zhang")

	s.Reset()

	assert.Equal(t, id, s.ID)
	assert.Empty(t, s.History())
	assert.Equal(t, 0, s.Context.Turns)
}
