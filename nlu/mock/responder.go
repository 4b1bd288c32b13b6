package mock

import "context"

// MockResponder is a test double for nlu.Responder.
// It allows custom behavior injection via function fields.
type MockResponder struct {
	// RespondFunc is called by Respond if set.
	// If nil, echoes the database facts prefixed with a marker.
	RespondFunc func(ctx context.Context, question, contextLine, dbFacts string) (string, error)

	callCount int
}

// NewMockResponder creates a mock responder with default echo behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Respond returns a canned completion derived from the database facts.
func (m *MockResponder) Respond(ctx context.Context, question, contextLine, dbFacts string) (string, error) {
	m.callCount++

	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, question, contextLine, dbFacts)
	}

	return "polished: " + dbFacts, nil
}

// CallCount returns the number of times Respond was called.
func (m *MockResponder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockResponder) Reset() {
	m.callCount = 0
	m.RespondFunc = nil
}
