package mock

import (
	"context"
	"strings"

	"github.com/poiesic/chatalogue/nlu"
)

// MockIntentClassifier is a test double for nlu.IntentClassifier.
// It allows custom behavior injection via function fields.
type MockIntentClassifier struct {
	// ClassifyIntentFunc is called by ClassifyIntent if set.
	// If nil, uses a simple keyword heuristic.
	ClassifyIntentFunc func(ctx context.Context, text string) (*nlu.IntentResult, error)

	callCount int
}

// NewMockIntentClassifier creates a mock classifier with default keyword behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockIntentClassifier() *MockIntentClassifier {
	return &MockIntentClassifier{}
}

// ClassifyIntent classifies text with a keyword heuristic that mirrors the
// intent labels the production classifier is trained on.
func (m *MockIntentClassifier) ClassifyIntent(ctx context.Context, text string) (*nlu.IntentResult, error) {
	m.callCount++

	if m.ClassifyIntentFunc != nil {
		return m.ClassifyIntentFunc(ctx, text)
	}

	lower := strings.ToLower(strings.TrimSpace(text))
	label := "chitchat"
	confidence := 0.35

	switch {
	case lower == "":
		confidence = 0.0
	case strings.Contains(lower, "who") || strings.Contains(lower, "teach"):
		label = "instructor_lookup"
		confidence = 0.9
	case strings.Contains(lower, "where") || strings.Contains(lower, "room") || strings.Contains(lower, "building"):
		label = "course_location"
		confidence = 0.9
	case strings.Contains(lower, "when") || strings.Contains(lower, "time") || strings.Contains(lower, "meet"):
		label = "course_time"
		confidence = 0.9
	case strings.Contains(lower, "schedule"):
		label = "schedule_query"
		confidence = 0.85
	case strings.Contains(lower, "about") || strings.Contains(lower, "course"):
		label = "course_info"
		confidence = 0.8
	}

	return &nlu.IntentResult{
		Primary:    label,
		Confidence: confidence,
		TopK:       []nlu.LabelScore{{Label: label, Score: confidence}},
	}, nil
}

// CallCount returns the number of times ClassifyIntent was called.
func (m *MockIntentClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockIntentClassifier) Reset() {
	m.callCount = 0
	m.ClassifyIntentFunc = nil
}
