package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitClauses(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single question",
			text:     "Who teaches CS 575?",
			expected: []string{"Who teaches CS 575"},
		},
		{
			name:     "two question marks",
			text:     "Who teaches CS 575? Where does it meet?",
			expected: []string{"Who teaches CS 575", "Where does it meet"},
		},
		{
			name:     "and followed by question word",
			text:     "Who teaches Digging Deep and when does it meet?",
			expected: []string{"Who teaches Digging Deep", "when does it meet"},
		},
		{
			name:     "and not followed by question word stays whole",
			text:     "Tell me about databases and data mining",
			expected: []string{"Tell me about databases and data mining"},
		},
		{
			name:     "question word within first three tokens",
			text:     "Who teaches CS 575 and also where is it held?",
			expected: []string{"Who teaches CS 575", "also where is it held"},
		},
		{
			name:     "consecutive duplicates collapse",
			text:     "Who teaches CS 575? Who teaches CS 575?",
			expected: []string{"Who teaches CS 575"},
		},
		{
			name:     "leading comma trimmed",
			text:     "Who teaches CS 575, and when does it meet?",
			expected: []string{"Who teaches CS 575", "when does it meet"},
		},
		{
			name:     "empty input",
			text:     "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitClauses(tt.text))
		})
	}
}
