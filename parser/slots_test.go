package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCourseCodes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "school dept num section",
			text:     "Tell me about MET CS 575 A1",
			expected: []string{"MET CS 575 A1"},
		},
		{
			name:     "school dept num",
			text:     "Tell me about MET CS 575",
			expected: []string{"MET CS 575"},
		},
		{
			name:     "dept num section",
			text:     "Is CS 575 B3 online?",
			expected: []string{"CS 575 B3"},
		},
		{
			name:     "dept num",
			text:     "who teaches cs 575",
			expected: []string{"CS 575"},
		},
		{
			name:     "glued school form",
			text:     "what is METCS575 about",
			expected: []string{"MET CS 575"},
		},
		{
			name:     "glued dept form",
			text:     "what is cs575 about",
			expected: []string{"CS 575"},
		},
		{
			name:     "longer match suppresses fragment",
			text:     "MET CS 575 A1 please",
			expected: []string{"MET CS 575 A1"},
		},
		{
			name:     "two distinct codes",
			text:     "compare CS 575 and CS 669",
			expected: []string{"CS 575", "CS 669"},
		},
		{
			name:     "no codes",
			text:     "hello there",
			expected: nil,
		},
		{
			name:     "four digit number",
			text:     "info on CAS BI 1108",
			expected: []string{"CAS BI 1108"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCourseCodes(tt.text))
		})
	}
}

func TestExtractWeekdays(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "full names",
			text:     "classes on monday and wednesday",
			expected: []string{"Mon", "Wed"},
		},
		{
			name:     "abbreviations",
			text:     "anything on tues or thurs?",
			expected: []string{"Tue", "Thu"},
		},
		{
			name:     "mwf bundle",
			text:     "what meets MWF",
			expected: []string{"Mon", "Wed", "Fri"},
		},
		{
			name:     "tr bundle",
			text:     "TR classes in the evening",
			expected: []string{"Tue", "Thu"},
		},
		{
			name:     "bundle with trailing punctuation",
			text:     "does it meet mwf?",
			expected: []string{"Mon", "Wed", "Fri"},
		},
		{
			name:     "weekend",
			text:     "any weekend sections",
			expected: []string{"Sat", "Sun"},
		},
		{
			name:     "saturday plus weekend deduped",
			text:     "saturday or weekend classes",
			expected: []string{"Sat", "Sun"},
		},
		{
			name:     "no weekdays",
			text:     "who teaches CS 575",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractWeekdays(tt.text))
		})
	}
}

func TestExtractInstructors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "professor title",
			text:     "does professor zhang teach on mondays",
			expected: []string{"Zhang"},
		},
		{
			name:     "possessive class",
			text:     "when is rachlin's class",
			expected: []string{"Rachlin"},
		},
		{
			name:     "does X teach",
			text:     "what does pinsky teach this semester",
			expected: []string{"Pinsky"},
		},
		{
			name:     "taught by",
			text:     "courses taught by braude",
			expected: []string{"Braude"},
		},
		{
			name:     "classes does X teach",
			text:     "what classes does kalathur teach",
			expected: []string{"Kalathur"},
		},
		{
			name:     "stop word never matches",
			text:     "when does this class meet",
			expected: nil,
		},
		{
			name:     "about a course name is not an instructor",
			text:     "tell me about the course",
			expected: nil,
		},
		{
			name:     "short tokens rejected",
			text:     "does he teach CS 575",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractInstructors(tt.text))
		})
	}
}

func TestExtractSection(t *testing.T) {
	assert.Equal(t, "B3", ExtractSection("is section b3 full?"))
	assert.Equal(t, "A1", ExtractSection("Section A1 please"))
	assert.Equal(t, "", ExtractSection("who teaches CS 575"))
}

func TestExtractCourseNames(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "double quoted title",
			text:     `who teaches "Digging Deep"`,
			expected: []string{"Digging Deep"},
		},
		{
			name:     "single quoted title",
			text:     "tell me about 'Data Mining'",
			expected: []string{"Data Mining"},
		},
		{
			name:     "trigger verb with title case run",
			text:     "who is taking Operating Systems this fall",
			expected: []string{"Operating Systems"},
		},
		{
			name:     "quoted course code excluded",
			text:     `what about "CS 575"`,
			expected: nil,
		},
		{
			name:     "single title case word not enough",
			text:     "tell me about Python",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCourseNames(tt.text))
		})
	}
}
