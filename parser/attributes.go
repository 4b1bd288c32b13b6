package parser

import (
	"regexp"
	"strings"

	"github.com/poiesic/chatalogue/core"
)

var wordRe = regexp.MustCompile(`[a-z]+`)

var instructorTokens = map[string]bool{
	"who": true, "teaches": true, "teach": true, "professor": true,
	"prof": true, "instructor": true, "ta": true,
}

var timeTokens = map[string]bool{
	"when": true, "time": true, "meet": true, "meeting": true,
	"schedule": true, "today": true, "tomorrow": true, "tonight": true,
	"weekend": true,
}

var locationTokens = map[string]bool{
	"where": true, "room": true, "building": true, "location": true,
	"held": true,
}

var infoTokens = map[string]bool{
	"description": true, "about": true, "syllabus": true, "topics": true,
	"info": true, "information": true,
}

// DetectAttributes determines which course properties the text asks about.
// Detection is token-set based to avoid substring leaks (e.g. "latest"
// must not trigger on "test").
func DetectAttributes(text string) []core.Attribute {
	lower := strings.ToLower(text)
	tokenSet := map[string]bool{}
	for _, tok := range wordRe.FindAllString(lower, -1) {
		tokenSet[tok] = true
	}

	anyOf := func(set map[string]bool) bool {
		for tok := range set {
			if tokenSet[tok] {
				return true
			}
		}
		return false
	}

	var attrs []core.Attribute
	if anyOf(instructorTokens) {
		attrs = append(attrs, core.AttrInstructor)
	}
	if anyOf(timeTokens) {
		attrs = append(attrs, core.AttrTime)
	}
	if anyOf(locationTokens) {
		attrs = append(attrs, core.AttrLocation)
	}
	if anyOf(infoTokens) || strings.Contains(lower, "what is") {
		attrs = append(attrs, core.AttrInfo)
	}

	return attrs
}
