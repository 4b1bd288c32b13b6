package chat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/poiesic/chatalogue/core"
	"github.com/stretchr/testify/assert"
)

func TestFormatRows_Empty(t *testing.T) {
	sub := &core.Subquery{Intent: core.IntentCourseInfo, CourseCodes: []string{"CS 575"}}
	assert.Equal(t, noResultsReply, formatRows(sub, nil))
}

func TestFormatRows_SingleSectionDetail(t *testing.T) {
	sub := &core.Subquery{Intent: core.IntentCourseInfo, CourseCodes: []string{"CS 575"}}
	out := formatRows(sub, []core.CourseRow{{
		"course_number": "MET CS 575",
		"course_name":   "Operating Systems",
		"section":       "A1",
		"instructor":    "Zhang",
		"location":      "CAS 313",
		"days":          "MWF",
		"times":         "10:10am - 11:00am",
	}})

	assert.Equal(t,
		"MET CS 575 A1: Operating Systems\n"+
			"  Instructor: Zhang\n"+
			"  Location: CAS 313\n"+
			"  Meets: MWF 10:10am - 11:00am",
		out)
}

func TestFormatRows_GroupByInstructor(t *testing.T) {
	sub := &core.Subquery{Intent: core.IntentInstructorLookup, CourseCodes: []string{"CS 575"}}
	out := formatRows(sub, []core.CourseRow{
		{"course_number": "MET CS 575", "section": "A1", "instructor": "Zhang"},
		{"course_number": "MET CS 575", "section": "B1", "instructor": "Rachlin"},
		{"course_number": "MET CS 575", "section": "C1", "instructor": "Zhang"},
	})

	assert.Equal(t,
		"MET CS 575 is taught by:\n"+
			"- Zhang (section A1, C1)\n"+
			"- Rachlin (section B1)",
		out)
}

func TestFormatRows_MissingInstructorIsStaff(t *testing.T) {
	sub := &core.Subquery{Intent: core.IntentInstructorLookup, CourseCodes: []string{"CS 575"}}
	out := formatRows(sub, []core.CourseRow{
		{"course_number": "MET CS 575", "section": "A1", "instructor": "Zhang"},
		{"course_number": "MET CS 575", "section": "B1"},
	})

	assert.Contains(t, out, "- Staff (section B1)")
}

func TestFormatRows_TruncatesLongLists(t *testing.T) {
	var rows []core.CourseRow
	for i := 0; i < maxListedRows+3; i++ {
		rows = append(rows, core.CourseRow{
			"course_number": fmt.Sprintf("MET CS %d", 500+i),
			"section":       "A1",
			"instructor":    "Zhang",
		})
	}

	sub := &core.Subquery{Intent: core.IntentScheduleQuery, Weekdays: []string{"Mon"}}
	out := formatRows(sub, rows)

	assert.Contains(t, out, fmt.Sprintf("I found %d matching sections on Mon:", len(rows)))
	assert.Equal(t, maxListedRows, strings.Count(out, "\n- "))
	assert.Contains(t, out, "…and 3 more.")
}

func TestChitchatReply(t *testing.T) {
	assert.Contains(t, chitchatReply("hello there"), "Hi!")
	assert.Contains(t, chitchatReply("thanks a lot"), "welcome")
	assert.NotEmpty(t, chitchatReply("what's the meaning of life"))
}
