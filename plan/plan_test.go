package plan

import (
	"strings"
	"testing"

	"github.com/poiesic/chatalogue/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_CourseCode(t *testing.T) {
	sub := &core.Subquery{
		Intent:      core.IntentInstructorLookup,
		CourseCodes: []string{"CS 575"},
	}

	q, err := Build(sub)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT course_number, course_name, section, instructor"+
			" FROM public_classes"+
			" WHERE REPLACE(LOWER(course_number), ' ', '') LIKE ?"+
			" ORDER BY course_number ASC, section ASC",
		q.SQL)
	assert.Equal(t, []any{"%cs575%"}, q.Args)
}

func TestBuild_CourseCodeWithSection(t *testing.T) {
	sub := &core.Subquery{
		Intent:      core.IntentCourseLocation,
		CourseCodes: []string{"MET CS 575 A1"},
	}

	q, err := Build(sub)
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "UPPER(section) = ?")
	assert.Contains(t, q.SQL, "location")
	assert.Equal(t, []any{"%metcs575%", "A1"}, q.Args)
}

func TestBuild_SectionFieldAppliesToCode(t *testing.T) {
	sub := &core.Subquery{
		Intent:      core.IntentCourseInfo,
		CourseCodes: []string{"CS 575"},
		Section:     "b3",
	}

	q, err := Build(sub)
	require.NoError(t, err)

	assert.Equal(t, []any{"%cs575%", "B3"}, q.Args)
}

func TestBuild_MultipleCodesAreDisjunctive(t *testing.T) {
	sub := &core.Subquery{
		Intent:      core.IntentCourseInfo,
		CourseCodes: []string{"CS 575", "CS 669"},
	}

	q, err := Build(sub)
	require.NoError(t, err)

	assert.Contains(t, q.SQL, " OR ")
	assert.Equal(t, []any{"%cs575%", "%cs669%"}, q.Args)
}

func TestBuild_Instructor(t *testing.T) {
	sub := &core.Subquery{
		Intent:      core.IntentInstructorLookup,
		Instructors: []string{"Rachlin"},
	}

	q, err := Build(sub)
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "LOWER(instructor) LIKE ?")
	assert.Equal(t, []any{"%rachlin%"}, q.Args)
}

func TestBuild_WeekdaysAreConjunctive(t *testing.T) {
	sub := &core.Subquery{
		Intent:   core.IntentScheduleQuery,
		Weekdays: []string{"Mon", "Wed", "Fri"},
	}

	q, err := Build(sub)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(q.SQL, "days LIKE ?"))
	assert.Equal(t, 2, strings.Count(q.SQL, " AND "))
	assert.Equal(t, []any{"%M%", "%W%", "%F%"}, q.Args)
}

func TestBuild_WeekdayTokens(t *testing.T) {
	sub := &core.Subquery{
		Intent:   core.IntentScheduleQuery,
		Weekdays: []string{"Thu", "Sat", "Sun"},
	}

	q, err := Build(sub)
	require.NoError(t, err)
	assert.Equal(t, []any{"%R%", "%SA%", "%SU%"}, q.Args)
}

func TestBuild_CombinedFilters(t *testing.T) {
	sub := &core.Subquery{
		Intent:      core.IntentScheduleQuery,
		CourseCodes: []string{"CS 575"},
		Instructors: []string{"Zhang"},
		Weekdays:    []string{"Mon"},
	}

	q, err := Build(sub)
	require.NoError(t, err)
	assert.Equal(t, []any{"%cs575%", "%zhang%", "%M%"}, q.Args)
}

func TestBuild_AlwaysParameterized(t *testing.T) {
	// Hostile entity values must never reach the statement text.
	sub := &core.Subquery{
		Intent:      core.IntentCourseInfo,
		CourseCodes: []string{"CS 575'; DROP TABLE public_classes; --"},
		Instructors: []string{"x' OR '1'='1"},
	}

	q, err := Build(sub)
	require.NoError(t, err)

	assert.NotContains(t, q.SQL, "DROP")
	assert.NotContains(t, q.SQL, "1'='1")
	for _, arg := range q.Args {
		assert.IsType(t, "", arg)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Run("nil subquery", func(t *testing.T) {
		_, err := Build(nil)
		assert.Equal(t, ErrSubqueryRequired, err)
	})

	t.Run("no filter", func(t *testing.T) {
		_, err := Build(&core.Subquery{Intent: core.IntentCourseInfo})
		assert.Equal(t, ErrNoFilter, err)
	})

	t.Run("chitchat is not executable", func(t *testing.T) {
		_, err := Build(&core.Subquery{
			Intent:      core.IntentChitchat,
			CourseCodes: []string{"CS 575"},
		})
		assert.Equal(t, ErrNotExecutable, err)
	})
}
