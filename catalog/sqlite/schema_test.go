package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCourseFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCSV(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	path := writeCourseFile(t,
		"course_number,course_name,section,instructor,location,days,times\n"+
			"MET CS 575,Operating Systems,A1,Zhang,CAS 313,MWF,10:10am - 11:00am\n"+
			"MET CS 669,Database Design,A1,Pinsky,MCS B25,M,6:00pm - 8:45pm\n")

	count, err := repo.ImportCSV(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	q, err := plan.Build(&core.Subquery{
		Intent:      core.IntentCourseInfo,
		CourseCodes: []string{"CS 669"},
	})
	require.NoError(t, err)

	rows, err := repo.Query(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Database Design", rows[0]["course_name"])
}

func TestImportCSV_ReplacesExistingRows(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.SeedRows(ctx,
		[7]string{"MET CS 101", "Old Course", "A1", "Nobody", "", "", ""}))

	path := writeCourseFile(t,
		"course_number,course_name,section,instructor,location,days,times\n"+
			"MET CS 575,Operating Systems,A1,Zhang,CAS 313,MWF,10:10am - 11:00am\n")

	count, err := repo.ImportCSV(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	codes, err := repo.FuzzyFindCourses(ctx, "Old Course")
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestImportCSV_BadHeader(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	path := writeCourseFile(t, "nope,course_name,section,instructor,location,days,times\n")

	_, err = repo.ImportCSV(context.Background(), path)
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestImportCSV_MissingFile(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.ImportCSV(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
