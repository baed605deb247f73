package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseRow(code, title string) map[string]string {
	return map[string]string{
		"year":           "2",
		"stream":         "CSE",
		"courseType":     "Core",
		"courseCode":     code,
		"courseTitle":    title,
		"lectureHours":   "3",
		"tutorialHours":  "1",
		"practicalHours": "2",
		"credits":        "4",
		"prerequisites":  "",
		"school":         "SCOPE",
		"forenoonSlots":  "5",
		"afternoonSlots": "5",
		"totalSlots":     "10",
		"basket":         "B1",
	}
}

func setupImportService() (*ImportService, *mockCourseStore, *mockFacultyStore) {
	courses := newMockCourseStore()
	faculties := newMockFacultyStore()
	svc := NewImportService(courses, faculties, nil, zerolog.Nop())
	return svc, courses, faculties
}

func TestImportService_ImportCourses_EmptyBatch(t *testing.T) {
	svc, _, _ := setupImportService()

	_, err := svc.ImportCourses(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestImportService_ImportCourses_MissingColumns(t *testing.T) {
	svc, courses, _ := setupImportService()

	row := courseRow("CS201", "Data Structures")
	delete(row, "basket")

	_, err := svc.ImportCourses(context.Background(), []map[string]string{row})

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"basket"}, missingErr.Columns)
	assert.Empty(t, courses.courses, "rejected batch must not touch the store")
}

func TestImportService_ImportCourses_Inserts(t *testing.T) {
	svc, courses, _ := setupImportService()

	rows := []map[string]string{
		courseRow("CS201", "Data Structures"),
		courseRow("CS202", "Algorithms"),
	}

	inserted, err := svc.ImportCourses(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
	assert.Len(t, courses.courses, 2)
}

func TestImportService_ImportCourses_RetryIsIdempotent(t *testing.T) {
	svc, courses, _ := setupImportService()

	rows := []map[string]string{courseRow("CS201", "Data Structures")}

	first, err := svc.ImportCourses(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	// Same rows again, with noisier formatting: fingerprints must collide.
	rows[0]["courseTitle"] = "  DATA STRUCTURES "
	second, err := svc.ImportCourses(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)
	assert.Len(t, courses.courses, 1)
}

func TestImportService_ImportFaculties_SkipsEmptyEmpID(t *testing.T) {
	svc, _, faculties := setupImportService()

	rows := []map[string]string{
		{"name": "A Kumar", "empid": "1001", "email": "ak@example.edu", "school": "SCOPE"},
		{"name": "No ID", "empid": "   ", "email": "noid@example.edu"},
		{"name": "B Rao", "empid": "1002", "email": "br@example.edu", "school": "SENSE"},
	}

	inserted, err := svc.ImportFaculties(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
	assert.Len(t, faculties.faculties, 2)
}

func TestImportService_ImportFaculties_ExistingEmpIDIsNoOp(t *testing.T) {
	svc, _, faculties := setupImportService()

	rows := []map[string]string{
		{"name": "A Kumar", "empid": "1001", "email": "ak@example.edu"},
	}

	_, err := svc.ImportFaculties(context.Background(), rows)
	require.NoError(t, err)

	// Re-import under a different name: bulk path never overwrites.
	rows[0]["name"] = "A Kumar Jr"
	inserted, err := svc.ImportFaculties(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	require.Len(t, faculties.faculties, 1)
	require.NotNil(t, faculties.faculties[0].Name)
	assert.Equal(t, "A Kumar", *faculties.faculties[0].Name)
}

func TestImportService_ImportFaculties_EmptyBatch(t *testing.T) {
	svc, _, _ := setupImportService()

	_, err := svc.ImportFaculties(context.Background(), []map[string]string{})
	assert.ErrorIs(t, err, ErrEmptyBatch)
}
