package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadops/courseslot-backend/internal/model"
	"github.com/acadops/courseslot-backend/internal/repository"
)

func setupCatalogService() (*CatalogService, *mockCourseStore, *mockFacultyStore, *mockAllocationStore) {
	courses := newMockCourseStore()
	faculties := newMockFacultyStore()
	allocations := &mockAllocationStore{}
	svc := NewCatalogService(courses, faculties, allocations, nil, zerolog.Nop())
	return svc, courses, faculties, allocations
}

func TestCatalogService_CreateCourse_DuplicateContent(t *testing.T) {
	svc, courses, _, _ := setupCatalogService()

	row := courseRow("CS201", "Data Structures")
	_, err := svc.CreateCourse(context.Background(), row)
	require.NoError(t, err)
	assert.Len(t, courses.courses, 1)

	// Same content with cosmetic differences still collides on fingerprint.
	row["courseTitle"] = " data structures "
	_, err = svc.CreateCourse(context.Background(), row)
	assert.ErrorIs(t, err, ErrDuplicateCourse)
	assert.Len(t, courses.courses, 1)
}

func TestCatalogService_SaveFaculty_RequiresEmpID(t *testing.T) {
	svc, _, _, _ := setupCatalogService()

	_, err := svc.SaveFaculty(context.Background(), map[string]string{
		"name":  "A Kumar",
		"empid": "  ",
	})
	assert.ErrorIs(t, err, ErrEmpIDRequired)
}

func TestCatalogService_SaveFaculty_OverwritesExisting(t *testing.T) {
	svc, _, faculties, _ := setupCatalogService()

	_, err := svc.SaveFaculty(context.Background(), map[string]string{
		"name": "A Kumar", "empid": "1001", "email": "old@example.edu",
	})
	require.NoError(t, err)

	// Single-entry path upserts, unlike the bulk import path.
	_, err = svc.SaveFaculty(context.Background(), map[string]string{
		"name": "A Kumar", "empid": "1001", "email": "new@example.edu",
	})
	require.NoError(t, err)

	require.Len(t, faculties.faculties, 1)
	require.NotNil(t, faculties.faculties[0].Email)
	assert.Equal(t, "new@example.edu", *faculties.faculties[0].Email)
}

func TestCatalogService_FacultyByEmpID_NotFound(t *testing.T) {
	svc, _, _, _ := setupCatalogService()

	_, err := svc.FacultyByEmpID(context.Background(), "9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_AllocationsByEmpID_EmptyIsNotFound(t *testing.T) {
	svc, _, _, allocations := setupCatalogService()
	allocations.allocations = []model.Allocation{
		{EmpID: "1001", Faculty: "A Kumar", CourseCode: strPtr("CS201"), ForenoonSlots: true},
	}

	found, err := svc.AllocationsByEmpID(context.Background(), "1001")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = svc.AllocationsByEmpID(context.Background(), "2002")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_CourseAllocation_FiltersByCodeAndStream(t *testing.T) {
	svc, _, _, allocations := setupCatalogService()
	allocations.allocations = []model.Allocation{
		{EmpID: "1001", Faculty: "A Kumar", CourseCode: strPtr("CS201"), Stream: strPtr("CSE"), ForenoonSlots: true},
		{EmpID: "1002", Faculty: "B Rao", CourseCode: strPtr("CS201"), Stream: strPtr("ECE"), AfternoonSlots: true},
	}

	views, err := svc.CourseAllocation(context.Background(), "CS201", "CSE")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "A Kumar", views[0].Faculty)
}

func TestDeletionService_DeleteCourses_NoMatch(t *testing.T) {
	courses := newMockCourseStore()
	faculties := newMockFacultyStore()
	svc := NewDeletionService(faculties, courses, nil, zerolog.Nop())

	_, err := svc.DeleteCourses(context.Background(), []int{99})
	assert.ErrorIs(t, err, repository.ErrNoMatch)

	_, err = svc.DeleteFaculties(context.Background(), []int{99})
	assert.ErrorIs(t, err, repository.ErrNoMatch)
}

func TestDeletionService_DeleteFaculties_ReportsCount(t *testing.T) {
	courses := newMockCourseStore()
	faculties := newMockFacultyStore()
	_, err := faculties.InsertIgnore(context.Background(), &model.Faculty{EmpID: "1001"})
	require.NoError(t, err)
	_, err = faculties.InsertIgnore(context.Background(), &model.Faculty{EmpID: "1002"})
	require.NoError(t, err)

	svc := NewDeletionService(faculties, courses, nil, zerolog.Nop())

	deleted, err := svc.DeleteFaculties(context.Background(), []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Empty(t, faculties.faculties)
}
