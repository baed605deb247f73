package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/acadops/courseslot-backend/internal/fingerprint"
	"github.com/acadops/courseslot-backend/internal/model"
	"github.com/acadops/courseslot-backend/internal/repository"
)

// CourseStore reads and writes individual course rows.
type CourseStore interface {
	List(ctx context.Context) ([]model.Course, error)
	Insert(ctx context.Context, c *model.Course) error
}

// FacultyStore reads and writes individual faculty rows.
type FacultyStore interface {
	List(ctx context.Context) ([]model.Faculty, error)
	GetByEmpID(ctx context.Context, empID string) (*model.Faculty, error)
	Upsert(ctx context.Context, f *model.Faculty) error
}

// AllocationStore reads allocation rows.
type AllocationStore interface {
	ListAll(ctx context.Context) ([]model.Allocation, error)
	ListByEmpID(ctx context.Context, empID string) ([]model.Allocation, error)
	CourseAllocationView(ctx context.Context, code, stream string) ([]model.CourseAllocationView, error)
}

// CatalogService serves the read endpoints and the two single-entry paths.
// The course and faculty lists go through the Redis-backed CatalogCache.
type CatalogService struct {
	courses     CourseStore
	faculties   FacultyStore
	allocations AllocationStore
	cache       *CatalogCache
	log         zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(courses CourseStore, faculties FacultyStore, allocations AllocationStore, cache *CatalogCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		courses:     courses,
		faculties:   faculties,
		allocations: allocations,
		cache:       cache,
		log:         log.With().Str("component", "catalog_service").Logger(),
	}
}

// ListCourses returns all courses ordered by stream, from cache when warm.
func (s *CatalogService) ListCourses(ctx context.Context) ([]model.Course, error) {
	if courses, ok := s.cache.GetCourses(ctx); ok {
		return courses, nil
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetCourses(ctx, courses)
	return courses, nil
}

// ListFaculties returns all faculty rows, from cache when warm.
func (s *CatalogService) ListFaculties(ctx context.Context) ([]model.Faculty, error) {
	if faculties, ok := s.cache.GetFaculties(ctx); ok {
		return faculties, nil
	}
	faculties, err := s.faculties.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetFaculties(ctx, faculties)
	return faculties, nil
}

// ListAllocations returns every allocation row.
func (s *CatalogService) ListAllocations(ctx context.Context) ([]model.Allocation, error) {
	return s.allocations.ListAll(ctx)
}

// AllocationsByEmpID returns one faculty member's allocations. ErrNotFound
// when the member holds none.
func (s *CatalogService) AllocationsByEmpID(ctx context.Context, empID string) ([]model.Allocation, error) {
	allocations, err := s.allocations.ListByEmpID(ctx, empID)
	if err != nil {
		return nil, err
	}
	if len(allocations) == 0 {
		return nil, ErrNotFound
	}
	return allocations, nil
}

// FacultyByEmpID returns a single faculty member, or ErrNotFound.
func (s *CatalogService) FacultyByEmpID(ctx context.Context, empID string) (*model.Faculty, error) {
	f, err := s.faculties.GetByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// CourseAllocation lists who holds which slot of a course/stream pair.
func (s *CatalogService) CourseAllocation(ctx context.Context, code, stream string) ([]model.CourseAllocationView, error) {
	return s.allocations.CourseAllocationView(ctx, code, stream)
}

// CreateCourse inserts one course from flat string fields, fingerprinted the
// same way as bulk import. A row with identical content already in the table
// surfaces as ErrDuplicateCourse via the fingerprint unique constraint.
func (s *CatalogService) CreateCourse(ctx context.Context, raw map[string]string) (*model.Course, error) {
	rec := fingerprint.Normalize(raw)
	c := courseFromRecord(rec)
	if err := s.courses.Insert(ctx, &c); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateCourse
		}
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return &c, nil
}

// SaveFaculty upserts one faculty member from flat string fields, keyed on
// employee id. Unlike the bulk import path this overwrites the non-key
// fields of an existing row; the asymmetry is intentional.
func (s *CatalogService) SaveFaculty(ctx context.Context, raw map[string]string) (*model.Faculty, error) {
	f := facultyFromRow(raw)
	if strings.TrimSpace(f.EmpID) == "" {
		return nil, ErrEmpIDRequired
	}
	if err := s.faculties.Upsert(ctx, f); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return f, nil
}
