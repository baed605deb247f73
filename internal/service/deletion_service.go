package service

import (
	"context"

	"github.com/rs/zerolog"
)

// FacultyCascadeStore deletes faculty rows with their allocations, restoring
// the consumed slot counters.
type FacultyCascadeStore interface {
	DeleteWithAllocations(ctx context.Context, ids []int) (int64, error)
}

// CourseCascadeStore deletes course rows with the allocations whose
// snapshots match them.
type CourseCascadeStore interface {
	DeleteWithAllocations(ctx context.Context, ids []int) (int64, error)
}

// DeletionService handles the bulk cascade deletion paths.
type DeletionService struct {
	faculties FacultyCascadeStore
	courses   CourseCascadeStore
	cache     *CatalogCache
	log       zerolog.Logger
}

// NewDeletionService creates a new DeletionService.
func NewDeletionService(faculties FacultyCascadeStore, courses CourseCascadeStore, cache *CatalogCache, log zerolog.Logger) *DeletionService {
	return &DeletionService{
		faculties: faculties,
		courses:   courses,
		cache:     cache,
		log:       log.With().Str("component", "deletion_service").Logger(),
	}
}

// DeleteFaculties removes the given faculty rows by serial id, reversing all
// their allocations first. The whole cascade is atomic and fails with the
// store's ErrNoMatch when none of the ids exist.
func (s *DeletionService) DeleteFaculties(ctx context.Context, ids []int) (int64, error) {
	deleted, err := s.faculties.DeleteWithAllocations(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx)
	s.log.Info().Ints("ids", ids).Int64("deleted", deleted).Msg("Faculties deleted")
	return deleted, nil
}

// DeleteCourses removes the given course rows by serial id together with the
// allocations matching their snapshots. Atomic; ErrNoMatch when none of the
// ids exist.
func (s *DeletionService) DeleteCourses(ctx context.Context, ids []int) (int64, error) {
	deleted, err := s.courses.DeleteWithAllocations(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx)
	s.log.Info().Ints("ids", ids).Int64("deleted", deleted).Msg("Courses deleted")
	return deleted, nil
}
