package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/acadops/courseslot-backend/internal/model"
)

// LedgerStore is the transactional slot ledger: consuming course slots when
// an allocation is recorded and restoring them when one is reversed.
type LedgerStore interface {
	Allocate(ctx context.Context, a *model.Allocation, courseID int) error
	Deallocate(ctx context.Context, empID, courseCode string, fn, an bool) (int64, error)
}

// AllocationService allocates course slots to faculty and reverses
// individual allocations.
type AllocationService struct {
	ledger LedgerStore
	cache  *CatalogCache
	log    zerolog.Logger
}

// NewAllocationService creates a new AllocationService.
func NewAllocationService(ledger LedgerStore, cache *CatalogCache, log zerolog.Logger) *AllocationService {
	return &AllocationService{
		ledger: ledger,
		cache:  cache,
		log:    log.With().Str("component", "allocation_service").Logger(),
	}
}

// Allocate consumes the requested slot counters of the course and records an
// allocation carrying the caller's course snapshot and faculty identity.
// An allocation that requests neither slot type is rejected outright. When a
// requested counter is already exhausted the ledger aborts with
// repository.ErrInsufficientSlots and no allocation row is written.
func (s *AllocationService) Allocate(ctx context.Context, req *model.AllocateSlotRequest) (*model.Allocation, error) {
	if !req.Forenoon && !req.Afternoon {
		return nil, ErrNoSlotSelected
	}

	a := &model.Allocation{
		Year:           req.Course.Year,
		Stream:         req.Course.Stream,
		CourseType:     req.Course.CourseType,
		CourseCode:     req.Course.CourseCode,
		CourseTitle:    req.Course.CourseTitle,
		LectureHours:   req.Course.LectureHours,
		TutorialHours:  req.Course.TutorialHours,
		PracticalHours: req.Course.PracticalHours,
		Credits:        req.Course.Credits,
		Prerequisites:  req.Course.Prerequisites,
		School:         req.Course.School,
		Basket:         req.Course.Basket,
		ForenoonSlots:  req.Forenoon,
		AfternoonSlots: req.Afternoon,
		Faculty:        req.Faculty,
		EmpID:          req.EmpID,
	}

	if err := s.ledger.Allocate(ctx, a, req.CourseID); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	s.log.Info().
		Int("course_id", req.CourseID).
		Str("empid", req.EmpID).
		Bool("forenoon", req.Forenoon).
		Bool("afternoon", req.Afternoon).
		Msg("Slot allocated")
	return a, nil
}

// Deallocate reverses the allocations matching the employee id and course
// code, restoring one slot per flagged counter. Deletion and restoration
// either both apply or neither does; a request matching no allocation rows
// returns ErrNotFound via the ledger's ErrNoMatch.
func (s *AllocationService) Deallocate(ctx context.Context, req *model.DeallocateRequest) (int64, error) {
	if req.EmpID == "" || req.CourseCode == "" {
		return 0, ErrMissingReversalKey
	}

	deleted, err := s.ledger.Deallocate(ctx, req.EmpID, req.CourseCode, req.Forenoon, req.Afternoon)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx)

	s.log.Info().
		Str("empid", req.EmpID).
		Str("course_code", req.CourseCode).
		Int64("deleted", deleted).
		Msg("Allocation reversed")
	return deleted, nil
}
