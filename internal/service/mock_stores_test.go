package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/acadops/courseslot-backend/internal/model"
	"github.com/acadops/courseslot-backend/internal/repository"
)

// errDuplicateKey imitates the unique constraint violation PostgreSQL raises.
var errDuplicateKey = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

// ── Mock course store ──

type mockCourseStore struct {
	courses  []model.Course
	nextID   int
	failWith error
}

func newMockCourseStore() *mockCourseStore {
	return &mockCourseStore{nextID: 1}
}

func (m *mockCourseStore) hasFingerprint(fp string) bool {
	for _, c := range m.courses {
		if c.Fingerprint == fp {
			return true
		}
	}
	return false
}

func (m *mockCourseStore) List(_ context.Context) ([]model.Course, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.courses, nil
}

func (m *mockCourseStore) Insert(_ context.Context, c *model.Course) error {
	if m.failWith != nil {
		return m.failWith
	}
	if m.hasFingerprint(c.Fingerprint) {
		return errDuplicateKey
	}
	c.ID = m.nextID
	m.nextID++
	m.courses = append(m.courses, *c)
	return nil
}

func (m *mockCourseStore) BulkInsert(_ context.Context, batch []model.Course) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var inserted int64
	for _, c := range batch {
		if m.hasFingerprint(c.Fingerprint) {
			continue
		}
		c.ID = m.nextID
		m.nextID++
		m.courses = append(m.courses, c)
		inserted++
	}
	return inserted, nil
}

func (m *mockCourseStore) DeleteWithAllocations(_ context.Context, ids []int) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var kept []model.Course
	var deleted int64
	for _, c := range m.courses {
		matched := false
		for _, id := range ids {
			if c.ID == id {
				matched = true
				break
			}
		}
		if matched {
			deleted++
		} else {
			kept = append(kept, c)
		}
	}
	if deleted == 0 {
		return 0, repository.ErrNoMatch
	}
	m.courses = kept
	return deleted, nil
}

// ── Mock faculty store ──

type mockFacultyStore struct {
	faculties []model.Faculty
	nextID    int
	failWith  error
}

func newMockFacultyStore() *mockFacultyStore {
	return &mockFacultyStore{nextID: 1}
}

func (m *mockFacultyStore) List(_ context.Context) ([]model.Faculty, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.faculties, nil
}

func (m *mockFacultyStore) GetByEmpID(_ context.Context, empID string) (*model.Faculty, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.faculties {
		if m.faculties[i].EmpID == empID {
			return &m.faculties[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockFacultyStore) InsertIgnore(_ context.Context, f *model.Faculty) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for _, existing := range m.faculties {
		if existing.EmpID == f.EmpID {
			return false, nil
		}
	}
	f.ID = m.nextID
	m.nextID++
	m.faculties = append(m.faculties, *f)
	return true, nil
}

func (m *mockFacultyStore) Upsert(_ context.Context, f *model.Faculty) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i := range m.faculties {
		if m.faculties[i].EmpID == f.EmpID {
			f.ID = m.faculties[i].ID
			m.faculties[i] = *f
			return nil
		}
	}
	f.ID = m.nextID
	m.nextID++
	m.faculties = append(m.faculties, *f)
	return nil
}

func (m *mockFacultyStore) DeleteWithAllocations(_ context.Context, ids []int) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var kept []model.Faculty
	var deleted int64
	for _, f := range m.faculties {
		matched := false
		for _, id := range ids {
			if f.ID == id {
				matched = true
				break
			}
		}
		if matched {
			deleted++
		} else {
			kept = append(kept, f)
		}
	}
	if deleted == 0 {
		return 0, repository.ErrNoMatch
	}
	m.faculties = kept
	return deleted, nil
}

// ── Mock slot ledger ──

// mockLedger tracks per-course slot counters keyed by course id, mirroring the
// guarded decrement semantics of the real ledger.
type mockLedger struct {
	forenoon    map[int]int
	afternoon   map[int]int
	allocations []model.Allocation
	failWith    error
}

func newMockLedger() *mockLedger {
	return &mockLedger{
		forenoon:  make(map[int]int),
		afternoon: make(map[int]int),
	}
}

func (m *mockLedger) Allocate(_ context.Context, a *model.Allocation, courseID int) error {
	if m.failWith != nil {
		return m.failWith
	}
	if a.ForenoonSlots && m.forenoon[courseID] <= 0 {
		return repository.ErrInsufficientSlots
	}
	if a.AfternoonSlots && m.afternoon[courseID] <= 0 {
		return repository.ErrInsufficientSlots
	}
	if a.ForenoonSlots {
		m.forenoon[courseID]--
	}
	if a.AfternoonSlots {
		m.afternoon[courseID]--
	}
	a.ID = len(m.allocations) + 1
	m.allocations = append(m.allocations, *a)
	return nil
}

func (m *mockLedger) Deallocate(_ context.Context, empID, courseCode string, fn, an bool) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var kept []model.Allocation
	var deleted int64
	for _, a := range m.allocations {
		// Exact code match, same as the ledger's DELETE predicate.
		if a.EmpID == empID && a.CourseCode != nil && *a.CourseCode == courseCode {
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	if deleted == 0 {
		return 0, repository.ErrNoMatch
	}
	m.allocations = kept
	return deleted, nil
}

// ── Mock allocation reads ──

type mockAllocationStore struct {
	allocations []model.Allocation
	failWith    error
}

func (m *mockAllocationStore) ListAll(_ context.Context) ([]model.Allocation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.allocations, nil
}

func (m *mockAllocationStore) ListByEmpID(_ context.Context, empID string) ([]model.Allocation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []model.Allocation
	for _, a := range m.allocations {
		if a.EmpID == empID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAllocationStore) CourseAllocationView(_ context.Context, code, stream string) ([]model.CourseAllocationView, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []model.CourseAllocationView
	for _, a := range m.allocations {
		if a.CourseCode != nil && *a.CourseCode == code && a.Stream != nil && *a.Stream == stream {
			result = append(result, model.CourseAllocationView{
				Faculty:        a.Faculty,
				ForenoonSlots:  a.ForenoonSlots,
				AfternoonSlots: a.AfternoonSlots,
			})
		}
	}
	return result, nil
}
