package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadops/courseslot-backend/internal/model"
)

const allocationColumns = `id, year, stream, course_type, course_code, course_title,
	 lecture_hours, tutorial_hours, practical_hours, credits, prerequisites,
	 school, basket, forenoon_slots, afternoon_slots, faculty, empid`

// AllocationRepository handles the allocation ledger: the append-only
// allocation records and the course slot counters they consume.
type AllocationRepository struct {
	pool *pgxpool.Pool
}

// NewAllocationRepository creates a new AllocationRepository.
func NewAllocationRepository(pool *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{pool: pool}
}

// ListAll retrieves every allocation row.
func (r *AllocationRepository) ListAll(ctx context.Context) ([]model.Allocation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+allocationColumns+` FROM allocated_courses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAllocations(rows)
}

// ListByEmpID retrieves all allocations held by one faculty member.
func (r *AllocationRepository) ListByEmpID(ctx context.Context, empID string) ([]model.Allocation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+allocationColumns+` FROM allocated_courses WHERE empid = $1 ORDER BY id`,
		empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAllocations(rows)
}

// CourseAllocationView lists who holds which slot of a course, identified by
// course code and stream.
func (r *AllocationRepository) CourseAllocationView(ctx context.Context, code, stream string) ([]model.CourseAllocationView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT faculty, forenoon_slots, afternoon_slots
		 FROM allocated_courses
		 WHERE course_code = $1 AND stream = $2
		 ORDER BY id`,
		code, stream)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []model.CourseAllocationView
	for rows.Next() {
		var v model.CourseAllocationView
		var faculty *string
		if err := rows.Scan(&faculty, &v.ForenoonSlots, &v.AfternoonSlots); err != nil {
			return nil, err
		}
		if faculty != nil {
			v.Faculty = *faculty
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// Allocate consumes the requested course slots and records the allocation,
// atomically. The single guarded UPDATE decrements exactly the requested
// counters and matches only while each of them is still positive, so the
// decrement-and-check serializes on the course row lock under concurrency.
// Zero rows affected means the course is missing or a requested counter is
// exhausted: the operation aborts with ErrInsufficientSlots and the
// allocation row is never written.
func (r *AllocationRepository) Allocate(ctx context.Context, a *model.Allocation, courseID int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE course_table SET
		   forenoon_slots  = forenoon_slots  - CASE WHEN $2 THEN 1 ELSE 0 END,
		   afternoon_slots = afternoon_slots - CASE WHEN $3 THEN 1 ELSE 0 END
		 WHERE id = $1
		   AND (NOT $2 OR forenoon_slots > 0)
		   AND (NOT $3 OR afternoon_slots > 0)`,
		courseID, a.ForenoonSlots, a.AfternoonSlots,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientSlots
	}

	if err := tx.QueryRow(ctx,
		`INSERT INTO allocated_courses
		 (year, stream, course_type, course_code, course_title, lecture_hours,
		  tutorial_hours, practical_hours, credits, prerequisites, school,
		  basket, forenoon_slots, afternoon_slots, faculty, empid)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id`,
		a.Year, a.Stream, a.CourseType, a.CourseCode, a.CourseTitle,
		a.LectureHours, a.TutorialHours, a.PracticalHours, a.Credits,
		a.Prerequisites, a.School, a.Basket, a.ForenoonSlots, a.AfternoonSlots,
		a.Faculty, a.EmpID,
	).Scan(&a.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Deallocate deletes the allocation rows matching the employee id and course
// code, then restores one slot per true flag on whichever course row
// currently carries that code. Matching by code alone is the accepted
// denormalization trade-off of the ledger; see restoreSlotsByCode. Both
// steps share one transaction. Returns ErrNoMatch, rolling back, when no
// allocation row matches.
func (r *AllocationRepository) Deallocate(ctx context.Context, empID, courseCode string, fn, an bool) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM allocated_courses WHERE empid = $1 AND course_code = $2`,
		empID, courseCode,
	)
	if err != nil {
		return 0, err
	}
	deleted := tag.RowsAffected()
	if deleted == 0 {
		return 0, ErrNoMatch
	}

	if fn || an {
		if err := restoreSlotsByCode(ctx, tx, courseCode, fn, an); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return deleted, nil
}

// restoreSlotsByCode is the best-effort content match of the reversal path:
// the counter increment lands on whichever course row currently carries the
// code, which under reused codes may differ from the row the allocation
// originally decremented.
func restoreSlotsByCode(ctx context.Context, tx pgx.Tx, courseCode string, fn, an bool) error {
	_, err := tx.Exec(ctx,
		`UPDATE course_table SET
		   forenoon_slots  = forenoon_slots  + CASE WHEN $2 THEN 1 ELSE 0 END,
		   afternoon_slots = afternoon_slots + CASE WHEN $3 THEN 1 ELSE 0 END
		 WHERE course_code = $1`,
		courseCode, fn, an,
	)
	return err
}

// collectAllocations reads allocation rows in allocationColumns order.
func collectAllocations(rows pgx.Rows) ([]model.Allocation, error) {
	var allocations []model.Allocation
	for rows.Next() {
		var a model.Allocation
		var faculty, empID *string
		if err := rows.Scan(
			&a.ID, &a.Year, &a.Stream, &a.CourseType, &a.CourseCode,
			&a.CourseTitle, &a.LectureHours, &a.TutorialHours,
			&a.PracticalHours, &a.Credits, &a.Prerequisites, &a.School,
			&a.Basket, &a.ForenoonSlots, &a.AfternoonSlots, &faculty, &empID,
		); err != nil {
			return nil, err
		}
		if faculty != nil {
			a.Faculty = *faculty
		}
		if empID != nil {
			a.EmpID = *empID
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}
