package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadops/courseslot-backend/internal/model"
)

const courseColumns = `id, year, stream, course_type, course_code, course_title,
	 lecture_hours, tutorial_hours, practical_hours, credits, prerequisites,
	 school, forenoon_slots, afternoon_slots, total_slots, basket`

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// List retrieves all courses ordered by stream.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM course_table ORDER BY stream`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Insert adds a single course. The fingerprint unique constraint surfaces a
// duplicate as a pgconn error the caller inspects with IsUniqueViolation.
func (r *CourseRepository) Insert(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO course_table
		 (year, stream, course_type, course_code, course_title, lecture_hours,
		  tutorial_hours, practical_hours, credits, prerequisites, school,
		  forenoon_slots, afternoon_slots, total_slots, basket, fingerprint)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id`,
		c.Year, c.Stream, c.CourseType, c.CourseCode, c.CourseTitle,
		c.LectureHours, c.TutorialHours, c.PracticalHours, c.Credits,
		c.Prerequisites, c.School, c.ForenoonSlots, c.AfternoonSlots,
		c.TotalSlots, c.Basket, c.Fingerprint,
	).Scan(&c.ID)
}

// BulkInsert inserts a batch of courses in one transaction, skipping rows
// whose fingerprint already exists. It returns the number of rows actually
// inserted. Any statement error rolls back the whole batch.
func (r *CourseRepository) BulkInsert(ctx context.Context, courses []model.Course) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var inserted int64
	for _, c := range courses {
		tag, err := tx.Exec(ctx,
			`INSERT INTO course_table
			 (year, stream, course_type, course_code, course_title, lecture_hours,
			  tutorial_hours, practical_hours, credits, prerequisites, school,
			  forenoon_slots, afternoon_slots, total_slots, basket, fingerprint)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			 ON CONFLICT (fingerprint) DO NOTHING`,
			c.Year, c.Stream, c.CourseType, c.CourseCode, c.CourseTitle,
			c.LectureHours, c.TutorialHours, c.PracticalHours, c.Credits,
			c.Prerequisites, c.School, c.ForenoonSlots, c.AfternoonSlots,
			c.TotalSlots, c.Basket, c.Fingerprint,
		)
		if err != nil {
			return 0, err
		}
		inserted += tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

// DeleteWithAllocations deletes the given courses and every allocation whose
// denormalized snapshot matches one of them on title, code, year, school and
// stream. The strict five-field match avoids deleting unrelated allocations
// that merely share a course code. Slot counters are not restored: deleting
// the course makes its counters moot. Returns ErrNoMatch when none of the
// ids exist.
func (r *CourseRepository) DeleteWithAllocations(ctx context.Context, ids []int) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`SELECT course_title, course_code, year, school, stream
		 FROM course_table WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}

	type snapshot struct {
		title, code    *string
		year           *int
		school, stream *string
	}
	var snaps []snapshot
	for rows.Next() {
		var s snapshot
		if err := rows.Scan(&s.title, &s.code, &s.year, &s.school, &s.stream); err != nil {
			rows.Close()
			return 0, err
		}
		snaps = append(snaps, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(snaps) == 0 {
		return 0, ErrNoMatch
	}

	for _, s := range snaps {
		if _, err := tx.Exec(ctx,
			`DELETE FROM allocated_courses
			 WHERE course_title IS NOT DISTINCT FROM $1
			   AND course_code  IS NOT DISTINCT FROM $2
			   AND year         IS NOT DISTINCT FROM $3
			   AND school       IS NOT DISTINCT FROM $4
			   AND stream       IS NOT DISTINCT FROM $5`,
			s.title, s.code, s.year, s.school, s.stream,
		); err != nil {
			return 0, err
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM course_table WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// scanCourse reads one course row in courseColumns order.
func scanCourse(row pgx.Row, c *model.Course) error {
	return row.Scan(
		&c.ID, &c.Year, &c.Stream, &c.CourseType, &c.CourseCode, &c.CourseTitle,
		&c.LectureHours, &c.TutorialHours, &c.PracticalHours, &c.Credits,
		&c.Prerequisites, &c.School, &c.ForenoonSlots, &c.AfternoonSlots,
		&c.TotalSlots, &c.Basket,
	)
}
