package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadops/courseslot-backend/internal/model"
)

// FacultyRepository handles faculty data access.
type FacultyRepository struct {
	pool *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository.
func NewFacultyRepository(pool *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{pool: pool}
}

// List retrieves all faculty rows.
func (r *FacultyRepository) List(ctx context.Context) ([]model.Faculty, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, empid, photo_url, email, school FROM faculty_table ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculties []model.Faculty
	for rows.Next() {
		var f model.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.EmpID, &f.PhotoURL, &f.Email, &f.School); err != nil {
			return nil, err
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

// GetByEmpID retrieves a single faculty member by employee id.
// Returns pgx.ErrNoRows when absent.
func (r *FacultyRepository) GetByEmpID(ctx context.Context, empID string) (*model.Faculty, error) {
	f := &model.Faculty{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, empid, photo_url, email, school
		 FROM faculty_table WHERE empid = $1`, empID,
	).Scan(&f.ID, &f.Name, &f.EmpID, &f.PhotoURL, &f.Email, &f.School)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// InsertIgnore adds a faculty member, doing nothing when the employee id
// already exists. Reports whether a row was actually inserted. This is the
// bulk-import conflict behavior; the single-entry path uses Upsert instead.
func (r *FacultyRepository) InsertIgnore(ctx context.Context, f *model.Faculty) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO faculty_table (name, empid, photo_url, email, school)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (empid) DO NOTHING`,
		f.Name, f.EmpID, f.PhotoURL, f.Email, f.School,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Upsert adds a faculty member or overwrites the non-key fields of the
// existing row with the same employee id. This overwrite-on-conflict
// behavior is specific to the single-entry path and intentionally differs
// from the bulk import's InsertIgnore.
func (r *FacultyRepository) Upsert(ctx context.Context, f *model.Faculty) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO faculty_table (name, empid, photo_url, email, school)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (empid) DO UPDATE
		 SET name = EXCLUDED.name, photo_url = EXCLUDED.photo_url,
		     email = EXCLUDED.email, school = EXCLUDED.school
		 RETURNING id`,
		f.Name, f.EmpID, f.PhotoURL, f.Email, f.School,
	).Scan(&f.ID)
}

// DeleteWithAllocations deletes the given faculty rows by serial id together
// with all their allocations, restoring every flagged slot counter first.
// The restoration target is matched by course code, year and title of the
// allocation snapshot, not by course id. Returns ErrNoMatch when none of the
// ids resolve to an employee id; in that case nothing is deleted.
func (r *FacultyRepository) DeleteWithAllocations(ctx context.Context, ids []int) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`SELECT empid FROM faculty_table WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	var empIDs []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			rows.Close()
			return 0, err
		}
		empIDs = append(empIDs, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(empIDs) == 0 {
		return 0, ErrNoMatch
	}

	allocRows, err := tx.Query(ctx,
		`SELECT course_code, year, course_title, forenoon_slots, afternoon_slots
		 FROM allocated_courses WHERE empid = ANY($1)`, empIDs)
	if err != nil {
		return 0, err
	}
	type consumed struct {
		code   *string
		year   *int
		title  *string
		fn, an bool
	}
	var allocs []consumed
	for allocRows.Next() {
		var a consumed
		if err := allocRows.Scan(&a.code, &a.year, &a.title, &a.fn, &a.an); err != nil {
			allocRows.Close()
			return 0, err
		}
		allocs = append(allocs, a)
	}
	allocRows.Close()
	if err := allocRows.Err(); err != nil {
		return 0, err
	}

	for _, a := range allocs {
		if !a.fn && !a.an {
			continue
		}
		if _, err := tx.Exec(ctx,
			`UPDATE course_table SET
			   forenoon_slots  = forenoon_slots  + CASE WHEN $4 THEN 1 ELSE 0 END,
			   afternoon_slots = afternoon_slots + CASE WHEN $5 THEN 1 ELSE 0 END
			 WHERE course_code  IS NOT DISTINCT FROM $1
			   AND year         IS NOT DISTINCT FROM $2
			   AND course_title IS NOT DISTINCT FROM $3`,
			a.code, a.year, a.title, a.fn, a.an,
		); err != nil {
			return 0, err
		}
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM allocated_courses WHERE empid = ANY($1)`, empIDs); err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM faculty_table WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
