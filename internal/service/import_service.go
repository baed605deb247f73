package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/acadops/courseslot-backend/internal/fingerprint"
	"github.com/acadops/courseslot-backend/internal/model"
)

// CourseBatchStore persists a batch of normalized courses in one atomic unit,
// skipping fingerprints that already exist.
type CourseBatchStore interface {
	BulkInsert(ctx context.Context, courses []model.Course) (int64, error)
}

// FacultyBatchStore persists a single faculty row, doing nothing when the
// employee id already exists.
type FacultyBatchStore interface {
	InsertIgnore(ctx context.Context, f *model.Faculty) (bool, error)
}

// ImportService is the bulk import engine for course and faculty rosters.
// Rows arrive as raw column-keyed string maps, already parsed from CSV by
// the caller.
type ImportService struct {
	courses   CourseBatchStore
	faculties FacultyBatchStore
	cache     *CatalogCache
	log       zerolog.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(courses CourseBatchStore, faculties FacultyBatchStore, cache *CatalogCache, log zerolog.Logger) *ImportService {
	return &ImportService{
		courses:   courses,
		faculties: faculties,
		cache:     cache,
		log:       log.With().Str("component", "import_service").Logger(),
	}
}

// ImportCourses validates, normalizes and inserts a batch of course rows,
// returning the number of newly inserted courses. The column set of the
// first row must contain every required column, otherwise the whole batch is
// rejected with a MissingColumnsError before any database access. Rows whose
// fingerprint already exists are skipped, so retrying with the same input is
// safe and idempotent; any database error rolls the entire batch back.
func (s *ImportService) ImportCourses(ctx context.Context, rows []map[string]string) (int64, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyBatch
	}
	if missing := fingerprint.MissingColumns(rows[0]); len(missing) > 0 {
		return 0, &MissingColumnsError{Columns: missing}
	}

	batch := make([]model.Course, 0, len(rows))
	for _, raw := range rows {
		rec := fingerprint.Normalize(raw)
		batch = append(batch, courseFromRecord(rec))
	}

	inserted, err := s.courses.BulkInsert(ctx, batch)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		s.cache.Invalidate(ctx)
	}
	s.log.Info().
		Int("rows", len(rows)).
		Int64("inserted", inserted).
		Msg("Course import finished")
	return inserted, nil
}

// ImportFaculties inserts a batch of faculty rows keyed on employee id,
// returning the number of newly inserted rows. Rows whose empid normalizes
// to empty are skipped rather than failing the batch, and conflicts on an
// existing empid are no-ops.
func (s *ImportService) ImportFaculties(ctx context.Context, rows []map[string]string) (int64, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyBatch
	}

	var inserted, skipped int64
	for _, raw := range rows {
		f := facultyFromRow(raw)
		if f.EmpID == "" {
			skipped++
			continue
		}
		ok, err := s.faculties.InsertIgnore(ctx, f)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	if inserted > 0 {
		s.cache.Invalidate(ctx)
	}
	s.log.Info().
		Int("rows", len(rows)).
		Int64("inserted", inserted).
		Int64("skipped", skipped).
		Msg("Faculty import finished")
	return inserted, nil
}

// courseFromRecord maps a normalized record onto a course row. Absent
// counters start at zero so the non-negativity invariant holds from birth.
func courseFromRecord(rec fingerprint.Record) model.Course {
	c := model.Course{
		Year:           rec.Year,
		Stream:         rec.Stream,
		CourseType:     rec.CourseType,
		CourseCode:     rec.CourseCode,
		CourseTitle:    rec.CourseTitle,
		LectureHours:   rec.LectureHours,
		TutorialHours:  rec.TutorialHours,
		PracticalHours: rec.PracticalHours,
		Credits:        rec.Credits,
		Prerequisites:  rec.Prerequisites,
		School:         rec.School,
		TotalSlots:     rec.TotalSlots,
		Basket:         rec.Basket,
		Fingerprint:    rec.Fingerprint(),
	}
	if rec.ForenoonSlots != nil {
		c.ForenoonSlots = *rec.ForenoonSlots
	}
	if rec.AfternoonSlots != nil {
		c.AfternoonSlots = *rec.AfternoonSlots
	}
	return c
}

// facultyFromRow normalizes a raw faculty roster row.
func facultyFromRow(raw map[string]string) *model.Faculty {
	return &model.Faculty{
		Name:     fingerprint.Text(raw, "name"),
		EmpID:    strings.TrimSpace(raw["empid"]),
		PhotoURL: fingerprint.Text(raw, "photo_url"),
		Email:    fingerprint.Text(raw, "email"),
		School:   fingerprint.Text(raw, "school"),
	}
}
