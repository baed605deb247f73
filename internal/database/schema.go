package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// schemaStatements creates the three tables the service owns. Each statement
// is idempotent so EnsureSchema can run on every startup. The counter CHECK
// constraints back up the guarded UPDATEs in the allocation path: a counter
// can never be observed below zero even if a future code path forgets the
// guard.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS course_table (
		id              SERIAL PRIMARY KEY,
		year            INT,
		stream          TEXT,
		course_type     TEXT,
		course_code     TEXT,
		course_title    TEXT,
		lecture_hours   INT,
		tutorial_hours  INT,
		practical_hours INT,
		credits         INT,
		prerequisites   TEXT,
		school          TEXT,
		forenoon_slots  INT NOT NULL DEFAULT 0 CHECK (forenoon_slots >= 0),
		afternoon_slots INT NOT NULL DEFAULT 0 CHECK (afternoon_slots >= 0),
		total_slots     INT,
		basket          TEXT,
		fingerprint     CHAR(64) UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS faculty_table (
		id        SERIAL PRIMARY KEY,
		name      TEXT,
		empid     TEXT NOT NULL UNIQUE,
		photo_url TEXT,
		email     TEXT,
		school    TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS allocated_courses (
		id              SERIAL PRIMARY KEY,
		year            INT,
		stream          TEXT,
		course_type     TEXT,
		course_code     TEXT,
		course_title    TEXT,
		lecture_hours   INT,
		tutorial_hours  INT,
		practical_hours INT,
		credits         INT,
		prerequisites   TEXT,
		school          TEXT,
		basket          TEXT,
		forenoon_slots  BOOLEAN NOT NULL DEFAULT FALSE,
		afternoon_slots BOOLEAN NOT NULL DEFAULT FALSE,
		faculty         TEXT,
		empid           TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_allocated_courses_empid ON allocated_courses (empid)`,
	`CREATE INDEX IF NOT EXISTS idx_allocated_courses_code ON allocated_courses (course_code)`,
}

// EnsureSchema creates the tables if they do not exist yet. It runs once at
// process start so startup ordering is explicit rather than scattered across
// request handlers. Production deployments run cmd/migrate instead; both
// paths produce the same schema.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	log.Info().Msg("Schema ensured")
	return nil
}
