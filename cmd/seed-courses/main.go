package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/acadops/courseslot-backend/internal/config"
	"github.com/acadops/courseslot-backend/internal/database"
	"github.com/acadops/courseslot-backend/internal/logger"
	"github.com/acadops/courseslot-backend/internal/repository"
	"github.com/acadops/courseslot-backend/internal/service"
)

// seed-courses loads a course roster CSV straight into the database using the
// same import pipeline the HTTP API uses, so fingerprint dedup applies here too.
func main() {
	var csvPath string
	flag.StringVar(&csvPath, "file", "courses.csv", "Path to course roster CSV")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure schema")
	}

	courseRepo := repository.NewCourseRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	importService := service.NewImportService(courseRepo, facultyRepo, nil, log)

	rows, err := readRoster(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", csvPath).Msg("Failed to read roster")
	}

	fmt.Printf("=== Seeding %d courses from %s ===\n", len(rows), csvPath)

	inserted, err := importService.ImportCourses(ctx, rows)
	if err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}

	fmt.Printf("\nSeed completed! Inserted %d/%d courses (%d duplicates skipped).\n",
		inserted, len(rows), int64(len(rows))-inserted)
}

// readRoster parses the CSV into header-keyed rows, mirroring what the admin
// UI posts as JSON.
func readRoster(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("roster %s has no data rows", path)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
