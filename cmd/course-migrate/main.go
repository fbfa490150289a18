package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/secretaria-online/secretaria-api/internal/config"
	"github.com/secretaria-online/secretaria-api/internal/db"
	"github.com/secretaria-online/secretaria-api/internal/logger"
	"github.com/secretaria-online/secretaria-api/internal/migration"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

// Operator-run backfill: resolves free-text course names left by the legacy
// system against the catalog and links the enrollments that still miss a
// course. Bookkeeping goes to its own table so reruns skip processed rows.

const bookkeepingTable = `CREATE TABLE IF NOT EXISTS course_migration_log (
	id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	enrollment_id UUID NOT NULL,
	legacy_name TEXT NOT NULL,
	matched_course_id UUID,
	processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

type legacyRow struct {
	EnrollmentID uuid.UUID
	LegacyName   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := database.Exec(bookkeepingTable).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create bookkeeping table")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store := repository.NewStore(database)
	courses, err := store.Courses().ListAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list courses")
	}
	matcher := migration.NewCourseMatcher(courses)

	var rows []legacyRow
	err = database.WithContext(ctx).Raw(`
		SELECT e.id AS enrollment_id, l.course_name AS legacy_name
		FROM enrollments e
		JOIN legacy_enrollments l ON l.enrollment_id = e.id
		WHERE NOT EXISTS (
			SELECT 1 FROM course_migration_log m WHERE m.enrollment_id = e.id
		)
	`).Scan(&rows).Error
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read legacy enrollments")
	}

	var matched, unmatched int
	for _, row := range rows {
		course, ok := matcher.Match(row.LegacyName)
		if !ok {
			unmatched++
			log.Warn().
				Str("enrollment_id", row.EnrollmentID.String()).
				Str("legacy_name", row.LegacyName).
				Msg("no course match")
			if err := database.WithContext(ctx).Exec(
				`INSERT INTO course_migration_log (enrollment_id, legacy_name) VALUES (?, ?)`,
				row.EnrollmentID, row.LegacyName,
			).Error; err != nil {
				log.Error().Err(err).Msg("failed to record unmatched row")
			}
			continue
		}

		err := database.WithContext(ctx).Exec(
			`UPDATE enrollments SET course_id = ? WHERE id = ?`,
			course.ID, row.EnrollmentID,
		).Error
		if err != nil {
			log.Error().
				Err(err).
				Str("enrollment_id", row.EnrollmentID.String()).
				Msg("failed to update enrollment")
			continue
		}
		if err := database.WithContext(ctx).Exec(
			`INSERT INTO course_migration_log (enrollment_id, legacy_name, matched_course_id) VALUES (?, ?, ?)`,
			row.EnrollmentID, row.LegacyName, course.ID,
		).Error; err != nil {
			log.Error().Err(err).Msg("failed to record matched row")
		}
		matched++
	}

	log.Info().
		Int("matched", matched).
		Int("unmatched", unmatched).
		Msg("course migration finished")
}
