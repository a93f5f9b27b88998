package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id               TEXT PRIMARY KEY,
		sport            TEXT NOT NULL
		                 CHECK(sport IN ('football','cricket')),
		age              INTEGER NOT NULL CHECK(age >= 13 AND age <= 100),
		experience_level TEXT NOT NULL
		                 CHECK(experience_level IN ('beginner','intermediate','advanced')),
		training_days    TEXT NOT NULL
		                 CHECK(training_days IN ('2-3','4-5','6-7')),
		injuries         TEXT,
		equipment_tier   TEXT NOT NULL
		                 CHECK(equipment_tier IN ('no-equipment','basic-equipment','full-gym')),
		created_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assessment_items (
		assessment_id TEXT NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
		slug          TEXT NOT NULL,
		position      INTEGER NOT NULL,
		PRIMARY KEY (assessment_id, slug)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assessment_items_assessment
		ON assessment_items(assessment_id)`,

	`CREATE INDEX IF NOT EXISTS idx_assessments_created
		ON assessments(created_at)`,
}
