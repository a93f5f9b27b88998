package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sbelmont/intake/internal/db"
	"github.com/sbelmont/intake/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssessmentRepo creates a new SQLiteAssessmentRepo.
func NewSQLiteAssessmentRepo(conn db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: conn}
}

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, rec *domain.Record) error {
	query := `INSERT INTO assessments (id, sport, age, experience_level, training_days, injuries, equipment_tier, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	var injuries any
	if rec.Submission.Injuries != nil {
		injuries = *rec.Submission.Injuries
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Submission.Sport,
		rec.Submission.Age,
		rec.Submission.ExperienceLevel,
		rec.Submission.TrainingDays,
		injuries,
		tierOf(rec.Submission),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}

	for i, slug := range rec.Submission.EquipmentItems {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO assessment_items (assessment_id, slug, position) VALUES (?, ?, ?)`,
			rec.ID, slug, i,
		)
		if err != nil {
			return fmt.Errorf("inserting assessment item %q: %w", slug, err)
		}
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	query := `SELECT id, sport, age, experience_level, training_days, injuries, equipment_tier, created_at
		FROM assessments WHERE id = ?`
	rec, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteAssessmentRepo) List(ctx context.Context) ([]*domain.Record, error) {
	query := `SELECT id, sport, age, experience_level, training_days, injuries, equipment_tier, created_at
		FROM assessments ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var recs []*domain.Record
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}

	for _, rec := range recs {
		if err := r.loadItems(ctx, rec); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteAssessmentRepo) scanRecord(row scanner) (*domain.Record, error) {
	var rec domain.Record
	var injuries sql.NullString
	var tier string
	var createdAt string

	err := row.Scan(
		&rec.ID,
		&rec.Submission.Sport,
		&rec.Submission.Age,
		&rec.Submission.ExperienceLevel,
		&rec.Submission.TrainingDays,
		&injuries,
		&tier,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	if injuries.Valid {
		v := injuries.String
		rec.Submission.Injuries = &v
	}
	rec.Submission.Equipment = []string{tier}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	return &rec, nil
}

func (r *SQLiteAssessmentRepo) loadItems(ctx context.Context, rec *domain.Record) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slug FROM assessment_items WHERE assessment_id = ? ORDER BY position`,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("loading assessment items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return fmt.Errorf("scanning assessment item: %w", err)
		}
		rec.Submission.EquipmentItems = append(rec.Submission.EquipmentItems, slug)
	}
	return rows.Err()
}

// tierOf extracts the single tier slug from the legacy array shape.
func tierOf(sub domain.Submission) string {
	if len(sub.Equipment) == 0 {
		return ""
	}
	return sub.Equipment[0]
}
