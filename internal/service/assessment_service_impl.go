package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbelmont/intake/internal/db"
	"github.com/sbelmont/intake/internal/domain"
	"github.com/sbelmont/intake/internal/form"
	"github.com/sbelmont/intake/internal/repository"
)

type assessmentService struct {
	assessments repository.AssessmentRepo
	uow         db.UnitOfWork
}

func NewAssessmentService(assessments repository.AssessmentRepo, uow db.UnitOfWork) AssessmentService {
	return &assessmentService{assessments: assessments, uow: uow}
}

// validateSubmission checks the payload against the canonical value sets
// before anything is written.
func validateSubmission(sub domain.Submission) error {
	if !domain.ValidSports[sub.Sport] {
		return fmt.Errorf("unknown sport %q", sub.Sport)
	}
	if age := sub.Age; form.ValidateAge(&age) != "" {
		return fmt.Errorf("age %d out of range", sub.Age)
	}
	if !domain.ValidExperienceLevels[sub.ExperienceLevel] {
		return fmt.Errorf("unknown experience level %q", sub.ExperienceLevel)
	}
	if !domain.ValidTrainingDays[sub.TrainingDays] {
		return fmt.Errorf("unknown training days %q", sub.TrainingDays)
	}
	if len(sub.Equipment) != 1 || !domain.ValidEquipmentTiers[sub.Equipment[0]] {
		return fmt.Errorf("invalid equipment tier selection")
	}
	return nil
}

func (s *assessmentService) Submit(ctx context.Context, sub domain.Submission) (*domain.Record, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, fmt.Errorf("validating submission: %w", err)
	}

	rec := &domain.Record{
		ID:         uuid.New().String(),
		Submission: sub,
		CreatedAt:  time.Now().UTC(),
	}

	// The assessment row and its equipment items commit atomically.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteAssessmentRepo(tx).Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *assessmentService) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	return s.assessments.GetByID(ctx, id)
}

func (s *assessmentService) List(ctx context.Context) ([]*domain.Record, error) {
	return s.assessments.List(ctx)
}
