package service

import (
	"context"

	"github.com/sbelmont/intake/internal/domain"
)

type AssessmentService interface {
	// Submit persists a completed assessment and returns its stored record.
	Submit(ctx context.Context, sub domain.Submission) (*domain.Record, error)
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
}
