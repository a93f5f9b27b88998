package repository

import (
	"context"
	"errors"

	"github.com/sbelmont/intake/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type AssessmentRepo interface {
	Create(ctx context.Context, rec *domain.Record) error
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
}
