package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbelmont/intake/internal/domain"
	"github.com/sbelmont/intake/internal/repository"
	"github.com/sbelmont/intake/internal/testutil"
)

func basicSubmission() domain.Submission {
	return domain.Submission{
		Sport:           "cricket",
		Age:             30,
		ExperienceLevel: "advanced",
		TrainingDays:    "6-7",
		Equipment:       []string{"basic-equipment"},
		EquipmentItems:  []string{"dumbbell", "resistance-bands"},
	}
}

func TestAssessmentService_SubmitAssignsIDAndPersists(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAssessmentRepo(db)
	svc := NewAssessmentService(repo, testutil.NewTestUoW(db))
	ctx := context.Background()

	rec, err := svc.Submit(ctx, basicSubmission())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Submission.Sport, got.Submission.Sport)
	assert.Equal(t, []string{"dumbbell", "resistance-bands"},
		got.Submission.EquipmentItems)
}

func TestAssessmentService_SubmitRejectsUnknownValues(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAssessmentRepo(db)
	svc := NewAssessmentService(repo, testutil.NewTestUoW(db))
	ctx := context.Background()

	bad := basicSubmission()
	bad.Sport = "hockey"
	_, err := svc.Submit(ctx, bad)
	assert.ErrorContains(t, err, "unknown sport")

	bad = basicSubmission()
	bad.Age = 12
	_, err = svc.Submit(ctx, bad)
	assert.ErrorContains(t, err, "out of range")

	bad = basicSubmission()
	bad.Equipment = nil
	_, err = svc.Submit(ctx, bad)
	assert.ErrorContains(t, err, "equipment tier")

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestAssessmentService_SubmitRollsBackOnItemFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAssessmentRepo(db)

	// Fail on the second item insert: assessment row + first item succeed,
	// then the transaction must roll back entirely.
	uow := &testutil.FailOnNthExecUoW{DB: db, FailOn: 3, Err: errors.New("disk full")}
	svc := NewAssessmentService(repo, uow)
	ctx := context.Background()

	_, err := svc.Submit(ctx, basicSubmission())
	require.Error(t, err)

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs, "partial submission must not be visible")
}

func TestAssessmentService_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAssessmentRepo(db)
	svc := NewAssessmentService(repo, testutil.NewTestUoW(db))
	ctx := context.Background()

	_, err := svc.Submit(ctx, basicSubmission())
	require.NoError(t, err)

	sub2 := basicSubmission()
	sub2.Equipment = []string{"full-gym"}
	sub2.EquipmentItems = nil
	_, err = svc.Submit(ctx, sub2)
	require.NoError(t, err)

	recs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
