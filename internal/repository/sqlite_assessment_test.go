package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbelmont/intake/internal/domain"
	"github.com/sbelmont/intake/internal/testutil"
)

func strPtr(s string) *string { return &s }

func testRecord(id string, createdAt time.Time) *domain.Record {
	return &domain.Record{
		ID: id,
		Submission: domain.Submission{
			Sport:           "football",
			Age:             25,
			ExperienceLevel: "intermediate",
			TrainingDays:    "4-5",
			Equipment:       []string{"no-equipment"},
		},
		CreatedAt: createdAt,
	}
}

func TestAssessmentRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(db)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testRecord("a1", created)))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "football", got.Submission.Sport)
	assert.Equal(t, 25, got.Submission.Age)
	assert.Equal(t, "intermediate", got.Submission.ExperienceLevel)
	assert.Equal(t, "4-5", got.Submission.TrainingDays)
	assert.Nil(t, got.Submission.Injuries)
	assert.Equal(t, []string{"no-equipment"}, got.Submission.Equipment)
	assert.Empty(t, got.Submission.EquipmentItems)
	assert.Equal(t, created, got.CreatedAt)
}

func TestAssessmentRepo_RoundTripsInjuries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(db)
	ctx := context.Background()

	rec := testRecord("a1", time.Now().UTC().Truncate(time.Second))
	rec.Submission.Injuries = strPtr("yes")
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, got.Submission.Injuries)
	assert.Equal(t, "yes", *got.Submission.Injuries)
}

func TestAssessmentRepo_ItemsKeepInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(db)
	ctx := context.Background()

	rec := testRecord("a1", time.Now().UTC().Truncate(time.Second))
	rec.Submission.Equipment = []string{"basic-equipment"}
	rec.Submission.EquipmentItems = []string{"yoga-mat", "dumbbell", "cable-machine"}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"yoga-mat", "dumbbell", "cable-machine"},
		got.Submission.EquipmentItems)
}

func TestAssessmentRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(db)

	_, err := repo.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssessmentRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testRecord("older", base)))
	require.NoError(t, repo.Create(ctx, testRecord("newer", base.Add(time.Hour))))

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "newer", recs[0].ID)
	assert.Equal(t, "older", recs[1].ID)
}

func TestAssessmentRepo_SchemaRejectsBadTier(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(db)

	rec := testRecord("a1", time.Now().UTC())
	rec.Submission.Equipment = []string{"jungle-gym"}
	err := repo.Create(context.Background(), rec)
	require.Error(t, err, "CHECK constraint guards tier values")
}
