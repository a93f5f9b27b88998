package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbelmont/intake/internal/domain"
)

// captureSubmit records payloads and returns the queued errors in order,
// then nil.
type captureSubmit struct {
	payloads []domain.Submission
	errs     []error
}

func (c *captureSubmit) fn(_ context.Context, sub domain.Submission) error {
	c.payloads = append(c.payloads, sub)
	if len(c.errs) == 0 {
		return nil
	}
	err := c.errs[0]
	c.errs = c.errs[1:]
	return err
}

func TestSubmit_GuardedByValidity(t *testing.T) {
	backend := &captureSubmit{}
	s := NewStore(nil)
	sub := NewSubmitter(s, backend.fn)

	assert.False(t, sub.CanSubmit())
	assert.Equal(t, SubmitIdle, sub.Submit(context.Background()))
	assert.Empty(t, backend.payloads, "invalid form never reaches the backend")
}

func TestSubmit_HappyPathPayload(t *testing.T) {
	backend := &captureSubmit{}
	s := completeStore(t)
	sub := NewSubmitter(s, backend.fn)

	state := sub.Submit(context.Background())
	assert.Equal(t, SubmitSucceeded, state)
	require.Len(t, backend.payloads, 1)

	p := backend.payloads[0]
	assert.Equal(t, "football", p.Sport)
	assert.Equal(t, 25, p.Age)
	assert.Equal(t, "intermediate", p.ExperienceLevel)
	assert.Equal(t, "4-5", p.TrainingDays)
	assert.Nil(t, p.Injuries)
	assert.Equal(t, []string{"no-equipment"}, p.Equipment)
	assert.Nil(t, p.EquipmentItems)
}

func TestSubmit_BasicTierIncludesItems(t *testing.T) {
	backend := &captureSubmit{}
	s := completeStore(t)
	s.SelectTier(domain.TierBasic)
	s.ToggleItem("dumbbell")
	sub := NewSubmitter(s, backend.fn)

	require.Equal(t, SubmitSucceeded, sub.Submit(context.Background()))
	assert.Equal(t, []string{"basic-equipment"}, backend.payloads[0].Equipment)
	assert.Equal(t, []string{"dumbbell"}, backend.payloads[0].EquipmentItems)
}

func TestSubmit_FailureKeepsStateAndRetries(t *testing.T) {
	backend := &captureSubmit{errs: []error{errors.New("boom")}}
	s := completeStore(t)
	s.SelectTier(domain.TierBasic)
	s.ToggleItem("dumbbell")
	s.ToggleItem("bench")
	before := *s.Data()
	beforeItems := append([]string(nil), s.Data().EquipmentItems...)

	sub := NewSubmitter(s, backend.fn)
	assert.Equal(t, SubmitFailed, sub.Submit(context.Background()))
	assert.Equal(t, ErrorMessage, sub.ErrorMessage())

	// Field values survive the failed attempt untouched.
	assert.Equal(t, before.Sport, s.Data().Sport)
	assert.Equal(t, before.Age, s.Data().Age)
	assert.Equal(t, beforeItems, s.Data().EquipmentItems)

	// Retry sends the identical payload and succeeds.
	assert.True(t, sub.CanSubmit())
	assert.Equal(t, SubmitSucceeded, sub.Submit(context.Background()))
	require.Len(t, backend.payloads, 2)
	assert.Equal(t, backend.payloads[0], backend.payloads[1])
	assert.Empty(t, sub.ErrorMessage())
}

func TestSubmit_SuccessIsTerminal(t *testing.T) {
	backend := &captureSubmit{}
	sub := NewSubmitter(completeStore(t), backend.fn)

	require.Equal(t, SubmitSucceeded, sub.Submit(context.Background()))
	assert.False(t, sub.CanSubmit())
	assert.Equal(t, SubmitSucceeded, sub.Submit(context.Background()))
	assert.Len(t, backend.payloads, 1, "a settled attempt cannot be resubmitted")
}

func TestSubmit_SingleFlight(t *testing.T) {
	s := completeStore(t)
	sub := NewSubmitter(s, func(context.Context, domain.Submission) error { return nil })

	_, ok := sub.Begin()
	require.True(t, ok)
	assert.Equal(t, SubmitInFlight, sub.State())

	// A second attempt while in flight is rejected.
	_, ok = sub.Begin()
	assert.False(t, ok)

	sub.Finish(nil)
	assert.Equal(t, SubmitSucceeded, sub.State())
}

func TestSubmit_FinishIgnoredWhenNotInFlight(t *testing.T) {
	sub := NewSubmitter(completeStore(t), nil)
	sub.Finish(errors.New("stray"))
	assert.Equal(t, SubmitIdle, sub.State())
}

func TestSubmit_EndToEndScenario(t *testing.T) {
	backend := &captureSubmit{}
	s := NewStore(nil)
	w := NewWizard(s)

	s.OnSportSelect(domain.SportFootball)
	require.True(t, w.Next())
	s.OnAgeChange("25")
	require.True(t, w.Next())
	s.OnExperienceChange(domain.ExperienceIntermediate)
	require.True(t, w.Next())
	s.OnTrainingDaysSelect(domain.TrainingDays4to5)
	require.True(t, w.Next())
	s.OnInjuryChange(domain.InjuryNo)
	require.True(t, w.Next())
	s.SelectTier(domain.TierNoEquipment)
	require.True(t, w.OnLastStep())

	sub := NewSubmitter(s, backend.fn)
	require.Equal(t, SubmitSucceeded, sub.Submit(context.Background()))

	want := domain.Submission{
		Sport:           "football",
		Age:             25,
		ExperienceLevel: "intermediate",
		TrainingDays:    "4-5",
		Injuries:        nil,
		Equipment:       []string{"no-equipment"},
	}
	require.Len(t, backend.payloads, 1)
	assert.Equal(t, want, backend.payloads[0])
}
