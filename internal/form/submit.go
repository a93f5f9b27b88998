package form

import (
	"context"

	"github.com/sbelmont/intake/internal/domain"
)

// SubmitState tracks the submission lifecycle.
type SubmitState string

const (
	SubmitIdle      SubmitState = "idle"
	SubmitInFlight  SubmitState = "submitting"
	SubmitSucceeded SubmitState = "success"
	SubmitFailed    SubmitState = "error"
)

// ErrorMessage is the single user-facing message for any failed
// submission, regardless of cause. State is preserved so the user can
// retry the identical payload.
const ErrorMessage = "Unable to save your assessment. Please try again"

// SubmitFunc is the injected backend boundary. Any returned error maps to
// ErrorMessage; its content is never inspected.
type SubmitFunc func(ctx context.Context, sub domain.Submission) error

// Submitter drives idle → submitting → success/error over an injected
// callback. Entering submitting blocks further attempts until the
// outcome lands (single-flight). A failed attempt may be retried; success
// is terminal for the attempt.
type Submitter struct {
	store *Store
	fn    SubmitFunc
	state SubmitState
}

// NewSubmitter creates a Submitter over the store, delivering payloads to fn.
func NewSubmitter(store *Store, fn SubmitFunc) *Submitter {
	return &Submitter{store: store, fn: fn, state: SubmitIdle}
}

// State returns the current lifecycle state.
func (s *Submitter) State() SubmitState { return s.state }

// CanSubmit reports whether a submission attempt may start now: the form
// is valid, nothing is in flight, and no prior attempt has succeeded.
func (s *Submitter) CanSubmit() bool {
	if s.state == SubmitInFlight || s.state == SubmitSucceeded {
		return false
	}
	return s.store.IsValid()
}

// Begin starts an attempt, returning the frozen payload. Returns ok=false
// without touching state when submission is not currently permitted.
// Callers deliver the payload to the callback and report back via Finish;
// split this way so an event loop can run the callback asynchronously.
func (s *Submitter) Begin() (domain.Submission, bool) {
	if !s.CanSubmit() {
		return domain.Submission{}, false
	}
	s.state = SubmitInFlight
	return s.store.Data().ToSubmission(), true
}

// Finish records the attempt's outcome. A no-op unless in flight.
func (s *Submitter) Finish(err error) {
	if s.state != SubmitInFlight {
		return
	}
	if err != nil {
		s.state = SubmitFailed
		return
	}
	s.state = SubmitSucceeded
}

// Submit runs a full attempt synchronously: Begin, callback, Finish.
// Used by the single-form flow and tests; the wizard uses Begin/Finish
// around a tea command instead.
func (s *Submitter) Submit(ctx context.Context) SubmitState {
	sub, ok := s.Begin()
	if !ok {
		return s.state
	}
	s.Finish(s.fn(ctx, sub))
	return s.state
}

// ErrorMessage returns the user-facing failure message, or "" when the
// last attempt did not fail.
func (s *Submitter) ErrorMessage() string {
	if s.state == SubmitFailed {
		return ErrorMessage
	}
	return ""
}
