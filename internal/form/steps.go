package form

import "github.com/sbelmont/intake/internal/domain"

// Step indexes the six ordered wizard sections.
type Step int

const (
	StepSport Step = iota
	StepAge
	StepExperience
	StepDays
	StepInjuries
	StepEquipment
)

// StepCount is the number of wizard steps.
const StepCount = 6

// Title returns the section heading for a step.
func (s Step) Title() string {
	switch s {
	case StepSport:
		return "Sport"
	case StepAge:
		return "Age"
	case StepExperience:
		return "Experience"
	case StepDays:
		return "Training Days"
	case StepInjuries:
		return "Injury History"
	case StepEquipment:
		return "Equipment"
	default:
		return ""
	}
}

// Wizard gates forward navigation through the six steps. Data lives in the
// Store and survives any amount of back-and-forward traversal; the wizard
// only tracks position and which steps have been exited forward.
type Wizard struct {
	store     *Store
	active    Step
	completed map[Step]bool
}

// NewWizard creates a Wizard over the given store, positioned on the
// first step with nothing completed.
func NewWizard(store *Store) *Wizard {
	return &Wizard{
		store:     store,
		completed: make(map[Step]bool),
	}
}

// Store returns the underlying form store.
func (w *Wizard) Store() *Store { return w.store }

// Active returns the current step.
func (w *Wizard) Active() Step { return w.active }

// OnLastStep reports whether the current step is the final one, from
// which submission rather than forward navigation is offered.
func (w *Wizard) OnLastStep() bool { return w.active == StepCount-1 }

// Completed reports whether a step has ever been exited forward.
// Backward navigation never un-completes a step.
func (w *Wizard) Completed(s Step) bool { return w.completed[s] }

// StepComplete reports whether a step's own fields satisfy validation,
// independent of navigation history.
func (w *Wizard) StepComplete(s Step) bool {
	d := w.store.Data()
	switch s {
	case StepSport:
		return d.Sport != ""
	case StepAge:
		return d.Age != nil && ValidateAge(d.Age) == ""
	case StepExperience:
		return d.Experience != ""
	case StepDays:
		return d.Days != ""
	case StepInjuries:
		return d.Injuries != ""
	case StepEquipment:
		if d.Tier == "" {
			return false
		}
		return d.Tier != domain.TierBasic || len(d.EquipmentItems) > 0
	default:
		return false
	}
}

// Next advances to the following step if the current one is complete,
// marking it completed. Returns false (position unchanged) when the
// current step is incomplete or already the last.
func (w *Wizard) Next() bool {
	if w.OnLastStep() || !w.StepComplete(w.active) {
		return false
	}
	w.completed[w.active] = true
	w.active++
	return true
}

// Back moves to the previous step without touching field values or the
// completed set. Returns false on the first step.
func (w *Wizard) Back() bool {
	if w.active == 0 {
		return false
	}
	w.active--
	return true
}

// JumpTo moves directly to a step, but only backward or onto a step that
// was already completed; skipping ahead into unvalidated territory is
// rejected.
func (w *Wizard) JumpTo(s Step) bool {
	if s < 0 || s >= StepCount {
		return false
	}
	if s > w.active && !w.completed[s] {
		return false
	}
	w.active = s
	return true
}
