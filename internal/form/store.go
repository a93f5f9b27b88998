package form

import (
	"strconv"
	"strings"

	"github.com/sbelmont/intake/internal/domain"
)

// Field names the logical form fields, used as error-map keys.
type Field string

const (
	FieldSport     Field = "sport"
	FieldAge       Field = "age"
	FieldExp       Field = "experienceLevel"
	FieldDays      Field = "trainingDays"
	FieldInjuries  Field = "injuries"
	FieldEquipment Field = "equipment"
)

// Store owns the mutable assessment state for one form instance. All
// mutation goes through the handlers below; each handler clears its own
// field's error the moment the value changes. The store is created on
// form start and discarded when the form is torn down.
type Store struct {
	data    domain.Assessment
	errors  map[Field]string
	catalog []domain.CatalogItem

	// itemDraft buffers the custom equipment item the user is typing.
	itemDraft string
}

// NewStore creates an empty Store backed by the given equipment catalog.
// A nil catalog falls back to the built-in default.
func NewStore(catalog []domain.CatalogItem) *Store {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	return &Store{
		errors:  make(map[Field]string),
		catalog: catalog,
	}
}

// Data returns the current assessment state.
func (s *Store) Data() *domain.Assessment { return &s.data }

// Catalog returns the injected equipment item catalog.
func (s *Store) Catalog() []domain.CatalogItem { return s.catalog }

// Error returns the current message for a field, or "".
func (s *Store) Error(f Field) string { return s.errors[f] }

func (s *Store) clearError(f Field) { delete(s.errors, f) }

// OnSportSelect records the chosen sport. Re-selecting overwrites.
func (s *Store) OnSportSelect(sport domain.Sport) {
	s.clearError(FieldSport)
	s.data.Sport = sport
}

// OnAgeChange parses raw input into an integer age, or nil when the input
// is empty or non-numeric. The age error is cleared on every change and
// only recomputed once a parsed value exists, so a field the user is still
// typing into stays quiet.
func (s *Store) OnAgeChange(raw string) {
	s.clearError(FieldAge)

	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.data.Age = nil
		return
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.data.Age = nil
		return
	}
	s.data.Age = &n
	if msg := ValidateAge(s.data.Age); msg != "" {
		s.errors[FieldAge] = msg
	}
}

// OnAgeBlur recomputes and surfaces the age error unconditionally.
func (s *Store) OnAgeBlur() {
	if msg := ValidateAge(s.data.Age); msg != "" {
		s.errors[FieldAge] = msg
	} else {
		s.clearError(FieldAge)
	}
}

// OnExperienceChange records the chosen experience level.
func (s *Store) OnExperienceChange(level domain.ExperienceLevel) {
	s.clearError(FieldExp)
	s.data.Experience = level
}

// OnTrainingDaysSelect records the chosen training-day band.
func (s *Store) OnTrainingDaysSelect(days domain.TrainingDays) {
	s.clearError(FieldDays)
	s.data.Days = days
}

// OnInjuryChange records the injury-history answer.
func (s *Store) OnInjuryChange(answer domain.InjuryAnswer) {
	s.clearError(FieldInjuries)
	s.data.Injuries = answer
}

// IsValid reports whether the whole form is submittable: every field is
// answered, the age passes validation, and a basic-equipment selection
// carries at least one item.
func (s *Store) IsValid() bool {
	d := &s.data
	if d.Sport == "" || d.Experience == "" || d.Days == "" || d.Injuries == "" {
		return false
	}
	if ValidateAge(d.Age) != "" {
		return false
	}
	if d.Tier == "" {
		return false
	}
	if d.Tier == domain.TierBasic && len(d.EquipmentItems) == 0 {
		return false
	}
	return true
}

// Reset discards all entered data and errors, returning the store to its
// initial empty state.
func (s *Store) Reset() {
	s.data = domain.Assessment{}
	s.errors = make(map[Field]string)
	s.itemDraft = ""
}
