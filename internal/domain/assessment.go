package domain

import (
	"strings"
	"time"
)

// Assessment is the in-progress intake model. Unset fields are the zero
// value (empty string for enums, nil for Age). The selected equipment tier
// is a single optional value internally; the legacy one-element array shape
// only exists on the wire (see Submission).
type Assessment struct {
	Sport      Sport
	Age        *int
	Experience ExperienceLevel
	Days       TrainingDays
	Injuries   InjuryAnswer
	Tier       EquipmentTier

	// EquipmentItems holds catalog and custom item slugs in insertion
	// order. Populated only while Tier == TierBasic.
	EquipmentItems []string
}

// HasItem reports whether slug is already present, ignoring case.
func (a *Assessment) HasItem(slug string) bool {
	for _, it := range a.EquipmentItems {
		if strings.EqualFold(it, slug) {
			return true
		}
	}
	return false
}

// Submission is the wire payload produced from a complete Assessment.
// Field names and shapes match the backend contract: sport is lower-cased,
// injuries is null when the user answered "no", equipment is a one-element
// array of the tier slug, and equipmentItems is present only for the basic
// tier with at least one item.
type Submission struct {
	Sport           string   `json:"sport"`
	Age             int      `json:"age"`
	ExperienceLevel string   `json:"experienceLevel"`
	TrainingDays    string   `json:"trainingDays"`
	Injuries        *string  `json:"injuries"`
	Equipment       []string `json:"equipment"`
	EquipmentItems  []string `json:"equipmentItems,omitempty"`
}

// ToSubmission converts a complete Assessment into its wire payload.
// Callers are responsible for validating the assessment first.
func (a *Assessment) ToSubmission() Submission {
	sub := Submission{
		Sport:           strings.ToLower(string(a.Sport)),
		ExperienceLevel: string(a.Experience),
		TrainingDays:    string(a.Days),
		Equipment:       []string{string(a.Tier)},
	}
	if a.Age != nil {
		sub.Age = *a.Age
	}
	if a.Injuries == InjuryYes {
		v := string(InjuryYes)
		sub.Injuries = &v
	}
	if a.Tier == TierBasic && len(a.EquipmentItems) > 0 {
		sub.EquipmentItems = append([]string(nil), a.EquipmentItems...)
	}
	return sub
}

// Record is a persisted assessment submission.
type Record struct {
	ID         string
	Submission Submission
	CreatedAt  time.Time
}
