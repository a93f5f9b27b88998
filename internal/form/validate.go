// Package form implements the assessment intake state machine: the field
// store, the equipment selection engine, the six-step wizard controller,
// and the submission lifecycle. It holds no UI and no I/O beyond the
// injected submit callback, so the whole package is testable in isolation.
package form

const (
	// MinAge and MaxAge bound the accepted age range, inclusive.
	MinAge = 13
	MaxAge = 100
)

// User-facing validation messages.
const (
	MsgAgeRequired = "Age is required"
	MsgAgeTooYoung = "You must be at least 13 years old to use this service"
	MsgAgeInvalid  = "Please enter a valid age"
)

// ValidateAge checks a candidate age and returns a user-facing message,
// or "" when the value is acceptable. A nil or zero age counts as missing.
func ValidateAge(age *int) string {
	if age == nil || *age == 0 {
		return MsgAgeRequired
	}
	if *age < MinAge {
		return MsgAgeTooYoung
	}
	if *age > MaxAge {
		return MsgAgeInvalid
	}
	return ""
}
