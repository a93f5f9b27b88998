package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/sbelmont/intake/internal/domain"
	"github.com/sbelmont/intake/internal/form"
)

// stepBinds holds the huh-bound values for the active step. Values are
// copied out of the form store when a step is (re)built and committed back
// through the store handlers when the step completes, so the store stays
// the single source of truth across back/forward traversal.
type stepBinds struct {
	sport  string
	age    string
	exp    string
	days   string
	injury string
	tier   string
	items  []string
	custom string
}

// validateAgeInput adapts the core age validator to huh's string inputs.
func validateAgeInput(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("%s", form.MsgAgeRequired)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("%s", form.MsgAgeInvalid)
	}
	if msg := form.ValidateAge(&n); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func sportOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Football", string(domain.SportFootball)),
		huh.NewOption("Cricket", string(domain.SportCricket)),
	}
}

func experienceOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Beginner — new to structured training", string(domain.ExperienceBeginner)),
		huh.NewOption("Intermediate — training for a year or more", string(domain.ExperienceIntermediate)),
		huh.NewOption("Advanced — competing regularly", string(domain.ExperienceAdvanced)),
	}
}

func trainingDayOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("2-3 days a week", string(domain.TrainingDays2to3)),
		huh.NewOption("4-5 days a week", string(domain.TrainingDays4to5)),
		huh.NewOption("6-7 days a week", string(domain.TrainingDays6to7)),
	}
}

func injuryOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("No", string(domain.InjuryNo)),
		huh.NewOption("Yes", string(domain.InjuryYes)),
	}
}

func tierOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("No equipment — bodyweight only", string(domain.TierNoEquipment)),
		huh.NewOption("Basic equipment — a few items at home", string(domain.TierBasic)),
		huh.NewOption("Full gym access", string(domain.TierFullGym)),
	}
}

func catalogOptions(catalog []domain.CatalogItem) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(catalog))
	for _, it := range catalog {
		options = append(options, huh.NewOption(it.Label, it.Slug))
	}
	return options
}

// stepSportForm builds the sport selection form.
func stepSportForm(b *stepBinds) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which sport do you play?").
				Options(sportOptions()...).
				Value(&b.sport),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

// stepAgeForm builds the age entry form. Validation surfaces the same
// messages the core validator produces.
func stepAgeForm(b *stepBinds) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How old are you?").
				Placeholder("25").
				Value(&b.age).
				Validate(validateAgeInput),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

// stepExperienceForm builds the experience level form.
func stepExperienceForm(b *stepBinds) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What is your experience level?").
				Options(experienceOptions()...).
				Value(&b.exp),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

// stepDaysForm builds the training-days form.
func stepDaysForm(b *stepBinds) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How many days a week can you train?").
				Options(trainingDayOptions()...).
				Value(&b.days),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

// stepInjuryForm builds the injury-history form.
func stepInjuryForm(b *stepBinds) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Any current or past injuries?").
				Options(injuryOptions()...).
				Value(&b.injury),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

// stepEquipmentForm builds the equipment step: an exclusive tier choice,
// and, only when the basic tier is chosen, the item multi-select plus a
// free-text entry for items outside the catalog.
func stepEquipmentForm(b *stepBinds, catalog []domain.CatalogItem) *huh.Form {
	hideItems := func() bool { return b.tier != string(domain.TierBasic) }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What equipment do you have access to?").
				Options(tierOptions()...).
				Value(&b.tier),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which items do you have?").
				Options(catalogOptions(catalog)...).
				Value(&b.items),
		).WithHideFunc(hideItems),
		huh.NewGroup(
			huh.NewInput().
				Title("Anything else? (comma separated, optional)").
				Placeholder("cable machine, rowing machine").
				Value(&b.custom).
				Validate(func(string) error {
					if len(b.items) == 0 && strings.TrimSpace(b.custom) == "" {
						return fmt.Errorf("pick at least one item or add your own")
					}
					return nil
				}),
		).WithHideFunc(hideItems),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}
