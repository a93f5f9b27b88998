package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/sbelmont/intake/internal/cli/formatter"
	"github.com/sbelmont/intake/internal/domain"
	"github.com/sbelmont/intake/internal/form"
)

// buildSingleForm builds the flat variant: every field group in one huh
// form, submitted at the end. The equipment item groups stay hidden until
// the basic tier is chosen, mirroring the wizard's branching.
func buildSingleForm(b *stepBinds, catalog []domain.CatalogItem) *huh.Form {
	hideItems := func() bool { return b.tier != string(domain.TierBasic) }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which sport do you play?").
				Options(sportOptions()...).
				Value(&b.sport),
			huh.NewInput().
				Title("How old are you?").
				Placeholder("25").
				Value(&b.age).
				Validate(validateAgeInput),
			huh.NewSelect[string]().
				Title("What is your experience level?").
				Options(experienceOptions()...).
				Value(&b.exp),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How many days a week can you train?").
				Options(trainingDayOptions()...).
				Value(&b.days),
			huh.NewSelect[string]().
				Title("Any current or past injuries?").
				Options(injuryOptions()...).
				Value(&b.injury),
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

// commitSingleForm writes all bound values into the store at once.
func commitSingleForm(st *form.Store, b *stepBinds) {
	st.OnSportSelect(domain.Sport(b.sport))
	st.OnAgeChange(b.age)
	st.OnAgeBlur()
	st.OnExperienceChange(domain.ExperienceLevel(b.exp))
	st.OnTrainingDaysSelect(domain.TrainingDays(b.days))
	st.OnInjuryChange(domain.InjuryAnswer(b.injury))

	st.SelectTier(domain.EquipmentTier(b.tier))
	if domain.EquipmentTier(b.tier) == domain.TierBasic {
		for _, slug := range b.items {
			st.ToggleItem(slug)
		}
		for _, part := range strings.Split(b.custom, ",") {
			st.SetItemDraft(part)
			st.AddCustomItem()
		}
	}
}

// runSingleForm runs the flat form to completion, then drives the
// submission lifecycle inline: on failure the user may retry in place
// with all answers preserved.
func runSingleForm(ctx context.Context, store *form.Store, submitFn form.SubmitFunc, out io.Writer) error {
	var binds stepBinds
	if err := buildSingleForm(&binds, store.Catalog()).Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Fprintln(out, formatter.Dim("Cancelled."))
			return nil
		}
		return err
	}

	commitSingleForm(store, &binds)
	submitter := form.NewSubmitter(store, submitFn)

	for {
		switch submitter.Submit(ctx) {
		case form.SubmitSucceeded:
			fmt.Fprintf(out, "\n%s %s\n\n%s",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold("Assessment saved. Thank you!"),
				formatter.FormatSubmission(store.Data().ToSubmission()))
			return nil

		case form.SubmitFailed:
			fmt.Fprintf(out, "\n%s\n", formatter.StyleRed.Render("✘ "+submitter.ErrorMessage()))

			retry := true
			confirm := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Try again?").
						Affirmative("Retry").
						Negative("Quit").
						Value(&retry),
				),
			).WithTheme(intakeHuhTheme()).WithShowHelp(false)
			if err := confirm.Run(); err != nil || !retry {
				return nil
			}

		default:
			// Submission was not permitted; nothing sensible to retry.
			return fmt.Errorf("assessment is incomplete")
		}
	}
}
