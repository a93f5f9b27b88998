package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sbelmont/intake/internal/cli/formatter"
	"github.com/sbelmont/intake/internal/domain"
	"github.com/sbelmont/intake/internal/form"
)

// submitResultMsg carries the outcome of the async submit callback.
type submitResultMsg struct {
	err error
}

// wizardModel drives the six-step assessment wizard. Navigation and
// validation live in form.Wizard; this model renders the active step as a
// huh form, commits completed steps back into the store, and runs the
// submission lifecycle with a spinner.
type wizardModel struct {
	wizard    *form.Wizard
	submitter *form.Submitter
	submitFn  form.SubmitFunc
	payload   domain.Submission

	active *huh.Form
	binds  stepBinds
	spin   spinner.Model

	width    int
	quitting bool
}

func newWizardModel(store *form.Store, submitFn form.SubmitFunc) *wizardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	m := &wizardModel{
		wizard:    form.NewWizard(store),
		submitter: form.NewSubmitter(store, submitFn),
		submitFn:  submitFn,
		spin:      sp,
	}
	m.active = m.buildStepForm()
	return m
}

func (m *wizardModel) Init() tea.Cmd {
	return m.active.Init()
}

// buildStepForm creates the huh form for the wizard's active step,
// seeding the bound values from the store so back navigation shows what
// was already entered.
func (m *wizardModel) buildStepForm() *huh.Form {
	st := m.wizard.Store()
	d := st.Data()

	switch m.wizard.Active() {
	case form.StepSport:
		m.binds.sport = string(d.Sport)
		return stepSportForm(&m.binds)
	case form.StepAge:
		if d.Age != nil {
			m.binds.age = strconv.Itoa(*d.Age)
		}
		return stepAgeForm(&m.binds)
	case form.StepExperience:
		m.binds.exp = string(d.Experience)
		return stepExperienceForm(&m.binds)
	case form.StepDays:
		m.binds.days = string(d.Days)
		return stepDaysForm(&m.binds)
	case form.StepInjuries:
		m.binds.injury = string(d.Injuries)
		return stepInjuryForm(&m.binds)
	default:
		m.binds.tier = string(d.Tier)
		m.binds.items = nil
		for _, it := range st.Catalog() {
			if d.HasItem(it.Slug) {
				m.binds.items = append(m.binds.items, it.Slug)
			}
		}
		m.binds.custom = ""
		return stepEquipmentForm(&m.binds, st.Catalog())
	}
}

// commitStep writes the completed step's bound values into the store
// through the field handlers.
func (m *wizardModel) commitStep() {
	st := m.wizard.Store()

	switch m.wizard.Active() {
	case form.StepSport:
		st.OnSportSelect(domain.Sport(m.binds.sport))
	case form.StepAge:
		st.OnAgeChange(m.binds.age)
		st.OnAgeBlur()
	case form.StepExperience:
		st.OnExperienceChange(domain.ExperienceLevel(m.binds.exp))
	case form.StepDays:
		st.OnTrainingDaysSelect(domain.TrainingDays(m.binds.days))
	case form.StepInjuries:
		st.OnInjuryChange(domain.InjuryAnswer(m.binds.injury))
	case form.StepEquipment:
		m.commitEquipment()
	}
}

// commitEquipment reconciles the bound tier, catalog selection, and
// custom entries with the equipment engine. SelectTier toggles-to-clear
// on reselection, so it only fires when the tier actually changed.
func (m *wizardModel) commitEquipment() {
	st := m.wizard.Store()
	tier := domain.EquipmentTier(m.binds.tier)

	if st.Data().Tier != tier {
		st.SelectTier(tier)
	}
	if tier != domain.TierBasic {
		return
	}

	selected := make(map[string]bool, len(m.binds.items))
	for _, slug := range m.binds.items {
		selected[slug] = true
	}
	for _, it := range st.Catalog() {
		if selected[it.Slug] != st.Data().HasItem(it.Slug) {
			st.ToggleItem(it.Slug)
		}
	}

	for _, part := range strings.Split(m.binds.custom, ",") {
		st.SetItemDraft(part)
		st.AddCustomItem()
	}
	m.binds.custom = ""
}

// beginSubmit freezes the payload and launches the async callback.
func (m *wizardModel) beginSubmit() tea.Cmd {
	payload, ok := m.submitter.Begin()
	if !ok {
		// Final step incomplete after all; stay on it.
		m.active = m.buildStepForm()
		return m.active.Init()
	}
	m.payload = payload

	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			return submitResultMsg{err: m.submitFn(context.Background(), payload)}
		},
	)
}

func (m *wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case submitResultMsg:
		m.submitter.Finish(msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.submitter.State() == form.SubmitInFlight {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.submitter.State() {
		case form.SubmitInFlight:
			// Submit control disabled while in flight.
			return m, nil
		case form.SubmitSucceeded:
			m.quitting = true
			return m, tea.Quit
		case form.SubmitFailed:
			switch {
			case msg.Type == tea.KeyEsc:
				m.quitting = true
				return m, tea.Quit
			case msg.Type == tea.KeyEnter || string(msg.Runes) == "r":
				return m, m.beginSubmit()
			}
			return m, nil
		}

		// Esc steps backward; on the first step it cancels the wizard.
		if msg.Type == tea.KeyEsc {
			if !m.wizard.Back() {
				m.quitting = true
				return m, tea.Quit
			}
			m.active = m.buildStepForm()
			return m, m.active.Init()
		}
	}

	if m.submitter.State() != form.SubmitIdle {
		return m, nil
	}

	updated, cmd := m.active.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.active = f
	}

	if m.active.State == huh.StateCompleted {
		m.commitStep()
		if m.wizard.OnLastStep() {
			return m, m.beginSubmit()
		}
		if m.wizard.Next() {
			m.active = m.buildStepForm()
			return m, tea.Batch(cmd, m.active.Init())
		}
		// Gated: rebuild the current step.
		m.active = m.buildStepForm()
		return m, tea.Batch(cmd, m.active.Init())
	}

	return m, cmd
}

func (m *wizardModel) View() string {
	if m.quitting && m.submitter.State() != form.SubmitSucceeded {
		return ""
	}

	switch m.submitter.State() {
	case form.SubmitInFlight:
		return fmt.Sprintf("\n  %s Saving your assessment...\n", m.spin.View())

	case form.SubmitSucceeded:
		var b strings.Builder
		b.WriteString("\n  " + formatter.StyleGreen.Render("✔") + " " +
			formatter.Bold("Assessment saved. Thank you!") + "\n\n")
		b.WriteString(formatter.FormatSubmission(m.payload))
		b.WriteString("\n  " + formatter.Dim("Press any key to exit.") + "\n")
		return b.String()

	case form.SubmitFailed:
		var b strings.Builder
		b.WriteString("\n  " + formatter.StyleRed.Render("✘ "+m.submitter.ErrorMessage()) + "\n\n")
		b.WriteString(formatter.FormatSubmission(m.payload))
		b.WriteString("\n  " + formatter.Dim("Press r to retry, esc to quit. Your answers are kept.") + "\n")
		return b.String()
	}

	var b strings.Builder
	b.WriteString("\n" + m.headerView() + "\n\n")
	b.WriteString(m.active.View())
	b.WriteString("\n" + formatter.Dim("enter continue · esc back · ctrl+c quit") + "\n")
	return b.String()
}

// headerView renders the step title and a completion trail.
func (m *wizardModel) headerView() string {
	active := m.wizard.Active()
	title := fmt.Sprintf("Athlete Assessment — Step %d of %d: %s",
		int(active)+1, form.StepCount, active.Title())

	dots := make([]string, 0, form.StepCount)
	for i := form.Step(0); i < form.StepCount; i++ {
		switch {
		case i == active:
			dots = append(dots, formatter.StyleHeader.Render("●"))
		case m.wizard.Completed(i):
			dots = append(dots, formatter.StyleGreen.Render("●"))
		default:
			dots = append(dots, formatter.Dim("○"))
		}
	}
	return "  " + formatter.Header(title) + "\n  " + strings.Join(dots, " ")
}
