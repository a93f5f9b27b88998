package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sbelmont/intake/internal/domain"
	"github.com/sbelmont/intake/internal/form"
)

// newAssessCmd creates the "assess" command running the intake form.
func newAssessCmd(app *App) *cobra.Command {
	var single bool

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run the athlete assessment form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("assess needs an interactive terminal")
			}

			store := form.NewStore(app.Catalog)
			submitFn := func(ctx context.Context, sub domain.Submission) error {
				_, err := app.Assessments.Submit(ctx, sub)
				return err
			}

			if single {
				return runSingleForm(cmd.Context(), store, submitFn, cmd.OutOrStdout())
			}

			p := tea.NewProgram(newWizardModel(store, submitFn))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&single, "single", false, "ask everything in one form instead of step by step")
	return cmd
}
