package cli

import (
	"github.com/spf13/cobra"

	"github.com/sbelmont/intake/internal/domain"
	"github.com/sbelmont/intake/internal/service"
)

// App holds references to the service interfaces and shared settings used
// by CLI commands.
type App struct {
	Assessments service.AssessmentService

	// Catalog is the injected equipment item catalog shown on the
	// basic-equipment branch.
	Catalog []domain.CatalogItem

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "intake" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "intake",
		Short: "Athlete assessment intake",
	}

	root.AddCommand(
		newAssessCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newVersionCmd(),
	)

	return root
}
