package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sbelmont/intake/internal/cli/formatter"
)

// newListCmd creates the "list" command printing stored assessments.
func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List submitted assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.Assessments.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing assessments: %w", err)
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No assessments yet. Run `intake assess` to add one."))
				return nil
			}
			for _, rec := range recs {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecordLine(rec))
			}
			return nil
		},
	}
}

// newShowCmd creates the "show" command printing one assessment in full.
func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Assessments.GetByID(cmd.Context(), args[0])
			if err != nil {
				// Accept the abbreviated IDs that `list` prints.
				recs, listErr := app.Assessments.List(cmd.Context())
				if listErr != nil {
					return fmt.Errorf("loading assessment %s: %w", args[0], err)
				}
				for _, r := range recs {
					if strings.HasPrefix(r.ID, args[0]) {
						rec = r
						break
					}
				}
				if rec == nil {
					return fmt.Errorf("loading assessment %s: %w", args[0], err)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecord(rec))
			return nil
		},
	}
}
