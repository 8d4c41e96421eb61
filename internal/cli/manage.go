package cli

import (
	"github.com/spf13/cobra"
)

var manageCmd = &cobra.Command{
	Use:   "manage",
	Short: "Create, edit and delete combinations interactively",
	Long: `Open the combination manager.

Pick Create, Edit or Delete repeatedly until you choose Close. Every change is
saved immediately. Names are unique regardless of case.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		return printOutcome("Manage Combinations", eng.Manage(cmd.Context()))
	},
}
