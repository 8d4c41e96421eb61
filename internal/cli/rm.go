package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/combos/internal/prompt"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a combination",
	Long: `Delete a saved combination by name (case-insensitive).

You are asked to confirm unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		set, err := eng.Show(args[0])
		if err != nil {
			return err
		}

		if !rmForce {
			yes, err := prompt.NewHuhPrompter().Confirm("Delete Combination",
				fmt.Sprintf("Are you sure you want to delete '%s'?", set.Name))
			if err != nil {
				return err
			}
			if !yes {
				PrintWarning("Deletion cancelled")
				return nil
			}
		}

		removed, err := eng.Remove(set.Name)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"deleted": removed.Name})
		}

		PrintSection("Delete Combination")
		PrintSuccess(fmt.Sprintf("Deleted combination: %s", removed.Name))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Delete without confirmation")
}
