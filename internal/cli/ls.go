package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved combinations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		list := eng.List()

		if jsonOutput {
			return outputJSON(list)
		}

		if len(list) == 0 {
			PrintSection("Combinations")
			PrintEmptyState("No combinations saved. Use 'combos manage' to create one.")
			return nil
		}

		PrintSection("Combinations")
		rows := make([][]string, 0, len(list))
		for _, s := range list {
			rows = append(rows, []string{s.Name, strconv.Itoa(s.ItemCount), strconv.Itoa(s.Instances)})
		}
		PrintTable([]string{"Name", "Items", "Instances"}, rows)
		return nil
	},
}
