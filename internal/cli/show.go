package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the items of a combination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		set, err := eng.Show(args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(set)
		}

		PrintSection(fmt.Sprintf("Combination: %s", set.Name))
		if len(set.Items) == 0 {
			PrintEmptyState("No items")
			return nil
		}

		rows := make([][]string, 0, len(set.Items))
		for _, item := range set.Items {
			rows = append(rows, []string{
				item.DisplayIdentity(),
				strconv.Itoa(item.Quantity),
				strconv.FormatFloat(item.OffsetX, 'g', -1, 64),
				strconv.FormatFloat(item.OffsetY, 'g', -1, 64),
				item.CatalogItemID,
			})
		}
		PrintTable([]string{"Item", "Qty", "dX", "dY", "Catalog ID"}, rows)
		fmt.Fprintln(stdout)
		PrintLabelValue("Instances per placement", strconv.Itoa(set.TotalQuantity()))
		return nil
	},
}
