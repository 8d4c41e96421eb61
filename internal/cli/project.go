package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/combo"
)

var (
	catalogAddID       string
	catalogAddInactive bool
	elementAddAt       string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the project's catalog items",
}

var catalogLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List catalog items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument()
		if err != nil {
			return err
		}
		defer doc.Close()

		items, err := doc.ListCatalogItems()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(items)
		}

		PrintSection("Catalog")
		if len(items) == 0 {
			PrintEmptyState("No catalog items. Use 'combos catalog add <family> <type>'.")
			return nil
		}
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, []string{it.FamilyName, it.TypeName, strconv.FormatBool(it.Active), it.ID})
		}
		PrintTable([]string{"Family", "Type", "Active", "ID"}, rows)
		return nil
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <family> <type>",
	Short: "Add a catalog item",
	Long: `Add an instantiable family type to the project document.

Items added with --inactive must be activated before their first instance is
created; placement does that automatically.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument()
		if err != nil {
			return err
		}
		defer doc.Close()

		item, err := doc.AddCatalogItem(catalog.Item{
			ID:         catalogAddID,
			FamilyName: args[0],
			TypeName:   args[1],
			Active:     !catalogAddInactive,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(item)
		}
		PrintSuccess(fmt.Sprintf("Added %s (%s)", item.DisplayIdentity(), item.ID))
		return nil
	},
}

var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Manage the project's anchor elements",
}

var elementLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List elements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument()
		if err != nil {
			return err
		}
		defer doc.Close()

		elements, err := doc.ListElements()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(elements)
		}

		PrintSection("Elements")
		if len(elements) == 0 {
			PrintEmptyState("No elements. Use 'combos element add <label> --at x,y'.")
			return nil
		}
		rows := make([][]string, 0, len(elements))
		for _, el := range elements {
			location := "none"
			if el.Location != nil {
				location = el.Location.String()
			}
			rows = append(rows, []string{el.Label, location, el.ID})
		}
		PrintTable([]string{"Label", "Location", "ID"}, rows)
		return nil
	},
}

var elementAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Add an element",
	Long: `Add an element that placements can be anchored on. Without --at the
element has no point location and cannot serve as an anchor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var at *combo.Point
		if elementAddAt != "" {
			p, err := parsePoint(elementAddAt)
			if err != nil {
				return err
			}
			at = p
		}

		doc, err := openDocument()
		if err != nil {
			return err
		}
		defer doc.Close()

		el, err := doc.AddElement(args[0], at)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(el)
		}
		PrintSuccess(fmt.Sprintf("Added element %s (%s)", el, el.ID))
		return nil
	},
}

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List placed instances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument()
		if err != nil {
			return err
		}
		defer doc.Close()

		instances, err := doc.ListInstances()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(instances)
		}

		PrintSection("Instances")
		if len(instances) == 0 {
			PrintEmptyState("No instances placed yet")
			return nil
		}
		rows := make([][]string, 0, len(instances))
		for _, in := range instances {
			rows = append(rows, []string{
				in.FamilyName + " : " + in.TypeName,
				in.Position.String(),
				in.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			})
		}
		PrintTable([]string{"Item", "Position", "Created"}, rows)
		fmt.Fprintln(stdout)
		PrintLabelValue("Total", PrintCount(len(instances), "instance", "instances"))
		return nil
	},
}

func init() {
	catalogAddCmd.Flags().StringVar(&catalogAddID, "id", "", "Stable identifier (generated when empty)")
	catalogAddCmd.Flags().BoolVar(&catalogAddInactive, "inactive", false, "Require activation before first use")
	catalogCmd.AddCommand(catalogLsCmd, catalogAddCmd)

	elementAddCmd.Flags().StringVar(&elementAddAt, "at", "", "Point location as x,y or x,y,z")
	elementCmd.AddCommand(elementLsCmd, elementAddCmd)
}
