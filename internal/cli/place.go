package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/combos/internal/engine"
)

var (
	placeAnchor string
	placeAt     string
	placeDryRun bool
)

var placeCmd = &cobra.Command{
	Use:   "place [name]",
	Short: "Place a combination into the project document",
	Long: `Place every item of a combination at an anchor.

Without a name you are asked to pick a combination. The anchor is the point
location of an element (--anchor, or picked interactively) or an explicit
point given with --at x,y[,z]. Each item is placed at anchor + offset, once
per unit of quantity.

Items whose catalog entry no longer exists are reported and skipped; the
rest of the combination is still placed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := engine.PlaceRequest{
			AnchorElementID: placeAnchor,
			DryRun:          placeDryRun,
		}
		if len(args) == 1 {
			req.Name = args[0]
		}
		if placeAt != "" {
			p, err := parsePoint(placeAt)
			if err != nil {
				return err
			}
			req.Anchor = p
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		title := "Place Combination"
		if placeDryRun {
			title = "Dry Run: Place Combination"
		}
		return printOutcome(title, eng.Place(cmd.Context(), req))
	},
}

func init() {
	placeCmd.Flags().StringVar(&placeAnchor, "anchor", "", "Element id whose point location anchors the placement")
	placeCmd.Flags().StringVar(&placeAt, "at", "", "Explicit anchor point as x,y or x,y,z")
	placeCmd.Flags().BoolVar(&placeDryRun, "dry-run", false, "Show the placement plan without creating instances")
	placeCmd.MarkFlagsMutuallyExclusive("anchor", "at")
}
