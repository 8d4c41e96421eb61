package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/combos/internal/engine"
)

var (
	exportOutput  string
	importReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export combinations as YAML",
	Long: `Write every saved combination as a YAML document, to stdout or to the
file given with --output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, rt, err := newEngine()
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return eng.Export(stdout)
		}

		var buf bytes.Buffer
		if err := eng.Export(&buf); err != nil {
			return err
		}
		if err := rt.fs.AtomicWrite(exportOutput, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}

		PrintSuccess(fmt.Sprintf("Exported %s to %s", PrintCount(len(eng.List()), "combination", "combinations"), exportOutput))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import combinations from a YAML file",
	Long: `Read combinations from a YAML document written by 'combos export'.

Imported combinations are added to the saved ones; a name that is already
taken fails the whole import. With --replace the saved combinations are
discarded first. Nothing is written unless every combination is valid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		result, err := eng.Import(f, engine.ImportRequest{Replace: importReplace})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Import Combinations")
		PrintSuccess(fmt.Sprintf("Imported %s", PrintCount(result.Imported, "combination", "combinations")))
		PrintLabelValue("Saved combinations", fmt.Sprintf("%d", result.Total))
		if result.Replaced {
			PrintWarning("Previous combinations were replaced")
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Replace saved combinations instead of merging")
}
