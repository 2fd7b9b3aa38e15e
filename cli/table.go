package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logic-lang/logicopt/export"
	"github.com/logic-lang/logicopt/runtime/engine"
	"github.com/logic-lang/logicopt/runtime/truthtable"
)

var flagFromCSV string

var tableCmd = &cobra.Command{
	Use:   "table [expression]",
	Short: "Print the truth table of an expression as CSV",
	Long: `table optimises the expression and prints the truth table of the
optimised form as CSV. With --from-csv the direction reverses: a truth
table is read from the file, reconstructed into an expression, and that
expression is optimised.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if flagFromCSV != "" {
			f, err := os.Open(flagFromCSV)
			if err != nil {
				return fmt.Errorf("opening truth table csv: %w", err)
			}
			defer f.Close()

			source, err := export.ReconstructCSV(f)
			if err != nil {
				return err
			}
			result, err := engine.Optimize(source, engine.Options{})
			if err != nil {
				return err
			}
			DisplayResult(out, result, ShouldUseColor(flagNoColor))
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("an expression or --from-csv is required")
		}

		source := strings.Join(args, " ")
		result, err := engine.Optimize(source, engine.Options{})
		if err != nil {
			return err
		}
		optimized, err := parseForExport(result.Optimized)
		if err != nil {
			return err
		}
		table, err := truthtable.Table(optimized, result.Variables)
		if err != nil {
			return err
		}
		return export.WriteCSV(out, result.Variables, table)
	},
}

func init() {
	tableCmd.Flags().StringVar(&flagFromCSV, "from-csv", "", "reconstruct an expression from a truth table csv")
}
