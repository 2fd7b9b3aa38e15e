package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logic-lang/logicopt/core/ast"
	"github.com/logic-lang/logicopt/export"
	"github.com/logic-lang/logicopt/runtime/engine"
	"github.com/logic-lang/logicopt/runtime/parser"
	"github.com/logic-lang/logicopt/runtime/truthtable"
)

var flagFormat string

var exportCmd = &cobra.Command{
	Use:   "export [expression]",
	Short: "Encode the optimised expression in an external format",
	Long: `export optimises the expression and encodes the result in the selected
format: dimacs (CNF clauses), blif (DNF cover), verilog, latex, math, or
csv (full truth table).`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := strings.Join(args, " ")
		result, err := engine.Optimize(source, engine.Options{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch flagFormat {
		case export.FormatDIMACS:
			cnf, err := parser.Parse(result.CNF)
			if err != nil {
				return err
			}
			encoded, err := export.DIMACS(cnf)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(out, encoded)

		case export.FormatBLIF:
			dnf, err := parser.Parse(result.DNF)
			if err != nil {
				return err
			}
			encoded, err := export.BLIF(dnf, "expr")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(out, encoded)

		case export.FormatVerilog:
			optimized, err := parser.Parse(result.Optimized)
			if err != nil {
				return err
			}
			encoded, err := export.Verilog(optimized, "expr")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(out, encoded)

		case export.FormatLaTeX:
			optimized, err := parser.Parse(result.Optimized)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, export.LaTeX(optimized))

		case export.FormatMath:
			optimized, err := parser.Parse(result.Optimized)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, export.Math(optimized))

		case export.FormatCSV:
			optimized, err := parser.Parse(result.Optimized)
			if err != nil {
				return err
			}
			table, err := truthtable.Table(optimized, result.Variables)
			if err != nil {
				return err
			}
			return export.WriteCSV(out, result.Variables, table)

		default:
			msg := fmt.Sprintf("unknown format %q", flagFormat)
			if hint := Suggest(flagFormat, export.Formats()); hint != "" {
				msg += fmt.Sprintf(", did you mean %q?", hint)
			}
			return fmt.Errorf("%s (formats: %s)", msg, strings.Join(export.Formats(), ", "))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagFormat, "format", export.FormatDIMACS, "output format")
}

// fingerprintOf parses a printed form and computes its canonical fingerprint
func fingerprintOf(printed string) (string, error) {
	node, err := parser.Parse(printed)
	if err != nil {
		return "", err
	}
	return export.ShortFingerprint(node)
}

// parseForExport reparses a printed form for the table command's truth table
func parseForExport(printed string) (*ast.Node, error) {
	return parser.Parse(printed)
}
