// Package cli implements the logicopt command surface: the default optimise
// command plus table, export, and watch subcommands. The CLI translates
// flags into engine options and selects which Result fields to print; all
// algorithmic work happens behind the engine façade.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logic-lang/logicopt/core/types"
	"github.com/logic-lang/logicopt/runtime/engine"
)

var (
	flagMetrics     bool
	flagTables      bool
	flagAdvanced    bool
	flagNoColor     bool
	flagOptionsFile string
	flagFingerprint bool
)

var rootCmd = &cobra.Command{
	Use:   "logicopt [expression]",
	Short: "Simplify propositional boolean expressions",
	Long: `logicopt simplifies a boolean expression written with & | ! ( ) and the
constants 0 and 1, and reports the simplified form, both normal forms, and
the free-variable set. With --advanced it also recognises XOR and
implication shapes.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}

		source := strings.Join(args, " ")
		result, err := engine.Optimize(source, opts)
		if err != nil {
			return err
		}

		useColor := ShouldUseColor(flagNoColor)
		DisplayResult(cmd.OutOrStdout(), result, useColor)

		if flagFingerprint {
			fp, err := fingerprintOf(result.Optimized)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				Colorize(fmt.Sprintf("%-16s", "Fingerprint:"), ColorCyan, useColor), fp)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagOptionsFile, "options", "", "JSON options document")

	rootCmd.Flags().BoolVar(&flagMetrics, "metrics", false, "report node counts and rule applications")
	rootCmd.Flags().BoolVar(&flagTables, "tables", false, "include truth tables (up to 20 variables)")
	rootCmd.Flags().BoolVar(&flagAdvanced, "advanced", false, "recognise XOR and implication shapes")
	rootCmd.Flags().BoolVar(&flagFingerprint, "fingerprint", false, "print the canonical fingerprint of the optimised form")

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
}

// resolveOptions merges the options document (when given) with explicit
// flags; a flag set on the command line wins over the document.
func resolveOptions(cmd *cobra.Command) (engine.Options, error) {
	opts := engine.Options{
		CollectMetrics:   flagMetrics,
		BuildTruthTables: flagTables,
		EmitAdvanced:     flagAdvanced,
	}
	if flagOptionsFile == "" {
		return opts, nil
	}

	raw, err := os.ReadFile(flagOptionsFile)
	if err != nil {
		return opts, fmt.Errorf("reading options document: %w", err)
	}
	doc, err := types.ParseOptions(raw)
	if err != nil {
		return opts, err
	}

	if !cmd.Flags().Changed("metrics") {
		opts.CollectMetrics = doc.CollectMetrics
	}
	if !cmd.Flags().Changed("tables") {
		opts.BuildTruthTables = doc.BuildTruthTables
	}
	if !cmd.Flags().Changed("advanced") {
		opts.EmitAdvanced = doc.EmitAdvanced
	}
	return opts, nil
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
