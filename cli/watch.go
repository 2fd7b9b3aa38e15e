package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/logic-lang/logicopt/runtime/engine"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-optimise an expression file whenever it changes",
	Long: `watch reads one expression from the file, optimises it, and keeps
watching for writes. A change only produces output when the canonical
fingerprint of the optimised form actually moved, so touching the file or
reformatting whitespace stays quiet.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		useColor := ShouldUseColor(flagNoColor)
		out := cmd.OutOrStdout()

		lastFingerprint, err := optimizeFile(path, out, useColor, "")
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting file watcher: %w", err)
		}
		defer watcher.Close()

		// watch the directory: editors that write-and-rename replace the
		// inode, which a direct file watch loses
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				next, err := optimizeFile(path, out, useColor, lastFingerprint)
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n",
						Colorize("error:", ColorRed, useColor), err)
					continue
				}
				lastFingerprint = next

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n",
					Colorize("watch error:", ColorRed, useColor), err)
			}
		}
	},
}

// optimizeFile runs one optimisation round over the file contents and
// prints the result when the fingerprint moved. It returns the new
// fingerprint.
func optimizeFile(path string, out io.Writer, useColor bool, previous string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return previous, fmt.Errorf("reading %s: %w", path, err)
	}

	source := strings.TrimSpace(string(raw))
	result, err := engine.Optimize(source, engine.Options{})
	if err != nil {
		return previous, err
	}

	fp, err := fingerprintOf(result.Optimized)
	if err != nil {
		return previous, err
	}
	if fp == previous {
		return fp, nil
	}

	_, _ = fmt.Fprintf(out, "%s %s\n",
		Colorize(fmt.Sprintf("%-16s", "Changed:"), ColorYellow, useColor), fp)
	DisplayResult(out, result, useColor)
	return fp, nil
}
