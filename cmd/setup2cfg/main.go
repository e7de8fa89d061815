// Package main provides the CLI entrypoint for setup2cfg.
//
// setup2cfg reads a setup.py, finds its setup() call without executing it,
// and writes the equivalent declarative configuration to stdout. Constructs
// that have no declarative form are reported on stderr, one per line, so the
// converted document stays machine-parseable.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"setup2cfg/internal/convert"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "***", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		input   string
		format  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "setup2cfg",
		Short: "Convert an imperative setup.py into declarative configuration",
		Long: `setup2cfg converts a setup.py build descriptor into setup.cfg (or a
pyproject.toml [project] table) by interpreting the setup() call as data,
never by running it. Arguments whose values require execution are reported
on stderr and left out of the converted document.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			source, err := readInput(input)
			if err != nil {
				return err
			}

			res, err := convert.Run(cmd.Context(), source, convert.Options{Format: format})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), res.Document)

			for _, d := range res.Diagnostics {
				fmt.Fprintln(cmd.ErrOrStderr(), "***", d)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to setup.py (default: stdin)")
	cmd.Flags().StringVar(&format, "format", convert.FormatCfg, "output format: setup.cfg or pyproject.toml")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging on stderr")

	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}
