// Package cli implements the textparse command line.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

// NewRootCommand builds the textparse command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "textparse",
		Short: "Substitute placeholders in text",
		Long: `textparse replaces delimited placeholders in text with bound values.

A placeholder is *(name)* by default. *(?name defVal="x")* is optional and
falls back to its default when name is unbound.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  10 - Invalid configuration (delimiters, settings, binding files)
  11 - Scan failed (syntax, unterminated placeholder, unbound variable)`,
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(
		newRenderCommand(),
		newBindingsCommand(),
		newPresetsCommand(),
	)
	return root
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err != nil {
		root.PrintErrln("Error:", err)
	}
	return err
}

// newLogger returns a text logger on the command's stderr.
// Verbose enables debug output; otherwise only warnings are shown.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
