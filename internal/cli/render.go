package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/randalmurphal/textparser/pkg/textparser"
	"github.com/randalmurphal/textparser/pkg/textparser/bindings"
	"github.com/randalmurphal/textparser/pkg/textparser/config"
	"github.com/randalmurphal/textparser/pkg/textparser/observability"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	start      string
	end        string
	preset     string
	strict     bool
	configFile string
	files      []string
	vars       []string
	set        string
	output     string
	watch      bool
	store      storeFlags
}

func newRenderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render placeholders in FILE (or stdin) to stdout",
		Long: `Render replaces every placeholder in FILE, or stdin when FILE is "-"
or omitted, and writes the result to stdout or --output.

Settings are layered: --config file, then TEXTPARSE_* environment
variables, then flags. Bindings are layered the same way: the stored
--set, then binding files, then config vars, then --var flags.`,
		Example: `  textparse render --var name=Ann greeting.txt
  textparse render --preset mustache --bindings values.yaml page.html
  echo 'Hi *(?name defVal="there")*' | textparse render`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			if f.watch && input == "-" {
				return fmt.Errorf("%w: --watch needs a FILE argument", errUsage)
			}

			settings, err := f.settings()
			if err != nil {
				return err
			}
			// Fail fast on bad markers rather than once per watch event
			if _, err := settings.Delimiters(); err != nil {
				return err
			}
			logger := newLogger(cmd)

			if f.watch {
				return watchAndRender(cmd.Context(), cmd, &f, settings, input, logger)
			}
			return renderOnce(cmd.Context(), cmd, &f, settings, input, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.start, "start", "", "Start marker (requires --end)")
	flags.StringVar(&f.end, "end", "", "End marker (requires --start)")
	flags.StringVar(&f.preset, "preset", "", "Named delimiter preset (see 'textparse presets')")
	flags.BoolVar(&f.strict, "strict", false, "Reject a start marker inside a placeholder")
	flags.StringVarP(&f.configFile, "config", "c", "", "Settings file (.yaml, .yml, .json)")
	flags.StringArrayVarP(&f.files, "bindings", "b", nil, "Binding file (.yaml, .yml, .json, .env); repeatable")
	flags.StringArrayVar(&f.vars, "var", nil, "Inline binding NAME=VALUE; repeatable")
	flags.StringVar(&f.set, "set", "", "Stored binding set to use")
	flags.StringVarP(&f.output, "output", "o", "", "Write to this file instead of stdout")
	flags.BoolVarP(&f.watch, "watch", "w", false, "Re-render whenever FILE or a binding file changes")
	f.store.register(cmd, defaultStorePath)

	return cmd
}

// settings layers the config file, environment and flags.
func (f *renderFlags) settings() (config.Settings, error) {
	var s config.Settings
	if f.configFile != "" {
		cfg, err := config.FromFile(f.configFile)
		if err != nil {
			return config.Settings{}, fmt.Errorf("%w: %v", textparser.ErrConfig, err)
		}
		if err := config.Validate(cfg); err != nil {
			return config.Settings{}, fmt.Errorf("%w: %s: %v", textparser.ErrConfig, f.configFile, err)
		}
		s = config.SettingsFrom(cfg)
	}

	env, err := config.FromEnv()
	if err != nil {
		return config.Settings{}, fmt.Errorf("%w: %v", textparser.ErrConfig, err)
	}

	vars, err := parseVars(f.vars)
	if err != nil {
		return config.Settings{}, err
	}

	return s.Merge(env).Merge(config.Settings{
		Start:        f.start,
		End:          f.end,
		Preset:       f.preset,
		Strict:       f.strict,
		BindingFiles: f.files,
		Vars:         vars,
	}), nil
}

// parseVars turns NAME=VALUE pairs into a map. VALUE may be empty.
func parseVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: --var %q must be NAME=VALUE", errUsage, pair)
		}
		vars[name] = value
	}
	return vars, nil
}

// loadBindings assembles the bindings for one render.
func (f *renderFlags) loadBindings(ctx context.Context, s config.Settings) (textparser.Bindings, error) {
	b := make(textparser.Bindings)

	if f.set != "" {
		store, closeStore, err := f.store.open()
		if err != nil {
			return nil, err
		}
		stored, err := store.Load(ctx, f.set)
		closeStore()
		if err != nil {
			return nil, fmt.Errorf("load set %q: %w", f.set, err)
		}
		b = b.Merge(stored)
	}

	files, err := bindings.LoadFiles(s.BindingFiles...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", textparser.ErrConfig, err)
	}
	return b.Merge(files).Merge(s.Vars), nil
}

func readInput(cmd *cobra.Command, input string) (string, error) {
	var (
		data []byte
		err  error
	)
	if input == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func writeOutput(cmd *cobra.Command, path, out string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// renderOnce reads, scans and writes a single time.
func renderOnce(ctx context.Context, cmd *cobra.Command, f *renderFlags, s config.Settings, input string, logger *slog.Logger) error {
	d, err := s.Delimiters()
	if err != nil {
		return err
	}

	text, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	b, err := f.loadBindings(ctx, s)
	if err != nil {
		return err
	}

	opts := append(s.ParserOptions(), textparser.WithLogger(logger))
	out, err := textparser.NewParser(d, opts...).Parse(ctx, text, b)
	if err != nil {
		observability.LogScanError(logger, textparser.KindOf(err).String(), err)
		return err
	}
	return writeOutput(cmd, f.output, out)
}
