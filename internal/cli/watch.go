package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/randalmurphal/textparser/pkg/textparser/config"
	"github.com/spf13/cobra"
)

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// watchAndRender renders once, then again after every change to the input
// or a binding file, until ctx is cancelled. Render failures are logged
// and do not stop the watch.
func watchAndRender(ctx context.Context, cmd *cobra.Command, f *renderFlags, s config.Settings, input string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories so atomic rename-on-save is seen
	watched := make(map[string]bool)
	for _, path := range append([]string{input}, s.BindingFiles...) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	render := func() {
		if err := renderOnce(ctx, cmd, f, s, input, logger); err != nil {
			cmd.PrintErrln("Error:", err)
			return
		}
		logger.Debug("rendered", "input", input)
	}
	render()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			pending = time.After(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-pending:
			pending = nil
			render()
		}
	}
}
