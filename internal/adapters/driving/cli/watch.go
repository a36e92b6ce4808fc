package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/logger"
)

// watchDebounce coalesces the burst of events a single save produces.
const watchDebounce = 500 * time.Millisecond

var watchOpts runOptions

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-parse a document whenever it changes",
	Long: `Parses the document once, then watches it and parses it again each
time it is written or replaced. Stop with Ctrl+C.

Accepts the same flags as parse.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchOpts.register(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	path := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parse := func() {
		if err := runParse(ctx, cmd, path, &watchOpts); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}

	parse()
	cmd.Printf("Watching %s for changes...\n", path)
	return watchFile(ctx, path, watchDebounce, parse)
}

// watchFile calls onChange after path is written or created, once per
// burst of events separated by less than debounce. It watches the parent
// directory so that editors which save by renaming a temp file are seen.
// It returns when ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching directory %s: %w", filepath.Dir(abs), err)
	}

	// Stopped timer; armed by the first matching event.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logger.Debug("watch: %s", event)
				timer.Reset(debounce)
			}

		case <-timer.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Keep watching; a dropped event only delays the next parse.
			logger.Warn("watch: %v", err)
		}
	}
}
