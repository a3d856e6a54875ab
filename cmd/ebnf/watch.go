package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const watchDebounce = 100 * time.Millisecond

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-check grammar on every change",
		Long: `Check grammar file, then check it again every time it is written,
until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()
			check := func() {
				writeCheckResults(out, a.checkFiles(cmd.Context(), []string{name}, false))
			}

			check()
			e := watchFile(cmd.Context(), name, watchDebounce, a.log, check)
			if e != nil {
				return newCommandError("watch", e)
			}
			return nil
		},
	}
	return cmd
}

// watchFile calls onChange after each write to file name until ctx is done.
// Directory of the file is watched, so that editors replacing the file are handled too.
// Events arriving within debounce interval produce a single call.
func watchFile(ctx context.Context, name string, debounce time.Duration, log *slog.Logger, onChange func()) error {
	w, e := fsnotify.NewWatcher()
	if e != nil {
		return fmt.Errorf("cannot create watcher: %w", e)
	}
	defer w.Close()

	abs, e := filepath.Abs(name)
	if e != nil {
		return e
	}
	if e = w.Add(filepath.Dir(abs)); e != nil {
		return fmt.Errorf("cannot watch %s: %w", name, e)
	}
	log.Info("watching", "file", name)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			log.Debug("file event", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)

		case e, ok := <-w.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			log.Warn("watch error", "error", e)

		case <-timer.C:
			onChange()
		}
	}
}
