package manifest

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the manifest at path whenever it changes on disk and
// invokes onChange with the freshly parsed Manifest. It returns
// immediately; the watch loop runs until ctx is done. A reload error is
// logged and skipped rather than propagated, since a transient partial
// write should not tear down a long-running host.
func Watch(ctx context.Context, path string, onChange func(*Manifest)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(path); err != nil {
		_ = w.Close()
		return err
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				m, err := Load(path)
				if err != nil {
					slog.Debug("manifest reload failed", "path", path, "err", err)
					continue
				}
				onChange(m)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Debug("manifest watch error", "path", path, "err", err)
			}
		}
	}()

	return nil
}
