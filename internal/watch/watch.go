// Package watch re-runs the checkers whenever a Markdown document under the
// skills root changes.
package watch

import (
	"context"
	"crypto/sha256"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

// Watch starts an fsnotify watcher on root and invokes rerun (debounced)
// after each relevant file change, until ctx is cancelled. New directories
// created at runtime are added to the watch list. Writes that leave a file's
// content digest unchanged are ignored.
func Watch(ctx context.Context, root string, logger *slog.Logger, rerun func(context.Context)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watch: started", slog.String("root", root))

	digests := map[string]string{}
	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerCh = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watch: stopped")
			return nil

		case <-timerCh:
			rerun(ctx)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watch: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					schedule()
					continue
				}
			}

			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}

			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				delete(digests, ev.Name)
				schedule()
				continue
			}

			data, readErr := os.ReadFile(ev.Name)
			if readErr != nil {
				continue
			}
			sum := digest(data)
			if digests[ev.Name] == sum {
				continue
			}
			digests[ev.Name] = sum
			logger.Debug("watch: changed", slog.String("path", ev.Name))
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds dir and every subdirectory to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}

func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return string(sum[:])
}
