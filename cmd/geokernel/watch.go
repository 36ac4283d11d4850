package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watch calls run each time path is written or re-created, until ctx is
// done. The parent directory is watched so editors that replace the file on
// save are followed. Failed runs are logged, not returned.
func watch(ctx context.Context, path string, log *zap.Logger, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	log.Info("watching script", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug("script changed", zap.String("op", ev.Op.String()))
			if err := run(); err != nil {
				log.Warn("scenario failed", zap.String("path", target), zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
