package catalog

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/shade/internal/domain/entity"
)

// Watch reloads paths into cat whenever one of them changes, until ctx is
// done. onReload, if set, runs after each successful reload.
func (l *Loader) Watch(ctx context.Context, cat *Catalog, paths []string, onReload func([]*entity.WidgetClass)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}
	for _, path := range paths {
		if err := w.Add(path); err != nil {
			w.Close()
			return fmt.Errorf("watch %s: %w", path, err)
		}
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
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
					!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				l.log.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("catalog change detected")
				classes, err := l.Load(ctx, paths...)
				if err != nil {
					l.log.Warn().Err(err).Msg("failed to reload catalog")
					continue
				}
				cat.Replace(classes)
				if onReload != nil {
					onReload(classes)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.log.Warn().Err(err).Msg("catalog watcher error")
			}
		}
	}()
	return nil
}
