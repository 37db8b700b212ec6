package keymap

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/robgonnella/keycombo/internal/logger"
)

// Watcher reloads a keymap file whenever it changes on disk
type Watcher struct {
	repo     *FileRepo
	onChange func(*Bindings)
	onError  func(error)
	log      logger.Logger
}

// NewWatcher returns a watcher for the file behind repo. onChange receives
// each successfully compiled reload, onError every load, compile or
// watch error. Either callback may be nil.
func NewWatcher(repo *FileRepo, onChange func(*Bindings), onError func(error)) *Watcher {
	if onChange == nil {
		onChange = func(*Bindings) {}
	}

	if onError == nil {
		onError = func(error) {}
	}

	return &Watcher{
		repo:     repo,
		onChange: onChange,
		onError:  onError,
		log:      logger.New().With("keymap", repo.Path()),
	}
}

// Start compiles the keymap once and then watches it in the background
// until ctx is cancelled. The parent directory is watched so that editors
// replacing the file through a rename are noticed.
func (w *Watcher) Start(ctx context.Context) (*Bindings, error) {
	bindings, err := w.load()

	if err != nil {
		return nil, err
	}

	path, err := filepath.Abs(w.repo.Path())

	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()

	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.watch(ctx, fsw, path)

	return bindings, nil
}

func (w *Watcher) watch(ctx context.Context, fsw *fsnotify.Watcher, path string) {
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-fsw.Events:
			if !ok {
				return
			}

			if filepath.Clean(evt.Name) != path {
				continue
			}

			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}

			bindings, err := w.load()

			if err != nil {
				w.log.Error().Err(err).Msg("failed to reload keymap")
				w.onError(err)
				continue
			}

			w.log.Info().Int("bindings", bindings.Len()).Msg("reloaded keymap")
			w.onChange(bindings)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			w.onError(err)
		}
	}
}

func (w *Watcher) load() (*Bindings, error) {
	km, err := w.repo.Load()

	if err != nil {
		return nil, err
	}

	return Compile(km)
}
