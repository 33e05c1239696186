// internal/scripting/reload.go
package scripting

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce: сколько ждать после последней записи в файл.
const reloadDebounce = 150 * time.Millisecond

// Reloader следит за файлом контроллера и собирает новый Engine после
// каждого изменения. Готовые движки забираются из Updates() потоком
// симуляции; сам Reloader к ним не обращается.
type Reloader struct {
	path    string
	log     *zap.Logger
	watcher *fsnotify.Watcher
	updates chan *Engine
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewReloader starts watching path. The directory is watched so that
// editors replacing the file via rename are noticed too.
func NewReloader(path string, log *zap.Logger) (*Reloader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	r := &Reloader{
		path:    abs,
		log:     log,
		watcher: watcher,
		updates: make(chan *Engine, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go r.run()
	log.Debug("watching lua controller", zap.String("file", abs))
	return r, nil
}

// Updates delivers freshly loaded engines. Only the newest one is kept;
// the receiver owns it and must Close it eventually.
func (r *Reloader) Updates() <-chan *Engine {
	return r.updates
}

// Close stops watching and releases an engine nobody picked up.
func (r *Reloader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.stopCh)
		<-r.doneCh
		err = r.watcher.Close()
		select {
		case e := <-r.updates:
			e.Close()
		default:
		}
	})
	return err
}

func (r *Reloader) run() {
	defer close(r.doneCh)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-r.stopCh:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != r.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			pending = timer.C

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.log.Warn("controller watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			r.reload()
		}
	}
}

func (r *Reloader) reload() {
	e, err := NewEngine(r.path, r.log)
	if err != nil {
		// старый контроллер продолжает работать
		r.log.Warn("controller reload failed", zap.String("file", r.path), zap.Error(err))
		return
	}
	select {
	case old := <-r.updates:
		old.Close()
	default:
	}
	r.updates <- e
	r.log.Info("controller reloaded", zap.String("file", r.path))
}
