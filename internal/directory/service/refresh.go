package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/source"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/fsnotify/fsnotify"
)

// Loader produces a fresh copy of the team data.
type Loader interface {
	Load(ctx context.Context) (source.Result, error)
}

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 250 * time.Millisecond

// RefreshService keeps the store's snapshot current. It reloads on a fixed
// interval and, when WatchPaths is set, as soon as one of those files changes.
// A failed reload leaves the previous snapshot in place.
type RefreshService struct {
	Loader     Loader
	Store      store.Store
	Logger     *slog.Logger
	Interval   time.Duration
	WatchPaths []string

	// Now is overridable for tests.
	Now func() time.Time

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewRefreshService creates a refresher with the given interval.
// If interval is 0 or negative, defaults to 5 minutes.
func NewRefreshService(loader Loader, st store.Store, logger *slog.Logger, interval time.Duration) *RefreshService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &RefreshService{
		Loader:   loader,
		Store:    st,
		Logger:   logger,
		Interval: interval,
		Now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh loads the data once and swaps it into the store.
func (s *RefreshService) Refresh(ctx context.Context) error {
	res, err := s.Loader.Load(ctx)
	if err != nil {
		s.Logger.Error("team data refresh failed, keeping previous snapshot", "error", err)
		return err
	}

	snap := store.Snapshot{
		Members:  res.Members,
		Source:   res.Source,
		LoadedAt: s.Now().UTC(),
	}
	if err := s.Store.Replace(ctx, snap); err != nil {
		s.Logger.Error("failed to store team snapshot", "error", err)
		return err
	}

	s.Logger.Info("team data refreshed", "source", res.Source, "members", len(res.Members))
	return nil
}

// Start begins the background worker. It is non-blocking; the first load
// happens immediately on the worker goroutine. Call Stop() to shut it down.
// Start is a no-op once the service has been started or stopped.
func (s *RefreshService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	go s.run()
	s.Logger.Info("refresh service started", "interval", s.Interval, "watch", s.WatchPaths)
}

// Stop shuts the worker down and waits for an in-flight refresh to finish.
// It is safe to call more than once, and before Start.
func (s *RefreshService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	wait := s.started
	s.mu.Unlock()

	if wait {
		<-s.doneCh
	}
	s.Logger.Info("refresh service stopped")
}

func (s *RefreshService) run() {
	defer close(s.doneCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	watcher := s.newWatcher()
	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if watcher != nil {
		defer watcher.Close()
		events = watcher.Events
		watchErrs = watcher.Errors
	}

	// Pending file change; nil until an event arrives.
	var debounce <-chan time.Time

	_ = s.Refresh(ctx)

	for {
		select {
		case <-ticker.C:
			_ = s.Refresh(ctx)
		case ev := <-events:
			if s.isWatched(ev.Name) && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.Logger.Debug("team data file changed", "file", ev.Name, "op", ev.Op.String())
				debounce = time.After(watchDebounce)
			}
		case <-debounce:
			debounce = nil
			_ = s.Refresh(ctx)
		case err := <-watchErrs:
			s.Logger.Warn("file watcher error", "error", err)
		case <-s.stopCh:
			return
		}
	}
}

// newWatcher watches the parent directories of WatchPaths. Editors commonly
// replace files instead of writing them in place, which a watch on the file
// itself would miss.
func (s *RefreshService) newWatcher() *fsnotify.Watcher {
	if len(s.WatchPaths) == 0 {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		s.Logger.Warn("file watching disabled", "error", err)
		return nil
	}

	added := map[string]bool{}
	for _, p := range s.WatchPaths {
		dir := filepath.Dir(p)
		if added[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			s.Logger.Warn("cannot watch data directory", "dir", dir, "error", err)
			continue
		}
		added[dir] = true
	}

	if len(added) == 0 {
		_ = w.Close()
		return nil
	}
	return w
}

func (s *RefreshService) isWatched(name string) bool {
	name = filepath.Clean(name)
	for _, p := range s.WatchPaths {
		if filepath.Clean(p) == name {
			return true
		}
	}
	return false
}
