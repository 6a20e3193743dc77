package api

import (
	"context"
	"os"
	"time"

	"github.com/signalsfoundry/solarsim/core"
	"github.com/signalsfoundry/solarsim/internal/logging"
	"github.com/signalsfoundry/solarsim/internal/observability"
	"github.com/signalsfoundry/solarsim/internal/statecache"
	"github.com/signalsfoundry/solarsim/internal/watch"
)

// Refresher keeps the server's catalog and state cache current. It reloads
// the catalog when the watched file changes and precomputes whole-system
// states into the cache on every simulation tick.
type Refresher struct {
	srv     *Server
	cache   *statecache.Store
	metrics *observability.RefreshCollector
	log     logging.Logger

	catalogPath string
	watcher     *watch.Watcher
}

// NewRefresher builds a Refresher. catalogPath may be empty, in which case
// only the tick-driven precomputation runs.
func NewRefresher(srv *Server, cache *statecache.Store, metrics *observability.RefreshCollector, log logging.Logger, catalogPath string) *Refresher {
	if log == nil {
		log = logging.Noop()
	}
	return &Refresher{
		srv:         srv,
		cache:       cache,
		metrics:     metrics,
		log:         log,
		catalogPath: catalogPath,
	}
}

// Start begins watching the catalog file, if one was configured. The returned
// stop function blocks until the watch loop has exited.
func (r *Refresher) Start(ctx context.Context) (stop func(), err error) {
	if r.catalogPath == "" {
		return func() {}, nil
	}

	w, err := watch.NewWatcher(r.catalogPath)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	r.watcher = w

	go r.watchLoop(ctx)
	return w.Stop, nil
}

func (r *Refresher) watchLoop(ctx context.Context) {
	for change := range r.watcher.Changes {
		if change.Kind == watch.ChangeRemoved {
			r.log.Warn(ctx, "catalog file removed, keeping last good catalog",
				logging.String("path", change.File))
			continue
		}
		r.Reload(ctx)
	}
}

// Reload re-reads the catalog file and swaps it into the server. A catalog
// that fails validation is rejected and the last good one stays in place.
func (r *Refresher) Reload(ctx context.Context) {
	start := time.Now()

	f, err := os.Open(r.catalogPath)
	if err != nil {
		r.fail(ctx, err)
		return
	}
	defer f.Close()

	cat, err := core.LoadCatalogJSON(f)
	if err != nil {
		r.fail(ctx, err)
		return
	}
	if err := r.srv.Swap(ctx, cat); err != nil {
		r.fail(ctx, err)
		return
	}

	if r.metrics != nil {
		r.metrics.ObserveReload(time.Since(start), time.Now())
	}
	r.log.Info(ctx, "catalog reloaded",
		logging.String("path", r.catalogPath),
		logging.Int("bodies", cat.Len()))
}

func (r *Refresher) fail(ctx context.Context, err error) {
	if r.metrics != nil {
		r.metrics.IncReloadFailures()
	}
	r.log.Error(ctx, "catalog reload rejected",
		logging.String("path", r.catalogPath), logging.Err(err))
}

// OnTick precomputes absolute states for every body at the given simulation
// instant and stores them in the cache. Wire it to the time controller as a
// listener.
func (r *Refresher) OnTick(simTime time.Time) {
	if r.cache == nil {
		return
	}
	ctx := context.Background()

	dt := core.EpochOffset(simTime)
	states, err := r.srv.Composer().AllStates(dt)
	if err != nil {
		r.log.Warn(ctx, "tick precomputation failed",
			logging.Float64("epoch_seconds", dt), logging.Err(err))
		return
	}
	if err := r.cache.PutBatch(ctx, dt, states); err != nil {
		r.log.Warn(ctx, "tick cache store failed",
			logging.Float64("epoch_seconds", dt), logging.Err(err))
	}
}
