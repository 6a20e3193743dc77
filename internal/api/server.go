package api

import (
	"context"
	"net/http"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/solarsim/core"
	"github.com/signalsfoundry/solarsim/internal/logging"
	"github.com/signalsfoundry/solarsim/internal/observability"
	"github.com/signalsfoundry/solarsim/internal/statecache"
	"github.com/signalsfoundry/solarsim/internal/track"
	"github.com/signalsfoundry/solarsim/timectrl"
)

// Server serves the body catalog and derived states over HTTP/JSON. The
// catalog, hierarchy, and composer are swapped together under a lock when the
// underlying catalog file changes.
type Server struct {
	mu   sync.RWMutex
	cat  *core.Catalog
	hier *core.Hierarchy
	comp *core.Composer

	cache   *statecache.Store
	metrics *observability.APICollector
	tracker *track.Tracker
	clock   timectrl.SimClock
	log     logging.Logger
	tracer  trace.Tracer
}

// Options carries the optional collaborators of a Server. Zero values are
// replaced with no-op implementations.
type Options struct {
	Cache   *statecache.Store
	Metrics *observability.APICollector
	Tracker *track.Tracker
	Clock   timectrl.SimClock
	Log     logging.Logger
}

// NewServer builds a Server around a validated catalog.
func NewServer(cat *core.Catalog, opts Options) (*Server, error) {
	hier, err := core.BuildHierarchy(cat)
	if err != nil {
		return nil, err
	}

	log := opts.Log
	if log == nil {
		log = logging.Noop()
	}

	s := &Server{
		cat:     cat,
		hier:    hier,
		comp:    core.NewComposer(cat, hier),
		cache:   opts.Cache,
		metrics: opts.Metrics,
		tracker: opts.Tracker,
		clock:   opts.Clock,
		log:     log,
		tracer:  otel.Tracer("solarsim/api"),
	}
	if s.metrics != nil {
		s.comp.ObserveSolves(s.metrics.ObserveSolverIterations)
	}
	s.publishCatalogGauges()
	return s, nil
}

// Swap replaces the catalog and rebuilds the hierarchy and composer. The
// state cache is reset since previously derived states may no longer hold.
func (s *Server) Swap(ctx context.Context, cat *core.Catalog) error {
	hier, err := core.BuildHierarchy(cat)
	if err != nil {
		return err
	}

	comp := core.NewComposer(cat, hier)
	if s.metrics != nil {
		comp.ObserveSolves(s.metrics.ObserveSolverIterations)
	}

	s.mu.Lock()
	s.cat = cat
	s.hier = hier
	s.comp = comp
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Reset(ctx); err != nil {
			s.log.Warn(ctx, "state cache reset failed", logging.Err(err))
		}
	}
	s.publishCatalogGauges()
	s.log.Info(ctx, "catalog swapped", logging.Int("bodies", cat.Len()))
	return nil
}

// Composer returns the current composer. Callers must not retain it across
// a Swap.
func (s *Server) Composer() *core.Composer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.comp
}

// Catalog returns the current catalog.
func (s *Server) Catalog() *core.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Handler returns the HTTP routing table with metrics middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /v1/bodies", s.route("/v1/bodies", http.HandlerFunc(s.handleBodies)))
	mux.Handle("GET /v1/bodies/{id}", s.route("/v1/bodies/{id}", http.HandlerFunc(s.handleBody)))
	mux.Handle("GET /v1/state", s.route("/v1/state", http.HandlerFunc(s.handleState)))
	mux.Handle("GET /v1/kernels", s.route("/v1/kernels", http.HandlerFunc(s.handleKernels)))
	if s.tracker != nil {
		mux.Handle("GET /v1/spacecraft", s.route("/v1/spacecraft", http.HandlerFunc(s.handleSpacecraftList)))
		mux.Handle("GET /v1/spacecraft/{id}/state", s.route("/v1/spacecraft/{id}/state", http.HandlerFunc(s.handleSpacecraftState)))
	}
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	return mux
}

func (s *Server) route(name string, h http.Handler) http.Handler {
	if s.metrics == nil {
		return h
	}
	return s.metrics.Middleware(name, h)
}

func (s *Server) publishCatalogGauges() {
	if s.metrics == nil {
		return
	}
	s.mu.RLock()
	cat := s.cat
	s.mu.RUnlock()

	streamed := 0
	for _, b := range cat.All() {
		if b.Streamed {
			streamed++
		}
	}
	s.metrics.SetCatalogCounts(cat.Len(), streamed, len(core.RequiredKernels()))
}
