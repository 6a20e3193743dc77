package api

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/signalsfoundry/solarsim/core"
	"github.com/signalsfoundry/solarsim/internal/observability"
	"github.com/signalsfoundry/solarsim/internal/statecache"
)

func testServer(t *testing.T, opts Options) *Server {
	t.Helper()
	cat, err := core.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	srv, err := NewServer(cat, opts)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHandleBodies(t *testing.T) {
	srv := testServer(t, Options{})
	rr := get(t, srv.Handler(), "/v1/bodies")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var views []bodyView
	if err := json.Unmarshal(rr.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 47 {
		t.Fatalf("got %d bodies, want 47", len(views))
	}
	if views[0].ID != 0 {
		t.Fatalf("listing not sorted by id, first = %d", views[0].ID)
	}
}

func TestHandleBody(t *testing.T) {
	srv := testServer(t, Options{})
	h := srv.Handler()

	rr := get(t, h, "/v1/bodies/301")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var view bodyView
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Name != "Moon" {
		t.Fatalf("body 301 name = %q", view.Name)
	}
	if view.Orbit == nil || view.GM == nil || view.J2 == nil {
		t.Fatalf("optional fields dropped: %+v", view)
	}

	if rr := get(t, h, "/v1/bodies/12345"); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown body status = %d", rr.Code)
	}
	if rr := get(t, h, "/v1/bodies/moon"); rr.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id status = %d", rr.Code)
	}
}

func TestHandleState(t *testing.T) {
	srv := testServer(t, Options{})
	h := srv.Handler()

	rr := get(t, h, "/v1/state?body=3&epoch=86400")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var view stateView
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Body != 3 || view.EpochSeconds != 86400 {
		t.Fatalf("echoed query = %+v", view)
	}
	if view.Frame != core.DefaultFrame {
		t.Fatalf("frame = %q", view.Frame)
	}
	r := math.Sqrt(view.Position[0]*view.Position[0] +
		view.Position[1]*view.Position[1] +
		view.Position[2]*view.Position[2])
	if r < 1.4e8 || r > 1.6e8 {
		t.Fatalf("Earth barycenter distance %v km out of range", r)
	}

	// RFC 3339 epochs resolve through the reference epoch.
	rr = get(t, h, "/v1/state?body=3&epoch=2025-05-12T00:00:00Z")
	if rr.Code != http.StatusOK {
		t.Fatalf("RFC 3339 epoch status = %d, body %s", rr.Code, rr.Body.String())
	}
	var byTime stateView
	if err := json.Unmarshal(rr.Body.Bytes(), &byTime); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if byTime.EpochSeconds != 86400 {
		t.Fatalf("RFC 3339 epoch offset = %v, want 86400", byTime.EpochSeconds)
	}
	if byTime.Position != view.Position {
		t.Fatalf("identical epochs disagree: %v vs %v", byTime.Position, view.Position)
	}
}

func TestHandleStateErrors(t *testing.T) {
	srv := testServer(t, Options{})
	h := srv.Handler()

	if rr := get(t, h, "/v1/state?epoch=0"); rr.Code != http.StatusBadRequest {
		t.Fatalf("missing body status = %d", rr.Code)
	}
	if rr := get(t, h, "/v1/state?body=399&epoch=yesterday"); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad epoch status = %d", rr.Code)
	}
	if rr := get(t, h, "/v1/state?body=12345&epoch=0"); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown body status = %d", rr.Code)
	}
}

func TestHandleKernels(t *testing.T) {
	srv := testServer(t, Options{})
	rr := get(t, srv.Handler(), "/v1/kernels")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var view kernelsView
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(view.Kernels) != 8 {
		t.Fatalf("got %d kernels, want 8", len(view.Kernels))
	}
	if view.Kernels[0] != "naif0013.tls" {
		t.Fatalf("first kernel = %q", view.Kernels[0])
	}
}

func TestStateUsesCache(t *testing.T) {
	ctx := context.Background()
	cache, err := statecache.Open(ctx, filepath.Join(t.TempDir(), "states.db"))
	if err != nil {
		t.Fatalf("statecache.Open: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewAPICollector(reg)
	if err != nil {
		t.Fatalf("NewAPICollector: %v", err)
	}

	srv := testServer(t, Options{Cache: cache, Metrics: metrics})
	h := srv.Handler()

	first := get(t, h, "/v1/state?body=499&epoch=3600")
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}
	n, err := cache.Len(ctx)
	if err != nil {
		t.Fatalf("cache.Len: %v", err)
	}
	if n != 1 {
		t.Fatalf("cache entries after miss = %d, want 1", n)
	}

	second := get(t, h, "/v1/state?body=499&epoch=3600")
	if second.Code != http.StatusOK {
		t.Fatalf("second status = %d", second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached answer differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestSwapRejectsBadCatalogAndKeepsServing(t *testing.T) {
	srv := testServer(t, Options{})

	// A catalog with an unreachable pair fails hierarchy construction.
	records := core.DefaultBodies()
	five, six := -1, -1
	for i := range records {
		switch records[i].ID {
		case 5:
			five = i
		case 6:
			six = i
		}
	}
	records[five].Parent = &records[six].ID
	records[six].Parent = &records[five].ID
	cat, err := core.LoadCatalog(records)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if err := srv.Swap(context.Background(), cat); err == nil {
		t.Fatal("expected Swap to reject unreachable hierarchy")
	}

	if rr := get(t, srv.Handler(), "/v1/bodies/399"); rr.Code != http.StatusOK {
		t.Fatalf("server broken after rejected swap: %d", rr.Code)
	}
}

func TestMetricsEndpointWired(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewAPICollector(reg)
	if err != nil {
		t.Fatalf("NewAPICollector: %v", err)
	}
	srv := testServer(t, Options{Metrics: metrics})
	h := srv.Handler()

	get(t, h, "/v1/bodies")
	rr := get(t, h, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rr.Code)
	}
	for _, want := range []string{"solarsim_http_requests_total", "solarsim_catalog_bodies"} {
		if !strings.Contains(rr.Body.String(), want) {
			t.Fatalf("expected %q in /metrics output", want)
		}
	}
}

func TestStateQueryFeedsSolverHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewAPICollector(reg)
	if err != nil {
		t.Fatalf("NewAPICollector: %v", err)
	}
	srv := testServer(t, Options{Metrics: metrics})
	h := srv.Handler()

	if rr := get(t, h, "/v1/state?body=301&epoch=0"); rr.Code != http.StatusOK {
		t.Fatalf("state status = %d, body %s", rr.Code, rr.Body.String())
	}

	rr := get(t, h, "/metrics")
	// The Moon's chain solves two orbits, so the histogram holds two samples.
	if !strings.Contains(rr.Body.String(), "solarsim_kepler_iterations_count 2") {
		t.Fatalf("expected two solver samples in /metrics output:\n%s", rr.Body.String())
	}
}
