package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/signalsfoundry/solarsim/core"
	"github.com/signalsfoundry/solarsim/internal/logging"
	"github.com/signalsfoundry/solarsim/internal/statecache"
	"github.com/signalsfoundry/solarsim/model"
)

// Wire shapes mirror the catalog file format so a body round-trips between
// GET /v1/bodies and the loader (Omega = ascending node, omega = periapsis).
type bodyView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Parent   *int   `json:"parent,omitempty"`
	Streamed bool   `json:"streamed"`
	Fallback bool   `json:"fallback_derived"`

	Orbit *orbitView `json:"canonical_orbit,omitempty"`

	GM       *float64 `json:"gm,omitempty"`
	RadiusEq *float64 `json:"r_eq,omitempty"`
	J2       *float64 `json:"j2,omitempty"`

	OrientationQuat *[4]float64 `json:"orientation_quat,omitempty"`
	PoleRA          *[3]float64 `json:"pole_ra,omitempty"`
	PoleDec         *[3]float64 `json:"pole_dec,omitempty"`
	PrimeMeridian   *[3]float64 `json:"pm,omitempty"`
}

type orbitView struct {
	A    float64 `json:"a"`
	E    float64 `json:"e"`
	I    float64 `json:"i"`
	Node float64 `json:"Omega"`
	Peri float64 `json:"omega"`
	M0   float64 `json:"M0"`
}

type stateView struct {
	Body         int        `json:"body"`
	EpochSeconds float64    `json:"epoch_seconds"`
	Frame        string     `json:"frame"`
	Position     [3]float64 `json:"position_km"`
	Velocity     [3]float64 `json:"velocity_km_s"`
}

type kernelsView struct {
	Kernels []string `json:"kernels"`
}

type errorView struct {
	Error string `json:"error"`
}

func viewBody(b model.Body) bodyView {
	v := bodyView{
		ID:              b.ID,
		Name:            b.Name,
		Parent:          b.Parent,
		Streamed:        b.Streamed,
		Fallback:        b.FallbackDerived,
		GM:              b.GM,
		RadiusEq:        b.RadiusEq,
		J2:              b.J2,
		OrientationQuat: b.OrientationQuat,
		PoleRA:          b.PoleRA,
		PoleDec:         b.PoleDec,
		PrimeMeridian:   b.PrimeMeridian,
	}
	if b.Orbit != nil {
		v.Orbit = &orbitView{
			A:    b.Orbit.A,
			E:    b.Orbit.E,
			I:    b.Orbit.I,
			Node: b.Orbit.Node,
			Peri: b.Orbit.Peri,
			M0:   b.Orbit.M0,
		}
	}
	return v
}

func (s *Server) handleBodies(w http.ResponseWriter, r *http.Request) {
	cat := s.Catalog()
	views := make([]bodyView, 0, cat.Len())
	for _, b := range cat.All() {
		views = append(views, viewBody(b))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleBody(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "body id must be an integer")
		return
	}
	b, ok := s.Catalog().Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "body not found")
		return
	}
	writeJSON(w, http.StatusOK, viewBody(b))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "api.state")
	defer span.End()

	id, err := strconv.Atoi(r.URL.Query().Get("body"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "body query parameter must be an integer")
		return
	}
	dt, err := s.parseEpoch(r.URL.Query().Get("epoch"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(attribute.Int("body.id", id), attribute.Float64("epoch.seconds", dt))

	st, cached, err := s.resolveState(ctx, id, dt)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if s.metrics != nil {
			s.metrics.RecordStateQuery("error")
		}
		switch {
		case errors.Is(err, core.ErrBodyNotFound):
			writeError(w, http.StatusNotFound, "body not found")
		case errors.Is(err, core.ErrUnresolvedBody):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.log.Error(ctx, "state derivation failed",
				logging.Int("body", id), logging.Float64("epoch_seconds", dt), logging.Err(err))
			writeError(w, http.StatusInternalServerError, "state derivation failed")
		}
		return
	}
	span.SetAttributes(attribute.Bool("cache.hit", cached))
	if s.metrics != nil {
		s.metrics.RecordStateQuery("ok")
	}

	writeJSON(w, http.StatusOK, stateView{
		Body:         id,
		EpochSeconds: dt,
		Frame:        core.DefaultFrame,
		Position:     [3]float64{st.Position.X, st.Position.Y, st.Position.Z},
		Velocity:     [3]float64{st.Velocity.X, st.Velocity.Y, st.Velocity.Z},
	})
}

func (s *Server) handleKernels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, kernelsView{Kernels: core.RequiredKernels()})
}

// resolveState consults the cache before composing, reporting whether the
// answer came from the cache.
func (s *Server) resolveState(ctx context.Context, id int, dt float64) (core.StateVector, bool, error) {
	if s.cache != nil {
		st, err := s.cache.Get(ctx, id, dt)
		if err == nil {
			if s.metrics != nil && s.metrics.CacheHits != nil {
				s.metrics.CacheHits.Inc()
			}
			return st, true, nil
		}
		if !errors.Is(err, statecache.ErrMiss) {
			s.log.Warn(ctx, "state cache lookup failed", logging.Err(err))
		} else if s.metrics != nil && s.metrics.CacheMisses != nil {
			s.metrics.CacheMisses.Inc()
		}
	}

	st, err := s.Composer().AbsoluteState(id, dt)
	if err != nil {
		return core.StateVector{}, false, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, id, dt, st); err != nil {
			s.log.Warn(ctx, "state cache store failed", logging.Err(err))
		}
	}
	return st, false, nil
}

// parseEpoch interprets the epoch query parameter. Absent means the
// simulation clock when one is wired, otherwise the reference epoch.
// Otherwise the value is either an RFC 3339 timestamp or a plain number of
// seconds past the reference epoch.
func (s *Server) parseEpoch(raw string) (float64, error) {
	if raw == "" {
		if s.clock != nil {
			return core.EpochOffset(s.clock.Now()), nil
		}
		return 0, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return core.EpochOffset(t), nil
	}
	if dt, err := strconv.ParseFloat(raw, 64); err == nil {
		return dt, nil
	}
	return 0, errors.New("epoch must be RFC 3339 or seconds past the reference epoch")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorView{Error: msg})
}
