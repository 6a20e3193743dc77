package api

import (
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/signalsfoundry/solarsim/core"
	"github.com/signalsfoundry/solarsim/internal/track"
)

// earthID is the NAIF id the tracker's states are relative to.
const earthID = 399

type spacecraftListView struct {
	Spacecraft []string `json:"spacecraft"`
}

type spacecraftStateView struct {
	ID              string     `json:"id"`
	At              string     `json:"at"`
	Frame           string     `json:"frame"`
	Position        [3]float64 `json:"position_km"`
	Velocity        [3]float64 `json:"velocity_km_s"`
	EarthRelative   [3]float64 `json:"earth_relative_km"`
	BelowDragCutoff bool       `json:"below_drag_cutoff"`
}

func (s *Server) handleSpacecraftList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, spacecraftListView{Spacecraft: s.tracker.IDs()})
}

// handleSpacecraftState propagates a tracked spacecraft with SGP4 and
// composes it with the Earth's state into the root frame.
func (s *Server) handleSpacecraftState(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "api.spacecraft_state")
	defer span.End()

	id := r.PathValue("id")
	at, err := parseAt(r.URL.Query().Get("at"), s.clock)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(attribute.String("spacecraft.id", id))

	rel, err := s.tracker.StateAt(id, at)
	if err != nil {
		if errors.Is(err, track.ErrCraftNotFound) {
			writeError(w, http.StatusNotFound, "spacecraft not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "propagation failed")
		return
	}

	earth, err := s.Composer().AbsoluteState(earthID, core.EpochOffset(at))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	abs := core.StateVector{
		Position: earth.Position.Add(rel.Position),
		Velocity: earth.Velocity.Add(rel.Velocity),
	}

	below, err := s.tracker.BelowDragCutoff(id, at)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "propagation failed")
		return
	}

	writeJSON(w, http.StatusOK, spacecraftStateView{
		ID:              id,
		At:              at.UTC().Format(time.RFC3339),
		Frame:           core.DefaultFrame,
		Position:        [3]float64{abs.Position.X, abs.Position.Y, abs.Position.Z},
		Velocity:        [3]float64{abs.Velocity.X, abs.Velocity.Y, abs.Velocity.Z},
		EarthRelative:   [3]float64{rel.Position.X, rel.Position.Y, rel.Position.Z},
		BelowDragCutoff: below,
	})
}

// parseAt interprets the at query parameter as RFC 3339, defaulting to the
// simulation clock or wall clock.
func parseAt(raw string, clock interface{ Now() time.Time }) (time.Time, error) {
	if raw == "" {
		if clock != nil {
			return clock.Now(), nil
		}
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("at must be RFC 3339")
	}
	return t, nil
}
