package track

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/solarsim/core"
)

// ErrCraftNotFound is returned when a spacecraft id is not registered.
var ErrCraftNotFound = errors.New("spacecraft not found")

// EarthRadiusKm is the mean equatorial radius used for altitude checks.
const EarthRadiusKm = 6378.137

// Craft is a tracked Earth-orbiting spacecraft described by a two-line
// element set.
type Craft struct {
	ID   string
	Name string
	sat  satellite.Satellite
}

// Tracker propagates two-line element sets with SGP4 and reports spacecraft
// states relative to the Earth's centre, in the same kilometre units the body
// catalog uses. States compose with the Earth's absolute state the way moon
// states compose with their barycenter.
type Tracker struct {
	mu     sync.RWMutex
	crafts map[string]*Craft

	// Spacecraft below this altitude are flagged as drag-dominated; SGP4
	// predictions decay quickly there.
	dragCutoffKm float64
}

// New returns an empty Tracker with the given drag cutoff altitude in metres.
func New(dragCutoffMeters float64) *Tracker {
	return &Tracker{
		crafts:       make(map[string]*Craft),
		dragCutoffKm: dragCutoffMeters / 1000.0,
	}
}

// Add registers a spacecraft from its TLE lines, replacing any previous entry
// with the same id.
func (t *Tracker) Add(id, name, line1, line2 string) error {
	if id == "" {
		return fmt.Errorf("track: empty spacecraft id")
	}
	if line1 == "" || line2 == "" {
		return fmt.Errorf("track: spacecraft %q: missing TLE lines", id)
	}
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.crafts[id] = &Craft{ID: id, Name: name, sat: sat}
	return nil
}

// Remove drops a spacecraft from the tracker.
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.crafts, id)
}

// IDs returns the registered spacecraft ids, sorted.
func (t *Tracker) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, 0, len(t.crafts))
	for id := range t.crafts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered spacecraft.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.crafts)
}

// StateAt propagates a spacecraft to the given wall-clock time and returns its
// Earth-centred inertial state in kilometres and kilometres per second.
func (t *Tracker) StateAt(id string, at time.Time) (core.StateVector, error) {
	t.mu.RLock()
	craft, ok := t.crafts[id]
	t.mu.RUnlock()
	if !ok {
		return core.StateVector{}, fmt.Errorf("%w: %q", ErrCraftNotFound, id)
	}

	at = at.UTC()
	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	pos, vel := satellite.Propagate(craft.sat, year, int(month), day, hour, min, sec)
	return core.StateVector{
		Position: core.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z},
		Velocity: core.Vec3{X: vel.X, Y: vel.Y, Z: vel.Z},
	}, nil
}

// GroundTrackAt returns the spacecraft position rotated into the Earth-fixed
// frame, for surface track displays.
func (t *Tracker) GroundTrackAt(id string, at time.Time) (core.Vec3, error) {
	st, err := t.StateAt(id, at)
	if err != nil {
		return core.Vec3{}, err
	}

	at = at.UTC()
	year, month, day := at.Date()
	hour, min, sec := at.Clock()
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	ecef := satellite.ECIToECEF(satellite.Vector3{X: st.Position.X, Y: st.Position.Y, Z: st.Position.Z}, gmst)
	return core.Vec3{X: ecef.X, Y: ecef.Y, Z: ecef.Z}, nil
}

// BelowDragCutoff reports whether the spacecraft's altitude at the given time
// is under the drag cutoff.
func (t *Tracker) BelowDragCutoff(id string, at time.Time) (bool, error) {
	st, err := t.StateAt(id, at)
	if err != nil {
		return false, err
	}
	alt := st.Position.Norm() - EarthRadiusKm
	return alt < t.dragCutoffKm, nil
}
