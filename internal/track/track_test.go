package track

import (
	"errors"
	"testing"
	"time"
)

// ISS sample TLE.
const (
	issTLE1 = "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990"
	issTLE2 = "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760"
)

func issTracker(t *testing.T) *Tracker {
	t.Helper()
	tr := New(500e3)
	if err := tr.Add("iss", "ISS (ZARYA)", issTLE1, issTLE2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return tr
}

// We don't assert exact orbital values (those belong to go-satellite);
// we just ensure that positions differ at distinct times.
func TestStateAt_ChangesOverTime(t *testing.T) {
	tr := issTracker(t)

	t1 := time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(5 * time.Minute)

	first, err := tr.StateAt("iss", t1)
	if err != nil {
		t.Fatalf("StateAt t1: %v", err)
	}
	second, err := tr.StateAt("iss", t2)
	if err != nil {
		t.Fatalf("StateAt t2: %v", err)
	}
	if first.Position == second.Position {
		t.Fatalf("expected position to change over time, got %+v at both times", first.Position)
	}
}

func TestStateAt_PlausibleLowOrbit(t *testing.T) {
	tr := issTracker(t)

	at := time.Date(2021, 10, 2, 12, 0, 0, 0, time.UTC)
	st, err := tr.StateAt("iss", at)
	if err != nil {
		t.Fatalf("StateAt: %v", err)
	}

	r := st.Position.Norm()
	if r < 6500 || r > 7100 {
		t.Fatalf("geocentric radius %v km outside low orbit range", r)
	}
	speed := st.Velocity.Norm()
	if speed < 7 || speed > 8.2 {
		t.Fatalf("orbital speed %v km/s outside low orbit range", speed)
	}
}

func TestBelowDragCutoff(t *testing.T) {
	at := time.Date(2021, 10, 2, 12, 0, 0, 0, time.UTC)

	// The station orbits near 420 km, under a 500 km cutoff and over a 200 km one.
	low := issTracker(t)
	below, err := low.BelowDragCutoff("iss", at)
	if err != nil {
		t.Fatalf("BelowDragCutoff: %v", err)
	}
	if !below {
		t.Fatalf("expected station below 500 km cutoff")
	}

	high := New(200e3)
	if err := high.Add("iss", "ISS (ZARYA)", issTLE1, issTLE2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	below, err = high.BelowDragCutoff("iss", at)
	if err != nil {
		t.Fatalf("BelowDragCutoff: %v", err)
	}
	if below {
		t.Fatalf("expected station above 200 km cutoff")
	}
}

func TestGroundTrackDiffersFromInertial(t *testing.T) {
	tr := issTracker(t)
	at := time.Date(2021, 10, 2, 12, 0, 0, 0, time.UTC)

	st, err := tr.StateAt("iss", at)
	if err != nil {
		t.Fatalf("StateAt: %v", err)
	}
	ecef, err := tr.GroundTrackAt("iss", at)
	if err != nil {
		t.Fatalf("GroundTrackAt: %v", err)
	}
	if ecef == st.Position {
		t.Fatalf("expected Earth-fixed position to differ from inertial at %v", at)
	}
	// Rotation preserves the radius.
	if d := ecef.Norm() - st.Position.Norm(); d > 1e-6 || d < -1e-6 {
		t.Fatalf("frame rotation changed radius by %v km", d)
	}
}

func TestTrackerRegistry(t *testing.T) {
	tr := issTracker(t)

	if got := tr.IDs(); len(got) != 1 || got[0] != "iss" {
		t.Fatalf("IDs = %v", got)
	}
	if tr.Len() != 1 {
		t.Fatalf("Len = %d", tr.Len())
	}

	tr.Remove("iss")
	if tr.Len() != 0 {
		t.Fatalf("Len after Remove = %d", tr.Len())
	}
	if _, err := tr.StateAt("iss", time.Now()); !errors.Is(err, ErrCraftNotFound) {
		t.Fatalf("expected ErrCraftNotFound, got %v", err)
	}

	if err := tr.Add("", "x", issTLE1, issTLE2); err == nil {
		t.Fatal("expected error for empty id")
	}
	if err := tr.Add("x", "x", "", ""); err == nil {
		t.Fatal("expected error for missing TLE lines")
	}
}
