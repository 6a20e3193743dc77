package core

import (
	"errors"
	"math"
	"testing"

	"github.com/signalsfoundry/solarsim/model"
)

func TestPropagateOrbit_CircularAngleMatchesMeanAnomaly(t *testing.T) {
	// With e = 0 the eccentric, true and mean anomalies coincide, for any
	// semi-major axis. The solver must short-circuit, so the agreement is
	// exact up to the trig evaluation.
	cases := []struct {
		a  float64
		m0 float64
	}{
		{a: 1000, m0: 0},
		{a: 1000, m0: 45},
		{a: 149598023, m0: 123.456},
		{a: 42, m0: 359.9},
	}
	for _, tc := range cases {
		el := model.OrbitalElements{A: tc.a, E: 0, M0: tc.m0}
		pos, err := PropagateOrbit(el, SunGM, 0)
		if err != nil {
			t.Fatalf("PropagateOrbit(a=%g, M0=%g) failed: %v", tc.a, tc.m0, err)
		}

		angle := normalizeAngle(math.Atan2(pos.Y, pos.X))
		want := normalizeAngle(deg2rad(tc.m0))
		if math.Abs(angle-want) > 1e-12 {
			t.Errorf("a=%g M0=%g: angle %g, want %g", tc.a, tc.m0, angle, want)
		}
		if math.Abs(pos.Norm()-tc.a) > tc.a*1e-12 {
			t.Errorf("a=%g: circular radius %g, want %g", tc.a, pos.Norm(), tc.a)
		}
	}
}

func TestPropagateOrbit_EarthRadiusWithinBounds(t *testing.T) {
	el := model.OrbitalElements{
		A: 149598023, E: 0.0167, I: 0, Node: -11.26064, Peri: 114.20783, M0: 358.617,
	}
	pos, err := PropagateOrbit(el, SunGM, 0)
	if err != nil {
		t.Fatalf("PropagateOrbit failed: %v", err)
	}

	r := pos.Norm()
	if lo := el.A * (1 - el.E); r < lo {
		t.Errorf("radius %g below periapsis bound %g", r, lo)
	}
	if hi := el.A * (1 + el.E); r > hi {
		t.Errorf("radius %g above apoapsis bound %g", r, hi)
	}
	// Zero inclination keeps the orbit in the reference plane.
	if pos.Z != 0 {
		t.Errorf("expected z = 0 for zero inclination, got %g", pos.Z)
	}
}

func TestPropagateOrbit_Deterministic(t *testing.T) {
	el := model.OrbitalElements{
		A: 227939200, E: 0.0935, I: 1.850, Node: 49.558, Peri: 286.502, M0: 19.373,
	}
	dt := 37.5 * SecondsPerDay

	first, err := PropagateOrbitState(el, SunGM, dt)
	if err != nil {
		t.Fatalf("first propagation failed: %v", err)
	}
	second, err := PropagateOrbitState(el, SunGM, dt)
	if err != nil {
		t.Fatalf("second propagation failed: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced different states:\n%+v\n%+v", first, second)
	}
}

func TestPropagateOrbitState_CircularVelocityOrthogonal(t *testing.T) {
	el := model.OrbitalElements{A: 384400, E: 0, I: 5.145, Node: 125.08, Peri: 318.15, M0: 115.3654}
	gm := 398600.435507

	st, err := PropagateOrbitState(el, gm, 3600)
	if err != nil {
		t.Fatalf("PropagateOrbitState failed: %v", err)
	}

	// Circular orbit: position and velocity stay orthogonal and the speed
	// is sqrt(gm/a).
	dot := st.Position.Dot(st.Velocity)
	if math.Abs(dot) > 1e-3*st.Position.Norm()*st.Velocity.Norm() {
		t.Errorf("position and velocity not orthogonal: dot %g", dot)
	}
	wantSpeed := math.Sqrt(gm / el.A)
	if got := st.Velocity.Norm(); math.Abs(got-wantSpeed) > wantSpeed*1e-9 {
		t.Errorf("circular speed %g, want %g", got, wantSpeed)
	}
}

func TestPropagateOrbit_InvalidInputs(t *testing.T) {
	if _, err := PropagateOrbit(model.OrbitalElements{A: 0, E: 0.1}, SunGM, 0); !errors.Is(err, ErrCatalog) {
		t.Fatalf("expected ErrCatalog for a = 0, got %v", err)
	}
	if _, err := PropagateOrbit(model.OrbitalElements{A: 100, E: 1.2}, SunGM, 0); !errors.Is(err, ErrCatalog) {
		t.Fatalf("expected ErrCatalog for e > 1, got %v", err)
	}
	if _, err := PropagateOrbit(model.OrbitalElements{A: 100, E: 0.1}, 0, 0); !errors.Is(err, ErrCatalog) {
		t.Fatalf("expected ErrCatalog for gm = 0, got %v", err)
	}
}

func TestSolveKepler_NonConvergenceSurfacesResidual(t *testing.T) {
	// Near-parabolic eccentricity with a tiny mean anomaly sits in the
	// solver's slowest region: each Newton step only shrinks the estimate
	// by about a third, so a tight cap provably runs out before the
	// 1e-10 residual is reached. The error must carry the diagnostics
	// instead of silently returning the unconverged anomaly.
	_, _, err := solveKepler(2e-6, 0.999999, 5)
	if err == nil {
		t.Fatal("expected non-convergence error")
	}

	var numErr *NumericalError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected *NumericalError, got %T: %v", err, err)
	}
	if numErr.Iterations != 5 {
		t.Errorf("expected 5 iterations reported, got %d", numErr.Iterations)
	}
	if numErr.Residual <= KeplerTolerance {
		t.Errorf("reported residual %g not above tolerance", numErr.Residual)
	}
}

func TestSolveKepler_ConvergesAtFullCap(t *testing.T) {
	// The same pathological inputs do converge with the production cap.
	ecc, iters, err := solveKepler(2e-6, 0.999999, KeplerMaxIterations)
	if err != nil {
		t.Fatalf("expected convergence at cap %d: %v", KeplerMaxIterations, err)
	}
	if resid := math.Abs(ecc - 0.999999*math.Sin(ecc) - 2e-6); resid >= KeplerTolerance {
		t.Fatalf("converged anomaly has residual %g", resid)
	}
	if iters < 5 || iters > KeplerMaxIterations {
		t.Fatalf("reported %d iterations, want within [5, %d]", iters, KeplerMaxIterations)
	}
}

func TestSolveKepler_ZeroEccentricityExact(t *testing.T) {
	for _, m := range []float64{0, 0.5, math.Pi, 5.9} {
		ecc, iters, err := solveKepler(m, 0, KeplerMaxIterations)
		if err != nil {
			t.Fatalf("solveKepler(%g, 0) failed: %v", m, err)
		}
		if ecc != m {
			t.Errorf("e = 0 must return M exactly: got %g, want %g", ecc, m)
		}
		if iters != 0 {
			t.Errorf("e = 0 must not iterate: got %d", iters)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tc := range cases {
		if got := normalizeAngle(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("normalizeAngle(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}
