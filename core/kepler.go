package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/solarsim/model"
)

const (
	// KeplerTolerance is the residual bound, in radians, at which the
	// Newton-Raphson solve of Kepler's equation is accepted.
	KeplerTolerance = 1e-10

	// KeplerMaxIterations caps the Newton-Raphson iteration count.
	// Exceeding it surfaces a NumericalError; a non-converged anomaly is
	// never returned silently.
	KeplerMaxIterations = 50

	// highEccSeed is the eccentricity above which the solver seeds the
	// iteration with M + e instead of M.
	highEccSeed = 0.8
)

// PropagateOrbit converts canonical orbital elements into a parent-relative
// Cartesian position dtSeconds after the reference epoch. The gravitational
// parameter of the attracting parent (km^3/s^2) is an explicit input: the
// catalog does not store one for every parent (barycenters have none), so
// the caller decides which convention value applies.
func PropagateOrbit(el model.OrbitalElements, gm, dtSeconds float64) (Vec3, error) {
	st, err := PropagateOrbitState(el, gm, dtSeconds)
	if err != nil {
		return Vec3{}, err
	}
	return st.Position, nil
}

// PropagateOrbitState is PropagateOrbit plus the parent-relative velocity,
// for callers that need the full state vector.
func PropagateOrbitState(el model.OrbitalElements, gm, dtSeconds float64) (StateVector, error) {
	st, _, err := propagateOrbitState(el, gm, dtSeconds)
	return st, err
}

// propagateOrbitState also reports the Newton iteration count of the Kepler
// solve, for instrumentation.
func propagateOrbitState(el model.OrbitalElements, gm, dtSeconds float64) (StateVector, int, error) {
	if el.A <= 0 {
		return StateVector{}, 0, fmt.Errorf("%w: semi-major axis %g", ErrCatalog, el.A)
	}
	if el.E < 0 || el.E >= 1 {
		return StateVector{}, 0, fmt.Errorf("%w: eccentricity %g outside [0,1)", ErrCatalog, el.E)
	}
	if gm <= 0 {
		return StateVector{}, 0, fmt.Errorf("%w: gravitational parameter %g", ErrCatalog, gm)
	}

	// Mean anomaly at the query time, normalised to [0, 2π).
	n := math.Sqrt(gm / (el.A * el.A * el.A))
	m := normalizeAngle(deg2rad(el.M0) + n*dtSeconds)

	ecc, iters, err := solveKepler(m, el.E, KeplerMaxIterations)
	if err != nil {
		return StateVector{}, iters, err
	}

	// True anomaly and radius from the eccentric anomaly.
	sinE, cosE := math.Sin(ecc), math.Cos(ecc)
	nu := math.Atan2(math.Sqrt(1-el.E*el.E)*sinE, cosE-el.E)
	r := el.A * (1 - el.E*cosE)

	// Perifocal position and velocity.
	pos := Vec3{
		X: r * math.Cos(nu),
		Y: r * math.Sin(nu),
	}
	vScale := math.Sqrt(gm*el.A) / r
	vel := Vec3{
		X: -vScale * sinE,
		Y: vScale * math.Sqrt(1-el.E*el.E) * cosE,
	}

	// Rotate into the parent frame: argument of periapsis about z,
	// inclination about x, ascending node about z, in that order. A zero
	// inclination makes the middle rotation the identity but the node and
	// periapsis rotations still apply.
	pos = rotateZ(rotateX(rotateZ(pos, deg2rad(el.Peri)), deg2rad(el.I)), deg2rad(el.Node))
	vel = rotateZ(rotateX(rotateZ(vel, deg2rad(el.Peri)), deg2rad(el.I)), deg2rad(el.Node))

	return StateVector{Position: pos, Velocity: vel}, iters, nil
}

// solveKepler finds the eccentric anomaly E with M = E - e·sin(E) by
// Newton-Raphson, reporting the iteration count alongside the anomaly.
// e == 0 is exact with no iteration. The seed is M, or M + e above
// highEccSeed. Non-convergence within maxIter returns a NumericalError
// carrying the last residual and the iteration count.
func solveKepler(m, e float64, maxIter int) (float64, int, error) {
	if e == 0 {
		return m, 0, nil
	}

	ecc := m
	if e > highEccSeed {
		ecc = m + e
	}

	residual := math.Inf(1)
	for i := 0; i < maxIter; i++ {
		f := ecc - e*math.Sin(ecc) - m
		residual = math.Abs(f)
		if residual < KeplerTolerance {
			return ecc, i, nil
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, i + 1, &NumericalError{Residual: residual, Iterations: i + 1}
		}
		ecc -= f / (1 - e*math.Cos(ecc))
	}
	return 0, maxIter, &NumericalError{Residual: residual, Iterations: maxIter}
}

// normalizeAngle maps an angle in radians to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// rotateZ rotates v by angle a about the z axis.
func rotateZ(v Vec3, a float64) Vec3 {
	if a == 0 {
		return v
	}
	sin, cos := math.Sin(a), math.Cos(a)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// rotateX rotates v by angle a about the x axis.
func rotateX(v Vec3, a float64) Vec3 {
	if a == 0 {
		return v
	}
	sin, cos := math.Sin(a), math.Cos(a)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}
