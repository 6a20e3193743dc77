package model

// OrbitalElements is a body's canonical orbit: fixed osculating Keplerian
// elements at the catalog's reference epoch. Distances are kilometres,
// angles degrees.
type OrbitalElements struct {
	A    float64 // semi-major axis, km
	E    float64 // eccentricity
	I    float64 // inclination, deg
	Node float64 // longitude of ascending node (Ω), deg
	Peri float64 // argument of periapsis (ω), deg
	M0   float64 // mean anomaly at the reference epoch, deg
}

// Body is one record of the solar-system catalog. Optional fields are
// pointers; presence is checked explicitly, never inferred.
type Body struct {
	ID     int
	Name   string
	Parent *int // nil exactly for the hierarchy root

	// Streamed tells a downstream ephemeris provider whether live data
	// should be fetched for this body. The derivation core preserves it
	// but never acts on it.
	Streamed bool

	// FallbackDerived marks the one body per root level whose
	// parent-relative position is derived as the negated sum of its
	// siblings' positions instead of being propagated.
	FallbackDerived bool

	Orbit *OrbitalElements

	// Physical constants, carried verbatim.
	GM       *float64 // km^3/s^2
	RadiusEq *float64 // km
	J2       *float64 // oblateness coefficient

	// Orientation, carried verbatim. Quaternion is [w, x, y, z]; the
	// pole/prime-meridian rows are polynomial coefficients
	// [deg, deg/century, deg/century^2] (deg/day for the prime meridian).
	OrientationQuat *[4]float64
	PoleRA          *[3]float64
	PoleDec         *[3]float64
	PrimeMeridian   *[3]float64
}

// HasOrbit reports whether the body carries canonical orbital elements.
func (b Body) HasOrbit() bool { return b.Orbit != nil }

// IsRoot reports whether the body is the hierarchy root (no parent).
func (b Body) IsRoot() bool { return b.Parent == nil }

// Clone returns a deep copy of the body. The catalog clones on load and on
// lookup so callers can never mutate shared state through the optional
// pointer fields.
func (b Body) Clone() Body {
	out := b
	out.Parent = cloneP(b.Parent)
	out.GM = cloneP(b.GM)
	out.RadiusEq = cloneP(b.RadiusEq)
	out.J2 = cloneP(b.J2)
	out.OrientationQuat = cloneP(b.OrientationQuat)
	out.PoleRA = cloneP(b.PoleRA)
	out.PoleDec = cloneP(b.PoleDec)
	out.PrimeMeridian = cloneP(b.PrimeMeridian)
	out.Orbit = cloneP(b.Orbit)
	return out
}

func cloneP[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
