package core

import "time"

const (
	// ReferenceEpoch is the timestamp at which the catalog's M0 values
	// and orientation quaternions are defined, ISO-8601, UTC.
	ReferenceEpoch = "2025-05-11T00:00:00"

	// SecondsPerDay converts between day-based rotational coefficients
	// and the propagation time base.
	SecondsPerDay = 86400.0

	// DefaultFrame labels the reference frame all catalog positions are
	// expressed in. Pass-through configuration for downstream consumers.
	DefaultFrame = "ECLIPJ2000"

	// DefaultDragCutoffMeters is the altitude below which a downstream
	// simulation applies atmospheric drag. Not used by the derivation
	// core; exposed verbatim.
	DefaultDragCutoffMeters = 500e3

	// SunGM is the heliocentric gravitational parameter, km^3/s^2. The
	// catalog stores no GM for the Sun (its position is derived, not
	// propagated), so orbits around the root use this convention value.
	SunGM = 1.32712440018e11
)

// requiredKernels lists the external ephemeris resources a downstream
// provider needs for the default catalog. The derivation core never opens
// or interprets these; they are handed over verbatim.
var requiredKernels = []string{
	"naif0013.tls",                     // leapseconds
	"de440.bsp",                        // planetary ephemeris
	"pck00011_n006.tpc",                // planetary constants
	"gm_de440.tpc",                     // GM values
	"jup230.bsp",                       // Jupiter system moons
	"plu058.bsp",                       // Pluto/Charon
	"MAR097_030101_300101_V0001.BSP",   // Mars moons
	"saturn_majors_1900_2100.bsp",      // Saturn system (custom trimmed)
}

// RequiredKernels returns a copy of the kernel manifest.
func RequiredKernels() []string {
	out := make([]string, len(requiredKernels))
	copy(out, requiredKernels)
	return out
}

// ReferenceEpochTime returns ReferenceEpoch as a time.Time in UTC.
func ReferenceEpochTime() time.Time {
	return time.Date(2025, time.May, 11, 0, 0, 0, 0, time.UTC)
}

// EpochOffset returns t as seconds since the reference epoch, the dt input
// expected by the propagation functions.
func EpochOffset(t time.Time) float64 {
	return t.Sub(ReferenceEpochTime()).Seconds()
}
