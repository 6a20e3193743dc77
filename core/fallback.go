package core

// Fallback rules for bodies without canonical orbital elements. The root
// sits at the frame origin by definition; the one designated root child
// (the Sun in the default catalog) balances its siblings so that the
// direct children of the root sum to the zero vector.
//
// The sum is unweighted: the catalog convention is a position balance, not
// a mass-weighted centre-of-mass balance. See DESIGN.md.

// RootOffset returns the parent-relative offset of the hierarchy root.
// It is the zero vector for every epoch.
func RootOffset() Vec3 { return Zero }

// DeriveFallback returns the parent-relative position of the designated
// fallback body given its siblings' already-resolved parent-relative
// positions for the same epoch. Siblings must be propagated first; this is
// an evaluation-order dependency, not a cycle, because the derived body
// never feeds back into its siblings.
func DeriveFallback(siblingOffsets []Vec3) Vec3 {
	var sum Vec3
	for _, off := range siblingOffsets {
		sum = sum.Add(off)
	}
	return sum.Neg()
}

// DeriveFallbackState extends DeriveFallback to full state vectors, negating
// the summed sibling velocities alongside the positions.
func DeriveFallbackState(siblings []StateVector) StateVector {
	var pos, vel Vec3
	for _, st := range siblings {
		pos = pos.Add(st.Position)
		vel = vel.Add(st.Velocity)
	}
	return StateVector{Position: pos.Neg(), Velocity: vel.Neg()}
}
