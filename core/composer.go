package core

import (
	"fmt"

	"github.com/signalsfoundry/solarsim/model"
)

// Composer resolves absolute body states in the root frame by walking the
// ancestor chain and accumulating parent-relative offsets. It holds only
// immutable inputs and is safe for concurrent use.
type Composer struct {
	cat  *Catalog
	hier *Hierarchy

	onSolve func(iterations int)
}

// NewComposer builds a composer over a validated catalog and its hierarchy.
func NewComposer(cat *Catalog, hier *Hierarchy) *Composer {
	return &Composer{cat: cat, hier: hier}
}

// ObserveSolves registers a callback invoked with the Newton iteration count
// of every Kepler solve the composer performs. Set it before the composer is
// shared between goroutines.
func (c *Composer) ObserveSolves(fn func(iterations int)) {
	c.onSolve = fn
}

// AbsolutePosition returns the body's position in the root frame,
// dtSeconds after the reference epoch.
func (c *Composer) AbsolutePosition(bodyID int, dtSeconds float64) (Vec3, error) {
	st, err := c.AbsoluteState(bodyID, dtSeconds)
	if err != nil {
		return Vec3{}, err
	}
	return st.Position, nil
}

// AbsoluteState returns the body's position and velocity in the root
// frame, dtSeconds after the reference epoch. The ancestor chain is walked
// root-first; each link contributes the child's parent-relative state from
// its canonical orbit, or from the fallback rules for the root and the
// designated fallback body.
func (c *Composer) AbsoluteState(bodyID int, dtSeconds float64) (StateVector, error) {
	chain, err := c.hier.Ancestors(bodyID)
	if err != nil {
		return StateVector{}, err
	}

	var total StateVector
	for _, id := range chain {
		body, _ := c.cat.Get(id)
		rel, err := c.relativeState(body, dtSeconds)
		if err != nil {
			return StateVector{}, err
		}
		total.Position = total.Position.Add(rel.Position)
		total.Velocity = total.Velocity.Add(rel.Velocity)
	}
	return total, nil
}

// AllStates resolves the whole catalog in one topological pass, reusing
// each parent's absolute state for its children. The map is keyed by body
// id.
func (c *Composer) AllStates(dtSeconds float64) (map[int]StateVector, error) {
	out := make(map[int]StateVector, c.cat.Len())
	for _, id := range c.hier.TopoOrder() {
		body, _ := c.cat.Get(id)
		rel, err := c.relativeState(body, dtSeconds)
		if err != nil {
			return nil, err
		}
		abs := rel
		if parent, ok := c.hier.ParentOf(id); ok {
			p := out[parent]
			abs.Position = p.Position.Add(rel.Position)
			abs.Velocity = p.Velocity.Add(rel.Velocity)
		}
		out[id] = abs
	}
	return out, nil
}

// relativeState returns the body's parent-relative state (root-relative to
// nothing: the root itself pins to the origin).
func (c *Composer) relativeState(body model.Body, dtSeconds float64) (StateVector, error) {
	switch {
	case body.IsRoot():
		return StateVector{Position: RootOffset()}, nil
	case body.HasOrbit():
		gm, err := c.parentGM(body)
		if err != nil {
			return StateVector{}, err
		}
		st, iters, err := propagateOrbitState(*body.Orbit, gm, dtSeconds)
		if err != nil {
			return StateVector{}, err
		}
		if c.onSolve != nil {
			c.onSolve(iters)
		}
		return st, nil
	case body.FallbackDerived:
		return c.deriveFallbackState(body, dtSeconds)
	default:
		return StateVector{}, fmt.Errorf("%w: %d (%s)", ErrUnresolvedBody, body.ID, body.Name)
	}
}

// deriveFallbackState propagates every sibling of the fallback body and
// returns the negated sum of their states.
func (c *Composer) deriveFallbackState(body model.Body, dtSeconds float64) (StateVector, error) {
	parent := *body.Parent
	siblings := make([]StateVector, 0, len(c.hier.ChildrenOf(parent)))
	for _, sibID := range c.hier.ChildrenOf(parent) {
		if sibID == body.ID {
			continue
		}
		sib, _ := c.cat.Get(sibID)
		st, err := c.relativeState(sib, dtSeconds)
		if err != nil {
			return StateVector{}, err
		}
		siblings = append(siblings, st)
	}
	return DeriveFallbackState(siblings), nil
}

// parentGM picks the gravitational parameter for propagating a body around
// its parent. The catalog stores no GM for barycenters, so: a root parent
// uses the heliocentric convention constant SunGM, a parent with its own
// GM uses that, and a barycenter parent uses the dominant (largest-GM)
// body among its children.
func (c *Composer) parentGM(body model.Body) (float64, error) {
	parent, ok := c.cat.Get(*body.Parent)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrBodyNotFound, *body.Parent)
	}
	if parent.IsRoot() {
		return SunGM, nil
	}
	if parent.GM != nil {
		return *parent.GM, nil
	}

	best := 0.0
	for _, childID := range c.hier.ChildrenOf(parent.ID) {
		child, _ := c.cat.Get(childID)
		if child.GM != nil && *child.GM > best {
			best = *child.GM
		}
	}
	if best <= 0 {
		return 0, fmt.Errorf("%w: no gravitational parameter for parent %d (%s)",
			ErrUnresolvedBody, parent.ID, parent.Name)
	}
	return best, nil
}
