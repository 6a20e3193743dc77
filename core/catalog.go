package core

import (
	"fmt"
	"sort"

	"github.com/signalsfoundry/solarsim/model"
)

// Catalog is the validated, immutable collection of solar-system bodies.
// It is constructed once via LoadCatalog and never mutated; re-derivation
// means loading a fresh catalog and rebuilding the hierarchy from it.
type Catalog struct {
	bodies map[int]model.Body
	order  []int // all ids, ascending
	root   int
	// fallback is the id of the one root child whose position is derived
	// from its siblings rather than propagated.
	fallback int
}

// LoadCatalog validates the records and returns an immutable catalog.
// Structural defects (duplicate id, dangling parent, zero or multiple
// roots, out-of-range orbital elements, broken fallback configuration)
// fail with an error wrapping ErrCatalog.
func LoadCatalog(records []model.Body) (*Catalog, error) {
	bodies := make(map[int]model.Body, len(records))
	order := make([]int, 0, len(records))

	rootID := 0
	rootSeen := false

	for _, rec := range records {
		if rec.ID < 0 {
			return nil, fmt.Errorf("%w: negative body id %d", ErrCatalog, rec.ID)
		}
		if _, exists := bodies[rec.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate body id %d", ErrCatalog, rec.ID)
		}
		if rec.IsRoot() {
			if rootSeen {
				return nil, fmt.Errorf("%w: multiple roots (%d and %d)", ErrCatalog, rootID, rec.ID)
			}
			rootSeen = true
			rootID = rec.ID
		}
		if orb := rec.Orbit; orb != nil {
			if orb.A <= 0 {
				return nil, fmt.Errorf("%w: body %d has non-positive semi-major axis %g", ErrCatalog, rec.ID, orb.A)
			}
			if orb.E < 0 || orb.E >= 1 {
				return nil, fmt.Errorf("%w: body %d has eccentricity %g outside [0,1)", ErrCatalog, rec.ID, orb.E)
			}
		}
		bodies[rec.ID] = rec.Clone()
		order = append(order, rec.ID)
	}

	if !rootSeen {
		return nil, fmt.Errorf("%w: no root body", ErrCatalog)
	}

	for id, b := range bodies {
		if b.Parent == nil {
			continue
		}
		if *b.Parent == id {
			return nil, fmt.Errorf("%w: body %d is its own parent", ErrCatalog, id)
		}
		if _, ok := bodies[*b.Parent]; !ok {
			return nil, fmt.Errorf("%w: body %d references unknown parent %d", ErrCatalog, id, *b.Parent)
		}
	}

	fallbackID, err := validateFallback(bodies, rootID)
	if err != nil {
		return nil, err
	}

	sort.Ints(order)
	return &Catalog{
		bodies:   bodies,
		order:    order,
		root:     rootID,
		fallback: fallbackID,
	}, nil
}

// validateFallback enforces the derivation rule among the root's direct
// children: exactly one is flagged FallbackDerived (and carries no orbit),
// and every sibling of it carries an orbit. Fallback flags anywhere else in
// the tree are rejected.
func validateFallback(bodies map[int]model.Body, rootID int) (int, error) {
	fallbackID := -1
	for id, b := range bodies {
		if !b.FallbackDerived {
			continue
		}
		if b.Parent == nil || *b.Parent != rootID {
			return 0, fmt.Errorf("%w: fallback body %d is not a direct child of the root", ErrCatalog, id)
		}
		if b.HasOrbit() {
			return 0, fmt.Errorf("%w: fallback body %d also carries canonical orbit", ErrCatalog, id)
		}
		if fallbackID >= 0 {
			return 0, fmt.Errorf("%w: multiple fallback bodies (%d and %d)", ErrCatalog, fallbackID, id)
		}
		fallbackID = id
	}
	if fallbackID < 0 {
		return 0, fmt.Errorf("%w: no fallback body among root children", ErrCatalog)
	}

	for id, b := range bodies {
		if b.Parent == nil || *b.Parent != rootID || id == fallbackID {
			continue
		}
		if !b.HasOrbit() {
			return 0, fmt.Errorf("%w: root child %d has neither orbit nor fallback flag", ErrCatalog, id)
		}
	}
	return fallbackID, nil
}

// Get returns the body with the given id, or false if it is not in the
// catalog. The returned value is a copy.
func (c *Catalog) Get(id int) (model.Body, bool) {
	b, ok := c.bodies[id]
	if !ok {
		return model.Body{}, false
	}
	return b.Clone(), true
}

// All returns every body in ascending id order, as copies.
func (c *Catalog) All() []model.Body {
	out := make([]model.Body, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.bodies[id].Clone())
	}
	return out
}

// Root returns the hierarchy root (the barycentric frame origin).
func (c *Catalog) Root() model.Body {
	return c.bodies[c.root].Clone()
}

// FallbackBody returns the one root child resolved by the negated-sum rule.
func (c *Catalog) FallbackBody() model.Body {
	return c.bodies[c.fallback].Clone()
}

// Len returns the number of bodies in the catalog.
func (c *Catalog) Len() int { return len(c.order) }
