package core

import (
	"fmt"
	"sort"
)

// Hierarchy is an index-based view over a validated Catalog: parent and
// children lookups plus a root-first topological ordering of the whole
// tree. Like the catalog it is built once and immutable.
type Hierarchy struct {
	cat      *Catalog
	parents  map[int]int
	children map[int][]int
	topo     []int
}

// BuildHierarchy derives the parent/children tables from the catalog and
// re-confirms acyclicity by walking the whole tree from the root. A body
// unreachable from the root fails with ErrCatalog.
func BuildHierarchy(cat *Catalog) (*Hierarchy, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrCatalog)
	}

	parents := make(map[int]int, cat.Len())
	children := make(map[int][]int, cat.Len())
	for _, b := range cat.All() {
		if b.Parent != nil {
			parents[b.ID] = *b.Parent
			children[*b.Parent] = append(children[*b.Parent], b.ID)
		}
	}
	for _, kids := range children {
		sort.Ints(kids)
	}

	// Root-first breadth-first walk doubles as a topological ordering;
	// anything we never reach is disconnected from the root.
	topo := make([]int, 0, cat.Len())
	queue := []int{cat.Root().ID}
	seen := map[int]struct{}{cat.Root().ID: {}}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		topo = append(topo, id)
		for _, child := range children[id] {
			if _, dup := seen[child]; dup {
				return nil, fmt.Errorf("%w: body %d reached twice", ErrCycle, child)
			}
			seen[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	if len(topo) != cat.Len() {
		for _, b := range cat.All() {
			if _, ok := seen[b.ID]; !ok {
				return nil, fmt.Errorf("%w: body %d unreachable from root", ErrCatalog, b.ID)
			}
		}
	}

	return &Hierarchy{
		cat:      cat,
		parents:  parents,
		children: children,
		topo:     topo,
	}, nil
}

// ChildrenOf returns the direct children of id in ascending order, empty
// for leaves and unknown ids.
func (h *Hierarchy) ChildrenOf(id int) []int {
	kids := h.children[id]
	out := make([]int, len(kids))
	copy(out, kids)
	return out
}

// ParentOf returns the parent of id, or false for the root and for ids not
// in the catalog.
func (h *Hierarchy) ParentOf(id int) (int, bool) {
	p, ok := h.parents[id]
	return p, ok
}

// Ancestors returns the chain from the root down to id, root first and
// ending at id itself. Unknown ids fail with ErrBodyNotFound. A walk longer
// than the catalog's body count fails with ErrCycle; construction already
// forbids cycles, so the guard is defensive.
func (h *Hierarchy) Ancestors(id int) ([]int, error) {
	if _, ok := h.cat.Get(id); !ok {
		return nil, fmt.Errorf("%w: %d", ErrBodyNotFound, id)
	}

	chain := []int{id}
	cur := id
	for {
		parent, ok := h.parents[cur]
		if !ok {
			break
		}
		chain = append(chain, parent)
		if len(chain) > h.cat.Len() {
			return nil, fmt.Errorf("%w: ancestor chain for body %d exceeds %d bodies", ErrCycle, id, h.cat.Len())
		}
		cur = parent
	}

	// Reverse in place: the walk collected child-first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// TopoOrder returns all body ids root-first, so that every parent precedes
// its children. Useful for whole-system resolution in one pass.
func (h *Hierarchy) TopoOrder() []int {
	out := make([]int, len(h.topo))
	copy(out, h.topo)
	return out
}
