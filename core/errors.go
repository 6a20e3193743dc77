package core

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalog wraps every structural catalog defect: duplicate ids,
	// dangling parent references, zero or multiple roots, malformed
	// orbital elements, broken fallback configuration. Fatal at load.
	ErrCatalog = errors.New("invalid catalog")

	// ErrCycle indicates the hierarchy traversal exceeded the body count.
	// Construction forbids cycles, so hitting this means a logic defect
	// or a corrupted catalog.
	ErrCycle = errors.New("hierarchy cycle")

	// ErrBodyNotFound is returned for lookups of unknown body ids.
	ErrBodyNotFound = errors.New("body not found")

	// ErrUnresolvedBody marks a non-root body with neither canonical
	// orbital elements nor an applicable fallback rule. This is a
	// configuration defect, never a transient condition.
	ErrUnresolvedBody = errors.New("no orbit or fallback rule for body")
)

// NumericalError reports a Kepler solve that failed to converge within the
// iteration cap. The last residual and iteration count are carried so the
// caller can decide whether to retry with a relaxed tolerance; this package
// never does so itself.
type NumericalError struct {
	Residual   float64
	Iterations int
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("kepler solver did not converge after %d iterations (residual %g rad)",
		e.Iterations, e.Residual)
}
