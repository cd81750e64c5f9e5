package mesh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tristrip/adjacency"
)

// ErrorKind classifies a StripError.
type ErrorKind int

const (
	NonManifold ErrorKind = iota
	DegenerateTriangle
	TooManyVertices
	Empty
)

func (k ErrorKind) String() string {
	switch k {
	case NonManifold:
		return "non-manifold edge"
	case DegenerateTriangle:
		return "degenerate triangle"
	case TooManyVertices:
		return "too many vertices"
	case Empty:
		return "empty mesh"
	default:
		return "unknown error kind"
	}
}

// Sentinel errors, exposed package-level so callers use errors.Is
// rather than inspecting StripError.Kind directly (mirroring
// lvlath/core's "only sentinel variables are exposed" convention).
var (
	ErrNonManifold        = errors.New("mesh: non-manifold edge")
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle")
	ErrTooManyVertices    = errors.New("mesh: too many vertices")
	ErrEmpty              = errors.New("mesh: empty mesh")
)

func sentinelFor(k ErrorKind) error {
	switch k {
	case NonManifold:
		return ErrNonManifold
	case DegenerateTriangle:
		return ErrDegenerateTriangle
	case TooManyVertices:
		return ErrTooManyVertices
	default:
		return ErrEmpty
	}
}

// StripError reports the boundary-layer view of a failed
// AssembleStrips call: the error kind plus whatever offending
// triangle/edge context is available, so a caller can report exactly
// what went wrong without re-deriving it.
type StripError struct {
	Kind     ErrorKind
	Triangle int            // offending triangle index, -1 if not applicable
	Edge     adjacency.Edge // offending canonical edge, 0 if not applicable
}

func (e *StripError) Error() string {
	if e.Triangle < 0 {
		return fmt.Sprintf("mesh: %s", e.Kind)
	}
	return fmt.Sprintf("mesh: %s (triangle %d, edge %#x)", e.Kind, e.Triangle, uint32(e.Edge))
}

// Is lets errors.Is(err, mesh.ErrNonManifold) (and friends) succeed
// without the caller ever inspecting Kind.
func (e *StripError) Is(target error) bool {
	return errors.Is(sentinelFor(e.Kind), target)
}
