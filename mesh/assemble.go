package mesh

import (
	"errors"

	"github.com/katalvlaran/tristrip/adjacency"
	"github.com/katalvlaran/tristrip/strip"
)

// AssembleStrips converts a flat triangle index list into a StripSet.
// It is the sole place Empty is checked — an empty input has no
// triangles to assemble, so it is rejected outright rather than
// returning an empty StripSet. Everything adjacency.Build can detect
// (DegenerateTriangle, NonManifold) is translated into a *StripError
// here rather than re-validated. TooManyVertices is a distinct
// concern, surfaced earlier by NarrowIndices whenever a wider index
// type needs narrowing before it ever reaches AssembleStrips.
func AssembleStrips(indices []VertexIndex, opts ...Option) (StripSet, error) {
	cfg := newConfig(opts)

	if len(indices) == 0 {
		return nil, &StripError{Kind: Empty, Triangle: -1}
	}

	records, err := adjacency.Build(indices, cfg.observer)
	if err != nil {
		return nil, toStripError(err)
	}

	strips := strip.Walk(records, cfg.stripOpts...)
	return StripSet(strips), nil
}

// toStripError translates adjacency's *BuildError into the boundary
// layer's *StripError, preserving the offending triangle/edge context.
func toStripError(err error) error {
	var be *adjacency.BuildError
	if !errors.As(err, &be) {
		return err
	}
	kind := NonManifold
	if errors.Is(be.Err, adjacency.ErrDegenerateTriangle) {
		kind = DegenerateTriangle
	}
	return &StripError{Kind: kind, Triangle: be.Triangle, Edge: be.Edge}
}
