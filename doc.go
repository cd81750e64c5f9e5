// Package tristrip turns a triangulated indexed mesh into a compact
// set of triangle strips.
//
// What is tristrip?
//
//	A deterministic, single-threaded stripifier built around three
//	tightly coupled subsystems:
//
//	  • radixsort  — stable counting sort over small-domain integer keys
//	  • adjacency  — per-triangle adjacency records
//	  • strip      — greedy forward/backward strip growth over adjacency
//
// Under the hood, everything is organized under focused subpackages:
//
//	radixsort/   — stable sort, composite-key support
//	adjacency/   — adjacency builder, canonical edges
//	strip/       — strip walker, seed policies
//	mesh/        — public façade: AssembleStrips, StripSet, StripError
//	observe/     — optional phase instrumentation hooks
//	meshio/      — the on-disk strip/mesh persistence format
//	meshbuilder/ — synthetic mesh generators for tests and demos
//
// Quick example, two triangles sharing an edge:
//
//	0───2
//	│  ╱│
//	│ ╱ │
//	1───3
//
//	triangles (0,1,2), (2,1,3) strip into a single run [0,1,2,3].
//
// The module contains no runnable example programs; the package tests
// show the calls end to end.
//
//	go get github.com/katalvlaran/tristrip/mesh
package tristrip
