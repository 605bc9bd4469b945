// Package lvlgeom is a compact in-memory toolkit for wireframe geometry:
// points in homogeneous coordinates, line segments between them, and the
// bookkeeping that keeps both sides of that relationship consistent.
//
// 🧩 What is lvlgeom?
//
//	A small, deterministic, pure-Go library built around one idea:
//		• Points and lines live in flat, handle-indexed containers
//		• Cross-references are integer handles, never pointers
//		• Deleting a point cascades to every line that touches it
//
// This "arena + handle" storage sidesteps cyclic-ownership problems
// entirely: a point records which lines are incident to it, a line records
// its two endpoints, and neither ever holds a reference that could keep
// the other alive.
//
// ✨ Why choose lvlgeom?
//
//   - Stable handles – strictly positive, monotonically increasing,
//     never reused, independent per namespace (points vs. lines)
//   - Deterministic iteration – Points() and Lines() walk storage in
//     ascending handle order, which is creation order
//   - Explicit policies – strict endpoint checking and eager adjacency
//     purging are opt-in ModelOptions, permissive behavior is the default
//   - Pure Go – no cgo, no hidden deps, no I/O
//
// Everything is organized under three subpackages:
//
//	model/    — the Model container: Point, Line, handles, cascade deletion
//	builder/  — deterministic wireframe constructors (Polyline, Polygon,
//	            Grid, Box, Star) composed through BuildModel
//	topology/ — structural queries: live degrees, isolated points,
//	            connected components
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	four points and four lines form a quad; RemovePoint(1) deletes the
//	point and both lines touching it in one call.
//
// Rendering, transformation math, persistence and any process surface are
// deliberately out of scope: lvlgeom is the data structure, not the app.
//
//	go get github.com/katalvlaran/lvlgeom
package lvlgeom
