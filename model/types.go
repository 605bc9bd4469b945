// Package model defines the central Model, Point, and Line types, and
// provides the handle-indexed primitives for building and tearing down
// wireframe geometry.
//
// All cross-references between points and lines are integer handles into
// flat maps owned by the Model, never pointers, so the point↔line cycle
// carries no ownership.
//
// This file declares Point, Line, Model, ModelOption, the handle types,
// sentinel errors, and the NewModel constructor.
//
// Errors:
//
//	ErrInvalidHandle - handle is zero (handles start at 1).
//	ErrPointNotFound - requested point does not exist.
//	ErrLineNotFound  - requested line does not exist.
package model

import "errors"

// Sentinel errors for model operations.
var (
	// ErrInvalidHandle indicates a zero handle; valid handles start at 1.
	ErrInvalidHandle = errors.New("model: invalid zero handle")

	// ErrPointNotFound indicates an operation referenced a non-existent point.
	ErrPointNotFound = errors.New("model: point not found")

	// ErrLineNotFound indicates an operation referenced a non-existent line.
	ErrLineNotFound = errors.New("model: line not found")
)

// PointHandle identifies a Point within its Model.
//
// Handles are strictly positive, allocated in ascending order starting at 1,
// and never reused after the point is removed. Point and line handles are
// independent sequences.
type PointHandle uint64

// LineHandle identifies a Line within its Model, with the same allocation
// guarantees as PointHandle.
type LineHandle uint64

// Point is a location in homogeneous coordinates together with the handles
// of the lines currently incident to it.
//
// Lines is maintained in line-creation order, which is ascending handle
// order. It may contain stale entries for lines removed via RemoveLine or a
// RemovePoint cascade unless the Model was built WithAdjacencyPurge
// (see doc.go).
type Point struct {
	// X, Y, Z, W are the four homogeneous coordinates. W carries no special
	// interpretation inside this package.
	X, Y, Z, W int64

	// Lines holds the handles of incident lines.
	Lines []LineHandle
}

// Equal reports whether p and q have identical coordinates and identical
// incident-line lists.
func (p Point) Equal(q Point) bool {
	if p.X != q.X || p.Y != q.Y || p.Z != q.Z || p.W != q.W {
		return false
	}
	if len(p.Lines) != len(q.Lines) {
		return false
	}
	for i, h := range p.Lines {
		if q.Lines[i] != h {
			return false
		}
	}

	return true
}

// Line is an ordered pair of point handles. Equality is structural and
// order-sensitive: two Lines are equal iff P1 and P2 match pairwise, so
// plain == comparison is the intended test.
//
// A Line may reference a point handle that no longer (or never) existed;
// the Model does not chase endpoints at read time.
type Line struct {
	// P1 is the first endpoint's handle.
	P1 PointHandle

	// P2 is the second endpoint's handle.
	P2 PointHandle
}

// ModelOption configures behavior of a Model before creation.
type ModelOption func(m *Model)

// WithStrictEndpoints makes AddLine reject endpoints that do not name an
// existing point (ErrPointNotFound) instead of silently creating a
// dangling line. Off by default.
func WithStrictEndpoints() ModelOption {
	return func(m *Model) { m.strictEndpoints = true }
}

// WithAdjacencyPurge makes RemoveLine and the RemovePoint cascade scrub the
// removed line handles from surviving endpoints' incident lists. Off by
// default, in which case removed handles linger as stale entries until
// Compact is called.
func WithAdjacencyPurge() ModelOption {
	return func(m *Model) { m.purgeAdjacency = true }
}

// Model is the owning container for all points and lines.
//
// Points and lines live in handle-keyed maps; nextPoint/nextLine are
// monotonic counters so handles are never reused, even after the
// highest-numbered entity is removed. The Model performs no internal
// locking: it is single-threaded by contract, and concurrent callers must
// provide their own mutual exclusion.
type Model struct {
	// Policy flags, immutable after construction.
	strictEndpoints bool // reject dangling endpoints in AddLine
	purgeAdjacency  bool // eagerly scrub incident lists on removal

	// Storage.
	nextPoint uint64                 // last issued point handle
	nextLine  uint64                 // last issued line handle
	points    map[PointHandle]*Point // point handle → Point
	lines     map[LineHandle]*Line   // line handle → Line
}

// NewModel creates an empty Model with the given options.
// By default the Model is permissive: dangling endpoints are allowed and
// stale adjacency entries are left in place.
// Complexity: O(1)
func NewModel(opts ...ModelOption) *Model {
	m := &Model{
		points: make(map[PointHandle]*Point),
		lines:  make(map[LineHandle]*Line),
	}
	// Apply options
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// StrictEndpoints reports whether AddLine rejects missing endpoints.
func (m *Model) StrictEndpoints() bool { return m.strictEndpoints }

// PurgesAdjacency reports whether removals eagerly scrub incident lists.
func (m *Model) PurgesAdjacency() bool { return m.purgeAdjacency }
