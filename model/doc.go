// Package model provides the owning container for wireframe geometry:
// points in homogeneous coordinates and the line segments between them,
// cross-referenced exclusively through integer handles.
//
// The Model M = (P,L) is built around one storage decision:
//
//   - Points and lines live in flat maps keyed by their handles
//   - A point records the handles of its incident lines
//   - A line records the handles of its two endpoints
//   - No pointer ever crosses between the two catalogs, so the mutual
//     point↔line relationship carries no ownership cycle
//   - Handles are strictly positive, monotonically increasing, never
//     reused, and independently numbered per catalog
//
// Why use model.Model?
//
//   - Cascade deletion — RemovePoint deletes every line touching the point
//     in the same call, driven by the incident-line bookkeeping.
//   - Deterministic iteration — Points() and Lines() return handles in
//     ascending order, which is creation order.
//   - Explicit policies — the two historically permissive behaviors are
//     opt-in hardened via options; the defaults reproduce the permissive
//     semantics faithfully.
//   - Clone support — CloneEmpty (flags + counters), Clone (deep copy),
//     InducedSubmodel (consistent sliced view).
//
// Configuration Options (ModelOption):
//
//	– WithStrictEndpoints()
//	    AddLine(p1,p2) fails with ErrPointNotFound when either endpoint is
//	    missing, instead of storing a dangling line.
//	    Without it, the line is stored anyway and the missing endpoint's
//	    adjacency update is silently skipped.
//
//	– WithAdjacencyPurge()
//	    RemoveLine and the RemovePoint cascade scrub removed handles from
//	    surviving endpoints' incident lists.
//	    Without it, those lists keep stale entries (harmless to cascade
//	    correctness; Compact() cleans them in batch).
//
// Core Methods:
//
//	// Point lifecycle
//	AddPoint(x,y,z,w int64) PointHandle        // O(1), infallible
//	HasPoint(h PointHandle) bool               // O(1)
//	RemovePoint(h PointHandle) error           // O(deg(p)), cascades
//
//	// Line lifecycle
//	AddLine(p1,p2 PointHandle) (LineHandle, error) // O(1)
//	HasLine(h LineHandle) bool                     // O(1)
//	RemoveLine(h LineHandle)                       // O(1), idempotent no-op
//
//	// Query
//	Point(h) (Point, error)                   // O(deg(p)) copy
//	Line(h) (Line, error)                     // O(1) copy
//	PointLines(h) ([]LineHandle, error)       // O(deg(p)) copy
//	Points() []PointHandle                    // O(P·log P), ascending
//	Lines() []LineHandle                      // O(L·log L), ascending
//	PointCount() int / LineCount() int        // O(1)
//
//	// Maintenance
//	Clear()                                   // reset storage and counters
//	Compact() int                             // drop stale incident entries
//	FilterLines(pred func(Line) bool)         // O(L)
//	Stats() *ModelStats                       // O(P+L+ΣdegP) snapshot
//
//	// Cloning & views
//	CloneEmpty() *Model                       // flags + counters only
//	Clone() *Model                            // deep copy
//	InducedSubmodel(m, keep) *Model           // kept points + interior lines
//
// Errors:
//
//	ErrInvalidHandle – zero handle (valid handles start at 1)
//	ErrPointNotFound – missing point on lookup/removal, or a missing
//	                   AddLine endpoint in strict mode
//	ErrLineNotFound  – missing line on Line(h) lookup
//
// Concurrency: the Model performs no internal locking. Every operation is
// a synchronous in-memory mutation; callers sharing a Model across
// goroutines must serialize access themselves (a single writer lock is
// enough). This is a deliberate contract of the component, not an
// oversight.
package model
