// File: view.go
// Role: Non-mutating model views (copying a slice of the geometry).
// Determinism:
//   - Preserves point/line handles. Incident lists are rebuilt in ascending
//     line-handle order.
// Concurrency:
//   - None inside the package; the caller synchronizes, as everywhere else.

package model

import "sort"

// InducedSubmodel returns a new Model induced by the set "keep" of point
// handles: the result contains only points p where keep[p] is true, and
// all lines whose endpoints are both kept. The input model is not mutated.
//
// Incident-line lists in the result are rebuilt from the surviving lines,
// so the view never contains stale or dangling references regardless of
// the source's purge policy. Handle counters are carried over from the
// source, so future insertions into the view cannot collide with
// historical handles.
//
// Complexity: O(P + L log L + ΣdegP).
func InducedSubmodel(m *Model, keep map[PointHandle]bool) *Model {
	out := m.CloneEmpty()

	// Copy only kept points, with fresh (empty) incident lists.
	for h, p := range m.points {
		if keep[h] {
			out.points[h] = &Point{X: p.X, Y: p.Y, Z: p.Z, W: p.W}
		}
	}

	// Collect surviving lines, then attach them in ascending handle order
	// so rebuilt incident lists match creation order. Survival is decided
	// against the copied catalog, not the caller's keep map: a kept handle
	// with no stored point (a dangling endpoint) drops the line like any
	// other non-interior line.
	survivors := make([]LineHandle, 0, len(m.lines))
	for h, l := range m.lines {
		_, ok1 := out.points[l.P1]
		_, ok2 := out.points[l.P2]
		if ok1 && ok2 {
			survivors = append(survivors, h)
		}
	}
	sort.Slice(survivors, func(i, j int) bool { return survivors[i] < survivors[j] })

	for _, h := range survivors {
		l := m.lines[h]
		out.lines[h] = &Line{P1: l.P1, P2: l.P2}
		// One append per endpoint occurrence, mirroring AddLine: a
		// degenerate line is recorded twice on its single point.
		out.points[l.P1].Lines = append(out.points[l.P1].Lines, h)
		out.points[l.P2].Lines = append(out.points[l.P2].Lines, h)
	}

	return out
}
