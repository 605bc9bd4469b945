// Package model: point lifecycle and query methods.
//
// This file provides the point half of the Model API: insertion, lookup,
// incident-line queries, ordered iteration, and cascade-consistent removal.
// Storage is a flat map keyed by PointHandle; deterministic iteration is
// recovered by sorting the keys, which is also creation order because
// handles are monotonic.

package model

import "sort"

// AddPoint inserts a new point with the given homogeneous coordinates and
// an empty incident-line list, and returns its freshly allocated handle.
// Never fails; the first point of an empty model gets handle 1.
// Complexity: O(1) amortized.
func (m *Model) AddPoint(x, y, z, w int64) PointHandle {
	// Allocate the next handle from the monotonic counter.
	m.nextPoint++
	h := PointHandle(m.nextPoint)
	// Store the point; Lines stays nil until the first incident line.
	m.points[h] = &Point{X: x, Y: y, Z: z, W: w}

	return h
}

// HasPoint reports whether a point with the given handle exists.
// Complexity: O(1).
func (m *Model) HasPoint(h PointHandle) bool {
	_, exists := m.points[h]

	return exists
}

// Point returns a copy of the stored point, with its incident-line list
// duplicated so callers cannot mutate model state through the result.
// Returns ErrInvalidHandle for a zero handle, ErrPointNotFound otherwise
// when absent.
// Complexity: O(deg(p)) for the list copy.
func (m *Model) Point(h PointHandle) (Point, error) {
	if h == 0 {
		return Point{}, ErrInvalidHandle
	}
	p, exists := m.points[h]
	if !exists {
		return Point{}, ErrPointNotFound
	}
	// Copy the struct, then detach the slice.
	out := *p
	out.Lines = append([]LineHandle(nil), p.Lines...)

	return out, nil
}

// PointLines returns a copy of the incident-line list for the given point.
// The list is in line-creation order and may contain stale handles for
// lines already removed, unless the model purges adjacency (see doc.go).
// Returns ErrInvalidHandle for a zero handle, ErrPointNotFound when the
// point does not exist.
// Complexity: O(deg(p)).
func (m *Model) PointLines(h PointHandle) ([]LineHandle, error) {
	if h == 0 {
		return nil, ErrInvalidHandle
	}
	p, exists := m.points[h]
	if !exists {
		return nil, ErrPointNotFound
	}

	// Always copy: the internal slice must stay private.
	return append([]LineHandle(nil), p.Lines...), nil
}

// RemovePoint deletes the point and cascades to every line currently
// recorded as incident to it. Returns ErrInvalidHandle for a zero handle,
// ErrPointNotFound if the point does not exist; a second call for the same
// handle therefore reports ErrPointNotFound and changes nothing.
//
// Without WithAdjacencyPurge the cascade leaves the removed line handles
// in the other endpoints' incident lists as stale entries.
// Complexity: O(deg(p)), plus the purge cost per cascaded line when enabled.
func (m *Model) RemovePoint(h PointHandle) error {
	if h == 0 {
		return ErrInvalidHandle
	}
	p, exists := m.points[h]
	if !exists {
		return ErrPointNotFound
	}

	// Cascade: drop every line recorded as incident to this point.
	// Degenerate lines (p1 == p2) appear twice in the list; the second
	// map delete is a harmless no-op.
	for _, lh := range p.Lines {
		l, ok := m.lines[lh]
		if !ok {
			continue // stale entry from an earlier RemoveLine
		}
		delete(m.lines, lh)
		if m.purgeAdjacency {
			m.scrubIncident(l, lh, h)
		}
	}

	// Remove the point itself.
	delete(m.points, h)

	return nil
}

// Points returns all point handles in ascending order, which is creation
// order since handles are monotonic and never reused.
// Complexity: O(P log P).
func (m *Model) Points() []PointHandle {
	out := make([]PointHandle, 0, len(m.points))
	for h := range m.points {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// PointCount returns the number of stored points. O(1).
func (m *Model) PointCount() int {
	return len(m.points)
}

// scrubIncident removes handle lh from the incident lists of l's endpoints,
// skipping the endpoint named by except (already being deleted) and any
// endpoint that no longer exists. Removes every occurrence, so degenerate
// lines are fully scrubbed.
func (m *Model) scrubIncident(l *Line, lh LineHandle, except PointHandle) {
	for _, ph := range [2]PointHandle{l.P1, l.P2} {
		if ph == except {
			continue
		}
		p, ok := m.points[ph]
		if !ok {
			continue
		}
		kept := p.Lines[:0]
		for _, cur := range p.Lines {
			if cur != lh {
				kept = append(kept, cur)
			}
		}
		p.Lines = kept
	}
}
