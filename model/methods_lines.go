// Package model: line lifecycle and query methods.
//
// AddLine performs the adjacency bookkeeping that makes point deletion
// cascade: the new handle is appended to each endpoint's incident list.
// In the default permissive mode that bookkeeping is best-effort per
// endpoint — a missing endpoint is silently skipped and the line is stored
// anyway, dangling. WithStrictEndpoints turns that case into an error.

package model

import "sort"

// AddLine stores a new line from p1 to p2 and returns its freshly
// allocated handle. Line handles are numbered independently of point
// handles, also starting at 1.
//
// For each endpoint that currently exists, the new handle is appended to
// that point's incident-line list; a degenerate line (p1 == p2) is
// recorded on its point twice. In the default mode a missing endpoint is
// skipped silently and the call still succeeds. With strict endpoints the
// call returns ErrPointNotFound, and no line is created, unless both
// endpoints exist.
// Complexity: O(1) amortized.
func (m *Model) AddLine(p1, p2 PointHandle) (LineHandle, error) {
	if m.strictEndpoints {
		if _, ok := m.points[p1]; !ok {
			return 0, ErrPointNotFound
		}
		if _, ok := m.points[p2]; !ok {
			return 0, ErrPointNotFound
		}
	}

	// Allocate the next handle from the monotonic counter.
	m.nextLine++
	h := LineHandle(m.nextLine)
	m.lines[h] = &Line{P1: p1, P2: p2}

	// Best-effort adjacency update, one append per endpoint occurrence.
	if p, ok := m.points[p1]; ok {
		p.Lines = append(p.Lines, h)
	}
	if p, ok := m.points[p2]; ok {
		p.Lines = append(p.Lines, h)
	}

	return h, nil
}

// HasLine reports whether a line with the given handle exists.
// Complexity: O(1).
func (m *Model) HasLine(h LineHandle) bool {
	_, exists := m.lines[h]

	return exists
}

// Line returns a copy of the stored line. Returns ErrInvalidHandle for a
// zero handle, ErrLineNotFound otherwise when absent.
// Complexity: O(1).
func (m *Model) Line(h LineHandle) (Line, error) {
	if h == 0 {
		return Line{}, ErrInvalidHandle
	}
	l, exists := m.lines[h]
	if !exists {
		return Line{}, ErrLineNotFound
	}

	return *l, nil
}

// RemoveLine deletes the line with the given handle. Removing an absent
// handle is a deliberate no-op, so the call is idempotent and never fails.
//
// Without WithAdjacencyPurge the endpoints' incident lists keep the
// removed handle as a stale entry; with it, every occurrence is scrubbed.
// Complexity: O(1), or O(deg(p1)+deg(p2)) when purging.
func (m *Model) RemoveLine(h LineHandle) {
	l, exists := m.lines[h]
	if !exists {
		return
	}
	delete(m.lines, h)
	if m.purgeAdjacency {
		m.scrubIncident(l, h, 0)
	}
}

// Lines returns all line handles in ascending order, which is creation
// order since handles are monotonic and never reused.
// Complexity: O(L log L).
func (m *Model) Lines() []LineHandle {
	out := make([]LineHandle, 0, len(m.lines))
	for h := range m.lines {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// LineCount returns the number of stored lines. O(1).
func (m *Model) LineCount() int {
	return len(m.lines)
}

// FilterLines removes all lines failing the predicate, honoring the
// model's adjacency-purge policy for each removal.
// Complexity: O(L), plus purge cost per removed line when enabled.
func (m *Model) FilterLines(pred func(Line) bool) {
	for h, l := range m.lines {
		if !pred(*l) {
			delete(m.lines, h)
			if m.purgeAdjacency {
				m.scrubIncident(l, h, 0)
			}
		}
	}
}
