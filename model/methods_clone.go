// Package model: maintenance, snapshots, and cloning.

package model

// ModelStats is a read-only snapshot of a Model's policy flags and catalog
// sizes, including a tally of structural oddities the permissive mode can
// accumulate: dangling lines (an endpoint handle with no stored point) and
// stale adjacency entries (an incident handle with no stored line).
type ModelStats struct {
	// StrictEndpoints mirrors the construction-time policy flag.
	StrictEndpoints bool

	// PurgesAdjacency mirrors the construction-time policy flag.
	PurgesAdjacency bool

	// PointCount is the number of stored points.
	PointCount int

	// LineCount is the number of stored lines.
	LineCount int

	// DanglingLineCount tallies lines with at least one missing endpoint.
	DanglingLineCount int

	// StaleAdjacencyCount tallies incident-list entries whose line no
	// longer exists.
	StaleAdjacencyCount int
}

// Stats produces a deterministic snapshot of flags, counts, and
// consistency tallies. Complexity: O(P + L + ΣdegP).
func (m *Model) Stats() *ModelStats {
	stats := ModelStats{
		StrictEndpoints: m.strictEndpoints,
		PurgesAdjacency: m.purgeAdjacency,
		PointCount:      len(m.points),
		LineCount:       len(m.lines),
	}
	for _, l := range m.lines {
		if _, ok := m.points[l.P1]; !ok {
			stats.DanglingLineCount++
			continue
		}
		if _, ok := m.points[l.P2]; !ok {
			stats.DanglingLineCount++
		}
	}
	for _, p := range m.points {
		for _, lh := range p.Lines {
			if _, ok := m.lines[lh]; !ok {
				stats.StaleAdjacencyCount++
			}
		}
	}

	return &stats
}

// Compact drops every stale incident-list entry (a handle whose line no
// longer exists) from every point, and returns how many entries were
// dropped. In purge mode there is nothing to do; in the default mode this
// is the batch counterpart of WithAdjacencyPurge.
// Complexity: O(ΣdegP).
func (m *Model) Compact() int {
	dropped := 0
	for _, p := range m.points {
		kept := p.Lines[:0]
		for _, lh := range p.Lines {
			if _, ok := m.lines[lh]; ok {
				kept = append(kept, lh)
			} else {
				dropped++
			}
		}
		p.Lines = kept
	}

	return dropped
}

// Clear resets the model to the empty state but preserves its policy
// flags. Handle counters restart, so the next AddPoint/AddLine issue
// handle 1 again, exactly as on a freshly constructed Model.
func (m *Model) Clear() {
	m.points = make(map[PointHandle]*Point)
	m.lines = make(map[LineHandle]*Line)
	m.nextPoint = 0
	m.nextLine = 0
}

// CloneEmpty returns a new empty Model with identical policy flags and
// with the handle counters carried over, so handles issued by the clone
// never collide with handles observed in the source.
// Complexity: O(1).
func (m *Model) CloneEmpty() *Model {
	var opts []ModelOption
	if m.strictEndpoints {
		opts = append(opts, WithStrictEndpoints())
	}
	if m.purgeAdjacency {
		opts = append(opts, WithAdjacencyPurge())
	}
	clone := NewModel(opts...)
	clone.nextPoint = m.nextPoint
	clone.nextLine = m.nextLine

	return clone
}

// Clone returns a deep copy of the Model: flags, counters, points
// (including incident lists), and lines. Mutating either model afterwards
// never affects the other.
// Complexity: O(P + L + ΣdegP).
func (m *Model) Clone() *Model {
	clone := m.CloneEmpty()
	for h, p := range m.points {
		np := *p
		np.Lines = append([]LineHandle(nil), p.Lines...)
		clone.points[h] = &np
	}
	for h, l := range m.lines {
		nl := *l
		clone.lines[h] = &nl
	}

	return clone
}
