// Package topology provides read-only structural queries over a
// model.Model: live degrees, isolated points, and connected components of
// the wireframe.
//
// The package treats lines as undirected links and walks only live
// references: stale incident entries (lines already removed) and dangling
// endpoints (points already removed, or never created) are skipped, so the
// results are meaningful for permissive models without requiring a
// Compact() first.
package topology

import (
	"sort"

	"github.com/katalvlaran/lvlgeom/model"
)

// Degree returns the number of live lines incident to the given point:
// stale incident entries are not counted, and a degenerate line (both
// endpoints equal) counts twice, matching its two incident-list entries.
// Errors follow the model's lookup contract (ErrInvalidHandle,
// ErrPointNotFound).
// Complexity: O(deg(p)).
func Degree(m *model.Model, h model.PointHandle) (int, error) {
	lines, err := m.PointLines(h)
	if err != nil {
		return 0, err
	}
	deg := 0
	for _, lh := range lines {
		if m.HasLine(lh) {
			deg++
		}
	}

	return deg, nil
}

// IsolatedPoints returns, in ascending handle order, every point with no
// live incident line.
// Complexity: O(P + ΣdegP).
func IsolatedPoints(m *model.Model) []model.PointHandle {
	var out []model.PointHandle
	for _, ph := range m.Points() {
		// Handles come from Points(), so the lookup cannot fail.
		deg, _ := Degree(m, ph)
		if deg == 0 {
			out = append(out, ph)
		}
	}

	return out
}

// ConnectedComponents partitions all points into components connected by
// live lines. Components are reported in ascending order of their smallest
// member, and each component's handles are sorted ascending, so the result
// is deterministic for a fixed model state.
// Complexity: O(P log P + ΣdegP).
func ConnectedComponents(m *model.Model) [][]model.PointHandle {
	seen := make(map[model.PointHandle]bool, m.PointCount())
	var comps [][]model.PointHandle

	// Seed BFS from every point in ascending handle order.
	for _, start := range m.Points() {
		if seen[start] {
			continue
		}
		queue := []model.PointHandle{start}
		seen[start] = true
		var comp []model.PointHandle

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			lines, err := m.PointLines(u)
			if err != nil {
				continue
			}
			for _, lh := range lines {
				l, err := m.Line(lh)
				if err != nil {
					continue // stale incident entry
				}
				for _, v := range [2]model.PointHandle{l.P1, l.P2} {
					if v == u || seen[v] || !m.HasPoint(v) {
						continue
					}
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}

		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}

	return comps
}
