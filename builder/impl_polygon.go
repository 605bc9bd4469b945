// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// impl_polygon.go — implementation of Polygon(pts) constructor.
//
// Contract:
//   • len(pts) ≥ 3 (else ErrTooFewPoints).
//   • Creates points via cfg.place in input order.
//   • Emits lines in stable order pts[i] → pts[(i+1)%n] for i=0..n-1,
//     closing the ring with the final line back to pts[0].
//   • Returns only sentinel/model errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) points + O(n) lines. Space: O(n) handles.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/model"
)

const (
	methodPolygon    = "Polygon"
	minPolygonPoints = 3
)

// Polygon returns a Constructor that builds a closed ring through the
// given coordinates.
func Polygon(pts [][3]int64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		// A ring through fewer than three points degenerates into a
		// doubled segment or a single point; reject it.
		if len(pts) < minPolygonPoints {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygon, len(pts), minPolygonPoints, ErrTooFewPoints)
		}

		handles := make([]model.PointHandle, len(pts))
		for i, c := range pts {
			handles[i] = cfg.place(m, c[0], c[1], c[2])
		}

		// Emit ring lines in ascending i; the last line closes the loop.
		for i := range handles {
			u, v := handles[i], handles[(i+1)%len(handles)]
			if _, err := m.AddLine(u, v); err != nil {
				return fmt.Errorf("%s: AddLine(%d→%d): %w", methodPolygon, u, v, err)
			}
		}

		return nil
	}
}
