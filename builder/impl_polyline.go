// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// impl_polyline.go — implementation of Polyline(pts) constructor.
//
// Contract:
//   • len(pts) ≥ 2 (else ErrTooFewPoints).
//   • Creates points via cfg.place in input order.
//   • Emits lines in stable order pts[i] → pts[i+1] for i=0..n-2.
//   • Returns only sentinel/model errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) points + O(n-1) lines. Space: O(n) handles.
//
// Determinism:
//   • Point handles follow input order; line handles follow chain order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/model"
)

const (
	methodPolyline    = "Polyline"
	minPolylinePoints = 2
)

// Polyline returns a Constructor that builds an open chain through the
// given coordinates, connecting each consecutive pair with a line.
func Polyline(pts [][3]int64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if len(pts) < minPolylinePoints {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPolyline, len(pts), minPolylinePoints, ErrTooFewPoints)
		}

		// Create all points first, in input order.
		handles := make([]model.PointHandle, len(pts))
		for i, c := range pts {
			handles[i] = cfg.place(m, c[0], c[1], c[2])
		}

		// Connect consecutive points in ascending i.
		for i := 0; i+1 < len(handles); i++ {
			if _, err := m.AddLine(handles[i], handles[i+1]); err != nil {
				return fmt.Errorf("%s: AddLine(%d→%d): %w", methodPolyline, handles[i], handles[i+1], err)
			}
		}

		return nil
	}
}
