// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// impl_box.go — implementation of Box(w, h, d) constructor.
//
// Contract:
//   • w ≥ 1, h ≥ 1, d ≥ 1 (else ErrBadDimension).
//   • Creates the 8 corners in binary order: bit 0 selects x∈{0,w},
//     bit 1 selects y∈{0,h}, bit 2 selects z∈{0,d}; corner i is the point
//     for the three bits of i.
//   • Emits the 12 edges in stable order: for corner i ascending, one line
//     per set-able bit to the corner with that bit flipped on (so each
//     edge is emitted exactly once, from the lower-indexed corner).
//   • Returns only sentinel/model errors; never panics at runtime.
//
// Complexity:
//   • Time: O(1) — 8 points + 12 lines. Space: O(1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/model"
)

const (
	methodBox    = "Box"
	minBoxExtent = int64(1)
	boxCorners   = 8
	boxAxes      = 3
)

// Box returns a Constructor that builds an axis-aligned cuboid wireframe
// with one corner at the (scaled, translated) origin and extents w, h, d
// along x, y, z.
func Box(w, h, d int64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if w < minBoxExtent || h < minBoxExtent || d < minBoxExtent {
			return fmt.Errorf("%s: extents=(%d,%d,%d): %w", methodBox, w, h, d, ErrBadDimension)
		}

		extents := [boxAxes]int64{w, h, d}

		// Corner i encodes its position bitwise: bit k set ⇒ offset along axis k.
		var corners [boxCorners]model.PointHandle
		for i := 0; i < boxCorners; i++ {
			var xyz [boxAxes]int64
			for k := 0; k < boxAxes; k++ {
				if i&(1<<k) != 0 {
					xyz[k] = extents[k]
				}
			}
			corners[i] = cfg.place(m, xyz[0], xyz[1], xyz[2])
		}

		// An edge joins corners differing in exactly one bit; emit it from
		// the corner where that bit is clear.
		for i := 0; i < boxCorners; i++ {
			for k := 0; k < boxAxes; k++ {
				if i&(1<<k) != 0 {
					continue
				}
				u, v := corners[i], corners[i|1<<k]
				if _, err := m.AddLine(u, v); err != nil {
					return fmt.Errorf("%s: AddLine(%d→%d): %w", methodBox, u, v, err)
				}
			}
		}

		return nil
	}
}
