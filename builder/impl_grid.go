// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// impl_grid.go — implementation of Grid(rows, cols, spacing) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, spacing ≥ 1 (else ErrBadDimension).
//   • Creates points row-major at (c·spacing, r·spacing, 0).
//   • Emits lines row-major: for each cell, first the line to the right
//     neighbor (if any), then the line to the neighbor below (if any).
//   • Returns only sentinel/model errors; never panics at runtime.
//
// Complexity:
//   • Time: O(R·C) points + O(R·C) lines. Space: O(R·C) handles.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/model"
)

const (
	methodGrid     = "Grid"
	minGridRows    = 1
	minGridCols    = 1
	minGridSpacing = int64(1)
)

// Grid returns a Constructor that builds a planar rows×cols lattice in the
// z=0 plane with 4-neighborhood connectivity.
func Grid(rows, cols int, spacing int64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if rows < minGridRows || cols < minGridCols {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrBadDimension)
		}
		if spacing < minGridSpacing {
			return fmt.Errorf("%s: spacing=%d: %w", methodGrid, spacing, ErrBadDimension)
		}

		// Create lattice points row-major so handle order matches reading order.
		handles := make([]model.PointHandle, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				handles[r*cols+c] = cfg.place(m, int64(c)*spacing, int64(r)*spacing, 0)
			}
		}

		// Connect 4-neighborhoods; each undirected link is emitted once.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cur := handles[r*cols+c]
				if c+1 < cols {
					right := handles[r*cols+c+1]
					if _, err := m.AddLine(cur, right); err != nil {
						return fmt.Errorf("%s: AddLine(%d→%d): %w", methodGrid, cur, right, err)
					}
				}
				if r+1 < rows {
					below := handles[(r+1)*cols+c]
					if _, err := m.AddLine(cur, below); err != nil {
						return fmt.Errorf("%s: AddLine(%d→%d): %w", methodGrid, cur, below, err)
					}
				}
			}
		}

		return nil
	}
}
