// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// impl_star.go — implementation of Star(center, leaves) constructor.
//
// Contract:
//   • len(leaves) ≥ 1 (else ErrTooFewPoints).
//   • Creates the center first, then the leaves in input order.
//   • Emits one spoke center → leaf per leaf, in input order.
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
	methodStar    = "Star"
	minStarLeaves = 1
)

// Star returns a Constructor that builds a hub-and-spoke wireframe: one
// center point connected to every leaf coordinate.
func Star(center [3]int64, leaves [][3]int64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if len(leaves) < minStarLeaves {
			return fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, len(leaves), minStarLeaves, ErrTooFewPoints)
		}

		hub := cfg.place(m, center[0], center[1], center[2])
		for _, c := range leaves {
			leaf := cfg.place(m, c[0], c[1], c[2])
			if _, err := m.AddLine(hub, leaf); err != nil {
				return fmt.Errorf("%s: AddLine(%d→%d): %w", methodStar, hub, leaf, err)
			}
		}

		return nil
	}
}
