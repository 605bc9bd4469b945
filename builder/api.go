// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildModel(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical models, handle for handle.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/model"
)

// Constructor applies a deterministic model mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Use only the public model API, so model policy modes apply uniformly.
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates shape logic behind a uniform function type.
type Constructor func(m *model.Model, cfg builderConfig) error

// BuildModel creates a new model.Model with model options mopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with the context
// "BuildModel: %w" and returned immediately; no partial cleanup is
// attempted by design (the caller discards the model on error).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with
//     errors.Is against builder sentinels (ErrTooFewPoints, ErrBadDimension,
//     ErrConstructFailed) or model sentinels surfaced by strict mode.
//
// Complexity: O(len(bopts)) resolution plus the sum of constructor costs.
func BuildModel(mopts []model.ModelOption, bopts []BuilderOption, cons ...Constructor) (*model.Model, error) {
	m := model.NewModel(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor up front instead of panicking later.
		if fn == nil {
			return nil, fmt.Errorf("BuildModel: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildModel: %w", err)
		}
	}

	return m, nil
}

// =============================================================================
// Shape factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Create points via cfg.place in a stable, documented order.
//   - Emit lines in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.
//
// Polyline(pts) — open chain through len(pts) ≥ 2 coordinates.
// Polygon(pts)  — closed ring through len(pts) ≥ 3 coordinates.
// Grid(r, c, s) — r×c planar lattice with spacing s, 4-neighborhood lines.
// Box(w, h, d)  — axis-aligned cuboid wireframe: 8 points, 12 lines.
// Star(c, ls)   — center plus one spoke per leaf coordinate.
