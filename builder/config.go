// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • origin = (0,0,0)   (no translation)
//   • scale  = 1         (coordinates pass through unchanged)
//   • homW   = 1         (standard affine point, w=1)

package builder

import "github.com/katalvlaran/lvlgeom/model"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Translation added to every generated coordinate, after scaling.
	originX, originY, originZ int64
	// Multiplier applied to every generated coordinate. Never zero.
	scale int64
	// W coordinate assigned to every generated point.
	homW int64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultScale = int64(1) // identity scaling
	defaultHomW  = int64(1) // affine points by convention
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order, last-wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale: defaultScale,
		homW:  defaultHomW,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// place inserts one generated point: scale, then translate, then attach
// the configured homogeneous W. Deterministic for a fixed config.
func (cfg builderConfig) place(m *model.Model, x, y, z int64) model.PointHandle {
	return m.AddPoint(
		cfg.originX+x*cfg.scale,
		cfg.originY+y*cfg.scale,
		cfg.originZ+z*cfg.scale,
		cfg.homW,
	)
}
