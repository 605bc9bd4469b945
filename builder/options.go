// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic at runtime.
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before model construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithOrigin translates every generated point by (x, y, z). Applied after
// scaling, so the origin is in final model coordinates.
func WithOrigin(x, y, z int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.originX, cfg.originY, cfg.originZ = x, y, z
	}
}

// WithScale multiplies every generated coordinate by k. A zero scale would
// collapse all geometry onto the origin, which is never meaningful, so the
// option constructor panics on k == 0 (negative k mirrors the shape and is
// allowed).
func WithScale(k int64) BuilderOption {
	if k == 0 {
		panic("builder: WithScale(0) is meaningless")
	}
	return func(cfg *builderConfig) { cfg.scale = k }
}

// WithHomogeneousW sets the W coordinate assigned to every generated
// point. The default is 1; any value is accepted since the model does not
// interpret W.
func WithHomogeneousW(w int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.homW = w }
}
