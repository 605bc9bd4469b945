// Package builder provides deterministic wireframe constructors on top of
// the model package: ready-made point/line shapes composed through one
// orchestrator, BuildModel.
//
// Architecture:
//
//   - One orchestrator: BuildModel(mopts, bopts, cons...) creates the
//     model, resolves options into an immutable builderConfig, and applies
//     every Constructor in order.
//   - Shape factories (Polyline, Polygon, Grid, Box, Star) return
//     Constructor closures implemented one per impl_*.go file.
//   - Constructors use only the public model API, so model policies
//     (strict endpoints, adjacency purge) apply uniformly to built shapes.
//
// Determinism is the package's core promise: the same inputs, options, and
// constructor order produce identical models handle for handle, which is
// what makes built shapes usable as golden fixtures in tests.
//
// Options (BuilderOption):
//
//	– WithOrigin(x, y, z)   translate every generated point
//	– WithScale(k)          multiply every generated coordinate (k ≠ 0;
//	                        the option constructor panics on zero)
//	– WithHomogeneousW(w)   W coordinate for generated points (default 1)
//
// Errors:
//
//	ErrTooFewPoints    – shape needs more coordinates than provided
//	ErrBadDimension    – non-positive rows/cols/spacing/extent
//	ErrConstructFailed – nil Constructor passed to BuildModel
//
// Constructors never panic at runtime; they return sentinels wrapped with
// method context, so callers branch with errors.Is. Model-level sentinels
// (for example ErrPointNotFound surfaced by a strict-mode model) pass
// through the same wrapping.
//
// Quick example — a unit cube next to a 3×3 floor grid:
//
//	m, err := builder.BuildModel(nil, nil,
//	    builder.Grid(3, 3, 10),
//	    builder.Box(10, 10, 10),
//	)
package builder
