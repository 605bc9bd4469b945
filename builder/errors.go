// SPDX-License-Identifier: MIT
// Package: lvlgeom/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w at the failure site.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewPoints indicates that a constructor received fewer coordinates
// than its shape requires (Polyline needs ≥2, Polygon ≥3, Star ≥1 leaf).
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid input */ }.
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrBadDimension indicates a non-positive size parameter (grid rows/cols,
// grid spacing, box extents).
// Usage: if errors.Is(err, ErrBadDimension) { /* fix sizes */ }.
var ErrBadDimension = errors.New("builder: invalid dimension")

// ErrConstructFailed indicates the orchestrator could not run a
// constructor at all (currently: a nil Constructor in the BuildModel
// argument list, a programmer error surfaced as an error by policy).
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix the call site */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
