// SPDX-License-Identifier: MIT
// Package model_test verifies type-level contracts: option flags,
// Point/Line equality, and handle allocation rules.

package model_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeom/model"
	"github.com/stretchr/testify/require"
)

// TestNewModel_Defaults asserts the permissive defaults and option flags.
func TestNewModel_Defaults(t *testing.T) {
	m := model.NewModel()
	require.False(t, m.StrictEndpoints(), "strict endpoints must be off by default")
	require.False(t, m.PurgesAdjacency(), "adjacency purge must be off by default")
	require.Equal(t, 0, m.PointCount())
	require.Equal(t, 0, m.LineCount())

	s := model.NewModel(model.WithStrictEndpoints())
	require.True(t, s.StrictEndpoints())
	require.False(t, s.PurgesAdjacency())

	p := model.NewModel(model.WithAdjacencyPurge())
	require.False(t, p.StrictEndpoints())
	require.True(t, p.PurgesAdjacency())
}

// TestPoint_Equal exercises coordinate and incident-list comparison.
func TestPoint_Equal(t *testing.T) {
	cases := []struct {
		name string
		a, b model.Point
		want bool
	}{
		{
			name: "IdenticalEmpty",
			a:    model.Point{X: 1, Y: 2, Z: 3, W: 1},
			b:    model.Point{X: 1, Y: 2, Z: 3, W: 1},
			want: true,
		},
		{
			name: "CoordinateMismatch",
			a:    model.Point{X: 1, Y: 2, Z: 3, W: 1},
			b:    model.Point{X: 1, Y: 2, Z: 4, W: 1},
			want: false,
		},
		{
			name: "NegativeCoordinatesMatch",
			a:    model.Point{X: -5, Y: -6, Z: -7, W: 0},
			b:    model.Point{X: -5, Y: -6, Z: -7, W: 0},
			want: true,
		},
		{
			name: "IncidentListsMatch",
			a:    model.Point{Lines: []model.LineHandle{1, 2}},
			b:    model.Point{Lines: []model.LineHandle{1, 2}},
			want: true,
		},
		{
			name: "IncidentListLengthMismatch",
			a:    model.Point{Lines: []model.LineHandle{1, 2}},
			b:    model.Point{Lines: []model.LineHandle{1}},
			want: false,
		},
		{
			name: "IncidentListContentMismatch",
			a:    model.Point{Lines: []model.LineHandle{1, 2}},
			b:    model.Point{Lines: []model.LineHandle{1, 3}},
			want: false,
		},
		{
			name: "NilVersusEmptyIncidentList",
			a:    model.Point{},
			b:    model.Point{Lines: []model.LineHandle{}},
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Equal(tc.b))
			require.Equal(t, tc.want, tc.b.Equal(tc.a), "Equal must be symmetric")
		})
	}
}

// TestLine_Equality locks in order-sensitive structural equality via ==.
func TestLine_Equality(t *testing.T) {
	ab := model.Line{P1: 1, P2: 2}
	ab2 := model.Line{P1: 1, P2: 2}
	ba := model.Line{P1: 2, P2: 1}

	require.True(t, ab == ab2)
	require.False(t, ab == ba, "endpoint order is significant")
}

// TestHandles_StartAtOneAndAreIndependent asserts the two handle
// namespaces both start at 1 and advance independently.
func TestHandles_StartAtOneAndAreIndependent(t *testing.T) {
	m := model.NewModel()

	p1 := m.AddPoint(0, 0, 0, 0)
	p2 := m.AddPoint(1, 1, 1, 0)
	require.Equal(t, model.PointHandle(1), p1)
	require.Equal(t, model.PointHandle(2), p2)

	l1, err := m.AddLine(p1, p2)
	require.NoError(t, err)
	require.Equal(t, model.LineHandle(1), l1, "line numbering is independent of points")

	p3 := m.AddPoint(2, 2, 2, 0)
	require.Equal(t, model.PointHandle(3), p3, "line insertion must not advance point handles")
}

// TestHandles_NeverReused asserts monotonic allocation across deletions,
// including deletion of the highest-numbered entity.
func TestHandles_NeverReused(t *testing.T) {
	m := model.NewModel()

	h1 := m.AddPoint(0, 0, 0, 1)
	h2 := m.AddPoint(1, 0, 0, 1)
	require.NoError(t, m.RemovePoint(h2))

	h3 := m.AddPoint(2, 0, 0, 1)
	require.Equal(t, model.PointHandle(3), h3, "handle of a removed maximum must not be reissued")
	require.True(t, m.HasPoint(h1))
	require.False(t, m.HasPoint(h2))

	l1, err := m.AddLine(h1, h3)
	require.NoError(t, err)
	m.RemoveLine(l1)
	l2, err := m.AddLine(h3, h1)
	require.NoError(t, err)
	require.Equal(t, model.LineHandle(2), l2)
}
