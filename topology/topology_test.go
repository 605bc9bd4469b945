// SPDX-License-Identifier: MIT
// Package topology_test verifies structural queries against models in
// both permissive and purge modes, stale references included.

package topology_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeom/builder"
	"github.com/katalvlaran/lvlgeom/model"
	"github.com/katalvlaran/lvlgeom/topology"
	"github.com/stretchr/testify/require"
)

// TestDegree_CountsLiveLinesOnly asserts stale incident entries do not
// inflate the degree, and degenerate lines count twice.
func TestDegree_CountsLiveLinesOnly(t *testing.T) {
	m := model.NewModel()
	p1 := m.AddPoint(0, 0, 0, 1)
	p2 := m.AddPoint(1, 0, 0, 1)
	l1, _ := m.AddLine(p1, p2)
	m.AddLine(p1, p2)
	loop, _ := m.AddLine(p2, p2)

	deg, err := topology.Degree(m, p1)
	require.NoError(t, err)
	require.Equal(t, 2, deg)

	deg, err = topology.Degree(m, p2)
	require.NoError(t, err)
	require.Equal(t, 4, deg, "two segments plus a degenerate line counted twice")

	// Default mode: removal leaves stale entries, Degree must ignore them.
	m.RemoveLine(l1)
	m.RemoveLine(loop)
	deg, err = topology.Degree(m, p2)
	require.NoError(t, err)
	require.Equal(t, 1, deg)

	_, err = topology.Degree(m, 0)
	require.ErrorIs(t, err, model.ErrInvalidHandle)
	_, err = topology.Degree(m, 99)
	require.ErrorIs(t, err, model.ErrPointNotFound)
}

// TestIsolatedPoints asserts ordering and the effect of cascade deletion.
func TestIsolatedPoints(t *testing.T) {
	m := model.NewModel()
	p1 := m.AddPoint(0, 0, 0, 1)
	p2 := m.AddPoint(1, 0, 0, 1)
	p3 := m.AddPoint(2, 0, 0, 1)
	lonely := m.AddPoint(9, 9, 9, 1)
	m.AddLine(p1, p2)
	m.AddLine(p2, p3)

	require.Equal(t, []model.PointHandle{lonely}, topology.IsolatedPoints(m))

	// Cascading away the middle point strands its neighbors.
	require.NoError(t, m.RemovePoint(p2))
	require.Equal(t, []model.PointHandle{p1, p3, lonely}, topology.IsolatedPoints(m))
}

// TestConnectedComponents_SplitsAndOrdering asserts deterministic
// component reporting across deletions.
func TestConnectedComponents_SplitsAndOrdering(t *testing.T) {
	m := model.NewModel()
	// Chain 1-2-3 and a separate pair 4-5.
	p1 := m.AddPoint(0, 0, 0, 1)
	p2 := m.AddPoint(1, 0, 0, 1)
	p3 := m.AddPoint(2, 0, 0, 1)
	p4 := m.AddPoint(10, 0, 0, 1)
	p5 := m.AddPoint(11, 0, 0, 1)
	m.AddLine(p1, p2)
	m.AddLine(p2, p3)
	m.AddLine(p4, p5)

	comps := topology.ConnectedComponents(m)
	require.Equal(t, [][]model.PointHandle{{p1, p2, p3}, {p4, p5}}, comps)

	// Removing the chain's middle splits its component.
	require.NoError(t, m.RemovePoint(p2))
	comps = topology.ConnectedComponents(m)
	require.Equal(t, [][]model.PointHandle{{p1}, {p3}, {p4, p5}}, comps)
}

// TestConnectedComponents_IgnoresDanglingEndpoints asserts permissive-mode
// artifacts do not leak into components.
func TestConnectedComponents_IgnoresDanglingEndpoints(t *testing.T) {
	m := model.NewModel()
	p1 := m.AddPoint(0, 0, 0, 1)
	m.AddLine(p1, 77) // dangling other side

	comps := topology.ConnectedComponents(m)
	require.Equal(t, [][]model.PointHandle{{p1}}, comps)
}

// TestConnectedComponents_BuiltShapes runs the queries over builder output.
func TestConnectedComponents_BuiltShapes(t *testing.T) {
	m, err := builder.BuildModel(nil, nil,
		builder.Grid(2, 2, 1),                                // points 1-4, one component
		builder.Star([3]int64{9, 9, 0}, [][3]int64{{9, 10, 0}}), // points 5-6
	)
	require.NoError(t, err)

	comps := topology.ConnectedComponents(m)
	require.Len(t, comps, 2)
	require.Equal(t, []model.PointHandle{1, 2, 3, 4}, comps[0])
	require.Equal(t, []model.PointHandle{5, 6}, comps[1])
	require.Empty(t, topology.IsolatedPoints(m))
}
