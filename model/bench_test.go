// Package model_test provides benchmarks for Model operations.
package model_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeom/model"
)

// BenchmarkAddPoint measures raw point insertion throughput.
func BenchmarkAddPoint(b *testing.B) {
	m := model.NewModel()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.AddPoint(int64(i), int64(i), 0, 1)
	}
}

// BenchmarkAddLine measures line insertion including the adjacency append
// on both endpoints (star topology around one hub).
func BenchmarkAddLine(b *testing.B) {
	m := model.NewModel()
	hub := m.AddPoint(0, 0, 0, 1)
	// Pre-create leaves so the timed loop measures AddLine alone.
	leaves := make([]model.PointHandle, b.N)
	for i := range leaves {
		leaves[i] = m.AddPoint(int64(i), 0, 0, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.AddLine(hub, leaves[i])
	}
}

// BenchmarkRemovePoint_Cascade measures cascade deletion of a hub with
// 100 incident lines per iteration.
func BenchmarkRemovePoint_Cascade(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := model.NewModel()
		hub := m.AddPoint(0, 0, 0, 1)
		for j := int64(0); j < 100; j++ {
			leaf := m.AddPoint(j, j, 0, 1)
			_, _ = m.AddLine(hub, leaf)
		}
		b.StartTimer()
		_ = m.RemovePoint(hub)
	}
}

// BenchmarkPointLines measures incident-list copying on a dense hub.
func BenchmarkPointLines(b *testing.B) {
	m := model.NewModel()
	hub := m.AddPoint(0, 0, 0, 1)
	for j := int64(0); j < 1000; j++ {
		leaf := m.AddPoint(j, j, 0, 1)
		_, _ = m.AddLine(hub, leaf)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.PointLines(hub)
	}
}

// BenchmarkClone measures deep copy of a 1000-point chain.
func BenchmarkClone(b *testing.B) {
	m := model.NewModel()
	prev := m.AddPoint(0, 0, 0, 1)
	for j := int64(1); j < 1000; j++ {
		next := m.AddPoint(j, 0, 0, 1)
		_, _ = m.AddLine(prev, next)
		prev = next
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Clone()
	}
}
