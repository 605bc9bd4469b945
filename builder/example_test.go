package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgeom/builder"
	"github.com/katalvlaran/lvlgeom/model"
)

// ExampleBuildModel composes two shapes into one model and shows how the
// model's cascade deletion applies to built geometry.
func ExampleBuildModel() {
	m, err := builder.BuildModel(nil, nil,
		builder.Polygon([][3]int64{{0, 0, 0}, {4, 0, 0}, {4, 4, 0}, {0, 4, 0}}),
		builder.Star([3]int64{2, 2, 0}, [][3]int64{{2, 6, 0}}),
	)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	fmt.Println("points:", m.PointCount(), "lines:", m.LineCount())

	// Removing one ring corner cascades to its two ring lines.
	_ = m.RemovePoint(1)
	fmt.Println("after RemovePoint(1) — points:", m.PointCount(), "lines:", m.LineCount())

	// Output:
	// points: 6 lines: 5
	// after RemovePoint(1) — points: 5 lines: 3
}

// ExampleBuildModel_options places a scaled box away from the origin.
func ExampleBuildModel_options() {
	m, _ := builder.BuildModel(nil,
		[]builder.BuilderOption{
			builder.WithScale(2),
			builder.WithOrigin(10, 0, 0),
		},
		builder.Box(1, 1, 1),
	)

	p, _ := m.Point(model.PointHandle(8))
	fmt.Printf("far corner: (%d, %d, %d, w=%d)\n", p.X, p.Y, p.Z, p.W)

	// Output:
	// far corner: (12, 2, 2, w=1)
}
