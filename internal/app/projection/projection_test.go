package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/projection"
)

func TestProject(t *testing.T) {
	symmetric := app.Calibration{
		CenterMinX: -300, CenterMaxX: 300,
		CenterMinY: -300, CenterMaxY: 300,
		PointMinX: -300, PointMaxX: 300,
		PointMinY: -300, PointMaxY: 300,
	}
	cases := []struct {
		name   string
		cal    app.Calibration
		coord  app.Coordinate
		w, h   float64
		wantX  float64
		wantY  float64
	}{
		{
			"map center lands in canvas center",
			symmetric,
			app.Coordinate{X: 0, Y: 50, Z: 0},
			600, 600,
			300, 300,
		},
		{
			"positive X moves left",
			symmetric,
			app.Coordinate{X: 150, Y: 0, Z: 0},
			600, 600,
			150, 300,
		},
		{
			"positive Z moves down",
			symmetric,
			app.Coordinate{X: 0, Y: 0, Z: 150},
			600, 600,
			300, 450,
		},
		{
			"height has no influence",
			symmetric,
			app.Coordinate{X: 150, Y: 999, Z: -150},
			600, 600,
			150, 150,
		},
		{
			"shifted center",
			app.Calibration{
				CenterMinX: 0, CenterMaxX: 200,
				CenterMinY: 0, CenterMaxY: 200,
				PointMinX: -300, PointMaxX: 300,
				PointMinY: -300, PointMaxY: 300,
			},
			app.Coordinate{X: 100, Y: 0, Z: 100},
			600, 600,
			300, 300,
		},
		{
			"non-square canvas",
			symmetric,
			app.Coordinate{X: -300, Y: 0, Z: 300},
			1200, 600,
			1200, 600,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := projection.Project(tc.cal, tc.coord, tc.w, tc.h)
			assert.InDelta(t, tc.wantX, got.X, 0.001)
			assert.InDelta(t, tc.wantY, got.Y, 0.001)
		})
	}
}
