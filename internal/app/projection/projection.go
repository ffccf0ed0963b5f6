// Package projection converts game coordinates into pixel positions on a map image.
package projection

import (
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
)

// Point is a pixel position on a rendered map.
type Point struct {
	X float64
	Y float64
}

// Project maps a game coordinate onto a canvas of the given size using the
// calibration of the map.
//
// The horizontal game axis is mirrored and the game Z axis maps to the
// vertical canvas axis. The game Y axis (height) does not influence the result.
func Project(cal app.Calibration, c app.Coordinate, canvasWidth, canvasHeight float64) Point {
	centerX := (cal.CenterMaxX + cal.CenterMinX) / 2
	centerY := (cal.CenterMaxY + cal.CenterMinY) / 2
	scaleX := canvasWidth / (cal.PointMaxX - cal.PointMinX)
	scaleY := canvasHeight / (cal.PointMaxY - cal.PointMinY)
	return Point{
		X: canvasWidth/2 - (c.X-centerX)*scaleX,
		Y: canvasHeight/2 + (c.Z-centerY)*scaleY,
	}
}
