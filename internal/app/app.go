// Package app is the root package of all domain related packages.
//
// All entity types are defined in this package.
package app

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format of the timestamps written to the coordinates file.
const TimestampFormat = "2006-01-02 15:04:05"

// Titler converts a string into a title for english language.
var Titler = cases.Title(language.English)

// Coordinate is a position in the game world in 3D space.
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("X: %v, Y: %v, Z: %v", c.X, c.Y, c.Z)
}

// Display returns the coordinate formatted for showing to the user.
func (c Coordinate) Display() string {
	return fmt.Sprintf("X: %.1f, Y: %.1f, Z: %.1f", c.X, c.Y, c.Z)
}

// Position is a recorded coordinate together with the timestamp of when it was observed.
//
// Timestamp is kept as the raw string from the coordinates file,
// because legacy records carry no parsable time.
type Position struct {
	Coordinate Coordinate
	Timestamp  string
}

// Calibration describes how game coordinates relate to the pixels of a map image.
type Calibration struct {
	CenterMinX float64 `json:"centerMinX" yaml:"centerMinX"`
	CenterMaxX float64 `json:"centerMaxX" yaml:"centerMaxX"`
	CenterMinY float64 `json:"centerMinY" yaml:"centerMinY"`
	CenterMaxY float64 `json:"centerMaxY" yaml:"centerMaxY"`
	PointMinX  float64 `json:"pointMinX" yaml:"pointMinX"`
	PointMaxX  float64 `json:"pointMaxX" yaml:"pointMaxX"`
	PointMinY  float64 `json:"pointMinY" yaml:"pointMinY"`
	PointMaxY  float64 `json:"pointMaxY" yaml:"pointMaxY"`
}

// RaidDuration is the length of a raid on a map in minutes.
type RaidDuration struct {
	Day   int `json:"day"`
	Night int `json:"night"`
}

// GameMap is a playable map with everything the app knows about it.
type GameMap struct {
	Name         string
	Description  string
	Enemies      []string
	RaidDuration RaidDuration
	WikiURL      string
	SVGPath      string
	Calibration  Calibration
}
