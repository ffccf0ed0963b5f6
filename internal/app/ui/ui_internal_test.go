package ui

import (
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/coordstore"
)

func TestFormatTimestamp(t *testing.T) {
	t.Run("appends relative age for parsable timestamps", func(t *testing.T) {
		ts := time.Now().Add(-2 * time.Hour).Format(app.TimestampFormat)
		got := formatTimestamp(ts)
		assert.Contains(t, got, ts)
		assert.Contains(t, got, "ago")
	})
	t.Run("passes legacy timestamps through", func(t *testing.T) {
		assert.Equal(t, "Imported data", formatTimestamp("Imported data"))
	})
}

func TestLoadScreenshot(t *testing.T) {
	const filename = "2024-03-16[02-20]_-9.1, 33.6, 166.4_0.0, 0.0, 0.0, 0.0_12.3 (0).png"
	t.Run("reports success after a save", func(t *testing.T) {
		u := NewBaseUI(test.NewApp())
		u.CoordinateStore = coordstore.New(filepath.Join(t.TempDir(), "coordinates.txt"))
		u.statusBar = newStatusBar(u)
		u.loadScreenshot(filename)
		assert.Contains(t, u.statusBar.infoText.Text, "Loaded screenshot")
	})
	t.Run("reports failure and no success when the save failed", func(t *testing.T) {
		u := NewBaseUI(test.NewApp())
		u.CoordinateStore = coordstore.New(filepath.Join(t.TempDir(), "missing", "coordinates.txt"))
		u.statusBar = newStatusBar(u)
		u.loadScreenshot(filename)
		assert.Equal(t, "Failed to save coordinates", u.statusBar.infoText.Text)
	})
}

func TestMapViewZoom(t *testing.T) {
	gm := app.GameMap{Calibration: app.Calibration{
		CenterMinX: -300, CenterMaxX: 300,
		CenterMinY: -300, CenterMaxY: 300,
		PointMinX: -300, PointMaxX: 300,
		PointMinY: -300, PointMaxY: 300,
	}}
	t.Run("zoom is clamped", func(t *testing.T) {
		v := newMapView(gm, app.Coordinate{})
		for range 100 {
			v.zoomBy(zoomStep)
		}
		assert.LessOrEqual(t, v.zoom, float32(zoomMax))
		for range 100 {
			v.zoomBy(1 / zoomStep)
		}
		assert.GreaterOrEqual(t, v.zoom, float32(zoomMin))
	})
	t.Run("reset restores defaults", func(t *testing.T) {
		v := newMapView(gm, app.Coordinate{})
		v.zoomBy(zoomStep)
		v.offset = v.offset.Add(fyne.NewPos(10, 20))
		v.reset()
		assert.Equal(t, float32(1), v.zoom)
		assert.Equal(t, fyne.NewPos(0, 0), v.offset)
	})
}
