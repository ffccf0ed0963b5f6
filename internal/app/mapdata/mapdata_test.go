package mapdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/mapdata"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/tarkovdata"
)

const configJSON = `{
	"Default": {
		"centerMinX": -300, "centerMaxX": 300,
		"centerMinY": -300, "centerMaxY": 300,
		"pointMinX": -300, "pointMaxX": 300,
		"pointMinY": -300, "pointMaxY": 300
	},
	"Woods": {
		"centerMinX": -500, "centerMaxX": 500,
		"centerMinY": -400, "centerMaxY": 400,
		"pointMinX": -500, "pointMaxX": 500,
		"pointMinY": -400, "pointMaxY": 400
	}
}`

const additionalYAML = `Shoreline:
  centerMinX: -600
  centerMaxX: 600
  centerMinY: -350
  centerMaxY: 350
  pointMinX: -600
  pointMaxX: 600
  pointMinY: -350
  pointMaxY: 350
`

type fixture struct {
	svc     *mapdata.MapService
	mapsDir string
}

func makeFixture(t *testing.T, svgs []string, td tarkovdata.Maps) fixture {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "map_config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))
	additionalPath := filepath.Join(dir, "additional_maps.yaml")
	require.NoError(t, os.WriteFile(additionalPath, []byte(additionalYAML), 0644))
	mapsDir := filepath.Join(dir, "maps")
	require.NoError(t, os.MkdirAll(mapsDir, 0755))
	for _, n := range svgs {
		require.NoError(t, os.WriteFile(filepath.Join(mapsDir, n), []byte("<svg/>"), 0644))
	}
	svc := mapdata.New(mapdata.Params{
		ConfigPath:           configPath,
		AdditionalConfigPath: additionalPath,
		MapsDir:              mapsDir,
		TarkovData:           td,
	})
	return fixture{svc: svc, mapsDir: mapsDir}
}

func TestAvailableMaps(t *testing.T) {
	t.Run("unions config, tarkovdata and svg files", func(t *testing.T) {
		td := tarkovdata.Maps{
			"customs": {Locale: map[string]string{"en": "Customs"}},
		}
		f := makeFixture(t, []string{"Factory.svg"}, td)
		got := f.svc.AvailableMaps()
		assert.Equal(t, []string{"Customs", "Factory", "Shoreline", "Woods"}, got)
	})
	t.Run("reflects replaced tarkovdata without a restart", func(t *testing.T) {
		f := makeFixture(t, nil, nil)
		assert.NotContains(t, f.svc.AvailableMaps(), "Customs")
		f.svc.SetTarkovData(tarkovdata.Maps{
			"customs": {Locale: map[string]string{"en": "Customs"}},
		})
		assert.Contains(t, f.svc.AvailableMaps(), "Customs")
	})
	t.Run("excludes the default config entry", func(t *testing.T) {
		f := makeFixture(t, nil, nil)
		assert.NotContains(t, f.svc.AvailableMaps(), "Default")
	})
	t.Run("drops alias duplicates", func(t *testing.T) {
		f := makeFixture(t, []string{"Labs.svg", "Lab.svg"}, nil)
		got := f.svc.AvailableMaps()
		assert.Contains(t, got, "Labs")
		assert.NotContains(t, got, "Lab")
	})
}

func TestMapFilePath(t *testing.T) {
	t.Run("finds a direct match", func(t *testing.T) {
		f := makeFixture(t, []string{"Woods.svg"}, nil)
		p, err := f.svc.MapFilePath("Woods")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.mapsDir, "Woods.svg"), p)
	})
	t.Run("resolves aliases", func(t *testing.T) {
		f := makeFixture(t, []string{"Labs.svg"}, nil)
		p, err := f.svc.MapFilePath("The Lab")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.mapsDir, "Labs.svg"), p)
	})
	t.Run("matches case variations", func(t *testing.T) {
		f := makeFixture(t, []string{"woods.svg"}, nil)
		p, err := f.svc.MapFilePath("Woods")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.mapsDir, "woods.svg"), p)
	})
	t.Run("strips spaces", func(t *testing.T) {
		f := makeFixture(t, []string{"GroundZero.svg"}, nil)
		p, err := f.svc.MapFilePath("Ground Zero")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.mapsDir, "GroundZero.svg"), p)
	})
	t.Run("uses the file name from tarkovdata", func(t *testing.T) {
		td := tarkovdata.Maps{
			"interchange": {
				Locale: map[string]string{"en": "Interchange"},
				SVG:    &tarkovdata.SVG{File: "IC_map.svg"},
			},
		}
		f := makeFixture(t, []string{"IC_map.svg"}, td)
		p, err := f.svc.MapFilePath("Interchange")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.mapsDir, "IC_map.svg"), p)
	})
	t.Run("falls back to substring matches", func(t *testing.T) {
		f := makeFixture(t, []string{"Reserve_base.svg"}, nil)
		p, err := f.svc.MapFilePath("Reserve")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.mapsDir, "Reserve_base.svg"), p)
	})
	t.Run("reports unknown maps", func(t *testing.T) {
		f := makeFixture(t, []string{"Woods.svg"}, nil)
		_, err := f.svc.MapFilePath("Atlantis")
		assert.ErrorIs(t, err, mapdata.ErrMapNotFound)
	})
}

func TestCalibration(t *testing.T) {
	t.Run("custom config wins", func(t *testing.T) {
		f := makeFixture(t, nil, nil)
		c := f.svc.Calibration("Woods")
		assert.Equal(t, -500.0, c.CenterMinX)
		assert.Equal(t, 400.0, c.PointMaxY)
	})
	t.Run("merges the additional YAML config", func(t *testing.T) {
		f := makeFixture(t, nil, nil)
		c := f.svc.Calibration("Shoreline")
		assert.Equal(t, -600.0, c.CenterMinX)
		assert.Equal(t, 350.0, c.PointMaxY)
	})
	t.Run("derives calibration from tarkovdata bounds", func(t *testing.T) {
		td := tarkovdata.Maps{
			"customs": {
				Locale: map[string]string{"en": "Customs"},
				SVG: &tarkovdata.SVG{
					Bounds:             [][2]float64{{700, 350}, {-300, -350}},
					CoordinateRotation: 180,
				},
			},
		}
		f := makeFixture(t, nil, td)
		c := f.svc.Calibration("Customs")
		want := app.Calibration{
			CenterMinX: -300, CenterMaxX: 700,
			CenterMinY: 350, CenterMaxY: -350,
			PointMinX: -300, PointMaxX: 700,
			PointMinY: 350, PointMaxY: -350,
		}
		assert.Equal(t, want, c)
	})
	t.Run("unsupported rotation falls back to default", func(t *testing.T) {
		td := tarkovdata.Maps{
			"customs": {
				Locale: map[string]string{"en": "Customs"},
				SVG: &tarkovdata.SVG{
					Bounds:             [][2]float64{{700, 350}, {-300, -350}},
					CoordinateRotation: 90,
				},
			},
		}
		f := makeFixture(t, nil, td)
		c := f.svc.Calibration("Customs")
		assert.Equal(t, -300.0, c.CenterMinX)
		assert.Equal(t, 300.0, c.CenterMaxX)
	})
	t.Run("unknown map falls back to default", func(t *testing.T) {
		f := makeFixture(t, nil, nil)
		c := f.svc.Calibration("Atlantis")
		assert.Equal(t, 300.0, c.PointMaxX)
	})
	t.Run("missing config file degrades to built-in default", func(t *testing.T) {
		svc := mapdata.New(mapdata.Params{
			ConfigPath: filepath.Join(t.TempDir(), "nope.json"),
			MapsDir:    t.TempDir(),
		})
		c := svc.Calibration("Whatever")
		assert.Equal(t, -300.0, c.CenterMinX)
	})
}

func TestMap(t *testing.T) {
	t.Run("assembles map info from all sources", func(t *testing.T) {
		td := tarkovdata.Maps{
			"woods": {
				Locale:       map[string]string{"en": "Woods"},
				Description:  "A forested area.",
				Enemies:      []string{"Scavs"},
				RaidDuration: tarkovdata.RaidDuration{Day: 40, Night: 40},
				Wiki:         "https://example.org/woods",
			},
		}
		f := makeFixture(t, []string{"Woods.svg"}, td)
		gm, err := f.svc.Map("Woods")
		require.NoError(t, err)
		assert.Equal(t, "Woods", gm.Name)
		assert.Equal(t, "A forested area.", gm.Description)
		assert.Equal(t, []string{"Scavs"}, gm.Enemies)
		assert.Equal(t, 40, gm.RaidDuration.Day)
		assert.Equal(t, "https://example.org/woods", gm.WikiURL)
		assert.Equal(t, filepath.Join(f.mapsDir, "Woods.svg"), gm.SVGPath)
		assert.Equal(t, -500.0, gm.Calibration.CenterMinX)
	})
	t.Run("fails when the map has no image", func(t *testing.T) {
		f := makeFixture(t, nil, nil)
		_, err := f.svc.Map("Woods")
		assert.ErrorIs(t, err, mapdata.ErrMapNotFound)
	})
}
