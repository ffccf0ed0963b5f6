// Package mapdata combines the map calibration config with the optional
// tarkovdata game metadata and the SVG map images on disk.
package mapdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ErikKalkoken/go-set"
	"github.com/goccy/go-yaml"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/tarkovdata"
)

// ErrMapNotFound is returned when no SVG file exists for a map.
var ErrMapNotFound = errors.New("map not found")

// key of the fallback entry in the calibration config
const defaultConfigKey = "Default"

// Some maps go by several names. The SVG files use the canonical one.
var mapAliases = map[string]string{
	"The Lab":           "Labs",
	"Lab":               "Labs",
	"Streets of Tarkov": "StreetsOfTarkov",
}

// MapService answers every question the UI has about maps:
// which exist, where their images live and how to project coordinates onto them.
type MapService struct {
	mapsDir string
	config  map[string]app.Calibration
	td      tarkovdata.Maps // may be nil
}

// Params are the construction parameters for a MapService.
type Params struct {
	// Path to the primary calibration config file (JSON or YAML). Required.
	ConfigPath string
	// Path to an optional config file merged over the primary one.
	AdditionalConfigPath string
	// Directory containing the SVG map images. Required.
	MapsDir string
	// Game metadata. Optional.
	TarkovData tarkovdata.Maps
}

// New returns a new MapService.
// Config problems are logged and degrade to the built-in default calibration.
func New(arg Params) *MapService {
	s := &MapService{
		mapsDir: arg.MapsDir,
		td:      arg.TarkovData,
		config:  make(map[string]app.Calibration),
	}
	s.loadConfig(arg.ConfigPath, arg.AdditionalConfigPath)
	return s
}

// SetTarkovData replaces the game metadata,
// e.g. after a fresh download made new data available.
func (s *MapService) SetTarkovData(td tarkovdata.Maps) {
	s.td = td
}

func (s *MapService) loadConfig(primary, additional string) {
	cfg, err := readConfigFile(primary)
	if err != nil {
		slog.Error("Failed to load map calibration config", "path", primary, "error", err)
		cfg = map[string]app.Calibration{defaultConfigKey: defaultCalibration()}
	}
	s.config = cfg
	if additional == "" {
		return
	}
	extra, err := readConfigFile(additional)
	if err != nil {
		slog.Warn("Failed to load additional map calibration config", "path", additional, "error", err)
		return
	}
	for name, c := range extra {
		s.config[name] = c
	}
}

// readConfigFile parses a calibration config file. YAML is accepted alongside
// JSON, because hand-maintained calibration overrides are easier to write in YAML.
func readConfigFile(path string) (map[string]app.Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := make(map[string]app.Calibration)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded map calibration config", "path", path, "maps", len(cfg))
	return cfg, nil
}

// AvailableMaps returns the sorted names of all known maps.
// A map is known when it appears in the calibration config, in tarkovdata
// or as an SVG file in the maps directory.
func (s *MapService) AvailableMaps() []string {
	var names set.Set[string]
	for name := range s.config {
		if name != defaultConfigKey {
			names.Add(name)
		}
	}
	for key, m := range s.td {
		names.Add(m.Name(key))
	}
	entries, err := os.ReadDir(s.mapsDir)
	if err != nil {
		slog.Warn("Failed to list maps directory", "path", s.mapsDir, "error", err)
	}
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".svg"); ok {
			names.Add(n)
		}
	}
	sorted := slices.Sorted(names.All())
	// drop alias duplicates when the canonical map is present
	result := make([]string, 0, len(sorted))
	for _, n := range sorted {
		if canonical, ok := mapAliases[n]; ok && names.Contains(canonical) {
			continue
		}
		result = append(result, n)
	}
	return result
}

// MapFilePath returns the path of the SVG image for a map.
func (s *MapService) MapFilePath(name string) (string, error) {
	search := name
	if canonical, ok := mapAliases[name]; ok {
		search = canonical
	}
	p := filepath.Join(s.mapsDir, search+".svg")
	if fileExists(p) {
		return p, nil
	}
	entries, err := os.ReadDir(s.mapsDir)
	if err != nil {
		return "", fmt.Errorf("map file for %s: %w", name, err)
	}
	// case variations
	for _, e := range entries {
		base, ok := strings.CutSuffix(e.Name(), ".svg")
		if !ok {
			continue
		}
		if strings.EqualFold(base, search) || strings.EqualFold(base, name) {
			return filepath.Join(s.mapsDir, e.Name()), nil
		}
	}
	// spaces stripped
	p = filepath.Join(s.mapsDir, strings.ReplaceAll(search, " ", "")+".svg")
	if fileExists(p) {
		return p, nil
	}
	// file name recorded in tarkovdata
	if m, ok := s.td.FindByName(name); ok && m.SVG != nil && m.SVG.File != "" {
		p = filepath.Join(s.mapsDir, m.SVG.File)
		if fileExists(p) {
			return p, nil
		}
	}
	// last resort: substring match
	for _, e := range entries {
		base, ok := strings.CutSuffix(e.Name(), ".svg")
		if !ok {
			continue
		}
		b, n := strings.ToLower(base), strings.ToLower(search)
		if strings.Contains(b, n) || strings.Contains(n, b) {
			slog.Info("Found similar map file", "map", name, "file", e.Name())
			return filepath.Join(s.mapsDir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrMapNotFound, name)
}

// Calibration returns the coordinate calibration for a map.
// Custom config entries win over bounds derived from tarkovdata.
// Unknown maps get the default calibration.
func (s *MapService) Calibration(name string) app.Calibration {
	if c, ok := s.config[name]; ok {
		return c
	}
	if m, ok := s.td.FindByName(name); ok && m.SVG != nil {
		if c, ok := calibrationFromBounds(m.SVG); ok {
			return c
		}
		slog.Warn("Unsupported coordinate rotation", "map", name, "rotation", m.SVG.CoordinateRotation)
	}
	slog.Warn("No calibration found for map, using default", "map", name)
	if c, ok := s.config[defaultConfigKey]; ok {
		return c
	}
	return defaultCalibration()
}

// Map returns everything known about a map.
func (s *MapService) Map(name string) (app.GameMap, error) {
	p, err := s.MapFilePath(name)
	if err != nil {
		return app.GameMap{}, err
	}
	gm := app.GameMap{
		Name:        name,
		SVGPath:     p,
		Calibration: s.Calibration(name),
	}
	if m, ok := s.td.FindByName(name); ok {
		gm.Description = m.Description
		gm.Enemies = m.Enemies
		gm.RaidDuration = app.RaidDuration(m.RaidDuration)
		gm.WikiURL = m.Wiki
	}
	return gm, nil
}

// calibrationFromBounds converts tarkovdata svg bounds into a calibration.
// Only the 180 degree rotation variant is supported, matching the data
// published for all current maps.
func calibrationFromBounds(svg *tarkovdata.SVG) (app.Calibration, bool) {
	if svg.CoordinateRotation != 180 || len(svg.Bounds) < 2 {
		return app.Calibration{}, false
	}
	c := app.Calibration{
		CenterMinX: svg.Bounds[1][0],
		CenterMaxX: svg.Bounds[0][0],
		CenterMinY: svg.Bounds[0][1],
		CenterMaxY: svg.Bounds[1][1],
		PointMinX:  svg.Bounds[1][0],
		PointMaxX:  svg.Bounds[0][0],
		PointMinY:  svg.Bounds[0][1],
		PointMaxY:  svg.Bounds[1][1],
	}
	return c, true
}

func defaultCalibration() app.Calibration {
	return app.Calibration{
		CenterMinX: -300, CenterMaxX: 300,
		CenterMinY: -300, CenterMaxY: 300,
		PointMinX: -300, PointMaxX: 300,
		PointMinY: -300, PointMaxY: 300,
	}
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
