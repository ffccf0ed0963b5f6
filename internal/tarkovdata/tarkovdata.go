// Package tarkovdata provides access to game metadata from the tarkovdata project.
//
// See https://github.com/the-hideout/tarkov-data for the data itself.
package tarkovdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
)

// ErrNotFound is returned when a maps data file can not be located.
var ErrNotFound = errors.New("tarkovdata file not found")

const mapsFileName = "maps.json"

// RaidDuration is the raid length on a map in minutes.
type RaidDuration struct {
	Day   int `json:"day"`
	Night int `json:"night"`
}

// SVG describes the map image shipped with tarkovdata.
type SVG struct {
	File               string       `json:"file"`
	Bounds             [][2]float64 `json:"bounds"`
	CoordinateRotation int          `json:"coordinateRotation"`
}

// Map is the tarkovdata record for one playable map.
type Map struct {
	Locale       map[string]string `json:"locale"`
	Description  string            `json:"description"`
	Enemies      []string          `json:"enemies"`
	RaidDuration RaidDuration      `json:"raidDuration"`
	Wiki         string            `json:"wiki"`
	SVG          *SVG              `json:"svg"`
}

// Name returns the english display name of a map
// and falls back to the title-cased key when there is none.
func (m Map) Name(key string) string {
	if n, ok := m.Locale["en"]; ok && n != "" {
		return n
	}
	return app.Titler.String(key)
}

// Maps holds the tarkovdata map records keyed by their canonical lowercase name.
type Maps map[string]Map

// FindByName returns the map matching a key or english locale name, ignoring case.
func (mm Maps) FindByName(name string) (Map, bool) {
	if m, ok := mm[strings.ToLower(name)]; ok {
		return m, true
	}
	for _, m := range mm {
		if strings.EqualFold(m.Locale["en"], name) {
			return m, true
		}
	}
	return Map{}, false
}

// LoadMaps reads the maps file from a tarkovdata directory.
// It accepts both the repository root layout and the legacy Data/ sub folder.
func LoadMaps(dir string) (Maps, error) {
	candidates := []string{
		filepath.Join(dir, mapsFileName),
		filepath.Join(dir, "Data", mapsFileName),
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load tarkovdata maps: %w", err)
		}
		var mm Maps
		if err := json.Unmarshal(data, &mm); err != nil {
			return nil, fmt.Errorf("load tarkovdata maps from %s: %w", p, err)
		}
		slog.Info("Loaded tarkovdata maps", "path", p, "count", len(mm))
		return mm, nil
	}
	return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// FindDataDir returns the first existing directory from candidates.
func FindDataDir(candidates ...string) (string, bool) {
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p, true
		}
	}
	return "", false
}
