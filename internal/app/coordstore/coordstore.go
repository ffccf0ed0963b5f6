// Package coordstore maintains the durable history of player coordinates.
//
// Coordinates are extracted from screenshot filenames and kept in a plain
// append-only text file, one record per line:
//
//	X, Y, Z, Timestamp
//
// Lines starting with # are comments. A legacy 2-field format (X, Z) is
// accepted on read for backward compatibility.
package coordstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/maniartech/signals"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
)

const fileHeader = "# Tarkov coordinates file - Format: X, Y, Z, Timestamp"

// timestamp given to records which predate timestamps
const importedTimestamp = "Imported data"

// ErrNoCoordinates is returned when a filename does not contain a coordinate triple.
var ErrNoCoordinates = errors.New("no coordinates in filename")

// Screenshot filenames embed the position as three signed decimals between
// underscores, e.g. "2024-03-16[02-20]_-9.1, 33.6, 166.4_0.0, ... (0).png".
// The fractional part is mandatory.
var coordinatePattern = regexp.MustCompile(`_(-?\d+\.\d+), (-?\d+\.\d+), (-?\d+\.\d+)_`)

// ExtractCoordinates returns the coordinate embedded in a screenshot filename.
// When the filename contains the pattern more than once the leftmost match wins.
//
// Returns an error wrapping [ErrNoCoordinates] when the filename can not be parsed.
// This is the one failure the UI is expected to surface to the user.
func ExtractCoordinates(filename string) (app.Coordinate, error) {
	m := coordinatePattern.FindStringSubmatch(filename)
	if m == nil {
		return app.Coordinate{}, fmt.Errorf("extract coordinates from %q: %w", filename, ErrNoCoordinates)
	}
	var v [3]float64
	for i := range 3 {
		x, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return app.Coordinate{}, fmt.Errorf("extract coordinates from %q: %w", filename, err)
		}
		v[i] = x
	}
	return app.Coordinate{X: v[0], Y: v[1], Z: v[2]}, nil
}

// CoordinateStore persists the history of observed coordinates to a text file.
//
// All I/O failures on the read paths are logged and converted into empty
// results, so callers never have to handle them. The file is opened and
// closed within each call. The store is not safe for concurrent use by
// multiple processes.
type CoordinateStore struct {
	// Saved is emitted after a coordinate was appended successfully.
	// Listeners run synchronously on the calling goroutine.
	Saved signals.Signal[app.Coordinate]

	path string
}

// New returns a new CoordinateStore persisting to the file at path.
func New(path string) *CoordinateStore {
	return &CoordinateStore{
		Saved: signals.NewSync[app.Coordinate](),
		path:  path,
	}
}

// Path returns the location of the coordinates file.
func (s *CoordinateStore) Path() string {
	return s.path
}

// EnsureReady creates the coordinates file with its header if it does not yet exist.
// It is safe to call repeatedly and never touches existing data.
//
// Failures are logged and swallowed. The store then operates degraded:
// reads see no data and writes fail on their own.
func (s *CoordinateStore) EnsureReady() {
	if _, err := os.Stat(s.path); err == nil {
		return
	} else if !errors.Is(err, os.ErrNotExist) {
		slog.Error("Failed to check coordinates file", "path", s.path, "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		slog.Error("Failed to create directory for coordinates file", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, []byte(fileHeader+"\n"), 0644); err != nil {
		slog.Error("Failed to create coordinates file", "path", s.path, "error", err)
		return
	}
	slog.Info("Created coordinates file", "path", s.path)
}

// Save appends a coordinate with the current local time to the coordinates file.
// On failure the error is logged and returned; the coordinate itself stays valid.
func (s *CoordinateStore) Save(c app.Coordinate) error {
	ts := time.Now().Format(app.TimestampFormat)
	line := fmt.Sprintf("%s, %s, %s, %s\n", formatFloat(c.X), formatFloat(c.Y), formatFloat(c.Z), ts)
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		slog.Error("Failed to open coordinates file for append", "path", s.path, "error", err)
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		slog.Error("Failed to save coordinates", "path", s.path, "error", err)
		return err
	}
	slog.Info("Saved coordinates", "coordinates", c)
	s.Saved.Emit(context.Background(), c)
	return nil
}

// Latest returns the most recently saved coordinate.
// The second return value reports whether one exists.
func (s *CoordinateStore) Latest() (app.Coordinate, bool) {
	lines, err := s.readDataLines()
	if err != nil {
		slog.Error("Failed to read coordinates file", "path", s.path, "error", err)
		return app.Coordinate{}, false
	}
	if len(lines) == 0 {
		slog.Warn("No coordinates found in file", "path", s.path)
		return app.Coordinate{}, false
	}
	last := lines[len(lines)-1]
	c, _, ok := parseLine(last)
	if !ok {
		slog.Warn("Invalid format in coordinates file", "line", last)
		return app.Coordinate{}, false
	}
	return c, true
}

// All returns every recorded position in file order, oldest first.
// Malformed lines are skipped. The result is fully materialized;
// each call re-reads the file.
func (s *CoordinateStore) All() []app.Position {
	result := make([]app.Position, 0)
	lines, err := s.readDataLines()
	if err != nil {
		slog.Error("Failed to read coordinates file", "path", s.path, "error", err)
		return result
	}
	for _, line := range lines {
		c, ts, ok := parseLine(line)
		if !ok {
			continue
		}
		result = append(result, app.Position{Coordinate: c, Timestamp: ts})
	}
	return result
}

// readDataLines returns all non-blank, non-comment lines of the coordinates file.
func (s *CoordinateStore) readDataLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// parseLine parses one data line of the coordinates file.
//
// 4 or more fields: X, Y, Z, Timestamp with any further fields ignored.
// 3 fields: X, Y, Z without a timestamp.
// 2 fields: legacy X, Z with Y defaulting to 0.
func parseLine(line string) (app.Coordinate, string, bool) {
	parts := strings.Split(line, ", ")
	var xs, ys, zs, ts string
	switch {
	case len(parts) >= 4:
		xs, ys, zs, ts = parts[0], parts[1], parts[2], parts[3]
	case len(parts) == 3:
		xs, ys, zs, ts = parts[0], parts[1], parts[2], importedTimestamp
	case len(parts) == 2:
		xs, ys, zs, ts = parts[0], "0", parts[1], importedTimestamp
	default:
		return app.Coordinate{}, "", false
	}
	x, err1 := strconv.ParseFloat(xs, 64)
	y, err2 := strconv.ParseFloat(ys, 64)
	z, err3 := strconv.ParseFloat(zs, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return app.Coordinate{}, "", false
	}
	return app.Coordinate{X: x, Y: y, Z: z}, ts, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
