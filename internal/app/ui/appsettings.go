package ui

import (
	"log/slog"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
)

const (
	settingColorTheme             = "colorTheme"
	settingLogLevel               = "logLevel"
	settingLogLevelDefault        = "info"
	settingLastMap                = "lastMap"
	settingUpdateCheck            = "updateCheckEnabled"
	settingUpdateCheckDefault     = true
	settingWindowHeightDefault    = 700
	settingWindowSize             = "window-size"
	settingWindowWidthDefault     = 500
	settingScreenshotsDir         = "screenshotsDir"
)

// ColorTheme is the color theme of the app.
type ColorTheme string

const (
	Auto  ColorTheme = "Auto"
	Dark  ColorTheme = "Dark"
	Light ColorTheme = "Light"
)

// ColorThemes returns all selectable color themes.
func ColorThemes() []string {
	return []string{string(Auto), string(Light), string(Dark)}
}

var logLevelName2Level = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"error":   slog.LevelError,
	"info":    slog.LevelInfo,
	"warning": slog.LevelWarn,
}

// AppSettings provides typed access to the app's persisted settings.
type AppSettings struct {
	p fyne.Preferences
}

func NewAppSettings(p fyne.Preferences) *AppSettings {
	return &AppSettings{p: p}
}

func (s AppSettings) ColorTheme() ColorTheme {
	return ColorTheme(s.p.StringWithFallback(settingColorTheme, string(Auto)))
}

func (s AppSettings) SetColorTheme(v ColorTheme) {
	s.p.SetString(settingColorTheme, string(v))
}

func (s AppSettings) LogLevel() string {
	return s.p.StringWithFallback(settingLogLevel, settingLogLevelDefault)
}

func (s AppSettings) LogLevelSlog() slog.Level {
	l, ok := logLevelName2Level[s.LogLevel()]
	if !ok {
		l = logLevelName2Level[settingLogLevelDefault]
	}
	return l
}

func (s AppSettings) LogLevelNames() []string {
	x := slices.Collect(maps.Keys(logLevelName2Level))
	slices.Sort(x)
	return x
}

func (s AppSettings) SetLogLevel(v string) {
	s.p.SetString(settingLogLevel, v)
}

// LastMap returns the name of the most recently viewed map.
func (s AppSettings) LastMap() string {
	return s.p.String(settingLastMap)
}

func (s AppSettings) SetLastMap(v string) {
	s.p.SetString(settingLastMap, v)
}

// UpdateCheckEnabled reports whether the app checks GitHub for newer releases on start.
func (s AppSettings) UpdateCheckEnabled() bool {
	return s.p.BoolWithFallback(settingUpdateCheck, settingUpdateCheckDefault)
}

func (s AppSettings) SetUpdateCheckEnabled(v bool) {
	s.p.SetBool(settingUpdateCheck, v)
}

// ScreenshotsDir returns the directory the file dialog starts in.
func (s AppSettings) ScreenshotsDir() string {
	return s.p.String(settingScreenshotsDir)
}

func (s AppSettings) SetScreenshotsDir(v string) {
	s.p.SetString(settingScreenshotsDir, v)
}

func (s AppSettings) WindowSize() fyne.Size {
	x := s.p.FloatList(settingWindowSize)
	if len(x) < 2 {
		return fyne.NewSize(settingWindowWidthDefault, settingWindowHeightDefault)
	}
	return fyne.NewSize(float32(x[0]), float32(x[1]))
}

func (s AppSettings) SetWindowSize(v fyne.Size) {
	s.p.SetFloatList(settingWindowSize, []float64{float64(v.Width), float64(v.Height)})
}
