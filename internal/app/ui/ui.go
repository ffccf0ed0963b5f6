// Package ui implements the graphical user interface of the app.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/coordstore"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/mapdata"
)

const (
	websiteURL = "https://github.com/AAAAAAAAA9a/tarkov-app"
	wikiURL    = "https://escapefromtarkov.fandom.com/wiki/Escape_from_Tarkov_Wiki"
)

// BaseUI is the main user interface of the app.
type BaseUI struct {
	CoordinateStore *coordstore.CoordinateStore
	MapService      *mapdata.MapService
	Settings        *AppSettings
	// DataDir is where downloaded tarkovdata files are stored.
	DataDir string
	// UpdateMaps downloads fresh game data when set.
	UpdateMaps func() error

	fyneApp       fyne.App
	window        fyne.Window
	positionLabel *widget.Label
	statusBar     *statusBar
	mapButtons    *fyne.Container
}

// NewBaseUI returns a new BaseUI. Services must be set before calling Init.
func NewBaseUI(fyneApp fyne.App) *BaseUI {
	u := &BaseUI{
		fyneApp:  fyneApp,
		Settings: NewAppSettings(fyneApp.Preferences()),
	}
	u.window = fyneApp.NewWindow(u.appName())
	return u
}

// App returns the Fyne app.
func (u *BaseUI) App() fyne.App {
	return u.fyneApp
}

// MainWindow returns the main window.
func (u *BaseUI) MainWindow() fyne.Window {
	return u.window
}

func (u *BaseUI) appName() string {
	if n := u.fyneApp.Metadata().Name; n != "" {
		return n
	}
	return "Tarkov Map Assistant"
}

// Init builds the main window. Must be called once before ShowAndRun.
func (u *BaseUI) Init() {
	u.fyneApp.Settings().SetTheme(appTheme{mode: u.Settings.ColorTheme()})
	u.positionLabel = widget.NewLabel("No coordinates loaded")
	u.statusBar = newStatusBar(u)
	u.mapButtons = container.NewGridWithColumns(2)
	u.window.SetMainMenu(makeMenu(u))
	u.window.SetContent(fynetooltip.AddWindowToolTipLayer(u.makeHomePage(), u.window.Canvas()))
	u.window.Resize(u.Settings.WindowSize())
	u.window.SetMaster()
	u.CoordinateStore.Saved.AddListener(func(_ context.Context, _ app.Coordinate) {
		u.refreshPosition()
	}, "home")
	u.refreshMapButtons()
	u.refreshPosition()
}

// ShowAndRun shows the main window and runs the app (blocking).
func (u *BaseUI) ShowAndRun() {
	u.fyneApp.Lifecycle().SetOnStarted(func() {
		slog.Info("App started")
		go u.statusBar.checkForUpdate()
	})
	u.fyneApp.Lifecycle().SetOnStopped(func() {
		u.Settings.SetWindowSize(u.window.Canvas().Size())
		slog.Info("App stopped")
	})
	u.window.ShowAndRun()
}

func (u *BaseUI) makeHomePage() fyne.CanvasObject {
	loadButton := widget.NewButtonWithIcon("Load Screenshot", theme.FolderOpenIcon(), func() {
		u.showLoadScreenshotDialog()
	})
	positionTitle := widget.NewLabel("Current Position:")
	positionTitle.TextStyle.Bold = true
	mapsTitle := widget.NewLabel("Select Map:")
	mapsTitle.TextStyle.Bold = true
	top := container.NewVBox(
		loadButton,
		positionTitle,
		u.positionLabel,
		widget.NewSeparator(),
		mapsTitle,
	)
	return container.NewBorder(
		top,
		u.statusBar,
		nil,
		nil,
		container.NewVScroll(u.mapButtons),
	)
}

// refreshMapButtons rebuilds the grid of map buttons from the map service.
func (u *BaseUI) refreshMapButtons() {
	u.mapButtons.RemoveAll()
	for _, name := range u.MapService.AvailableMaps() {
		b := ttwidget.NewButton(name, func() {
			u.showMap(name)
		})
		if tip := u.makeMapToolTip(name); tip != "" {
			b.SetToolTip(tip)
		}
		u.mapButtons.Add(b)
	}
	u.mapButtons.Refresh()
}

// makeMapToolTip returns the tooltip text for a map button
// or an empty string when there is nothing to show.
func (u *BaseUI) makeMapToolTip(name string) string {
	gm, err := u.MapService.Map(name)
	if err != nil {
		return ""
	}
	var parts []string
	if d := gm.RaidDuration; d.Day > 0 || d.Night > 0 {
		parts = append(parts, fmt.Sprintf("Duration: %dmin (day) / %dmin (night)", d.Day, d.Night))
	}
	if len(gm.Enemies) > 0 {
		parts = append(parts, "Enemies: "+strings.Join(gm.Enemies, ", "))
	}
	return strings.Join(parts, "\n")
}

// refreshPosition updates the latest position shown on the home page.
func (u *BaseUI) refreshPosition() {
	c, ok := u.CoordinateStore.Latest()
	if !ok {
		u.positionLabel.SetText("No coordinates loaded")
		return
	}
	u.positionLabel.SetText(c.Display())
}

// showLoadScreenshotDialog lets the user pick a screenshot and records its coordinates.
func (u *BaseUI) showLoadScreenshotDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			u.ShowErrorDialog("Failed to open screenshot", err)
			return
		}
		if reader == nil {
			return // canceled
		}
		reader.Close()
		u.loadScreenshot(reader.URI().Name())
	}, u.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	if dir := u.Settings.ScreenshotsDir(); dir != "" {
		if uri, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(uri)
		}
	}
	d.Show()
}

// loadScreenshot extracts the coordinates from a screenshot filename and saves them.
// Extraction failures are shown to the user.
func (u *BaseUI) loadScreenshot(filename string) {
	c, err := coordstore.ExtractCoordinates(filename)
	if err != nil {
		slog.Error("Failed to process screenshot", "filename", filename, "error", err)
		u.ShowErrorDialog("Could not extract coordinates from:\n"+filename, err)
		return
	}
	if err := u.CoordinateStore.Save(c); err != nil {
		u.statusBar.SetText("Failed to save coordinates")
		u.ShowErrorDialog("Extracted coordinates could not be saved:\n"+c.String(), err)
		return
	}
	u.statusBar.SetText("Loaded screenshot: " + filepath.Base(filename))
	dialog.ShowInformation(
		"Success",
		"Screenshot loaded successfully.\nExtracted coordinates: "+c.String(),
		u.window,
	)
}

// showMap opens a map window with the latest position marked.
func (u *BaseUI) showMap(name string) {
	c, ok := u.CoordinateStore.Latest()
	if !ok {
		dialog.ShowInformation(
			"No Coordinates",
			"No coordinates available. Load a screenshot first.",
			u.window,
		)
		return
	}
	u.showMapWithCoordinate(name, c)
}

// showMapWithCoordinate opens a map window with the given position marked.
func (u *BaseUI) showMapWithCoordinate(name string, c app.Coordinate) {
	gm, err := u.MapService.Map(name)
	if err != nil {
		u.ShowErrorDialog("Could not load map: "+name, err)
		return
	}
	u.Settings.SetLastMap(name)
	showMapWindow(u, gm, c)
}

// ShowErrorDialog shows an error to the user.
func (u *BaseUI) ShowErrorDialog(message string, err error) {
	text := widget.NewLabel(fmt.Sprintf("%s\n\n%s", message, err))
	text.Wrapping = fyne.TextWrapWord
	text.Importance = widget.DangerImportance
	x := container.NewVScroll(text)
	x.SetMinSize(fyne.Size{Width: 400, Height: 100})
	d := dialog.NewCustom("Error", "OK", x, u.window)
	d.Show()
}

func (u *BaseUI) websiteRootURL() *url.URL {
	x, _ := url.Parse(websiteURL)
	return x
}
