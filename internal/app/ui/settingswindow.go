package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	kxmodal "github.com/ErikKalkoken/fyne-kx/modal"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"
)

// showSettingsWindow opens the settings window.
func showSettingsWindow(u *BaseUI) {
	w := u.fyneApp.NewWindow(u.appName() + ": Settings")

	themeRadio := widget.NewRadioGroup(ColorThemes(), func(v string) {
		u.Settings.SetColorTheme(ColorTheme(v))
		u.fyneApp.Settings().SetTheme(appTheme{mode: ColorTheme(v)})
	})
	themeRadio.Selected = string(u.Settings.ColorTheme())

	logLevel := widget.NewSelect(u.Settings.LogLevelNames(), func(v string) {
		u.Settings.SetLogLevel(v)
		slog.SetLogLoggerLevel(u.Settings.LogLevelSlog())
	})
	logLevel.Selected = u.Settings.LogLevel()

	screenshotsDir := widget.NewEntry()
	screenshotsDir.SetText(u.Settings.ScreenshotsDir())
	screenshotsDir.OnChanged = func(v string) {
		u.Settings.SetScreenshotsDir(v)
	}

	updateCheck := kxwidget.NewSwitch(func(on bool) {
		u.Settings.SetUpdateCheckEnabled(on)
	})
	updateCheck.On = u.Settings.UpdateCheckEnabled()

	updateData := widget.NewButton("Download latest game data", func() {
		if u.UpdateMaps == nil {
			return
		}
		m := kxmodal.NewProgressInfinite(
			"Updating game data...",
			"",
			func() error {
				return u.UpdateMaps()
			},
			w,
		)
		m.OnSuccess = func() {
			u.refreshMapButtons()
			dialog.ShowInformation("Game data", "Game data updated", w)
		}
		m.OnError = func(err error) {
			slog.Error("Failed to update game data", "error", err)
			u.ShowErrorDialog("Failed to update game data", err)
		}
		m.Start()
	})
	if u.UpdateMaps == nil {
		updateData.Disable()
	}

	appearance := widget.NewForm(
		widget.NewFormItem("Theme", themeRadio),
	)
	general := &widget.Form{
		Items: []*widget.FormItem{
			{
				Text:     "Log level",
				Widget:   logLevel,
				HintText: "Applied immediately",
			},
			{
				Text:     "Screenshots folder",
				Widget:   screenshotsDir,
				HintText: "Where the file dialog starts",
			},
			{
				Text:     "Check for updates",
				Widget:   updateCheck,
				HintText: "Check GitHub for a newer release on start",
			},
			{
				Text:   "Game data",
				Widget: updateData,
			},
		},
	}
	tabs := container.NewAppTabs(
		container.NewTabItem("Appearance", appearance),
		container.NewTabItem("General", general),
	)
	w.SetContent(tabs)
	w.Resize(fyne.NewSize(500, 400))
	w.Show()
}
