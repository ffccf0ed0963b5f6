package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func makeMenu(u *BaseUI) *fyne.MainMenu {
	loadItem := fyne.NewMenuItem("Load Screenshot...", func() {
		u.showLoadScreenshotDialog()
	})
	loadShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}
	loadItem.Shortcut = loadShortcut
	u.window.Canvas().AddShortcut(loadShortcut, func(fyne.Shortcut) {
		u.showLoadScreenshotDialog()
	})
	fileMenu := fyne.NewMenu("File", loadItem)

	historyItem := fyne.NewMenuItem("Coordinate History...", func() {
		showHistoryWindow(u)
	})
	historyShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyH, Modifier: fyne.KeyModifierAlt}
	historyItem.Shortcut = historyShortcut
	u.window.Canvas().AddShortcut(historyShortcut, func(fyne.Shortcut) {
		showHistoryWindow(u)
	})
	viewMenu := fyne.NewMenu("View", historyItem)

	mapItems := make([]*fyne.MenuItem, 0)
	for _, name := range u.MapService.AvailableMaps() {
		mapItems = append(mapItems, fyne.NewMenuItem(name, func() {
			u.showMap(name)
		}))
	}
	mapsMenu := fyne.NewMenu("Maps", mapItems...)

	settingsItem := fyne.NewMenuItem("Settings...", func() {
		showSettingsWindow(u)
	})
	settingsShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierAlt}
	settingsItem.Shortcut = settingsShortcut
	u.window.Canvas().AddShortcut(settingsShortcut, func(fyne.Shortcut) {
		showSettingsWindow(u)
	})
	optionsMenu := fyne.NewMenu("Options", settingsItem)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Wiki", func() {
			x, _ := url.Parse(wikiURL)
			_ = u.fyneApp.OpenURL(x)
		}),
		fyne.NewMenuItem("Report a bug", func() {
			_ = u.fyneApp.OpenURL(u.websiteRootURL().JoinPath("issues"))
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("User data...", func() {
			u.showUserDataDialog()
		}),
		fyne.NewMenuItem("About...", func() {
			u.showAboutDialog()
		}),
	)
	return fyne.NewMainMenu(fileMenu, viewMenu, mapsMenu, optionsMenu, helpMenu)
}

func (u *BaseUI) showAboutDialog() {
	c := container.NewVBox()
	info := u.fyneApp.Metadata()
	appData := widget.NewRichTextFromMarkdown(
		"## " + u.appName() + "\n**Version:** " + info.Version)
	c.Add(appData)
	c.Add(widget.NewLabel("A tool for translating Escape from Tarkov game coordinates\nto positions on map images."))
	c.Add(widget.NewHyperlink("Website", u.websiteRootURL()))
	tdURL, _ := url.Parse("https://github.com/the-hideout/tarkov-data")
	c.Add(widget.NewHyperlink("Maps and data sourced from the tarkovdata project", tdURL))
	d := dialog.NewCustom("About", "Close", c, u.window)
	d.Show()
}

func (u *BaseUI) showUserDataDialog() {
	f := widget.NewForm(
		widget.NewFormItem("Coordinates", makePathEntry(u.window.Clipboard(), u.CoordinateStore.Path())),
		widget.NewFormItem("Game data", makePathEntry(u.window.Clipboard(), u.DataDir)),
	)
	d := dialog.NewCustom("User data", "Close", f, u.window)
	d.Show()
}

func makePathEntry(cb fyne.Clipboard, p string) *fyne.Container {
	return container.NewHBox(
		widget.NewLabel(p),
		layout.NewSpacer(),
		widget.NewButtonWithIcon("", theme.ContentCopyIcon(), func() {
			cb.SetContent(p)
		}))
}
