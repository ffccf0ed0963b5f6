package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/github"
)

const (
	githubOwner = "AAAAAAAAA9a"
	githubRepo  = "tarkov-app"
)

// statusBar is the status bar at the bottom of the main window.
type statusBar struct {
	widget.BaseWidget

	infoText   *widget.Label
	updateHint *widget.Hyperlink
	u          *BaseUI
}

func newStatusBar(u *BaseUI) *statusBar {
	a := &statusBar{
		infoText: widget.NewLabel("Ready"),
		u:        u,
	}
	a.ExtendBaseWidget(a)
	a.updateHint = widget.NewHyperlink("Update available", u.websiteRootURL().JoinPath("releases"))
	a.updateHint.Hide()
	return a
}

func (a *statusBar) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewHBox(a.infoText, layout.NewSpacer(), a.updateHint)
	return widget.NewSimpleRenderer(c)
}

// SetText updates the status message.
func (a *statusBar) SetText(s string) {
	a.infoText.SetText(s)
}

// checkForUpdate shows the update hint when GitHub has a newer release.
// Intended to be run in a goroutine on app start.
func (a *statusBar) checkForUpdate() {
	if !a.u.Settings.UpdateCheckEnabled() {
		return
	}
	current := a.u.fyneApp.Metadata().Version
	v, err := github.AvailableUpdate(githubOwner, githubRepo, current)
	if err != nil {
		slog.Warn("Failed to check for update", "error", err)
		return
	}
	if !v.IsRemoteNewer {
		return
	}
	slog.Info("Newer version available", "local", v.Local, "latest", v.Latest)
	fyne.Do(func() {
		a.updateHint.SetText("Update available: " + v.Latest)
		a.updateHint.Show()
	})
}
