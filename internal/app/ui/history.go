package ui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
)

// showHistoryWindow opens a window listing all recorded positions, newest first.
func showHistoryWindow(u *BaseUI) {
	positions := u.CoordinateStore.All()
	if len(positions) == 0 {
		dialog.ShowInformation("Coordinate History", "No coordinates history available", u.window)
		return
	}
	slices.Reverse(positions)

	w := u.fyneApp.NewWindow(u.appName() + ": Coordinate History")
	list := widget.NewList(
		func() int {
			return len(positions)
		},
		func() fyne.CanvasObject {
			coord := widget.NewLabel("")
			ts := widget.NewLabel("")
			show := widget.NewButton("Show on map...", nil)
			return container.NewHBox(coord, layout.NewSpacer(), ts, show)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id >= len(positions) {
				return
			}
			p := positions[id]
			row := o.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(p.Coordinate.Display())
			row[2].(*widget.Label).SetText(formatTimestamp(p.Timestamp))
			b := row[3].(*widget.Button)
			b.OnTapped = func() {
				showMapSelectDialog(u, p.Coordinate)
			}
		},
	)
	top := widget.NewLabel("Saved positions: " + humanize.Comma(int64(len(positions))))
	key := fmt.Sprintf("history-%d", time.Now().UnixNano())
	u.CoordinateStore.Saved.AddListener(func(_ context.Context, _ app.Coordinate) {
		positions = u.CoordinateStore.All()
		slices.Reverse(positions)
		top.SetText("Saved positions: " + humanize.Comma(int64(len(positions))))
		list.Refresh()
	}, key)
	w.SetOnClosed(func() {
		u.CoordinateStore.Saved.RemoveListener(key)
	})
	w.SetContent(container.NewBorder(top, nil, nil, nil, list))
	w.Resize(fyne.NewSize(500, 400))
	w.Show()
}

// formatTimestamp renders a record timestamp with its relative age.
// Legacy records without a parsable time are shown as-is.
func formatTimestamp(ts string) string {
	t, err := time.ParseInLocation(app.TimestampFormat, ts, time.Local)
	if err != nil {
		return ts
	}
	return ts + " (" + humanize.Time(t) + ")"
}

// showMapSelectDialog lets the user pick the map to show a position on.
func showMapSelectDialog(u *BaseUI, c app.Coordinate) {
	names := u.MapService.AvailableMaps()
	list := widget.NewList(
		func() int {
			return len(names)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(names[id])
		},
	)
	content := container.NewVScroll(list)
	content.SetMinSize(fyne.NewSize(250, 300))
	d := dialog.NewCustom("Select a map to view coordinates", "Cancel", content, u.window)
	list.OnSelected = func(id widget.ListItemID) {
		d.Hide()
		u.showMapWithCoordinate(names[id], c)
	}
	if i := slices.Index(names, u.Settings.LastMap()); i != -1 {
		list.ScrollTo(i)
	}
	d.Show()
}
