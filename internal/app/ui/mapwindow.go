package ui

import (
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/projection"
)

const (
	markerRadius = 8
	zoomStep     = 1.25
	zoomMin      = 0.25
	zoomMax      = 8
)

// showMapWindow opens a new window showing a position on a map.
func showMapWindow(u *BaseUI, gm app.GameMap, c app.Coordinate) {
	w := u.fyneApp.NewWindow(u.appName() + ": " + gm.Name)
	v := newMapView(gm, c)

	position := widget.NewLabel("Player Position: " + c.Display())
	toolbar := container.NewHBox(
		position,
		layout.NewSpacer(),
		widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
			v.zoomBy(zoomStep)
		}),
		widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
			v.zoomBy(1 / zoomStep)
		}),
		widget.NewButtonWithIcon("", theme.ZoomFitIcon(), func() {
			v.reset()
		}),
	)
	top := container.NewVBox()
	if gm.Description != "" {
		desc := widget.NewLabel(gm.Description)
		desc.Wrapping = fyne.TextWrapWord
		top.Add(desc)
	}
	if gm.WikiURL != "" {
		if x, err := url.Parse(gm.WikiURL); err == nil {
			toolbar.Add(widget.NewHyperlink("Open Wiki", x))
		}
	}
	top.Add(toolbar)
	w.SetContent(container.NewBorder(top, nil, nil, nil, v))
	w.Resize(fyne.NewSize(1000, 800))
	w.Show()
}

// mapView renders a map image with a position marker.
// Dragging pans the map and scrolling zooms it.
type mapView struct {
	widget.BaseWidget

	cal    app.Calibration
	coord  app.Coordinate
	image  *canvas.Image
	marker *canvas.Circle
	offset fyne.Position
	zoom   float32
}

var _ fyne.Draggable = (*mapView)(nil)
var _ fyne.Scrollable = (*mapView)(nil)

func newMapView(gm app.GameMap, c app.Coordinate) *mapView {
	img := canvas.NewImageFromFile(gm.SVGPath)
	img.FillMode = canvas.ImageFillStretch
	marker := canvas.NewCircle(color.NRGBA{R: 230, G: 30, B: 30, A: 255})
	marker.StrokeColor = color.White
	marker.StrokeWidth = 2
	v := &mapView{
		cal:    gm.Calibration,
		coord:  c,
		image:  img,
		marker: marker,
		zoom:   1,
	}
	v.ExtendBaseWidget(v)
	return v
}

func (v *mapView) Dragged(e *fyne.DragEvent) {
	v.offset = v.offset.Add(fyne.NewPos(e.Dragged.DX, e.Dragged.DY))
	v.Refresh()
}

func (v *mapView) DragEnd() {
}

func (v *mapView) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		v.zoomBy(zoomStep)
	} else if e.Scrolled.DY < 0 {
		v.zoomBy(1 / zoomStep)
	}
}

// zoomBy changes the zoom level keeping the view center stable.
func (v *mapView) zoomBy(factor float32) {
	zoom := v.zoom * factor
	if zoom < zoomMin || zoom > zoomMax {
		return
	}
	center := fyne.NewPos(v.Size().Width/2, v.Size().Height/2)
	f := zoom / v.zoom
	v.offset = fyne.NewPos(
		center.X-(center.X-v.offset.X)*f,
		center.Y-(center.Y-v.offset.Y)*f,
	)
	v.zoom = zoom
	v.Refresh()
}

// reset restores the initial zoom and pan.
func (v *mapView) reset() {
	v.zoom = 1
	v.offset = fyne.NewPos(0, 0)
	v.Refresh()
}

func (v *mapView) CreateRenderer() fyne.WidgetRenderer {
	return &mapViewRenderer{v: v}
}

type mapViewRenderer struct {
	v *mapView
}

func (r *mapViewRenderer) Layout(size fyne.Size) {
	v := r.v
	w := size.Width * v.zoom
	h := size.Height * v.zoom
	v.image.Resize(fyne.NewSize(w, h))
	v.image.Move(v.offset)
	p := projection.Project(v.cal, v.coord, float64(w), float64(h))
	v.marker.Resize(fyne.NewSize(2*markerRadius, 2*markerRadius))
	v.marker.Move(fyne.NewPos(
		v.offset.X+float32(p.X)-markerRadius,
		v.offset.Y+float32(p.Y)-markerRadius,
	))
}

func (r *mapViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *mapViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.v.image, r.v.marker}
}

func (r *mapViewRenderer) Refresh() {
	r.Layout(r.v.Size())
	canvas.Refresh(r.v)
}

func (r *mapViewRenderer) Destroy() {
}
