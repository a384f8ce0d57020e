package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// tapSurface is an invisible widget covering the window that reports taps
// with the size they were measured against.
type tapSurface struct {
	widget.BaseWidget
	onTap func(fyne.Position, fyne.Size)
}

func newTapSurface(onTap func(fyne.Position, fyne.Size)) *tapSurface {
	surface := &tapSurface{onTap: onTap}
	surface.ExtendBaseWidget(surface)
	return surface
}

func (surface *tapSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (surface *tapSurface) Tapped(event *fyne.PointEvent) {
	if surface.onTap != nil {
		surface.onTap(event.Position, surface.Size())
	}
}
