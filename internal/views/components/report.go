package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ReportAreaWidth  = 600
	ReportAreaHeight = 500
)

// ReportPane shows either an empty frame or the scatter plot
type ReportPane struct {
	container *fyne.Container
	frame     *canvas.Rectangle
	plotImage *canvas.Image

	plotVisible bool
}

// NewReportPane creates the right-hand report area
func NewReportPane() *ReportPane {
	rp := &ReportPane{}
	rp.createComponents()
	rp.buildLayout()
	return rp
}

func (rp *ReportPane) createComponents() {
	rp.frame = canvas.NewRectangle(color.White)
	rp.frame.StrokeColor = color.Black
	rp.frame.StrokeWidth = 1
	rp.frame.SetMinSize(fyne.NewSize(ReportAreaWidth, ReportAreaHeight))

	rp.plotImage = canvas.NewImageFromImage(nil)
	rp.plotImage.FillMode = canvas.ImageFillContain
	rp.plotImage.ScaleMode = canvas.ImageScaleSmooth
	rp.plotImage.Hide()
}

func (rp *ReportPane) buildLayout() {
	rp.container = container.NewStack(rp.frame, rp.plotImage)
}

// ShowPlot replaces the empty frame with img
func (rp *ReportPane) ShowPlot(img image.Image) {
	rp.plotImage.Image = img
	rp.plotImage.Refresh()
	rp.plotImage.Show()
	rp.frame.Hide()
	rp.plotVisible = true
}

// HidePlot brings back the empty frame
func (rp *ReportPane) HidePlot() {
	rp.plotImage.Hide()
	rp.frame.Show()
	rp.plotVisible = false
}

// IsPlotVisible reports whether the plot is on screen
func (rp *ReportPane) IsPlotVisible() bool {
	return rp.plotVisible
}

// PlotImage returns the image currently assigned to the plot
func (rp *ReportPane) PlotImage() image.Image {
	return rp.plotImage.Image
}

// GetContainer returns the pane container
func (rp *ReportPane) GetContainer() *fyne.Container {
	return rp.container
}
