// Package plot renders the record coordinates as a longitude/latitude scatter chart.
package plot

import (
	"fmt"
	"image"
	"image/color"

	"geo-registry/internal/models"

	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	Title  = "Latitude / longitude"
	XLabel = "Longitude"
	YLabel = "Latitude"
)

var markerColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// XYs converts coordinates into plotter points with longitude on X
func XYs(points []models.LatLon) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = p.Lon
		xys[i].Y = p.Lat
	}
	return xys
}

// Build assembles the scatter plot without rasterizing it
func Build(points []models.LatLon) (*gonum.Plot, error) {
	p := gonum.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Add(plotter.NewGrid())

	if len(points) == 0 {
		p.X.Min, p.X.Max = -180, 180
		p.Y.Min, p.Y.Max = -90, 90
		return p, nil
	}

	scatter, err := plotter.NewScatter(XYs(points))
	if err != nil {
		return nil, fmt.Errorf("build scatter: %w", err)
	}
	scatter.GlyphStyle.Color = markerColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)

	return p, nil
}

// Render draws the scatter plot into an image of the given pixel size
func Render(points []models.LatLon, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid plot size %dx%d", width, height)
	}

	p, err := Build(points)
	if err != nil {
		return nil, err
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Inch/96, vg.Length(height)*vg.Inch/96),
		vgimg.UseDPI(96),
	)
	p.Draw(draw.New(canvas))

	return canvas.Image(), nil
}
