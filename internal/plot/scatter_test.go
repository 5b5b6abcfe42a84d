package plot

import (
	"testing"

	"geo-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXYs_LongitudeOnX(t *testing.T) {
	xys := XYs([]models.LatLon{{Lat: 55.75, Lon: 37.61}, {Lat: -10, Lon: 170}})

	require.Len(t, xys, 2)
	assert.Equal(t, 37.61, xys[0].X)
	assert.Equal(t, 55.75, xys[0].Y)
	assert.Equal(t, 170.0, xys[1].X)
	assert.Equal(t, -10.0, xys[1].Y)
}

func TestBuild_Labels(t *testing.T) {
	p, err := Build([]models.LatLon{{Lat: 1, Lon: 2}})
	require.NoError(t, err)

	assert.Equal(t, Title, p.Title.Text)
	assert.Equal(t, XLabel, p.X.Label.Text)
	assert.Equal(t, YLabel, p.Y.Label.Text)
}

func TestBuild_EmptyUsesWorldBounds(t *testing.T) {
	p, err := Build(nil)
	require.NoError(t, err)

	assert.Equal(t, -180.0, p.X.Min)
	assert.Equal(t, 180.0, p.X.Max)
	assert.Equal(t, -90.0, p.Y.Min)
	assert.Equal(t, 90.0, p.Y.Max)
}

func TestRender_ImageSize(t *testing.T) {
	points := []models.LatLon{
		{Lat: 55.751244, Lon: 37.618423},
		{Lat: 55.752023, Lon: 37.615310},
	}

	img, err := Render(points, 640, 480)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.InDelta(t, 640, bounds.Dx(), 1)
	assert.InDelta(t, 480, bounds.Dy(), 1)
}

func TestRender_Empty(t *testing.T) {
	img, err := Render(nil, 200, 200)
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestRender_InvalidSize(t *testing.T) {
	_, err := Render(nil, 0, 100)
	assert.Error(t, err)
}
