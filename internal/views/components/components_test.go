package components

import (
	"image"
	"testing"

	"geo-registry/internal/models"
	"geo-registry/internal/validation"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilteredEntry_DropsRejectedRunes(t *testing.T) {
	test.NewTempApp(t)

	entry := NewFilteredEntry(func(r rune) bool {
		return validation.AllowRune(validation.FieldLatitude, r)
	}, 0)

	test.Type(entry, "-5a5.7e1")

	assert.Equal(t, "-55.71", entry.Text)
}

func TestFilteredEntry_MaxLength(t *testing.T) {
	test.NewTempApp(t)

	entry := NewFilteredEntry(func(r rune) bool {
		return validation.AllowRune(validation.FieldName, r)
	}, validation.MaxLength(validation.FieldName))

	test.Type(entry, "Abcdefghijklmnop")

	assert.Equal(t, "Abcdefghijkl", entry.Text)
}

func TestAddForm_Values(t *testing.T) {
	test.NewTempApp(t)

	form := NewAddForm()
	require.Len(t, form.Items(), 5)
	assert.Equal(t, "Point", form.CategorySelect().Selected)

	test.Type(form.NameEntry(), "Парк 1")
	test.Type(form.LatitudeEntry(), "55.75")
	test.Type(form.LongitudeEntry(), "37.61")
	form.CategorySelect().SetSelected("Place")
	test.Type(form.AmountEntry(), "1000")

	assert.Equal(t, AddFormValues{
		Name:      "Парк1",
		Latitude:  "55.75",
		Longitude: "37.61",
		Category:  "Place",
		Amount:    "100",
	}, form.Values())
}

func TestFormatRecord(t *testing.T) {
	cells := FormatRecord(models.Record{
		ID:        7,
		Name:      "Park",
		Latitude:  55.751244,
		Longitude: -37.5,
		Category:  models.CategoryHospital,
		Amount:    3,
	})

	assert.Equal(t, []string{"7", "Park", "55.751244", "-37.5", "Hospital", "3"}, cells)
	assert.Len(t, RecordColumns, len(cells))
}

func TestRecordTable_CellText(t *testing.T) {
	test.NewTempApp(t)

	store := models.NewRecordStore()
	store.Append("Park", 1, 2, models.CategoryPlace, 10)
	table := NewRecordTable(store)

	assert.Equal(t, "1", table.CellText(0, 0))
	assert.Equal(t, "Place", table.CellText(0, 4))
	assert.Equal(t, "", table.CellText(1, 0))
	assert.Equal(t, "", table.CellText(0, 9))

	rows, cols := table.GetWidget().Length()
	assert.Equal(t, 1, rows)
	assert.Equal(t, len(RecordColumns), cols)
}

func TestToolbar_Handlers(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()
	var added, cleared, reported int
	toolbar.SetAddHandler(func() { added++ })
	toolbar.SetClearHandler(func() { cleared++ })
	toolbar.SetReportHandler(func() { reported++ })

	test.Tap(toolbar.addButton)
	test.Tap(toolbar.clearButton)
	test.Tap(toolbar.reportButton)
	test.Tap(toolbar.importButton)

	assert.Equal(t, 1, added)
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 1, reported)
	assert.True(t, toolbar.importButton.Disabled())
	assert.True(t, toolbar.linkButton.Disabled())
	assert.True(t, toolbar.placeButton.Disabled())
}

func TestToolbar_SetReportActive(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()
	assert.Equal(t, widget.SuccessImportance, toolbar.addButton.Importance)

	toolbar.SetReportActive(true)
	assert.True(t, toolbar.IsReportActive())
	assert.Equal(t, widget.SuccessImportance, toolbar.reportButton.Importance)

	toolbar.SetReportActive(false)
	assert.False(t, toolbar.IsReportActive())
	assert.Equal(t, widget.MediumImportance, toolbar.addButton.Importance)
	assert.Equal(t, widget.MediumImportance, toolbar.reportButton.Importance)
}

func TestReportPane_Toggle(t *testing.T) {
	test.NewTempApp(t)

	pane := NewReportPane()
	assert.False(t, pane.IsPlotVisible())
	assert.True(t, pane.frame.Visible())

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	pane.ShowPlot(img)
	assert.True(t, pane.IsPlotVisible())
	assert.False(t, pane.frame.Visible())
	assert.Equal(t, img, pane.PlotImage())

	pane.HidePlot()
	assert.False(t, pane.IsPlotVisible())
	assert.True(t, pane.frame.Visible())
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())
	assert.Equal(t, "0 records", sb.GetRecordCount())

	sb.SetRecordCount(1)
	assert.Equal(t, "1 record", sb.GetRecordCount())
	sb.SetStatus("Records cleared")
	assert.Equal(t, "Records cleared", sb.GetStatus())
}
