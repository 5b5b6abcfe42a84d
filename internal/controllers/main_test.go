package controllers

import (
	"image"
	"testing"

	"geo-registry/internal/logger"
	"geo-registry/internal/models"
	"geo-registry/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	addHandler    func()
	clearHandler  func()
	reportHandler func()

	pendingInput *FormInput
	refreshes    int
	plots        []image.Image
	hidden       int
	errors       []error
}

func (f *fakeView) SetAddHandler(handler func())    { f.addHandler = handler }
func (f *fakeView) SetClearHandler(handler func())  { f.clearHandler = handler }
func (f *fakeView) SetReportHandler(handler func()) { f.reportHandler = handler }

func (f *fakeView) ShowAddDialog(submit func(FormInput)) {
	if f.pendingInput != nil {
		submit(*f.pendingInput)
	}
}

func (f *fakeView) RefreshRecords()               { f.refreshes++ }
func (f *fakeView) ShowPlot(img image.Image)      { f.plots = append(f.plots, img) }
func (f *fakeView) HidePlot()                     { f.hidden++ }
func (f *fakeView) ShowValidationError(err error) { f.errors = append(f.errors, err) }

func newController(t *testing.T) (*MainController, *models.RecordStore, *fakeView) {
	t.Helper()
	store := models.NewRecordStore()
	mc := NewMainController(store, validation.NewValidator(), logger.Nop(), PlotSize{Width: 200, Height: 200})
	view := &fakeView{}
	mc.SetMainView(view)
	return mc, store, view
}

func TestMainController_WiresViewHandlers(t *testing.T) {
	_, _, view := newController(t)

	assert.NotNil(t, view.addHandler)
	assert.NotNil(t, view.clearHandler)
	assert.NotNil(t, view.reportHandler)
}

func TestMainController_AddRecord(t *testing.T) {
	mc, store, view := newController(t)

	id, err := mc.AddRecord(FormInput{
		Name: "Park", Latitude: "55.751244", Longitude: "37.618423", Category: "Place", Amount: "10",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RecordID(1), id)
	assert.Equal(t, 1, view.refreshes)
	assert.Empty(t, view.errors)

	records := store.All()
	require.Len(t, records, 1)
	assert.Equal(t, models.Record{
		ID:        1,
		Name:      "Park",
		Latitude:  55.751244,
		Longitude: 37.618423,
		Category:  models.CategoryPlace,
		Amount:    10,
	}, records[0])
}

func TestMainController_AddRecordRejectsInvalidInput(t *testing.T) {
	mc, store, view := newController(t)

	_, err := mc.AddRecord(FormInput{
		Name: "Hosp", Latitude: "10", Longitude: "10", Category: "Hospital", Amount: "50",
	})

	var catErr *validation.CategoryAmountError
	require.ErrorAs(t, err, &catErr)
	require.Len(t, view.errors, 1)
	assert.Equal(t, err, view.errors[0])
	assert.Equal(t, 0, store.Len())
	assert.Zero(t, view.refreshes)
}

func TestMainController_AddRecordUnknownCategory(t *testing.T) {
	mc, store, _ := newController(t)

	_, err := mc.AddRecord(FormInput{
		Name: "Park", Latitude: "1", Longitude: "1", Category: "Warehouse", Amount: "10",
	})

	var syntaxErr *validation.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, validation.FieldCategory, syntaxErr.Field)
	assert.Equal(t, 0, store.Len())
}

func TestMainController_RequestAddSubmitsDialogInput(t *testing.T) {
	mc, store, view := newController(t)
	view.pendingInput = &FormInput{Name: "Cafe", Latitude: "1.5", Longitude: "-2.5", Category: "Point", Amount: "10"}

	view.addHandler()

	records := mc.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Cafe", records[0].Name)
	assert.Equal(t, 1, store.Len())
}

func TestMainController_Seed(t *testing.T) {
	mc, _, view := newController(t)

	require.NoError(t, mc.Seed())

	records := mc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Парк", records[0].Name)
	assert.Equal(t, models.CategoryPlace, records[0].Category)
	assert.Equal(t, "Кафе", records[1].Name)
	assert.Equal(t, models.RecordID(2), records[1].ID)
	assert.Equal(t, 1, view.refreshes)
}

func TestMainController_ClearRecords(t *testing.T) {
	mc, store, view := newController(t)
	require.NoError(t, mc.Seed())

	view.clearHandler()

	assert.Empty(t, mc.Records())
	assert.Equal(t, models.RecordID(1), store.NextID())

	id, err := mc.AddRecord(FormInput{Name: "Park", Latitude: "0", Longitude: "0", Category: "Place", Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, models.RecordID(1), id)
}

func TestMainController_ToggleReport(t *testing.T) {
	mc, _, view := newController(t)
	require.NoError(t, mc.Seed())

	mc.ToggleReport()
	assert.True(t, mc.IsReportVisible())
	require.Len(t, view.plots, 1)
	assert.NotNil(t, view.plots[0])

	_, err := mc.AddRecord(FormInput{Name: "Park", Latitude: "0", Longitude: "0", Category: "Place", Amount: "1"})
	require.NoError(t, err)
	assert.Len(t, view.plots, 2, "visible plot is redrawn after a new record")

	view.reportHandler()
	assert.False(t, mc.IsReportVisible())
	assert.Equal(t, 1, view.hidden)

	_, err = mc.AddRecord(FormInput{Name: "Park", Latitude: "0", Longitude: "0", Category: "Place", Amount: "1"})
	require.NoError(t, err)
	assert.Len(t, view.plots, 2, "hidden plot is not redrawn")
}

func TestMainController_ToggleReportRenderFailure(t *testing.T) {
	store := models.NewRecordStore()
	mc := NewMainController(store, validation.NewValidator(), logger.Nop(), PlotSize{})
	view := &fakeView{}
	mc.SetMainView(view)

	mc.ToggleReport()

	assert.False(t, mc.IsReportVisible())
	assert.Empty(t, view.plots)
}

func TestMainController_WithoutView(t *testing.T) {
	store := models.NewRecordStore()
	mc := NewMainController(store, validation.NewValidator(), logger.Nop(), PlotSize{Width: 100, Height: 100})

	require.NoError(t, mc.Seed())
	mc.RequestAdd()
	mc.ToggleReport()
	mc.ClearRecords()

	assert.Equal(t, 0, store.Len())
}
