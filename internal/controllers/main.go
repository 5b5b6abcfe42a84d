package controllers

import (
	"fmt"
	"image"

	"geo-registry/internal/logger"
	"geo-registry/internal/models"
	"geo-registry/internal/plot"
	"geo-registry/internal/validation"
)

const component = "MainController"

// View is the presentation surface the controller drives
type View interface {
	SetAddHandler(handler func())
	SetClearHandler(handler func())
	SetReportHandler(handler func())

	ShowAddDialog(submit func(FormInput))
	RefreshRecords()
	ShowPlot(img image.Image)
	HidePlot()
	ShowValidationError(err error)
}

// FormInput carries the raw text collected by the add dialog
type FormInput struct {
	Name      string
	Latitude  string
	Longitude string
	Category  string
	Amount    string
}

// PlotSize is the pixel size of the rendered report
type PlotSize struct {
	Width  int
	Height int
}

// ExampleRecords are loaded by Seed
var ExampleRecords = []FormInput{
	{Name: "Парк", Latitude: "55.751244", Longitude: "37.618423", Category: models.CategoryPlace.String(), Amount: "10"},
	{Name: "Кафе", Latitude: "55.752023", Longitude: "37.615310", Category: models.CategoryPoint.String(), Amount: "50"},
}

// MainController validates user input, feeds the record store and keeps the view in sync
type MainController struct {
	store     *models.RecordStore
	validator *validation.Validator
	logger    logger.Logger
	plotSize  PlotSize

	mainView      View
	reportVisible bool
}

// NewMainController creates a controller over an injected store and validator
func NewMainController(
	store *models.RecordStore,
	validator *validation.Validator,
	log logger.Logger,
	plotSize PlotSize,
) *MainController {
	return &MainController{
		store:     store,
		validator: validator,
		logger:    log,
		plotSize:  plotSize,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetAddHandler(mc.RequestAdd)
	mc.mainView.SetClearHandler(mc.ClearRecords)
	mc.mainView.SetReportHandler(mc.ToggleReport)
}

// Seed loads the example records through the regular validation path
func (mc *MainController) Seed() error {
	for _, input := range ExampleRecords {
		if _, err := mc.addRecord(input); err != nil {
			return fmt.Errorf("seed %q: %w", input.Name, err)
		}
	}

	mc.logger.Info(component, "example records loaded", map[string]interface{}{
		"count": len(ExampleRecords),
	})
	mc.refresh()
	return nil
}

// RequestAdd opens the add dialog
func (mc *MainController) RequestAdd() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.ShowAddDialog(func(input FormInput) {
		_, _ = mc.AddRecord(input)
	})
}

// AddRecord validates the input and appends it to the store.
// Invalid input is reported to the view and nothing is stored.
func (mc *MainController) AddRecord(input FormInput) (models.RecordID, error) {
	id, err := mc.addRecord(input)
	if err != nil {
		mc.logger.Warning(component, "record rejected", map[string]interface{}{
			"name":  input.Name,
			"error": err.Error(),
		})
		if mc.mainView != nil {
			mc.mainView.ShowValidationError(err)
		}
		return 0, err
	}

	mc.refresh()
	return id, nil
}

func (mc *MainController) addRecord(input FormInput) (models.RecordID, error) {
	category, err := models.ParseCategory(input.Category)
	if err != nil {
		return 0, &validation.SyntaxError{
			Field:  validation.FieldCategory,
			Input:  input.Category,
			Reason: "unknown category",
		}
	}

	candidate, err := mc.validator.Parse(input.Name, input.Latitude, input.Longitude, category, input.Amount)
	if err != nil {
		return 0, err
	}

	id := mc.store.Append(candidate.Name, candidate.Latitude, candidate.Longitude, candidate.Category, candidate.Amount)

	mc.logger.Debug(component, "record appended", map[string]interface{}{
		"id":       int(id),
		"name":     candidate.Name,
		"category": candidate.Category.String(),
	})

	return id, nil
}

// ClearRecords empties the store and resets numbering
func (mc *MainController) ClearRecords() {
	count := mc.store.Len()
	mc.store.Clear()

	mc.logger.Info(component, "records cleared", map[string]interface{}{
		"removed": count,
	})
	mc.refresh()
}

// ToggleReport shows the scatter plot when hidden and hides it when shown
func (mc *MainController) ToggleReport() {
	if mc.reportVisible {
		mc.reportVisible = false
		if mc.mainView != nil {
			mc.mainView.HidePlot()
		}
		return
	}

	mc.reportVisible = mc.renderPlot()
}

// IsReportVisible reports whether the plot pane is shown
func (mc *MainController) IsReportVisible() bool {
	return mc.reportVisible
}

// Records returns the stored records in insertion order
func (mc *MainController) Records() []models.Record {
	return mc.store.All()
}

func (mc *MainController) refresh() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.RefreshRecords()
	if mc.reportVisible {
		mc.renderPlot()
	}
}

func (mc *MainController) renderPlot() bool {
	img, err := plot.Render(mc.store.Points(), mc.plotSize.Width, mc.plotSize.Height)
	if err != nil {
		mc.handleError("plot rendering failed", err)
		return false
	}

	if mc.mainView != nil {
		mc.mainView.ShowPlot(img)
	}
	return true
}

func (mc *MainController) handleError(message string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{
		"context": message,
	})
}

// Shutdown logs the final record count
func (mc *MainController) Shutdown() {
	mc.logger.Info(component, "controller shutdown", map[string]interface{}{
		"records": mc.store.Len(),
	})
}
