package views

import (
	"image"

	"geo-registry/internal/controllers"
	"geo-registry/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// tableShare is the part of the window width given to the table side
const tableShare = 0.4

// MainView is the record table window: table and actions on the left, report on the right
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *container.Split
	recordTable   *components.RecordTable
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar
	reportPane    *components.ReportPane
	records       components.RecordSource

	// Event handlers - connected to controller
	addHandler    func()
	clearHandler  func()
	reportHandler func()
}

// NewMainView creates the main view over a record source
func NewMainView(window fyne.Window, records components.RecordSource) *MainView {
	view := &MainView{
		window:  window,
		records: records,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.recordTable = components.NewRecordTable(mv.records)
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
	mv.reportPane = components.NewReportPane()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	left := container.NewBorder(
		nil,
		container.NewVBox(mv.toolbar.GetContainer(), mv.statusBar.GetContainer()),
		nil,
		nil,
		mv.recordTable.GetWidget(),
	)

	mv.mainContainer = container.NewHSplit(left, mv.reportPane.GetContainer())
	mv.mainContainer.SetOffset(tableShare)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects toolbar buttons to the controller handlers
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetAddHandler(func() {
		if mv.addHandler != nil {
			mv.addHandler()
		}
	})

	mv.toolbar.SetClearHandler(func() {
		if mv.clearHandler != nil {
			mv.clearHandler()
		}
	})

	mv.toolbar.SetReportHandler(func() {
		if mv.reportHandler != nil {
			mv.reportHandler()
		}
	})
}

// Event handler setters - called by controller

// SetAddHandler sets the handler for the Add button
func (mv *MainView) SetAddHandler(handler func()) {
	mv.addHandler = handler
}

// SetClearHandler sets the handler for the Clear button
func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

// SetReportHandler sets the handler for the Report button
func (mv *MainView) SetReportHandler(handler func()) {
	mv.reportHandler = handler
}

// UI update methods - called by controller

// ShowAddDialog opens the add-record form; submit runs only when the user confirms
func (mv *MainView) ShowAddDialog(submit func(controllers.FormInput)) {
	form := components.NewAddForm()

	d := dialog.NewForm("Add record", "Add", "Cancel", form.Items(), func(confirmed bool) {
		if !confirmed {
			return
		}
		values := form.Values()
		submit(controllers.FormInput{
			Name:      values.Name,
			Latitude:  values.Latitude,
			Longitude: values.Longitude,
			Category:  values.Category,
			Amount:    values.Amount,
		})
	}, mv.window)

	d.Resize(fyne.NewSize(420, 320))
	d.Show()
}

// RefreshRecords redraws the table and record counter
func (mv *MainView) RefreshRecords() {
	fyne.Do(func() {
		mv.recordTable.Refresh()
		mv.statusBar.SetStatus("Ready")
		mv.statusBar.SetRecordCount(mv.records.Len())
	})
}

// ShowPlot displays the rendered report and highlights the report actions
func (mv *MainView) ShowPlot(img image.Image) {
	fyne.Do(func() {
		mv.reportPane.ShowPlot(img)
		mv.toolbar.SetReportActive(true)
	})
}

// HidePlot swaps the report back to the empty frame
func (mv *MainView) HidePlot() {
	fyne.Do(func() {
		mv.reportPane.HidePlot()
		mv.toolbar.SetReportActive(false)
	})
}

// ShowValidationError tells the user why the record was not added
func (mv *MainView) ShowValidationError(err error) {
	fyne.Do(func() {
		mv.statusBar.SetStatus("Record rejected")
		dialog.ShowError(err, mv.window)
	})
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetReportPane returns the report component
func (mv *MainView) GetReportPane() *components.ReportPane {
	return mv.reportPane
}

// GetRecordTable returns the table component
func (mv *MainView) GetRecordTable() *components.RecordTable {
	return mv.recordTable
}

// GetStatusBar returns the status bar component
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

var _ controllers.View = (*MainView)(nil)
