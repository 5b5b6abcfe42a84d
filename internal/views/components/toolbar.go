package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the two rows of record actions below the table
type Toolbar struct {
	container    *fyne.Container
	addButton    *widget.Button
	importButton *widget.Button
	reportButton *widget.Button
	clearButton  *widget.Button
	linkButton   *widget.Button
	placeButton  *widget.Button

	// Event handlers
	addHandler    func()
	reportHandler func()
	clearHandler  func()

	// State
	reportActive bool
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.addButton = widget.NewButton("Add", nil)
	t.addButton.Importance = widget.SuccessImportance

	t.importButton = widget.NewButton("Import", nil)
	t.importButton.Disable()

	t.reportButton = widget.NewButton("Report", nil)

	t.clearButton = widget.NewButton("Clear", nil)

	// Link and Placement have no behaviour yet
	t.linkButton = widget.NewButton("Link", nil)
	t.linkButton.Disable()

	t.placeButton = widget.NewButton("Placement", nil)
	t.placeButton.Disable()
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	firstRow := container.NewGridWithColumns(3, t.addButton, t.importButton, t.reportButton)
	secondRow := container.NewGridWithColumns(3, t.clearButton, t.linkButton, t.placeButton)

	t.container = container.NewVBox(firstRow, secondRow)
}

// setupEventHandlers connects button events
func (t *Toolbar) setupEventHandlers() {
	t.addButton.OnTapped = func() {
		if t.addHandler != nil {
			t.addHandler()
		}
	}

	t.reportButton.OnTapped = func() {
		if t.reportHandler != nil {
			t.reportHandler()
		}
	}

	t.clearButton.OnTapped = func() {
		if t.clearHandler != nil {
			t.clearHandler()
		}
	}
}

// SetAddHandler sets the add record handler
func (t *Toolbar) SetAddHandler(handler func()) {
	t.addHandler = handler
}

// SetReportHandler sets the report toggle handler
func (t *Toolbar) SetReportHandler(handler func()) {
	t.reportHandler = handler
}

// SetClearHandler sets the clear records handler
func (t *Toolbar) SetClearHandler(handler func()) {
	t.clearHandler = handler
}

// SetReportActive highlights Add and Report while the plot is shown
func (t *Toolbar) SetReportActive(active bool) {
	t.reportActive = active

	if active {
		t.addButton.Importance = widget.SuccessImportance
		t.reportButton.Importance = widget.SuccessImportance
	} else {
		t.addButton.Importance = widget.MediumImportance
		t.reportButton.Importance = widget.MediumImportance
	}

	t.addButton.Refresh()
	t.reportButton.Refresh()
}

// IsReportActive reports whether the report highlight is on
func (t *Toolbar) IsReportActive() bool {
	return t.reportActive
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
