package components

import (
	"strconv"

	"geo-registry/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// RecordSource provides rows for the table
type RecordSource interface {
	Len() int
	At(i int) (models.Record, bool)
}

// RecordColumns are the table headers in display order
var RecordColumns = []string{"ID", "Name", "Latitude", "Longitude", "Category", "Amount"}

var columnWidths = []float32{50, 140, 120, 120, 100, 90}

// RecordTable renders the store contents, one record per row, in insertion order
type RecordTable struct {
	table  *widget.Table
	source RecordSource
}

// NewRecordTable creates a table bound to source
func NewRecordTable(source RecordSource) *RecordTable {
	rt := &RecordTable{source: source}
	rt.createComponents()
	return rt
}

func (rt *RecordTable) createComponents() {
	rt.table = widget.NewTableWithHeaders(
		func() (int, int) {
			return rt.source.Len(), len(RecordColumns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			label := cell.(*widget.Label)
			label.SetText(rt.CellText(id.Row, id.Col))
		},
	)

	rt.table.ShowHeaderColumn = false
	rt.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	rt.table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col < 0 || id.Col >= len(RecordColumns) {
			return
		}
		cell.(*widget.Label).SetText(RecordColumns[id.Col])
	}

	for col, width := range columnWidths {
		rt.table.SetColumnWidth(col, width)
	}
}

// CellText returns the text shown at the given row and column
func (rt *RecordTable) CellText(row, col int) string {
	record, ok := rt.source.At(row)
	if !ok {
		return ""
	}

	cells := FormatRecord(record)
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// FormatRecord renders a record as table cells
func FormatRecord(r models.Record) []string {
	return []string{
		strconv.Itoa(int(r.ID)),
		r.Name,
		strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		strconv.FormatFloat(r.Longitude, 'f', -1, 64),
		r.Category.String(),
		strconv.Itoa(r.Amount),
	}
}

// Refresh redraws the rows
func (rt *RecordTable) Refresh() {
	rt.table.Refresh()
}

// GetWidget returns the underlying table widget
func (rt *RecordTable) GetWidget() *widget.Table {
	return rt.table
}
