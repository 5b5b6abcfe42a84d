package components

import (
	"geo-registry/internal/models"
	"geo-registry/internal/validation"

	"fyne.io/fyne/v2/widget"
)

// AddForm collects the raw text of a new record
type AddForm struct {
	nameEntry      *FilteredEntry
	latitudeEntry  *FilteredEntry
	longitudeEntry *FilteredEntry
	categorySelect *widget.Select
	amountEntry    *FilteredEntry
}

// AddFormValues is the raw text currently held by the form
type AddFormValues struct {
	Name      string
	Latitude  string
	Longitude string
	Category  string
	Amount    string
}

// NewAddForm creates the add-record form with keystroke filters per field
func NewAddForm() *AddForm {
	f := &AddForm{
		nameEntry:      newFieldEntry(validation.FieldName),
		latitudeEntry:  newFieldEntry(validation.FieldLatitude),
		longitudeEntry: newFieldEntry(validation.FieldLongitude),
		amountEntry:    newFieldEntry(validation.FieldAmount),
	}

	f.nameEntry.SetPlaceHolder("up to 12 letters or digits")
	f.latitudeEntry.SetPlaceHolder("-90 … 90")
	f.longitudeEntry.SetPlaceHolder("-180 … 180")
	f.amountEntry.SetPlaceHolder("1 … 100")

	labels := models.CategoryLabels()
	f.categorySelect = widget.NewSelect(labels, nil)
	f.categorySelect.SetSelected(labels[0])

	return f
}

func newFieldEntry(field validation.Field) *FilteredEntry {
	return NewFilteredEntry(func(r rune) bool {
		return validation.AllowRune(field, r)
	}, validation.MaxLength(field))
}

// Items returns the form rows in display order
func (f *AddForm) Items() []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem("Name", f.nameEntry),
		widget.NewFormItem("Latitude", f.latitudeEntry),
		widget.NewFormItem("Longitude", f.longitudeEntry),
		widget.NewFormItem("Category", f.categorySelect),
		widget.NewFormItem("Amount", f.amountEntry),
	}
}

// Values returns the current raw text of every field
func (f *AddForm) Values() AddFormValues {
	return AddFormValues{
		Name:      f.nameEntry.Text,
		Latitude:  f.latitudeEntry.Text,
		Longitude: f.longitudeEntry.Text,
		Category:  f.categorySelect.Selected,
		Amount:    f.amountEntry.Text,
	}
}

// NameEntry returns the name field
func (f *AddForm) NameEntry() *FilteredEntry { return f.nameEntry }

// LatitudeEntry returns the latitude field
func (f *AddForm) LatitudeEntry() *FilteredEntry { return f.latitudeEntry }

// LongitudeEntry returns the longitude field
func (f *AddForm) LongitudeEntry() *FilteredEntry { return f.longitudeEntry }

// AmountEntry returns the amount field
func (f *AddForm) AmountEntry() *FilteredEntry { return f.amountEntry }

// CategorySelect returns the category selector
func (f *AddForm) CategorySelect() *widget.Select { return f.categorySelect }
