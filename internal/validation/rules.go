package validation

import (
	"strconv"

	"geo-registry/internal/models"
)

// Range is an inclusive numeric interval
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// tag renders the range as a validator rule
func (r Range) tag() string {
	return "min=" + formatBound(r.Min) + ",max=" + formatBound(r.Max)
}

const maxNameLength = 12

var fieldRanges = map[Field]Range{
	FieldLatitude:  {Min: -90, Max: 90},
	FieldLongitude: {Min: -180, Max: 180},
	FieldAmount:    {Min: 1, Max: 100},
}

var categoryAmounts = map[models.Category]Range{
	models.CategoryPlace:    {Min: 1, Max: 100},
	models.CategoryPoint:    {Min: 10, Max: 100},
	models.CategoryHospital: {Min: 1, Max: 10},
}

// FieldRange returns the generic range of a numeric field
func FieldRange(field Field) (Range, bool) {
	r, ok := fieldRanges[field]
	return r, ok
}

// CategoryAmountRange returns the amount range mandated by a category
func CategoryAmountRange(category models.Category) (Range, bool) {
	r, ok := categoryAmounts[category]
	return r, ok
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
