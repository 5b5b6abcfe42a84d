package models

import (
	"fmt"
	"strings"
)

// RecordID identifies a record within a store session
type RecordID int

// Category is the closed set of record kinds
type Category int

const (
	CategoryPoint Category = iota
	CategoryHospital
	CategoryPlace
)

var categoryLabels = map[Category]string{
	CategoryPoint:    "Point",
	CategoryHospital: "Hospital",
	CategoryPlace:    "Place",
}

// Categories returns all categories in display order
func Categories() []Category {
	return []Category{CategoryPoint, CategoryHospital, CategoryPlace}
}

// CategoryLabels returns the display labels in the same order as Categories
func CategoryLabels() []string {
	categories := Categories()
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.String())
	}
	return labels
}

// String returns the display label of the category
func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory maps a display label back to its category
func ParseCategory(label string) (Category, error) {
	trimmed := strings.TrimSpace(label)
	for c, l := range categoryLabels {
		if strings.EqualFold(l, trimmed) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", label)
}

// Record is a single geotagged entry shown as one table row
type Record struct {
	ID        RecordID
	Name      string
	Latitude  float64
	Longitude float64
	Category  Category
	Amount    int
}

// LatLon is a coordinate pair derived from a record for plotting
type LatLon struct {
	Lat float64
	Lon float64
}
