package validation

import (
	"fmt"

	"geo-registry/internal/models"
)

// Field names a user-entered record attribute
type Field string

const (
	FieldName      Field = "name"
	FieldLatitude  Field = "latitude"
	FieldLongitude Field = "longitude"
	FieldCategory  Field = "category"
	FieldAmount    Field = "amount"
)

// SyntaxError reports raw text that does not have the field's lexical shape
type SyntaxError struct {
	Field  Field
	Input  string
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Input)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

// RangeError reports a parsed value outside the field's permitted range
type RangeError struct {
	Field Field
	Value float64
	Range Range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %s and %s, got %s",
		e.Field, formatBound(e.Range.Min), formatBound(e.Range.Max), formatBound(e.Value))
}

// CategoryAmountError reports an amount outside the range its category allows
type CategoryAmountError struct {
	Category models.Category
	Amount   int
	Range    Range
}

func (e *CategoryAmountError) Error() string {
	return fmt.Sprintf("amount for %s must be between %s and %s, got %d",
		e.Category, formatBound(e.Range.Min), formatBound(e.Range.Max), e.Amount)
}
