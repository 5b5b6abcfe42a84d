package validation

import (
	"errors"
	"fmt"

	"geo-registry/internal/models"

	"github.com/go-playground/validator/v10"
)

// Candidate holds the parsed values of an admissible record
type Candidate struct {
	Name      string
	Latitude  float64
	Longitude float64
	Category  models.Category
	Amount    int
}

// Validator decides whether raw field text forms an admissible record.
// It holds no per-call state and is safe to share.
type Validator struct {
	engine *validator.Validate
}

// NewValidator creates a record validator
func NewValidator() *Validator {
	return &Validator{
		engine: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the raw inputs and returns nil when they form an admissible record.
// Failures are *SyntaxError, *RangeError or *CategoryAmountError.
func (v *Validator) Validate(name, latText, lonText string, category models.Category, amountText string) error {
	_, err := v.Parse(name, latText, lonText, category, amountText)
	return err
}

// Parse validates the raw inputs like Validate and returns the parsed values.
// Fields are checked in order name, latitude, longitude, amount, then the
// category rule; the first failure is returned.
func (v *Validator) Parse(name, latText, lonText string, category models.Category, amountText string) (Candidate, error) {
	parsedName, err := parseName(name)
	if err != nil {
		return Candidate{}, err
	}

	lat, err := parseDecimal(FieldLatitude, latText)
	if err != nil {
		return Candidate{}, err
	}
	if err := v.checkField(FieldLatitude, lat); err != nil {
		return Candidate{}, err
	}

	lon, err := parseDecimal(FieldLongitude, lonText)
	if err != nil {
		return Candidate{}, err
	}
	if err := v.checkField(FieldLongitude, lon); err != nil {
		return Candidate{}, err
	}

	amount, err := parseAmount(amountText)
	if err != nil {
		return Candidate{}, err
	}
	if err := v.checkField(FieldAmount, amount); err != nil {
		return Candidate{}, err
	}

	if err := v.checkCategoryAmount(category, amount); err != nil {
		return Candidate{}, err
	}

	return Candidate{
		Name:      parsedName,
		Latitude:  lat,
		Longitude: lon,
		Category:  category,
		Amount:    amount,
	}, nil
}

func (v *Validator) checkField(field Field, value interface{}) error {
	r, ok := fieldRanges[field]
	if !ok {
		return fmt.Errorf("no range defined for %s", field)
	}

	ok, err := v.inRange(value, r)
	if err != nil {
		return fmt.Errorf("check %s range: %w", field, err)
	}
	if !ok {
		return &RangeError{Field: field, Value: toFloat(value), Range: r}
	}
	return nil
}

func (v *Validator) checkCategoryAmount(category models.Category, amount int) error {
	r, ok := categoryAmounts[category]
	if !ok {
		return &SyntaxError{Field: FieldCategory, Input: category.String(), Reason: "unknown category"}
	}

	ok, err := v.inRange(amount, r)
	if err != nil {
		return fmt.Errorf("check %s amount range: %w", category, err)
	}
	if !ok {
		return &CategoryAmountError{Category: category, Amount: amount, Range: r}
	}
	return nil
}

// inRange reports false for a rule violation and an error only when the rule itself is broken
func (v *Validator) inRange(value interface{}, r Range) (bool, error) {
	err := v.engine.Var(value, r.tag())
	if err == nil {
		return true, nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		return false, nil
	}
	return false, err
}

func toFloat(value interface{}) float64 {
	switch n := value.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
