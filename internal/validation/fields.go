package validation

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

func isLatinLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isNameLetter(r rune) bool {
	return isLatinLetter(r) || (unicode.Is(unicode.Cyrillic, r) && unicode.IsLetter(r))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// AllowRune reports whether r may be typed into the given field.
// It only shapes input; Validate still decides admissibility.
func AllowRune(field Field, r rune) bool {
	switch field {
	case FieldName:
		return isNameLetter(r) || isDigit(r)
	case FieldLatitude, FieldLongitude:
		return isDigit(r) || r == '-' || r == '.'
	case FieldAmount:
		return isDigit(r)
	default:
		return false
	}
}

// MaxLength returns the longest text, in runes, the field can hold. Zero means no limit.
func MaxLength(field Field) int {
	switch field {
	case FieldName:
		return maxNameLength
	case FieldAmount:
		return 3
	default:
		return 0
	}
}

func parseName(text string) (string, error) {
	n := utf8.RuneCountInString(text)
	switch {
	case n == 0:
		return "", &SyntaxError{Field: FieldName, Input: text, Reason: "must not be empty"}
	case n > maxNameLength:
		return "", &SyntaxError{Field: FieldName, Input: text, Reason: "must be at most 12 characters"}
	}

	for i, r := range []rune(text) {
		if i == 0 {
			if !isNameLetter(r) {
				return "", &SyntaxError{Field: FieldName, Input: text, Reason: "must start with a letter"}
			}
			continue
		}
		if !isNameLetter(r) && !isDigit(r) {
			return "", &SyntaxError{Field: FieldName, Input: text, Reason: "may contain only letters and digits"}
		}
	}

	return text, nil
}

// parseDecimal accepts an optional minus sign, digits and an optional
// fractional part. Exponents, a leading plus and bare dots are rejected.
func parseDecimal(field Field, text string) (float64, error) {
	if !isDecimal(text) {
		return 0, &SyntaxError{Field: field, Input: text, Reason: "not a decimal number"}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &SyntaxError{Field: field, Input: text, Reason: err.Error()}
	}
	return v, nil
}

func isDecimal(text string) bool {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++
	}

	intDigits := 0
	for i < len(text) && isDigit(rune(text[i])) {
		i++
		intDigits++
	}
	if intDigits == 0 {
		return false
	}
	if i == len(text) {
		return true
	}

	if text[i] != '.' {
		return false
	}
	i++

	fracDigits := 0
	for i < len(text) && isDigit(rune(text[i])) {
		i++
		fracDigits++
	}
	return fracDigits > 0 && i == len(text)
}

func parseAmount(text string) (int, error) {
	if text == "" {
		return 0, &SyntaxError{Field: FieldAmount, Input: text, Reason: "must not be empty"}
	}
	for _, r := range text {
		if !isDigit(r) {
			return 0, &SyntaxError{Field: FieldAmount, Input: text, Reason: "not an integer"}
		}
	}
	if len(text) > 1 && text[0] == '0' {
		return 0, &SyntaxError{Field: FieldAmount, Input: text, Reason: "leading zeros are not allowed"}
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, &SyntaxError{Field: FieldAmount, Input: text, Reason: err.Error()}
	}
	return v, nil
}
