package esrs

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Validation errors returned by ValidateValue
var (
	ErrEmptyValue   = errors.New("value must not be empty")
	ErrNotAnInteger = errors.New("value must be a whole number")
	ErrNotANumber   = errors.New("value must be a number")
	ErrOutOfRange   = errors.New("percentage must be between 0 and 100")
)

// ValueKind classifies a catalog data type description into the input
// constraint it implies.
type ValueKind int

const (
	KindText ValueKind = iota
	KindInteger
	KindPercent
	KindNumeric
)

// Catalog data type descriptions are free text in two languages, so
// classification goes by substring. Numeric keywords win when a
// descriptor mentions both families.
var (
	textKeywords = []string{
		"narrativ", "semi-narrativ", "testo", "text",
		"qualitativ", "description", "mdr",
	}
	numericKeywords = []string{
		"monetar", "monetary", "integer", "intero", "mass", "massa",
		"peso", "weight", "percent", "table", "numerical", "numeric",
		"numerico", "decimal", "float", "number", "cifr",
	}
)

var integerRe = regexp.MustCompile(`^-?\d+$`)

// ClassifyDataType maps a catalog data type description to the kind of
// value it accepts. A nil or unrecognized type means free text.
func ClassifyDataType(dataType *string) ValueKind {
	if dataType == nil {
		return KindText
	}
	dt := strings.ToLower(strings.TrimSpace(*dataType))
	if dt == "" {
		return KindText
	}

	for _, kw := range numericKeywords {
		if strings.Contains(dt, kw) {
			switch {
			case strings.Contains(dt, "integer") || strings.Contains(dt, "intero"):
				return KindInteger
			case strings.Contains(dt, "percent"):
				return KindPercent
			default:
				return KindNumeric
			}
		}
	}
	for _, kw := range textKeywords {
		if strings.Contains(dt, kw) {
			return KindText
		}
	}
	return KindText
}

// ValidateValue checks a submitted value against the catalog data type
// of its requirement. Empty values always fail. Numbers accept a comma
// as decimal separator; percentages may carry a trailing % sign.
func ValidateValue(raw string, dataType *string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyValue
	}

	switch ClassifyDataType(dataType) {
	case KindInteger:
		cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
		cleaned = removeWhitespace(cleaned)
		if !integerRe.MatchString(cleaned) {
			return ErrNotAnInteger
		}
	case KindPercent:
		cleaned := strings.TrimSuffix(strings.TrimSpace(raw), "%")
		cleaned = strings.ReplaceAll(strings.TrimSpace(cleaned), ",", ".")
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return ErrNotANumber
		}
		if n < 0 || n > 100 {
			return ErrOutOfRange
		}
	case KindNumeric:
		cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
		if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
			return ErrNotANumber
		}
	}
	return nil
}

func removeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
