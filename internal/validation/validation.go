// Package validation holds the pure predicates shared by all entity packages:
// store identifiers, calendar dates and the common string field rules.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidField      = errors.New("invalid field")
)

// FieldError names the offending field. It matches ErrInvalidField with errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// accepted date layouts, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

var validate = validator.New()

// IsValidID returns the trimmed id if it is a 24 hex character store id.
func IsValidID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: must provide a non-empty id", ErrInvalidIdentifier)
	}
	// the mongodb rule only accepts lower case hex
	if err := validate.Var(strings.ToLower(id), "mongodb"); err != nil {
		return "", fmt.Errorf("%w: [%s] is not a valid id", ErrInvalidIdentifier, id)
	}
	return id, nil
}

// ParseID is IsValidID followed by the conversion to the store's id type.
func ParseID(id string) (bson.ObjectID, error) {
	id, err := IsValidID(id)
	if err != nil {
		return bson.NilObjectID, err
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidIdentifier, err)
	}
	return oid, nil
}

// IsValidDate checks that date is a real calendar date and returns it unchanged.
func IsValidDate(date string) (string, error) {
	if _, err := parseDate(date); err != nil {
		return "", err
	}
	return date, nil
}

// NormalizeDate returns the calendar day of date as YYYY-MM-DD.
func NormalizeDate(date string) (string, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format(time.DateOnly), nil
}

func parseDate(date string) (time.Time, error) {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: must provide a date", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: [%s] is not a valid date", ErrInvalidDate, date)
}

func NonEmptyString(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewFieldError(field, "must not be empty")
	}
	return trimmed, nil
}

func NonEmptyAlphanumeric(field, value string) (string, error) {
	if value == "" {
		return "", NewFieldError(field, "must not be empty")
	}
	if err := validate.Var(value, "alphanum"); err != nil {
		return "", NewFieldError(field, "must contain only letters and digits")
	}
	return value, nil
}

func ValidEmail(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if err := validate.Var(value, "required,email"); err != nil {
		return "", NewFieldError(field, "must be a valid email address")
	}
	return value, nil
}

func ValidURL(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if err := validate.Var(value, "required,url"); err != nil {
		return "", NewFieldError(field, "must be a well-formed URL")
	}
	return value, nil
}

// PositiveInt accepts a decoded JSON number (float64 or json.Number) or a Go integer
// and returns it as int when it is a whole number >= 1.
func PositiveInt(field string, value any) (int, error) {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0, NewFieldError(field, "is required")
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, NewFieldError(field, "must be a number")
		}
		f = parsed
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return 0, NewFieldError(field, "must be a number")
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, NewFieldError(field, "must be an integer")
	}
	if f < 1 {
		return 0, NewFieldError(field, "must be at least 1")
	}
	if f > math.MaxInt32 {
		return 0, NewFieldError(field, "is too large")
	}
	return int(f), nil
}

// StringValue accepts only string typed values; the empty string is allowed.
func StringValue(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", NewFieldError(field, "must be a string")
	}
	return s, nil
}
