package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidation marks malformed or missing input; handlers answer it with 400.
var ErrValidation = errors.New("validation")

// MealInput is the raw JSON body of meal create/update requests. Pointer and
// any-typed fields keep "absent" distinguishable from zero values.
type MealInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsOnDiet    *bool   `json:"isOnDiet"`
	Date        any     `json:"date"`
}

// MealFields is a validated meal payload.
type MealFields struct {
	Name        string
	Description string
	IsOnDiet    bool
	Date        time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Validate checks presence and shape of every field and coerces the date.
func (in MealInput) Validate() (MealFields, error) {
	var out MealFields
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return out, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Description == nil {
		return out, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if in.IsOnDiet == nil {
		return out, fmt.Errorf("%w: isOnDiet is required", ErrValidation)
	}
	date, err := coerceDate(in.Date)
	if err != nil {
		return out, err
	}

	out.Name = *in.Name
	out.Description = *in.Description
	out.IsOnDiet = *in.IsOnDiet
	out.Date = date
	return out, nil
}

// coerceDate accepts timestamp strings in the common layouts and JSON
// numbers as Unix epoch milliseconds.
func coerceDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: unparseable date %q", ErrValidation, d)
	case float64:
		return time.UnixMilli(int64(d)).UTC(), nil
	case nil:
		return time.Time{}, fmt.Errorf("%w: date is required", ErrValidation)
	default:
		return time.Time{}, fmt.Errorf("%w: date must be a string or number", ErrValidation)
	}
}
