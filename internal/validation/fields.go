package validation

import (
	"errors"
	"fmt"
)

// FieldID names one signup form field.
type FieldID string

const (
	FieldName     FieldID = "name"
	FieldEmail    FieldID = "email"
	FieldPassword FieldID = "password"
	FieldConfirm  FieldID = "confirm"
	FieldTerms    FieldID = "terms"
)

// Precedence is the order in which field messages are considered when a
// submission picks its single status message.
var Precedence = []FieldID{FieldName, FieldEmail, FieldPassword, FieldConfirm, FieldTerms}

// ErrUnknownField is returned when a field id is not one of the signup fields.
var ErrUnknownField = errors.New("unknown form field")

// ParseFieldID converts a raw identifier into a FieldID.
func ParseFieldID(raw string) (FieldID, error) {
	id := FieldID(raw)
	for _, known := range Precedence {
		if id == known {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// Snapshot is the set of field values at the moment a validation runs.
type Snapshot struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"-"`
	Confirm       string `json:"-"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// Text coerces an arbitrary input value to the string a validator sees.
func Text(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
