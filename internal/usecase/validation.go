package usecase

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	return errors
}

func ValidateStageLabel(label string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(label) == "" {
		errors = append(errors, ValidationError{"label", "is required"})
	} else if len(label) > 100 {
		errors = append(errors, ValidationError{"label", "must not exceed 100 characters"})
	}

	return errors
}

func validationFailed(errors []ValidationError) *DomainError {
	msg := "validation failed: "
	for i, e := range errors {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return &DomainError{Code: CodeValidation, Message: msg}
}

// parseValue converts the free-form monetary input to a float. Absent or
// unparseable values fall back to 0 rather than failing the write.
func parseValue(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
