package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLower      = regexp.MustCompile(`[a-z]`)
	hasUpper      = regexp.MustCompile(`[A-Z]`)
	hasNumber     = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername checks username format
func ValidateUsername(username string) *FieldValidationError {
	if !usernameRegex.MatchString(username) {
		return &FieldValidationError{Field: "username", Message: "must be 3-20 characters of letters, numbers or underscore"}
	}
	return nil
}

// ValidateEmail checks email format
func ValidateEmail(email string) *FieldValidationError {
	if !emailRegex.MatchString(email) {
		return &FieldValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

// ValidatePassword enforces a minimal password policy
func ValidatePassword(password string) *FieldValidationError {
	if len(password) < 8 {
		return &FieldValidationError{Field: "password", Message: "must be at least 8 characters"}
	}
	if !hasLower.MatchString(password) || !hasUpper.MatchString(password) || !hasNumber.MatchString(password) {
		return &FieldValidationError{Field: "password", Message: "must contain upper, lower and numeric characters"}
	}
	return nil
}
