// Package validation provides request validation helpers used at the
// handler boundary. Workflow-level rules (amount floors, required purchase
// fields) live with the services that enforce them.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^(070|080|081|090|091)\d{8}$`)
)

// Validator collects field errors for a request.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// First returns one error message, for APIs that report a single failure.
func (v *Validator) First() string {
	for _, msg := range v.Errors {
		return msg
	}
	return ""
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, fmt.Sprintf("please provide %s", field))
}

// Email validates email format
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "please provide a valid email")
}

// Phone validates Nigerian phone number format
func (v *Validator) Phone(field, phone string) {
	v.Check(phoneRegex.MatchString(phone), field, "please provide a valid Nigerian phone number")
}

// MinLength checks if a string has at least n characters
func (v *Validator) MinLength(field, value string, n int) {
	v.Check(len(value) >= n, field, fmt.Sprintf("%s must be at least %d characters", field, n))
}

// Positive checks that an amount is greater than zero.
func (v *Validator) Positive(field string, amount float64) {
	v.Check(amount > 0, field, "please provide a valid amount")
}
