// Package validator collects per-field rule failures and sanitizes user input.
package validator

import (
	"strings"
	"unicode/utf8"
)

// FieldError is a failed rule on a single form field
type FieldError struct {
	Field   string
	Message string
}

// Validator keeps failures in the order the rules were declared
type Validator struct {
	Errors []FieldError
}

func New() *Validator {
	return &Validator{}
}

// Valid returns true when no rule failed
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records a failure. Only the first failure of a field is kept.
func (v *Validator) AddError(field, message string) {
	for _, e := range v.Errors {
		if e.Field == field {
			return
		}
	}
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// Check records a failure when ok is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// NotBlank reports whether s has content once surrounding whitespace is removed
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLength reports whether s holds at least n characters
func MinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces markup characters with HTML entities
func Escape(s string) string {
	return escaper.Replace(s)
}
