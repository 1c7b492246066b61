package util

import "strings"

// FormChecker collects per-field validation messages.
type FormChecker struct {
	errors map[string]string
}

func NewFormChecker() *FormChecker {
	return &FormChecker{errors: make(map[string]string)}
}

// Required records field as missing when value is blank.
func (f *FormChecker) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.Fail(field, field+" is required")
	}
}

// Check records message for field unless ok. The first message per field wins.
func (f *FormChecker) Check(ok bool, field, message string) {
	if !ok {
		f.Fail(field, message)
	}
}

func (f *FormChecker) Fail(field, message string) {
	if _, exists := f.errors[field]; !exists {
		f.errors[field] = message
	}
}

// Err returns a *FormError when any check failed, nil otherwise.
func (f *FormChecker) Err(message string) error {
	if len(f.errors) == 0 {
		return nil
	}
	return NewFormError(message, f.errors)
}
