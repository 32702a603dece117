package common

import (
	"sort"
	"strings"
)

// Validator accumulates per-field failures for a request body, so a caller can
// run every check before deciding the input is unusable.
type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// BadRequestError folds the accumulated failures into a single 400
// DomainError. The error contract is a flat {msg} string, so the fields are
// joined in a stable order rather than returned as a map.
func (v *Validator) BadRequestError() error {
	fields := make([]string, 0, len(v.Errors))
	for field := range v.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + " " + v.Errors[field]
	}

	return BadRequest("Bad request - " + strings.Join(parts, "; "))
}
