package submit

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-botsettings/pkg/model"
)

// ValidationError carries per-field messages so callers can surface inline
// errors instead of a single blocking alert. Field order follows the field
// set's render order.
type ValidationError struct {
	Fields map[string][]string
	order  []string
}

// Error joins the field messages in order.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "submit: validation failed"
	}
	var parts []string
	for _, name := range e.order {
		parts = append(parts, e.Fields[name]...)
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) add(name, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	if _, seen := e.Fields[name]; !seen {
		e.order = append(e.order, name)
	}
	e.Fields[name] = append(e.Fields[name], message)
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ValidateSchema checks that the mode's well-known keys exist in the field
// set, failing fast before any value validation or rendering.
func ValidateSchema(mode Mode, fields *model.FieldSet) error {
	if fields == nil {
		return fmt.Errorf("submit: field set is required")
	}
	verr := &ValidationError{}
	for _, key := range mode.RequiredKeys() {
		if !fields.Has(key) {
			verr.add(key, fmt.Sprintf("%s is missing from the field set", key))
		}
	}
	return verr.orNil()
}

// ValidateRequired checks every required field for a non-empty value,
// collecting one "<key> is required" message per violation.
func ValidateRequired(fields *model.FieldSet) error {
	verr := &ValidationError{}
	for _, field := range fields.Fields() {
		if field.Required && field.Empty() {
			verr.add(field.Name, fmt.Sprintf("%s is required", field.Name))
		}
	}
	return verr.orNil()
}
