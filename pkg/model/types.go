package model

import (
	"fmt"
	"strings"
)

// FieldType is the simplified enum for dialog-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeList    FieldType = "list"
	FieldTypeText    FieldType = "text"
)

// ParseFieldType normalises a raw type tag into a FieldType, defaulting to
// string for empty input so loosely-typed descriptor sources stay usable.
func ParseFieldType(raw string) (FieldType, error) {
	switch FieldType(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FieldTypeString:
		return FieldTypeString, nil
	case FieldTypeNumber:
		return FieldTypeNumber, nil
	case FieldTypeBoolean:
		return FieldTypeBoolean, nil
	case FieldTypeList:
		return FieldTypeList, nil
	case FieldTypeText:
		return FieldTypeText, nil
	default:
		return "", fmt.Errorf("model: unknown field type %q", raw)
	}
}

// FieldDescriptor models one configurable input inside a settings dialog.
// Struct fields are annotated so renderers and loaders can serialise them
// directly.
type FieldDescriptor struct {
	Name        string    `json:"name" yaml:"name"`
	Type        FieldType `json:"type" yaml:"type"`
	Value       any       `json:"value,omitempty" yaml:"value,omitempty"`
	Secret      bool      `json:"secret,omitempty" yaml:"secret,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
}

// Label returns the display label for the field: the field name, suffixed
// with an asterisk when the field is required.
func (f FieldDescriptor) Label() string {
	if f.Required {
		return f.Name + " *"
	}
	return f.Name
}

// StringValue renders the current value as a string. Editing widgets and
// required checks both operate on this representation.
func (f FieldDescriptor) StringValue() string {
	if f.Value == nil {
		return ""
	}
	if s, ok := f.Value.(string); ok {
		return s
	}
	return fmt.Sprint(f.Value)
}

// Empty reports whether the stringified value is empty or whitespace-only.
func (f FieldDescriptor) Empty() bool {
	return strings.TrimSpace(f.StringValue()) == ""
}
