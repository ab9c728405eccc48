package model

import (
	"fmt"
)

// FieldSet is an ordered mapping from field name to descriptor. Insertion
// order defines render order. The zero value is usable.
type FieldSet struct {
	order  []string
	fields map[string]FieldDescriptor
}

// NewFieldSet seeds a set with the given descriptors in order. Duplicate
// names keep their original position; later descriptors overwrite earlier
// metadata and value.
func NewFieldSet(fields ...FieldDescriptor) *FieldSet {
	fs := &FieldSet{}
	fs.Replace(fields...)
	return fs
}

// Replace discards the current contents and re-seeds the set wholesale. No
// diffing is attempted; callers supply the full descriptor slice each time.
func (fs *FieldSet) Replace(fields ...FieldDescriptor) {
	fs.order = fs.order[:0]
	fs.fields = make(map[string]FieldDescriptor, len(fields))
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		if _, exists := fs.fields[field.Name]; !exists {
			fs.order = append(fs.order, field.Name)
		}
		fs.fields[field.Name] = field
	}
}

// UpdateValue replaces the named field's value, preserving every other field
// and all metadata. Unknown names are an error rather than creating an entry
// of arbitrary shape.
func (fs *FieldSet) UpdateValue(name string, value any) error {
	field, ok := fs.fields[name]
	if !ok {
		return fmt.Errorf("model: unknown field %q", name)
	}
	field.Value = value
	fs.fields[name] = field
	return nil
}

// Get returns the descriptor for the named field.
func (fs *FieldSet) Get(name string) (FieldDescriptor, bool) {
	field, ok := fs.fields[name]
	return field, ok
}

// Has reports whether the named field exists.
func (fs *FieldSet) Has(name string) bool {
	_, ok := fs.fields[name]
	return ok
}

// Fields returns the descriptors in insertion order. The slice is a snapshot;
// mutating it does not affect the set.
func (fs *FieldSet) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, 0, len(fs.order))
	for _, name := range fs.order {
		out = append(out, fs.fields[name])
	}
	return out
}

// Names returns the field names in insertion order.
func (fs *FieldSet) Names() []string {
	out := make([]string, len(fs.order))
	copy(out, fs.order)
	return out
}

// Len reports the number of fields in the set.
func (fs *FieldSet) Len() int {
	return len(fs.order)
}

// Clone returns an independent copy of the set.
func (fs *FieldSet) Clone() *FieldSet {
	return NewFieldSet(fs.Fields()...)
}
