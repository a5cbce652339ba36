package schema

import "fmt"

// Field is an immutable descriptor of one table attribute.
type Field struct {
	name        string
	description string
}

// NewField validates and creates a Field.
func NewField(name, description string) (Field, error) {
	if name == "" {
		return Field{}, fmt.Errorf("field name is required")
	}
	if description == "" {
		return Field{}, fmt.Errorf("description is required for field %q", name)
	}
	return Field{name: name, description: description}, nil
}

// Name returns the attribute name.
func (f Field) Name() string { return f.name }

// Description returns the human-readable meaning of the attribute.
func (f Field) Description() string { return f.description }
