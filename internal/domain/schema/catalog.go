package schema

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog is the static set of field descriptors for the table.
// It is built once at startup and never mutated.
type Catalog struct {
	fields []Field
	byName map[string]int
}

// NewCatalog creates a Catalog ordered by field name. Duplicate names are rejected.
func NewCatalog(fields []Field) (*Catalog, error) {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	byName := make(map[string]int, len(sorted))
	for i, f := range sorted {
		if _, dup := byName[f.name]; dup {
			return nil, fmt.Errorf("duplicate field %q", f.name)
		}
		byName[f.name] = i
	}
	return &Catalog{fields: sorted, byName: byName}, nil
}

// Fields returns a copy of the descriptors ordered by name.
func (c *Catalog) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Lookup returns the descriptor for name.
func (c *Catalog) Lookup(name string) (Field, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

// Len returns the number of fields.
func (c *Catalog) Len() int { return len(c.fields) }

// Columns returns a fresh name -> description mapping.
func (c *Catalog) Columns() map[string]string {
	out := make(map[string]string, len(c.fields))
	for _, f := range c.fields {
		out[f.name] = f.description
	}
	return out
}

// catalogFile is the on-disk layout of a schema file.
type catalogFile struct {
	Columns map[string]string `yaml:"columns"`
}

// ParseYAML builds a Catalog from a YAML document of the form:
//
//	columns:
//	  PK: Primary partition key
//	  status: Account status
func ParseYAML(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("schema has no columns")
	}

	fields := make([]Field, 0, len(f.Columns))
	for name, desc := range f.Columns {
		fd, err := NewField(name, desc)
		if err != nil {
			return nil, err
		}
		fields = append(fields, fd)
	}
	return NewCatalog(fields)
}
