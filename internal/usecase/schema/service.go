package schema

import domschema "github.com/kailas-cloud/dynoscan/internal/domain/schema"

// Service answers schema introspection from the immutable catalog.
type Service struct {
	catalog *domschema.Catalog
}

// New creates a schema service.
func New(catalog *domschema.Catalog) *Service {
	return &Service{catalog: catalog}
}

// Describe returns field name -> description. Each call returns a fresh map.
func (s *Service) Describe() map[string]string {
	return s.catalog.Columns()
}

// Fields returns the descriptors ordered by name.
func (s *Service) Fields() []domschema.Field {
	return s.catalog.Fields()
}
