package analyze

import (
	"sort"

	"staging-generator/internal/schema"
)

// SchemaSet holds the record schemas extracted from loaded packages,
// keyed by their qualified name ("store.Account").
type SchemaSet struct {
	records map[string]*schema.RecordSchema
}

// NewSchemaSet creates an empty SchemaSet.
func NewSchemaSet() *SchemaSet {
	return &SchemaSet{records: make(map[string]*schema.RecordSchema)}
}

// Add registers a schema under pkgName's qualified namespace.
func (s *SchemaSet) Add(pkgName string, rec *schema.RecordSchema) {
	s.records[pkgName+"."+rec.TypeName] = rec
}

// Get returns the schema for a qualified name, or false if absent.
func (s *SchemaSet) Get(qualified string) (*schema.RecordSchema, bool) {
	rec, ok := s.records[qualified]
	return rec, ok
}

// Names returns all qualified record names, sorted.
func (s *SchemaSet) Names() []string {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of extracted schemas.
func (s *SchemaSet) Len() int {
	return len(s.records)
}
