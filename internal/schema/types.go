package schema

import "path"

// TypeRef is a resolvable reference to a Go type as seen from a
// generated package. Display carries the qualified rendering (e.g.
// "store.Email", "*time.Time", "[]int64"); Imports lists the package
// paths that rendering depends on.
type TypeRef struct {
	// PkgPath is the defining package for named types, empty for
	// builtins and composite types.
	PkgPath string
	// Display is the type expression with package qualifiers.
	Display string
	// Imports are the package paths referenced by Display.
	Imports []string
}

// String returns the qualified type expression.
func (t TypeRef) String() string {
	return t.Display
}

// Named builds a TypeRef for a named type in the given package.
// An empty pkgPath yields an unqualified (builtin) reference.
func Named(pkgPath, name string) TypeRef {
	if pkgPath == "" {
		return TypeRef{Display: name}
	}

	return TypeRef{
		PkgPath: pkgPath,
		Display: path.Base(pkgPath) + "." + name,
		Imports: []string{pkgPath},
	}
}

// FieldDescriptor describes one field of a source record. Identity is
// the name; names are unique within a record (guaranteed by the front
// end, not re-validated here). Immutable once constructed.
type FieldDescriptor struct {
	Name         string
	DeclaredType TypeRef
}

// RecordSchema is the ordered field list of a source record type.
// Field order is significant and preserved end-to-end: it determines
// both generated field order and error-reporting order.
type RecordSchema struct {
	// TypeName is the source type's name, e.g. "Account".
	TypeName string
	// PkgPath is the package defining the source type.
	PkgPath string
	// Fields in declaration order.
	Fields []FieldDescriptor
}

// Ref returns a TypeRef to the source record type itself.
func (s *RecordSchema) Ref() TypeRef {
	return Named(s.PkgPath, s.TypeName)
}

// FieldNames returns the field names in declaration order.
func (s *RecordSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// StagingFieldDescriptor is derived 1:1 from a FieldDescriptor. The
// staged type wraps the declared type in the outcome container.
type StagingFieldDescriptor struct {
	// Name matches the source field name.
	Name string
	// StagedType is outcome.Result[declared, error type].
	StagedType TypeRef
}

// StagingSchema is the generated companion type definition: same field
// names and order as the source record, with every field staged.
type StagingSchema struct {
	// TypeName is the derived staging type name.
	TypeName string
	// Source references the record type this staging type feeds.
	Source TypeRef
	// ErrorType parameterizes every staged field's outcome container.
	ErrorType TypeRef
	// Fields in source declaration order.
	Fields []StagingFieldDescriptor
	// AdditionalErrors adds an extra slot for errors that are not
	// associated with a specific field.
	AdditionalErrors bool
}

// FieldConversion names one field the conversion drains. Behavior is
// uniform per field: unwrap the value or collect the error.
type FieldConversion struct {
	Name string
}

// ConversionSpec is the blueprint of the staging-to-source conversion.
// It is consumed by a renderer (or compiled into a closure); the core
// never renders text itself.
type ConversionSpec struct {
	// SourceType references the reconstructed record type.
	SourceType TypeRef
	// StagingType is the staging type's name.
	StagingType string
	// ErrorType is the per-unit error type of the staged fields.
	ErrorType TypeRef
	// FieldConversions in source declaration order.
	FieldConversions []FieldConversion
	// AdditionalErrors mirrors the staging schema's extra error slot.
	AdditionalErrors bool
}
