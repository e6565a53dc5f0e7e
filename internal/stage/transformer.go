package stage

import (
	"fmt"

	"staging-generator/internal/schema"
)

// OutcomePkgPath is the import path of the runtime package generated
// staged fields depend on.
const OutcomePkgPath = "staging-generator/outcome"

// NameSuffix is the default suffix appended to a source type name to
// derive its staging type name.
const NameSuffix = "Staging"

// Options tune how one record is transformed.
type Options struct {
	// Name overrides the derived staging type name. Empty means
	// source name + NameSuffix.
	Name string
	// AdditionalErrors adds a slot for errors that cannot be
	// associated with a specific field.
	AdditionalErrors bool
}

// Transformer derives staging schemas for one generation unit. It owns
// the unit's name registry, so staging type names stay unique across
// all records transformed through the same instance.
//
// Not safe for concurrent use; the host pipeline serializes generation
// units.
type Transformer struct {
	errorType schema.TypeRef
	// names maps an emitted staging type name to the source type that
	// claimed it.
	names map[string]string
}

// NewTransformer creates a Transformer for a generation unit whose
// staged fields all use the given error type.
func NewTransformer(errorType schema.TypeRef) *Transformer {
	return &Transformer{
		errorType: errorType,
		names:     make(map[string]string),
	}
}

// ErrorType returns the unit's configured error type.
func (t *Transformer) ErrorType() schema.TypeRef {
	return t.errorType
}

// Transform derives the staging schema for src: same field names, same
// order, every declared type wrapped in the outcome container. The
// input schema is never mutated.
func (t *Transformer) Transform(src *schema.RecordSchema, opts Options) (*schema.StagingSchema, error) {
	if len(src.Fields) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRecord, src.TypeName)
	}

	name := opts.Name
	if name == "" {
		name = src.TypeName + NameSuffix
	}

	sourceID := src.Ref().String()
	if prev, taken := t.names[name]; taken {
		return nil, fmt.Errorf("%w: %q derived for both %s and %s",
			ErrNameCollision, name, prev, sourceID)
	}

	t.names[name] = sourceID

	staging := &schema.StagingSchema{
		TypeName:         name,
		Source:           src.Ref(),
		ErrorType:        t.errorType,
		Fields:           make([]schema.StagingFieldDescriptor, 0, len(src.Fields)),
		AdditionalErrors: opts.AdditionalErrors,
	}

	for _, f := range src.Fields {
		staging.Fields = append(staging.Fields, schema.StagingFieldDescriptor{
			Name:       f.Name,
			StagedType: t.stagedType(f.DeclaredType),
		})
	}

	return staging, nil
}

// stagedType wraps a declared type in outcome.Result parameterized by
// the unit's error type. Wrapping is unconditional: no attempt is made
// to detect fields that "look fallible already", so the conversion's
// unwrap-or-collect step stays identical for every field.
func (t *Transformer) stagedType(declared schema.TypeRef) schema.TypeRef {
	imports := []string{OutcomePkgPath}
	imports = append(imports, declared.Imports...)
	imports = append(imports, t.errorType.Imports...)

	return schema.TypeRef{
		Display: fmt.Sprintf("outcome.Result[%s, %s]", declared, t.errorType),
		Imports: imports,
	}
}
