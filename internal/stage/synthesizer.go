package stage

import (
	"fmt"

	"staging-generator/internal/schema"
)

// Synthesize builds the conversion blueprint for a transformed record.
// The source and staging schemas must carry the same field name
// sequence; anything else means the two stages were fed inconsistent
// inputs and fails with ErrFieldMismatch.
func Synthesize(src *schema.RecordSchema, staging *schema.StagingSchema) (*schema.ConversionSpec, error) {
	if len(src.Fields) != len(staging.Fields) {
		return nil, fmt.Errorf("%w: %s has %d fields, %s has %d",
			ErrFieldMismatch, src.TypeName, len(src.Fields),
			staging.TypeName, len(staging.Fields))
	}

	spec := &schema.ConversionSpec{
		SourceType:       src.Ref(),
		StagingType:      staging.TypeName,
		ErrorType:        staging.ErrorType,
		FieldConversions: make([]schema.FieldConversion, 0, len(src.Fields)),
		AdditionalErrors: staging.AdditionalErrors,
	}

	for i, f := range src.Fields {
		if staging.Fields[i].Name != f.Name {
			return nil, fmt.Errorf("%w: field %d is %q in %s but %q in %s",
				ErrFieldMismatch, i, f.Name, src.TypeName,
				staging.Fields[i].Name, staging.TypeName)
		}

		spec.FieldConversions = append(spec.FieldConversions, schema.FieldConversion{
			Name: f.Name,
		})
	}

	return spec, nil
}
