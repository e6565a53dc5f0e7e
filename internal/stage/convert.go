package stage

import (
	"staging-generator/internal/schema"
	"staging-generator/outcome"
)

// StagedRecord is the in-memory view of a staging value consumed by a
// compiled converter: one outcome per field, plus the optional
// field-less extras. A field absent from Outcomes reads as the zero
// Result, i.e. as failed.
type StagedRecord struct {
	Outcomes map[string]outcome.Result[any, any]
	// AdditionalErrors holds errors not tied to a single field. Only
	// consulted when the blueprint was synthesized with the extra
	// error slot.
	AdditionalErrors []any
}

// Converter is a compiled conversion: it yields either the
// reconstructed field values (keyed by field name) or a non-empty
// error list, never both and never a partial mix.
type Converter func(staged StagedRecord) (map[string]any, outcome.ErrorList[any])

// Compile turns a conversion blueprint into an executable closure.
// This is the reference rendering of the blueprint's semantics: every
// field's outcome is inspected exactly once, in declaration order,
// with no early return on the first failure. Total work is O(field
// count) regardless of the failure pattern, and the reported errors
// are exactly the failed fields, in declaration order. The closure
// never mutates its input.
func Compile(spec *schema.ConversionSpec) Converter {
	// Copied so later mutation of the spec cannot skew the closure.
	fields := make([]string, len(spec.FieldConversions))
	for i, fc := range spec.FieldConversions {
		fields[i] = fc.Name
	}

	extras := spec.AdditionalErrors

	return func(staged StagedRecord) (map[string]any, outcome.ErrorList[any]) {
		values := make(map[string]any, len(fields))

		var errs outcome.ErrorList[any]

		for _, name := range fields {
			res := staged.Outcomes[name]
			if v, ok := res.Get(); ok {
				values[name] = v
			} else {
				errs = errs.Add(name, res.UnwrapErr())
			}
		}

		if extras {
			for _, e := range staged.AdditionalErrors {
				errs = errs.Add("", e)
			}
		}

		if len(errs) > 0 {
			return nil, errs
		}

		return values, nil
	}
}
