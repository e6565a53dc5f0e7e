package stage

import (
	"errors"

	"staging-generator/internal/analyze"
	"staging-generator/internal/config"
	"staging-generator/internal/diagnostic"
	"staging-generator/internal/schema"
)

// Unit is the fully staged generation unit handed to code generation.
type Unit struct {
	// PackageName of the rendered output.
	PackageName string
	// ErrorType shared by every staged field in the unit.
	ErrorType schema.TypeRef
	// FinalErrorType optionally names the aggregate error type, for
	// the generated doc comment only.
	FinalErrorType string
	// Records that staged cleanly, in config order.
	Records []RecordArtifacts
	// Diagnostics from the whole run.
	Diagnostics diagnostic.Diagnostics
}

// RecordArtifacts bundles one record's staged outputs.
type RecordArtifacts struct {
	Source     *schema.RecordSchema
	Staging    *schema.StagingSchema
	Conversion *schema.ConversionSpec
}

// BuildUnit runs the transformer and synthesizer over every record the
// config names. A failing record is dropped whole (nothing partial is
// staged for it) and reported through diagnostics; other records still
// proceed.
func BuildUnit(set *analyze.SchemaSet, errorType schema.TypeRef, uf *config.UnitFile) *Unit {
	unit := &Unit{
		PackageName:    uf.Output.Package,
		ErrorType:      errorType,
		FinalErrorType: uf.FinalErrorType,
	}

	tr := NewTransformer(errorType)

	for _, rc := range uf.Records {
		src, ok := set.Get(rc.Source)
		if !ok {
			unit.Diagnostics.AddError(diagnostic.CodeUnknownRecord,
				"record not found in analyzed packages", rc.Source, "")

			continue
		}

		staging, err := tr.Transform(src, Options{
			Name:             rc.Name,
			AdditionalErrors: rc.AdditionalErrors,
		})
		if err != nil {
			unit.Diagnostics.AddError(transformCode(err), err.Error(), rc.Source, "")

			continue
		}

		conv, err := Synthesize(src, staging)
		if err != nil {
			unit.Diagnostics.AddError(diagnostic.CodeFieldMismatch, err.Error(), rc.Source, "")

			continue
		}

		unit.Records = append(unit.Records, RecordArtifacts{
			Source:     src,
			Staging:    staging,
			Conversion: conv,
		})
	}

	return unit
}

func transformCode(err error) string {
	switch {
	case errors.Is(err, ErrEmptyRecord):
		return diagnostic.CodeEmptyRecord
	case errors.Is(err, ErrNameCollision):
		return diagnostic.CodeNameCollision
	default:
		return diagnostic.CodeBadConfig
	}
}
