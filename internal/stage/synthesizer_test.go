package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staging-generator/internal/schema"
)

func transformed(t *testing.T, opts Options) (*schema.RecordSchema, *schema.StagingSchema) {
	t.Helper()

	src := accountSchema()

	staging, err := NewTransformer(parseErrorType()).Transform(src, opts)
	require.NoError(t, err)

	return src, staging
}

func TestSynthesizeBasic(t *testing.T) {
	src, staging := transformed(t, Options{})

	spec, err := Synthesize(src, staging)
	require.NoError(t, err)

	assert.Equal(t, "store.Account", spec.SourceType.String())
	assert.Equal(t, "AccountStaging", spec.StagingType)
	assert.Equal(t, "store.ParseError", spec.ErrorType.String())
	assert.False(t, spec.AdditionalErrors)

	require.Len(t, spec.FieldConversions, 2)
	assert.Equal(t, "ID", spec.FieldConversions[0].Name)
	assert.Equal(t, "Email", spec.FieldConversions[1].Name)
}

func TestSynthesizeCarriesAdditionalErrors(t *testing.T) {
	src, staging := transformed(t, Options{AdditionalErrors: true})

	spec, err := Synthesize(src, staging)
	require.NoError(t, err)

	assert.True(t, spec.AdditionalErrors)
}

func TestSynthesizeLengthMismatch(t *testing.T) {
	src, staging := transformed(t, Options{})
	staging.Fields = staging.Fields[:1]

	_, err := Synthesize(src, staging)
	require.ErrorIs(t, err, ErrFieldMismatch)
}

func TestSynthesizeNameMismatch(t *testing.T) {
	src, staging := transformed(t, Options{})
	staging.Fields[0].Name, staging.Fields[1].Name = staging.Fields[1].Name, staging.Fields[0].Name

	_, err := Synthesize(src, staging)
	require.ErrorIs(t, err, ErrFieldMismatch)
}
