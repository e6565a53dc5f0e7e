package gen

import (
	"go/format"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staging-generator/internal/schema"
	"staging-generator/internal/stage"
)

func demoUnit(t *testing.T, opts stage.Options) *stage.Unit {
	t.Helper()

	src := &schema.RecordSchema{
		TypeName: "Account",
		PkgPath:  "staging-generator/store",
		Fields: []schema.FieldDescriptor{
			{Name: "ID", DeclaredType: schema.TypeRef{Display: "int64"}},
			{Name: "Email", DeclaredType: schema.Named("staging-generator/store", "Email")},
		},
	}

	tr := stage.NewTransformer(schema.Named("staging-generator/store", "ParseError"))

	staging, err := tr.Transform(src, opts)
	require.NoError(t, err)

	conv, err := stage.Synthesize(src, staging)
	require.NoError(t, err)

	return &stage.Unit{
		PackageName: "basic",
		ErrorType:   tr.ErrorType(),
		Records: []stage.RecordArtifacts{
			{Source: src, Staging: staging, Conversion: conv},
		},
	}
}

func generateOne(t *testing.T, unit *stage.Unit) GeneratedFile {
	t.Helper()

	g := NewGenerator(GeneratorConfig{GenerateComments: true})

	files, err := g.Generate(unit)
	require.NoError(t, err)
	require.Len(t, files, 1)

	return files[0]
}

func TestGenerateAccount(t *testing.T) {
	file := generateOne(t, demoUnit(t, stage.Options{}))

	assert.Equal(t, "account_staging.go", file.Filename)

	code := string(file.Content)
	spew.Dump(file.Filename)

	assert.Contains(t, code, "// Code generated by staging-generator. DO NOT EDIT.")
	assert.Contains(t, code, "package basic")
	assert.Contains(t, code, `"staging-generator/outcome"`)
	assert.Contains(t, code, `"staging-generator/store"`)
	assert.Contains(t, code, "type AccountStaging struct")
	assert.Contains(t, code, "outcome.Result[int64, store.ParseError]")
	assert.Contains(t, code, "outcome.Result[store.Email, store.ParseError]")
	assert.Contains(t, code, "func AccountStagingToAccount(staged AccountStaging) (store.Account, outcome.ErrorList[store.ParseError])")
	assert.Contains(t, code, `errs.Add("ID", staged.ID.UnwrapErr())`)
	assert.Contains(t, code, `errs.Add("Email", staged.Email.UnwrapErr())`)
	assert.NotContains(t, code, "AdditionalErrors")
}

func TestGenerateFieldOrderPreserved(t *testing.T) {
	code := string(generateOne(t, demoUnit(t, stage.Options{})).Content)

	idIdx := strings.Index(code, `errs.Add("ID"`)
	emailIdx := strings.Index(code, `errs.Add("Email"`)
	require.Positive(t, idIdx)
	require.Positive(t, emailIdx)
	assert.Less(t, idIdx, emailIdx, "conversion steps must follow declaration order")
}

func TestGenerateAdditionalErrors(t *testing.T) {
	code := string(generateOne(t, demoUnit(t, stage.Options{AdditionalErrors: true})).Content)

	assert.Contains(t, code, "AdditionalErrors []store.ParseError")
	assert.Contains(t, code, "for _, err := range staged.AdditionalErrors")
	assert.Contains(t, code, `errs.Add("", err)`)
}

func TestGenerateNameOverride(t *testing.T) {
	file := generateOne(t, demoUnit(t, stage.Options{Name: "AccountDraft"}))

	assert.Equal(t, "account_draft.go", file.Filename)
	assert.Contains(t, string(file.Content), "func AccountDraftToAccount(staged AccountDraft)")
}

func TestGenerateFinalErrorNote(t *testing.T) {
	unit := demoUnit(t, stage.Options{})
	unit.FinalErrorType = "store.SignupError"

	code := string(generateOne(t, unit).Content)
	assert.Contains(t, code, "fold the returned errors into store.SignupError")
}

func TestGenerateOutputIsFormatted(t *testing.T) {
	file := generateOne(t, demoUnit(t, stage.Options{}))

	formatted, err := format.Source(file.Content)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), string(file.Content))
}

func TestGenerateImportsDeduped(t *testing.T) {
	code := string(generateOne(t, demoUnit(t, stage.Options{})).Content)

	assert.Equal(t, 1, strings.Count(code, `"staging-generator/store"`))
	assert.Equal(t, 1, strings.Count(code, `"staging-generator/outcome"`))
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "account_staging", toSnake("AccountStaging"))
	assert.Equal(t, "signup_draft", toSnake("SignupDraft"))
	assert.Equal(t, "a", toSnake("A"))
	assert.Equal(t, "", toSnake(""))
}
