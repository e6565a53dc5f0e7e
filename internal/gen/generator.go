package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"staging-generator/internal/common"
	"staging-generator/internal/stage"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables explanatory comments beyond the plain
	// doc comments.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator renders staged units into Go source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g. "account_staging.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per staged record.
func (g *Generator) Generate(unit *stage.Unit) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range unit.Records {
		file, err := g.generateRecord(unit, &unit.Records[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", unit.Records[i].Staging.TypeName, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateRecord renders the staging struct and conversion function of
// a single record.
func (g *Generator) generateRecord(unit *stage.Unit, rec *stage.RecordArtifacts) (*GeneratedFile, error) {
	data := g.buildTemplateData(unit, rec)

	var buf bytes.Buffer
	if err := stagingTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the staging template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	TypeName         string
	SourceType       string
	ErrorType        string
	FunctionName     string
	Fields           []fieldData
	AdditionalErrors bool
	FinalErrorNote   string
}

// importSpec is a single import line.
type importSpec struct {
	Alias string
	Path  string
}

// fieldData is one staged field line plus its conversion step.
type fieldData struct {
	Name       string
	StagedType string
}

// buildTemplateData constructs the template data for one record.
func (g *Generator) buildTemplateData(unit *stage.Unit, rec *stage.RecordArtifacts) *templateData {
	staging := rec.Staging

	data := &templateData{
		PackageName:      unit.PackageName,
		Filename:         toSnake(staging.TypeName) + ".go",
		TypeName:         staging.TypeName,
		SourceType:       staging.Source.String(),
		ErrorType:        staging.ErrorType.String(),
		FunctionName:     staging.TypeName + "To" + rec.Source.TypeName,
		AdditionalErrors: staging.AdditionalErrors,
	}

	if g.config.GenerateComments && unit.FinalErrorType != "" {
		data.FinalErrorNote = "Callers typically fold the returned errors into " + unit.FinalErrorType + "."
	}

	var imports []string
	imports = append(imports, staging.Source.Imports...)
	imports = append(imports, staging.ErrorType.Imports...)

	for _, f := range staging.Fields {
		data.Fields = append(data.Fields, fieldData{
			Name:       f.Name,
			StagedType: f.StagedType.String(),
		})
		imports = append(imports, f.StagedType.Imports...)
	}

	// The conversion return type references the outcome package even
	// when no field import carried it.
	imports = append(imports, stage.OutcomePkgPath)

	sort.Strings(imports)

	for _, p := range common.Dedup(imports) {
		data.Imports = append(data.Imports, importSpec{Path: p})
	}

	return data
}

// toSnake converts "AccountStaging" to "account_staging".
func toSnake(name string) string {
	var sb strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

var stagingTemplate = template.Must(template.New("staging").Parse(`// Code generated by staging-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.TypeName}} stages {{.SourceType}}: every field holds its own
// parse outcome instead of a validated value.
type {{.TypeName}} struct {
{{range .Fields}}	{{.Name}} {{.StagedType}}
{{end}}{{if .AdditionalErrors}}
	// AdditionalErrors holds errors not tied to a single field.
	AdditionalErrors []{{.ErrorType}}
{{end}}}

// {{.FunctionName}} rebuilds {{.SourceType}} from staged. It inspects
// every field exactly once and reports all failures together, in field
// declaration order; it never stops at the first error.{{if .FinalErrorNote}}
// {{.FinalErrorNote}}{{end}}
func {{.FunctionName}}(staged {{.TypeName}}) ({{.SourceType}}, outcome.ErrorList[{{.ErrorType}}]) {
	var errs outcome.ErrorList[{{.ErrorType}}]

	out := {{.SourceType}}{}
{{range .Fields}}
	if staged.{{.Name}}.IsOk() {
		out.{{.Name}} = staged.{{.Name}}.Unwrap()
	} else {
		errs = errs.Add("{{.Name}}", staged.{{.Name}}.UnwrapErr())
	}
{{end}}{{if .AdditionalErrors}}
	for _, err := range staged.AdditionalErrors {
		errs = errs.Add("", err)
	}
{{end}}
	if len(errs) > 0 {
		return {{.SourceType}}{}, errs
	}

	return out, nil
}
`))
