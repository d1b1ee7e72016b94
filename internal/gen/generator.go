package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"viewgen/internal/analyze"
	"viewgen/internal/common"
	"viewgen/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// PackagePath is the import path of the generated package. Model
	// types from it render unqualified and are not imported.
	PackagePath string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables generation of explanatory comments.
	GenerateComments bool
	// Variants restricts which adapter variants are emitted.
	// Empty means all of them.
	Variants []Variant
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "views",
		OutputDir:        "./views",
		GenerateComments: true,
	}
}

// Generator generates Go code from a resolved view plan.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.TypeGraph
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "user_response_view.gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one Go file per resolved view. Nothing is emitted
// when the plan carries errors: generation is all-or-nothing.
func (g *Generator) Generate(p *plan.ResolvedViewPlan) ([]GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("plan has errors: %w", p.Diagnostics.Error())
	}

	g.graph = p.TypeGraph

	var files []GeneratedFile

	for i := range p.Views {
		view := &p.Views[i]

		file, err := g.generateView(view)
		if err != nil {
			return nil, fmt.Errorf("generating view %s: %w", view.Decl.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateView renders and formats the file for a single view.
func (g *Generator) generateView(view *plan.ResolvedView) (*GeneratedFile, error) {
	data := g.buildTemplateData(view)

	var buf bytes.Buffer
	if err := viewTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the view template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []string
	Attrs            []string
	ViewName         string
	ModelType        string
	AppendFunc       string
	GenerateComments bool
	StructFields     []structFieldData
	Fields           []fieldData
	Adapters         []adapterData
}

// structFieldData is one field of the plain view struct.
type structFieldData struct {
	Name string
	Type string
}

// fieldData is one serialized field in declaration order.
type fieldData struct {
	Name    string // JSON object key, verbatim from the declaration
	Expr    string // Go expression producing the field value from m
	Comment string
}

// adapterData is one generated wrapper type.
type adapterData struct {
	TypeName    string
	WrapperType string
	Kind        string // value, pointer, slice or slicePtr
	Doc         string
}

// buildTemplateData constructs the template data for one resolved view.
func (g *Generator) buildTemplateData(view *plan.ResolvedView) *templateData {
	modelType := g.graph.RenderType(view.Model, g.config.PackagePath)

	data := &templateData{
		PackageName:      g.config.PackageName,
		Filename:         g.filename(view.Decl.Name),
		Attrs:            view.Decl.Attrs,
		ViewName:         view.Decl.Name,
		ModelType:        modelType,
		AppendFunc:       "append" + view.Decl.Name,
		GenerateComments: g.config.GenerateComments,
	}

	imports := map[string]struct{}{
		"bytes":         {},
		"encoding/json": {},
		"fmt":           {},
	}

	if view.ModelPkgPath != "" && view.ModelPkgPath != g.config.PackagePath {
		imports[view.ModelPkgPath] = struct{}{}
	}

	var rendered []string

	for i := range view.Fields {
		field := &view.Fields[i]

		data.StructFields = append(data.StructFields, structFieldData{
			Name: field.Spec.Name,
			Type: field.Spec.ViewType,
		})

		expr := g.fieldExpr(field)
		rendered = append(rendered, field.Spec.ViewType, expr)

		data.Fields = append(data.Fields, fieldData{
			Name:    field.Spec.Name,
			Expr:    expr,
			Comment: g.fieldComment(field),
		})
	}

	// Declared imports pass through only when this view actually
	// references them; an unused import would break the generated file.
	for _, imp := range view.Imports {
		if usesPackage(rendered, common.PkgAlias(imp)) {
			imports[imp] = struct{}{}
		}
	}

	variants := g.config.Variants
	if len(variants) == 0 {
		variants = AllVariants()
	}

	for _, v := range variants {
		data.Adapters = append(data.Adapters, adapterData{
			TypeName:    v.TypeName(view.Decl.Name),
			WrapperType: v.WrapperType(modelType),
			Kind:        v.marshalKind(),
			Doc:         adapterDoc(v, view.Decl.Name, modelType),
		})
	}

	for imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Strings(data.Imports)

	return data
}

// fieldExpr builds the Go expression for one field value. The receiver
// expression m is always a non-nil *ModelType.
func (g *Generator) fieldExpr(field *plan.ResolvedField) string {
	access := "m." + strings.Join(field.Spec.Source.Segments, ".")

	if field.Strategy != plan.StrategyTransform {
		return access
	}

	arg := access
	if field.ByReference {
		arg = "&" + access
	}

	t := field.Spec.Transform

	return fmt.Sprintf("func(%s %s) %s { return %s }(%s)",
		t.Param, t.InputType, t.OutputType, t.Body, arg)
}

func (g *Generator) fieldComment(field *plan.ResolvedField) string {
	if !g.config.GenerateComments {
		return ""
	}

	if field.Strategy == plan.StrategyTransform {
		return fmt.Sprintf("%s: transformed from %s", field.Spec.Name, field.Spec.Source)
	}

	return fmt.Sprintf("%s: from %s", field.Spec.Name, field.Spec.Source)
}

// adapterDoc renders the doc comment line for an adapter type.
func adapterDoc(v Variant, viewName, modelType string) string {
	name := v.TypeName(viewName)

	switch v.marshalKind() {
	case "pointer":
		return fmt.Sprintf("%s serializes a %s held by pointer as %s; nil becomes null.",
			name, modelType, viewName)
	case "slice":
		return fmt.Sprintf("%s serializes a slice of %s as an array of %s.",
			name, modelType, viewName)
	case "slicePtr":
		return fmt.Sprintf("%s serializes a slice of *%s as an array of %s; nil elements become null.",
			name, modelType, viewName)
	default:
		return fmt.Sprintf("%s serializes an owned %s as %s.", name, modelType, viewName)
	}
}

// usesPackage reports whether any rendered snippet references the
// package alias as a qualifier.
func usesPackage(rendered []string, alias string) bool {
	for _, s := range rendered {
		if common.HasQualifier(s, alias) {
			return true
		}
	}

	return false
}

// filename converts a view name to its generated file name,
// e.g. UserResponse -> user_response_view.gen.go.
func (g *Generator) filename(viewName string) string {
	var sb strings.Builder

	for i, r := range viewName {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	sb.WriteString("_view.gen.go")

	return sb.String()
}

// Template for the view file. Output goes through go/format, so the
// template favors correctness over indentation.

var viewTemplate = template.Must(template.New("view").Parse(`// Code generated by viewgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	"{{.}}"
{{end}})

{{range .Attrs}}{{.}}
{{end}}type {{.ViewName}} struct {
{{range .StructFields}}	{{.Name}} {{.Type}}
{{end}}}

// MarshalJSON writes the fields of {{.ViewName}} in declaration order.
func (v {{.ViewName}}) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
{{range $i, $f := .StructFields}}{{if $i}}
	buf.WriteByte(',')
{{end}}
	buf.WriteString(` + "`" + `"{{$f.Name}}":` + "`" + `)
	{
		b, err := json.Marshal(v.{{$f.Name}})
		if err != nil {
			return nil, fmt.Errorf("{{$f.Name}}: %w", err)
		}
		buf.Write(b)
	}
{{end}}	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// {{.AppendFunc}} writes the {{.ViewName}} projection of m to buf as a
// JSON object, fields in declaration order.
func {{.AppendFunc}}(buf *bytes.Buffer, m *{{.ModelType}}) error {
	buf.WriteByte('{')
{{range $i, $f := .Fields}}{{if $i}}
	buf.WriteByte(',')
{{end}}
{{if $f.Comment}}	// {{$f.Comment}}
{{end}}	buf.WriteString(` + "`" + `"{{$f.Name}}":` + "`" + `)
	{
		v := {{$f.Expr}}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("{{$f.Name}}: %w", err)
		}
		buf.Write(b)
	}
{{end}}	buf.WriteByte('}')

	return nil
}
{{range .Adapters}}
// {{.Doc}}
type {{.TypeName}} struct {
	M {{.WrapperType}}
}

{{if eq .Kind "value"}}func (w {{.TypeName}}) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := {{$.AppendFunc}}(&buf, &w.M); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
{{else if eq .Kind "pointer"}}func (w {{.TypeName}}) MarshalJSON() ([]byte, error) {
	if w.M == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	if err := {{$.AppendFunc}}(&buf, w.M); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
{{else if eq .Kind "slice"}}func (w {{.TypeName}}) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for i := range w.M {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := {{$.AppendFunc}}(&buf, &w.M[i]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte(']')

	return buf.Bytes(), nil
}
{{else}}func (w {{.TypeName}}) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for i := range w.M {
		if i > 0 {
			buf.WriteByte(',')
		}

		if w.M[i] == nil {
			buf.WriteString("null")

			continue
		}

		if err := {{$.AppendFunc}}(&buf, w.M[i]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte(']')

	return buf.Bytes(), nil
}
{{end}}{{end}}
var (
	_ json.Marshaler = {{.ViewName}}{}
{{range .Adapters}}	_ json.Marshaler = {{.TypeName}}{}
{{end}})
`))
