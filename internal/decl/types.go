package decl

import "strings"

// File represents a parsed declaration file: shared imports plus one or
// more view declarations.
type File struct {
	// Imports lists import paths carried verbatim into the generated file.
	// Transform bodies may call packages listed here.
	Imports []string

	// Views is the ordered list of view declarations in the file.
	Views []Declaration
}

// Declaration is the validated field-mapping descriptor for one view.
// It is a generation-time artifact only: constructed once per declaration,
// consumed once by the generator, never present at runtime.
type Declaration struct {
	// Name of the generated plain view struct (e.g. "UserResponse").
	Name string

	// ModelType is the source record type the view projects
	// (e.g. "store.User"), written as it appears in the generated package.
	ModelType string

	// Attrs are the comment lines immediately preceding the view keyword,
	// carried verbatim onto the generated plain struct.
	Attrs []string

	// Fields is the ordered list of field specifications.
	// Order determines serialization key order.
	Fields []FieldSpec

	// Line is the 1-based line of the view keyword in the source.
	Line int
}

// FieldSpec is one field mapping entry in a declaration.
type FieldSpec struct {
	// Name of the field in the generated view, unique within the
	// declaration. Doubles as the serialization key.
	Name string

	// ViewType is the declared Go type of the view field.
	ViewType string

	// Source is the path to the model field the value is read from.
	Source FieldPath

	// Transform is the optional inlined transform. Nil means identity
	// mapping, which requires ViewType to equal the source field's type.
	Transform *TransformSpec

	// Line is the 1-based line of the field in the source.
	Line int
}

// TransformSpec is a typed unary transform descriptor. The body is an
// opaque Go expression; the generator synthesizes a real closure
// func(Param InputType) OutputType { return Body } around it.
type TransformSpec struct {
	// Param is the parameter name bound inside the body.
	Param string

	// InputType is the declared parameter type. It must be the terminal
	// source type T, or *T for read-only access without copying.
	InputType string

	// OutputType is the declared result type. It must equal the field's
	// ViewType.
	OutputType string

	// Body is the expression text, stored verbatim.
	Body string
}

// FieldPath is a dotted chain of model field identifiers.
type FieldPath struct {
	Segments []string
}

// String returns the dotted path form (e.g. "ID.Key").
func (p FieldPath) String() string {
	return strings.Join(p.Segments, ".")
}

// IsChain returns true if the path has more than one hop.
func (p FieldPath) IsChain() bool {
	return len(p.Segments) > 1
}

// IsEmpty returns true if the path has no segments.
func (p FieldPath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// HasTransform returns true if the field declares a transform.
func (f *FieldSpec) HasTransform() bool {
	return f.Transform != nil
}
