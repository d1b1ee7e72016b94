package decl

import (
	"fmt"
	"os"
	"strings"
)

// ParseFile loads and parses a declaration file from the given path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	f, perr := Parse(data)
	if perr != nil {
		return nil, fmt.Errorf("%s: %w", path, perr)
	}

	return f, nil
}

// Parse parses declaration source into a validated File. On any error no
// partial result is returned; the error is a *DeclError identifying the
// offending field and the violated invariant.
func Parse(src []byte) (*File, error) {
	s := newScanner(string(src))
	f := &File{}

	// Leading comments before an import block belong to the file, not to
	// the first view; they are dropped.
	comments := s.collectComments()

	if s.peekIs("import") {
		if err := parseImports(s, f); err != nil {
			return nil, err
		}

		comments = s.collectComments()
	}

	for {
		s.skipSpace()

		if s.eof() {
			break
		}

		view, err := parseView(s, comments)
		if err != nil {
			return nil, err
		}

		f.Views = append(f.Views, *view)
		comments = s.collectComments()
	}

	if err := validateFile(f); err != nil {
		return nil, err
	}

	return f, nil
}

func parseImports(s *scanner, f *File) *DeclError {
	s.tryConsume("import")

	if err := s.expect("("); err != nil {
		return err
	}

	for !s.tryConsume(")") {
		s.skipSpace()

		if s.eof() {
			return syntaxErr(s.line, "unterminated import block")
		}

		path, err := s.readQuoted()
		if err != nil {
			return err
		}

		if strings.TrimSpace(path) == "" {
			return &DeclError{
				Invariant: InvariantEmptyImportPath,
				Line:      s.line,
				Msg:       "import path is empty",
			}
		}

		f.Imports = append(f.Imports, path)
	}

	return nil
}

func parseView(s *scanner, attrs []string) (*Declaration, *DeclError) {
	line := s.line

	if kw, ok := s.readIdent(); !ok || kw != "view" {
		return nil, syntaxErr(s.line, "expected view declaration, found %q", s.rest(12))
	}

	name, ok := s.readIdent()
	if !ok {
		return nil, &DeclError{
			Invariant: InvariantBadIdentifier,
			Line:      s.line,
			Msg:       "view name must be an identifier",
		}
	}

	view := &Declaration{
		Name:  name,
		Attrs: attrs,
		Line:  line,
	}

	// Exactly one angle-bracketed model type parameter.
	if err := s.expect("<"); err != nil {
		return nil, &DeclError{
			View:      name,
			Invariant: InvariantMissingModel,
			Line:      s.line,
			Msg:       "view must name exactly one model type parameter",
		}
	}

	model, err := s.readTypeExpr(">")
	if err != nil {
		return nil, &DeclError{
			View:      name,
			Invariant: InvariantMissingModel,
			Line:      s.line,
			Msg:       "view must name exactly one model type parameter",
		}
	}

	view.ModelType = model

	if err := s.expect(">"); err != nil {
		return nil, err
	}

	if err := s.expect("{"); err != nil {
		return nil, err
	}

	for {
		// Comments between field lines are allowed and dropped.
		s.collectComments()

		if s.tryConsume("}") {
			break
		}

		if s.eof() {
			return nil, syntaxErr(s.line, "unterminated view body for %s", name)
		}

		field, ferr := parseField(s, name)
		if ferr != nil {
			return nil, ferr
		}

		view.Fields = append(view.Fields, *field)
	}

	return view, nil
}

func parseField(s *scanner, viewName string) (*FieldSpec, *DeclError) {
	line := s.line

	name, ok := s.readIdent()
	if !ok {
		return nil, syntaxErr(s.line, "expected field name, found %q", s.rest(12))
	}

	field := &FieldSpec{Name: name, Line: line}

	if err := s.expect(":"); err != nil {
		return nil, err
	}

	viewType, err := s.readTypeExpr("=")
	if err != nil {
		return nil, err
	}

	field.ViewType = viewType

	if err := s.expect("="); err != nil {
		return nil, err
	}

	// A source path must always be given; omission is a declaration
	// error, never a same-name default.
	if s.peekIs(",") || s.peekIs("=>") {
		return nil, &DeclError{
			View:      viewName,
			Field:     name,
			Invariant: InvariantMissingSource,
			Line:      s.line,
			Msg:       "field has no source path",
		}
	}

	path, perr := parseSourcePath(s)
	if perr != nil {
		perr.View = viewName
		perr.Field = name

		return nil, perr
	}

	field.Source = path

	if s.tryConsume("=>") {
		transform, terr := parseTransform(s, viewName, name)
		if terr != nil {
			return nil, terr
		}

		field.Transform = transform
	}

	if err := s.expect(","); err != nil {
		return nil, err
	}

	return field, nil
}

func parseSourcePath(s *scanner) (FieldPath, *DeclError) {
	var path FieldPath

	for {
		seg, ok := s.readIdent()
		if !ok {
			return FieldPath{}, &DeclError{
				Invariant: InvariantMissingSource,
				Line:      s.line,
				Msg:       "source path segment must be an identifier",
			}
		}

		path.Segments = append(path.Segments, seg)

		if !s.tryConsume(".") {
			return path, nil
		}
	}
}

func parseTransform(s *scanner, viewName, fieldName string) (*TransformSpec, *DeclError) {
	if err := s.expect("|"); err != nil {
		return nil, err
	}

	param, ok := s.readIdent()
	if !ok {
		return nil, syntaxErr(s.line, "transform parameter must be an identifier")
	}

	if err := s.expect(":"); err != nil {
		return nil, err
	}

	inputType, err := s.readTypeExpr("|")
	if err != nil {
		return nil, err
	}

	if err := s.expect("|"); err != nil {
		return nil, err
	}

	if err := s.expect("->"); err != nil {
		return nil, err
	}

	outputType, err := s.readTypeExpr("{")
	if err != nil {
		return nil, err
	}

	body, berr := s.readBalancedBraces()
	if berr != nil {
		return nil, berr
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &DeclError{
			View:      viewName,
			Field:     fieldName,
			Invariant: InvariantEmptyTransform,
			Line:      s.line,
			Msg:       "transform body is empty",
		}
	}

	return &TransformSpec{
		Param:      param,
		InputType:  inputType,
		OutputType: outputType,
		Body:       body,
	}, nil
}
