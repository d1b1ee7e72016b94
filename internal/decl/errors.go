package decl

import (
	"fmt"
	"strings"
)

// Invariant codes reported by DeclError.
const (
	InvariantSyntax          = "syntax"
	InvariantEmptyFieldList  = "empty_field_list"
	InvariantDuplicateField  = "duplicate_field"
	InvariantDuplicateView   = "duplicate_view"
	InvariantMissingSource   = "missing_source_path"
	InvariantMissingModel    = "missing_model_type"
	InvariantBadIdentifier   = "bad_identifier"
	InvariantEmptyTransform  = "empty_transform_body"
	InvariantEmptyImportPath = "empty_import_path"
)

// DeclError describes a malformed or semantically invalid declaration.
// It identifies the offending view and field together with the violated
// invariant; the parser never returns a partial descriptor alongside one.
type DeclError struct {
	// View is the declaration name, if known at the point of failure.
	View string
	// Field is the offending view field, if the error is field-scoped.
	Field string
	// Invariant is the violated invariant code (one of the Invariant*
	// constants).
	Invariant string
	// Line is the 1-based source line of the failure.
	Line int
	// Msg is the human-readable description.
	Msg string
}

// Error implements the error interface.
func (e *DeclError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "declaration error [%s]", e.Invariant)

	if e.Line > 0 {
		fmt.Fprintf(&sb, " line %d", e.Line)
	}

	if e.View != "" {
		fmt.Fprintf(&sb, " view %s", e.View)
	}

	if e.Field != "" {
		fmt.Fprintf(&sb, " field %s", e.Field)
	}

	sb.WriteString(": ")
	sb.WriteString(e.Msg)

	return sb.String()
}

func syntaxErr(line int, format string, args ...any) *DeclError {
	return &DeclError{
		Invariant: InvariantSyntax,
		Line:      line,
		Msg:       fmt.Sprintf(format, args...),
	}
}
