package decl

import (
	"fmt"

	"viewgen/internal/common"
)

// validateFile enforces the structural invariants that do not require
// model type information. Anything involving resolved source types is
// checked later during resolution.
func validateFile(f *File) *DeclError {
	seenViews := map[string]struct{}{}

	for i := range f.Views {
		view := &f.Views[i]

		if _, ok := seenViews[view.Name]; ok {
			return &DeclError{
				View:      view.Name,
				Invariant: InvariantDuplicateView,
				Line:      view.Line,
				Msg:       fmt.Sprintf("view %s declared more than once", view.Name),
			}
		}

		seenViews[view.Name] = struct{}{}

		if err := validateView(view); err != nil {
			return err
		}
	}

	return nil
}

func validateView(view *Declaration) *DeclError {
	if view.ModelType == "" {
		return &DeclError{
			View:      view.Name,
			Invariant: InvariantMissingModel,
			Line:      view.Line,
			Msg:       "view must name exactly one model type parameter",
		}
	}

	if common.IsEmpty(view.Fields) {
		return &DeclError{
			View:      view.Name,
			Invariant: InvariantEmptyFieldList,
			Line:      view.Line,
			Msg:       "view has no fields",
		}
	}

	seenFields := map[string]struct{}{}

	for i := range view.Fields {
		field := &view.Fields[i]

		if _, ok := seenFields[field.Name]; ok {
			return &DeclError{
				View:      view.Name,
				Field:     field.Name,
				Invariant: InvariantDuplicateField,
				Line:      field.Line,
				Msg:       fmt.Sprintf("field %s declared more than once", field.Name),
			}
		}

		seenFields[field.Name] = struct{}{}

		if field.Source.IsEmpty() {
			return &DeclError{
				View:      view.Name,
				Field:     field.Name,
				Invariant: InvariantMissingSource,
				Line:      field.Line,
				Msg:       "field has no source path",
			}
		}
	}

	return nil
}
