package plan

import (
	"fmt"

	"viewgen/internal/analyze"
	"viewgen/internal/common"
	"viewgen/internal/decl"
	"viewgen/internal/diagnostic"
)

// Config holds resolution options.
type Config struct {
	// LocalPkg is the import path of the package code is generated into.
	// Types from it render unqualified; empty means always qualify.
	LocalPkg string
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{}
}

// Resolver binds parsed declaration files to a model type graph.
type Resolver struct {
	graph *analyze.TypeGraph
	files []*decl.File
	cfg   Config
}

// NewResolver creates a Resolver over the given graph and files.
func NewResolver(graph *analyze.TypeGraph, files []*decl.File, cfg Config) *Resolver {
	return &Resolver{graph: graph, files: files, cfg: cfg}
}

// Resolve produces the resolved view plan. The returned error is non-nil
// whenever any diagnostic error was recorded; in that case the plan is
// returned for inspection but must not be fed to code generation.
func (r *Resolver) Resolve() (*ResolvedViewPlan, error) {
	p := &ResolvedViewPlan{TypeGraph: r.graph}

	seen := map[string]struct{}{}

	for _, f := range r.files {
		p.Diagnostics.Merge(checkImports(f))

		for i := range f.Views {
			view := &f.Views[i]

			if _, dup := seen[view.Name]; dup {
				p.Diagnostics.AddError("duplicate_view",
					fmt.Sprintf("view %s declared in more than one file", view.Name),
					view.Name, "")

				continue
			}

			seen[view.Name] = struct{}{}

			resolved := r.resolveView(p, view)
			if resolved != nil {
				resolved.Imports = f.Imports
				p.Views = append(p.Views, *resolved)
			}
		}
	}

	if p.Diagnostics.HasErrors() {
		return p, p.Diagnostics.Error()
	}

	return p, nil
}

// checkImports warns about declared imports no view in the file
// references; the generator drops them from the emitted file, so the
// author probably meant to use or remove them.
func checkImports(f *decl.File) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	var rendered []string

	for i := range f.Views {
		view := &f.Views[i]
		rendered = append(rendered, view.ModelType)

		for j := range view.Fields {
			field := &view.Fields[j]
			rendered = append(rendered, field.ViewType)

			if field.HasTransform() {
				t := field.Transform
				rendered = append(rendered, t.InputType, t.OutputType, t.Body)
			}
		}
	}

	for _, imp := range f.Imports {
		referenced := false

		for _, s := range rendered {
			if common.HasQualifier(s, common.PkgAlias(imp)) {
				referenced = true
				break
			}
		}

		if !referenced {
			d.AddWarning("unused_import",
				fmt.Sprintf("import %q is not referenced by any view in the file", imp),
				"", "")
		}
	}

	return d
}

// resolveView binds one declaration to its model type. Returns nil when
// the model itself cannot be resolved; field-level findings are recorded
// as diagnostics on the plan.
func (r *Resolver) resolveView(p *ResolvedViewPlan, view *decl.Declaration) *ResolvedView {
	model := r.graph.LookupByName(view.ModelType)
	if model == nil {
		p.Diagnostics.AddError("model_type_not_found",
			fmt.Sprintf("model type %q not found in analyzed packages", view.ModelType),
			view.Name, "")

		return nil
	}

	if model.Kind != analyze.TypeKindStruct {
		p.Diagnostics.AddError("model_type_not_struct",
			fmt.Sprintf("model type %q is not a struct (kind: %s)", view.ModelType, model.Kind),
			view.Name, "")

		return nil
	}

	resolved := &ResolvedView{
		Decl:         *view,
		Model:        model,
		ModelPkgPath: model.ID.PkgPath,
	}

	for i := range view.Fields {
		field := &view.Fields[i]

		rf := r.resolveField(p, view, model, field)
		if rf != nil {
			resolved.Fields = append(resolved.Fields, *rf)
		}
	}

	return resolved
}

func (r *Resolver) resolveField(
	p *ResolvedViewPlan,
	view *decl.Declaration,
	model *analyze.TypeInfo,
	field *decl.FieldSpec,
) *ResolvedField {
	terminal := r.walkSourcePath(p, view, model, field)
	if terminal == nil {
		return nil
	}

	rendered := r.graph.RenderType(terminal, r.cfg.LocalPkg)

	rf := &ResolvedField{
		Spec:       *field,
		SourceType: terminal,
	}

	if !field.HasTransform() {
		// Identity mapping requires the view type to already equal the
		// resolved source type.
		if field.ViewType != rendered {
			r.addMismatch(p, view.Name, field.Name, MismatchIdentity, rendered, field.ViewType)
			return nil
		}

		rf.Strategy = StrategyIdentity

		return rf
	}

	transform := field.Transform
	rf.Strategy = StrategyTransform

	// The transform input must be the terminal type itself, or a pointer
	// to it for read-only access without copying. This is also what makes
	// a dotted chain with a transform legal: the declared input has to
	// match the full chain's terminal type.
	switch transform.InputType {
	case rendered:
		rf.ByReference = false
	case "*" + rendered:
		rf.ByReference = true
	default:
		r.addMismatch(p, view.Name, field.Name, MismatchTransformInput,
			rendered+" or *"+rendered, transform.InputType)

		return nil
	}

	if transform.OutputType != field.ViewType {
		r.addMismatch(p, view.Name, field.Name, MismatchTransformOutput,
			field.ViewType, transform.OutputType)

		return nil
	}

	return rf
}

// walkSourcePath resolves the dotted source path on the model, hop by
// hop. Intermediate hops must be plain structs: traversing a pointer
// field is rejected so that generated field access can never observe a
// nil and serialization stays total over the model type.
func (r *Resolver) walkSourcePath(
	p *ResolvedViewPlan,
	view *decl.Declaration,
	model *analyze.TypeInfo,
	field *decl.FieldSpec,
) *analyze.TypeInfo {
	cur := model

	for i, seg := range field.Source.Segments {
		if cur == nil || cur.Kind != analyze.TypeKindStruct {
			p.Diagnostics.AddError("source_path_not_struct",
				fmt.Sprintf("source path %q: segment %q is not addressed at a struct",
					field.Source, seg),
				view.Name, field.Name)

			return nil
		}

		f := cur.Field(seg)
		if f == nil {
			p.Diagnostics.AddError("source_path_not_found",
				fmt.Sprintf("source path %q: field %q not found on %s",
					field.Source, seg, cur.ID),
				view.Name, field.Name)

			return nil
		}

		if i == len(field.Source.Segments)-1 {
			return f.Type
		}

		next := r.graph.StructShape(f.Type)
		if next == nil && f.Type.Kind == analyze.TypeKindPointer {
			p.Diagnostics.AddError("source_path_through_pointer",
				fmt.Sprintf("source path %q: cannot traverse pointer field %q; "+
					"a nil hop would make serialization partial", field.Source, seg),
				view.Name, field.Name)

			return nil
		}

		cur = next
	}

	return nil
}

func (r *Resolver) addMismatch(p *ResolvedViewPlan, view, field, context, want, got string) {
	mismatch := &TypeMismatchError{
		View:    view,
		Field:   field,
		Context: context,
		Want:    want,
		Got:     got,
	}

	p.Mismatches = append(p.Mismatches, mismatch)
	p.Diagnostics.AddError("type_mismatch", mismatch.Error(), view, field)
}
