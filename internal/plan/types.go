package plan

import (
	"viewgen/internal/analyze"
	"viewgen/internal/common"
	"viewgen/internal/decl"
	"viewgen/internal/diagnostic"
)

// ResolvedViewPlan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type ResolvedViewPlan struct {
	// Views is the list of fully resolved view declarations.
	Views []ResolvedView
	// TypeGraph holds all analyzed model types for type rendering.
	TypeGraph *analyze.TypeGraph
	// Mismatches lists the typed mismatch errors found during resolution.
	Mismatches []*TypeMismatchError
	// Diagnostics contains all findings from resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedView represents one view declaration bound to its model type.
type ResolvedView struct {
	// Decl is the original declaration descriptor.
	Decl decl.Declaration
	// Model is the resolved model struct type.
	Model *analyze.TypeInfo
	// ModelPkgPath is the import path of the model's package.
	ModelPkgPath string
	// Imports are the pass-through imports from the declaration file.
	Imports []string
	// Fields is the ordered list of resolved field mappings.
	// Order equals declaration order equals serialization order.
	Fields []ResolvedField
}

// ResolvedField represents a single resolved field mapping.
type ResolvedField struct {
	// Spec is the original field specification.
	Spec decl.FieldSpec
	// SourceType is the resolved terminal type of the source path.
	SourceType *analyze.TypeInfo
	// Strategy describes how the field value is computed.
	Strategy FieldStrategy
	// ByReference is true when the transform takes *T; the generated
	// code then passes a pointer into the model instead of copying.
	ByReference bool
}

// FieldStrategy describes how a field value is computed at
// serialization time.
type FieldStrategy int

const (
	// StrategyIdentity - the resolved source value is used directly.
	StrategyIdentity FieldStrategy = iota
	// StrategyTransform - the inlined transform is applied to the
	// resolved source value.
	StrategyTransform
)

// String returns a human-readable strategy name.
func (s FieldStrategy) String() string {
	switch s {
	case StrategyIdentity:
		return "identity"
	case StrategyTransform:
		return "transform"
	default:
		return common.UnknownStr
	}
}
