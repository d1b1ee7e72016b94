package plan

import "fmt"

// Mismatch contexts reported by TypeMismatchError.
const (
	MismatchIdentity        = "identity mapping"
	MismatchTransformInput  = "transform input"
	MismatchTransformOutput = "transform output"
)

// TypeMismatchError reports a declared type that is inconsistent with
// the resolved source type or with the field's view type. It is always
// a generation-time error; there is no serialization-time counterpart.
type TypeMismatchError struct {
	// View is the declaration the field belongs to.
	View string
	// Field is the offending view field.
	Field string
	// Context names which declared type is inconsistent.
	Context string
	// Want is the type required at this position.
	Want string
	// Got is the type that was declared.
	Got string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch in view %s field %s (%s): want %s, got %s",
		e.View, e.Field, e.Context, e.Want, e.Got)
}
