package gen

import (
	"fmt"

	"viewgen/internal/common"
)

// Ownership says whether the adapter owns the wrapped model value or
// borrows it from the caller.
type Ownership int

const (
	OwnershipOwned Ownership = iota
	OwnershipBorrowed
)

// String returns a human-readable ownership name.
func (o Ownership) String() string {
	switch o {
	case OwnershipOwned:
		return "owned"
	case OwnershipBorrowed:
		return "borrowed"
	default:
		return common.UnknownStr
	}
}

// Container is the shape the adapter wraps: a single value, an optional
// value, or a sequence.
type Container int

const (
	ContainerScalar Container = iota
	ContainerOptional
	ContainerSequence
)

// String returns a human-readable container name.
func (c Container) String() string {
	switch c {
	case ContainerScalar:
		return "scalar"
	case ContainerOptional:
		return "optional"
	case ContainerSequence:
		return "sequence"
	default:
		return common.UnknownStr
	}
}

func (c Container) base() string {
	switch c {
	case ContainerOptional:
		return "Option"
	case ContainerSequence:
		return "Vec"
	default:
		return ""
	}
}

// Holding is the indirection of the container itself: held by value or
// by reference.
type Holding int

const (
	HoldingValue Holding = iota
	HoldingReference
)

// String returns a human-readable holding name.
func (h Holding) String() string {
	switch h {
	case HoldingValue:
		return "value"
	case HoldingReference:
		return "reference"
	default:
		return common.UnknownStr
	}
}

// Variant is one point in the {ownership × container × indirection}
// space. The eight generated adapters are the valid points; for a
// scalar, borrowing the value and holding the container by reference
// are the same thing, and a borrowed container of borrowed elements is
// not generated.
type Variant struct {
	Ownership Ownership
	Container Container
	Holding   Holding
}

// AllVariants returns the eight generated variants in canonical order.
func AllVariants() []Variant {
	return []Variant{
		{OwnershipOwned, ContainerScalar, HoldingValue},
		{OwnershipBorrowed, ContainerScalar, HoldingReference},
		{OwnershipOwned, ContainerOptional, HoldingValue},
		{OwnershipBorrowed, ContainerOptional, HoldingValue},
		{OwnershipOwned, ContainerOptional, HoldingReference},
		{OwnershipOwned, ContainerSequence, HoldingValue},
		{OwnershipBorrowed, ContainerSequence, HoldingValue},
		{OwnershipOwned, ContainerSequence, HoldingReference},
	}
}

// Suffix returns the deterministic adapter name suffix: "", Ref,
// Option, RefOption, OptionRef, Vec, RefVec or VecRef.
func (v Variant) Suffix() string {
	base := v.Container.base()

	if v.Container == ContainerScalar {
		if v.Holding == HoldingReference {
			return "Ref"
		}

		return ""
	}

	if v.Ownership == OwnershipBorrowed {
		return "Ref" + base
	}

	if v.Holding == HoldingReference {
		return base + "Ref"
	}

	return base
}

// TypeName returns the adapter type name for a view.
func (v Variant) TypeName(viewName string) string {
	return "_" + viewName + v.Suffix()
}

// WrapperType returns the Go type of the adapter's single field for the
// given model type expression.
//
// Optionality and borrowing both render as a pointer in Go, so several
// variants share one field type; the adapters stay distinct named types
// so call sites keep stating their intent.
func (v Variant) WrapperType(modelType string) string {
	switch v.Container {
	case ContainerSequence:
		if v.Ownership == OwnershipBorrowed {
			return "[]*" + modelType
		}

		return "[]" + modelType

	case ContainerOptional:
		return "*" + modelType

	default:
		if v.Holding == HoldingReference {
			return "*" + modelType
		}

		return modelType
	}
}

// marshalKind selects the MarshalJSON body shape for the variant.
func (v Variant) marshalKind() string {
	switch {
	case v.Container == ContainerSequence && v.Ownership == OwnershipBorrowed:
		return "slicePtr"
	case v.Container == ContainerSequence:
		return "slice"
	case v.Container == ContainerOptional || v.Holding == HoldingReference:
		return "pointer"
	default:
		return "value"
	}
}

// ParseVariants maps requested suffix names (e.g. "Ref", "Vec") to
// variants. An empty request selects all eight.
func ParseVariants(names []string) ([]Variant, error) {
	all := AllVariants()
	if len(names) == 0 {
		return all, nil
	}

	bySuffix := make(map[string]Variant, len(all))
	for _, v := range all {
		bySuffix[v.Suffix()] = v
	}

	var out []Variant

	for _, name := range names {
		if name == "Owned" {
			// Friendlier alias for the empty suffix.
			name = ""
		}

		v, ok := bySuffix[name]
		if !ok {
			return nil, fmt.Errorf("unknown variant %q", name)
		}

		out = append(out, v)
	}

	return out, nil
}
