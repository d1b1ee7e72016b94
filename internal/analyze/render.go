package analyze

import (
	"fmt"
)

// RenderType renders a TypeInfo as the type expression a declaration
// author would write inside localPkg (package-name qualifiers, no import
// paths). Declared types are compared against this rendering
// structurally; the Go compiler has the final word over emitted code.
func (g *TypeGraph) RenderType(t *TypeInfo, localPkg string) string {
	if t == nil {
		return ""
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.ID.Name

	case TypeKindPointer:
		return "*" + g.RenderType(t.ElemType, localPkg)

	case TypeKindSlice:
		return "[]" + g.RenderType(t.ElemType, localPkg)

	case TypeKindArray:
		// Array lengths are not tracked in TypeInfo; fall back to the
		// go/types rendering when available.
		if t.GoType != nil {
			return t.GoType.String()
		}

		return "[]" + g.RenderType(t.ElemType, localPkg)

	case TypeKindMap:
		return fmt.Sprintf("map[%s]%s",
			g.RenderType(t.KeyType, localPkg),
			g.RenderType(t.ElemType, localPkg))

	case TypeKindStruct, TypeKindAlias, TypeKindExternal:
		return g.renderNamed(t, localPkg)

	default:
		return t.ID.Name
	}
}

func (g *TypeGraph) renderNamed(t *TypeInfo, localPkg string) string {
	if t.ID.PkgPath == "" || t.ID.PkgPath == localPkg {
		return t.ID.Name
	}

	return g.PkgName(t.ID.PkgPath) + "." + t.ID.Name
}
