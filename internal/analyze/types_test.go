package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicType(name string) *TypeInfo {
	return &TypeInfo{ID: TypeID{Name: name}, Kind: TypeKindBasic}
}

func TestTypeGraph_RenderType(t *testing.T) {
	g := NewTypeGraph()
	g.Packages["viewgen/store"] = &PackageInfo{Path: "viewgen/store", Name: "store"}

	record := &TypeInfo{
		ID:   TypeID{PkgPath: "viewgen/store", Name: "RecordID"},
		Kind: TypeKindStruct,
	}

	cases := []struct {
		name string
		typ  *TypeInfo
		want string
	}{
		{"basic", basicType("string"), "string"},
		{"named struct", record, "store.RecordID"},
		{"pointer", &TypeInfo{Kind: TypeKindPointer, ElemType: record}, "*store.RecordID"},
		{"slice", &TypeInfo{Kind: TypeKindSlice, ElemType: record}, "[]store.RecordID"},
		{
			"map",
			&TypeInfo{Kind: TypeKindMap, KeyType: basicType("string"), ElemType: basicType("int")},
			"map[string]int",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.RenderType(tc.typ, ""))
		})
	}
}

func TestTypeGraph_RenderType_LocalPackageUnqualified(t *testing.T) {
	g := NewTypeGraph()
	g.Packages["viewgen/store"] = &PackageInfo{Path: "viewgen/store", Name: "store"}

	record := &TypeInfo{
		ID:   TypeID{PkgPath: "viewgen/store", Name: "RecordID"},
		Kind: TypeKindStruct,
	}

	assert.Equal(t, "RecordID", g.RenderType(record, "viewgen/store"))
}

func TestTypeGraph_LookupByName(t *testing.T) {
	g := NewTypeGraph()
	g.Packages["viewgen/store"] = &PackageInfo{Path: "viewgen/store", Name: "store"}

	user := &TypeInfo{
		ID:   TypeID{PkgPath: "viewgen/store", Name: "User"},
		Kind: TypeKindStruct,
	}
	g.Types[user.ID] = user

	assert.Equal(t, user, g.LookupByName("store.User"))
	assert.Equal(t, user, g.LookupByName("User"))
	assert.Nil(t, g.LookupByName("store.Missing"))
	assert.Nil(t, g.LookupByName("other.User"))
}

func TestTypeInfo_Field(t *testing.T) {
	user := &TypeInfo{
		Kind: TypeKindStruct,
		Fields: []FieldInfo{
			{Name: "Email", Exported: true, Type: basicType("string")},
			{Name: "Age", Exported: true, Type: basicType("uint8")},
		},
	}

	f := user.Field("Age")
	require.NotNil(t, f)
	assert.Equal(t, "uint8", f.Type.ID.Name)

	assert.Nil(t, user.Field("Missing"))
}
