package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewgen/internal/analyze"
	"viewgen/internal/decl"
	"viewgen/internal/plan"
)

func basicType(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{ID: analyze.TypeID{Name: name}, Kind: analyze.TypeKindBasic}
}

// testGraph builds a small store package by hand:
//
//	type RecordID struct { Table, Key string }
//	type User struct { ID RecordID; FullName, Email string; Age uint8 }
func testGraph() *analyze.TypeGraph {
	g := analyze.NewTypeGraph()
	g.Packages["viewgen/store"] = &analyze.PackageInfo{Path: "viewgen/store", Name: "store"}

	recordID := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "viewgen/store", Name: "RecordID"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{Name: "Table", Exported: true, Type: basicType("string")},
			{Name: "Key", Exported: true, Type: basicType("string")},
		},
	}

	user := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "viewgen/store", Name: "User"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{Name: "ID", Exported: true, Type: recordID},
			{Name: "FullName", Exported: true, Type: basicType("string")},
			{Name: "Email", Exported: true, Type: basicType("string")},
			{Name: "Age", Exported: true, Type: basicType("uint8")},
		},
	}

	g.Types[recordID.ID] = recordID
	g.Types[user.ID] = user

	return g
}

func resolvedPlan(t *testing.T, src string) *plan.ResolvedViewPlan {
	t.Helper()

	f, err := decl.Parse([]byte(src))
	require.NoError(t, err)

	r := plan.NewResolver(testGraph(), []*decl.File{f}, plan.DefaultConfig())
	p, err := r.Resolve()
	require.NoError(t, err)

	return p
}

const userViewSrc = `
import (
	"strings"
)

// UserResponse is the public projection of a stored user.
view UserResponse<store.User> {
	user_id: string = ID => |id: *store.RecordID| -> string { id.Key },
	first_name: string = FullName => |n: string| -> string { strings.Fields(n)[0] },
	email_id: string = Email,
	age: uint8 = Age,
}
`

func TestGenerator_Generate_FullFile(t *testing.T) {
	g := NewGenerator(GeneratorConfig{PackageName: "views", GenerateComments: false})

	files, err := g.Generate(resolvedPlan(t, userViewSrc))

	require.NoError(t, err)
	require.Len(t, files, 1)

	file := files[0]
	assert.Equal(t, "user_response_view.gen.go", file.Filename)

	content := string(file.Content)

	assert.Contains(t, content, "// Code generated by viewgen. DO NOT EDIT.")
	assert.Contains(t, content, "package views")
	assert.Contains(t, content, `"viewgen/store"`)
	assert.Contains(t, content, `"strings"`)
	assert.Contains(t, content, "// UserResponse is the public projection of a stored user.")
	assert.Contains(t, content, "type UserResponse struct")
	assert.Contains(t, content, "func appendUserResponse(buf *bytes.Buffer, m *store.User) error")
}

func TestGenerator_FieldOrderMatchesDeclaration(t *testing.T) {
	g := NewGenerator(GeneratorConfig{PackageName: "views"})

	files, err := g.Generate(resolvedPlan(t, userViewSrc))
	require.NoError(t, err)

	content := string(files[0].Content)

	userID := strings.Index(content, `"user_id":`)
	firstName := strings.Index(content, `"first_name":`)
	emailID := strings.Index(content, `"email_id":`)
	age := strings.Index(content, `"age":`)

	require.NotEqual(t, -1, userID)
	assert.Less(t, userID, firstName)
	assert.Less(t, firstName, emailID)
	assert.Less(t, emailID, age)
}

func TestGenerator_FieldExpressions(t *testing.T) {
	g := NewGenerator(GeneratorConfig{PackageName: "views", GenerateComments: false})

	files, err := g.Generate(resolvedPlan(t, userViewSrc))
	require.NoError(t, err)

	content := string(files[0].Content)

	// Identity field reads straight off the model.
	assert.Contains(t, content, "v := m.Email")
	// By-reference transform receives a pointer into the model.
	assert.Contains(t, content,
		"func(id *store.RecordID) string { return id.Key }(&m.ID)")
	// By-value transform receives a copy.
	assert.Contains(t, content,
		"func(n string) string { return strings.Fields(n)[0] }(m.FullName)")
}

func TestGenerator_AllAdaptersEmitted(t *testing.T) {
	g := NewGenerator(GeneratorConfig{PackageName: "views"})

	files, err := g.Generate(resolvedPlan(t, userViewSrc))
	require.NoError(t, err)

	content := string(files[0].Content)

	for _, v := range AllVariants() {
		assert.Contains(t, content, "type "+v.TypeName("UserResponse")+" struct")
	}

	assert.Contains(t, content, "M store.User")
	assert.Contains(t, content, "M *store.User")
	assert.Contains(t, content, "M []store.User")
	assert.Contains(t, content, "M []*store.User")
	assert.Contains(t, content, "_ json.Marshaler = _UserResponse{}")
}

func TestGenerator_PlainStructMarshaler(t *testing.T) {
	g := NewGenerator(GeneratorConfig{PackageName: "views"})

	files, err := g.Generate(resolvedPlan(t, userViewSrc))
	require.NoError(t, err)

	content := string(files[0].Content)

	// The plain struct keeps its declared (unexported) field names, so it
	// carries its own MarshalJSON writing them in declaration order.
	assert.Contains(t, content, "func (v UserResponse) MarshalJSON() ([]byte, error)")
	assert.Contains(t, content, "json.Marshal(v.user_id)")
	assert.Contains(t, content, "json.Marshal(v.age)")
	assert.Contains(t, content, "_ json.Marshaler = UserResponse{}")
}

func TestGenerator_VariantSubset(t *testing.T) {
	variants, err := ParseVariants([]string{"Owned", "Ref"})
	require.NoError(t, err)

	g := NewGenerator(GeneratorConfig{PackageName: "views", Variants: variants})

	files, err := g.Generate(resolvedPlan(t, userViewSrc))
	require.NoError(t, err)

	content := string(files[0].Content)

	assert.Contains(t, content, "type _UserResponse struct")
	assert.Contains(t, content, "type _UserResponseRef struct")
	assert.NotContains(t, content, "_UserResponseVec")
	assert.NotContains(t, content, "_UserResponseOption")
}

func TestGenerator_LocalPackageModelUnqualified(t *testing.T) {
	g := NewGenerator(GeneratorConfig{
		PackageName: "store",
		PackagePath: "viewgen/store",
	})

	src := `
view UserCard<store.User> {
	email_id: string = Email,
}
`

	files, err := g.Generate(resolvedPlan(t, src))
	require.NoError(t, err)

	content := string(files[0].Content)

	assert.Contains(t, content, "m *User) error")
	assert.NotContains(t, content, `"viewgen/store"`)
}

func TestGenerator_UnusedDeclImportDropped(t *testing.T) {
	g := NewGenerator(GeneratorConfig{PackageName: "views"})

	src := `
import (
	"strings"
	"time"
)

view UserCard<store.User> {
	first_name: string = FullName => |n: string| -> string { strings.Fields(n)[0] },
}
`

	files, err := g.Generate(resolvedPlan(t, src))
	require.NoError(t, err)

	content := string(files[0].Content)

	assert.Contains(t, content, `"strings"`)
	assert.NotContains(t, content, `"time"`)
}

func TestGenerator_RejectsPlanWithErrors(t *testing.T) {
	f, err := decl.Parse([]byte(`
view Broken<store.User> {
	email_id: string = Missing,
}
`))
	require.NoError(t, err)

	r := plan.NewResolver(testGraph(), []*decl.File{f}, plan.DefaultConfig())
	p, resolveErr := r.Resolve()
	require.Error(t, resolveErr)

	g := NewGenerator(GeneratorConfig{PackageName: "views"})

	files, err := g.Generate(p)

	require.Error(t, err)
	assert.Nil(t, files)
	assert.Contains(t, err.Error(), "plan has errors")
}

func TestGenerator_Filenames(t *testing.T) {
	g := NewGenerator(GeneratorConfig{})

	assert.Equal(t, "user_response_view.gen.go", g.filename("UserResponse"))
	assert.Equal(t, "order_v2_summary_view.gen.go", g.filename("OrderV2Summary"))
	assert.Equal(t, "user_view.gen.go", g.filename("User"))
}

func TestUsesPackage(t *testing.T) {
	assert.True(t, usesPackage([]string{"store.User"}, "store"))
	assert.True(t, usesPackage([]string{"[]*store.User"}, "store"))
	assert.False(t, usesPackage([]string{"bookstore.User"}, "store"))
	assert.False(t, usesPackage([]string{"string"}, "strings"))
}
