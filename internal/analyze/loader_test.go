package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	analyzer := NewAnalyzer()
	require.NoError(t, analyzer.LoadPackages("viewgen/store"))

	return analyzer.Graph()
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)
	require.NotNil(t, graph)

	assert.Contains(t, graph.Packages, "viewgen/store")

	user := TypeID{PkgPath: "viewgen/store", Name: "User"}
	assert.Contains(t, graph.Types, user)

	order := TypeID{PkgPath: "viewgen/store", Name: "Order"}
	assert.Contains(t, graph.Types, order)
}

func TestAnalyzer_UserFields(t *testing.T) {
	graph := loadStore(t)

	user := graph.GetType(TypeID{PkgPath: "viewgen/store", Name: "User"})
	require.NotNil(t, user)
	assert.Equal(t, TypeKindStruct, user.Kind)

	fieldNames := make(map[string]bool)
	for _, f := range user.Fields {
		fieldNames[f.Name] = true
	}

	assert.True(t, fieldNames["ID"], "User should have ID field")
	assert.True(t, fieldNames["FullName"], "User should have FullName field")
	assert.True(t, fieldNames["Email"], "User should have Email field")
	assert.True(t, fieldNames["Age"], "User should have Age field")

	id := user.Field("ID")
	require.NotNil(t, id)
	assert.Equal(t, TypeKindStruct, id.Type.Kind)
	assert.Equal(t, "UserID", id.Type.ID.Name)

	age := user.Field("Age")
	require.NotNil(t, age)
	assert.Equal(t, TypeKindAlias, age.Type.Kind)
	assert.Equal(t, "Age", age.Type.ID.Name)
	require.NotNil(t, age.Type.Underlying)
	assert.Equal(t, "uint8", age.Type.Underlying.ID.Name)
}

func TestAnalyzer_FieldTags(t *testing.T) {
	graph := loadStore(t)

	user := graph.GetType(TypeID{PkgPath: "viewgen/store", Name: "User"})
	require.NotNil(t, user)

	email := user.Field("Email")
	require.NotNil(t, email)
	assert.Equal(t, "email", email.Tag.Get("json"))
}

func TestAnalyzer_SliceField(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: "viewgen/store", Name: "Order"})
	require.NotNil(t, order)

	items := order.Field("Items")
	require.NotNil(t, items)
	assert.Equal(t, TypeKindSlice, items.Type.Kind)
	require.NotNil(t, items.Type.ElemType)
	assert.Equal(t, "OrderItem", items.Type.ElemType.ID.Name)
}

func TestAnalyzer_NamedWrapperIsAlias(t *testing.T) {
	graph := loadStore(t)

	// Named wrapper defined in a loaded package resolves to its
	// underlying shape rather than being treated as opaque.
	status := graph.GetType(TypeID{PkgPath: "viewgen/store", Name: "OrderStatus"})
	require.NotNil(t, status)
	assert.Equal(t, TypeKindAlias, status.Kind)
	require.NotNil(t, status.Underlying)
	assert.Equal(t, "string", status.Underlying.ID.Name)
}

func TestAnalyzer_ForeignStructType(t *testing.T) {
	graph := loadStore(t)

	user := graph.GetType(TypeID{PkgPath: "viewgen/store", Name: "User"})
	require.NotNil(t, user)

	// time.Time keeps its identity so it renders qualified; only its
	// exported surface matters and time.Time has no exported fields.
	createdAt := user.Field("CreatedAt")
	require.NotNil(t, createdAt)
	assert.Equal(t, TypeKindStruct, createdAt.Type.Kind)
	assert.Equal(t, "time", createdAt.Type.ID.PkgPath)
	assert.Equal(t, "Time", createdAt.Type.ID.Name)
	assert.Empty(t, createdAt.Type.Fields)
}

func TestAnalyzer_LoadUnknownPackage(t *testing.T) {
	analyzer := NewAnalyzer()

	err := analyzer.LoadPackages("viewgen/no-such-package")

	require.Error(t, err)
}
