package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T) (*Loader, *SchemaSet) {
	t.Helper()

	loader := NewLoader()

	set, err := loader.LoadPackages("staging-generator/store")
	require.NoError(t, err)

	return loader, set
}

func TestLoadPackages(t *testing.T) {
	_, set := loadStore(t)

	rec, ok := set.Get("store.Account")
	require.True(t, ok, "store.Account not extracted, have: %v", set.Names())

	assert.Equal(t, "Account", rec.TypeName)
	assert.Equal(t, "staging-generator/store", rec.PkgPath)
	assert.Equal(t, "store.Account", rec.Ref().String())

	require.Len(t, rec.Fields, 2)
	assert.Equal(t, "ID", rec.Fields[0].Name)
	assert.Equal(t, "int64", rec.Fields[0].DeclaredType.Display)
	assert.Empty(t, rec.Fields[0].DeclaredType.Imports)

	assert.Equal(t, "Email", rec.Fields[1].Name)
	assert.Equal(t, "store.Email", rec.Fields[1].DeclaredType.Display)
	assert.Equal(t, []string{"staging-generator/store"}, rec.Fields[1].DeclaredType.Imports)
}

func TestLoadPreservesFieldOrder(t *testing.T) {
	_, set := loadStore(t)

	rec, ok := set.Get("store.Signup")
	require.True(t, ok)

	assert.Equal(t, []string{"Name", "Age", "Email", "Consent"}, rec.FieldNames())
}

func TestResolveType(t *testing.T) {
	loader, _ := loadStore(t)

	ref, err := loader.ResolveType("store.ParseError")
	require.NoError(t, err)
	assert.Equal(t, "store.ParseError", ref.Display)
	assert.Equal(t, "staging-generator/store", ref.PkgPath)

	_, err = loader.ResolveType("store.NoSuchType")
	assert.Error(t, err)

	_, err = loader.ResolveType("nowhere.Type")
	assert.Error(t, err)

	ref, err = loader.ResolveType("error")
	require.NoError(t, err)
	assert.Equal(t, "error", ref.Display)
	assert.Empty(t, ref.Imports)
}

func TestLoadBadPattern(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadPackages("staging-generator/does-not-exist")
	assert.Error(t, err)
}
