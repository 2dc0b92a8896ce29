package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/core/entity"
	"procura/internal/core/id"
)

type testCatalog struct {
	entity.Catalog

	Email    *string `db:"email"`
	IsActive bool    `db:"is_active"`
	Ignored  string  `db:"-"`
	NoTag    string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[testCatalog]()

	// Embedded entity.Catalog contributes base columns.
	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "deletion_mark")
	assert.Contains(t, cols, "version")
	assert.Contains(t, cols, "code")
	assert.Contains(t, cols, "name")
	assert.Contains(t, cols, "parent_id")
	assert.Contains(t, cols, "is_folder")

	// Own fields.
	assert.Contains(t, cols, "email")
	assert.Contains(t, cols, "is_active")

	// Ignored and untagged fields are excluded.
	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Ignored")
	assert.NotContains(t, cols, "NoTag")
}

func TestExtractDBColumns_PointerType(t *testing.T) {
	cols := ExtractDBColumns[*testCatalog]()
	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "email")
}

func TestStructToMap(t *testing.T) {
	email := "vendor@example.com"
	c := &testCatalog{
		Catalog:  entity.NewCatalog("VEN-00001", "Acme"),
		Email:    &email,
		IsActive: true,
		Ignored:  "skip",
		NoTag:    "skip",
	}

	m := StructToMap(c)
	require.NotNil(t, m)

	assert.Equal(t, "VEN-00001", m["code"])
	assert.Equal(t, "Acme", m["name"])
	assert.Equal(t, &email, m["email"])
	assert.Equal(t, true, m["is_active"])
	assert.Equal(t, 1, m["version"])

	entityID, ok := m["id"].(id.ID)
	require.True(t, ok)
	assert.False(t, id.IsNil(entityID))

	_, hasIgnored := m["-"]
	assert.False(t, hasIgnored)
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("nope"))
}
