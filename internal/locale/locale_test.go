// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("english defaults", func(t *testing.T) {
		loc := Resolve("en", nil)
		assert.Equal(t, "## User Prompt 👤", loc.UserHeader)
		assert.Equal(t, "Parameter", loc.MetadataTable.HeaderParameter)
	})

	t.Run("russian table", func(t *testing.T) {
		loc := Resolve("ru", nil)
		assert.Equal(t, "## Запрос пользователя 👤", loc.UserHeader)
		assert.Equal(t, "Настройка", loc.MetadataTable.HeaderParameter)
	})

	t.Run("unsupported language falls back to english", func(t *testing.T) {
		loc := Resolve("xx", nil)
		assert.Equal(t, Resolve("en", nil), loc)
	})

	t.Run("override replaces only set keys", func(t *testing.T) {
		loc := Resolve("en", map[string]Table{
			"en": {UserHeader: "## Me"},
		})
		assert.Equal(t, "## Me", loc.UserHeader)
		assert.Equal(t, "## Model Response 🤖", loc.ModelHeader)
		assert.Equal(t, "Enabled", loc.MetadataTable.SearchEnabled)
	})

	t.Run("override for inactive language ignored", func(t *testing.T) {
		loc := Resolve("ru", map[string]Table{
			"en": {UserHeader: "## Me"},
		})
		assert.Equal(t, "## Запрос пользователя 👤", loc.UserHeader)
	})
}

func TestRoleHeader(t *testing.T) {
	loc := Resolve("en", nil)
	assert.Equal(t, loc.UserHeader, loc.RoleHeader("user"))
	assert.Equal(t, loc.ModelHeader, loc.RoleHeader("model"))
	assert.Equal(t, "## Tool", loc.RoleHeader("tool"))
}

func TestBuiltinIsACopy(t *testing.T) {
	tables := Builtin()
	tables["en"] = Table{UserHeader: "mutated"}
	assert.Equal(t, "## User Prompt 👤", Resolve("en", nil).UserHeader)
}
