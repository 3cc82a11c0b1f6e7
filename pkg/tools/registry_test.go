package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jikime/py-mcp-naver-search/pkg/naver"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry(All(nil)...)
	require.Len(t, registry.All(), len(naver.Categories))

	assert.NotNil(t, registry.Get("search_blog"))
	assert.Nil(t, registry.Get("search_podcasts"))

	names := registry.Names()
	require.Len(t, names, len(naver.Categories))
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i], "names must be sorted")
	}
}

func TestCategoriesJSON(t *testing.T) {
	payload, err := CategoriesJSON()
	require.NoError(t, err)

	var entries []struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &entries))
	require.Len(t, entries, len(naver.Categories))
	assert.Equal(t, "blog", entries[0].ID)
	assert.Equal(t, "Blog", entries[0].Label)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Label, entry.ID)
	}
}

func TestReadParams(t *testing.T) {
	args := map[string]any{
		"query":   " golang ",
		"display": float64(20),
		"page":    "3",
	}

	query, err := ReadString(args, "query", true)
	require.NoError(t, err)
	assert.Equal(t, "golang", query)

	display, err := ReadIntDefault(args, "display", 10)
	require.NoError(t, err)
	assert.Equal(t, 20, display)

	page, err := ReadIntDefault(args, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	missing, err := ReadIntDefault(args, "absent", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, missing)

	// Explicit zero is not replaced with the default; callers validate it.
	zero, err := ReadIntDefault(map[string]any{"display": float64(0)}, "display", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, zero)

	null, err := ReadIntDefault(map[string]any{"display": nil}, "display", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, null, "null is treated as absent")

	_, err = ReadString(args, "absent", true)
	assert.Error(t, err)

	_, err = ReadIntDefault(map[string]any{"display": "lots"}, "display", 10)
	assert.Error(t, err)
}
