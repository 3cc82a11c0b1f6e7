package tools

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jikime/py-mcp-naver-search/pkg/naver"
)

// CategoriesResourceURI identifies the static category listing resource.
const CategoriesResourceURI = "naver://available-search-categories"

// CategoriesResource describes the read-only resource listing every search
// category this server exposes.
func CategoriesResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         CategoriesResourceURI,
		Name:        "available-search-categories",
		Description: "Lists the Naver search categories available on this server with their human-readable labels.",
		MIMEType:    "application/json",
	}
}

// CategoriesJSON renders the category listing payload.
func CategoriesJSON() (string, error) {
	type entry struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	entries := make([]entry, 0, len(naver.Categories))
	for _, category := range naver.Categories {
		spec, err := naver.Lookup(category)
		if err != nil {
			return "", err
		}
		entries = append(entries, entry{ID: string(category), Label: spec.Label})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
