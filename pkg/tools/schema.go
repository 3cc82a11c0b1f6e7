package tools

import (
	"fmt"
	"strings"

	"github.com/jikime/py-mcp-naver-search/pkg/naver"
)

// Hand-written JSON schemas as plain maps, mirroring what the upstream API
// accepts per category. go-sdk passes these through verbatim.

func searchSchema(spec naver.Spec) map[string]any {
	properties := map[string]any{
		"query": map[string]any{
			"type":        "string",
			"description": "The keyword to search for",
		},
		"display": map[string]any{
			"type":        "integer",
			"description": fmt.Sprintf("Number of results to return (1-%d, default %d)", spec.MaxDisplay, spec.DefaultDisplay),
			"minimum":     1,
			"maximum":     spec.MaxDisplay,
		},
		"page": map[string]any{
			"type":        "integer",
			"description": "Result page to fetch, starting at 1",
			"minimum":     1,
		},
	}
	if spec.HasSort() {
		properties["sort"] = map[string]any{
			"type":        "string",
			"description": fmt.Sprintf("Sort order (default %q)", spec.DefaultSort),
			"enum":        spec.Sorts,
		}
	}
	if spec.HasFilter() {
		properties["filter"] = map[string]any{
			"type":        "string",
			"description": fmt.Sprintf("Image size filter, one of %s", strings.Join(spec.Filters, "/")),
			"enum":        spec.Filters,
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   []string{"query"},
	}
}

func queryOnlySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The keyword to check",
			},
		},
		"required": []string{"query"},
	}
}
