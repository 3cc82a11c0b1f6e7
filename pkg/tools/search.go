package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.mau.fi/util/ptr"

	"github.com/jikime/py-mcp-naver-search/pkg/naver"
)

// Client is the slice of the Naver API client the tools need.
type Client interface {
	Fetch(ctx context.Context, req naver.SearchRequest) ([]byte, error)
}

type toolMeta struct {
	Name        string
	Description string
}

var toolMetas = map[naver.Category]toolMeta{
	naver.CategoryBlog: {
		Name:        "search_blog",
		Description: "Searches for blogs on Naver using the given keyword. The page parameter allows for page navigation and sort='sim'/'date' is supported.",
	},
	naver.CategoryNews: {
		Name:        "search_news",
		Description: "Searches for news on Naver using the given keyword. The page parameter allows for page navigation and sort='sim'/'date' is supported.",
	},
	naver.CategoryBook: {
		Name:        "search_book",
		Description: "Searches for book information on Naver using the given keyword. The page parameter allows for page navigation.",
	},
	naver.CategoryAdult: {
		Name:        "check_adult_query",
		Description: "Determines if the input query is an adult search term.",
	},
	naver.CategoryEncyc: {
		Name:        "search_encyclopedia",
		Description: "Searches for encyclopedia entries on Naver using the given keyword. The page parameter allows for page navigation.",
	},
	naver.CategoryCafeArticle: {
		Name:        "search_cafe_article",
		Description: "Searches for cafe articles on Naver using the given keyword. The page parameter allows for page navigation and sort='sim'/'date' is supported.",
	},
	naver.CategoryKin: {
		Name:        "search_kin",
		Description: "Searches for KnowledgeiN Q&A on Naver using the given keyword. The page parameter allows for page navigation and sort='sim'/'date'/'point' is supported.",
	},
	naver.CategoryLocal: {
		Name:        "search_local",
		Description: "Searches for local business information using the given keyword. Display is capped at 5 and results do not paginate; sort='random'/'comment' is supported.",
	},
	naver.CategoryErrata: {
		Name:        "correct_errata",
		Description: "Corrects Korean/English keyboard layout typos in the given query.",
	},
	naver.CategoryShop: {
		Name:        "search_shop",
		Description: "Searches for shopping products on Naver using the given keyword. The page parameter allows for page navigation and sort='sim'/'date'/'asc'/'dsc' is supported.",
	},
	naver.CategoryDoc: {
		Name:        "search_doc",
		Description: "Searches for academic papers and reports using the given keyword. The page parameter allows for page navigation.",
	},
	naver.CategoryImage: {
		Name:        "search_image",
		Description: "Searches for images using the given keyword. The page parameter allows for page navigation; sort='sim'/'date' and filter='all'/'large'/'medium'/'small' are supported.",
	},
	naver.CategoryWebkr: {
		Name:        "search_webkr",
		Description: "Searches for web documents using the given keyword. The page parameter allows for page navigation.",
	},
}

// All builds the full tool set against the given client, one tool per
// category, in registry order.
func All(client Client) []*Tool {
	out := make([]*Tool, 0, len(naver.Categories))
	for _, category := range naver.Categories {
		out = append(out, newCategoryTool(client, category))
	}
	return out
}

func newCategoryTool(client Client, category naver.Category) *Tool {
	spec, err := naver.Lookup(category)
	if err != nil {
		// Categories and the spec table are both package constants; a miss
		// here is a programming error.
		panic(err)
	}
	meta := toolMetas[category]

	schema := queryOnlySchema()
	if !spec.QueryOnly {
		schema = searchSchema(spec)
	}

	return &Tool{
		Tool: mcp.Tool{
			Name:        meta.Name,
			Description: meta.Description,
			Annotations: &mcp.ToolAnnotations{
				Title:         "Naver " + spec.Label + " Search",
				ReadOnlyHint:  true,
				OpenWorldHint: ptr.Ptr(true),
			},
			InputSchema: schema,
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return executeSearch(ctx, client, category, spec, meta.Name, args)
		},
	}
}

func executeSearch(ctx context.Context, client Client, category naver.Category, spec naver.Spec, toolName string, args map[string]any) (*Result, error) {
	query, err := ReadString(args, "query", true)
	if err != nil {
		return ErrorResult(toolName, err.Error()), nil
	}

	req := naver.SearchRequest{Category: category, Query: query}
	if !spec.QueryOnly {
		display, err := ReadIntDefault(args, "display", spec.DefaultDisplay)
		if err != nil {
			return ErrorResult(toolName, err.Error()), nil
		}
		// An explicit 0 must be rejected here: the builder treats a zero
		// value as "use the category default".
		if display == 0 {
			paramErr := &naver.ParamError{
				Name:   "display",
				Reason: fmt.Sprintf("must be between 1 and %d, got 0", spec.MaxDisplay),
			}
			return ErrorResult(toolName, paramErr.Error()), nil
		}
		page, err := ReadIntDefault(args, "page", 1)
		if err != nil {
			return ErrorResult(toolName, err.Error()), nil
		}
		if page == 0 {
			paramErr := &naver.ParamError{Name: "page", Reason: "must be at least 1, got 0"}
			return ErrorResult(toolName, paramErr.Error()), nil
		}
		req.Display = display
		req.Page = page
		req.Sort = ReadStringDefault(args, "sort", "")
		req.Filter = ReadStringDefault(args, "filter", "")
	}

	raw, err := client.Fetch(ctx, req)
	if err != nil {
		return ErrorResult(toolName, err.Error()), nil
	}
	text, err := naver.Format(category, raw)
	if err != nil {
		return ErrorResult(toolName, err.Error()), nil
	}
	return TextResult(text), nil
}
