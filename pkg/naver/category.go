// Package naver wraps the Naver Open API search endpoints: the category
// registry, request building, the HTTP client, and LLM-friendly response
// formatting.
package naver

import "fmt"

// Category identifies one of the fixed Naver search verticals.
type Category string

const (
	CategoryBlog        Category = "blog"
	CategoryNews        Category = "news"
	CategoryBook        Category = "book"
	CategoryAdult       Category = "adult"
	CategoryEncyc       Category = "encyc"
	CategoryCafeArticle Category = "cafe_article"
	CategoryKin         Category = "kin"
	CategoryLocal       Category = "local"
	CategoryErrata      Category = "errata"
	CategoryShop        Category = "shop"
	CategoryDoc         Category = "doc"
	CategoryImage       Category = "image"
	CategoryWebkr       Category = "webkr"
)

// Categories lists every supported category in registration order.
var Categories = []Category{
	CategoryBlog,
	CategoryNews,
	CategoryBook,
	CategoryAdult,
	CategoryEncyc,
	CategoryCafeArticle,
	CategoryKin,
	CategoryLocal,
	CategoryErrata,
	CategoryShop,
	CategoryDoc,
	CategoryImage,
	CategoryWebkr,
}

// ErrUnknownCategory is returned for values outside the closed category set.
var ErrUnknownCategory = fmt.Errorf("unknown search category")

const (
	// DefaultDisplay is the per-page result count used when the caller omits one.
	DefaultDisplay = 10
	// MaxStart is the upstream limit on the start offset.
	MaxStart = 1000
)

// Spec describes how a category maps onto the upstream API.
type Spec struct {
	// Endpoint is the path under the search base URL, e.g. "blog.json".
	Endpoint string
	// Label is the human-readable category name used in formatted output.
	Label string
	// Sorts holds the allowed sort values. Empty means the category has no
	// sort parameter at all and any supplied value is ignored.
	Sorts []string
	// DefaultSort is sent when the caller omits sort. Empty for sortless
	// categories.
	DefaultSort string
	// Filters holds the allowed filter values (image only).
	Filters []string
	// DefaultFilter is sent when the caller omits filter.
	DefaultFilter string
	// MaxDisplay is the upstream per-page limit.
	MaxDisplay int
	// DefaultDisplay is used when the caller omits display.
	DefaultDisplay int
	// QueryOnly categories (adult, errata) take no pagination or sort.
	QueryOnly bool
	// FixedStart pins start to 1 regardless of page (local).
	FixedStart bool
}

var categorySpecs = map[Category]Spec{
	CategoryBlog: {
		Endpoint:       "blog.json",
		Label:          "Blog",
		Sorts:          []string{"sim", "date"},
		DefaultSort:    "sim",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryNews: {
		Endpoint:       "news.json",
		Label:          "News",
		Sorts:          []string{"sim", "date"},
		DefaultSort:    "sim",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryBook: {
		Endpoint:       "book.json",
		Label:          "Book",
		Sorts:          []string{"sim", "date"},
		DefaultSort:    "sim",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryAdult: {
		Endpoint:  "adult.json",
		Label:     "Adult Query",
		QueryOnly: true,
	},
	CategoryEncyc: {
		Endpoint:       "encyc.json",
		Label:          "Encyclopedia",
		Sorts:          []string{"sim", "date"},
		DefaultSort:    "sim",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryCafeArticle: {
		Endpoint:       "cafearticle.json",
		Label:          "Cafe Article",
		Sorts:          []string{"sim", "date"},
		DefaultSort:    "sim",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryKin: {
		Endpoint:       "kin.json",
		Label:          "KnowledgeiN",
		Sorts:          []string{"sim", "date", "point"},
		DefaultSort:    "sim",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryLocal: {
		Endpoint:       "local.json",
		Label:          "Local",
		Sorts:          []string{"random", "comment"},
		DefaultSort:    "random",
		MaxDisplay:     5,
		DefaultDisplay: 5,
		FixedStart:     true,
	},
	CategoryErrata: {
		Endpoint:  "errata.json",
		Label:     "Errata Correction",
		QueryOnly: true,
	},
	CategoryShop: {
		Endpoint:       "shop.json",
		Label:          "Shopping",
		Sorts:          []string{"sim", "date", "asc", "dsc"},
		DefaultSort:    "sim",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryDoc: {
		Endpoint:       "doc.json",
		Label:          "Academic Paper",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryImage: {
		Endpoint:       "image.json",
		Label:          "Image",
		Sorts:          []string{"sim", "date"},
		DefaultSort:    "sim",
		Filters:        []string{"all", "large", "medium", "small"},
		DefaultFilter:  "all",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
	CategoryWebkr: {
		Endpoint:       "webkr.json",
		Label:          "Web Document",
		MaxDisplay:     100,
		DefaultDisplay: DefaultDisplay,
	},
}

// Lookup returns the upstream mapping for a category.
func Lookup(category Category) (Spec, error) {
	spec, ok := categorySpecs[category]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return spec, nil
}

// HasSort reports whether the category accepts a sort parameter.
func (s Spec) HasSort() bool {
	return len(s.Sorts) > 0
}

// AllowsSort reports whether value is a valid sort for the category.
func (s Spec) AllowsSort(value string) bool {
	for _, sort := range s.Sorts {
		if sort == value {
			return true
		}
	}
	return false
}

// HasFilter reports whether the category accepts a filter parameter.
func (s Spec) HasFilter() bool {
	return len(s.Filters) > 0
}

// AllowsFilter reports whether value is a valid filter for the category.
func (s Spec) AllowsFilter(value string) bool {
	for _, filter := range s.Filters {
		if filter == value {
			return true
		}
	}
	return false
}
