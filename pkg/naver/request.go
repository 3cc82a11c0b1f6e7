package naver

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SearchRequest is a normalized request against one search category.
type SearchRequest struct {
	Category Category
	Query    string
	Display  int
	Page     int
	Sort     string
	// Filter is the image size filter, image category only.
	Filter string
}

// Start computes the 1-based upstream offset for a page, capped at the
// upstream maximum.
func Start(page, display int) int {
	if page < 1 {
		page = 1
	}
	start := (page-1)*display + 1
	if start > MaxStart {
		start = MaxStart
	}
	return start
}

// BuildRequest validates req against the category registry and constructs the
// upstream GET request. It performs no I/O and never logs the credentials it
// attaches.
func BuildRequest(cfg *Config, req SearchRequest) (*http.Request, error) {
	spec, err := Lookup(req.Category)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, &ParamError{Name: "query", Reason: "must not be empty"}
	}

	values := url.Values{}
	values.Set("query", query)

	if !spec.QueryOnly {
		display := req.Display
		if display == 0 {
			display = spec.DefaultDisplay
		}
		if display < 1 || display > spec.MaxDisplay {
			return nil, &ParamError{
				Name:   "display",
				Reason: fmt.Sprintf("must be between 1 and %d, got %d", spec.MaxDisplay, display),
			}
		}

		page := req.Page
		if page == 0 {
			page = 1
		}
		if page < 1 {
			return nil, &ParamError{Name: "page", Reason: fmt.Sprintf("must be at least 1, got %d", page)}
		}

		start := Start(page, display)
		if spec.FixedStart {
			start = 1
		}
		values.Set("display", strconv.Itoa(display))
		values.Set("start", strconv.Itoa(start))

		if spec.HasSort() {
			sort := req.Sort
			if sort == "" {
				sort = spec.DefaultSort
			}
			if !spec.AllowsSort(sort) {
				return nil, &ParamError{
					Name:   "sort",
					Reason: fmt.Sprintf("must be one of %s, got %q", strings.Join(spec.Sorts, "/"), sort),
				}
			}
			values.Set("sort", sort)
		}

		if spec.HasFilter() {
			filter := req.Filter
			if filter == "" {
				filter = spec.DefaultFilter
			}
			if !spec.AllowsFilter(filter) {
				return nil, &ParamError{
					Name:   "filter",
					Reason: fmt.Sprintf("must be one of %s, got %q", strings.Join(spec.Filters, "/"), filter),
				}
			}
			values.Set("filter", filter)
		}
	}

	endpoint := strings.TrimRight(cfg.BaseURL, "/") + "/" + spec.Endpoint
	httpReq, err := http.NewRequest(http.MethodGet, endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Naver-Client-Id", cfg.ClientID)
	httpReq.Header.Set("X-Naver-Client-Secret", cfg.ClientSecret)
	return httpReq, nil
}
