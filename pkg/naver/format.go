package naver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AdultCode is the upstream classification value meaning "adult search term".
// Every other value maps to a normal query. Pinned against recorded fixtures
// of the adult.json endpoint.
const AdultCode = "1"

// field pairs an upstream item key with the human label used in output.
type field struct {
	Key   string
	Label string
}

// itemFields fixes the rendered field order per category. Downstream prompts
// may parse these labels, so order and spelling must stay stable.
var itemFields = map[Category][]field{
	CategoryBlog: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
		{"bloggername", "Blogger"}, {"bloggerlink", "Blogger Link"}, {"postdate", "Posted"},
	},
	CategoryNews: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
		{"originallink", "Original Link"}, {"pubDate", "Published"},
	},
	CategoryBook: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
		{"image", "Image"}, {"author", "Author"}, {"price", "Price"},
		{"discount", "Discount"}, {"publisher", "Publisher"},
		{"pubdate", "Published"}, {"isbn", "ISBN"},
	},
	CategoryEncyc: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
		{"thumbnail", "Thumbnail"},
	},
	CategoryCafeArticle: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
		{"cafename", "Cafe"}, {"cafeurl", "Cafe Link"},
	},
	CategoryKin: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
	},
	CategoryLocal: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
		{"category", "Category"}, {"telephone", "Telephone"}, {"address", "Address"},
		{"roadAddress", "Road Address"}, {"mapx", "Map X"}, {"mapy", "Map Y"},
	},
	CategoryShop: {
		{"title", "Title"}, {"link", "Link"}, {"image", "Image"},
		{"lprice", "Lowest Price"}, {"hprice", "Highest Price"},
		{"mallName", "Mall"}, {"productId", "Product ID"}, {"productType", "Product Type"},
		{"brand", "Brand"}, {"maker", "Maker"},
		{"category1", "Category 1"}, {"category2", "Category 2"},
		{"category3", "Category 3"}, {"category4", "Category 4"},
	},
	CategoryDoc: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
	},
	CategoryImage: {
		{"title", "Title"}, {"link", "Link"}, {"thumbnail", "Thumbnail"},
		{"sizeheight", "Height"}, {"sizewidth", "Width"},
	},
	CategoryWebkr: {
		{"title", "Title"}, {"link", "Link"}, {"description", "Description"},
	},
}

var headerPrinter = message.NewPrinter(language.English)

// Format renders the raw upstream payload of a category as structured text
// for LLM consumption.
func Format(category Category, raw []byte) (string, error) {
	spec, err := Lookup(category)
	if err != nil {
		return "", err
	}
	switch category {
	case CategoryAdult:
		return formatAdult(spec, raw)
	case CategoryErrata:
		return formatErrata(spec, raw)
	default:
		return formatSearch(category, spec, raw)
	}
}

func formatSearch(category Category, spec Spec, raw []byte) (string, error) {
	var envelope searchEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", &MalformedResponseError{Reason: err.Error()}
	}
	switch {
	case envelope.Total == nil:
		return "", &MalformedResponseError{Reason: "missing total"}
	case envelope.Start == nil:
		return "", &MalformedResponseError{Reason: "missing start"}
	case envelope.Display == nil:
		return "", &MalformedResponseError{Reason: "missing display"}
	case envelope.Items == nil:
		return "", &MalformedResponseError{Reason: "missing items"}
	}

	var items []map[string]any
	if err := json.Unmarshal(envelope.Items, &items); err != nil {
		return "", &MalformedResponseError{Reason: fmt.Sprintf("items is not an array: %v", err)}
	}

	var b strings.Builder
	b.WriteString(headerPrinter.Sprintf("Naver %s search results (total %d of %d~%d):",
		spec.Label, *envelope.Total, *envelope.Start, *envelope.Start+*envelope.Display-1))
	b.WriteString("\n")

	fields := itemFields[category]
	for i, item := range items {
		fmt.Fprintf(&b, "\n### Result %d\n", i+1)
		for _, f := range fields {
			value := fieldValue(item, f.Key)
			if value == "" {
				continue
			}
			fmt.Fprintf(&b, "%s(%s): %s\n", f.Label, f.Key, CleanText(value))
		}
	}
	return b.String(), nil
}

func formatAdult(spec Spec, raw []byte) (string, error) {
	var envelope adultEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", &MalformedResponseError{Reason: err.Error()}
	}
	if envelope.Adult == nil {
		return "", &MalformedResponseError{Reason: "missing adult"}
	}
	if *envelope.Adult == AdultCode {
		return fmt.Sprintf("Naver %s check result: the query is classified as an adult search term", spec.Label), nil
	}
	return fmt.Sprintf("Naver %s check result: the query is a normal search term", spec.Label), nil
}

func formatErrata(spec Spec, raw []byte) (string, error) {
	var envelope errataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", &MalformedResponseError{Reason: err.Error()}
	}
	if envelope.Errata == nil {
		return "", &MalformedResponseError{Reason: "missing errata"}
	}
	if *envelope.Errata == "" {
		return fmt.Sprintf("Naver %s check result: no errata found", spec.Label), nil
	}
	return fmt.Sprintf("Naver %s check result: %s", spec.Label, CleanText(*envelope.Errata)), nil
}

// fieldValue extracts an item field as text. Upstream emits all item fields
// as strings, but numbers are tolerated.
func fieldValue(item map[string]any, key string) string {
	switch v := item[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
