package naver

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatBlogRoundTrip(t *testing.T) {
	raw := []byte(`{
		"lastBuildDate": "Mon, 26 Sep 2025 10:45:33 +0900",
		"total": 12345,
		"start": 1,
		"display": 10,
		"items": [
			{
				"title": "<b>Go</b> concurrency patterns",
				"link": "https://blog.example.com/1",
				"description": "About <b>Go</b> &amp; channels",
				"bloggername": "gopher",
				"bloggerlink": "https://blog.example.com",
				"postdate": "20250925"
			},
			{
				"title": "Second post",
				"link": "https://blog.example.com/2",
				"description": "More",
				"bloggername": "ferris",
				"bloggerlink": "https://blog.example.com/f",
				"postdate": ""
			}
		]
	}`)

	text, err := Format(CategoryBlog, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Naver Blog search results (total 12,345 of 1~10):") {
		t.Fatalf("header missing or wrong:\n%s", text)
	}
	if got := strings.Count(text, "### Result"); got != 2 {
		t.Fatalf("expected 2 result blocks, got %d:\n%s", got, text)
	}
	if !strings.Contains(text, "### Result 1\n") || !strings.Contains(text, "### Result 2\n") {
		t.Fatalf("result blocks not numbered 1 and 2:\n%s", text)
	}
	if !strings.Contains(text, "Title(title): Go concurrency patterns") {
		t.Fatalf("bold tags not stripped:\n%s", text)
	}
	if !strings.Contains(text, "Description(description): About Go & channels") {
		t.Fatalf("entities not decoded:\n%s", text)
	}
	if !strings.Contains(text, "Blogger(bloggername): gopher") {
		t.Fatalf("blogger field missing:\n%s", text)
	}
	// Empty fields are skipped entirely.
	if strings.Contains(text, "Posted(postdate): \n") {
		t.Fatalf("empty postdate must be skipped:\n%s", text)
	}
}

func TestFormatFieldOrder(t *testing.T) {
	raw := []byte(`{
		"total": 1, "start": 1, "display": 1,
		"items": [{
			"postdate": "20250101",
			"title": "t",
			"bloggername": "b",
			"link": "l",
			"description": "d",
			"bloggerlink": "bl"
		}]
	}`)
	text, err := Format(CategoryBlog, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order := []string{
		"Title(title)", "Link(link)", "Description(description)",
		"Blogger(bloggername)", "Blogger Link(bloggerlink)", "Posted(postdate)",
	}
	last := -1
	for _, label := range order {
		idx := strings.Index(text, label)
		if idx < 0 {
			t.Fatalf("missing field %q:\n%s", label, text)
		}
		if idx < last {
			t.Fatalf("field %q out of order:\n%s", label, text)
		}
		last = idx
	}
}

func TestFormatEmptyItems(t *testing.T) {
	raw := []byte(`{"total": 0, "start": 1, "display": 0, "items": []}`)
	text, err := Format(CategoryNews, raw)
	if err != nil {
		t.Fatalf("empty result set is not an error: %v", err)
	}
	if !strings.Contains(text, "Naver News search results (total 0 of") {
		t.Fatalf("header missing:\n%s", text)
	}
	if strings.Contains(text, "### Result") {
		t.Fatalf("no result blocks expected:\n%s", text)
	}
}

func TestFormatShopItem(t *testing.T) {
	raw := []byte(`{
		"total": 1, "start": 1, "display": 1,
		"items": [{
			"title": "Mechanical keyboard",
			"link": "https://shopping.example.com/1",
			"lprice": "45000",
			"hprice": "99000",
			"mallName": "ExampleMall",
			"productId": "123456789",
			"brand": "Keychron"
		}]
	}`)
	text, err := Format(CategoryShop, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Lowest Price(lprice): 45000",
		"Mall(mallName): ExampleMall",
		"Product ID(productId): 123456789",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q:\n%s", want, text)
		}
	}
}

func TestFormatImageItem(t *testing.T) {
	raw := []byte(`{
		"total": 2, "start": 1, "display": 2,
		"items": [{
			"title": "cat",
			"link": "https://img.example.com/cat.jpg",
			"thumbnail": "https://img.example.com/cat_t.jpg",
			"sizeheight": "1080",
			"sizewidth": "1920"
		}]
	}`)
	text, err := Format(CategoryImage, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Height(sizeheight): 1080") || !strings.Contains(text, "Width(sizewidth): 1920") {
		t.Fatalf("image dimensions missing:\n%s", text)
	}
}

func TestFormatErrata(t *testing.T) {
	text, err := Format(CategoryErrata, []byte(`{"errata": "test"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "test") {
		t.Fatalf("corrected query missing:\n%s", text)
	}
	if strings.Contains(text, "### Result") || strings.Contains(text, "total") {
		t.Fatalf("errata output must be a single line:\n%s", text)
	}

	text, err = Format(CategoryErrata, []byte(`{"errata": ""}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "no errata") {
		t.Fatalf("empty correction output wrong:\n%s", text)
	}
}

func TestFormatAdult(t *testing.T) {
	text, err := Format(CategoryAdult, []byte(`{"adult": "1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "adult search term") {
		t.Fatalf("adult classification missing:\n%s", text)
	}

	for _, code := range []string{"0", "2", ""} {
		text, err = Format(CategoryAdult, []byte(`{"adult": "`+code+`"}`))
		if err != nil {
			t.Fatalf("code %q: unexpected error: %v", code, err)
		}
		if !strings.Contains(text, "normal search term") {
			t.Fatalf("code %q must map to normal:\n%s", code, text)
		}
	}
}

func TestFormatMalformedPayloads(t *testing.T) {
	cases := map[string]string{
		"missing total":   `{"start": 1, "display": 10, "items": []}`,
		"missing start":   `{"total": 1, "display": 10, "items": []}`,
		"missing display": `{"total": 1, "start": 1, "items": []}`,
		"missing items":   `{"total": 1, "start": 1, "display": 10}`,
		"total not int":   `{"total": "many", "start": 1, "display": 10, "items": []}`,
		"items not array": `{"total": 1, "start": 1, "display": 10, "items": {}}`,
		"not json":        `<html>err</html>`,
	}
	for name, payload := range cases {
		_, err := Format(CategoryBlog, []byte(payload))
		var malformed *MalformedResponseError
		if !errors.As(err, &malformed) {
			t.Fatalf("%s: expected *MalformedResponseError, got %v", name, err)
		}
	}

	_, err := Format(CategoryAdult, []byte(`{}`))
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("adult missing code: expected *MalformedResponseError, got %v", err)
	}
}

func TestFormatUnknownCategory(t *testing.T) {
	if _, err := Format(Category("podcast"), []byte(`{}`)); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCleanText(t *testing.T) {
	cases := map[string]string{
		"<b>bold</b> text":       "bold text",
		"a &amp; b":              "a & b",
		"&lt;tag&gt;":            "<tag>",
		"&quot;quoted&quot;":     `"quoted"`,
		"plain":                  "plain",
		"<a href=\"x\">link</a>": "link",
		"nb&nbsp;sp":             "nb sp",
	}
	for in, want := range cases {
		if got := CleanText(in); got != want {
			t.Fatalf("CleanText(%q) = %q, want %q", in, got, want)
		}
	}
}
