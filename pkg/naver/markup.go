package naver

import (
	"regexp"
	"strings"
)

var htmlTagRE = regexp.MustCompile(`<[^>]*>`)

// Upstream wraps matched keywords in <b> tags and escapes a handful of
// entities; everything else comes through as plain text.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// CleanText strips HTML markup and decodes common entities so results read as
// plain text.
func CleanText(text string) string {
	text = htmlTagRE.ReplaceAllString(text, "")
	return entityReplacer.Replace(text)
}
