package seo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText strips markup from an HTML fragment and collapses whitespace.
// A real parser is used rather than a regex so entities decode correctly and
// truncation never lands mid-entity.
func ExtractText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		// The html parser is lenient; this is effectively unreachable for
		// string input, but fall back to the raw text rather than dropping it.
		return strings.Join(strings.Fields(fragment), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
