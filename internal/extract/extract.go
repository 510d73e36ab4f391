// Package extract turns raw HTML/XML from uncontrolled external sources into
// unified feed records. Every extractor absorbs its own failures: a malformed
// block is skipped, an unparseable document yields an empty slice. Category
// and severity tagging belong to the calling pipeline, not to this package.
package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MinTitleLength rejects navigation fragments masquerading as headlines.
const MinTitleLength = 10

// ResolveURL makes href absolute against base; it returns "" for unusable input.
func ResolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return href
	}
	b, err := url.Parse(base)
	if err != nil || b.Host == "" {
		return ""
	}
	return b.ResolveReference(u).String()
}

// Origin reduces a page URL to its scheme://host base for resolving
// relative links.
func Origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}

// titleAndLink pulls a headline and its href from a block, trying a link
// wrapping a heading, then a heading wrapping a link, then a bare heading.
func titleAndLink(s *goquery.Selection) (string, string) {
	if h := s.Find("a h1, a h2, a h3, a h4").First(); h.Length() > 0 {
		href, _ := h.Closest("a").Attr("href")
		return h.Text(), href
	}
	if a := s.Find("h1 a, h2 a, h3 a, h4 a").First(); a.Length() > 0 {
		href, _ := a.Attr("href")
		return a.Text(), href
	}
	if h := s.Find("h1, h2, h3, h4").First(); h.Length() > 0 {
		return h.Text(), ""
	}
	return "", ""
}
