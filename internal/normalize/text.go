package normalize

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	cveExpr   = regexp.MustCompile(`(?i)CVE-\d{4}-\d+`)
	tagExpr   = regexp.MustCompile(`<[^>]*>`)
	spaceExpr = regexp.MustCompile(`\s+`)
)

// ExtractCVE returns the first CVE identifier found in text, uppercased, or
// the empty string.
func ExtractCVE(text string) string {
	return strings.ToUpper(cveExpr.FindString(text))
}

// StripTags removes embedded markup and decodes HTML entities.
func StripTags(s string) string {
	return html.UnescapeString(tagExpr.ReplaceAllString(s, " "))
}

// CollapseWhitespace folds runs of whitespace into single spaces.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(spaceExpr.ReplaceAllString(s, " "))
}

// Truncate cuts s to max runes, appending an ellipsis marker when it cuts.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + "..."
}
