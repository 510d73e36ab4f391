package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/normalize"
)

const (
	// MaxFeedCandidates bounds how many discovered feed URLs are attempted.
	MaxFeedCandidates = 3

	maxFallbackArticles = 8
	fallbackDescLimit   = 150
)

// Social/share domains and navigation-chrome keywords that disqualify a
// discovered link or a scraped block.
var (
	excludedDomains = []string{
		"facebook.com", "twitter.com", "x.com", "linkedin.com", "instagram.com",
		"youtube.com", "whatsapp.com", "telegram.me", "t.me", "pinterest.",
	}
	excludedKeywords = []string{
		"share", "condividi", "cookie", "login", "accedi", "privacy",
		"newsletter", "mappa del sito", "torna su",
	}
)

// DiscoverFeedURLs scans an index page for anchors that look like feed URLs,
// resolved against baseURL and capped to MaxFeedCandidates.
func DiscoverFeedURLs(rawHTML, baseURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	var candidates []string
	seen := map[string]struct{}{}
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		link := ResolveURL(baseURL, href)
		if link == "" || !looksLikeFeedURL(link) || excluded(link) {
			return true
		}
		if _, ok := seen[link]; ok {
			return true
		}
		seen[link] = struct{}{}
		candidates = append(candidates, link)
		return len(candidates) < MaxFeedCandidates
	})
	return candidates
}

// FallbackArticles scrapes article blocks straight off the index page when
// no discovered feed yielded anything, filtering out social and navigation
// noise.
func FallbackArticles(rawHTML, baseURL, pageURL string) []domain.FeedItem {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	var items []domain.FeedItem
	doc.Find("article").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxFallbackArticles {
			return false
		}

		rawTitle, href := titleAndLink(s)
		title := normalize.CollapseWhitespace(rawTitle)
		if utf8.RuneCountInString(title) < MinTitleLength {
			return true
		}

		link := ResolveURL(baseURL, href)
		if link == "" {
			link = pageURL
		}
		if excluded(link) || excluded(title) {
			return true
		}

		desc := normalize.CollapseWhitespace(s.Find("p").First().Text())
		items = append(items, domain.FeedItem{
			Title:       title,
			Description: normalize.Truncate(desc, fallbackDescLimit),
			URL:         link,
			Date:        normalize.Date(newsDateExpr.FindString(s.Text())),
		})
		return true
	})
	return items
}

func looksLikeFeedURL(link string) bool {
	lower := strings.ToLower(link)
	return strings.Contains(lower, ".xml") ||
		strings.Contains(lower, "rss") ||
		strings.Contains(lower, "feed")
}

func excluded(text string) bool {
	lower := strings.ToLower(text)
	for _, d := range excludedDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	for _, k := range excludedKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
