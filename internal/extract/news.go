package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/normalize"
)

const (
	maxNewsBlocks    = 10
	newsDescLimit    = 150
	genericNewsDesc  = "Aggiornamento dal portale ACN sulla direttiva NIS2 e sugli adempimenti previsti."
	blockClassNeedle = "news card item box notizia comunicat"
)

var newsDateExpr = regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:gennaio|febbraio|marzo|aprile|maggio|giugno|luglio|agosto|settembre|ottobre|novembre|dicembre)\s+\d{4}\b|\b\d{1,2}[/-]\d{1,2}[/-]\d{4}\b`)

var blockClassKeywords = strings.Fields(blockClassNeedle)

// NewsItems extracts repeated announcement blocks from an HTML listing page.
// baseURL anchors relative links; pageURL stands in when a block has no link
// of its own.
func NewsItems(rawHTML, baseURL, pageURL string) []domain.FeedItem {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	var blocks []*goquery.Selection
	doc.Find("article").Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, s)
	})
	doc.Find("div[class]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		if hasBlockClass(class) {
			blocks = append(blocks, s)
		}
	})
	if len(blocks) > maxNewsBlocks {
		blocks = blocks[:maxNewsBlocks]
	}

	items := make([]domain.FeedItem, 0, len(blocks))
	for _, block := range blocks {
		if item, ok := newsItemFromBlock(block, baseURL, pageURL); ok {
			items = append(items, item)
		}
	}
	return items
}

func newsItemFromBlock(s *goquery.Selection, baseURL, pageURL string) (domain.FeedItem, bool) {
	rawTitle, href := titleAndLink(s)
	title := normalize.CollapseWhitespace(rawTitle)
	if utf8.RuneCountInString(title) < MinTitleLength {
		return domain.FeedItem{}, false
	}

	link := ResolveURL(baseURL, href)
	if link == "" {
		link = pageURL
	}

	desc := normalize.CollapseWhitespace(s.Find("p").First().Text())
	if desc == "" {
		desc = genericNewsDesc
	} else {
		desc = normalize.Truncate(desc, newsDescLimit)
	}

	return domain.FeedItem{
		Title:       title,
		Description: desc,
		URL:         link,
		Date:        normalize.Date(newsDateExpr.FindString(s.Text())),
	}, true
}

func hasBlockClass(class string) bool {
	lower := strings.ToLower(class)
	for _, keyword := range blockClassKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
