package extract

import (
	"encoding/xml"
	"strings"

	"golang.org/x/net/html/charset"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/normalize"
)

// RSSOptions bound per-source work and response size.
type RSSOptions struct {
	MaxItems  int
	DescLimit int
}

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
	// RDF-style feeds keep items beside the channel.
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	Date        string `xml:"date"`
}

// RSSItems decodes a feed document into unified items. Titles are mandatory;
// items without one (or without a link) are skipped. CDATA wrapping and
// non-UTF-8 charsets are tolerated.
func RSSItems(rawXML string, opts RSSOptions) []domain.FeedItem {
	dec := xml.NewDecoder(strings.NewReader(rawXML))
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = false

	var doc rssDocument
	if err := dec.Decode(&doc); err != nil {
		return nil
	}

	entries := doc.Channel.Items
	if len(entries) == 0 {
		entries = doc.Items
	}
	if opts.MaxItems > 0 && len(entries) > opts.MaxItems {
		entries = entries[:opts.MaxItems]
	}

	items := make([]domain.FeedItem, 0, len(entries))
	for _, entry := range entries {
		title := normalize.CollapseWhitespace(normalize.StripTags(entry.Title))
		link := strings.TrimSpace(entry.Link)
		if title == "" || link == "" {
			continue
		}

		desc := normalize.CollapseWhitespace(normalize.StripTags(entry.Description))
		pubDate := entry.PubDate
		if pubDate == "" {
			pubDate = entry.Date
		}

		items = append(items, domain.FeedItem{
			Title:       title,
			Description: normalize.Truncate(desc, opts.DescLimit),
			URL:         link,
			Date:        normalize.FeedDate(pubDate),
		})
	}
	return items
}
