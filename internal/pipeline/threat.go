package pipeline

import (
	"context"
	"log/slog"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/extract"
	"IntelFeed/internal/normalize"
)

const (
	threatMaxItems   = 8
	threatDescLimit  = 150
	minDiscovered    = 5
	defaultThreatSev = domain.SeverityMedium
)

// Threat reads the primary advisory RSS feed and, when that yields nothing,
// walks a cascading fallback: discover feed URLs on the index page, try each
// as an RSS source, and finally scrape article blocks off the index itself.
type Threat struct {
	fetcher  Fetcher
	feedURL  string
	indexURL string
	logger   *slog.Logger
}

var _ ItemSource = (*Threat)(nil)

// NewThreat wires the pipeline to its primary feed and fallback index page.
func NewThreat(fetcher Fetcher, feedURL, indexURL string, logger *slog.Logger) *Threat {
	return &Threat{
		fetcher:  fetcher,
		feedURL:  feedURL,
		indexURL: indexURL,
		logger:   logger,
	}
}

// Name identifies the pipeline in logs and orchestration.
func (p *Threat) Name() string { return "threat" }

// Collect runs the primary feed first, then the fallback chain.
func (p *Threat) Collect(ctx context.Context) []domain.FeedItem {
	opts := extract.RSSOptions{MaxItems: threatMaxItems, DescLimit: threatDescLimit}

	if body, err := p.fetcher.Get(ctx, p.feedURL); err == nil {
		if items := extract.RSSItems(body, opts); len(items) > 0 {
			return p.finish(items)
		}
	} else {
		p.logger.Warn("primary advisory feed unreachable", "url", p.feedURL, "error", err)
	}

	return p.finish(p.discover(ctx, opts))
}

func (p *Threat) discover(ctx context.Context, opts extract.RSSOptions) []domain.FeedItem {
	body, err := p.fetcher.Get(ctx, p.indexURL)
	if err != nil {
		p.logger.Warn("feed index unreachable", "url", p.indexURL, "error", err)
		return nil
	}
	base := extract.Origin(p.indexURL)

	var collected []domain.FeedItem
	for _, feedURL := range extract.DiscoverFeedURLs(body, base) {
		raw, err := p.fetcher.Get(ctx, feedURL)
		if err != nil {
			p.logger.Debug("discovered feed unreachable", "url", feedURL, "error", err)
			continue
		}
		collected = append(collected, extract.RSSItems(raw, opts)...)
		if len(collected) >= minDiscovered {
			break
		}
	}
	if len(collected) > 0 {
		p.logger.Debug("items from discovered feeds", "count", len(collected))
		return collected
	}

	// Last resort: scrape the index page itself.
	return extract.FallbackArticles(body, base, p.indexURL)
}

func (p *Threat) finish(items []domain.FeedItem) []domain.FeedItem {
	for i := range items {
		items[i].Category = domain.CategoryThreat
		items[i].Severity = normalize.ClassifySeverity(
			items[i].Title+" "+items[i].Description, defaultThreatSev)
	}
	return items
}
