package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/extract"
	"IntelFeed/internal/normalize"
)

const (
	cveMaxItems  = 12
	cveDescLimit = 200
)

// CVE reads the severity-filtered vulnerability feed and enriches each item
// with its CVE identifier and a severity.
type CVE struct {
	fetcher Fetcher
	feedURL string
	logger  *slog.Logger
}

var _ ItemSource = (*CVE)(nil)

// NewCVE wires the pipeline to its feed.
func NewCVE(fetcher Fetcher, feedURL string, logger *slog.Logger) *CVE {
	return &CVE{fetcher: fetcher, feedURL: feedURL, logger: logger}
}

// Name identifies the pipeline in logs and orchestration.
func (p *CVE) Name() string { return "cve" }

// Collect fetches, extracts and enriches the feed items.
func (p *CVE) Collect(ctx context.Context) []domain.FeedItem {
	body, err := p.fetcher.Get(ctx, p.feedURL)
	if err != nil {
		p.logger.Warn("vulnerability feed unreachable", "url", p.feedURL, "error", err)
		return nil
	}

	items := extract.RSSItems(body, extract.RSSOptions{MaxItems: cveMaxItems, DescLimit: cveDescLimit})
	for i := range items {
		items[i].Category = domain.CategoryCVE
		items[i].CVEIdentifier = normalize.ExtractCVE(items[i].Title)
		items[i].Severity = cveSeverity(items[i].Title + " " + items[i].Description)
	}

	p.logger.Debug("vulnerability items extracted", "count", len(items))
	return items
}

// cveSeverity is deliberately narrower than the shared classifier: the feed
// is already severity-filtered upstream, so anything without a stronger
// signal stays high.
func cveSeverity(text string) domain.Severity {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "critical"), strings.Contains(lower, "remote code execution"):
		return domain.SeverityCritical
	case strings.Contains(lower, "high"):
		return domain.SeverityHigh
	}
	return domain.SeverityHigh
}
