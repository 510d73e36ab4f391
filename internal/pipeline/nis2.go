package pipeline

import (
	"context"
	"log/slog"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/extract"
)

// NIS2 scrapes the announcements listing page. Its items never carry a
// severity.
type NIS2 struct {
	fetcher Fetcher
	pageURL string
	baseURL string
	logger  *slog.Logger
}

var _ ItemSource = (*NIS2)(nil)

// NewNIS2 wires the pipeline to its listing page.
func NewNIS2(fetcher Fetcher, pageURL string, logger *slog.Logger) *NIS2 {
	return &NIS2{
		fetcher: fetcher,
		pageURL: pageURL,
		baseURL: extract.Origin(pageURL),
		logger:  logger,
	}
}

// Name identifies the pipeline in logs and orchestration.
func (p *NIS2) Name() string { return "nis2" }

// Collect fetches and extracts the announcement blocks.
func (p *NIS2) Collect(ctx context.Context) []domain.FeedItem {
	body, err := p.fetcher.Get(ctx, p.pageURL)
	if err != nil {
		p.logger.Warn("announcements page unreachable", "url", p.pageURL, "error", err)
		return nil
	}

	items := extract.NewsItems(body, p.baseURL, p.pageURL)
	for i := range items {
		items[i].Category = domain.CategoryNIS2
	}

	p.logger.Debug("announcements extracted", "count", len(items))
	return items
}
