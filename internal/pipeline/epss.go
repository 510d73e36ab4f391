package pipeline

import (
	"context"
	"log/slog"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/extract"
)

// EPSS parses the exploit-prediction card page. Of the four sources it is
// the one most coupled to its page's exact markup, which is why its static
// dataset is the most generous.
type EPSS struct {
	fetcher Fetcher
	pageURL string
	logger  *slog.Logger
}

var _ PredictionSource = (*EPSS)(nil)

// NewEPSS wires the pipeline to the predictions page.
func NewEPSS(fetcher Fetcher, pageURL string, logger *slog.Logger) *EPSS {
	return &EPSS{fetcher: fetcher, pageURL: pageURL, logger: logger}
}

// Name identifies the pipeline in logs and orchestration.
func (p *EPSS) Name() string { return "epss" }

// Collect fetches the page and extracts fully parsed prediction cards.
func (p *EPSS) Collect(ctx context.Context) []domain.EPSSPrediction {
	body, err := p.fetcher.Get(ctx, p.pageURL)
	if err != nil {
		p.logger.Warn("predictions page unreachable", "url", p.pageURL, "error", err)
		return nil
	}

	records := extract.EPSSCards(body)
	p.logger.Debug("prediction cards extracted", "count", len(records))
	return records
}
