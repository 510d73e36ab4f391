// Package pipeline hosts the four per-source collection strategies. Every
// pipeline is non-throwing: fetch and extraction failures surface as an
// empty result, and the aggregator backfills those from the static datasets.
package pipeline

import (
	"context"

	"IntelFeed/internal/domain"
)

// Fetcher is the one outbound dependency the pipelines share.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// ItemSource collects unified feed items for one category.
type ItemSource interface {
	Name() string
	Collect(ctx context.Context) []domain.FeedItem
}

// PredictionSource collects exploit-prediction records.
type PredictionSource interface {
	Name() string
	Collect(ctx context.Context) []domain.EPSSPrediction
}
