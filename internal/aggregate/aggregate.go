// Package aggregate fans the four source pipelines out concurrently, joins
// their results, and assembles the response envelope. Pipelines share no
// state and a failure in one never affects another.
package aggregate

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/pipeline"
)

// Deps wires the four pipelines into the orchestrator.
type Deps struct {
	NIS2   pipeline.ItemSource
	Threat pipeline.ItemSource
	CVE    pipeline.ItemSource
	EPSS   pipeline.PredictionSource
	Logger *slog.Logger
}

// Aggregator runs all pipelines per request and builds a fresh envelope each
// time; nothing is cached across calls.
type Aggregator struct {
	nis2   pipeline.ItemSource
	threat pipeline.ItemSource
	cve    pipeline.ItemSource
	epss   pipeline.PredictionSource
	logger *slog.Logger
}

// New constructs the orchestrator.
func New(deps Deps) *Aggregator {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		nis2:   deps.NIS2,
		threat: deps.Threat,
		cve:    deps.CVE,
		epss:   deps.EPSS,
		logger: logger,
	}
}

// Collect launches the four pipelines together and waits for all of them, a
// join rather than a race. Empty results are backfilled from each category's
// static dataset so the envelope always carries data.
func (a *Aggregator) Collect(ctx context.Context) domain.Envelope {
	var (
		wg                sync.WaitGroup
		nis2, threat, cve []domain.FeedItem
		epss              []domain.EPSSPrediction
	)

	wg.Add(4)
	go func() { defer wg.Done(); nis2 = a.collectItems(ctx, a.nis2) }()
	go func() { defer wg.Done(); threat = a.collectItems(ctx, a.threat) }()
	go func() { defer wg.Done(); cve = a.collectItems(ctx, a.cve) }()
	go func() { defer wg.Done(); epss = a.collectPredictions(ctx, a.epss) }()
	wg.Wait()

	return domain.Envelope{
		Success: true,
		Data: domain.FeedData{
			NIS2:   a.backfillItems("nis2", nis2, pipeline.DefaultNIS2Items),
			Threat: a.backfillItems("threat", threat, pipeline.DefaultThreatItems),
			CVE:    a.backfillItems("cve", cve, pipeline.DefaultCVEItems),
			EPSS:   a.backfillPredictions(epss),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// collectItems shields the orchestrator from a panicking pipeline; the
// pipelines are non-throwing by contract, this is the last containment layer.
func (a *Aggregator) collectItems(ctx context.Context, src pipeline.ItemSource) (items []domain.FeedItem) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("pipeline panicked", "pipeline", src.Name(), "panic", r)
			items = nil
		}
	}()
	items = dropInvalid(src.Collect(ctx))
	return items
}

func (a *Aggregator) collectPredictions(ctx context.Context, src pipeline.PredictionSource) (records []domain.EPSSPrediction) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("pipeline panicked", "pipeline", src.Name(), "panic", r)
			records = nil
		}
	}()
	records = src.Collect(ctx)
	return records
}

func (a *Aggregator) backfillItems(name string, items, defaults []domain.FeedItem) []domain.FeedItem {
	if len(items) > 0 {
		return items
	}
	a.logger.Info("serving static dataset", "pipeline", name)
	return slices.Clone(defaults)
}

func (a *Aggregator) backfillPredictions(records []domain.EPSSPrediction) []domain.EPSSPrediction {
	if len(records) > 0 {
		return records
	}
	a.logger.Info("serving static dataset", "pipeline", "epss")
	return slices.Clone(pipeline.DefaultEPSSPredictions)
}

func dropInvalid(items []domain.FeedItem) []domain.FeedItem {
	kept := items[:0]
	for _, item := range items {
		if item.Valid() {
			kept = append(kept, item)
		}
	}
	return kept
}
