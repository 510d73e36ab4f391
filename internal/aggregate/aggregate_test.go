package aggregate

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/pipeline"
)

type stubItems struct {
	name   string
	items  []domain.FeedItem
	panics bool
}

func (s stubItems) Name() string { return s.name }

func (s stubItems) Collect(context.Context) []domain.FeedItem {
	if s.panics {
		panic("boom")
	}
	return s.items
}

type stubPredictions struct {
	records []domain.EPSSPrediction
}

func (s stubPredictions) Name() string { return "epss" }

func (s stubPredictions) Collect(context.Context) []domain.EPSSPrediction {
	return s.records
}

func emptyDeps() Deps {
	return Deps{
		NIS2:   stubItems{name: "nis2"},
		Threat: stubItems{name: "threat"},
		CVE:    stubItems{name: "cve"},
		EPSS:   stubPredictions{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// With every upstream source down, each category is served from its static
// dataset and the request still succeeds.
func TestCollectFullOutage(t *testing.T) {
	t.Parallel()

	env := New(emptyDeps()).Collect(context.Background())

	assert.True(t, env.Success)
	assert.Equal(t, pipeline.DefaultNIS2Items, env.Data.NIS2)
	assert.Equal(t, pipeline.DefaultThreatItems, env.Data.Threat)
	assert.Equal(t, pipeline.DefaultCVEItems, env.Data.CVE)

	require.Len(t, env.Data.EPSS, 6)
	assert.Equal(t, "CVE-2016-10033", env.Data.EPSS[0].CVEIdentifier)
	assert.InDelta(t, 9.8, env.Data.EPSS[0].CVSSScore, 0.001)

	_, err := time.Parse(time.RFC3339, env.Timestamp)
	assert.NoError(t, err)
}

func TestCollectIdempotentUnderFixedSources(t *testing.T) {
	t.Parallel()

	deps := emptyDeps()
	deps.Threat = stubItems{name: "threat", items: []domain.FeedItem{{
		Title:    "Avviso fisso di prova",
		URL:      "https://example.org/a",
		Category: domain.CategoryThreat,
		Severity: domain.SeverityMedium,
	}}}
	agg := New(deps)

	first := agg.Collect(context.Background())
	second := agg.Collect(context.Background())
	first.Timestamp, second.Timestamp = "", ""
	assert.Equal(t, first, second)
}

func TestCollectContainsPanickingPipeline(t *testing.T) {
	t.Parallel()

	deps := emptyDeps()
	deps.CVE = stubItems{name: "cve", panics: true}
	env := New(deps).Collect(context.Background())

	assert.True(t, env.Success)
	assert.Equal(t, pipeline.DefaultCVEItems, env.Data.CVE)
	assert.Equal(t, pipeline.DefaultThreatItems, env.Data.Threat, "other pipelines unaffected")
}

func TestCollectDropsInvalidItems(t *testing.T) {
	t.Parallel()

	deps := emptyDeps()
	deps.NIS2 = stubItems{name: "nis2", items: []domain.FeedItem{
		{Title: "Valido e sufficientemente lungo", URL: "https://example.org/v", Category: domain.CategoryNIS2},
		{Title: "", URL: "https://example.org/senza-titolo", Category: domain.CategoryNIS2},
		{Title: "Senza collegamento", URL: "", Category: domain.CategoryNIS2},
	}}
	env := New(deps).Collect(context.Background())

	require.Len(t, env.Data.NIS2, 1)
	assert.Equal(t, "Valido e sufficientemente lungo", env.Data.NIS2[0].Title)
}

// A pipeline that yields only invalid items is treated as empty and
// backfilled.
func TestCollectBackfillsWhenAllItemsInvalid(t *testing.T) {
	t.Parallel()

	deps := emptyDeps()
	deps.NIS2 = stubItems{name: "nis2", items: []domain.FeedItem{{Title: "", URL: ""}}}
	env := New(deps).Collect(context.Background())

	assert.Equal(t, pipeline.DefaultNIS2Items, env.Data.NIS2)
}
