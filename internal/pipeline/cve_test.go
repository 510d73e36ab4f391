package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IntelFeed/internal/domain"
)

const cveFeedFixture = `<rss><channel>
<item><title>CVE-2025-8194: Critical RCE in Example Server</title><link>https://cvefeed.io/vuln/CVE-2025-8194</link><description>Unauthenticated attackers can run arbitrary commands.</description><pubDate>Tue, 10 Jun 2025 08:30:00 +0200</pubDate></item>
<item><title>Multiple vulnerabilities in Example Router firmware</title><link>https://cvefeed.io/vuln/router</link><description>Several issues were fixed.</description><pubDate>Tue, 10 Jun 2025 08:30:00 +0200</pubDate></item>
</channel></rss>`

func TestCVECollect(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{responses: map[string]string{
		"https://cvefeed.example/high.xml": cveFeedFixture,
	}}
	p := NewCVE(fetcher, "https://cvefeed.example/high.xml", discard())

	items := p.Collect(context.Background())
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, domain.CategoryCVE, first.Category)
	assert.Equal(t, "CVE-2025-8194", first.CVEIdentifier)
	assert.Equal(t, domain.SeverityCritical, first.Severity)

	second := items[1]
	assert.Empty(t, second.CVEIdentifier)
	assert.Equal(t, domain.SeverityHigh, second.Severity, "feed items default to high")
}

func TestCVECollectFeedDown(t *testing.T) {
	t.Parallel()

	p := NewCVE(&fakeFetcher{}, "https://cvefeed.example/high.xml", discard())
	assert.Empty(t, p.Collect(context.Background()))
}

func TestCVESeverityHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want domain.Severity
	}{
		{"critical overflow in parser", domain.SeverityCritical},
		{"unauthenticated remote code execution", domain.SeverityCritical},
		{"high severity path traversal", domain.SeverityHigh},
		{"memory disclosure issue", domain.SeverityHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cveSeverity(tt.text), "text=%q", tt.text)
	}
}
