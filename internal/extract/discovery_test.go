package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexFixture = `
<html><body>
<nav><a href="https://facebook.com/acn">Facebook</a>
<a href="https://twitter.com/share?rss=1">Condividi su Twitter</a>
<a href="/cookie-policy">Cookie policy</a></nav>
<a href="/feeds/advisory.xml">Feed avvisi</a>
<a href="https://esempio.org/rss">RSS esterno</a>
<a href="/feeds/advisory.xml">Feed avvisi (duplicato)</a>
<article>
  <h2><a href="/notizie/campagna">Nuova campagna malevola osservata in Italia</a></h2>
  <p>Descrizione sintetica della campagna osservata.</p>
</article>
<article>
  <h2><a href="/login">Accedi all'area riservata del portale</a></h2>
</article>
<article>
  <h2><a href="https://telegram.me/canale">Segui il canale Telegram ufficiale</a></h2>
</article>
</body></html>`

func TestDiscoverFeedURLs(t *testing.T) {
	t.Parallel()

	urls := DiscoverFeedURLs(indexFixture, "https://www.acn.gov.it")
	assert.Equal(t, []string{
		"https://www.acn.gov.it/feeds/advisory.xml",
		"https://esempio.org/rss",
	}, urls, "social and share links excluded, duplicates collapsed")
}

func TestDiscoverFeedURLsCap(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteString(`<a href="/feed-` + string(rune('a'+i)) + `.xml">feed</a>`)
	}
	urls := DiscoverFeedURLs(b.String(), "https://www.acn.gov.it")
	assert.Len(t, urls, MaxFeedCandidates)
}

func TestFallbackArticles(t *testing.T) {
	t.Parallel()

	items := FallbackArticles(indexFixture, "https://www.acn.gov.it", "https://www.acn.gov.it/portale/feed")
	require.Len(t, items, 1, "login and social blocks filtered out")

	item := items[0]
	assert.Equal(t, "Nuova campagna malevola osservata in Italia", item.Title)
	assert.Equal(t, "https://www.acn.gov.it/notizie/campagna", item.URL)
	assert.Equal(t, "Descrizione sintetica della campagna osservata.", item.Description)
}

func TestFallbackArticlesCap(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString(`<article><h2><a href="/n">Titolo sufficientemente lungo</a></h2></article>`)
	}
	items := FallbackArticles(b.String(), "https://www.acn.gov.it", "https://www.acn.gov.it/portale/feed")
	assert.Len(t, items, 8)
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, href, want string
	}{
		{"https://www.acn.gov.it", "/portale/nis", "https://www.acn.gov.it/portale/nis"},
		{"https://www.acn.gov.it", "https://esempio.org/x", "https://esempio.org/x"},
		{"https://www.acn.gov.it", "  ", ""},
		{"", "/relativo", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveURL(tt.base, tt.href), "base=%q href=%q", tt.base, tt.href)
	}
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://www.acn.gov.it", Origin("https://www.acn.gov.it/portale/nis?x=1"))
}
