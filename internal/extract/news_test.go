package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IntelFeed/internal/normalize"
)

const newsFixture = `
<html><body>
<article>
  <h2><a href="/notizie/direttiva-aggiornamento">Aggiornamento sulla direttiva europea</a></h2>
  <span class="data">12 marzo 2024</span>
  <p>Le organizzazioni interessate devono adeguare i propri processi di gestione degli incidenti e predisporre le notifiche verso le autorita' competenti entro le scadenze previste dalla normativa di recepimento.</p>
</article>
<article>
  <h2><a href="/menu">Menu</a></h2>
</article>
<div class="news-card">
  <a href="https://www.acn.gov.it/portale/linee-guida"><h3>Nuove linee guida per i soggetti essenziali</h3></a>
</div>
</body></html>`

func TestNewsItems(t *testing.T) {
	t.Parallel()

	items := NewsItems(newsFixture, "https://www.acn.gov.it", "https://www.acn.gov.it/portale/nis")
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Aggiornamento sulla direttiva europea", first.Title)
	assert.Equal(t, "https://www.acn.gov.it/notizie/direttiva-aggiornamento", first.URL)
	assert.Equal(t, "12 marzo 2024", first.Date)
	assert.True(t, strings.HasSuffix(first.Description, "..."), "long description must be truncated")
	assert.LessOrEqual(t, utf8.RuneCountInString(first.Description), 153)

	second := items[1]
	assert.Equal(t, "Nuove linee guida per i soggetti essenziali", second.Title)
	assert.Equal(t, "https://www.acn.gov.it/portale/linee-guida", second.URL)
	assert.Equal(t, normalize.DateUnavailable, second.Date)
	assert.NotEmpty(t, second.Description, "missing paragraph gets the generic description")
}

func TestNewsItemsBlockWithoutLink(t *testing.T) {
	t.Parallel()

	html := `<article><h2>Comunicazione generale del portale</h2><p>Breve nota.</p></article>`
	items := NewsItems(html, "https://www.acn.gov.it", "https://www.acn.gov.it/portale/nis")
	require.Len(t, items, 1)
	assert.Equal(t, "https://www.acn.gov.it/portale/nis", items[0].URL)
}

func TestNewsItemsCapsBlocks(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString(`<article><h2><a href="/n">Titolo sufficientemente lungo</a></h2></article>`)
	}
	items := NewsItems(b.String(), "https://www.acn.gov.it", "https://www.acn.gov.it/portale/nis")
	assert.LessOrEqual(t, len(items), 10)
}

func TestNewsItemsUnparseableHTML(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewsItems("", "https://www.acn.gov.it", "https://www.acn.gov.it/portale/nis"))
}
