package extract

import (
	"regexp"
	"strconv"
	"strings"

	"IntelFeed/internal/domain"
	"IntelFeed/internal/normalize"
)

const (
	maxEPSSCards      = 12
	epssDetailBaseURL = "https://nvd.nist.gov/vuln/detail/"
)

// Field patterns applied inside one card chunk. A record is built only when
// every field matches and parses; partial cards are discarded whole.
var (
	epssCardBoundaryExpr = regexp.MustCompile(`(?i)<div[^>]*class="[^"]*card[^"]*"`)
	epssCVEExpr          = regexp.MustCompile(`(?i)<a[^>]*>\s*(CVE-\d{4}-\d+)\s*</a>`)
	epssVendorExpr       = regexp.MustCompile(`(?i)<[a-z][^>]*class="[^"]*vendor[^"]*"[^>]*>([^<]+)<`)
	epssPredictionExpr   = regexp.MustCompile(`(?i)Prediction\s*\+?\s*([0-9]+(?:\.[0-9]+)?)`)
	epssScoreExpr        = regexp.MustCompile(`(?i)<[a-z][^>]*class="[^"]*badge[^"]*"[^>]*>\s*([0-9]+(?:\.[0-9]+)?)\s*<`)
	epssSeverityExpr     = regexp.MustCompile(`(?i)<small[^>]*>\s*(critical|high|medium|low)\s*</small>`)
)

// EPSSCards parses the repeating card markup of the predictions page. The
// page is split on card boundaries so a malformed card can never borrow
// fields from its neighbor.
func EPSSCards(rawHTML string) []domain.EPSSPrediction {
	bounds := epssCardBoundaryExpr.FindAllStringIndex(rawHTML, -1)

	var records []domain.EPSSPrediction
	for i, b := range bounds {
		if len(records) >= maxEPSSCards {
			break
		}
		end := len(rawHTML)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		if record, ok := epssCard(rawHTML[b[0]:end]); ok {
			records = append(records, record)
		}
	}
	return records
}

func epssCard(chunk string) (domain.EPSSPrediction, bool) {
	cve := epssCVEExpr.FindStringSubmatch(chunk)
	vendor := epssVendorExpr.FindStringSubmatch(chunk)
	prediction := epssPredictionExpr.FindStringSubmatch(chunk)
	score := epssScoreExpr.FindStringSubmatch(chunk)
	severity := epssSeverityExpr.FindStringSubmatch(chunk)
	if cve == nil || vendor == nil || prediction == nil || score == nil || severity == nil {
		return domain.EPSSPrediction{}, false
	}

	percent, err := strconv.ParseFloat(prediction[1], 64)
	if err != nil || percent < 0 {
		return domain.EPSSPrediction{}, false
	}
	cvss, err := strconv.ParseFloat(score[1], 64)
	if err != nil || cvss < 0 || cvss > 10 {
		return domain.EPSSPrediction{}, false
	}

	id := strings.ToUpper(cve[1])
	return domain.EPSSPrediction{
		CVEIdentifier:     id,
		Vendor:            normalize.CollapseWhitespace(vendor[1]),
		PredictionPercent: percent,
		CVSSScore:         cvss,
		Severity:          strings.ToUpper(severity[1]),
		URL:               epssDetailBaseURL + id,
	}, true
}
