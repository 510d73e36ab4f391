package normalize

import (
	"strings"

	"IntelFeed/internal/domain"
)

// severityKeywords maps keyword groups to levels, most urgent first. Stems
// like "critic" cover both the Italian and English spellings.
var severityKeywords = []struct {
	level domain.Severity
	words []string
}{
	{domain.SeverityCritical, []string{
		"critic", "zero-day", "0-day", "sfruttamento attivo", "actively exploited",
		"remote code execution", "esecuzione di codice remoto",
	}},
	{domain.SeverityHigh, []string{
		"high", "elevat", "grave", "ransomware", "exploit",
	}},
	{domain.SeverityMedium, []string{
		"medium", "medio", "media", "moderat", "phishing",
	}},
	{domain.SeverityLow, []string{
		"low", "bass", "minore", "informativ",
	}},
}

// ClassifySeverity scans text for severity keywords; the first matching group
// wins. def is the caller pipeline's default when nothing matches.
func ClassifySeverity(text string, def domain.Severity) domain.Severity {
	lower := strings.ToLower(text)
	for _, group := range severityKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.level
			}
		}
	}
	return def
}
