package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Display sentinels. Consumers render them as-is; they are not parseable dates.
const (
	DateUnavailable = "Data non disponibile"
	DateRecent      = "Recente"
)

var italianMonths = []string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

var (
	italianDateExpr = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(gennaio|febbraio|marzo|aprile|maggio|giugno|luglio|agosto|settembre|ottobre|novembre|dicembre)\s+(\d{4})\b`)
	numericDateExpr = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
)

// Date parses a heterogeneous date fragment and reformats it for display
// ("2 settembre 2025"). Unparseable input yields DateUnavailable; nothing
// escapes this boundary.
func Date(raw string) string {
	t, ok := parseDate(raw)
	if !ok {
		return DateUnavailable
	}
	return FormatDate(t)
}

// FeedDate parses an RSS pubDate. Feed items always carry a date field, so a
// value that will not parse yields DateRecent rather than DateUnavailable.
func FeedDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if t, err := dateparse.ParseAny(raw); err == nil {
			return FormatDate(t)
		}
	}
	return DateRecent
}

// FormatDate renders a calendar date in the display locale.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), italianMonths[t.Month()-1], t.Year())
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if m := italianDateExpr.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		return makeDate(year, monthNumber(m[2]), day)
	}

	if m := numericDateExpr.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return makeDate(year, month, day)
	}

	if t, err := dateparse.ParseAny(raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func monthNumber(name string) int {
	name = strings.ToLower(name)
	for i, month := range italianMonths {
		if month == name {
			return i + 1
		}
	}
	return 0
}

// makeDate validates the day/month combination by round-tripping through
// time.Date, which rejects entries like 31 febbraio.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
