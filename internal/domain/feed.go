package domain

// Category tags a FeedItem with the pipeline that produced it.
type Category string

const (
	CategoryNIS2   Category = "nis2"
	CategoryThreat Category = "threat"
	CategoryCVE    Category = "cve"
)

// Severity levels ordered from most to least urgent. NIS2 items carry none.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// FeedItem is the unified article/alert representation shared by the NIS2,
// threat and CVE pipelines.
type FeedItem struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	Date          string   `json:"date"`
	Category      Category `json:"category"`
	Severity      Severity `json:"severity,omitempty"`
	CVEIdentifier string   `json:"cveIdentifier,omitempty"`
}

// Valid reports whether the item satisfies the output contract; items that
// fail it are dropped, never surfaced with placeholder content.
func (i FeedItem) Valid() bool {
	return i.Title != "" && i.URL != ""
}

// EPSSPrediction is one fully parsed exploit-prediction card. Records are
// only constructed when every field parsed; there are no partial records.
type EPSSPrediction struct {
	CVEIdentifier     string  `json:"cveIdentifier"`
	Vendor            string  `json:"vendor"`
	PredictionPercent float64 `json:"predictionPercent"`
	CVSSScore         float64 `json:"cvssScore"`
	Severity          string  `json:"severity"`
	URL               string  `json:"url"`
}

// FeedData groups the four per-category collections of a response.
type FeedData struct {
	NIS2   []FeedItem       `json:"nis2"`
	Threat []FeedItem       `json:"threat"`
	CVE    []FeedItem       `json:"cve"`
	EPSS   []EPSSPrediction `json:"epss"`
}

// Envelope is the aggregated response built fresh per request and never
// mutated after construction.
type Envelope struct {
	Success   bool     `json:"success"`
	Data      FeedData `json:"data"`
	Timestamp string   `json:"timestamp"`
}
