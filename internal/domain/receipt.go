package domain

import "time"

// Confidence levels for a shelf-life match. Confidence is a strict function
// of the match score: only scores >= 80 produce ConfidenceHigh.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// MatchResult is the outcome of resolving a receipt line against the
// shelf-life catalog. It is fully populated for every input; an
// unrecognized product comes back as category "other" with low confidence,
// never as an error.
type MatchResult struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Emoji      string `json:"emoji"`
	ShelfDays  int    `json:"shelfDays"`
	Confidence string `json:"confidence"`
	Source     string `json:"source"`
}

// NormalizedName is the output of receipt-line normalization.
// Brand is empty when no known brand abbreviation was detected.
type NormalizedName struct {
	Normalized string `json:"normalized"`
	Brand      string `json:"brand,omitempty"`
	IsNonFood  bool   `json:"isNonFood"`
}

// ReceiptLine is one candidate line handed over by the OCR collaborator.
type ReceiptLine struct {
	Text     string   `json:"text" binding:"required"`
	Quantity int      `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// ScannedItem is a classified grocery product extracted from a receipt line.
type ScannedItem struct {
	OriginalText string   `json:"originalText"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Emoji        string   `json:"emoji"`
	Confidence   string   `json:"confidence"`
	IsPerishable bool     `json:"isPerishable"`
	Quantity     int      `json:"quantity"`
	ShelfDays    int      `json:"shelfDays"`
	Price        *float64 `json:"price,omitempty"`
}

// ScanResult bundles the classified items of one receipt scan.
type ScanResult struct {
	ScanID    string        `json:"scanId"`
	RawLines  []string      `json:"rawLines"`
	Items     []ScannedItem `json:"items"`
	CreatedAt time.Time     `json:"createdAt"`
}

// CategoryInfo describes one product category and its fallback shelf life.
type CategoryInfo struct {
	Name      string `json:"name"`
	ShelfDays int    `json:"shelfDays"`
}
