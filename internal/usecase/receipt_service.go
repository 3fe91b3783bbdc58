package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shelfscan/backend/internal/domain"
)

// priceRegex extracts a best-effort price like "3.99" or "$3.99" from a line
var priceRegex = regexp.MustCompile(`\$?(\d+\.\d{2})`)

// foodSignals are words whose presence suggests a line describes a grocery
// product even when it matched nothing in the catalog.
var foodSignals = []string{
	"organic", "fresh", "frozen", "canned", "dried", "smoked",
	"roasted", "grilled", "baked", "fried", "steamed",
	"whole", "sliced", "diced", "chopped", "minced", "ground",
	"boneless", "skinless", "lean", "fat free", "low fat",
	"natural", "raw", "cooked", "ready to eat",
	"oz", "lb", "pack", "bag", "box", "can", "jar", "bottle",
	"ct", "count", "dozen", "bunch",
}

// brandSignals are store-brand prefixes as they appear at the start of a line
var brandSignals = []string{"gv ", "mp ", "eq ", "ol ", "sg ", "gg ", "ss "}

// ReceiptServiceConfig holds configuration for the receipt service
type ReceiptServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ReceiptService classifies OCR receipt lines into grocery items and stores
// scan results for later retrieval.
type ReceiptService struct {
	cache              domain.CacheRepository
	shelfLife          *ShelfLifeService
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewReceiptService creates a new receipt service with dependencies
func NewReceiptService(cache domain.CacheRepository, config ReceiptServiceConfig) *ReceiptService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ReceiptService{
		cache: cache,
		shelfLife: NewShelfLifeService(ShelfLifeConfig{
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ClassifyLines runs the full pipeline over a batch of OCR lines and stores
// the result under a fresh scan id. Lines are independent; junk, non-food,
// and unrecognizable lines are dropped, everything else becomes an item.
func (s *ReceiptService) ClassifyLines(ctx context.Context, lines []domain.ReceiptLine) (*domain.ScanResult, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	result := &domain.ScanResult{
		ScanID:    fmt.Sprintf("scan-%d", time.Now().UnixNano()),
		RawLines:  make([]string, 0, len(lines)),
		Items:     make([]domain.ScannedItem, 0, len(lines)),
		CreatedAt: time.Now(),
	}

	for _, line := range lines {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		result.RawLines = append(result.RawLines, text)

		item, ok := s.ClassifyLine(line)
		if !ok {
			continue
		}
		result.Items = append(result.Items, *item)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, scanCacheKey(result.ScanID), result, s.cacheTTL); err != nil {
			// Classification already succeeded; a failed store only breaks
			// later re-fetches, so log and move on.
			log.Printf("[SCAN] failed to store scan %s: %v", result.ScanID, err)
		}
	}

	return result, nil
}

// ClassifyLine classifies a single OCR line. The second return value is
// false when the line is junk, non-food, or does not look like a product.
func (s *ReceiptService) ClassifyLine(line domain.ReceiptLine) (*domain.ScannedItem, bool) {
	name := strings.TrimSpace(line.Text)
	if len([]rune(name)) < 3 {
		return nil, false
	}

	if IsJunkLine(name) {
		if s.enableDebugLogging {
			log.Printf("[SCAN] junk line dropped: %q", name)
		}
		return nil, false
	}

	normalized := NormalizeReceiptLine(name)
	if normalized.IsNonFood {
		if s.enableDebugLogging {
			log.Printf("[SCAN] non-food line dropped: %q", name)
		}
		return nil, false
	}

	// Two independent lookups: some lines match better normalized, others
	// raw. Keep whichever resolved with higher confidence.
	bestMatch := s.shelfLife.LookupProduct(normalized.Normalized)
	if bestMatch.Confidence != domain.ConfidenceHigh {
		if rawMatch := s.shelfLife.LookupProduct(name); rawMatch.Confidence == domain.ConfidenceHigh {
			bestMatch = rawMatch
		}
	}

	isKnown := bestMatch.Confidence == domain.ConfidenceHigh

	// Last-chance filter for unmatched lines the OCR backend mistakenly
	// returned as items.
	if !isKnown && !isLikelyProductLine(name) {
		return nil, false
	}

	quantity := line.Quantity
	if quantity < 1 {
		quantity = 1
	}

	price := line.Price
	if price == nil {
		price = extractPrice(name)
	}

	item := &domain.ScannedItem{
		OriginalText: name,
		Name:         displayName(name, normalized, bestMatch, isKnown),
		Category:     "other",
		Emoji:        "📦",
		Confidence:   domain.ConfidenceLow,
		IsPerishable: false,
		Quantity:     quantity,
		ShelfDays:    categoryDefaults["other"],
		Price:        price,
	}

	if isKnown {
		item.Category = bestMatch.Category
		item.Emoji = bestMatch.Emoji
		item.Confidence = domain.ConfidenceHigh
		item.IsPerishable = true
		item.ShelfDays = bestMatch.ShelfDays
	}

	return item, true
}

// GetScan retrieves a previously stored scan result by id.
func (s *ReceiptService) GetScan(ctx context.Context, scanID string) (*domain.ScanResult, error) {
	if scanID == "" {
		return nil, domain.ErrInvalidRequest
	}
	if s.cache == nil {
		return nil, domain.ErrCacheUnavailable
	}

	value, err := s.cache.Get(ctx, scanCacheKey(scanID))
	if err != nil {
		return nil, domain.ErrScanNotFound
	}

	result, ok := value.(*domain.ScanResult)
	if !ok {
		return nil, domain.ErrScanNotFound
	}
	return result, nil
}

func scanCacheKey(scanID string) string {
	return "scan:" + scanID
}

// displayName composes the item name shown to the user: brand plus catalog
// name when the product is known, brand plus normalized text otherwise.
func displayName(raw string, normalized domain.NormalizedName, match domain.MatchResult, isKnown bool) string {
	switch {
	case isKnown && normalized.Brand != "":
		return normalized.Brand + " " + match.Name
	case isKnown:
		return match.Name
	case normalized.Brand != "" && normalized.Normalized != "":
		return normalized.Brand + " " + normalized.Normalized
	case normalized.Normalized != "":
		return normalized.Normalized
	default:
		return raw
	}
}

// isLikelyProductLine is a lightweight heuristic for lines that did not
// resolve to a catalog entry: at least 3 letters, plus either a food-signal
// word, a store-brand prefix, or mostly-alphabetic content.
func isLikelyProductLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))

	letterCount := 0
	totalNonSpace := 0
	for _, r := range lower {
		if unicode.IsSpace(r) {
			continue
		}
		totalNonSpace++
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if letterCount < 3 {
		return false
	}

	words := 0
	for _, w := range strings.Fields(lower) {
		if len([]rune(w)) >= 2 {
			words++
		}
	}
	if words < 1 {
		return false
	}

	for _, signal := range foodSignals {
		if strings.Contains(lower, signal) {
			return true
		}
	}

	for _, prefix := range brandSignals {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	if totalNonSpace > 0 && float64(letterCount)/float64(totalNonSpace) > 0.7 && len([]rune(lower)) >= 4 {
		return true
	}

	return false
}

// extractPrice pulls the first price-looking token from a receipt line
func extractPrice(line string) *float64 {
	match := priceRegex.FindStringSubmatch(line)
	if match == nil {
		return nil
	}
	price, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	return &price
}
