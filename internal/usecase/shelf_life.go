package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/shelfscan/backend/internal/domain"
)

// matchNormalizeRegex collapses runs of non-alphanumeric characters; applied
// identically to keywords and candidates before comparison.
var matchNormalizeRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Score tiers and confidence thresholds. These constants are calibrated
// against real receipt data; changing them changes which products resolve.
const (
	exactMatchBase        = 200
	substringMatchBase    = 130
	multiTokenBase        = 95
	multiTokenPerToken    = 8
	singleTokenBase       = 80
	prefixMatchBase       = 45
	minPrefixLength       = 4
	highConfidenceScore   = 80
	mediumConfidenceScore = 55
	minInferenceScore     = 3
)

// Match sources reported to clients.
const (
	sourceDatabase   = "USDA shelf life database"
	sourceFuzzyMatch = "USDA shelf life database (fuzzy match)"
	sourceInference  = "category inference fallback"
	sourceDefault    = "default estimate"
)

// ShelfLifeConfig holds configuration for the shelf-life lookup service
type ShelfLifeConfig struct {
	EnableDebugLogging bool
}

// ShelfLifeService resolves receipt text to a known product and an
// estimated shelf life. It holds no mutable state and is safe for
// concurrent use.
type ShelfLifeService struct {
	enableDebugLogging bool
}

// NewShelfLifeService creates a new shelf-life lookup service
func NewShelfLifeService(config ShelfLifeConfig) *ShelfLifeService {
	return &ShelfLifeService{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// LookupProduct scores the given receipt text against every catalog entry
// and returns the best match. Both the text itself and its normalized form
// are tried as candidates. Scores >= 80 resolve with high confidence,
// >= 55 with medium; anything below falls through to category inference
// and finally to the "other" default.
func (s *ShelfLifeService) LookupProduct(receiptText string) domain.MatchResult {
	raw := strings.TrimSpace(receiptText)
	if raw == "" {
		return domain.MatchResult{
			Category:   "other",
			Emoji:      "📦",
			ShelfDays:  categoryDefaults["other"],
			Confidence: domain.ConfidenceLow,
			Source:     sourceDefault,
		}
	}

	candidates := candidateTexts(raw)
	candidateTokens := make([]map[string]bool, len(candidates))
	for i, candidate := range candidates {
		candidateTokens[i] = tokenSet(candidate)
	}

	var bestMatch *shelfLifeEntry
	bestScore := 0

	for i := range shelfLifeCatalog {
		entry := &shelfLifeCatalog[i]
		for _, keyword := range entry.keywords {
			normalizedKeyword := matchNormalize(keyword)
			if normalizedKeyword == "" {
				continue
			}

			for j, candidate := range candidates {
				score := keywordScore(normalizedKeyword, candidate, candidateTokens[j])
				if score > bestScore {
					bestScore = score
					bestMatch = entry
				}
			}
		}
	}

	if s.enableDebugLogging && bestMatch != nil {
		log.Printf("[LOOKUP] %q -> %q (score: %d)", raw, bestMatch.name, bestScore)
	}

	if bestMatch != nil && bestScore >= highConfidenceScore {
		return matchResultFor(bestMatch, domain.ConfidenceHigh, sourceDatabase)
	}

	if bestMatch != nil && bestScore >= mediumConfidenceScore {
		return matchResultFor(bestMatch, domain.ConfidenceMedium, sourceFuzzyMatch)
	}

	category, inferred := s.InferCategory(raw)
	source := sourceInference
	if !inferred {
		category = "other"
		source = sourceDefault
	}

	return domain.MatchResult{
		Name:       raw,
		Category:   category,
		Emoji:      EmojiForCategory(category),
		ShelfDays:  categoryDefaults[category],
		Confidence: domain.ConfidenceLow,
		Source:     source,
	}
}

// InferCategory guesses a coarse category from keyword-hint overlap when no
// catalog entry matched. The second return value is false when no category
// reaches the minimum hint score.
func (s *ShelfLifeService) InferCategory(receiptText string) (string, bool) {
	normalized := matchNormalize(receiptText)
	if normalized == "" {
		return "", false
	}
	tokens := tokenSet(normalized)
	if len(tokens) == 0 {
		return "", false
	}

	bestCategory := ""
	bestScore := 0

	for _, ch := range categoryHints {
		score := 0
		for _, hint := range ch.hints {
			normalizedHint := matchNormalize(hint)
			if normalizedHint == "" {
				continue
			}
			if normalized == normalizedHint {
				score += 8
				continue
			}

			hintTokens := tokenSet(normalizedHint)
			if len(hintTokens) == 0 {
				continue
			}

			if isSubset(hintTokens, tokens) {
				score += 4 + len(hintTokens)
			} else if len(hintTokens) == 1 && tokens[normalizedHint] {
				score += 3
			}
		}

		if score > bestScore {
			bestScore = score
			bestCategory = ch.category
		}
	}

	if bestScore < minInferenceScore {
		return "", false
	}
	if s.enableDebugLogging {
		log.Printf("[INFER] %q -> %q (score: %d)", receiptText, bestCategory, bestScore)
	}
	return bestCategory, true
}

// candidateTexts builds the deduplicated candidate set: the match-normalized
// raw text first, then the match-normalized receipt-normalizer output.
// Order matters because score ties keep the first-encountered candidate.
func candidateTexts(raw string) []string {
	candidates := make([]string, 0, 2)
	seen := make(map[string]bool, 2)

	for _, text := range []string{raw, NormalizeReceiptLine(raw).Normalized} {
		normalized := matchNormalize(text)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		candidates = append(candidates, normalized)
	}

	return candidates
}

// keywordScore ranks how well a normalized keyword fits a candidate text.
// Exact equality outranks space-delimited containment, which outranks
// token-subset matching, which outranks shared-prefix matching.
func keywordScore(normalizedKeyword, candidateText string, candidateTokens map[string]bool) int {
	if normalizedKeyword == candidateText {
		return exactMatchBase + len(normalizedKeyword)
	}

	if strings.Contains(" "+candidateText+" ", " "+normalizedKeyword+" ") {
		return substringMatchBase + len(normalizedKeyword)
	}

	keywordTokens := tokenSet(normalizedKeyword)
	if len(keywordTokens) > 0 && isSubset(keywordTokens, candidateTokens) {
		if len(keywordTokens) == 1 {
			return singleTokenBase + len(normalizedKeyword)
		}
		return multiTokenBase + len(keywordTokens)*multiTokenPerToken + len(normalizedKeyword)
	}

	if len(keywordTokens) == 1 && len(normalizedKeyword) >= minPrefixLength {
		bestPrefix := 0
		for token := range candidateTokens {
			if p := commonPrefixLength(normalizedKeyword, token); p > bestPrefix {
				bestPrefix = p
			}
		}
		if bestPrefix >= minPrefixLength {
			return prefixMatchBase + bestPrefix
		}
	}

	return 0
}

func commonPrefixLength(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	count := 0
	for count < len(ra) && count < len(rb) && ra[count] == rb[count] {
		count++
	}
	return count
}

// matchNormalize lowercases text and collapses runs of non-alphanumeric
// characters to single spaces. Distinct from receipt-line normalization:
// this form is only used for keyword comparison.
func matchNormalize(text string) string {
	lower := strings.ToLower(text)
	replaced := matchNormalizeRegex.ReplaceAllString(lower, " ")
	return strings.TrimSpace(replaced)
}

func tokenSet(normalizedText string) map[string]bool {
	tokens := make(map[string]bool)
	for _, token := range strings.Fields(normalizedText) {
		tokens[token] = true
	}
	return tokens
}

func isSubset(subset, of map[string]bool) bool {
	for token := range subset {
		if !of[token] {
			return false
		}
	}
	return true
}

func matchResultFor(entry *shelfLifeEntry, confidence, source string) domain.MatchResult {
	return domain.MatchResult{
		Name:       entry.name,
		Category:   entry.category,
		Emoji:      entry.emoji,
		ShelfDays:  entry.shelfDays,
		Confidence: confidence,
		Source:     source,
	}
}
