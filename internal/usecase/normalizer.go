package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shelfscan/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// Leading item numbers / UPCs: a run of 6 or more digits
	leadingItemNumberRegex = regexp.MustCompile(`^\d{6,}`)

	// Trailing tax-flag tokens like " F", " N", " FT" at the end of a line
	trailingTaxFlagRegex = regexp.MustCompile(`(?i)\s+[FNCT]{1,2}\s*$`)
)

// NormalizeReceiptLine turns a raw receipt line into a normalized product
// phrase, extracting a store brand when the line starts with a known brand
// abbreviation and flagging non-grocery merchandise.
//
// Steps, in order: trim, strip a leading item/UPC number, strip a trailing
// tax flag, detect a brand from the first two tokens (two-token brands win
// over one-token brands), drop pure numeric tokens, expand POS
// abbreviations, then scan both the raw and expanded text for non-food
// keywords.
func NormalizeReceiptLine(rawText string) domain.NormalizedName {
	if rawText == "" {
		return domain.NormalizedName{}
	}

	text := strings.TrimSpace(rawText)

	if loc := leadingItemNumberRegex.FindStringIndex(text); loc != nil {
		text = strings.TrimSpace(text[loc[1]:])
	}

	if loc := trailingTaxFlagRegex.FindStringIndex(text); loc != nil {
		text = strings.TrimSpace(text[:loc[0]])
	}

	tokens := strings.Fields(text)
	brand := ""
	startIdx := 0

	// Two-token brands take priority so "sig sel" is never split into a
	// one-token brand plus a leftover word.
	if len(tokens) >= 2 {
		firstTwo := strings.ToLower(tokens[0] + " " + tokens[1])
		if b, ok := brandAbbreviations[firstTwo]; ok {
			brand = b
			startIdx = 2
		}
	}
	if brand == "" && len(tokens) >= 1 {
		if b, ok := brandAbbreviations[strings.ToLower(tokens[0])]; ok {
			brand = b
			startIdx = 1
		}
	}

	expanded := make([]string, 0, len(tokens)-startIdx)
	for _, token := range tokens[startIdx:] {
		// Pure numeric tokens are quantity counts, not product words
		if _, err := strconv.ParseFloat(token, 64); err == nil {
			continue
		}
		if full, ok := posAbbreviations[strings.ToLower(token)]; ok {
			expanded = append(expanded, full)
		} else {
			expanded = append(expanded, token)
		}
	}

	normalized := strings.Join(expanded, " ")

	// Check both the raw and expanded text: abbreviated non-food names only
	// show up after expansion, already-clear ones only in the raw line.
	fullLower := strings.ToLower(rawText + " " + normalized)
	isNonFood := false
	for _, keyword := range nonFoodKeywords {
		if strings.Contains(fullLower, keyword) {
			isNonFood = true
			break
		}
	}

	return domain.NormalizedName{
		Normalized: normalized,
		Brand:      brand,
		IsNonFood:  isNonFood,
	}
}
