package usecase

import (
	"regexp"
	"strings"
	"unicode"
)

// Compiled regex patterns for junk-line detection. All patterns run against
// the lower-cased, whitespace-trimmed line.
var (
	stateZipRegex       = regexp.MustCompile(`\b[a-z]{2}\s+\d{5}`)
	streetAddressRegex  = regexp.MustCompile(`\d+\s+(main|elm|oak|maple|first|second|third|north|south|east|west|center|market|spring|lake|river|park|hill|valley|broad|high|church|mill|pine|cedar|washington|lincoln|jackson|jefferson)\s+(st|ave|rd|blvd|dr|ln|ct|way|pl|pkwy|hwy|cir)`)
	cityStateZipRegex   = regexp.MustCompile(`,\s*[a-z]{2}\s*\d{5}`)
	trailingStateRegex  = regexp.MustCompile(`,\s*[a-z]{2}\s*$`)
	bareZipRegex        = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	phoneNumberRegex    = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	slashDateRegex      = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	clockTimeRegex      = regexp.MustCompile(`\d{1,2}:\d{2}\s*(am|pm)?`)
	isoDateRegex        = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	quantityMarkerRegex = regexp.MustCompile(`^[@x]\s*\d`)
	weightAtRegex       = regexp.MustCompile(`\d+\.\d+\s*(lb|lbs|kg|oz)\s*(@|at)`)
	netWeightRegex      = regexp.MustCompile(`net\s*w(t|eight)`)
	priceOnlyRegex      = regexp.MustCompile(`^\$?\d+\.\d{2}$`)
	signedPriceRegex    = regexp.MustCompile(`^-?\$?\d+\.\d{2}\s*[a-z]?$`)
	separatorOnlyRegex  = regexp.MustCompile(`^[*#\-=_.]{3,}$`)
	emailRegex          = regexp.MustCompile(`[a-z0-9]+@[a-z0-9]+\.[a-z]`)
	priceTaxFlagRegex   = regexp.MustCompile(`^\$?\d+\.\d{2}\s+[a-z]$`)
)

// storePatterns are store names and slogans that never describe a product.
var storePatterns = []string{
	"walmart", "wal-mart", "wal*mart", "target", "costco", "kroger",
	"safeway", "publix", "aldi", "trader joe", "whole foods", "sam's club",
	"meijer", "h-e-b", "heb", "winco", "food lion", "piggly wiggly",
	"wegmans", "giant eagle", "stop & shop", "stop and shop", "shoprite",
	"food city", "winn-dixie", "winn dixie", "bi-lo", "harris teeter",
	"sprouts", "fresh market", "lidl",
	"save money", "live better", "everyday low", "great prices",
	"thank you", "thanks for", "welcome to", "come again",
	"have a nice", "valued customer", "we appreciate",
	"shop smart", "low prices", "price match",
}

// transactionPatterns mark register, terminal, and payment-card codes.
var transactionPatterns = []string{
	"st#", "op#", "te#", "tr#", "tc#", "ref#", "seq#",
	"trn#", "reg#", "cshr", "cashier", "register",
	"receipt", "transaction", "terminal",
	"approval", "auth code", "auth#", "appr code",
	"chip read", "aid:", "tvr:", "tsi:",
	"merchant", "acct#", "card#",
}

var staffPatterns = []string{
	"mgr", "manager", "clerk", "associate", "operator",
	"served by", "your cashier", "team member",
}

var financialPatterns = []string{
	"subtotal", "sub total", "sub-total", "total", "tax", "change due",
	"tender", "cash", "credit", "debit", "visa", "mastercard",
	"amex", "discover", "ebt", "snap", "wic",
	"balance", "payment", "paid", "amount due",
	"items sold", "item(s)", "# items", "number of items",
	"change", "you saved", "your savings",
}

var loyaltyPatterns = []string{
	"loyalty", "rewards", "member", "membership", "points",
	"bonus", "club card", "plus card", "advantage",
	"coupon", "promo", "promotion", "offer",
	"scan your", "download our", "download app",
}

var savingsPatterns = []string{
	"savings", "saved", "discount", "rollback", "clearance",
	"markdown", "price reduced", "was ", "now ",
	"you save", "sale price", "reg price", "regular price",
	"price cut", "special", "% off",
}

var returnPatterns = []string{
	"return", "refund", "void", "cancel", "exchange",
	"price override", "price adj", "adjustment",
}

var departmentPatterns = []string{
	"department", "dept", "grocery", "produce",
	"bakery dept", "meat dept", "deli dept",
	"aisle", "shelf", "isle",
	"item not on file", "not found", "see store",
	"price inquiry", "price check",
}

var surveyPatterns = []string{
	"survey", "feedback", "tell us", "rate your",
	"how did we", "experience", "visit us",
	"enter to win", "sweepstakes", "contest",
}

// departmentHeaderWords are ALL-CAPS section headers printed between item
// groups on some receipts.
var departmentHeaderWords = []string{
	"grocery", "produce", "dairy", "frozen", "deli", "bakery",
	"meat", "seafood", "beverages", "snacks", "household",
}

// IsJunkLine reports whether a receipt line is metadata rather than a
// product: store headers, addresses, totals, barcodes, payment records, and
// similar noise. The predicates form a union, so evaluation order never
// changes the outcome.
func IsJunkLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))

	// 1. Store names and slogans
	if containsAny(lower, storePatterns) {
		return true
	}

	// 2. Addresses, cities, states, zip codes
	if stateZipRegex.MatchString(lower) ||
		streetAddressRegex.MatchString(lower) ||
		cityStateZipRegex.MatchString(lower) ||
		trailingStateRegex.MatchString(lower) ||
		bareZipRegex.MatchString(lower) {
		return true
	}

	// 3. Phone numbers and dates/times
	if phoneNumberRegex.MatchString(lower) ||
		slashDateRegex.MatchString(lower) ||
		clockTimeRegex.MatchString(lower) ||
		isoDateRegex.MatchString(lower) {
		return true
	}

	// 4. Transaction codes, store/register/receipt numbers
	if containsAny(lower, transactionPatterns) {
		return true
	}

	// 5. Manager, clerk, associate names
	if containsAny(lower, staffPatterns) {
		return true
	}

	// 6. UPC barcodes: lines that are mostly digits (>55% numeric)
	digitCount := 0
	totalChars := 0
	for _, r := range lower {
		if unicode.IsSpace(r) {
			continue
		}
		totalChars++
		if unicode.IsDigit(r) {
			digitCount++
		}
	}
	if totalChars > 0 && float64(digitCount)/float64(totalChars) > 0.55 {
		return true
	}

	// 7. Totals, tax, payment, change
	if containsAny(lower, financialPatterns) {
		return true
	}

	// 8. Quantity/weight-only lines like "@ 2" or "1.23 lb @ 2.99/lb"
	if quantityMarkerRegex.MatchString(lower) ||
		weightAtRegex.MatchString(lower) ||
		netWeightRegex.MatchString(lower) {
		return true
	}

	// 9. Lines with fewer than 2 letters
	alphaCount := 0
	for _, r := range lower {
		if unicode.IsLetter(r) {
			alphaCount++
		}
	}
	if alphaCount < 2 {
		return true
	}

	// 10. Very short lines (likely fragments)
	if len([]rune(lower)) < 4 {
		return true
	}

	// 11. Price-only lines, including negative refund amounts
	if priceOnlyRegex.MatchString(lower) || signedPriceRegex.MatchString(lower) {
		return true
	}

	// 12. Lines of only separator characters
	if separatorOnlyRegex.MatchString(lower) {
		return true
	}

	// 13. Loyalty cards, rewards, memberships
	if containsAny(lower, loyaltyPatterns) {
		return true
	}

	// 14. Savings, discounts, rollbacks
	if containsAny(lower, savingsPatterns) {
		return true
	}

	// 15. Returns, refunds, voids
	if containsAny(lower, returnPatterns) {
		return true
	}

	// 16. URLs, email addresses
	if strings.Contains(lower, "www.") || strings.Contains(lower, ".com") ||
		strings.Contains(lower, ".org") || strings.Contains(lower, "http") {
		return true
	}
	if emailRegex.MatchString(lower) {
		return true
	}

	// 17. Department headers and non-product labels
	if containsAny(lower, departmentPatterns) {
		return true
	}

	// 18. Survey, feedback, sweepstakes
	if containsAny(lower, surveyPatterns) {
		return true
	}

	// 19. Price followed by a single tax-flag letter, e.g. "3.99 F"
	if priceTaxFlagRegex.MatchString(lower) {
		return true
	}

	// 20. Single ALL-CAPS words matching a known department label
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, " ") && line == strings.ToUpper(line) && len([]rune(line)) > 3 {
		for _, header := range departmentHeaderWords {
			if lower == header {
				return true
			}
		}
	}

	return false
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
