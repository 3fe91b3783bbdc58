package usecase

import (
	"testing"

	"github.com/shelfscan/backend/internal/domain"
)

func newTestShelfLifeService() *ShelfLifeService {
	return NewShelfLifeService(ShelfLifeConfig{})
}

func TestLookupProduct(t *testing.T) {
	svc := newTestShelfLifeService()

	t.Run("exact keyword resolves with high confidence", func(t *testing.T) {
		got := svc.LookupProduct("whole milk")
		if got.Name != "Whole Milk" {
			t.Errorf("Name = %q, want Whole Milk", got.Name)
		}
		if got.Category != "dairy" {
			t.Errorf("Category = %q, want dairy", got.Category)
		}
		if got.ShelfDays != 7 {
			t.Errorf("ShelfDays = %d, want 7", got.ShelfDays)
		}
		if got.Confidence != domain.ConfidenceHigh {
			t.Errorf("Confidence = %q, want high", got.Confidence)
		}
		if got.Source != "USDA shelf life database" {
			t.Errorf("Source = %q, want USDA shelf life database", got.Source)
		}
	})

	t.Run("abbreviated line resolves via normalization", func(t *testing.T) {
		got := svc.LookupProduct("chkn brst")
		if got.Name != "Chicken Breast" {
			t.Errorf("Name = %q, want Chicken Breast", got.Name)
		}
		if got.ShelfDays != 2 {
			t.Errorf("ShelfDays = %d, want 2", got.ShelfDays)
		}
		if got.Confidence != domain.ConfidenceHigh {
			t.Errorf("Confidence = %q, want high", got.Confidence)
		}
	})

	t.Run("unrecognized text falls back to default estimate", func(t *testing.T) {
		got := svc.LookupProduct("xyzzy nonsense item")
		if got.Name != "xyzzy nonsense item" {
			t.Errorf("Name = %q, want raw text", got.Name)
		}
		if got.Category != "other" {
			t.Errorf("Category = %q, want other", got.Category)
		}
		if got.ShelfDays != categoryDefaults["other"] {
			t.Errorf("ShelfDays = %d, want %d", got.ShelfDays, categoryDefaults["other"])
		}
		if got.Confidence != domain.ConfidenceLow {
			t.Errorf("Confidence = %q, want low", got.Confidence)
		}
		if got.Source != "default estimate" {
			t.Errorf("Source = %q, want default estimate", got.Source)
		}
	})

	t.Run("hint overlap infers a category", func(t *testing.T) {
		got := svc.LookupProduct("frozen pizza snack")
		if got.Category != "frozen" {
			t.Errorf("Category = %q, want frozen", got.Category)
		}
		if got.Confidence != domain.ConfidenceLow {
			t.Errorf("Confidence = %q, want low", got.Confidence)
		}
		if got.Source != "category inference fallback" {
			t.Errorf("Source = %q, want category inference fallback", got.Source)
		}
		if got.ShelfDays != categoryDefaults["frozen"] {
			t.Errorf("ShelfDays = %d, want %d", got.ShelfDays, categoryDefaults["frozen"])
		}
	})

	t.Run("empty input short-circuits to default", func(t *testing.T) {
		got := svc.LookupProduct("")
		if got.Category != "other" || got.Confidence != domain.ConfidenceLow {
			t.Errorf("got %+v, want other/low", got)
		}
		if got.Source != "default estimate" {
			t.Errorf("Source = %q, want default estimate", got.Source)
		}
		if got.Emoji != "📦" {
			t.Errorf("Emoji = %q, want 📦", got.Emoji)
		}
	})

	t.Run("whitespace input behaves like empty", func(t *testing.T) {
		got := svc.LookupProduct("   ")
		if got.Category != "other" || got.Source != "default estimate" {
			t.Errorf("got %+v, want other/default estimate", got)
		}
	})

	t.Run("punctuation is normalized away for matching", func(t *testing.T) {
		got := svc.LookupProduct("WHOLE-MILK!!")
		if got.Name != "Whole Milk" || got.Confidence != domain.ConfidenceHigh {
			t.Errorf("got %+v, want Whole Milk/high", got)
		}
	})

	t.Run("declaration order breaks keyword collisions", func(t *testing.T) {
		// "turkey" is a keyword of Ground Turkey and appears inside other
		// entries' multi-token keywords; the exact hit must win.
		got := svc.LookupProduct("turkey")
		if got.Name != "Ground Turkey" {
			t.Errorf("Name = %q, want Ground Turkey", got.Name)
		}
	})

	t.Run("results are idempotent", func(t *testing.T) {
		first := svc.LookupProduct("GV 2% MLK")
		second := svc.LookupProduct("GV 2% MLK")
		if first != second {
			t.Errorf("repeated lookups differ: %+v vs %+v", first, second)
		}
	})
}

func TestKeywordScoreOrdering(t *testing.T) {
	candidate := "whole milk"
	tokens := tokenSet(candidate)

	exact := keywordScore("whole milk", candidate, tokens)
	substring := keywordScore("milk", candidate, tokens)
	subset := keywordScore("whole milk", "milk fresh whole", tokenSet("milk fresh whole"))
	prefix := keywordScore("banana", "bananas fresh", tokenSet("bananas fresh"))

	if exact != exactMatchBase+len("whole milk") {
		t.Errorf("exact score = %d, want %d", exact, exactMatchBase+len("whole milk"))
	}
	if substring != substringMatchBase+len("milk") {
		t.Errorf("substring score = %d, want %d", substring, substringMatchBase+len("milk"))
	}
	if subset != multiTokenBase+2*multiTokenPerToken+len("whole milk") {
		t.Errorf("subset score = %d, want %d", subset, multiTokenBase+2*multiTokenPerToken+len("whole milk"))
	}
	if prefix != prefixMatchBase+6 {
		t.Errorf("prefix score = %d, want %d", prefix, prefixMatchBase+6)
	}

	if !(exact > substring && substring > subset && subset > prefix) {
		t.Errorf("score tiers out of order: exact=%d substring=%d subset=%d prefix=%d",
			exact, substring, subset, prefix)
	}
}

func TestKeywordScoreNoMatch(t *testing.T) {
	t.Run("unrelated keyword scores zero", func(t *testing.T) {
		if got := keywordScore("ketchup", "whole milk", tokenSet("whole milk")); got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})

	t.Run("short prefixes do not count", func(t *testing.T) {
		// Common prefix "mil" is below the 4-character minimum
		if got := keywordScore("milky", "mild cheddar", tokenSet("mild cheddar")); got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})
}

func TestInferCategory(t *testing.T) {
	svc := newTestShelfLifeService()

	t.Run("exact hint match", func(t *testing.T) {
		category, ok := svc.InferCategory("milk")
		if !ok || category != "dairy" {
			t.Errorf("InferCategory(milk) = %q, %v; want dairy, true", category, ok)
		}
	})

	t.Run("token overlap accumulates", func(t *testing.T) {
		category, ok := svc.InferCategory("frozen pizza snack")
		if !ok || category != "frozen" {
			t.Errorf("InferCategory = %q, %v; want frozen, true", category, ok)
		}
	})

	t.Run("no overlap returns none", func(t *testing.T) {
		if category, ok := svc.InferCategory("qwerty zxcvb"); ok {
			t.Errorf("InferCategory = %q, true; want none", category)
		}
	})

	t.Run("empty text returns none", func(t *testing.T) {
		if _, ok := svc.InferCategory(""); ok {
			t.Error("InferCategory(\"\") = true, want false")
		}
	})
}

func TestMatchNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Whole Milk", "whole milk"},
		{"  GV  2%  MLK ", "gv 2 mlk"},
		{"PICO-DE-GALLO!!", "pico de gallo"},
		{"***", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := matchNormalize(tt.in); got != tt.want {
			t.Errorf("matchNormalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
