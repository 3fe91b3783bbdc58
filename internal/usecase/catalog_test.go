package usecase

import "testing"

func TestValidateTables(t *testing.T) {
	if err := ValidateTables(); err != nil {
		t.Fatalf("ValidateTables() error = %v, want nil", err)
	}
}

func TestCatalogInvariants(t *testing.T) {
	t.Run("every entry has a positive shelf life", func(t *testing.T) {
		for _, entry := range shelfLifeCatalog {
			if entry.shelfDays < 1 {
				t.Errorf("entry %q has shelfDays = %d, want >= 1", entry.name, entry.shelfDays)
			}
		}
	})

	t.Run("every entry category has a default", func(t *testing.T) {
		for _, entry := range shelfLifeCatalog {
			if _, ok := categoryDefaults[entry.category]; !ok {
				t.Errorf("entry %q references category %q with no default", entry.name, entry.category)
			}
		}
	})

	t.Run("other fallback exists", func(t *testing.T) {
		if days, ok := categoryDefaults["other"]; !ok || days < 1 {
			t.Errorf(`categoryDefaults["other"] = %d, %v; want a positive value`, days, ok)
		}
	})

	t.Run("every hint category has a default", func(t *testing.T) {
		for _, hint := range categoryHints {
			if _, ok := categoryDefaults[hint.category]; !ok {
				t.Errorf("hint category %q has no default", hint.category)
			}
		}
	})
}

func TestEmojiForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"dairy", "🥛"},
		{"meat", "🍗"},
		{"seafood", "🐟"},
		{"fruit", "🍎"},
		{"vegetable", "🥬"},
		{"bakery", "🍞"},
		{"beverage", "🥤"},
		{"prepared", "🍱"},
		{"condiment", "🫙"},
		{"frozen", "🧊"},
		{"other", "📦"},
		{"unknown", "📦"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := EmojiForCategory(tt.category); got != tt.want {
				t.Errorf("EmojiForCategory(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	categories := Categories()

	if len(categories) != len(categoryDefaults) {
		t.Fatalf("Categories() returned %d entries, want %d", len(categories), len(categoryDefaults))
	}

	for i := 1; i < len(categories); i++ {
		if categories[i-1].Name >= categories[i].Name {
			t.Errorf("Categories() not sorted: %q before %q", categories[i-1].Name, categories[i].Name)
		}
	}

	found := false
	for _, c := range categories {
		if c.Name == "other" {
			found = true
			if c.ShelfDays != 7 {
				t.Errorf(`"other" shelf days = %d, want 7`, c.ShelfDays)
			}
		}
	}
	if !found {
		t.Error(`Categories() missing "other"`)
	}
}
