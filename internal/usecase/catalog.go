package usecase

import (
	"fmt"
	"sort"

	"github.com/shelfscan/backend/internal/domain"
)

// shelfLifeEntry is one known product in the shelf-life catalog. A keyword
// may appear under more than one entry; declaration order is the tie-break
// when two entries score the same.
type shelfLifeEntry struct {
	name      string
	keywords  []string
	category  string
	emoji     string
	shelfDays int
}

// categoryDefaults hold the fallback shelf life (days) per category.
// "other" is the ultimate fallback and must always be present.
var categoryDefaults = map[string]int{
	"dairy":     7,
	"meat":      2,
	"seafood":   2,
	"fruit":     7,
	"vegetable": 7,
	"bakery":    5,
	"beverage":  10,
	"prepared":  5,
	"condiment": 60,
	"frozen":    90,
	"other":     7,
}

// categoryHint pairs a category with the keyword phrases used for inference
// when no catalog entry scores well. Kept as an ordered slice so the
// best-category selection is deterministic.
type categoryHint struct {
	category string
	hints    []string
}

var categoryHints = []categoryHint{
	{"dairy", []string{"milk", "eggs", "egg", "yogurt", "cheese", "butter", "cream", "half and half"}},
	{"meat", []string{"chicken", "beef", "steak", "pork", "turkey", "bacon", "sausage", "ham", "deli"}},
	{"seafood", []string{"salmon", "shrimp", "fish", "tilapia", "cod", "crab", "tuna"}},
	{"fruit", []string{"banana", "apple", "berry", "grape", "orange", "lemon", "lime", "avocado", "melon", "peach"}},
	{"vegetable", []string{"lettuce", "tomato", "pepper", "broccoli", "carrot", "spinach", "onion", "potato", "garlic", "mushroom", "celery", "cucumber", "zucchini", "corn", "beans"}},
	{"bakery", []string{"bread", "bagel", "tortilla", "muffin", "croissant", "bun", "roll"}},
	{"beverage", []string{"juice", "water", "soda", "coffee", "tea", "drink"}},
	{"prepared", []string{"hummus", "guacamole", "salsa", "tofu", "ravioli", "tortellini", "fresh pasta"}},
	{"condiment", []string{"ketchup", "mustard", "mayo", "mayonnaise", "sauce", "dressing"}},
	{"frozen", []string{"frozen", "ice cream", "pizza", "frz", "frzn"}},
}

// shelfLifeCatalog lists every known product with its receipt keywords.
// Entries are iterated in declaration order for best-match selection.
var shelfLifeCatalog = []shelfLifeEntry{
	// Dairy
	{"Whole Milk", []string{"milk", "whole milk", "2% milk", "skim milk", "1% milk", "mlk", "pc milk", "2 pc milk"}, "dairy", "🥛", 7},
	{"Heavy Cream", []string{"cream", "heavy cream", "whipping cream", "half and half"}, "dairy", "🥛", 10},
	{"Butter", []string{"butter", "unsalted butter", "salted butter"}, "dairy", "🧈", 30},
	{"Yogurt", []string{"yogurt", "greek yogurt", "yoghurt"}, "dairy", "🥛", 14},
	{"Cheddar Cheese", []string{"cheddar", "cheddar cheese"}, "dairy", "🧀", 28},
	{"Mozzarella", []string{"mozzarella", "fresh mozzarella"}, "dairy", "🧀", 14},
	{"Cheese (Sliced)", []string{"cheese", "american cheese", "sliced cheese", "swiss"}, "dairy", "🧀", 14},
	{"Cream Cheese", []string{"cream cheese", "philadelphia"}, "dairy", "🧀", 14},
	{"Sour Cream", []string{"sour cream"}, "dairy", "🥛", 14},
	{"Cottage Cheese", []string{"cottage cheese"}, "dairy", "🧀", 7},
	{"Eggs", []string{"eggs", "large eggs", "egg", "dozen eggs", "egs", "wht eggs", "lg wht eggs", "mp eggs"}, "dairy", "🥚", 21},

	// Meat & Poultry
	{"Chicken Breast", []string{"chicken", "chicken breast", "chkn", "chicken brst", "bnls sknls chkn", "ckn", "ckn brst", "rotis ckn"}, "meat", "🍗", 2},
	{"Ground Beef", []string{"ground beef", "grnd beef", "hamburger", "beef"}, "meat", "🥩", 2},
	{"Steak", []string{"steak", "ribeye", "sirloin", "ny strip", "filet"}, "meat", "🥩", 3},
	{"Pork Chops", []string{"pork", "pork chops", "pork loin"}, "meat", "🥩", 3},
	{"Bacon", []string{"bacon", "turkey bacon"}, "meat", "🥓", 7},
	{"Deli Meat", []string{"deli", "deli meat", "turkey deli", "ham deli", "lunch meat", "salami", "prosciutto"}, "meat", "🥩", 5},
	{"Hot Dogs", []string{"hot dog", "hot dogs", "franks", "sausage", "bratwurst"}, "meat", "🌭", 7},
	{"Ground Turkey", []string{"ground turkey", "turkey"}, "meat", "🍗", 2},

	// Seafood
	{"Fresh Salmon", []string{"salmon", "fresh salmon", "salmon fillet"}, "seafood", "🐟", 2},
	{"Shrimp", []string{"shrimp", "prawns"}, "seafood", "🦐", 2},
	{"Tilapia", []string{"tilapia", "fish", "fish fillet", "cod", "catfish"}, "seafood", "🐟", 2},
	{"Crab Meat", []string{"crab", "crab meat"}, "seafood", "🦀", 2},

	// Fruits
	{"Bananas", []string{"banana", "bananas", "org bnnas", "bnna", "bnn", "bnna ylw"}, "fruit", "🍌", 5},
	{"Apples", []string{"apple", "apples", "gala", "fuji", "granny smith"}, "fruit", "🍎", 21},
	{"Strawberries", []string{"strawberry", "strawberries", "berries"}, "fruit", "🍓", 5},
	{"Blueberries", []string{"blueberry", "blueberries"}, "fruit", "🫐", 7},
	{"Grapes", []string{"grape", "grapes"}, "fruit", "🍇", 7},
	{"Oranges", []string{"orange", "oranges", "navel", "clementine", "mandarin"}, "fruit", "🍊", 14},
	{"Lemons", []string{"lemon", "lemons", "lime", "limes"}, "fruit", "🍋", 21},
	{"Avocados", []string{"avocado", "avocados"}, "fruit", "🥑", 4},
	{"Watermelon", []string{"watermelon", "melon", "cantaloupe", "honeydew"}, "fruit", "🍉", 5},
	{"Peaches", []string{"peach", "peaches", "nectarine", "plum"}, "fruit", "🍑", 4},

	// Vegetables
	{"Lettuce", []string{"lettuce", "romaine", "iceberg", "spring mix", "salad mix", "greens"}, "vegetable", "🥬", 7},
	{"Tomatoes", []string{"tomato", "tomatoes", "cherry tomato", "grape tomato"}, "vegetable", "🍅", 7},
	{"Bell Peppers", []string{"bell pepper", "bell peppers", "pepper", "peppers"}, "vegetable", "🫑", 10},
	{"Broccoli", []string{"broccoli", "broccoli florets"}, "vegetable", "🥦", 5},
	{"Carrots", []string{"carrot", "carrots", "baby carrots"}, "vegetable", "🥕", 21},
	{"Spinach", []string{"spinach", "baby spinach"}, "vegetable", "🥬", 5},
	{"Onions", []string{"onion", "onions", "red onion", "yellow onion"}, "vegetable", "🧅", 30},
	{"Potatoes", []string{"potato", "potatoes", "russet", "yukon"}, "vegetable", "🥔", 21},
	{"Garlic", []string{"garlic"}, "vegetable", "🧄", 30},
	{"Mushrooms", []string{"mushroom", "mushrooms", "baby bella"}, "vegetable", "🍄", 5},
	{"Celery", []string{"celery"}, "vegetable", "🥬", 14},
	{"Cucumbers", []string{"cucumber", "cucumbers"}, "vegetable", "🥒", 7},
	{"Corn", []string{"corn", "corn on the cob", "sweet corn"}, "vegetable", "🌽", 3},
	{"Green Beans", []string{"green bean", "green beans", "string beans"}, "vegetable", "🫛", 5},
	{"Zucchini", []string{"zucchini", "squash", "yellow squash"}, "vegetable", "🥒", 5},

	// Bakery
	{"White Bread", []string{"bread", "white bread", "wheat bread", "sandwich bread", "wonder bread", "brd", "brd wht", "wht brd"}, "bakery", "🍞", 5},
	{"Tortillas", []string{"tortilla", "tortillas", "wraps", "flour tortilla"}, "bakery", "🫓", 14},
	{"Bagels", []string{"bagel", "bagels"}, "bakery", "🥯", 5},
	{"Muffins", []string{"muffin", "muffins"}, "bakery", "🧁", 3},
	{"Croissants", []string{"croissant", "croissants", "pastry"}, "bakery", "🥐", 3},

	// Beverages
	{"Orange Juice", []string{"orange juice", "oj", "juice"}, "beverage", "🍊", 10},
	{"Almond Milk", []string{"almond milk", "oat milk", "soy milk", "plant milk"}, "beverage", "🥛", 7},

	// Prepared / Deli
	{"Hummus", []string{"hummus"}, "prepared", "🫘", 7},
	{"Guacamole", []string{"guacamole", "guac"}, "prepared", "🥑", 3},
	{"Salsa (Fresh)", []string{"salsa", "pico de gallo", "fresh salsa"}, "prepared", "🫙", 5},
	{"Tofu", []string{"tofu", "firm tofu", "silken tofu"}, "prepared", "🧊", 5},
	{"Pasta (Fresh)", []string{"fresh pasta", "ravioli", "tortellini"}, "prepared", "🍝", 3},

	// Condiments (opened)
	{"Ketchup", []string{"ketchup"}, "condiment", "🍅", 60},
	{"Mayonnaise", []string{"mayo", "mayonnaise"}, "condiment", "🫙", 60},
	{"Mustard", []string{"mustard"}, "condiment", "🟡", 90},
}

// EmojiForCategory returns the display emoji for a product category.
func EmojiForCategory(category string) string {
	switch category {
	case "dairy":
		return "🥛"
	case "meat":
		return "🍗"
	case "seafood":
		return "🐟"
	case "fruit":
		return "🍎"
	case "vegetable":
		return "🥬"
	case "bakery":
		return "🍞"
	case "beverage":
		return "🥤"
	case "prepared":
		return "🍱"
	case "condiment":
		return "🫙"
	case "frozen":
		return "🧊"
	default:
		return "📦"
	}
}

// Categories returns every known category with its default shelf life,
// sorted by name.
func Categories() []domain.CategoryInfo {
	categories := make([]domain.CategoryInfo, 0, len(categoryDefaults))
	for name, days := range categoryDefaults {
		categories = append(categories, domain.CategoryInfo{Name: name, ShelfDays: days})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}

// ValidateTables checks the static lookup tables for internal consistency.
// Called once at process startup so a malformed catalog fails fast instead
// of producing wrong answers per line.
func ValidateTables() error {
	if _, ok := categoryDefaults["other"]; !ok {
		return fmt.Errorf(`category defaults must include an "other" fallback`)
	}

	for category, days := range categoryDefaults {
		if days < 1 {
			return fmt.Errorf("category %q has invalid default shelf life %d", category, days)
		}
	}

	for _, entry := range shelfLifeCatalog {
		if entry.shelfDays < 1 {
			return fmt.Errorf("catalog entry %q has invalid shelf life %d", entry.name, entry.shelfDays)
		}
		if _, ok := categoryDefaults[entry.category]; !ok {
			return fmt.Errorf("catalog entry %q references unknown category %q", entry.name, entry.category)
		}
		if len(entry.keywords) == 0 {
			return fmt.Errorf("catalog entry %q has no keywords", entry.name)
		}
	}

	for _, hint := range categoryHints {
		if _, ok := categoryDefaults[hint.category]; !ok {
			return fmt.Errorf("category hints reference unknown category %q", hint.category)
		}
	}

	return nil
}
