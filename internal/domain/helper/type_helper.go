package helper

import (
	"strings"

	"roam-backend/internal/domain/model"
)

// typeMatchMap expands a desired category into the type keywords that count
// as a match for it. Categories not listed here fall back to substring
// containment of the category itself.
var typeMatchMap = map[string][]string{
	"bar":     {"bar", "pub", "tavern", "brewery"},
	"cafe":    {"cafe", "coffee", "espresso"},
	"club":    {"club", "nightclub", "disco"},
	"lounge":  {"lounge", "cocktail"},
	"gallery": {"gallery", "art"},
	"dessert": {"dessert", "ice cream", "gelato"},
	"wine":    {"wine", "vintner"},
	"fitness": {"gym", "studio", "fitness"},
}

// HasType reports whether any of the venue's category tokens exactly matches
// one of the desired categories.
func HasType(v *model.Venue, desired []string) bool {
	for _, token := range v.TypeTokens() {
		for _, d := range desired {
			if token == strings.ToLower(d) {
				return true
			}
		}
	}
	return false
}

// IsMealType reports whether the venue counts as a meal stop, which selects
// the larger distance cap.
func IsMealType(v *model.Venue) bool {
	return HasType(v, model.MealTypes)
}

// MatchesVenueType is the keyword variant of category matching used by the
// themed selector: the category's expansion keywords are checked as
// substrings of the venue's raw type string.
func MatchesVenueType(v *model.Venue, category string) bool {
	normalized := strings.ToLower(v.Type)
	if normalized == "" {
		return false
	}
	cat := strings.ToLower(category)
	keywords, ok := typeMatchMap[cat]
	if !ok {
		return strings.Contains(normalized, cat)
	}
	for _, kw := range keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// MatchesAnyVenueType reports whether the venue matches at least one of the
// stage's acceptable categories.
func MatchesAnyVenueType(v *model.Venue, categories []string) bool {
	for _, c := range categories {
		if MatchesVenueType(v, c) {
			return true
		}
	}
	return false
}

// MatchesThemeFilters applies a theme's hard filters conjunctively. Absent
// dimensions pass; a venue without a price passes the price filter since the
// tier is unknown rather than out of range.
func MatchesThemeFilters(v *model.Venue, f model.ThemeFilters) bool {
	if len(f.Vibes) > 0 {
		vibe := strings.ToLower(v.Vibe)
		if !containsAny(vibe, f.Vibes) {
			return false
		}
	}
	if len(f.Tags) > 0 {
		tags := strings.ToLower(v.Tags)
		if !containsAny(tags, f.Tags) {
			return false
		}
	}
	if len(f.Price) > 0 && v.Price != "" {
		if !f.AllowsPrice(v.PriceTier()) {
			return false
		}
	}
	if !f.AllowsTimeOfDay(v.TimeCategory) {
		return false
	}
	return true
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if n == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
