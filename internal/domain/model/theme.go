package model

import "strings"

// ThemeFilters are the declarative hard filters of a crawl theme. Absent
// dimensions (nil or empty slices) are skipped during matching.
type ThemeFilters struct {
	Vibes     []string `json:"vibes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Price     []int    `json:"price,omitempty"` // allowed tiers, $ = 1 .. $$$$ = 4
	TimeOfDay []string `json:"timeOfDay,omitempty"`
}

// AllowsPrice reports whether the tier passes the price filter.
func (f ThemeFilters) AllowsPrice(tier int) bool {
	if len(f.Price) == 0 {
		return true
	}
	for _, p := range f.Price {
		if p == tier {
			return true
		}
	}
	return false
}

// AllowsTimeOfDay reports whether the venue's coarse time category passes
// the timeOfDay filter.
func (f ThemeFilters) AllowsTimeOfDay(timeCategory string) bool {
	if len(f.TimeOfDay) == 0 || timeCategory == "" {
		return true
	}
	tc := strings.ToLower(timeCategory)
	for _, t := range f.TimeOfDay {
		if strings.ToLower(t) == tc {
			return true
		}
	}
	return false
}

// CrawlTheme is a named, preconfigured preference profile. Themes are
// defined in the catalog below and are immutable at runtime.
type CrawlTheme struct {
	ThemeID     string       `json:"themeId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	// StageFlow is the explicit ordered list of venue categories for the
	// crawl. When empty, a fallback flow is derived from Filters.TimeOfDay.
	StageFlow []string     `json:"stageFlow,omitempty"`
	Filters   ThemeFilters `json:"filters"`
	// Keywords only contribute a scoring bonus, they never hard-filter.
	Keywords []string `json:"keywords"`
}

// ThemeSummary is the listing shape for the theme catalog endpoint.
type ThemeSummary struct {
	ThemeID     string `json:"themeId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Summary returns the listing shape for a theme.
func (t *CrawlTheme) Summary() ThemeSummary {
	return ThemeSummary{ThemeID: t.ThemeID, Name: t.Name, Description: t.Description}
}
