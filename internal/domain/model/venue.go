package model

import (
	"math"
	"strings"

	"github.com/gosimple/slug"
)

// Location is a plain lat/lon coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DayHours is one open/close pair in fractional hours. Close may exceed 24
// for venues that stay open past midnight (open 18, close 26 means 2am the
// following day).
type DayHours struct {
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
}

// HoursNumeric maps a short weekday key ("sun".."sat") to that day's hours.
// A nil map means hours are unknown and the venue is treated as always open.
// A non-nil map with a missing or nil entry means closed that day.
type HoursNumeric map[string]*DayHours

// Venue is a point of interest as supplied by the caller or the venue store.
type Venue struct {
	ID   string  `json:"id,omitempty" db:"id"`
	Name string  `json:"name" db:"name"`
	Slug string  `json:"slug,omitempty" db:"slug"`
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
	Link string  `json:"link,omitempty" db:"link"`

	// Type holds one or more comma-joined category labels ("coffee,bakery").
	Type string `json:"type,omitempty" db:"type"`
	// Tags and Vibe are free-text comma-separated descriptors.
	Tags string `json:"tags,omitempty" db:"tags"`
	Vibe string `json:"vibe,omitempty" db:"vibe"`
	// Price is a tier expressed as repeated currency symbols, e.g. "$$".
	Price string `json:"price,omitempty" db:"price"`

	HoursNumeric HoursNumeric      `json:"hoursNumeric,omitempty" db:"hours_numeric"`
	DayParts     map[string]string `json:"dayParts,omitempty" db:"day_parts"`
	TimeCategory string            `json:"timeCategory,omitempty" db:"time_category"`
	// Duration is the expected visit length in hours.
	Duration     float64 `json:"duration,omitempty" db:"duration"`
	Neighborhood string  `json:"neighborhood,omitempty" db:"neighborhood"`

	typeTokens []string
}

// Key returns the venue's stable identity: its id, or its name when no id
// was supplied.
func (v *Venue) Key() string {
	if v.ID != "" {
		return v.ID
	}
	return v.Name
}

// URLSlug returns the venue's URL-safe identifier, deriving one from the
// name when the record carries none.
func (v *Venue) URLSlug() string {
	if v.Slug != "" {
		return v.Slug
	}
	return slug.Make(v.Name)
}

// HasValidCoords reports whether the venue has finite coordinates. Venues
// without them are never eligible as route candidates.
func (v *Venue) HasValidCoords() bool {
	return isFinite(v.Lat) && isFinite(v.Lon)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ToLocation returns the venue's coordinates as a Location.
func (v *Venue) ToLocation() Location {
	return Location{Lat: v.Lat, Lon: v.Lon}
}

// Normalize derives the lowercase category token set from the raw Type
// string. Called once at ingestion so no downstream code branches on the
// raw representation.
func (v *Venue) Normalize() {
	v.typeTokens = splitTokens(v.Type)
}

// TypeTokens returns the venue's lowercase category tokens.
func (v *Venue) TypeTokens() []string {
	if v.typeTokens == nil {
		v.Normalize()
	}
	return v.typeTokens
}

func splitTokens(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// PriceTier returns the numeric price tier 1-4 ("$$" = 2), or 0 when the
// venue has no price.
func (v *Venue) PriceTier() int {
	return len(strings.TrimSpace(v.Price))
}

// VisitDuration returns the expected visit length in hours, falling back to
// the planner default.
func (v *Venue) VisitDuration() float64 {
	if v.Duration > 0 {
		return v.Duration
	}
	return DefaultDurationHours
}

// NormalizePool filters out venues without valid coordinates and normalizes
// the survivors. The input slice is not modified.
func NormalizePool(venues []*Venue) []*Venue {
	pool := make([]*Venue, 0, len(venues))
	for _, v := range venues {
		if v == nil || !v.HasValidCoords() {
			continue
		}
		v.Normalize()
		pool = append(pool, v)
	}
	return pool
}
