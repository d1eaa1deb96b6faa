package strategy

import (
	"time"

	"roam-backend/internal/domain/helper"
	"roam-backend/internal/domain/model"
)

// fallbackStageFlows supplies a stage sequence for themes that declare a
// time-of-day preference but no explicit stage flow.
var fallbackStageFlows = map[string][]string{
	"morning":    {"coffee", "tea", "fitness", "park", "market"},
	"day":        {"lunch", "gallery", "bookstore", "fitness", "cafe"},
	"evening":    {"dinner", "cocktail", "dessert", "wine bar"},
	"night":      {"bar", "club", "late-night", "speakeasy", "lounge", "wine bar"},
	"late-night": {"after hours", "speakeasy", "bar", "lounge"},
}

const defaultFallbackSlot = "evening"

// Scoring weights for the themed preset. A keyword hit is worth double full
// vibe overlap, deliberately favoring explicit theme fit over generic
// similarity.
const (
	weightVibe    = 1.0
	weightKeyword = 2.0
	weightDist    = 1.0
)

// ThemedStrategy plans crawls against a declarative theme profile: the
// theme's stage flow orders the stops, its filters gate candidates, and its
// keywords earn a scoring bonus.
type ThemedStrategy struct {
	theme *model.CrawlTheme
	opts  model.ResolvedOptions
}

func NewThemedStrategy(theme *model.CrawlTheme, opts model.ResolvedOptions) *ThemedStrategy {
	return &ThemedStrategy{theme: theme, opts: opts}
}

// PlanStages uses the theme's explicit stage flow verbatim. Themes without
// one get a canned flow for the first of their declared time-of-day slots
// that has a mapping, defaulting to the evening flow.
func (s *ThemedStrategy) PlanStages(time.Time) [][]string {
	flow := s.theme.StageFlow
	if len(flow) == 0 {
		flow = fallbackStageFlows[defaultFallbackSlot]
		for _, slot := range s.theme.Filters.TimeOfDay {
			if f, ok := fallbackStageFlows[slot]; ok {
				flow = f
				break
			}
		}
	}
	stages := make([][]string, len(flow))
	for i, category := range flow {
		stages[i] = []string{category}
	}
	return stages
}

// SelectCandidates gates on keyword-expanded category match, not-yet-visited,
// open at arrival (or opening within the relaxed window), and the theme's
// price, tag and vibe filters.
func (s *ThemedStrategy) SelectCandidates(pool []*model.Venue, stage []string, visited map[string]struct{}, origin model.Location, prev *model.Venue, arrival time.Time) []*model.Venue {
	var candidates []*model.Venue
	for _, v := range pool {
		if _, seen := visited[v.Key()]; seen {
			continue
		}
		if !helper.MatchesAnyVenueType(v, stage) {
			continue
		}
		open := helper.IsOpenAt(v, arrival)
		if !open && !s.opts.FilterOpen {
			open = helper.IsOpenWithinWindow(v, arrival, s.opts.WindowMinutes)
		}
		if !open {
			continue
		}
		if !helper.MatchesThemeFilters(v, s.theme.Filters) {
			continue
		}
		candidates = append(candidates, v)
	}
	return candidates
}

// Score is the themed preset: vibe similarity to the previous stop plus a
// keyword bonus, minus a per-kilometer distance penalty.
func (s *ThemedStrategy) Score(v *model.Venue, origin model.Location, prev *model.Venue) float64 {
	vibeScore := 1.0
	if prev != nil {
		vibeScore = helper.VibeSimilarity(prev, v) * weightVibe
	}
	keywordBonus := 0.0
	if helper.HasVibeOrTagMatch(v, s.theme.Keywords) {
		keywordBonus = weightKeyword
	}
	distKm := helper.DistanceFromLocation(origin, v) / 1000
	return vibeScore + keywordBonus - distKm*weightDist
}
