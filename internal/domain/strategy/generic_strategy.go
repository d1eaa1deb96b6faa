package strategy

import (
	"math"
	"strings"
	"time"

	"roam-backend/internal/domain/helper"
	"roam-backend/internal/domain/model"
)

// stageGroups is the default rotation of venue-category groups across a day.
// The planner picks a starting index from the time of day and wraps around.
var stageGroups = [][]string{
	{"coffee", "bakery"},                       // 0 - morning
	{"fitness"},                                // 1 - morning activity
	{"market", "breakfast", "brunch"},          // 2 - late morning / brunch
	{"park", "bookstore", "gallery"},           // 3 - daytime chill
	{"lifestyle", "random gem"},                // 4 - mid-afternoon
	{"lunch"},                                  // 5 - lunch
	{"activity", "gallery", "park"},            // 6 - afternoon activity
	{"cocktail", "random gem"},                 // 7 - pre-dinner chill
	{"dinner"},                                 // 8 - dinner
	{"bar", "cocktail", "speakeasy", "lounge"}, // 9 - nightlife
}

// stageOverrides replaces the default rotation with a focused sequence when
// the generic request names one of these crawl moods.
var stageOverrides = map[string][][]string{
	"romantic":  {{"gallery"}, {"dinner"}, {"cocktail", "lounge"}},
	"foodie":    {{"market"}, {"lunch"}, {"bakery"}, {"dinner"}},
	"nightlife": {{"dinner"}, {"bar"}, {"speakeasy"}, {"lounge"}},
	"culture":   {{"gallery"}, {"bookstore"}, {"art", "museum"}},
	"chill":     {{"park"}, {"bakery"}, {"coffee"}, {"cocktail"}},
}

// GenericStrategy is the location-based planner: a time-of-day rotation
// decides stage categories, candidates pass strict spatial and temporal
// gates, and scoring strongly favors stylistic continuity over distance.
type GenericStrategy struct {
	opts model.ResolvedOptions
}

func NewGenericStrategy(opts model.ResolvedOptions) *GenericStrategy {
	return &GenericStrategy{opts: opts}
}

// PlanStages computes the stage sequence for the start time. The number of
// stages is capped by the hours remaining until the cutoff, the requested
// stop count, and a hard maximum of six.
func (s *GenericStrategy) PlanStages(start time.Time) [][]string {
	h := float64(start.Hour()) + float64(start.Minute())/60
	day := start.Weekday()

	timeLeft := math.Max(0, s.opts.LatestEndHour-h)
	limit := int(math.Floor(timeLeft))
	if s.opts.MaxStops < limit {
		limit = s.opts.MaxStops
	}
	if limit > model.DefaultMaxStops {
		limit = model.DefaultMaxStops
	}
	if limit <= 0 {
		return nil
	}

	if s.opts.Theme != "" {
		if themed, ok := stageOverrides[strings.ToLower(s.opts.Theme)]; ok {
			if limit > len(themed) {
				limit = len(themed)
			}
			return themed[:limit]
		}
	}

	startIdx := 0
	switch {
	case h >= 10.5 && h < 13:
		startIdx = 2 // brunch
	case h >= 13 && h < 16:
		startIdx = 4 // afternoon chill
	case h >= 16 && h < 19:
		startIdx = 6 // pre-dinner
	case h >= 19 && h < 22:
		startIdx = 8 // dinner
	case (model.LateNightDay(day) && h >= 22) || (day == time.Sunday && h < 3):
		startIdx = 9 // nightlife
	}

	plan := make([][]string, 0, len(stageGroups))
	plan = append(plan, stageGroups[startIdx:]...)
	plan = append(plan, stageGroups[:startIdx]...)
	if limit > len(plan) {
		limit = len(plan)
	}
	return plan[:limit]
}

// SelectCandidates applies the strict gates: exact category-token match,
// not yet visited, within the distance cap for its kind, open at arrival
// (or opening soon in relaxed mode), daypart window, and minimum vibe
// similarity to the previous stop.
func (s *GenericStrategy) SelectCandidates(pool []*model.Venue, stage []string, visited map[string]struct{}, origin model.Location, prev *model.Venue, arrival time.Time) []*model.Venue {
	var candidates []*model.Venue
	for _, v := range pool {
		if _, seen := visited[v.Key()]; seen {
			continue
		}
		if !helper.HasType(v, stage) {
			continue
		}
		dist := helper.DistanceFromLocation(origin, v)
		maxDist := s.opts.MaxDistOther
		if helper.IsMealType(v) {
			maxDist = s.opts.MaxDistMeal
		}
		if dist > maxDist {
			continue
		}
		if s.opts.FilterOpen {
			if !helper.IsOpenAt(v, arrival) {
				continue
			}
		} else if !helper.IsOpenWithinWindow(v, arrival, s.opts.WindowMinutes) {
			continue
		}
		if !helper.DaypartAllowed(v, arrival) {
			continue
		}
		if prev != nil && s.opts.MinVibeSimilarity > 0 {
			if helper.VibeSimilarity(prev, v) < s.opts.MinVibeSimilarity {
				continue
			}
		}
		candidates = append(candidates, v)
	}
	return candidates
}

// Score is the generic preset: similarity dominates distance by three orders
// of magnitude, so the crawl stays stylistically coherent and distance only
// breaks near-ties. The first stop has no predecessor and gets full
// similarity credit.
func (s *GenericStrategy) Score(v *model.Venue, origin model.Location, prev *model.Venue) float64 {
	similarity := 1.0
	if prev != nil {
		similarity = helper.VibeSimilarity(prev, v)
	}
	return similarity*1000 - helper.DistanceFromLocation(origin, v)
}
