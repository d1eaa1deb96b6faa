package service

import (
	"sort"
	"time"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/strategy"
)

// ScoredCandidate pairs a venue with its computed score. Scores live here,
// never on the shared venue records, so concurrent planning calls stay
// isolated.
type ScoredCandidate struct {
	Venue *model.Venue
	Score float64
}

// SortByScore orders candidates by descending score. The sort is stable:
// equal scores keep pool order, which keeps planning deterministic.
func SortByScore(candidates []*model.Venue, strat strategy.Strategy, origin model.Location, prev *model.Venue) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i, v := range candidates {
		scored[i] = ScoredCandidate{Venue: v, Score: strat.Score(v, origin, prev)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// RouteBuilder drives the greedy stage loop: one candidate selection, one
// scoring pass, and one pick per stage, advancing a simulated clock and
// position. It holds no state between calls; every build is a pure function
// of its inputs.
type RouteBuilder struct {
	now func() time.Time
}

func NewRouteBuilder() *RouteBuilder {
	return &RouteBuilder{now: time.Now}
}

// NewRouteBuilderAt pins the builder's clock, for deterministic planning in
// tests.
func NewRouteBuilderAt(now func() time.Time) *RouteBuilder {
	return &RouteBuilder{now: now}
}

// BuildGeneric plans a location-based crawl.
func (b *RouteBuilder) BuildGeneric(venues []*model.Venue, userLat, userLon float64, opts *model.RouteOptions) []*model.Venue {
	resolved := opts.Resolve(b.now())
	return b.build(venues, opts.Origin(userLat, userLon), resolved, strategy.NewGenericStrategy(resolved))
}

// BuildThemed plans a crawl against a theme profile.
func (b *RouteBuilder) BuildThemed(venues []*model.Venue, userLat, userLon float64, theme *model.CrawlTheme, opts *model.RouteOptions) []*model.Venue {
	resolved := opts.Resolve(b.now())
	return b.build(venues, opts.Origin(userLat, userLon), resolved, strategy.NewThemedStrategy(theme, resolved))
}

// build runs the stage loop. A stage with no candidates is skipped, not
// retried or backtracked; the loop stops when stages run out, the stop count
// is reached, or the clock would pass the end-of-day cutoff. An empty route
// is a valid result meaning no feasible plan.
func (b *RouteBuilder) build(venues []*model.Venue, origin model.Location, opts model.ResolvedOptions, strat strategy.Strategy) []*model.Venue {
	route := []*model.Venue{}

	pool := model.NormalizePool(venues)
	if len(pool) == 0 {
		return route
	}

	stages := strat.PlanStages(opts.StartTime)
	cutoff := latestEndTime(opts.StartTime, opts.LatestEndHour)

	currentTime := opts.StartTime
	position := origin
	var prev *model.Venue
	visited := make(map[string]struct{})

	for i := 0; i < len(stages) && len(route) < opts.MaxStops; i++ {
		arrival := currentTime.Add(time.Duration(model.ArrivalBufferHours * float64(time.Hour)))
		if arrival.After(cutoff) {
			break
		}

		candidates := strat.SelectCandidates(pool, stages[i], visited, position, prev, arrival)
		if len(candidates) == 0 {
			continue
		}

		next := SortByScore(candidates, strat, position, prev)[0].Venue

		visitEnd := currentTime.Add(time.Duration(next.VisitDuration() * float64(time.Hour)))
		if visitEnd.After(cutoff) {
			break
		}

		route = append(route, next)
		visited[next.Key()] = struct{}{}
		position = next.ToLocation()
		prev = next
		currentTime = visitEnd
	}

	return route
}

// latestEndTime anchors the cutoff hour to the start date's midnight, so an
// end hour of 27 lands at 3am the following day.
func latestEndTime(start time.Time, endHour float64) time.Time {
	y, m, d := start.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	return midnight.Add(time.Duration(endHour * float64(time.Hour)))
}
