package strategy

import (
	"time"

	"roam-backend/internal/domain/model"
)

// Strategy is the planning contract the route builder drives: decide the
// stage sequence, narrow the pool for one stage, and score a surviving
// candidate. GenericStrategy serves location-based crawls, ThemedStrategy
// serves theme-profile crawls; which one runs is decided by whether a theme
// id was supplied with the request.
type Strategy interface {
	// PlanStages returns the ordered stage list for a crawl starting at the
	// given time. Each stage is the set of acceptable venue categories for
	// that stop.
	PlanStages(start time.Time) [][]string

	// SelectCandidates filters the pool down to the venues eligible for one
	// stage, given the venues already chosen and the simulated arrival time.
	// All gates are independent boolean checks combined with AND.
	SelectCandidates(pool []*model.Venue, stage []string, visited map[string]struct{}, origin model.Location, prev *model.Venue, arrival time.Time) []*model.Venue

	// Score ranks a candidate against the current position and the previous
	// stop. Higher is better; ties keep pool order.
	Score(v *model.Venue, origin model.Location, prev *model.Venue) float64
}
