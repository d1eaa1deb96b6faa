package helper

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"roam-backend/internal/domain/model"
)

// DistanceMeters returns the great-circle distance in meters between two
// coordinates. NaN inputs propagate; callers pre-filter invalid venues.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}

// DistanceFromLocation returns the distance in meters from a point to a venue.
func DistanceFromLocation(origin model.Location, v *model.Venue) float64 {
	return DistanceMeters(origin.Lat, origin.Lon, v.Lat, v.Lon)
}

// SortByDistanceFrom orders venues by ascending distance from the origin.
func SortByDistanceFrom(origin model.Location, venues []*model.Venue) {
	sort.SliceStable(venues, func(i, j int) bool {
		return DistanceFromLocation(origin, venues[i]) < DistanceFromLocation(origin, venues[j])
	})
}

// BoundsOf returns the padded bounding box around a set of stops, for area
// queries over saved routes. Returns the zero bound when no stop has
// coordinates.
func BoundsOf(stops []*model.Venue, padding float64) orb.Bound {
	var bound orb.Bound
	first := true
	for _, s := range stops {
		if s == nil || !s.HasValidCoords() {
			continue
		}
		p := orb.Point{s.Lon, s.Lat}
		if first {
			bound = orb.Bound{Min: p, Max: p}
			first = false
			continue
		}
		bound = bound.Extend(p)
	}
	if first {
		return orb.Bound{}
	}
	return bound.Pad(padding)
}
