package repository

import (
	"github.com/paulmach/orb"

	"roam-backend/internal/domain/helper"
	"roam-backend/internal/domain/model"
)

// GeoPolygon is the GeoJSON representation PostGIS accepts for polygon
// columns.
type GeoPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// routeBoundsPadding widens the stop bounding box by roughly 100m so edge
// stops still fall inside area queries.
const routeBoundsPadding = 0.001

// StopsToBoundsPolygon builds the padded bounding-box polygon around a
// route's stops. Returns nil when no stop has coordinates.
func StopsToBoundsPolygon(stops []*model.Venue) *GeoPolygon {
	bound := helper.BoundsOf(stops, routeBoundsPadding)
	if bound == (orb.Bound{}) {
		return nil
	}

	minLng := bound.Min.Lon()
	minLat := bound.Min.Lat()
	maxLng := bound.Max.Lon()
	maxLat := bound.Max.Lat()

	return &GeoPolygon{
		Type: "Polygon",
		Coordinates: [][][]float64{
			{
				{minLng, minLat},
				{maxLng, minLat},
				{maxLng, maxLat},
				{minLng, maxLat},
				{minLng, minLat},
			},
		},
	}
}
