package model

import "time"

// RouteOptions is the per-invocation planner configuration. Zero values mean
// "use the default"; FilterOpen is a pointer so an explicit false survives
// JSON decoding.
type RouteOptions struct {
	StartTime         time.Time `json:"startTime,omitempty"`
	MaxStops          int       `json:"maxStops,omitempty"`
	FilterOpen        *bool     `json:"filterOpen,omitempty"`
	CustomStart       *Location `json:"customStart,omitempty"`
	LatestEndHour     float64   `json:"latestEndHour,omitempty"`
	MinVibeSimilarity float64   `json:"minVibeSimilarity,omitempty"`
	MaxDistMeal       float64   `json:"maxDistMeal,omitempty"`
	MaxDistOther      float64   `json:"maxDistOther,omitempty"`
	Theme             string    `json:"theme,omitempty"`
}

// ResolvedOptions is RouteOptions with every default filled in. The planner
// only ever sees this form.
type ResolvedOptions struct {
	StartTime         time.Time
	MaxStops          int
	FilterOpen        bool
	LatestEndHour     float64
	MinVibeSimilarity float64
	MaxDistMeal       float64
	MaxDistOther      float64
	WindowMinutes     int
	Theme             string
}

// Resolve fills defaults, using now for a missing start time. The late-night
// cutoff extends to 3am Thursday through Saturday.
func (o *RouteOptions) Resolve(now time.Time) ResolvedOptions {
	r := ResolvedOptions{
		StartTime:         now,
		MaxStops:          DefaultMaxStops,
		FilterOpen:        true,
		MinVibeSimilarity: 0,
		MaxDistMeal:       DefaultMaxDistMeal,
		MaxDistOther:      DefaultMaxDistOther,
		WindowMinutes:     RelaxedWindowMinutes,
	}
	if o != nil {
		if !o.StartTime.IsZero() {
			r.StartTime = o.StartTime
		}
		if o.MaxStops > 0 {
			r.MaxStops = o.MaxStops
		}
		if o.FilterOpen != nil {
			r.FilterOpen = *o.FilterOpen
		}
		if o.LatestEndHour > 0 {
			r.LatestEndHour = o.LatestEndHour
		}
		if o.MinVibeSimilarity > 0 {
			r.MinVibeSimilarity = o.MinVibeSimilarity
		}
		if o.MaxDistMeal > 0 {
			r.MaxDistMeal = o.MaxDistMeal
		}
		if o.MaxDistOther > 0 {
			r.MaxDistOther = o.MaxDistOther
		}
		r.Theme = o.Theme
	}
	if r.LatestEndHour == 0 {
		if LateNightDay(r.StartTime.Weekday()) {
			r.LatestEndHour = LateNightLatestEndHour
		} else {
			r.LatestEndHour = WeekdayLatestEndHour
		}
	}
	return r
}

// Origin returns the planning origin: the custom start override when valid,
// otherwise the supplied user coordinates.
func (o *RouteOptions) Origin(userLat, userLon float64) Location {
	if o != nil && o.CustomStart != nil {
		c := Venue{Lat: o.CustomStart.Lat, Lon: o.CustomStart.Lon}
		if c.HasValidCoords() {
			return *o.CustomStart
		}
	}
	return Location{Lat: userLat, Lon: userLon}
}

// CrawlRequest is the body of POST /generate-crawl.
type CrawlRequest struct {
	Venues  []*Venue      `json:"venues"`
	UserLat float64       `json:"userLat"`
	UserLon float64       `json:"userLon"`
	Options *RouteOptions `json:"options,omitempty"`
}

// CrawlResponse is the success body of POST /generate-crawl.
type CrawlResponse struct {
	Route []*Venue `json:"route"`
}

// ThemeCrawlRequest is the body of POST /generate-theme.
type ThemeCrawlRequest struct {
	ThemeID string        `json:"themeId"`
	Venues  []*Venue      `json:"venues"`
	UserLat float64       `json:"userLat"`
	UserLon float64       `json:"userLon"`
	Options *RouteOptions `json:"options,omitempty"`
}

// ThemeCrawlResponse is the success body of POST /generate-theme.
// FallbackUsed is true when the strict attempt produced no route and the
// relaxed retry was used instead.
type ThemeCrawlResponse struct {
	Route        []*Venue `json:"route"`
	FallbackUsed bool     `json:"fallbackUsed"`
	CrawlID      string   `json:"crawlId,omitempty"`
}

// SaveRouteRequest is the body of POST /routes.
type SaveRouteRequest struct {
	Name      string   `json:"name"`
	City      string   `json:"city,omitempty"`
	SourceURL string   `json:"sourceUrl,omitempty"`
	Stops     []*Venue `json:"stops"`
}

// SavedRoute is a persisted crawl.
type SavedRoute struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	City      string    `json:"city,omitempty"`
	SourceURL string    `json:"source_url,omitempty"`
	Stops     []*Venue  `json:"stops"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Favorite is a venue pinned by a user. The full venue record is stored so
// favorites render without a second lookup.
type Favorite struct {
	UserID    string    `json:"user_id"`
	VenueID   string    `json:"venue_id"`
	Venue     *Venue    `json:"data"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// CachedCrawl is a generated crawl kept in the short-lived cache so clients
// can re-fetch a result by id.
type CachedCrawl struct {
	CrawlID      string    `json:"crawl_id"`
	ThemeID      string    `json:"theme_id,omitempty"`
	Route        []*Venue  `json:"route"`
	FallbackUsed bool      `json:"fallback_used"`
	ExpireAt     time.Time `json:"expire_at"`
}
