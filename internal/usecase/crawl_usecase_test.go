package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/service"
)

// 2026-01-02 is a Friday.
func friday(hour, min int) time.Time {
	return time.Date(2026, 1, 2, hour, min, 0, 0, time.UTC)
}

func pinnedBuilder(at time.Time) *service.RouteBuilder {
	return service.NewRouteBuilderAt(func() time.Time { return at })
}

// fakeCrawlCache records saves and serves gets from memory.
type fakeCrawlCache struct {
	saved map[string]*model.CachedCrawl
}

func newFakeCrawlCache() *fakeCrawlCache {
	return &fakeCrawlCache{saved: map[string]*model.CachedCrawl{}}
}

func (f *fakeCrawlCache) Save(ctx context.Context, crawl *model.CachedCrawl, ttlHours int) error {
	if crawl.CrawlID == "" {
		crawl.CrawlID = "crawl_test"
	}
	f.saved[crawl.CrawlID] = crawl
	return nil
}

func (f *fakeCrawlCache) Get(ctx context.Context, crawlID string) (*model.CachedCrawl, error) {
	crawl, ok := f.saved[crawlID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return crawl, nil
}

func dateNightVenues() []*model.Venue {
	return []*model.Venue{
		{ID: "dinner-1", Name: "Marrow", Type: "dinner", Vibe: "romantic, dim", Tags: "dinner, candlelit",
			Price: "$$$", TimeCategory: "evening", Lat: 33.7500, Lon: -84.3880},
		{ID: "dessert-1", Name: "Sugar", Type: "dessert", Vibe: "sweet, cozy", Tags: "dessert, late",
			Price: "$$", TimeCategory: "evening", Lat: 33.7510, Lon: -84.3890},
	}
}

func TestGenerateCrawl(t *testing.T) {
	uc := NewCrawlUseCase(pinnedBuilder(friday(18, 0)), nil)

	t.Run("returns the planned route", func(t *testing.T) {
		req := &model.CrawlRequest{
			Venues: []*model.Venue{
				{ID: "gallery-1", Name: "Gallery", Type: "gallery", Lat: 33.7500, Lon: -84.3880},
			},
			UserLat: 33.7490,
			UserLon: -84.3880,
		}

		resp, err := uc.GenerateCrawl(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, resp.Route, 1)
		assert.Equal(t, "gallery-1", resp.Route[0].ID)
	})

	t.Run("an empty route is a valid result", func(t *testing.T) {
		req := &model.CrawlRequest{
			Venues:  []*model.Venue{{ID: "gym-1", Name: "Gym", Type: "fitness", Lat: 40.0, Lon: -84.3880}},
			UserLat: 33.7490,
			UserLon: -84.3880,
		}

		resp, err := uc.GenerateCrawl(context.Background(), req)

		require.NoError(t, err)
		assert.Empty(t, resp.Route)
	})
}

func TestGenerateThemeCrawl(t *testing.T) {
	t.Run("unknown theme", func(t *testing.T) {
		uc := NewCrawlUseCase(pinnedBuilder(friday(18, 0)), nil)
		_, err := uc.GenerateThemeCrawl(context.Background(), &model.ThemeCrawlRequest{
			ThemeID: "no-such-theme",
			Venues:  dateNightVenues(),
			UserLat: 33.7490, UserLon: -84.3880,
		})

		assert.ErrorIs(t, err, model.ErrThemeNotFound)
	})

	t.Run("strict success does not set fallbackUsed", func(t *testing.T) {
		uc := NewCrawlUseCase(pinnedBuilder(friday(18, 0)), nil)
		resp, err := uc.GenerateThemeCrawl(context.Background(), &model.ThemeCrawlRequest{
			ThemeID: "date-night",
			Venues:  dateNightVenues(),
			UserLat: 33.7490, UserLon: -84.3880,
		})

		require.NoError(t, err)
		assert.False(t, resp.FallbackUsed)
		assert.NotEmpty(t, resp.Route)
	})

	t.Run("relaxed retry flags fallbackUsed", func(t *testing.T) {
		// the only dinner opens an hour after arrival: strict filtering
		// rejects it, the 90-minute relaxed window admits it
		venues := []*model.Venue{
			{ID: "dinner-1", Name: "Marrow", Type: "dinner", Vibe: "romantic, dim", Tags: "dinner, candlelit",
				Price: "$$$", TimeCategory: "evening", Lat: 33.7500, Lon: -84.3880,
				HoursNumeric: model.HoursNumeric{"fri": {Open: 19, Close: 23}}},
		}
		start := friday(17, 0)
		uc := NewCrawlUseCase(pinnedBuilder(start), nil)

		resp, err := uc.GenerateThemeCrawl(context.Background(), &model.ThemeCrawlRequest{
			ThemeID: "date-night",
			Venues:  venues,
			Options: &model.RouteOptions{StartTime: start},
			UserLat: 33.7490, UserLon: -84.3880,
		})

		require.NoError(t, err)
		assert.True(t, resp.FallbackUsed)
		require.Len(t, resp.Route, 1)
		assert.Equal(t, "dinner-1", resp.Route[0].ID)
	})

	t.Run("nothing feasible even relaxed", func(t *testing.T) {
		venues := []*model.Venue{
			{ID: "gym-1", Name: "Gym", Type: "fitness", Lat: 33.7500, Lon: -84.3880},
		}
		uc := NewCrawlUseCase(pinnedBuilder(friday(18, 0)), nil)

		_, err := uc.GenerateThemeCrawl(context.Background(), &model.ThemeCrawlRequest{
			ThemeID: "date-night",
			Venues:  venues,
			UserLat: 33.7490, UserLon: -84.3880,
		})

		assert.ErrorIs(t, err, model.ErrNoFeasibleRoute)
	})

	t.Run("successful crawls are cached and re-fetchable", func(t *testing.T) {
		cache := newFakeCrawlCache()
		uc := NewCrawlUseCase(pinnedBuilder(friday(18, 0)), cache)

		resp, err := uc.GenerateThemeCrawl(context.Background(), &model.ThemeCrawlRequest{
			ThemeID: "date-night",
			Venues:  dateNightVenues(),
			UserLat: 33.7490, UserLon: -84.3880,
		})

		require.NoError(t, err)
		require.NotEmpty(t, resp.CrawlID)

		cached, err := uc.GetCachedCrawl(context.Background(), resp.CrawlID)
		require.NoError(t, err)
		assert.Equal(t, "date-night", cached.ThemeID)
		assert.Len(t, cached.Route, len(resp.Route))
	})
}

func TestListThemes(t *testing.T) {
	uc := NewCrawlUseCase(pinnedBuilder(friday(18, 0)), nil)
	themes := uc.ListThemes()

	assert.Len(t, themes, len(model.CrawlThemes))
}

func TestGetCachedCrawlWithoutCache(t *testing.T) {
	uc := NewCrawlUseCase(pinnedBuilder(friday(18, 0)), nil)
	_, err := uc.GetCachedCrawl(context.Background(), "anything")

	assert.ErrorIs(t, err, model.ErrNotFound)
}
