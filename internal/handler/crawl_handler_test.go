package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/service"
	"roam-backend/internal/usecase"
)

func crawlRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// 2026-01-02 18:00 is a Friday evening
	builder := service.NewRouteBuilderAt(func() time.Time {
		return time.Date(2026, 1, 2, 18, 0, 0, 0, time.UTC)
	})
	h := NewCrawlHandler(usecase.NewCrawlUseCase(builder, nil))

	router := gin.New()
	router.POST("/generate-crawl", h.PostGenerateCrawl)
	router.POST("/generate-theme", h.PostGenerateTheme)
	router.GET("/themes", h.GetThemes)
	router.GET("/crawls/:id", h.GetCrawl)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostGenerateCrawl(t *testing.T) {
	router := crawlRouter()

	t.Run("returns the route", func(t *testing.T) {
		w := postJSON(t, router, "/generate-crawl", model.CrawlRequest{
			Venues: []*model.Venue{
				{ID: "gallery-1", Name: "Gallery", Type: "gallery", Lat: 33.7500, Lon: -84.3880},
			},
			UserLat: 33.7490,
			UserLon: -84.3880,
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp model.CrawlResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Route, 1)
		assert.Equal(t, "gallery-1", resp.Route[0].ID)
	})

	t.Run("empty venue list is rejected", func(t *testing.T) {
		w := postJSON(t, router, "/generate-crawl", model.CrawlRequest{
			UserLat: 33.7490,
			UserLon: -84.3880,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("out-of-range coordinates are rejected", func(t *testing.T) {
		w := postJSON(t, router, "/generate-crawl", model.CrawlRequest{
			Venues:  []*model.Venue{{Name: "v", Lat: 33.75, Lon: -84.39}},
			UserLat: 200,
			UserLon: -84.3880,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/generate-crawl", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostGenerateTheme(t *testing.T) {
	router := crawlRouter()

	validVenues := []*model.Venue{
		{ID: "dinner-1", Name: "Marrow", Type: "dinner", Vibe: "romantic, dim", Tags: "dinner, candlelit",
			Price: "$$$", TimeCategory: "evening", Lat: 33.7500, Lon: -84.3880},
	}

	t.Run("returns route and fallback flag", func(t *testing.T) {
		w := postJSON(t, router, "/generate-theme", model.ThemeCrawlRequest{
			ThemeID: "date-night",
			Venues:  validVenues,
			UserLat: 33.7490,
			UserLon: -84.3880,
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp model.ThemeCrawlResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Route)
		assert.False(t, resp.FallbackUsed)
	})

	t.Run("missing themeId is rejected", func(t *testing.T) {
		w := postJSON(t, router, "/generate-theme", model.ThemeCrawlRequest{
			Venues:  validVenues,
			UserLat: 33.7490,
			UserLon: -84.3880,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown theme maps to 404", func(t *testing.T) {
		w := postJSON(t, router, "/generate-theme", model.ThemeCrawlRequest{
			ThemeID: "no-such-theme",
			Venues:  validVenues,
			UserLat: 33.7490,
			UserLon: -84.3880,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no feasible route maps to 422", func(t *testing.T) {
		w := postJSON(t, router, "/generate-theme", model.ThemeCrawlRequest{
			ThemeID: "date-night",
			Venues:  []*model.Venue{{ID: "gym-1", Name: "Gym", Type: "fitness", Lat: 33.7500, Lon: -84.3880}},
			UserLat: 33.7490,
			UserLon: -84.3880,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetThemes(t *testing.T) {
	router := crawlRouter()

	req := httptest.NewRequest(http.MethodGet, "/themes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Themes []model.ThemeSummary `json:"themes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Themes, len(model.CrawlThemes))
}

func TestGetCrawl(t *testing.T) {
	router := crawlRouter()

	// no cache wired, every lookup is a miss
	req := httptest.NewRequest(http.MethodGet, "/crawls/crawl_missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
