package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam-backend/internal/domain/model"
)

// fakeFavoritesUseCase keeps favorites in memory.
type fakeFavoritesUseCase struct {
	favorites map[string]*model.Favorite
}

func newFakeFavoritesUseCase() *fakeFavoritesUseCase {
	return &fakeFavoritesUseCase{favorites: map[string]*model.Favorite{}}
}

func (f *fakeFavoritesUseCase) AddFavorite(ctx context.Context, userID string, venue *model.Venue) (*model.Favorite, error) {
	fav := &model.Favorite{UserID: userID, VenueID: venue.Key(), Venue: venue}
	f.favorites[userID+"/"+fav.VenueID] = fav
	return fav, nil
}

func (f *fakeFavoritesUseCase) ListFavorites(ctx context.Context, userID string) ([]*model.Favorite, error) {
	out := []*model.Favorite{}
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeFavoritesUseCase) RemoveFavorite(ctx context.Context, userID, venueID string) error {
	delete(f.favorites, userID+"/"+venueID)
	return nil
}

func favoritesRouter(fake *fakeFavoritesUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFavoritesHandler(fake)

	router := gin.New()
	router.POST("/favorites", h.PostFavorite)
	router.GET("/favorites", h.GetFavorites)
	router.DELETE("/favorites/:venueId", h.DeleteFavorite)
	return router
}

func TestPostFavorite(t *testing.T) {
	venue := model.Venue{ID: "v1", Name: "Bar", Lat: 33.75, Lon: -84.39}

	t.Run("pins with user header", func(t *testing.T) {
		fake := newFakeFavoritesUseCase()
		router := favoritesRouter(fake)

		data, _ := json.Marshal(venue)
		req := httptest.NewRequest(http.MethodPost, "/favorites", bytes.NewReader(data))
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, fake.favorites, 1)
	})

	t.Run("missing user header is rejected", func(t *testing.T) {
		router := favoritesRouter(newFakeFavoritesUseCase())

		data, _ := json.Marshal(venue)
		req := httptest.NewRequest(http.MethodPost, "/favorites", bytes.NewReader(data))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetFavorites(t *testing.T) {
	fake := newFakeFavoritesUseCase()
	fake.favorites["user-1/v1"] = &model.Favorite{UserID: "user-1", VenueID: "v1"}
	fake.favorites["user-2/v2"] = &model.Favorite{UserID: "user-2", VenueID: "v2"}
	router := favoritesRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set(userIDHeader, "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Favorites []*model.Favorite `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, "v1", resp.Favorites[0].VenueID)
}

func TestDeleteFavorite(t *testing.T) {
	fake := newFakeFavoritesUseCase()
	fake.favorites["user-1/v1"] = &model.Favorite{UserID: "user-1", VenueID: "v1"}
	router := favoritesRouter(fake)

	req := httptest.NewRequest(http.MethodDelete, "/favorites/v1", nil)
	req.Header.Set(userIDHeader, "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, fake.favorites)
}
