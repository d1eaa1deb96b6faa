package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/usecase"
)

// FavoritesHandler serves the pinned-venue endpoints.
type FavoritesHandler struct {
	favoritesUseCase usecase.FavoritesUseCase
}

func NewFavoritesHandler(favoritesUseCase usecase.FavoritesUseCase) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesUseCase: favoritesUseCase,
	}
}

// PostFavorite pins a venue for the calling user.
// POST /favorites
func (h *FavoritesHandler) PostFavorite(c *gin.Context) {
	userID := userIDFromRequest(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-User-ID header is required",
		})
		return
	}

	var venue model.Venue
	if err := c.ShouldBindJSON(&venue); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	fav, err := h.favoritesUseCase.AddFavorite(c.Request.Context(), userID, &venue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save favorite",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// GetFavorites lists the calling user's pinned venues.
// GET /favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	userID := userIDFromRequest(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-User-ID header is required",
		})
		return
	}

	favorites, err := h.favoritesUseCase.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to list favorites",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": favorites,
	})
}

// DeleteFavorite unpins a venue.
// DELETE /favorites/:venueId
func (h *FavoritesHandler) DeleteFavorite(c *gin.Context) {
	userID := userIDFromRequest(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-User-ID header is required",
		})
		return
	}

	venueID := c.Param("venueId")
	if venueID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "venue id is required",
		})
		return
	}

	if err := h.favoritesUseCase.RemoveFavorite(c.Request.Context(), userID, venueID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to delete favorite",
			"details": err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
