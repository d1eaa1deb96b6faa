package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roam-backend/internal/usecase"
)

// VenuesHandler serves the server-side venue pool.
type VenuesHandler struct {
	venuesUseCase usecase.VenuesUseCase
}

func NewVenuesHandler(venuesUseCase usecase.VenuesUseCase) *VenuesHandler {
	return &VenuesHandler{
		venuesUseCase: venuesUseCase,
	}
}

// GetVenues lists venues, optionally filtered by city.
// GET /venues?city=atlanta
func (h *VenuesHandler) GetVenues(c *gin.Context) {
	city := c.Query("city")

	venues, err := h.venuesUseCase.ListVenues(c.Request.Context(), city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to load venues",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venues": venues,
		"count":  len(venues),
	})
}
