package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/usecase"
)

// SavedRoutesHandler serves the named-crawl persistence endpoints.
type SavedRoutesHandler struct {
	savedRoutesUseCase usecase.SavedRoutesUseCase
}

func NewSavedRoutesHandler(savedRoutesUseCase usecase.SavedRoutesUseCase) *SavedRoutesHandler {
	return &SavedRoutesHandler{
		savedRoutesUseCase: savedRoutesUseCase,
	}
}

// PostRoute saves a named crawl for the calling user.
// POST /routes
func (h *SavedRoutesHandler) PostRoute(c *gin.Context) {
	userID := userIDFromRequest(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-User-ID header is required",
		})
		return
	}

	var req model.SaveRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": "name is required",
		})
		return
	}
	if len(req.Stops) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": "at least one stop is required",
		})
		return
	}

	route, err := h.savedRoutesUseCase.CreateRoute(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save route",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, route)
}

// GetRoutes lists the calling user's saved crawls.
// GET /routes
func (h *SavedRoutesHandler) GetRoutes(c *gin.Context) {
	userID := userIDFromRequest(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-User-ID header is required",
		})
		return
	}

	routes, err := h.savedRoutesUseCase.ListRoutes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to list saved routes",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"routes": routes,
	})
}

// GetRoute fetches a saved crawl by slug. Slugs are shareable, so no user
// check here.
// GET /routes/:slug
func (h *SavedRoutesHandler) GetRoute(c *gin.Context) {
	routeSlug := c.Param("slug")
	if routeSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "route slug is required",
		})
		return
	}

	route, err := h.savedRoutesUseCase.GetRoute(c.Request.Context(), routeSlug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "route not found",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to fetch route",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, route)
}

// DeleteRoute removes one of the calling user's saved crawls.
// DELETE /routes/:slug  (the path segment holds the route id)
func (h *SavedRoutesHandler) DeleteRoute(c *gin.Context) {
	userID := userIDFromRequest(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-User-ID header is required",
		})
		return
	}

	id := c.Param("slug")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "route id is required",
		})
		return
	}

	if err := h.savedRoutesUseCase.DeleteRoute(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to delete route",
			"details": err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
