package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/usecase"
)

// CrawlHandler serves the crawl generation endpoints.
type CrawlHandler struct {
	crawlUseCase usecase.CrawlUseCase
}

func NewCrawlHandler(crawlUseCase usecase.CrawlUseCase) *CrawlHandler {
	return &CrawlHandler{
		crawlUseCase: crawlUseCase,
	}
}

// PostGenerateCrawl plans a location-based crawl.
// POST /generate-crawl
func (h *CrawlHandler) PostGenerateCrawl(c *gin.Context) {
	var req model.CrawlRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := validateCrawlInput(req.Venues, req.UserLat, req.UserLon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": err.Error(),
		})
		return
	}

	response, err := h.crawlUseCase.GenerateCrawl(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to generate crawl",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// PostGenerateTheme plans a themed crawl.
// POST /generate-theme
func (h *CrawlHandler) PostGenerateTheme(c *gin.Context) {
	var req model.ThemeCrawlRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if req.ThemeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": "themeId is required",
		})
		return
	}
	if err := validateCrawlInput(req.Venues, req.UserLat, req.UserLon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": err.Error(),
		})
		return
	}

	response, err := h.crawlUseCase.GenerateThemeCrawl(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrThemeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "theme not found",
				"details": err.Error(),
			})
		case errors.Is(err, model.ErrNoFeasibleRoute):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "no feasible route",
				"details": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to generate themed crawl",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetThemes lists the theme catalog.
// GET /themes
func (h *CrawlHandler) GetThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes": h.crawlUseCase.ListThemes(),
	})
}

// GetCrawl fetches a cached generated crawl by id.
// GET /crawls/:id
func (h *CrawlHandler) GetCrawl(c *gin.Context) {
	crawlID := c.Param("id")
	if crawlID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "crawl id is required",
		})
		return
	}

	crawl, err := h.crawlUseCase.GetCachedCrawl(c.Request.Context(), crawlID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "crawl not found",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to fetch crawl",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, crawl)
}

func validateCrawlInput(venues []*model.Venue, userLat, userLon float64) error {
	if len(venues) == 0 {
		return &ValidationError{Field: "venues", Message: "at least one venue is required"}
	}
	if userLat < -90 || userLat > 90 {
		return &ValidationError{Field: "userLat", Message: "latitude must be between -90 and 90"}
	}
	if userLon < -180 || userLon > 180 {
		return &ValidationError{Field: "userLon", Message: "longitude must be between -180 and 180"}
	}
	return nil
}

// ValidationError names the request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
