package usecase

import (
	"context"
	"fmt"
	"log"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/repository"
	"roam-backend/internal/domain/service"
)

// crawlCacheTTLHours is how long a generated themed crawl stays fetchable
// by id.
const crawlCacheTTLHours = 2

type CrawlUseCase interface {
	// GenerateCrawl plans a location-based crawl. An empty route is a valid
	// result.
	GenerateCrawl(ctx context.Context, req *model.CrawlRequest) (*model.CrawlResponse, error)

	// GenerateThemeCrawl plans a themed crawl, retrying once with relaxed
	// open-hours filtering when the strict attempt yields nothing.
	GenerateThemeCrawl(ctx context.Context, req *model.ThemeCrawlRequest) (*model.ThemeCrawlResponse, error)

	// ListThemes returns the theme catalog.
	ListThemes() []model.ThemeSummary

	// GetCachedCrawl fetches a previously generated crawl by id.
	GetCachedCrawl(ctx context.Context, crawlID string) (*model.CachedCrawl, error)
}

type crawlUseCaseImpl struct {
	builder   *service.RouteBuilder
	cacheRepo repository.CrawlCacheRepository
}

// NewCrawlUseCase wires the planner. cacheRepo may be nil, in which case
// generated crawls are not re-fetchable by id.
func NewCrawlUseCase(builder *service.RouteBuilder, cacheRepo repository.CrawlCacheRepository) CrawlUseCase {
	return &crawlUseCaseImpl{
		builder:   builder,
		cacheRepo: cacheRepo,
	}
}

func (u *crawlUseCaseImpl) GenerateCrawl(ctx context.Context, req *model.CrawlRequest) (*model.CrawlResponse, error) {
	route := u.builder.BuildGeneric(req.Venues, req.UserLat, req.UserLon, req.Options)
	log.Printf("crawl generated: %d stops from %d venues", len(route), len(req.Venues))

	return &model.CrawlResponse{Route: route}, nil
}

func (u *crawlUseCaseImpl) GenerateThemeCrawl(ctx context.Context, req *model.ThemeCrawlRequest) (*model.ThemeCrawlResponse, error) {
	theme, ok := model.ThemeByID(req.ThemeID)
	if !ok {
		return nil, fmt.Errorf("theme %q: %w", req.ThemeID, model.ErrThemeNotFound)
	}

	route := u.builder.BuildThemed(req.Venues, req.UserLat, req.UserLon, theme, req.Options)
	fallbackUsed := false

	if len(route) == 0 {
		relaxed := relaxedOptions(req.Options)
		route = u.builder.BuildThemed(req.Venues, req.UserLat, req.UserLon, theme, relaxed)
		fallbackUsed = true
		log.Printf("themed crawl %s: strict attempt empty, relaxed retry found %d stops", req.ThemeID, len(route))
	}

	if len(route) == 0 {
		return nil, fmt.Errorf("theme %q: %w", req.ThemeID, model.ErrNoFeasibleRoute)
	}

	resp := &model.ThemeCrawlResponse{
		Route:        route,
		FallbackUsed: fallbackUsed,
	}

	if u.cacheRepo != nil {
		cached := &model.CachedCrawl{
			ThemeID:      req.ThemeID,
			Route:        route,
			FallbackUsed: fallbackUsed,
		}
		if err := u.cacheRepo.Save(ctx, cached, crawlCacheTTLHours); err != nil {
			// Caching is best effort; the generated route is still returned.
			log.Printf("failed to cache themed crawl: %v", err)
		} else {
			resp.CrawlID = cached.CrawlID
		}
	}

	return resp, nil
}

func (u *crawlUseCaseImpl) ListThemes() []model.ThemeSummary {
	return model.ThemeSummaries()
}

func (u *crawlUseCaseImpl) GetCachedCrawl(ctx context.Context, crawlID string) (*model.CachedCrawl, error) {
	if u.cacheRepo == nil {
		return nil, fmt.Errorf("crawl cache disabled: %w", model.ErrNotFound)
	}
	return u.cacheRepo.Get(ctx, crawlID)
}

// relaxedOptions copies the caller's options with open-hours filtering
// turned off for the fallback retry.
func relaxedOptions(opts *model.RouteOptions) *model.RouteOptions {
	relaxed := model.RouteOptions{}
	if opts != nil {
		relaxed = *opts
	}
	filterOpen := false
	relaxed.FilterOpen = &filterOpen
	return &relaxed
}
