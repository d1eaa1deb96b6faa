package repository

import (
	"context"

	"roam-backend/internal/domain/model"
)

// CrawlCacheRepository keeps generated crawls for a short while so clients
// can re-fetch a result by id after navigation.
type CrawlCacheRepository interface {
	Save(ctx context.Context, crawl *model.CachedCrawl, ttlHours int) error
	Get(ctx context.Context, crawlID string) (*model.CachedCrawl, error)
}
