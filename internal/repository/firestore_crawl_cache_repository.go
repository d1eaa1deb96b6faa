package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/repository"
	"roam-backend/internal/infrastructure/firestore"
)

const crawlCollection = "generatedCrawls"

type FirestoreCrawlCacheRepository struct {
	client *firestore.FirestoreClient
}

func NewFirestoreCrawlCacheRepository(client *firestore.FirestoreClient) repository.CrawlCacheRepository {
	return &FirestoreCrawlCacheRepository{
		client: client,
	}
}

// firestoreCachedCrawl is the stored document shape. The route is kept as a
// JSON blob so venue records round-trip without Firestore field mappings.
// expire_at drives the collection's TTL policy.
type firestoreCachedCrawl struct {
	ThemeID      string    `firestore:"theme_id"`
	RouteJSON    string    `firestore:"route_json"`
	FallbackUsed bool      `firestore:"fallback_used"`
	ExpireAt     time.Time `firestore:"expire_at"`
}

func (r *FirestoreCrawlCacheRepository) Save(ctx context.Context, crawl *model.CachedCrawl, ttlHours int) error {
	if crawl.CrawlID == "" {
		crawl.CrawlID = fmt.Sprintf("crawl_%s", uuid.New().String())
	}
	crawl.ExpireAt = time.Now().Add(time.Duration(ttlHours) * time.Hour)

	routeJSON, err := json.Marshal(crawl.Route)
	if err != nil {
		return fmt.Errorf("failed to marshal crawl route: %w", err)
	}

	doc := firestoreCachedCrawl{
		ThemeID:      crawl.ThemeID,
		RouteJSON:    string(routeJSON),
		FallbackUsed: crawl.FallbackUsed,
		ExpireAt:     crawl.ExpireAt,
	}

	_, err = r.client.Client().Collection(crawlCollection).Doc(crawl.CrawlID).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to cache crawl %s: %w", crawl.CrawlID, err)
	}

	log.Printf("crawl cached: %s (expires in %d hours)", crawl.CrawlID, ttlHours)
	return nil
}

func (r *FirestoreCrawlCacheRepository) Get(ctx context.Context, crawlID string) (*model.CachedCrawl, error) {
	snap, err := r.client.Client().Collection(crawlCollection).Doc(crawlID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("crawl %s: %w", crawlID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch cached crawl: %w", err)
	}

	var doc firestoreCachedCrawl
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode cached crawl: %w", err)
	}

	// TTL deletion is eventual; an expired document is already a miss.
	if !doc.ExpireAt.IsZero() && time.Now().After(doc.ExpireAt) {
		return nil, fmt.Errorf("crawl %s expired: %w", crawlID, model.ErrNotFound)
	}

	crawl := &model.CachedCrawl{
		CrawlID:      crawlID,
		ThemeID:      doc.ThemeID,
		FallbackUsed: doc.FallbackUsed,
		ExpireAt:     doc.ExpireAt,
	}
	if doc.RouteJSON != "" {
		if err := json.Unmarshal([]byte(doc.RouteJSON), &crawl.Route); err != nil {
			return nil, fmt.Errorf("failed to decode cached route: %w", err)
		}
	}

	return crawl, nil
}
