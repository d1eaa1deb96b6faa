package repository

import (
	"context"

	"roam-backend/internal/domain/model"
)

// SavedRoutesRepository persists named crawls. No transactional guarantees
// are offered; a save either lands or returns an error.
type SavedRoutesRepository interface {
	Create(ctx context.Context, route *model.SavedRoute) error
	ListByUser(ctx context.Context, userID string) ([]*model.SavedRoute, error)
	GetBySlug(ctx context.Context, slug string) (*model.SavedRoute, error)
	Delete(ctx context.Context, userID, id string) error
}
