package repository

import (
	"context"

	"roam-backend/internal/domain/model"
)

// FavoritesRepository is the simple insert/select/delete store for venues a
// user has pinned.
type FavoritesRepository interface {
	Upsert(ctx context.Context, fav *model.Favorite) error
	ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error)
	Delete(ctx context.Context, userID, venueID string) error
}
