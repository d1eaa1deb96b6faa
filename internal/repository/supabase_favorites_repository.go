package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/repository"
	"roam-backend/internal/infrastructure/database"
)

type SupabaseFavoritesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseFavoritesRepository(client *database.SupabaseClient) repository.FavoritesRepository {
	return &SupabaseFavoritesRepository{
		client: client,
	}
}

// favoriteDB is the insert shape. created_at is left to the database
// default.
type favoriteDB struct {
	UserID  string       `json:"user_id"`
	VenueID string       `json:"venue_id"`
	Data    *model.Venue `json:"data"`
}

func (r *SupabaseFavoritesRepository) Upsert(ctx context.Context, fav *model.Favorite) error {
	row := favoriteDB{
		UserID:  fav.UserID,
		VenueID: fav.VenueID,
		Data:    fav.Venue,
	}

	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite: %w", err)
	}

	_, _, err = r.client.GetClient().From("favorites").Insert(string(data), true, "user_id,venue_id", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to upsert favorite: %w", err)
	}

	return nil
}

func (r *SupabaseFavoritesRepository) ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error) {
	data, count, err := r.client.GetClient().From("favorites").Select("*", "exact", false).Eq("user_id", userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	_ = count

	var favorites []*model.Favorite
	if err := json.Unmarshal([]byte(data), &favorites); err != nil {
		return nil, fmt.Errorf("failed to unmarshal favorites: %w", err)
	}

	return favorites, nil
}

func (r *SupabaseFavoritesRepository) Delete(ctx context.Context, userID, venueID string) error {
	_, _, err := r.client.GetClient().From("favorites").Delete("", "").Eq("user_id", userID).Eq("venue_id", venueID).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}
