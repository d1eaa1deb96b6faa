package usecase

import (
	"context"
	"fmt"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/repository"
)

type FavoritesUseCase interface {
	AddFavorite(ctx context.Context, userID string, venue *model.Venue) (*model.Favorite, error)
	ListFavorites(ctx context.Context, userID string) ([]*model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, venueID string) error
}

type favoritesUseCaseImpl struct {
	repo repository.FavoritesRepository
}

func NewFavoritesUseCase(repo repository.FavoritesRepository) FavoritesUseCase {
	return &favoritesUseCaseImpl{repo: repo}
}

func (u *favoritesUseCaseImpl) AddFavorite(ctx context.Context, userID string, venue *model.Venue) (*model.Favorite, error) {
	if venue == nil || venue.Key() == "" {
		return nil, fmt.Errorf("favorite requires a venue with an id or name")
	}

	fav := &model.Favorite{
		UserID:  userID,
		VenueID: venue.Key(),
		Venue:   venue,
	}

	if err := u.repo.Upsert(ctx, fav); err != nil {
		return nil, fmt.Errorf("failed to save favorite: %w", err)
	}

	return fav, nil
}

func (u *favoritesUseCaseImpl) ListFavorites(ctx context.Context, userID string) ([]*model.Favorite, error) {
	favorites, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if favorites == nil {
		favorites = []*model.Favorite{}
	}
	return favorites, nil
}

func (u *favoritesUseCaseImpl) RemoveFavorite(ctx context.Context, userID, venueID string) error {
	return u.repo.Delete(ctx, userID, venueID)
}
