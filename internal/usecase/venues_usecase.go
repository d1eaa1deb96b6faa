package usecase

import (
	"context"
	"fmt"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/repository"
)

type VenuesUseCase interface {
	// ListVenues returns the venue pool, optionally filtered to one city.
	ListVenues(ctx context.Context, city string) ([]*model.Venue, error)
}

type venuesUseCaseImpl struct {
	repo repository.VenuesRepository
}

func NewVenuesUseCase(repo repository.VenuesRepository) VenuesUseCase {
	return &venuesUseCaseImpl{repo: repo}
}

func (u *venuesUseCaseImpl) ListVenues(ctx context.Context, city string) ([]*model.Venue, error) {
	var venues []*model.Venue
	var err error

	if city != "" {
		venues, err = u.repo.FindByCity(ctx, city)
	} else {
		venues, err = u.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load venues: %w", err)
	}

	if venues == nil {
		venues = []*model.Venue{}
	}
	return venues, nil
}
