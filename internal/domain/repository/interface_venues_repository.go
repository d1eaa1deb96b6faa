package repository

import (
	"context"

	"roam-backend/internal/domain/model"
)

// VenuesRepository loads the venue pool server-side. The dataset is an
// opaque external input; the engine never writes to it.
type VenuesRepository interface {
	FindAll(ctx context.Context) ([]*model.Venue, error)
	FindByCity(ctx context.Context, city string) ([]*model.Venue, error)
}
