package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/repository"
	"roam-backend/internal/infrastructure/database"
)

type SupabaseRoutesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseRoutesRepository(client *database.SupabaseClient) repository.SavedRoutesRepository {
	return &SupabaseRoutesRepository{
		client: client,
	}
}

// savedRouteDB is the insert shape. route_bounds holds the padded bounding
// box of the stops so routes can later be searched by area with PostGIS.
type savedRouteDB struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	City        string         `json:"city,omitempty"`
	SourceURL   string         `json:"source_url,omitempty"`
	Stops       []*model.Venue `json:"stops"`
	RouteBounds *GeoPolygon    `json:"route_bounds,omitempty"`
}

func (r *SupabaseRoutesRepository) Create(ctx context.Context, route *model.SavedRoute) error {
	row := savedRouteDB{
		ID:          route.ID,
		UserID:      route.UserID,
		Name:        route.Name,
		Slug:        route.Slug,
		City:        route.City,
		SourceURL:   route.SourceURL,
		Stops:       route.Stops,
		RouteBounds: StopsToBoundsPolygon(route.Stops),
	}

	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal saved route: %w", err)
	}

	_, _, err = r.client.GetClient().From("saved_routes").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create saved route: %w", err)
	}

	return nil
}

func (r *SupabaseRoutesRepository) ListByUser(ctx context.Context, userID string) ([]*model.SavedRoute, error) {
	data, count, err := r.client.GetClient().From("saved_routes").Select("*", "exact", false).Eq("user_id", userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list saved routes: %w", err)
	}
	_ = count

	var routes []*model.SavedRoute
	if err := json.Unmarshal([]byte(data), &routes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved routes: %w", err)
	}

	return routes, nil
}

func (r *SupabaseRoutesRepository) GetBySlug(ctx context.Context, slug string) (*model.SavedRoute, error) {
	data, count, err := r.client.GetClient().From("saved_routes").Select("*", "exact", false).Eq("slug", slug).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved route: %w", err)
	}
	_ = count

	var routes []*model.SavedRoute
	if err := json.Unmarshal([]byte(data), &routes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved route: %w", err)
	}

	if len(routes) == 0 {
		return nil, fmt.Errorf("saved route %q: %w", slug, model.ErrNotFound)
	}

	return routes[0], nil
}

func (r *SupabaseRoutesRepository) Delete(ctx context.Context, userID, id string) error {
	_, _, err := r.client.GetClient().From("saved_routes").Delete("", "").Eq("user_id", userID).Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete saved route: %w", err)
	}

	return nil
}
