package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/repository"
)

type SavedRoutesUseCase interface {
	CreateRoute(ctx context.Context, userID string, req *model.SaveRouteRequest) (*model.SavedRoute, error)
	ListRoutes(ctx context.Context, userID string) ([]*model.SavedRoute, error)
	GetRoute(ctx context.Context, routeSlug string) (*model.SavedRoute, error)
	DeleteRoute(ctx context.Context, userID, id string) error
}

type savedRoutesUseCaseImpl struct {
	repo repository.SavedRoutesRepository
}

func NewSavedRoutesUseCase(repo repository.SavedRoutesRepository) SavedRoutesUseCase {
	return &savedRoutesUseCaseImpl{repo: repo}
}

func (u *savedRoutesUseCaseImpl) CreateRoute(ctx context.Context, userID string, req *model.SaveRouteRequest) (*model.SavedRoute, error) {
	if req == nil || req.Name == "" {
		return nil, fmt.Errorf("saved route requires a name")
	}
	if len(req.Stops) == 0 {
		return nil, fmt.Errorf("saved route requires at least one stop")
	}

	id := uuid.New().String()

	route := &model.SavedRoute{
		ID:        id,
		UserID:    userID,
		Name:      req.Name,
		Slug:      routeSlug(req.Name, id),
		City:      req.City,
		SourceURL: req.SourceURL,
		Stops:     req.Stops,
	}

	if err := u.repo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to save route: %w", err)
	}

	return route, nil
}

func (u *savedRoutesUseCaseImpl) ListRoutes(ctx context.Context, userID string) ([]*model.SavedRoute, error) {
	routes, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved routes: %w", err)
	}
	if routes == nil {
		routes = []*model.SavedRoute{}
	}
	return routes, nil
}

func (u *savedRoutesUseCaseImpl) GetRoute(ctx context.Context, routeSlug string) (*model.SavedRoute, error) {
	return u.repo.GetBySlug(ctx, routeSlug)
}

func (u *savedRoutesUseCaseImpl) DeleteRoute(ctx context.Context, userID, id string) error {
	return u.repo.Delete(ctx, userID, id)
}

// routeSlug appends a short id fragment so two routes with the same name get
// distinct slugs.
func routeSlug(name, id string) string {
	base := slug.Make(name)
	fragment := id
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}
	return fmt.Sprintf("%s-%s", base, fragment)
}
