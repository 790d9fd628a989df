package service

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
)

// FavoriteService manages the restaurants users saved.
type FavoriteService struct {
	log   *slog.Logger
	store repository.FavoriteStore
}

func NewFavoriteService(log *slog.Logger, store repository.FavoriteStore) *FavoriteService {
	return &FavoriteService{log: log, store: store}
}

// Add saves the restaurant. Saving it again is a no-op.
func (fs *FavoriteService) Add(ctx context.Context, userID, restaurantID int64) error {
	return fs.store.AddFavorite(ctx, userID, restaurantID)
}

func (fs *FavoriteService) Remove(ctx context.Context, userID, restaurantID int64) error {
	return fs.store.RemoveFavorite(ctx, userID, restaurantID)
}

// Toggle flips the favorite and reports whether the restaurant is saved afterwards.
func (fs *FavoriteService) Toggle(ctx context.Context, userID, restaurantID int64) (bool, error) {
	exists, err := fs.store.FavoriteExists(ctx, userID, restaurantID)
	if err != nil {
		return false, err
	}

	if exists {
		if err = fs.store.RemoveFavorite(ctx, userID, restaurantID); err != nil {
			return false, err
		}
		fs.log.DebugContext(ctx, "Favorite removed", "user", userID, "restaurant", restaurantID)
		return false, nil
	}

	if err = fs.store.AddFavorite(ctx, userID, restaurantID); err != nil {
		return false, err
	}
	fs.log.DebugContext(ctx, "Favorite added", "user", userID, "restaurant", restaurantID)

	return true, nil
}

func (fs *FavoriteService) List(ctx context.Context, userID int64) ([]models.Restaurant, error) {
	return fs.store.ListFavoriteRestaurants(ctx, userID)
}

func (fs *FavoriteService) IsFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	return fs.store.FavoriteExists(ctx, userID, restaurantID)
}
