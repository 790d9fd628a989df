package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
)

var (
	// ErrAlreadyBlacklisted is returned when the user is already barred from the restaurant.
	ErrAlreadyBlacklisted = errors.New("user is already blacklisted")
	// ErrInvalidBlacklistEntry is returned for entries missing the user or the restaurant.
	ErrInvalidBlacklistEntry = errors.New("invalid blacklist entry")
)

// BlacklistService manages the per-restaurant user blacklist.
type BlacklistService struct {
	log   *slog.Logger
	store repository.BlacklistStore
}

func NewBlacklistService(log *slog.Logger, store repository.BlacklistStore) *BlacklistService {
	return &BlacklistService{log: log, store: store}
}

// Add bars the user from the restaurant.
func (bs *BlacklistService) Add(ctx context.Context, entry models.BlacklistEntry) (*models.BlacklistEntry, error) {
	if entry.UserID <= 0 || entry.RestaurantID <= 0 {
		return nil, fmt.Errorf("%w: userId and restaurantId are required", ErrInvalidBlacklistEntry)
	}
	entry.Reason = strings.TrimSpace(entry.Reason)

	exists, err := bs.store.BlacklistExists(ctx, entry.UserID, entry.RestaurantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyBlacklisted
	}

	if err = bs.store.AddBlacklist(ctx, &entry); err != nil {
		return nil, err
	}

	bs.log.InfoContext(ctx, "User blacklisted", "user", entry.UserID, "restaurant", entry.RestaurantID)

	return &entry, nil
}

func (bs *BlacklistService) ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.BlacklistEntry, error) {
	return bs.store.ListBlacklistByRestaurant(ctx, restaurantID)
}

func (bs *BlacklistService) ListByUser(ctx context.Context, userID int64) ([]models.BlacklistEntry, error) {
	return bs.store.ListBlacklistByUser(ctx, userID)
}

func (bs *BlacklistService) IsBlacklisted(ctx context.Context, userID, restaurantID int64) (bool, error) {
	return bs.store.BlacklistExists(ctx, userID, restaurantID)
}

func (bs *BlacklistService) Remove(ctx context.Context, id int64) error {
	return bs.store.RemoveBlacklist(ctx, id)
}
