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

// ErrInvalidMenu is returned for menus missing the store or the name, or with a negative price.
var ErrInvalidMenu = errors.New("invalid menu")

// MenuService manages restaurant menus.
type MenuService struct {
	log   *slog.Logger
	store repository.MenuStore
}

func NewMenuService(log *slog.Logger, store repository.MenuStore) *MenuService {
	return &MenuService{log: log, store: store}
}

// List returns the available menus of a store that match the filter.
func (ms *MenuService) List(ctx context.Context, filter models.MenuFilter) ([]models.Menu, error) {
	if filter.StoreID <= 0 {
		return nil, fmt.Errorf("%w: storeId is required", ErrInvalidMenu)
	}
	filter.Category = strings.TrimSpace(filter.Category)

	return ms.store.ListMenus(ctx, filter)
}

func (ms *MenuService) Categories(ctx context.Context, storeID int64) ([]string, error) {
	return ms.store.MenuCategories(ctx, storeID)
}

func (ms *MenuService) Get(ctx context.Context, id int64) (*models.Menu, error) {
	return ms.store.GetMenu(ctx, id)
}

// Create adds a menu. New menus are available and sorted first unless the request says otherwise.
func (ms *MenuService) Create(ctx context.Context, menu models.Menu) (*models.Menu, error) {
	if err := validateMenu(&menu); err != nil {
		return nil, err
	}
	if menu.IsAvailable == nil {
		available := true
		menu.IsAvailable = &available
	}
	if menu.SortOrder == nil {
		first := 0
		menu.SortOrder = &first
	}

	if err := ms.store.CreateMenu(ctx, &menu); err != nil {
		return nil, err
	}

	ms.log.InfoContext(ctx, "Menu created", "menu", menu.ID, "store", menu.StoreID)

	return &menu, nil
}

// Update replaces the menu. Availability and sort order keep their stored values when omitted.
func (ms *MenuService) Update(ctx context.Context, id int64, menu models.Menu) (*models.Menu, error) {
	if err := validateMenu(&menu); err != nil {
		return nil, err
	}

	current, err := ms.store.GetMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	menu.ID = id
	menu.CreatedAt = current.CreatedAt
	if menu.IsAvailable == nil {
		menu.IsAvailable = current.IsAvailable
	}
	if menu.SortOrder == nil {
		menu.SortOrder = current.SortOrder
	}

	if err = ms.store.SaveMenu(ctx, &menu); err != nil {
		return nil, err
	}

	ms.log.InfoContext(ctx, "Menu updated", "menu", id)

	return &menu, nil
}

func (ms *MenuService) Delete(ctx context.Context, id int64) error {
	if err := ms.store.DeleteMenu(ctx, id); err != nil {
		return err
	}

	ms.log.InfoContext(ctx, "Menu deleted", "menu", id)

	return nil
}

func validateMenu(menu *models.Menu) error {
	menu.Name = strings.TrimSpace(menu.Name)

	switch {
	case menu.StoreID <= 0:
		return fmt.Errorf("%w: storeId is required", ErrInvalidMenu)
	case menu.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMenu)
	case menu.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidMenu)
	}

	return nil
}
