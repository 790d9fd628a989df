package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/jackc/pgx/v5"
)

const menuColumns = `menu_id, store_id, name, description, price, image_url, thumbnail_url, category,
	is_available, is_popular, is_recommended, allergen_info, nutrition_info, preparation_time,
	spice_level, sort_order, created_at`

// ListMenus returns the available menus of a store in display order.
func (r *Repository) ListMenus(ctx context.Context, filter models.MenuFilter) ([]models.Menu, error) {
	query := `SELECT ` + menuColumns + ` FROM menu
		WHERE store_id = $1 AND is_available
			AND ($2 = '' OR category = $2)
			AND (NOT $3 OR is_popular)
			AND (NOT $4 OR is_recommended)
		ORDER BY sort_order, menu_id;`

	menus, err := r.queryMenus(ctx, query, filter.StoreID, filter.Category, filter.Popular, filter.Recommended)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus of store %d: %w", filter.StoreID, err)
	}

	return menus, nil
}

// MenuCategories returns the distinct categories used by a store's menus.
func (r *Repository) MenuCategories(ctx context.Context, storeID int64) ([]string, error) {
	query := `SELECT DISTINCT category FROM menu WHERE store_id = $1 AND category IS NOT NULL ORDER BY category;`

	categories, err := r.queryStrings(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu categories of store %d: %w", storeID, err)
	}

	return categories, nil
}

func (r *Repository) GetMenu(ctx context.Context, id int64) (*models.Menu, error) {
	query := `SELECT ` + menuColumns + ` FROM menu WHERE menu_id = $1;`

	var menu models.Menu
	if err := scanMenu(r.db.QueryRow(ctx, query, id), &menu); err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get menu %d", id))
	}

	return &menu, nil
}

// CreateMenu inserts the menu and fills in its generated id and creation time.
func (r *Repository) CreateMenu(ctx context.Context, menu *models.Menu) error {
	query := `
		INSERT INTO menu (
			store_id, name, description, price, image_url, thumbnail_url, category, is_available,
			is_popular, is_recommended, allergen_info, nutrition_info, preparation_time, spice_level, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING menu_id, created_at;
	`

	err := r.db.QueryRow(ctx, query, menuArgs(menu)...).Scan(&menu.ID, &menu.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert menu: %w", err)
	}

	return nil
}

// SaveMenu overwrites every editable column of the menu. A missing menu yields ErrNotFound.
func (r *Repository) SaveMenu(ctx context.Context, menu *models.Menu) error {
	query := `
		UPDATE menu SET
			store_id = $1, name = $2, description = $3, price = $4, image_url = $5, thumbnail_url = $6,
			category = $7, is_available = $8, is_popular = $9, is_recommended = $10, allergen_info = $11,
			nutrition_info = $12, preparation_time = $13, spice_level = $14, sort_order = $15
		WHERE menu_id = $16;
	`

	tag, err := r.db.Exec(ctx, query, append(menuArgs(menu), menu.ID)...)
	if err != nil {
		return fmt.Errorf("failed to save menu %d: %w", menu.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to save menu %d: %w", menu.ID, ErrNotFound)
	}

	return nil
}

// DeleteMenu removes the menu. A missing menu yields ErrNotFound.
func (r *Repository) DeleteMenu(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu WHERE menu_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete menu %d: %w", id, ErrNotFound)
	}

	return nil
}

func menuArgs(menu *models.Menu) []any {
	return []any{
		menu.StoreID,
		menu.Name,
		menu.Description,
		menu.Price,
		menu.ImageURL,
		menu.ThumbnailURL,
		menu.Category,
		menu.IsAvailable,
		menu.IsPopular,
		menu.IsRecommended,
		menu.AllergenInfo,
		menu.NutritionInfo,
		menu.PreparationTime,
		menu.SpiceLevel,
		menu.SortOrder,
	}
}

func scanMenu(row pgx.Row, menu *models.Menu) error {
	return row.Scan(
		&menu.ID,
		&menu.StoreID,
		&menu.Name,
		&menu.Description,
		&menu.Price,
		&menu.ImageURL,
		&menu.ThumbnailURL,
		&menu.Category,
		&menu.IsAvailable,
		&menu.IsPopular,
		&menu.IsRecommended,
		&menu.AllergenInfo,
		&menu.NutritionInfo,
		&menu.PreparationTime,
		&menu.SpiceLevel,
		&menu.SortOrder,
		&menu.CreatedAt,
	)
}

func (r *Repository) queryMenus(ctx context.Context, query string, args ...any) ([]models.Menu, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	defer rows.Close()

	var menus []models.Menu
	for rows.Next() {
		var menu models.Menu
		if err = scanMenu(rows, &menu); err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, menu)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return menus, nil
}

func (r *Repository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err = rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return values, nil
}
