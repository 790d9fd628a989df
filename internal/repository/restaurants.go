package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/jackc/pgx/v5"
)

const restaurantColumns = `id, restaurant_name, branch_name, region_name, lat, lng, road_address, phone_number`

const withoutLocation = `(lat IS NULL OR lng IS NULL OR road_address IS NULL OR road_address = '')`

const withLocation = `(lat IS NOT NULL AND lng IS NOT NULL AND road_address IS NOT NULL AND road_address <> '')`

// FetchRestaurantsWithoutLocation returns every restaurant that is missing coordinates or an address,
// ordered by id so that consecutive passes walk the table the same way.
func (r *Repository) FetchRestaurantsWithoutLocation(ctx context.Context) ([]models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE ` + withoutLocation + ` ORDER BY id;`

	restaurants, err := r.queryRestaurants(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restaurants without location: %w", err)
	}

	r.log.DebugContext(ctx, "Fetched restaurants without location", "count", len(restaurants))

	return restaurants, nil
}

// FetchRestaurantsWithoutLocationPage returns one page of restaurants missing location data.
func (r *Repository) FetchRestaurantsWithoutLocationPage(
	ctx context.Context,
	limit, offset int,
) ([]models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE ` + withoutLocation +
		` ORDER BY id LIMIT $1 OFFSET $2;`

	restaurants, err := r.queryRestaurants(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restaurants without location: %w", err)
	}

	return restaurants, nil
}

// FetchRestaurantsWithLocationPage returns one page of restaurants that already have location data.
func (r *Repository) FetchRestaurantsWithLocationPage(
	ctx context.Context,
	limit, offset int,
) ([]models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE ` + withLocation +
		` ORDER BY id LIMIT $1 OFFSET $2;`

	restaurants, err := r.queryRestaurants(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restaurants with location: %w", err)
	}

	return restaurants, nil
}

// ListRestaurants returns restaurants matching the optional region and keyword filters.
func (r *Repository) ListRestaurants(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants
		WHERE ($1 = '' OR region_name = $1)
			AND ($2 = '' OR restaurant_name ILIKE '%' || $2 || '%' OR branch_name ILIKE '%' || $2 || '%')
		ORDER BY id
		LIMIT $3 OFFSET $4;`

	restaurants, err := r.queryRestaurants(ctx, query, filter.Region, filter.Keyword, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	return restaurants, nil
}

// GetRestaurant loads a single restaurant by id.
func (r *Repository) GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1;`

	restaurant, err := scanRestaurant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get restaurant %d", id))
	}

	return restaurant, nil
}

// UpdateRestaurantLocation writes the place's coordinates, address and phone onto the restaurant.
func (r *Repository) UpdateRestaurantLocation(ctx context.Context, id int64, place models.Place) error {
	query := `
		UPDATE restaurants
		SET
			lat = $1,
			lng = $2,
			road_address = $3,
			phone_number = $4
		WHERE
			id = $5;
	`

	tag, err := r.db.Exec(ctx, query, place.Latitude, place.Longitude, place.Address, place.Phone, id)
	if err != nil {
		return fmt.Errorf("failed to update restaurant location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update restaurant location %d: %w", id, ErrNotFound)
	}

	return nil
}

// CountRestaurants returns the total number of restaurants.
func (r *Repository) CountRestaurants(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	return count, nil
}

// CountRestaurantsWithLocation returns the number of restaurants with complete location data.
func (r *Repository) CountRestaurantsWithLocation(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM restaurants WHERE ` + withLocation + `;`
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count restaurants with location: %w", err)
	}

	return count, nil
}

func (r *Repository) queryRestaurants(ctx context.Context, query string, args ...any) ([]models.Restaurant, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		restaurant, errScan := scanRestaurant(rows)
		if errScan != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", errScan)
		}
		restaurants = append(restaurants, *restaurant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return restaurants, nil
}

func scanRestaurant(row pgx.Row) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Branch,
		&restaurant.Region,
		&restaurant.Latitude,
		&restaurant.Longitude,
		&restaurant.RoadAddress,
		&restaurant.Phone,
	)
	if err != nil {
		return nil, err
	}

	return &restaurant, nil
}
