package service

import (
	"context"
	"strings"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a zero-based page request.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page into the supported range.
func (p Page) Normalize() Page {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	return p
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

// RestaurantService serves restaurant listings.
type RestaurantService struct {
	store repository.RestaurantStore
}

func NewRestaurantService(store repository.RestaurantStore) *RestaurantService {
	return &RestaurantService{store: store}
}

// List returns restaurants filtered by region and keyword.
func (rs *RestaurantService) List(
	ctx context.Context,
	region, keyword string,
	page Page,
) ([]models.Restaurant, error) {
	page = page.Normalize()

	return rs.store.ListRestaurants(ctx, models.RestaurantFilter{
		Region:  strings.TrimSpace(region),
		Keyword: strings.TrimSpace(keyword),
		Limit:   page.Size,
		Offset:  page.Offset(),
	})
}

func (rs *RestaurantService) Get(ctx context.Context, id int64) (*models.Restaurant, error) {
	return rs.store.GetRestaurant(ctx, id)
}

// WithLocation returns one page of restaurants that already have location data.
func (rs *RestaurantService) WithLocation(ctx context.Context, page Page) ([]models.Restaurant, error) {
	page = page.Normalize()

	return rs.store.FetchRestaurantsWithLocationPage(ctx, page.Size, page.Offset())
}

// WithoutLocation returns one page of restaurants still missing location data.
func (rs *RestaurantService) WithoutLocation(ctx context.Context, page Page) ([]models.Restaurant, error) {
	page = page.Normalize()

	return rs.store.FetchRestaurantsWithoutLocationPage(ctx, page.Size, page.Offset())
}
