package models_test

import (
	"testing"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRestaurantIsComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		restaurant models.Restaurant
		want       bool
	}{
		{name: "nothing set", restaurant: models.Restaurant{Name: "Foo"}},
		{name: "missing address", restaurant: models.Restaurant{Latitude: ptr(37.5), Longitude: ptr(127.0)}},
		{
			name:       "blank address",
			restaurant: models.Restaurant{Latitude: ptr(37.5), Longitude: ptr(127.0), RoadAddress: ptr("  ")},
		},
		{name: "missing longitude", restaurant: models.Restaurant{Latitude: ptr(37.5), RoadAddress: ptr("Seoul road 1")}},
		{
			name:       "complete",
			restaurant: models.Restaurant{Latitude: ptr(37.5), Longitude: ptr(127.0), RoadAddress: ptr("Seoul road 1")},
			want:       true,
		},
		{
			name:       "zero coordinates count as present",
			restaurant: models.Restaurant{Latitude: ptr(0.0), Longitude: ptr(0.0), RoadAddress: ptr("Null Island")},
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.restaurant.IsComplete())
		})
	}
}

func TestRestaurantApply(t *testing.T) {
	t.Parallel()

	restaurant := models.Restaurant{ID: 1, Name: "Foo", Phone: ptr("02-000")}
	restaurant.Apply(models.Place{Latitude: ptr(37.5), Longitude: ptr(127.0), Address: "Seoul road 1"})

	assert.True(t, restaurant.IsComplete())
	assert.Equal(t, "Seoul road 1", *restaurant.RoadAddress)
	assert.Nil(t, restaurant.Phone, "phone follows the place")
}

func TestParseVisitStatus(t *testing.T) {
	t.Parallel()

	status, ok := models.ParseVisitStatus(" no_show ")
	assert.True(t, ok)
	assert.Equal(t, models.VisitNoShow, status)

	_, ok = models.ParseVisitStatus("late")
	assert.False(t, ok)
}
