package models

import "strings"

// Restaurant is a persisted restaurant row with the location fields the batch updater fills in.
type Restaurant struct {
	ID          int64    `json:"id"`                    // ID is the restaurant identifier.
	Name        string   `json:"restaurantName"`        // Name is the restaurant name used for searching.
	Branch      *string  `json:"branchName,omitempty"`  // Branch is an optional branch qualifier.
	Region      *string  `json:"regionName,omitempty"`  // Region is an optional free-text region.
	Latitude    *float64 `json:"lat,omitempty"`         // Latitude of the restaurant.
	Longitude   *float64 `json:"lng,omitempty"`         // Longitude of the restaurant.
	RoadAddress *string  `json:"roadAddress,omitempty"` // RoadAddress is the formatted address.
	Phone       *string  `json:"phoneNumber,omitempty"` // Phone is the contact number.
}

// IsComplete reports whether the restaurant already has coordinates and an address.
// Complete restaurants are never sent to the geocoding provider.
func (r Restaurant) IsComplete() bool {
	return r.Latitude != nil && r.Longitude != nil && r.RoadAddress != nil && strings.TrimSpace(*r.RoadAddress) != ""
}

// Apply copies the location fields of the place onto the restaurant.
func (r *Restaurant) Apply(place Place) {
	r.Latitude = place.Latitude
	r.Longitude = place.Longitude
	address := place.Address
	r.RoadAddress = &address
	r.Phone = place.Phone
}

// RestaurantFilter narrows restaurant listings.
type RestaurantFilter struct {
	Region  string
	Keyword string
	Limit   int
	Offset  int
}
