package models

// Place is the first match returned by a geocoding provider for a query.
// Coordinates the provider sent in an unparsable form are left nil.
type Place struct {
	Latitude  *float64 // Latitude of the place.
	Longitude *float64 // Longitude of the place.
	Address   string   // Address is the road address, or the lot address when no road address exists.
	Phone     *string  // Phone is the optional contact number.
}
