package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating a guest leaves after a reservation. The restaurant owner may answer once
// with a comment, and answering again replaces it.
type Review struct {
	ID             int64      `json:"id"`
	ReservationID  *int64     `json:"reservationId,omitempty"`
	UserID         int64      `json:"userId"`
	RestaurantID   int64      `json:"restaurantId"`
	UserName       string     `json:"userName"`
	Rating         int        `json:"rating"`
	Content        string     `json:"content"`
	Images         []string   `json:"images"`
	OwnerComment   *string    `json:"ownerComment,omitempty"`
	OwnerCommentAt *time.Time `json:"ownerCommentAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
