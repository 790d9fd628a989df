package models

import (
	"strings"
	"time"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending          ReservationStatus = "PENDING"
	StatusApproved         ReservationStatus = "APPROVED"
	StatusRejected         ReservationStatus = "REJECTED"
	StatusCancelledPending ReservationStatus = "CANCELLED_PENDING"
	StatusCancelled        ReservationStatus = "CANCELLED"
	StatusCompleted        ReservationStatus = "COMPLETED"
)

// VisitStatus records what happened when the reservation date came.
type VisitStatus string

const (
	VisitVisited     VisitStatus = "VISITED"
	VisitNoShow      VisitStatus = "NO_SHOW"
	VisitBlacklisted VisitStatus = "BLACKLISTED"
)

// ParseVisitStatus converts a case-insensitive name into a VisitStatus.
func ParseVisitStatus(s string) (VisitStatus, bool) {
	switch v := VisitStatus(strings.ToUpper(strings.TrimSpace(s))); v {
	case VisitVisited, VisitNoShow, VisitBlacklisted:
		return v, true
	default:
		return "", false
	}
}

// Reservation is a table booking made by a user at a restaurant.
type Reservation struct {
	ID               int64             `json:"id"`
	UserID           int64             `json:"userId"`
	RestaurantID     int64             `json:"restaurantId"`
	RestaurantName   string            `json:"restaurantName"`
	UserName         string            `json:"userName"`
	UserPhone        string            `json:"userPhone"`
	UserEmail        string            `json:"userEmail"`
	Date             string            `json:"reservationDate"`
	Time             string            `json:"reservationTime"`
	Guests           int               `json:"guests"`
	SpecialRequests  string            `json:"specialRequests,omitempty"`
	Status           ReservationStatus `json:"status"`
	RejectionReason  *string           `json:"rejectionReason,omitempty"`
	VisitStatus      *VisitStatus      `json:"visitStatus,omitempty"`
	VisitConfirmedAt *time.Time        `json:"visitConfirmedAt,omitempty"`
	NoShowReason     *string           `json:"noShowReason,omitempty"`
	IsBlacklisted    bool              `json:"isBlacklisted"`
	BlacklistReason  *string           `json:"blacklistReason,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// Favorite marks a restaurant as saved by a user.
type Favorite struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	RestaurantID int64     `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BlacklistEntry bars a user from booking at one restaurant.
type BlacklistEntry struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	RestaurantID  int64     `json:"restaurantId"`
	UserName      string    `json:"userName"`
	UserPhone     string    `json:"userPhone"`
	Reason        string    `json:"reason"`
	ReservationID *int64    `json:"reservationId,omitempty"`
	CreatedBy     *int64    `json:"createdBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
