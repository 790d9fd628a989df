package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
)

var (
	// ErrInvalidTransition is returned when a reservation cannot move to the requested status.
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	// ErrBlacklisted is returned when a blacklisted user tries to book the restaurant.
	ErrBlacklisted = errors.New("user is blacklisted by this restaurant")
	// ErrInvalidReservation is returned for reservation requests missing required fields.
	ErrInvalidReservation = errors.New("invalid reservation")
)

// ReservationNotifier tells guests about decisions on their reservations.
type ReservationNotifier interface {
	NotifyReservationApproved(ctx context.Context, reservation models.Reservation) error
}

// ReservationService manages the reservation lifecycle.
type ReservationService struct {
	log       *slog.Logger
	store     repository.ReservationStore
	blacklist repository.BlacklistStore
	notifier  ReservationNotifier
}

func NewReservationService(
	log *slog.Logger,
	store repository.ReservationStore,
	blacklist repository.BlacklistStore,
) *ReservationService {
	return &ReservationService{log: log, store: store, blacklist: blacklist}
}

// WithNotifier makes Approve notify the guest. Delivery failures are logged and do not undo
// the approval.
func (rs *ReservationService) WithNotifier(notifier ReservationNotifier) *ReservationService {
	rs.notifier = notifier
	return rs
}

// Create stores a new pending reservation.
func (rs *ReservationService) Create(ctx context.Context, reservation models.Reservation) (*models.Reservation, error) {
	if err := validateReservation(reservation); err != nil {
		return nil, err
	}

	barred, err := rs.blacklist.BlacklistExists(ctx, reservation.UserID, reservation.RestaurantID)
	if err != nil {
		return nil, err
	}
	if barred {
		return nil, ErrBlacklisted
	}

	reservation.Status = models.StatusPending
	reservation.RejectionReason = nil
	reservation.VisitStatus = nil

	if err = rs.store.CreateReservation(ctx, &reservation); err != nil {
		return nil, err
	}

	rs.log.InfoContext(ctx, "Reservation created",
		"reservation", reservation.ID, "user", reservation.UserID, "restaurant", reservation.RestaurantID)

	return &reservation, nil
}

// Get returns the reservation with the booking name replaced by the user's nickname.
func (rs *ReservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	reservation, err := rs.store.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	rs.withNickname(ctx, reservation)

	return reservation, nil
}

// ListByUser returns the reservations a user made.
func (rs *ReservationService) ListByUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	return rs.store.ListReservationsByUser(ctx, userID)
}

// ListByRestaurant returns the reservations of a restaurant with user nicknames.
func (rs *ReservationService) ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.Reservation, error) {
	reservations, err := rs.store.ListReservationsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	for idx := range reservations {
		rs.withNickname(ctx, &reservations[idx])
	}

	return reservations, nil
}

// Approve accepts a pending reservation.
func (rs *ReservationService) Approve(ctx context.Context, id int64) (*models.Reservation, error) {
	reservation, err := rs.transition(ctx, id, func(r *models.Reservation) error {
		if r.Status != models.StatusPending {
			return invalidTransition("approve", r.Status)
		}
		r.Status = models.StatusApproved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if rs.notifier != nil {
		if errNotify := rs.notifier.NotifyReservationApproved(ctx, *reservation); errNotify != nil {
			rs.log.WarnContext(ctx, "Failed to notify guest", "reservation", id, "error", errNotify)
		}
	}

	return reservation, nil
}

// Reject declines a pending reservation with a reason.
func (rs *ReservationService) Reject(ctx context.Context, id int64, reason string) (*models.Reservation, error) {
	return rs.transition(ctx, id, func(r *models.Reservation) error {
		if r.Status != models.StatusPending {
			return invalidTransition("reject", r.Status)
		}
		r.Status = models.StatusRejected
		r.RejectionReason = optional(reason)
		return nil
	})
}

// Cancel cancels a pending reservation right away. An approved reservation needs the restaurant
// to confirm the cancellation, so it moves to CANCELLED_PENDING.
func (rs *ReservationService) Cancel(ctx context.Context, id int64) (*models.Reservation, error) {
	return rs.transition(ctx, id, func(r *models.Reservation) error {
		switch r.Status {
		case models.StatusPending:
			r.Status = models.StatusCancelled
		case models.StatusApproved:
			r.Status = models.StatusCancelledPending
		default:
			return invalidTransition("cancel", r.Status)
		}
		return nil
	})
}

// ApproveCancellation confirms a requested cancellation.
func (rs *ReservationService) ApproveCancellation(ctx context.Context, id int64) (*models.Reservation, error) {
	return rs.transition(ctx, id, func(r *models.Reservation) error {
		if r.Status != models.StatusCancelledPending {
			return invalidTransition("approve cancellation of", r.Status)
		}
		r.Status = models.StatusCancelled
		return nil
	})
}

// RejectCancellation refuses a requested cancellation and restores the approved reservation.
func (rs *ReservationService) RejectCancellation(
	ctx context.Context,
	id int64,
	reason string,
) (*models.Reservation, error) {
	return rs.transition(ctx, id, func(r *models.Reservation) error {
		if r.Status != models.StatusCancelledPending {
			return invalidTransition("reject cancellation of", r.Status)
		}
		r.Status = models.StatusApproved
		r.RejectionReason = optional(reason)
		return nil
	})
}

// UpdateVisit records whether the guest showed up.
func (rs *ReservationService) UpdateVisit(
	ctx context.Context,
	id int64,
	visit models.VisitStatus,
	reason string,
) (*models.Reservation, error) {
	return rs.transition(ctx, id, func(r *models.Reservation) error {
		r.VisitStatus = &visit

		switch visit {
		case models.VisitVisited:
			now := time.Now()
			r.Status = models.StatusCompleted
			r.VisitConfirmedAt = &now
		case models.VisitNoShow:
			if reason := optional(reason); reason != nil {
				r.NoShowReason = reason
			}
		case models.VisitBlacklisted:
			r.IsBlacklisted = true
			if reason := optional(reason); reason != nil {
				r.BlacklistReason = reason
			}
		default:
			return fmt.Errorf("%w: unknown visit status %q", ErrInvalidTransition, visit)
		}
		return nil
	})
}

func (rs *ReservationService) transition(
	ctx context.Context,
	id int64,
	apply func(*models.Reservation) error,
) (*models.Reservation, error) {
	reservation, err := rs.store.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	from := reservation.Status
	if err = apply(reservation); err != nil {
		return nil, err
	}

	if err = rs.store.SaveReservation(ctx, reservation); err != nil {
		return nil, err
	}

	rs.log.InfoContext(ctx, "Reservation updated", "reservation", id, "from", from, "to", reservation.Status)

	return reservation, nil
}

// withNickname replaces the booking name with the registered nickname. Lookup failures keep
// the stored name.
func (rs *ReservationService) withNickname(ctx context.Context, reservation *models.Reservation) {
	name, err := rs.store.UserNickname(ctx, reservation.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			rs.log.WarnContext(ctx, "Failed to look up user nickname", "user", reservation.UserID, "error", err)
		}
		return
	}
	if strings.TrimSpace(name) != "" {
		reservation.UserName = name
	}
}

func validateReservation(r models.Reservation) error {
	switch {
	case r.UserID <= 0:
		return fmt.Errorf("%w: userId is required", ErrInvalidReservation)
	case r.RestaurantID <= 0:
		return fmt.Errorf("%w: restaurantId is required", ErrInvalidReservation)
	case strings.TrimSpace(r.Date) == "" || strings.TrimSpace(r.Time) == "":
		return fmt.Errorf("%w: reservation date and time are required", ErrInvalidReservation)
	case r.Guests <= 0:
		return fmt.Errorf("%w: guests must be positive", ErrInvalidReservation)
	}

	return nil
}

func invalidTransition(action string, status models.ReservationStatus) error {
	return fmt.Errorf("%w: cannot %s reservation in status %s", ErrInvalidTransition, action, status)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}
