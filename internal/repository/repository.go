package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Database is the subset of pgxpool.Pool used by the repository. pgxmock pools satisfy it too.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db  Database
	log *slog.Logger
}

// LocationStore is what the location updater needs from persistence.
type LocationStore interface {
	FetchRestaurantsWithoutLocation(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	UpdateRestaurantLocation(ctx context.Context, id int64, place models.Place) error
	CountRestaurants(ctx context.Context) (int64, error)
	CountRestaurantsWithLocation(ctx context.Context) (int64, error)
}

// RestaurantStore serves restaurant listings.
type RestaurantStore interface {
	GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error)
	FetchRestaurantsWithLocationPage(ctx context.Context, limit, offset int) ([]models.Restaurant, error)
	FetchRestaurantsWithoutLocationPage(ctx context.Context, limit, offset int) ([]models.Restaurant, error)
}

// ReservationStore persists reservations and resolves user nicknames.
type ReservationStore interface {
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	GetReservation(ctx context.Context, id int64) (*models.Reservation, error)
	ListReservationsByUser(ctx context.Context, userID int64) ([]models.Reservation, error)
	ListReservationsByRestaurant(ctx context.Context, restaurantID int64) ([]models.Reservation, error)
	SaveReservation(ctx context.Context, reservation *models.Reservation) error
	UserNickname(ctx context.Context, userID int64) (string, error)
}

// FavoriteStore persists saved restaurants.
type FavoriteStore interface {
	AddFavorite(ctx context.Context, userID, restaurantID int64) error
	RemoveFavorite(ctx context.Context, userID, restaurantID int64) error
	FavoriteExists(ctx context.Context, userID, restaurantID int64) (bool, error)
	ListFavoriteRestaurants(ctx context.Context, userID int64) ([]models.Restaurant, error)
}

// BlacklistStore persists blacklist entries.
type BlacklistStore interface {
	AddBlacklist(ctx context.Context, entry *models.BlacklistEntry) error
	BlacklistExists(ctx context.Context, userID, restaurantID int64) (bool, error)
	ListBlacklistByRestaurant(ctx context.Context, restaurantID int64) ([]models.BlacklistEntry, error)
	ListBlacklistByUser(ctx context.Context, userID int64) ([]models.BlacklistEntry, error)
	RemoveBlacklist(ctx context.Context, id int64) error
}

// MenuStore persists restaurant menus.
type MenuStore interface {
	ListMenus(ctx context.Context, filter models.MenuFilter) ([]models.Menu, error)
	MenuCategories(ctx context.Context, storeID int64) ([]string, error)
	GetMenu(ctx context.Context, id int64) (*models.Menu, error)
	CreateMenu(ctx context.Context, menu *models.Menu) error
	SaveMenu(ctx context.Context, menu *models.Menu) error
	DeleteMenu(ctx context.Context, id int64) error
}

// EventStore reads restaurant promotions.
type EventStore interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	EventTypes(ctx context.Context, storeID int64) ([]string, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
}

// ReviewStore persists guest reviews and owner answers.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, id int64) (*models.Review, error)
	ListReviewsByRestaurant(ctx context.Context, restaurantID int64) ([]models.Review, error)
	ListReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error)
	SetOwnerComment(ctx context.Context, id int64, comment string, at time.Time) (*models.Review, error)
}

// ChatStore persists chat rooms and messages and resolves the accounts taking part.
type ChatStore interface {
	GetAccount(ctx context.Context, userID int64) (*models.Account, error)
	RestaurantOwner(ctx context.Context, restaurantID int64) (*models.Account, error)
	GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	FindChatRoom(ctx context.Context, userID, restaurantID int64) (*models.ChatRoom, error)
	GetChatRoom(ctx context.Context, id int64) (*models.ChatRoom, error)
	CreateChatRoom(ctx context.Context, room *models.ChatRoom) error
	ListChatRoomsByUser(ctx context.Context, userID int64) ([]models.ChatRoom, error)
	ListChatRoomsByOwner(ctx context.Context, ownerID int64) ([]models.ChatRoom, error)
	ListChatMessages(ctx context.Context, roomID int64) ([]models.ChatMessage, error)
	AddChatMessage(ctx context.Context, message *models.ChatMessage) error
	MarkChatRead(ctx context.Context, roomID, readerID int64, role models.Role) error
	CountUnreadChatRooms(ctx context.Context, userID int64, role models.Role) (int64, error)
}

// NotificationStore persists in-app notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID int64) (int64, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// notFound maps pgx.ErrNoRows to ErrNotFound and wraps everything else.
func notFound(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
