// Package api exposes the batch, restaurant, reservation and guest-facing endpoints over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/choprest/internal/metrics"
	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LocationUpdater runs location update passes.
type LocationUpdater interface {
	UpdateAll(ctx context.Context) (models.BatchResult, error)
	UpdateByID(ctx context.Context, id int64) (models.Outcome, *models.Restaurant, error)
	Status(ctx context.Context) (models.LocationStatus, error)
	TestKeys(ctx context.Context) ([]service.KeyCheck, error)
}

type Restaurants interface {
	List(ctx context.Context, region, keyword string, page service.Page) ([]models.Restaurant, error)
	Get(ctx context.Context, id int64) (*models.Restaurant, error)
	WithLocation(ctx context.Context, page service.Page) ([]models.Restaurant, error)
	WithoutLocation(ctx context.Context, page service.Page) ([]models.Restaurant, error)
}

type Favorites interface {
	Add(ctx context.Context, userID, restaurantID int64) error
	Remove(ctx context.Context, userID, restaurantID int64) error
	Toggle(ctx context.Context, userID, restaurantID int64) (bool, error)
	List(ctx context.Context, userID int64) ([]models.Restaurant, error)
	IsFavorite(ctx context.Context, userID, restaurantID int64) (bool, error)
}

type Blacklist interface {
	Add(ctx context.Context, entry models.BlacklistEntry) (*models.BlacklistEntry, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.BlacklistEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]models.BlacklistEntry, error)
	IsBlacklisted(ctx context.Context, userID, restaurantID int64) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type Reservations interface {
	Create(ctx context.Context, reservation models.Reservation) (*models.Reservation, error)
	Get(ctx context.Context, id int64) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Reservation, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.Reservation, error)
	Approve(ctx context.Context, id int64) (*models.Reservation, error)
	Reject(ctx context.Context, id int64, reason string) (*models.Reservation, error)
	Cancel(ctx context.Context, id int64) (*models.Reservation, error)
	ApproveCancellation(ctx context.Context, id int64) (*models.Reservation, error)
	RejectCancellation(ctx context.Context, id int64, reason string) (*models.Reservation, error)
	UpdateVisit(ctx context.Context, id int64, visit models.VisitStatus, reason string) (*models.Reservation, error)
}

type Menus interface {
	List(ctx context.Context, filter models.MenuFilter) ([]models.Menu, error)
	Categories(ctx context.Context, storeID int64) ([]string, error)
	Get(ctx context.Context, id int64) (*models.Menu, error)
	Create(ctx context.Context, menu models.Menu) (*models.Menu, error)
	Update(ctx context.Context, id int64, menu models.Menu) (*models.Menu, error)
	Delete(ctx context.Context, id int64) error
}

type Events interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	Active(ctx context.Context, storeID int64) ([]models.Event, error)
	Types(ctx context.Context, storeID int64) ([]string, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
}

type Reviews interface {
	Create(ctx context.Context, review models.Review) (*models.Review, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Review, error)
	Comment(ctx context.Context, id int64, comment string) (*models.Review, error)
}

type Chat interface {
	OpenRoom(ctx context.Context, userID, restaurantID int64) (*models.ChatRoom, error)
	RoomsOfUser(ctx context.Context, userID int64) ([]models.ChatRoom, error)
	RoomsOfOwner(ctx context.Context, ownerID int64) ([]models.ChatRoom, error)
	Messages(ctx context.Context, roomID, viewerID int64) ([]models.ChatMessage, error)
	Send(ctx context.Context, request models.ChatRequest) (*models.ChatMessage, error)
	MarkRead(ctx context.Context, roomID, readerID int64) error
	UnreadRooms(ctx context.Context, userID int64) (int64, error)
}

type Notifications interface {
	List(ctx context.Context, userID int64) ([]models.Notification, error)
	Unread(ctx context.Context, userID int64) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

// Pinger checks the database connection for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps wires the handler to the services it exposes.
type Deps struct {
	Log           *slog.Logger
	Metrics       *metrics.Metrics
	Gatherer      prometheus.Gatherer
	DB            Pinger
	Updater       LocationUpdater
	Restaurants   Restaurants
	Favorites     Favorites
	Blacklist     Blacklist
	Reservations  Reservations
	Menus         Menus
	Events        Events
	Reviews       Reviews
	Chat          Chat
	Notifications Notifications
	RPS           float64 // RPS is the per-client request rate, zero disables limiting.
	Burst         int
	// Lifetime is cancelled when the server shuts down. Location updates started over HTTP
	// run until it is done rather than until the request is.
	Lifetime context.Context
}

// Handler serves the HTTP API.
type Handler struct {
	Deps

	log     *slog.Logger
	clients *clientLimiter
}

// NewRouter builds the chi router with every route registered.
func NewRouter(deps Deps) http.Handler {
	h := &Handler{Deps: deps, log: deps.Log}
	if deps.RPS > 0 {
		h.clients = newClientLimiter(deps.RPS, max(deps.Burst, 1))
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(h.countRequests)

	r.Get("/healthz", h.health)
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(h.limitClients)

		r.Route("/batch", func(r chi.Router) {
			r.Post("/update-locations", h.updateLocations)
			r.Get("/status", h.status)
			r.Get("/restaurants-without-location", h.restaurantsWithoutLocation)
			r.Get("/restaurants-with-location", h.restaurantsWithLocation)
			r.Get("/test-api", h.testAPI)
			r.Post("/update-restaurant/{id}", h.updateRestaurant)
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", h.listRestaurants)
			r.Get("/{id}", h.getRestaurant)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/{userID}", h.listFavorites)
			r.Get("/{userID}/{restaurantID}", h.isFavorite)
			r.Post("/{userID}/{restaurantID}", h.addFavorite)
			r.Delete("/{userID}/{restaurantID}", h.removeFavorite)
			r.Post("/{userID}/{restaurantID}/toggle", h.toggleFavorite)
		})

		r.Route("/blacklist", func(r chi.Router) {
			r.Post("/", h.addBlacklist)
			r.Get("/check", h.checkBlacklist)
			r.Get("/restaurant/{id}", h.restaurantBlacklist)
			r.Get("/user/{id}", h.userBlacklist)
			r.Delete("/{id}", h.removeBlacklist)
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", h.createReservation)
			r.Get("/{id}", h.getReservation)
			r.Get("/user/{id}", h.userReservations)
			r.Get("/restaurant/{id}", h.restaurantReservations)
			r.Put("/{id}/approve", h.approveReservation)
			r.Put("/{id}/reject", h.rejectReservation)
			r.Put("/{id}/cancel", h.cancelReservation)
			r.Put("/{id}/approve-cancel", h.approveCancellation)
			r.Put("/{id}/reject-cancel", h.rejectCancellation)
			r.Put("/{id}/visit", h.updateVisit)
		})

		r.Route("/menus", func(r chi.Router) {
			r.Get("/", h.listMenus)
			r.Post("/", h.createMenu)
			r.Get("/popular", h.popularMenus)
			r.Get("/recommended", h.recommendedMenus)
			r.Get("/category", h.menusByCategory)
			r.Get("/categories", h.menuCategories)
			r.Get("/{id}", h.getMenu)
			r.Put("/{id}", h.updateMenu)
			r.Delete("/{id}", h.deleteMenu)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.listEvents)
			r.Get("/active", h.activeEvents)
			r.Get("/popular", h.popularEvents)
			r.Get("/type", h.eventsByType)
			r.Get("/types", h.eventTypes)
			r.Get("/{id}", h.getEvent)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", h.createReview)
			r.Get("/restaurant/{id}", h.restaurantReviews)
			r.Get("/user/{id}", h.userReviews)
			r.Post("/{id}/owner-comment", h.commentReview)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Post("/room", h.openChatRoom)
			r.Get("/rooms/user/{id}", h.userChatRooms)
			r.Get("/rooms/owner/{id}", h.ownerChatRooms)
			r.Get("/room/{id}/messages", h.chatMessages)
			r.Post("/room/{id}/read", h.markChatRead)
			r.Post("/message", h.sendChatMessage)
			r.Get("/unread-count/{id}", h.unreadChatRooms)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/{id}", h.listNotifications)
			r.Get("/{id}/unread", h.unreadNotifications)
			r.Get("/{id}/unread-count", h.unreadNotificationCount)
			r.Put("/{id}/read", h.markNotificationRead)
			r.Put("/{id}/read-all", h.markAllNotificationsRead)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.log.DebugContext(r.Context(), "Performing health checks...")

	status, body := http.StatusOK, "OK"
	if h.DB != nil {
		if err := h.DB.Ping(r.Context()); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
	}

	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write reply", "error", err)
	}
}

// countRequests records every request by its route pattern and status code.
func (h *Handler) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		if h.Metrics == nil {
			return
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		h.Metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}
