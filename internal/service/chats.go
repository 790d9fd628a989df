package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
)

var (
	// ErrNotParticipant is returned when a user acts on a chat room they are not part of.
	ErrNotParticipant = errors.New("not a participant of this chat room")
	// ErrInvalidMessage is returned for empty messages or messages without a destination.
	ErrInvalidMessage = errors.New("invalid chat message")
)

// ChatService runs the conversations between guests and restaurant owners.
type ChatService struct {
	log   *slog.Logger
	store repository.ChatStore
}

func NewChatService(log *slog.Logger, store repository.ChatStore) *ChatService {
	return &ChatService{log: log, store: store}
}

// OpenRoom returns the room of the user and restaurant, creating it on first contact.
func (cs *ChatService) OpenRoom(ctx context.Context, userID, restaurantID int64) (*models.ChatRoom, error) {
	room, err := cs.store.FindChatRoom(ctx, userID, restaurantID)
	if err == nil {
		room.UnreadCount = room.UnreadCountUser
		return room, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err := cs.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	restaurant, err := cs.store.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	room = &models.ChatRoom{
		UserID:         userID,
		RestaurantID:   restaurantID,
		RestaurantName: restaurant.Name,
		UserName:       user.Name,
	}

	owner, err := cs.store.RestaurantOwner(ctx, restaurantID)
	switch {
	case err == nil:
		room.OwnerID = &owner.ID
	case errors.Is(err, repository.ErrNotFound):
		cs.log.WarnContext(ctx, "Restaurant has no owner account", "restaurant", restaurantID)
	default:
		return nil, err
	}

	if err = cs.store.CreateChatRoom(ctx, room); err != nil {
		return nil, err
	}

	cs.log.InfoContext(ctx, "Chat room opened", "room", room.ID, "user", userID, "restaurant", restaurantID)

	room.UnreadCount = room.UnreadCountUser
	return room, nil
}

// RoomsOfUser returns the rooms of a guest with the guest's unread counters.
func (cs *ChatService) RoomsOfUser(ctx context.Context, userID int64) ([]models.ChatRoom, error) {
	rooms, err := cs.store.ListChatRoomsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return withUnread(rooms, models.RoleUser), nil
}

// RoomsOfOwner returns the rooms an owner answers with the owner's unread counters.
func (cs *ChatService) RoomsOfOwner(ctx context.Context, ownerID int64) ([]models.ChatRoom, error) {
	rooms, err := cs.store.ListChatRoomsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return withUnread(rooms, models.RoleOwner), nil
}

// Messages returns the messages of a room, newest first, flagged relative to the viewer.
func (cs *ChatService) Messages(ctx context.Context, roomID, viewerID int64) ([]models.ChatMessage, error) {
	viewer, room, err := cs.participant(ctx, roomID, viewerID)
	if err != nil {
		return nil, err
	}

	messages, err := cs.store.ListChatMessages(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	for idx := range messages {
		messages[idx].IsMine = messages[idx].SenderID == viewer.ID
	}

	return messages, nil
}

// Send delivers a message. Owners answer in an existing room; guests may also write to a
// restaurant directly, which opens their room with it.
func (cs *ChatService) Send(ctx context.Context, request models.ChatRequest) (*models.ChatMessage, error) {
	text := strings.TrimSpace(request.Message)
	if text == "" {
		return nil, fmt.Errorf("%w: message is empty", ErrInvalidMessage)
	}

	var (
		sender *models.Account
		room   *models.ChatRoom
		err    error
	)
	if request.ChatRoomID != nil {
		sender, room, err = cs.participant(ctx, *request.ChatRoomID, request.UserID)
		if err != nil {
			return nil, err
		}
	} else {
		sender, err = cs.store.GetAccount(ctx, request.UserID)
		if err != nil {
			return nil, err
		}
		if side(sender) == models.RoleOwner {
			return nil, fmt.Errorf("%w: owners reply in an existing chat room", ErrInvalidMessage)
		}
		if request.RestaurantID <= 0 {
			return nil, fmt.Errorf("%w: restaurantId is required", ErrInvalidMessage)
		}
		room, err = cs.OpenRoom(ctx, sender.ID, request.RestaurantID)
		if err != nil {
			return nil, err
		}
	}

	message := &models.ChatMessage{
		ChatRoomID: room.ID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		SenderRole: side(sender),
		Message:    text,
		IsMine:     true,
	}
	if err = cs.store.AddChatMessage(ctx, message); err != nil {
		return nil, err
	}

	cs.log.DebugContext(ctx, "Chat message sent", "room", room.ID, "sender", sender.ID, "role", message.SenderRole)

	return message, nil
}

// MarkRead marks what the others wrote in the room as read by the reader.
func (cs *ChatService) MarkRead(ctx context.Context, roomID, readerID int64) error {
	reader, room, err := cs.participant(ctx, roomID, readerID)
	if err != nil {
		return err
	}

	return cs.store.MarkChatRead(ctx, room.ID, reader.ID, side(reader))
}

// UnreadRooms counts the rooms in which the user has unread messages.
func (cs *ChatService) UnreadRooms(ctx context.Context, userID int64) (int64, error) {
	account, err := cs.store.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}

	return cs.store.CountUnreadChatRooms(ctx, userID, side(account))
}

// participant loads the room and the account and checks that the account may act in the room.
func (cs *ChatService) participant(
	ctx context.Context,
	roomID, userID int64,
) (*models.Account, *models.ChatRoom, error) {
	room, err := cs.store.GetChatRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	account, err := cs.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if side(account) == models.RoleOwner {
		owns := (room.OwnerID != nil && *room.OwnerID == account.ID) ||
			(account.RestaurantID != nil && *account.RestaurantID == room.RestaurantID)
		if !owns {
			return nil, nil, fmt.Errorf("%w: owner %d does not run restaurant %d",
				ErrNotParticipant, account.ID, room.RestaurantID)
		}
		return account, room, nil
	}

	if room.UserID != account.ID {
		return nil, nil, fmt.Errorf("%w: user %d", ErrNotParticipant, account.ID)
	}

	return account, room, nil
}

// side is the part an account plays in chat. Everyone but owners writes as a guest.
func side(account *models.Account) models.Role {
	if account.Role == models.RoleOwner {
		return models.RoleOwner
	}

	return models.RoleUser
}

func withUnread(rooms []models.ChatRoom, role models.Role) []models.ChatRoom {
	for idx := range rooms {
		rooms[idx].UnreadCount = rooms[idx].UnreadFor(role)
	}

	return rooms
}
