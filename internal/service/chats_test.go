package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
	"github.com/UnknownOlympus/choprest/internal/service"
	"github.com/UnknownOlympus/choprest/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T) (*service.ChatService, *mocks.ChatStore) {
	t.Helper()
	store := mocks.NewChatStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return service.NewChatService(logger, store), store
}

func guest() *models.Account {
	return &models.Account{ID: 3, Name: "kim", Role: models.RoleUser}
}

func owner() *models.Account {
	return &models.Account{ID: 20, Name: "boss", Role: models.RoleOwner, RestaurantID: ptr(int64(7))}
}

func room() *models.ChatRoom {
	return &models.ChatRoom{
		ID: 1, UserID: 3, RestaurantID: 7, RestaurantName: "Foo", UserName: "kim", OwnerID: ptr(int64(20)),
		UnreadCountUser: 2, UnreadCountOwner: 5,
	}
}

func TestOpenRoom(t *testing.T) {
	t.Parallel()

	t.Run("existing room", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("FindChatRoom", mock.Anything, int64(3), int64(7)).Return(room(), nil).Once()

		opened, err := svc.OpenRoom(t.Context(), 3, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(1), opened.ID)
		assert.Equal(t, 2, opened.UnreadCount)
		store.AssertNotCalled(t, "CreateChatRoom", mock.Anything, mock.Anything)
	})

	t.Run("first contact creates the room", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("FindChatRoom", mock.Anything, int64(3), int64(7)).Return(nil, repository.ErrNotFound).Once()
		store.On("GetAccount", mock.Anything, int64(3)).Return(guest(), nil).Once()
		store.On("GetRestaurant", mock.Anything, int64(7)).Return(&models.Restaurant{ID: 7, Name: "Foo"}, nil).Once()
		store.On("RestaurantOwner", mock.Anything, int64(7)).Return(owner(), nil).Once()
		store.On("CreateChatRoom", mock.Anything, mock.MatchedBy(func(r *models.ChatRoom) bool {
			return r.UserName == "kim" && r.RestaurantName == "Foo" && r.OwnerID != nil && *r.OwnerID == 20
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.ChatRoom).ID = 1
		}).Return(nil).Once()

		opened, err := svc.OpenRoom(t.Context(), 3, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(1), opened.ID)
	})

	t.Run("restaurant without owner", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("FindChatRoom", mock.Anything, int64(3), int64(7)).Return(nil, repository.ErrNotFound).Once()
		store.On("GetAccount", mock.Anything, int64(3)).Return(guest(), nil).Once()
		store.On("GetRestaurant", mock.Anything, int64(7)).Return(&models.Restaurant{ID: 7, Name: "Foo"}, nil).Once()
		store.On("RestaurantOwner", mock.Anything, int64(7)).Return(nil, repository.ErrNotFound).Once()
		store.On("CreateChatRoom", mock.Anything, mock.MatchedBy(func(r *models.ChatRoom) bool {
			return r.OwnerID == nil
		})).Return(nil).Once()

		_, err := svc.OpenRoom(t.Context(), 3, 7)

		require.NoError(t, err)
	})

	t.Run("lookup failure", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("FindChatRoom", mock.Anything, int64(3), int64(7)).Return(nil, assert.AnError).Once()

		_, err := svc.OpenRoom(t.Context(), 3, 7)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestSendMessage(t *testing.T) {
	t.Parallel()

	t.Run("guest writes to a restaurant", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("GetAccount", mock.Anything, int64(3)).Return(guest(), nil).Once()
		store.On("FindChatRoom", mock.Anything, int64(3), int64(7)).Return(room(), nil).Once()
		store.On("AddChatMessage", mock.Anything, mock.MatchedBy(func(m *models.ChatMessage) bool {
			return m.ChatRoomID == 1 && m.SenderRole == models.RoleUser && m.Message == "table for two?"
		})).Return(nil).Once()

		message, err := svc.Send(t.Context(), models.ChatRequest{UserID: 3, RestaurantID: 7, Message: " table for two? "})

		require.NoError(t, err)
		assert.True(t, message.IsMine)
		assert.Equal(t, "kim", message.SenderName)
	})

	t.Run("owner answers in the room", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("GetChatRoom", mock.Anything, int64(1)).Return(room(), nil).Once()
		store.On("GetAccount", mock.Anything, int64(20)).Return(owner(), nil).Once()
		store.On("AddChatMessage", mock.Anything, mock.MatchedBy(func(m *models.ChatMessage) bool {
			return m.SenderRole == models.RoleOwner && m.SenderID == 20
		})).Return(nil).Once()

		_, err := svc.Send(t.Context(), models.ChatRequest{ChatRoomID: ptr(int64(1)), UserID: 20, Message: "sure"})

		require.NoError(t, err)
	})

	t.Run("owner cannot open a room", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("GetAccount", mock.Anything, int64(20)).Return(owner(), nil).Once()

		_, err := svc.Send(t.Context(), models.ChatRequest{UserID: 20, RestaurantID: 7, Message: "hello"})

		require.ErrorIs(t, err, service.ErrInvalidMessage)
		store.AssertNotCalled(t, "AddChatMessage", mock.Anything, mock.Anything)
	})

	t.Run("owner of another restaurant", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)
		stranger := &models.Account{ID: 21, Name: "rival", Role: models.RoleOwner, RestaurantID: ptr(int64(8))}

		store.On("GetChatRoom", mock.Anything, int64(1)).Return(room(), nil).Once()
		store.On("GetAccount", mock.Anything, int64(21)).Return(stranger, nil).Once()

		_, err := svc.Send(t.Context(), models.ChatRequest{ChatRoomID: ptr(int64(1)), UserID: 21, Message: "hi"})

		require.ErrorIs(t, err, service.ErrNotParticipant)
	})

	t.Run("guest in someone else's room", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("GetChatRoom", mock.Anything, int64(1)).Return(room(), nil).Once()
		store.On("GetAccount", mock.Anything, int64(4)).
			Return(&models.Account{ID: 4, Name: "lee", Role: models.RoleUser}, nil).Once()

		_, err := svc.Send(t.Context(), models.ChatRequest{ChatRoomID: ptr(int64(1)), UserID: 4, Message: "hi"})

		require.ErrorIs(t, err, service.ErrNotParticipant)
	})

	t.Run("empty message", func(t *testing.T) {
		t.Parallel()
		svc, _ := newChatService(t)

		_, err := svc.Send(t.Context(), models.ChatRequest{UserID: 3, RestaurantID: 7, Message: "  "})

		require.ErrorIs(t, err, service.ErrInvalidMessage)
	})
}

func TestChatReading(t *testing.T) {
	t.Parallel()

	t.Run("messages are flagged for the viewer", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("GetChatRoom", mock.Anything, int64(1)).Return(room(), nil).Once()
		store.On("GetAccount", mock.Anything, int64(3)).Return(guest(), nil).Once()
		store.On("ListChatMessages", mock.Anything, int64(1)).Return([]models.ChatMessage{
			{ID: 41, SenderID: 20, SenderRole: models.RoleOwner},
			{ID: 40, SenderID: 3, SenderRole: models.RoleUser},
		}, nil).Once()

		messages, err := svc.Messages(t.Context(), 1, 3)

		require.NoError(t, err)
		assert.False(t, messages[0].IsMine)
		assert.True(t, messages[1].IsMine)
	})

	t.Run("owner marks read on the owner side", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("GetChatRoom", mock.Anything, int64(1)).Return(room(), nil).Once()
		store.On("GetAccount", mock.Anything, int64(20)).Return(owner(), nil).Once()
		store.On("MarkChatRead", mock.Anything, int64(1), int64(20), models.RoleOwner).Return(nil).Once()

		require.NoError(t, svc.MarkRead(t.Context(), 1, 20))
	})

	t.Run("owner rooms carry the owner counter", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("ListChatRoomsByOwner", mock.Anything, int64(20)).Return([]models.ChatRoom{*room()}, nil).Once()

		rooms, err := svc.RoomsOfOwner(t.Context(), 20)

		require.NoError(t, err)
		assert.Equal(t, 5, rooms[0].UnreadCount)
	})

	t.Run("unread rooms by role", func(t *testing.T) {
		t.Parallel()
		svc, store := newChatService(t)

		store.On("GetAccount", mock.Anything, int64(20)).Return(owner(), nil).Once()
		store.On("CountUnreadChatRooms", mock.Anything, int64(20), models.RoleOwner).Return(int64(2), nil).Once()

		count, err := svc.UnreadRooms(t.Context(), 20)

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
