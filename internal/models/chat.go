package models

import "time"

// Role is the account type of a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleOwner Role = "OWNER"
	RoleUser  Role = "USER"
)

// Account is the part of a user record chat needs. RestaurantID is set for owners.
type Account struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	RestaurantID *int64 `json:"restaurantId,omitempty"`
}

// ChatRoom is the conversation between one user and one restaurant. There is at most one
// room per pair.
type ChatRoom struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"userId"`
	RestaurantID     int64      `json:"restaurantId"`
	RestaurantName   string     `json:"restaurantName"`
	UserName         string     `json:"userName"`
	OwnerID          *int64     `json:"ownerId,omitempty"`
	LastMessage      *string    `json:"lastMessage,omitempty"`
	LastMessageAt    *time.Time `json:"lastMessageAt,omitempty"`
	UnreadCountUser  int        `json:"-"`
	UnreadCountOwner int        `json:"-"`
	// UnreadCount is the unread counter of whoever asked for the room.
	UnreadCount int       `json:"unreadCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UnreadFor returns the unread counter of the given side.
func (c ChatRoom) UnreadFor(role Role) int {
	if role == RoleOwner {
		return c.UnreadCountOwner
	}

	return c.UnreadCountUser
}

// ChatMessage is one message in a chat room.
type ChatMessage struct {
	ID         int64      `json:"id"`
	ChatRoomID int64      `json:"chatRoomId"`
	SenderID   int64      `json:"senderId"`
	SenderName string     `json:"senderName"`
	SenderRole Role       `json:"senderRole"`
	Message    string     `json:"message"`
	IsRead     bool       `json:"isRead"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	// IsMine is set relative to the user who asked for the messages.
	IsMine bool `json:"isMine"`
}

// ChatRequest is a message a user or owner sends. Without a room id the message opens or
// continues the sender's room with the restaurant.
type ChatRequest struct {
	ChatRoomID   *int64 `json:"chatRoomId,omitempty"`
	UserID       int64  `json:"userId"`
	RestaurantID int64  `json:"restaurantId"`
	Message      string `json:"message"`
}
