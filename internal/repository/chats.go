package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/jackc/pgx/v5"
)

const chatRoomColumns = `id, user_id, restaurant_id, restaurant_name, user_name, owner_id, last_message,
	last_message_at, unread_count_user, unread_count_owner, created_at, updated_at`

const chatMessageColumns = `id, chat_room_id, sender_id, sender_name, sender_role, message, is_read, read_at, created_at`

// GetAccount loads the name, role and owned restaurant of a user.
func (r *Repository) GetAccount(ctx context.Context, userID int64) (*models.Account, error) {
	query := `SELECT id, name, role, restaurant_id FROM users WHERE id = $1;`

	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get user %d", userID))
	}

	return account, nil
}

// RestaurantOwner returns the first owner account registered for the restaurant.
func (r *Repository) RestaurantOwner(ctx context.Context, restaurantID int64) (*models.Account, error) {
	query := `SELECT id, name, role, restaurant_id FROM users
		WHERE restaurant_id = $1 AND role = 'OWNER'
		ORDER BY id
		LIMIT 1;`

	account, err := scanAccount(r.db.QueryRow(ctx, query, restaurantID))
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get owner of restaurant %d", restaurantID))
	}

	return account, nil
}

// FindChatRoom returns the room of the user and restaurant pair.
func (r *Repository) FindChatRoom(ctx context.Context, userID, restaurantID int64) (*models.ChatRoom, error) {
	query := `SELECT ` + chatRoomColumns + ` FROM chat_rooms WHERE user_id = $1 AND restaurant_id = $2;`

	var room models.ChatRoom
	if err := scanChatRoom(r.db.QueryRow(ctx, query, userID, restaurantID), &room); err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to find chat room of user %d at %d", userID, restaurantID))
	}

	return &room, nil
}

func (r *Repository) GetChatRoom(ctx context.Context, id int64) (*models.ChatRoom, error) {
	query := `SELECT ` + chatRoomColumns + ` FROM chat_rooms WHERE id = $1;`

	var room models.ChatRoom
	if err := scanChatRoom(r.db.QueryRow(ctx, query, id), &room); err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get chat room %d", id))
	}

	return &room, nil
}

// CreateChatRoom inserts the room. When the pair already has a room, that room is loaded
// into the argument instead.
func (r *Repository) CreateChatRoom(ctx context.Context, room *models.ChatRoom) error {
	query := `
		INSERT INTO chat_rooms (user_id, restaurant_id, restaurant_name, user_name, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, restaurant_id) DO UPDATE SET updated_at = chat_rooms.updated_at
		RETURNING ` + chatRoomColumns + `;`

	err := scanChatRoom(r.db.QueryRow(ctx, query,
		room.UserID,
		room.RestaurantID,
		room.RestaurantName,
		room.UserName,
		room.OwnerID,
	), room)
	if err != nil {
		return fmt.Errorf("failed to insert chat room: %w", err)
	}

	return nil
}

// ListChatRoomsByUser returns the rooms of a user, most recently active first.
func (r *Repository) ListChatRoomsByUser(ctx context.Context, userID int64) ([]models.ChatRoom, error) {
	query := `SELECT ` + chatRoomColumns + ` FROM chat_rooms WHERE user_id = $1
		ORDER BY last_message_at DESC NULLS LAST, id DESC;`

	rooms, err := r.queryChatRooms(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat rooms of user %d: %w", userID, err)
	}

	return rooms, nil
}

// ListChatRoomsByOwner returns the rooms an owner answers, most recently active first.
func (r *Repository) ListChatRoomsByOwner(ctx context.Context, ownerID int64) ([]models.ChatRoom, error) {
	query := `SELECT ` + chatRoomColumns + ` FROM chat_rooms WHERE owner_id = $1
		ORDER BY last_message_at DESC NULLS LAST, id DESC;`

	rooms, err := r.queryChatRooms(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat rooms of owner %d: %w", ownerID, err)
	}

	return rooms, nil
}

// ListChatMessages returns the messages of a room, newest first.
func (r *Repository) ListChatMessages(ctx context.Context, roomID int64) ([]models.ChatMessage, error) {
	query := `SELECT ` + chatMessageColumns + ` FROM chat_messages WHERE chat_room_id = $1
		ORDER BY created_at DESC, id DESC;`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages of room %d: %w", roomID, err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var (
			message models.ChatMessage
			role    string
		)
		if err = rows.Scan(
			&message.ID,
			&message.ChatRoomID,
			&message.SenderID,
			&message.SenderName,
			&role,
			&message.Message,
			&message.IsRead,
			&message.ReadAt,
			&message.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		message.SenderRole = models.Role(role)
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return messages, nil
}

// AddChatMessage stores the message, makes it the room's last message and bumps the unread
// counter of the other side, all in one statement.
func (r *Repository) AddChatMessage(ctx context.Context, message *models.ChatMessage) error {
	query := `
		WITH inserted AS (
			INSERT INTO chat_messages (chat_room_id, sender_id, sender_name, sender_role, message)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		), room AS (
			UPDATE chat_rooms SET
				last_message = $5,
				last_message_at = (SELECT created_at FROM inserted),
				unread_count_user = unread_count_user + CASE WHEN $4 = 'OWNER' THEN 1 ELSE 0 END,
				unread_count_owner = unread_count_owner + CASE WHEN $4 = 'OWNER' THEN 0 ELSE 1 END,
				updated_at = now()
			WHERE id = $1
		)
		SELECT id, created_at FROM inserted;
	`

	err := r.db.QueryRow(ctx, query,
		message.ChatRoomID,
		message.SenderID,
		message.SenderName,
		string(message.SenderRole),
		message.Message,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}

	return nil
}

// MarkChatRead marks the messages others sent in the room as read and resets the reader's
// unread counter.
func (r *Repository) MarkChatRead(ctx context.Context, roomID, readerID int64, role models.Role) error {
	query := `
		WITH marked AS (
			UPDATE chat_messages SET is_read = TRUE, read_at = now()
			WHERE chat_room_id = $1 AND sender_id <> $2 AND NOT is_read
		)
		UPDATE chat_rooms SET
			unread_count_user = CASE WHEN $3 = 'OWNER' THEN unread_count_user ELSE 0 END,
			unread_count_owner = CASE WHEN $3 = 'OWNER' THEN 0 ELSE unread_count_owner END
		WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, roomID, readerID, string(role))
	if err != nil {
		return fmt.Errorf("failed to mark chat room %d read: %w", roomID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to mark chat room %d read: %w", roomID, ErrNotFound)
	}

	return nil
}

// CountUnreadChatRooms counts the rooms with unread messages for the user on the given side.
func (r *Repository) CountUnreadChatRooms(ctx context.Context, userID int64, role models.Role) (int64, error) {
	query := `SELECT count(*) FROM chat_rooms WHERE user_id = $1 AND unread_count_user > 0;`
	if role == models.RoleOwner {
		query = `SELECT count(*) FROM chat_rooms WHERE owner_id = $1 AND unread_count_owner > 0;`
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread chat rooms of user %d: %w", userID, err)
	}

	return count, nil
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var (
		account models.Account
		role    string
	)
	if err := row.Scan(&account.ID, &account.Name, &role, &account.RestaurantID); err != nil {
		return nil, err
	}
	account.Role = models.Role(role)

	return &account, nil
}

func scanChatRoom(row pgx.Row, room *models.ChatRoom) error {
	return row.Scan(
		&room.ID,
		&room.UserID,
		&room.RestaurantID,
		&room.RestaurantName,
		&room.UserName,
		&room.OwnerID,
		&room.LastMessage,
		&room.LastMessageAt,
		&room.UnreadCountUser,
		&room.UnreadCountOwner,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
}

func (r *Repository) queryChatRooms(ctx context.Context, query string, args ...any) ([]models.ChatRoom, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat rooms: %w", err)
	}
	defer rows.Close()

	var rooms []models.ChatRoom
	for rows.Next() {
		var room models.ChatRoom
		if err = scanChatRoom(rows, &room); err != nil {
			return nil, fmt.Errorf("failed to scan chat room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return rooms, nil
}
