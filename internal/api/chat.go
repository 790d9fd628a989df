package api

import (
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

func (h *Handler) openChatRoom(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		h.fail(w, r, "Failed to open chat room", err)
		return
	}
	restaurantID, err := queryID(r, "restaurantId")
	if err != nil {
		h.fail(w, r, "Failed to open chat room", err)
		return
	}

	room, err := h.Chat.OpenRoom(r.Context(), userID, restaurantID)
	if err != nil {
		h.fail(w, r, "Failed to open chat room", err)
		return
	}

	h.respond(w, r, "Chat room ready", envelope{"chatRoom": room})
}

func (h *Handler) userChatRooms(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get chat rooms", err)
		return
	}

	rooms, err := h.Chat.RoomsOfUser(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get chat rooms", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(rooms))
}

func (h *Handler) ownerChatRooms(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get chat rooms", err)
		return
	}

	rooms, err := h.Chat.RoomsOfOwner(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get chat rooms", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(rooms))
}

func (h *Handler) chatMessages(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get chat messages", err)
		return
	}
	userID, err := queryID(r, "userId")
	if err != nil {
		h.fail(w, r, "Failed to get chat messages", err)
		return
	}

	messages, err := h.Chat.Messages(r.Context(), roomID, userID)
	if err != nil {
		h.fail(w, r, "Failed to get chat messages", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(messages))
}

func (h *Handler) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := decode(r, &request); err != nil {
		h.fail(w, r, "Failed to send message", err)
		return
	}

	message, err := h.Chat.Send(r.Context(), request)
	if err != nil {
		h.fail(w, r, "Failed to send message", err)
		return
	}

	h.respond(w, r, "Message sent", envelope{"chatMessage": message})
}

func (h *Handler) markChatRead(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to mark messages read", err)
		return
	}
	userID, err := queryID(r, "userId")
	if err != nil {
		h.fail(w, r, "Failed to mark messages read", err)
		return
	}

	if err = h.Chat.MarkRead(r.Context(), roomID, userID); err != nil {
		h.fail(w, r, "Failed to mark messages read", err)
		return
	}

	h.respond(w, r, "Messages marked read", nil)
}

// unreadChatRooms answers with a zero count when the lookup fails so that badge polling
// never breaks the client.
func (h *Handler) unreadChatRooms(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to count unread chat rooms", err)
		return
	}

	count, err := h.Chat.UnreadRooms(r.Context(), id)
	if err != nil {
		h.log.WarnContext(r.Context(), "Failed to count unread chat rooms", "user", id, "error", err)
		count = 0
	}

	h.writeJSON(w, r, http.StatusOK, envelope{"count": count})
}
