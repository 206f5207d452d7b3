package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"divebuddy_server/helpers"
	"divebuddy_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ChatController handles HTTP requests for messages
type ChatController struct {
	ChatService *services.ChatService
	Socket      *socketio.Server
	Logger      *zap.SugaredLogger
}

// NewChatController initializes the chat controller; socket may be nil when
// realtime fanout is disabled.
func NewChatController(chatService *services.ChatService, socket *socketio.Server, logger *zap.SugaredLogger) *ChatController {
	return &ChatController{ChatService: chatService, Socket: socket, Logger: logger}
}

// HandleSendMessage stores a new message against an existing match
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID  string `json:"matchId" validate:"required"`
		SenderID string `json:"senderId" validate:"required"`
		Content  string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	messageID, err := cc.ChatService.SendMessage(r.Context(), request.MatchID, request.SenderID, request.Content)
	if err != nil {
		cc.Logger.Errorw("failed to send message", "matchId", request.MatchID, "error", err)
		helpers.WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	if cc.Socket != nil {
		cc.Socket.BroadcastToRoom("/", request.MatchID, "newMessage", map[string]string{
			"id":       messageID,
			"matchId":  request.MatchID,
			"senderId": request.SenderID,
			"content":  request.Content,
		})
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"id": messageID})
}

// HandleGetMessages fetches messages for a match in creation order
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = services.DefaultMessageLimit
	}

	messages, err := cc.ChatService.GetMessagesByMatchID(r.Context(), matchID, limit)
	if err != nil {
		cc.Logger.Errorw("failed to fetch messages", "matchId", matchID, "error", err)
		helpers.WriteJSONError(w, statusForError(err), "Failed to fetch messages")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, messages)
}
