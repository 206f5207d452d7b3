package routes

import (
	"divebuddy_server/controllers"
	"divebuddy_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterChatRoutes sets up routes for message operations under /api/messages
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, socket *socketio.Server, logger *zap.SugaredLogger) {
	controller := controllers.NewChatController(chatService, socket, logger)

	chatRouter := r.PathPrefix("/api/messages").Subrouter()
	chatRouter.HandleFunc("", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/{matchId}", controller.HandleGetMessages).Methods("GET")
}
