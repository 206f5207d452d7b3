package socket

import (
	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

// NewSocketServer initializes and returns a new Socket.IO server. Clients join
// a room per matchId; the chat controller broadcasts stored messages to the
// room as "newMessage" events.
func NewSocketServer(logger *zap.SugaredLogger) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		logger.Infow("socket connected", "id", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			logger.Warnw("join request without matchId", "id", c.ID())
			return
		}
		logger.Infow("socket joined match room", "id", c.ID(), "matchId", matchID)
		c.Join(matchID)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		logger.Infow("socket disconnected", "id", c.ID(), "reason", reason)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		logger.Errorw("socket error", "error", err)
	})

	return server
}
