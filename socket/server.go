package socket

import (
	socketio "github.com/googollee/go-socket.io"

	"skillswap_server/logger"
)

// NewSocketServer builds the Socket.IO server and wires its lifecycle into
// the connection registry. Clients identify themselves by emitting a
// "registerUser" event with their user ID after connecting.
func NewSocketServer(registry *Registry) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		registry.Track(s)
		logger.Infof("Socket connected: %s", s.ID())
		return nil
	})

	server.OnEvent("/", "registerUser", func(s socketio.Conn, userID string) {
		registry.Register(userID, s)
		logger.Infof("User %s registered with socket %s", userID, s.ID())
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		logger.Errorf("Socket error: %v", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		registry.Untrack(s)
		logger.Infof("Socket disconnected: %s (%s)", s.ID(), reason)
	})

	return server
}
