package socket

import (
	"sync"

	"skillswap_server/logger"
)

// Conn is the slice of a live socket connection the registry needs.
// socketio.Conn satisfies it, and tests substitute fakes.
type Conn interface {
	ID() string
	Emit(event string, args ...interface{})
}

// Registry maps user IDs to their live connections so notifications can be
// addressed to a specific user. A user may hold several connections at once
// (multiple tabs/devices). Delivery is best-effort: a user with no live
// connection simply misses the event.
//
// The registry is process-local state; it is rebuilt through re-registration
// after a restart.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Conn            // all tracked connections, keyed by connection ID
	users map[string]map[string]Conn // userID -> connID -> conn
	owner map[string]string          // connID -> userID
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]Conn),
		users: make(map[string]map[string]Conn),
		owner: make(map[string]string),
	}
}

// Track records a new connection before it has identified its user.
// Tracked-but-unregistered connections still receive broadcasts.
func (r *Registry) Track(conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[conn.ID()] = conn
}

// Untrack removes a connection entirely, dropping any user association
func (r *Registry) Untrack(conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unregisterLocked(conn.ID())
	delete(r.conns, conn.ID())
}

// Register associates a connection with a user. Re-registration under a
// different user moves the connection.
func (r *Registry) Register(userID string, conn Conn) {
	if userID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[conn.ID()] = conn
	r.unregisterLocked(conn.ID())

	if r.users[userID] == nil {
		r.users[userID] = make(map[string]Conn)
	}
	r.users[userID][conn.ID()] = conn
	r.owner[conn.ID()] = userID
}

// Unregister drops the user association for a connection. Safe to call for
// connections that were never registered.
func (r *Registry) Unregister(conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unregisterLocked(conn.ID())
}

func (r *Registry) unregisterLocked(connID string) {
	userID, ok := r.owner[connID]
	if !ok {
		return
	}
	delete(r.owner, connID)
	if conns := r.users[userID]; conns != nil {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(r.users, userID)
		}
	}
}

// SendToUser emits an event to every connection registered for userID.
// Fire-and-forget: if the user has no live connection the event is dropped.
func (r *Registry) SendToUser(userID, event string, payload interface{}) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conns := r.users[userID]
	if len(conns) == 0 {
		logger.Debugf("No live connections for user %s, dropping %s", userID, event)
		return
	}
	for _, conn := range conns {
		conn.Emit(event, payload)
	}
}

// Broadcast emits an event to every tracked connection, registered or not
func (r *Registry) Broadcast(event string, payload interface{}) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, conn := range r.conns {
		conn.Emit(event, payload)
	}
}

// ConnectionCount reports the number of tracked connections
func (r *Registry) ConnectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
