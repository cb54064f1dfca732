package services

// Notifier is the delivery side of real-time notifications. State changes
// never depend on delivery: implementations are fire-and-forget and a nil
// notifier simply drops events.
type Notifier interface {
	SendToUser(userID, event string, payload interface{})
	Broadcast(event string, payload interface{})
}
