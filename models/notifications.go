package models

// Socket.IO event names
const (
	EventNewSwapRequest    = "newSwapRequest"
	EventSwapStatusUpdated = "swapStatusUpdated"
	EventPlatformMessage   = "platformMessage"
)

// SwapNotification is the payload for newSwapRequest and swapStatusUpdated
type SwapNotification struct {
	Message string                   `json:"message"`
	Swap    *SwapRequestWithProfiles `json:"swap"`
}

// PlatformMessage is the payload for admin broadcasts
type PlatformMessage struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// PlatformReport aggregates activity counts for administrators
type PlatformReport struct {
	TotalUsers         int `json:"totalUsers"`
	TotalAcceptedSwaps int `json:"totalAcceptedSwaps"`
}
