package models

// SwapRequest is a proposed exchange of one user's offered skill for
// another's. It is created pending and mutated only through status updates;
// "deleted" is a terminal status, never a physical delete.
type SwapRequest struct {
	SwapID        string `dynamodbav:"swapId" json:"swapId"`         // Partition Key
	SenderID      string `dynamodbav:"senderId" json:"senderId"`     // GSI senderId-index
	ReceiverID    string `dynamodbav:"receiverId" json:"receiverId"` // GSI receiverId-index
	SenderSkill   string `dynamodbav:"senderSkill" json:"senderSkill"`     // skill the sender offers
	ReceiverSkill string `dynamodbav:"receiverSkill" json:"receiverSkill"` // skill the sender wants back
	Status        string `dynamodbav:"status" json:"status"`
	Message       string `dynamodbav:"message,omitempty" json:"message,omitempty"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Swap status constants. "pending" is the only non-terminal status.
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCancelled = "cancelled"
	SwapStatusDeleted   = "deleted"
)

// SwapRequestsTable is the DynamoDB table name for swap requests
const SwapRequestsTable = "SwapRequests"

// GSI names used to list a user's swaps from either side
const (
	SenderIndex   = "senderId-index"
	ReceiverIndex = "receiverId-index"
)

// SwapRequestWithProfiles expands a swap with the participants' display fields
type SwapRequestWithProfiles struct {
	SwapRequest
	Sender   UserSummary `json:"sender"`
	Receiver UserSummary `json:"receiver"`
}
