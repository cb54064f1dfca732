package models

import "fmt"

// SwapParty identifies which side of a swap a user is on
type SwapParty int

const (
	PartyNone SwapParty = iota
	PartySender
	PartyReceiver
)

// transitionActor is the single source of truth for the state machine: each
// requestable status maps to the party allowed to request it. Every
// transition starts from "pending"; all other statuses are terminal.
var transitionActor = map[string]SwapParty{
	SwapStatusAccepted:  PartyReceiver,
	SwapStatusRejected:  PartyReceiver,
	SwapStatusCancelled: PartySender,
	SwapStatusDeleted:   PartySender,
}

// PartyOf returns the swap party for a user ID
func (s *SwapRequest) PartyOf(userID string) SwapParty {
	switch userID {
	case s.SenderID:
		return PartySender
	case s.ReceiverID:
		return PartyReceiver
	default:
		return PartyNone
	}
}

// ValidateTransition checks whether actorID may move the swap to the target
// status. Authorization is checked before state validity, so a wrong actor
// always sees a forbidden error even on a terminal swap.
func ValidateTransition(swap *SwapRequest, actorID, target string) error {
	required, ok := transitionActor[target]
	if !ok {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, target)
	}

	if swap.PartyOf(actorID) != required {
		switch required {
		case PartyReceiver:
			return fmt.Errorf("%w: not authorized to accept/reject this request", ErrForbidden)
		default:
			return fmt.Errorf("%w: not authorized to cancel/delete this request", ErrForbidden)
		}
	}

	if swap.Status != SwapStatusPending {
		return fmt.Errorf("%w: cannot change status from %s", ErrInvalidTransition, swap.Status)
	}

	return nil
}
