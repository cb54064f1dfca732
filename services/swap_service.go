package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"skillswap_server/logger"
	"skillswap_server/models"
)

// SwapService owns the swap request lifecycle. Notifications are emitted
// after the store write succeeds and never influence the result.
type SwapService struct {
	Dynamo   *DynamoService
	Users    *UserService
	Notifier Notifier // optional; nil disables delivery
}

// CreateSwapInput is the request body for creating a swap
type CreateSwapInput struct {
	ReceiverID    string `json:"receiverId"`
	SenderSkill   string `json:"senderSkill"`
	ReceiverSkill string `json:"receiverSkill"`
	Message       string `json:"message"`
}

// CreateSwapRequest stores a new pending swap and notifies the receiver
func (s *SwapService) CreateSwapRequest(ctx context.Context, senderID string, input CreateSwapInput) (*models.SwapRequestWithProfiles, error) {
	if input.ReceiverID == "" || strings.TrimSpace(input.SenderSkill) == "" || strings.TrimSpace(input.ReceiverSkill) == "" {
		return nil, fmt.Errorf("%w: receiverId, senderSkill and receiverSkill are required", models.ErrValidation)
	}
	if input.ReceiverID == senderID {
		return nil, fmt.Errorf("%w: cannot send a swap request to yourself", models.ErrValidation)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	swap := models.SwapRequest{
		SwapID:        uuid.New().String(),
		SenderID:      senderID,
		ReceiverID:    input.ReceiverID,
		SenderSkill:   input.SenderSkill,
		ReceiverSkill: input.ReceiverSkill,
		Status:        models.SwapStatusPending,
		Message:       input.Message,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Dynamo.PutItem(ctx, models.SwapRequestsTable, swap); err != nil {
		return nil, err
	}
	logger.Infof("Swap request created: %s (%s -> %s)", swap.SwapID, senderID, input.ReceiverID)

	populated := s.populate(ctx, &swap)

	s.notify(input.ReceiverID, models.EventNewSwapRequest, &models.SwapNotification{
		Message: fmt.Sprintf("New swap request from %s for %s!", populated.Sender.Name, swap.SenderSkill),
		Swap:    populated,
	})

	return populated, nil
}

// GetSwapsForUser returns every swap the user participates in, newest first
func (s *SwapService) GetSwapsForUser(ctx context.Context, userID string) ([]models.SwapRequestWithProfiles, error) {
	values := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	sent, err := s.Dynamo.QueryItemsWithIndex(ctx, models.SwapRequestsTable, models.SenderIndex,
		"senderId = :userId", values, 0)
	if err != nil {
		return nil, err
	}
	received, err := s.Dynamo.QueryItemsWithIndex(ctx, models.SwapRequestsTable, models.ReceiverIndex,
		"receiverId = :userId", values, 0)
	if err != nil {
		return nil, err
	}

	var swaps []models.SwapRequest
	if err := attributevalue.UnmarshalListOfMaps(append(sent, received...), &swaps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swaps: %w", err)
	}

	sort.Slice(swaps, func(i, j int) bool {
		return swaps[i].CreatedAt > swaps[j].CreatedAt
	})

	// Profiles repeat across a user's swaps, fetch each one once
	summaries := make(map[string]models.UserSummary)
	summaryOf := func(id string) models.UserSummary {
		if cached, ok := summaries[id]; ok {
			return cached
		}
		summary := s.Users.Summary(ctx, id)
		summaries[id] = summary
		return summary
	}

	result := make([]models.SwapRequestWithProfiles, 0, len(swaps))
	for _, swap := range swaps {
		result = append(result, models.SwapRequestWithProfiles{
			SwapRequest: swap,
			Sender:      summaryOf(swap.SenderID),
			Receiver:    summaryOf(swap.ReceiverID),
		})
	}
	return result, nil
}

// UpdateSwapStatus runs the state machine: load, authorize, validate state,
// persist, then notify the other party
func (s *SwapService) UpdateSwapStatus(ctx context.Context, swapID, actorID, target string) (*models.SwapRequestWithProfiles, error) {
	item, err := s.Dynamo.GetItem(ctx, models.SwapRequestsTable, map[string]types.AttributeValue{
		"swapId": &types.AttributeValueMemberS{Value: swapID},
	})
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("%w: swap request not found", models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var swap models.SwapRequest
	if err := attributevalue.UnmarshalMap(item, &swap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swap: %w", err)
	}

	if err := models.ValidateTransition(&swap, actorID, target); err != nil {
		return nil, err
	}

	attrs, err := s.Dynamo.UpdateItem(ctx, models.SwapRequestsTable,
		"SET #s = :status, updatedAt = :updatedAt",
		map[string]types.AttributeValue{
			"swapId": &types.AttributeValueMemberS{Value: swapID},
		},
		map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: target},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#s": "status"},
	)
	if err != nil {
		return nil, err
	}

	var updated models.SwapRequest
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated swap: %w", err)
	}
	logger.Infof("Swap %s moved to %s by %s", swapID, target, actorID)

	populated := s.populate(ctx, &updated)

	// Only the counterpart hears about the change, with wording from their
	// point of view
	var otherPartyID, message string
	if updated.PartyOf(actorID) == models.PartySender {
		otherPartyID = updated.ReceiverID
		message = fmt.Sprintf("Your request for %s from %s was %s.", updated.ReceiverSkill, populated.Receiver.Name, target)
	} else {
		otherPartyID = updated.SenderID
		message = fmt.Sprintf("The swap request from %s for %s was %s.", populated.Sender.Name, updated.SenderSkill, target)
	}
	s.notify(otherPartyID, models.EventSwapStatusUpdated, &models.SwapNotification{
		Message: message,
		Swap:    populated,
	})

	return populated, nil
}

func (s *SwapService) populate(ctx context.Context, swap *models.SwapRequest) *models.SwapRequestWithProfiles {
	return &models.SwapRequestWithProfiles{
		SwapRequest: *swap,
		Sender:      s.Users.Summary(ctx, swap.SenderID),
		Receiver:    s.Users.Summary(ctx, swap.ReceiverID),
	}
}

func (s *SwapService) notify(userID, event string, payload interface{}) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.SendToUser(userID, event, payload)
	logger.Infof("Emitted '%s' to %s", event, userID)
}
