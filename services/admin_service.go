package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"skillswap_server/logger"
	"skillswap_server/models"
)

// AdminService backs the moderation and reporting endpoints
type AdminService struct {
	Dynamo   *DynamoService
	Users    *UserService
	Notifier Notifier
}

// PendingSwaps lists all swaps awaiting a decision, with participant
// name and email for moderation context
func (s *AdminService) PendingSwaps(ctx context.Context) ([]models.SwapRequestWithProfiles, error) {
	var swaps []models.SwapRequest
	err := s.Dynamo.ScanWithFilter(ctx, models.SwapRequestsTable,
		"#s = :pending",
		map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: models.SwapStatusPending},
		},
		map[string]string{"#s": "status"},
		&swaps)
	if err != nil {
		return nil, err
	}

	result := make([]models.SwapRequestWithProfiles, 0, len(swaps))
	for _, swap := range swaps {
		result = append(result, models.SwapRequestWithProfiles{
			SwapRequest: swap,
			Sender:      s.adminSummary(ctx, swap.SenderID),
			Receiver:    s.adminSummary(ctx, swap.ReceiverID),
		})
	}
	return result, nil
}

func (s *AdminService) adminSummary(ctx context.Context, userID string) models.UserSummary {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return models.UserSummary{UserID: userID}
	}
	summary := user.Summary()
	summary.Email = user.Email
	return summary
}

// Reports aggregates platform activity counts
func (s *AdminService) Reports(ctx context.Context) (*models.PlatformReport, error) {
	totalUsers, err := s.Dynamo.CountItems(ctx, models.UsersTable, "", nil, nil)
	if err != nil {
		return nil, err
	}

	totalAccepted, err := s.Dynamo.CountItems(ctx, models.SwapRequestsTable,
		"#s = :accepted",
		map[string]types.AttributeValue{
			":accepted": &types.AttributeValueMemberS{Value: models.SwapStatusAccepted},
		},
		map[string]string{"#s": "status"})
	if err != nil {
		return nil, err
	}

	return &models.PlatformReport{
		TotalUsers:         totalUsers,
		TotalAcceptedSwaps: totalAccepted,
	}, nil
}

// BanUser flags an account as banned; banned users can no longer log in
func (s *AdminService) BanUser(ctx context.Context, userID string) (*models.User, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", models.ErrNotFound)
		}
		return nil, err
	}

	attrs, err := s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET isBanned = :banned, updatedAt = :updatedAt",
		map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
		map[string]types.AttributeValue{
			":banned":    &types.AttributeValueMemberBOOL{Value: true},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		}, nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal banned user: %w", err)
	}
	logger.Infof("User banned: %s", userID)
	return &user, nil
}

// BroadcastPlatformMessage pushes an announcement to every connected client
func (s *AdminService) BroadcastPlatformMessage(msgType, message string) (*models.PlatformMessage, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message content is required", models.ErrValidation)
	}
	if msgType == "" {
		msgType = "info"
	}

	payload := &models.PlatformMessage{
		Type:      msgType,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
	if s.Notifier != nil {
		s.Notifier.Broadcast(models.EventPlatformMessage, payload)
	}
	logger.Infof("Platform message broadcast (%s)", msgType)
	return payload, nil
}
