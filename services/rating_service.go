package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"skillswap_server/logger"
	"skillswap_server/models"
)

// RatingService handles post-swap feedback
type RatingService struct {
	Dynamo *DynamoService
	Users  *UserService
}

// SubmitRatingInput is the request body for submitting a rating
type SubmitRatingInput struct {
	RatedUserID string `json:"ratedUserId"`
	SwapID      string `json:"swapId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// SubmitRating validates and stores a rating. When a swap is referenced it
// must be accepted and the rater must be the counterpart of the rated user.
// The duplicate check is a best-effort lookup, not a store-level constraint.
func (s *RatingService) SubmitRating(ctx context.Context, raterID string, input SubmitRatingInput) (*models.Rating, error) {
	if input.RatedUserID == "" || input.Rating == 0 {
		return nil, fmt.Errorf("%w: rated user ID and rating are required", models.ErrValidation)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrValidation)
	}

	if input.SwapID != "" {
		item, err := s.Dynamo.GetItem(ctx, models.SwapRequestsTable, map[string]types.AttributeValue{
			"swapId": &types.AttributeValueMemberS{Value: input.SwapID},
		})
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: rating must be associated with an accepted swap", models.ErrValidation)
		}
		if err != nil {
			return nil, err
		}

		var swap models.SwapRequest
		if err := attributevalue.UnmarshalMap(item, &swap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal swap: %w", err)
		}
		if swap.Status != models.SwapStatusAccepted {
			return nil, fmt.Errorf("%w: rating must be associated with an accepted swap", models.ErrValidation)
		}

		isParticipant := (swap.SenderID == raterID && swap.ReceiverID == input.RatedUserID) ||
			(swap.ReceiverID == raterID && swap.SenderID == input.RatedUserID)
		if !isParticipant {
			return nil, fmt.Errorf("%w: you can only rate participants of the swap", models.ErrForbidden)
		}
	}

	duplicate, err := s.hasExistingRating(ctx, raterID, input.RatedUserID, input.SwapID)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, fmt.Errorf("%w: you have already rated this user for this swap", models.ErrConflict)
	}

	rating := &models.Rating{
		RatingID:    uuid.New().String(),
		RaterID:     raterID,
		RatedUserID: input.RatedUserID,
		SwapID:      input.SwapID,
		Rating:      input.Rating,
		Comment:     input.Comment,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.RatingsTable, rating); err != nil {
		return nil, err
	}
	logger.Infof("Rating submitted: %s rated %s (%d)", raterID, input.RatedUserID, input.Rating)
	return rating, nil
}

func (s *RatingService) hasExistingRating(ctx context.Context, raterID, ratedUserID, swapID string) (bool, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.RatingsTable, models.RaterIndex,
		"raterId = :raterId",
		map[string]types.AttributeValue{
			":raterId": &types.AttributeValueMemberS{Value: raterID},
		}, 0)
	if err != nil {
		return false, err
	}

	var ratings []models.Rating
	if err := attributevalue.UnmarshalListOfMaps(items, &ratings); err != nil {
		return false, fmt.Errorf("failed to unmarshal ratings: %w", err)
	}
	for _, r := range ratings {
		if r.RatedUserID == ratedUserID && r.SwapID == swapID {
			return true, nil
		}
	}
	return false, nil
}

// GetUserRatings returns a user's ratings, newest first, with the average
func (s *RatingService) GetUserRatings(ctx context.Context, ratedUserID string) (*models.UserRatings, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.RatingsTable, models.RatedUserIndex,
		"ratedUserId = :ratedUserId",
		map[string]types.AttributeValue{
			":ratedUserId": &types.AttributeValueMemberS{Value: ratedUserID},
		}, 0)
	if err != nil {
		return nil, err
	}

	var ratings []models.Rating
	if err := attributevalue.UnmarshalListOfMaps(items, &ratings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ratings: %w", err)
	}

	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].CreatedAt > ratings[j].CreatedAt
	})

	result := &models.UserRatings{Ratings: make([]models.RatingWithRater, 0, len(ratings))}
	total := 0
	for _, rating := range ratings {
		total += rating.Rating
		result.Ratings = append(result.Ratings, models.RatingWithRater{
			Rating: rating,
			Rater:  s.Users.Summary(ctx, rating.RaterID),
		})
	}
	if len(ratings) > 0 {
		result.AverageRating = float64(total) / float64(len(ratings))
	}
	return result, nil
}
