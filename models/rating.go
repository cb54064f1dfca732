package models

// Rating is feedback submitted after a swap
type Rating struct {
	RatingID    string `dynamodbav:"ratingId" json:"ratingId"`       // Partition Key
	RaterID     string `dynamodbav:"raterId" json:"raterId"`         // GSI raterId-index
	RatedUserID string `dynamodbav:"ratedUserId" json:"ratedUserId"` // GSI ratedUserId-index
	SwapID      string `dynamodbav:"swapId,omitempty" json:"swapId,omitempty"`
	Rating      int    `dynamodbav:"rating" json:"rating"` // 1-5
	Comment     string `dynamodbav:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// RatingsTable is the DynamoDB table name for ratings
const RatingsTable = "SkillSwapRatings"

// GSI names for rating lookups
const (
	RatedUserIndex = "ratedUserId-index"
	RaterIndex     = "raterId-index"
)

// RatingWithRater expands a rating with the rater's display fields
type RatingWithRater struct {
	Rating
	Rater UserSummary `json:"rater"`
}

// UserRatings is the response shape for a user's rating history
type UserRatings struct {
	Ratings       []RatingWithRater `json:"ratings"`
	AverageRating float64           `json:"averageRating"`
}
