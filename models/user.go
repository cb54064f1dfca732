package models

// User is a registered Skill Swap account
type User struct {
	UserID        string   `dynamodbav:"userId" json:"userId"` // Partition Key
	Name          string   `dynamodbav:"name" json:"name"`
	Email         string   `dynamodbav:"email" json:"email,omitempty"` // GSI email-index
	Password      string   `dynamodbav:"password" json:"-"`            // bcrypt hash, never serialized
	Location      string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	ProfilePhoto  string   `dynamodbav:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	IsPublic      bool     `dynamodbav:"isPublic" json:"isPublic"`
	IsBanned      bool     `dynamodbav:"isBanned" json:"isBanned,omitempty"`
	SkillsOffered []string `dynamodbav:"skillsOffered,omitempty" json:"skillsOffered"`
	SkillsWanted  []string `dynamodbav:"skillsWanted,omitempty" json:"skillsWanted"`
	Availability  []string `dynamodbav:"availability,omitempty" json:"availability"`
	Role          string   `dynamodbav:"role" json:"role"` // "user" or "admin"
	CreatedAt     string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UsersTable is the DynamoDB table name for users
const UsersTable = "SkillSwapUsers"

// EmailIndex is the GSI used to look up users by email
const EmailIndex = "email-index"

// UserSummary is the read-only projection attached to swaps and ratings for
// display purposes. Email is only filled for admin views.
type UserSummary struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	Email        string `json:"email,omitempty"`
}

// Summary returns the display projection of the user
func (u *User) Summary() UserSummary {
	return UserSummary{
		UserID:       u.UserID,
		Name:         u.Name,
		ProfilePhoto: u.ProfilePhoto,
	}
}
