package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"skillswap_server/auth"
	"skillswap_server/logger"
	"skillswap_server/models"
)

// UserService handles accounts, profiles and skill search
type UserService struct {
	Dynamo *DynamoService
	JWT    *auth.JWTService
}

// Register creates an account and signs an access token
func (s *UserService) Register(ctx context.Context, name, email, plainPassword string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || plainPassword == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", models.ErrValidation)
	}

	if existing, err := s.GetByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", fmt.Errorf("%w: email already registered", models.ErrValidation)
	}

	hash, err := auth.HashPassword(plainPassword)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user := &models.User{
		UserID:    uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  hash,
		IsPublic:  true,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return nil, "", err
	}
	logger.Infof("User registered: %s (%s)", user.UserID, user.Email)

	token, err := s.JWT.GenerateToken(user.UserID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and signs an access token. Banned accounts are
// rejected with the same error as bad credentials.
func (s *UserService) Login(ctx context.Context, email, plainPassword string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || plainPassword == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", models.ErrValidation)
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !auth.CheckPassword(plainPassword, user.Password) {
		return nil, "", fmt.Errorf("%w: invalid credentials", models.ErrForbidden)
	}
	if user.IsBanned {
		return nil, "", fmt.Errorf("%w: account is banned", models.ErrForbidden)
	}

	token, err := s.JWT.GenerateToken(user.UserID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetByID fetches a user; returns models.ErrNotFound when absent
func (s *UserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// GetByEmail looks a user up via the email GSI; returns (nil, nil) when absent
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, models.EmailIndex,
		"email = :email",
		map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		}, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// Summary returns the display projection for a user. Missing users fall back
// to an ID-only summary so list endpoints stay usable.
func (s *UserService) Summary(ctx context.Context, userID string) models.UserSummary {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		logger.Warnf("Could not load profile for %s: %v", userID, err)
		return models.UserSummary{UserID: userID}
	}
	return user.Summary()
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	Name          *string   `json:"name"`
	Location      *string   `json:"location"`
	IsPublic      *bool     `json:"isPublic"`
	ProfilePhoto  *string   `json:"profilePhoto"`
	SkillsOffered []string  `json:"skillsOffered"`
	SkillsWanted  []string  `json:"skillsWanted"`
	Availability  []string  `json:"availability"`
}

// UpdateProfile applies a partial profile update and returns the new state
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	sets := []string{"updatedAt = :updatedAt"}
	values := map[string]types.AttributeValue{
		":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	names := map[string]string{}

	setString := func(attr string, v *string) {
		if v == nil {
			return
		}
		placeholder := "#" + attr
		names[placeholder] = attr
		sets = append(sets, fmt.Sprintf("%s = :%s", placeholder, attr))
		values[":"+attr] = &types.AttributeValueMemberS{Value: *v}
	}
	setList := func(attr string, v []string) {
		if v == nil {
			return
		}
		placeholder := "#" + attr
		names[placeholder] = attr
		sets = append(sets, fmt.Sprintf("%s = :%s", placeholder, attr))
		list, _ := attributevalue.Marshal(v)
		values[":"+attr] = list
	}

	setString("name", update.Name)
	setString("location", update.Location)
	setString("profilePhoto", update.ProfilePhoto)
	setList("skillsOffered", update.SkillsOffered)
	setList("skillsWanted", update.SkillsWanted)
	setList("availability", update.Availability)
	if update.IsPublic != nil {
		names["#isPublic"] = "isPublic"
		sets = append(sets, "#isPublic = :isPublic")
		values[":isPublic"] = &types.AttributeValueMemberBOOL{Value: *update.IsPublic}
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	attrs, err := s.Dynamo.UpdateItem(ctx, models.UsersTable, "SET "+strings.Join(sets, ", "), key, values, names)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated user: %w", err)
	}
	return &user, nil
}

// SearchBySkill returns public profiles offering or wanting a skill.
// Matching is a case-insensitive substring test; sensitive fields are
// stripped from the result.
func (s *UserService) SearchBySkill(ctx context.Context, skill string) ([]models.User, error) {
	if strings.TrimSpace(skill) == "" {
		return nil, fmt.Errorf("%w: please provide a skill to search for", models.ErrValidation)
	}

	var users []models.User
	err := s.Dynamo.ScanWithFilter(ctx, models.UsersTable,
		"isPublic = :public",
		map[string]types.AttributeValue{
			":public": &types.AttributeValueMemberBOOL{Value: true},
		}, nil, &users)
	if err != nil {
		return nil, err
	}

	matched := make([]models.User, 0)
	for _, user := range users {
		if MatchesSkill(&user, skill) {
			user.Email = ""
			user.Password = ""
			matched = append(matched, user)
		}
	}
	return matched, nil
}

// MatchesSkill reports whether a user offers or wants the given skill
func MatchesSkill(user *models.User, skill string) bool {
	needle := strings.ToLower(strings.TrimSpace(skill))
	for _, list := range [][]string{user.SkillsOffered, user.SkillsWanted} {
		for _, candidate := range list {
			if strings.Contains(strings.ToLower(candidate), needle) {
				return true
			}
		}
	}
	return false
}
