package services

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap_server/auth"
	"skillswap_server/models"
)

func newUserService(client *stubDynamoClient) *UserService {
	return &UserService{
		Dynamo: &DynamoService{Client: client},
		JWT:    auth.NewJWTService("test-secret", "skillswap", time.Hour),
	}
}

func queryReturningUsers(t *testing.T, users ...models.User) func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
	return func(input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		var email string
		if attr, ok := input.ExpressionAttributeValues[":email"].(*types.AttributeValueMemberS); ok {
			email = attr.Value
		}
		items := make([]map[string]types.AttributeValue, 0, len(users))
		for _, user := range users {
			if email != "" && user.Email != email {
				continue
			}
			item, err := attributevalue.MarshalMap(user)
			require.NoError(t, err)
			items = append(items, item)
		}
		return &dynamodb.QueryOutput{Items: items}, nil
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	var stored map[string]types.AttributeValue
	client := &stubDynamoClient{
		query: queryReturningUsers(t),
		putItem: func(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			stored = input.Item
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	svc := newUserService(client)

	user, token, err := svc.Register(context.Background(), "Alice", "Alice@Example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsPublic)
	assert.NotEqual(t, "hunter2", user.Password, "password must be hashed")

	var persisted models.User
	require.NoError(t, attributevalue.UnmarshalMap(stored, &persisted))
	assert.True(t, auth.CheckPassword("hunter2", persisted.Password))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newUserService(&stubDynamoClient{})
	_, _, err := svc.Register(context.Background(), "", "a@b.c", "pw")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	client := &stubDynamoClient{
		query: queryReturningUsers(t, models.User{UserID: "u1", Email: "alice@example.com"}),
	}
	svc := newUserService(client)

	_, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter2")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func registeredUser(t *testing.T, banned bool) models.User {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	return models.User{
		UserID:   "u1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: hash,
		Role:     models.RoleUser,
		IsBanned: banned,
	}
}

func TestLogin(t *testing.T) {
	client := &stubDynamoClient{query: queryReturningUsers(t, registeredUser(t, false))}
	svc := newUserService(client)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", user.UserID)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, _, err = svc.Login(context.Background(), "unknown@example.com", "hunter2")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestLoginRejectsBannedUser(t *testing.T) {
	client := &stubDynamoClient{query: queryReturningUsers(t, registeredUser(t, true))}
	svc := newUserService(client)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "hunter2")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	client := &stubDynamoClient{query: queryReturningUsers(t)}
	svc := newUserService(client)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "hunter2")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestMatchesSkill(t *testing.T) {
	user := &models.User{
		SkillsOffered: []string{"Guitar", "Home Cooking"},
		SkillsWanted:  []string{"Photoshop"},
	}

	assert.True(t, MatchesSkill(user, "guitar"))
	assert.True(t, MatchesSkill(user, "cook"))
	assert.True(t, MatchesSkill(user, "PHOTOSHOP"))
	assert.False(t, MatchesSkill(user, "plumbing"))
}

func TestSearchBySkill(t *testing.T) {
	guitarist := models.User{
		UserID:        "u1",
		Name:          "Alice",
		Email:         "alice@example.com",
		Password:      "hash",
		IsPublic:      true,
		SkillsOffered: []string{"Guitar"},
	}
	cook := models.User{
		UserID:        "u2",
		Name:          "Bob",
		IsPublic:      true,
		SkillsOffered: []string{"Cooking"},
	}

	client := &stubDynamoClient{
		scan: func(input *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			items := make([]map[string]types.AttributeValue, 0, 2)
			for _, user := range []models.User{guitarist, cook} {
				item, err := attributevalue.MarshalMap(user)
				require.NoError(t, err)
				items = append(items, item)
			}
			return &dynamodb.ScanOutput{Items: items}, nil
		},
	}
	svc := newUserService(client)

	users, err := svc.SearchBySkill(context.Background(), "guitar")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].UserID)
	assert.Empty(t, users[0].Email, "search results must not expose emails")
	assert.Empty(t, users[0].Password)
}

func TestSearchBySkillRequiresQuery(t *testing.T) {
	svc := newUserService(&stubDynamoClient{})
	_, err := svc.SearchBySkill(context.Background(), "  ")
	assert.ErrorIs(t, err, models.ErrValidation)
}
