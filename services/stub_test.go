package services

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// stubDynamoClient implements DynamoDBAPI with per-call hooks. Unset hooks
// return empty success so tests only describe what they care about.
type stubDynamoClient struct {
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (s *stubDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if s.putItem != nil {
		return s.putItem(params)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (s *stubDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if s.getItem != nil {
		return s.getItem(params)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (s *stubDynamoClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if s.updateItem != nil {
		return s.updateItem(params)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (s *stubDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if s.deleteItem != nil {
		return s.deleteItem(params)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (s *stubDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if s.query != nil {
		return s.query(params)
	}
	return &dynamodb.QueryOutput{}, nil
}

func (s *stubDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if s.scan != nil {
		return s.scan(params)
	}
	return &dynamodb.ScanOutput{}, nil
}

// fakeNotifier records emitted events for assertions
type fakeNotifier struct {
	mu        sync.Mutex
	sent      []sentEvent
	broadcast []sentEvent
}

type sentEvent struct {
	UserID  string
	Event   string
	Payload interface{}
}

func (f *fakeNotifier) SendToUser(userID, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEvent{UserID: userID, Event: event, Payload: payload})
}

func (f *fakeNotifier) Broadcast(event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broadcast = append(f.broadcast, sentEvent{Event: event, Payload: payload})
}
