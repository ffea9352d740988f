package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbridge/withdrawal-core/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddConnection(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

	store := newTestStore(mockClient)
	err := store.AddConnection(context.Background(), "conn-1")

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestRemoveConnection(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil)

	store := newTestStore(mockClient)
	err := store.RemoveConnection(context.Background(), "conn-1")

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestGetAllConnections(t *testing.T) {
	conns := []WebSocketConnection{
		{ConnectionID: "conn-1", PK: "connections"},
		{ConnectionID: "conn-2", PK: "connections"},
	}
	items := make([]map[string]types.AttributeValue, len(conns))
	for i, c := range conns {
		item, err := attributevalue.MarshalMap(c)
		assert.NoError(t, err)
		items[i] = item
	}

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: items}, nil)

	store := newTestStore(mockClient)
	ids, err := store.GetAllConnections(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"conn-1", "conn-2"}, ids)
}
