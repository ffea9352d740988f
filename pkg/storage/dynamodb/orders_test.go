package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	"github.com/finbridge/withdrawal-core/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func orderItem(t *testing.T, order *models.WithdrawOrder) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(order)
	assert.NoError(t, err)
	return item
}

func TestCreateOrder(t *testing.T) {
	newOrder := func() *models.WithdrawOrder {
		return &models.WithdrawOrder{UserId: "test-user", Amount: 1000, Fee: 50}
	}

	t.Run("Success", func(t *testing.T) {
		wallet := &models.Wallet{UserId: "test-user", Balance: 5000, Version: 2}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: walletItem(t, wallet)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// Wallet freeze, order put, and the debit/credit pair.
			return len(input.TransactItems) == 4 &&
				input.TransactItems[0].Update != nil &&
				input.TransactItems[1].Put != nil
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := newTestStore(mockClient)
		created, err := store.CreateOrder(context.Background(), newOrder())

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, models.AuditPending, created.AuditStatus)
		assert.Equal(t, models.PayoutNone, created.PayoutStatus)
		assert.Equal(t, models.StatusPendingAudit, created.Status())
		assert.Equal(t, int64(1), created.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		wallet := &models.Wallet{UserId: "test-user", Balance: 100, Version: 2}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: walletItem(t, wallet)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, transactionCanceled())

		store := newTestStore(mockClient)
		_, err := store.CreateOrder(context.Background(), newOrder())

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
	})

	t.Run("No Wallet", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		store := newTestStore(mockClient)
		_, err := store.CreateOrder(context.Background(), newOrder())

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		order := &models.WithdrawOrder{
			Id:           "order-1",
			UserId:       "test-user",
			Amount:       1000,
			AuditStatus:  models.AuditPending,
			PayoutStatus: models.PayoutNone,
			Version:      1,
		}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: orderItem(t, order)}, nil)

		store := newTestStore(mockClient)
		got, err := store.GetOrder(context.Background(), "order-1")

		assert.NoError(t, err)
		assert.Equal(t, order.Id, got.Id)
		assert.Equal(t, models.StatusPendingAudit, got.Status())
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		store := newTestStore(mockClient)
		_, err := store.GetOrder(context.Background(), "missing-order")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUpdateOrder(t *testing.T) {
	t.Run("Success Bumps Version", func(t *testing.T) {
		order := &models.WithdrawOrder{
			Id:          "order-1",
			UserId:      "test-user",
			AuditStatus: models.AuditApproved,
			Version:     1,
		}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			version, ok := input.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN)
			return ok && version.Value == "1"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		store := newTestStore(mockClient)
		err := store.UpdateOrder(context.Background(), order)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), order.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Concurrent Update", func(t *testing.T) {
		order := &models.WithdrawOrder{Id: "order-1", Version: 1}
		before := *order
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := newTestStore(mockClient)
		err := store.UpdateOrder(context.Background(), order)

		assert.ErrorIs(t, err, storage.ErrConcurrentUpdate)
		assert.Equal(t, before.Version, order.Version, "a rejected write must not bump the in-memory version")
	})

	t.Run("Storage Error", func(t *testing.T) {
		order := &models.WithdrawOrder{Id: "order-1", Version: 1}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := newTestStore(mockClient)
		err := store.UpdateOrder(context.Background(), order)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrConcurrentUpdate)
	})
}

func TestListOrdersByStatus(t *testing.T) {
	orders := []models.WithdrawOrder{
		{Id: "order-1", AuditStatus: models.AuditPending},
		{Id: "order-2", AuditStatus: models.AuditPending},
	}
	items := make([]map[string]types.AttributeValue, len(orders))
	for i := range orders {
		items[i] = orderItem(t, &orders[i])
	}

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return input.IndexName != nil && *input.IndexName == auditStatusGSI
	})).Return(&dynamodb.QueryOutput{Items: items}, nil)

	store := newTestStore(mockClient)
	got, err := store.ListOrdersByStatus(context.Background(), models.AuditPending)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	mockClient.AssertExpectations(t)
}

func TestGetStuckOrders(t *testing.T) {
	stuck := &models.WithdrawOrder{
		Id:           "order-1",
		AuditStatus:  models.AuditApproved,
		PayoutStatus: models.PayoutProcessing,
	}

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return input.FilterExpression != nil
	})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{orderItem(t, stuck)}}, nil)

	store := newTestStore(mockClient)
	got, err := store.GetStuckOrders(context.Background(), 30*time.Minute)

	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "order-1", got[0].Id)
	}
	mockClient.AssertExpectations(t)
}
