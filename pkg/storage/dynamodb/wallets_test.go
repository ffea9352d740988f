package dynamodb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	"github.com/finbridge/withdrawal-core/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestStore(client DynamoDBAPI) *Store {
	return New(client, "orders", "wallets", "ledger", "connections")
}

func walletItem(t *testing.T, wallet *models.Wallet) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(wallet)
	assert.NoError(t, err)
	return item
}

// transactionCanceled builds the error shape DynamoDB returns when one item
// of a write transaction fails its condition.
func transactionCanceled() error {
	return &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
			{Code: aws.String("None")},
		},
	}
}

func TestCreateWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := newTestStore(mockClient)
		createdWallet, err := store.CreateWallet(context.Background(), &models.Wallet{UserId: "test-user"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), createdWallet.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Exists", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := newTestStore(mockClient)
		_, err := store.CreateWallet(context.Background(), &models.Wallet{UserId: "test-user"})

		assert.ErrorIs(t, err, storage.ErrWalletExists)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := newTestStore(mockClient)
		_, err := store.CreateWallet(context.Background(), &models.Wallet{UserId: "test-user"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create wallet in DynamoDB")
	})
}

func TestGetWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		wallet := &models.Wallet{UserId: "test-user", Balance: 5000, Version: 3}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: walletItem(t, wallet)}, nil)

		store := newTestStore(mockClient)
		got, err := store.GetWallet(context.Background(), "test-user")

		assert.NoError(t, err)
		assert.Equal(t, wallet, got)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		store := newTestStore(mockClient)
		_, err := store.GetWallet(context.Background(), "missing-user")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestAdjustBalance(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		adjusted := &models.Wallet{UserId: "test-user", Balance: 6000, Version: 4}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// One wallet update plus one trail entry.
			if len(input.TransactItems) != 2 ||
				input.TransactItems[0].Update == nil ||
				input.TransactItems[1].Put == nil {
				return false
			}
			// The caller's reason ends up on the trail entry.
			var entry models.LedgerEntry
			if err := attributevalue.UnmarshalMap(input.TransactItems[1].Put.Item, &entry); err != nil {
				return false
			}
			return strings.Contains(entry.Description, "fraud refund case FR-77")
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: walletItem(t, adjusted)}, nil)

		store := newTestStore(mockClient)
		got, err := store.AdjustBalance(context.Background(), "test-user", models.FieldBalance, 1000, "fraud refund case FR-77", 3)

		assert.NoError(t, err)
		assert.Equal(t, adjusted, got)
		mockClient.AssertExpectations(t)
	})

	t.Run("Stale Version", func(t *testing.T) {
		// The condition failed and the re-read shows a newer version: another
		// writer got there first.
		current := &models.Wallet{UserId: "test-user", Balance: 5000, Version: 5}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, transactionCanceled())
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: walletItem(t, current)}, nil)

		store := newTestStore(mockClient)
		_, err := store.AdjustBalance(context.Background(), "test-user", models.FieldBalance, 1000, "", 4)

		assert.ErrorIs(t, err, storage.ErrVersionConflict)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		// The condition failed at the version the caller expected: the floor
		// check is what rejected the write.
		current := &models.Wallet{UserId: "test-user", Balance: 500, Version: 4}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, transactionCanceled())
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: walletItem(t, current)}, nil)

		store := newTestStore(mockClient)
		_, err := store.AdjustBalance(context.Background(), "test-user", models.FieldBalance, -1000, "", 4)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
	})
}

func TestFreeze(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		wallet := &models.Wallet{UserId: "test-user", Balance: 5000, Frozen: 0, Version: 2}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: walletItem(t, wallet)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// One wallet update plus the debit/credit pair.
			return len(input.TransactItems) == 3
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := newTestStore(mockClient)
		got, err := store.Freeze(context.Background(), "test-user", 1000, "order-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(4000), got.Balance)
		assert.Equal(t, int64(1000), got.Frozen)
		assert.Equal(t, int64(3), got.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		wallet := &models.Wallet{UserId: "test-user", Balance: 500, Version: 2}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: walletItem(t, wallet)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, transactionCanceled())

		store := newTestStore(mockClient)
		_, err := store.Freeze(context.Background(), "test-user", 1000, "order-1")

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := newTestStore(mockClient)
		_, err := store.Freeze(context.Background(), "test-user", 0, "order-1")

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})
}

func TestUnfreeze(t *testing.T) {
	wallet := &models.Wallet{UserId: "test-user", Balance: 4000, Frozen: 1000, Version: 3}
	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("GetItem", mock.Anything, mock.Anything).
		Return(&dynamodb.GetItemOutput{Item: walletItem(t, wallet)}, nil)
	mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

	store := newTestStore(mockClient)
	got, err := store.Unfreeze(context.Background(), "test-user", 1000, "order-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(5000), got.Balance)
	assert.Equal(t, int64(0), got.Frozen)
	assert.Equal(t, int64(4), got.Version)
}

func TestConfirmDebit(t *testing.T) {
	wallet := &models.Wallet{UserId: "test-user", Balance: 4000, Frozen: 1000, Version: 3}
	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("GetItem", mock.Anything, mock.Anything).
		Return(&dynamodb.GetItemOutput{Item: walletItem(t, wallet)}, nil)
	mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
		return len(input.TransactItems) == 3
	})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

	store := newTestStore(mockClient)
	got, err := store.ConfirmDebit(context.Background(), "test-user", 1000, "order-1")

	assert.NoError(t, err)
	// The balance is untouched; only the frozen amount is consumed.
	assert.Equal(t, int64(4000), got.Balance)
	assert.Equal(t, int64(0), got.Frozen)
	assert.Equal(t, int64(4), got.Version)
}
