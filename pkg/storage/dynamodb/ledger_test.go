package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListLedgerEntries(t *testing.T) {
	entry := models.LedgerEntry{
		EntryID:     "e1",
		OrderID:     "order-1",
		AccountID:   "user1",
		Debit:       1000,
		Description: "Freeze for order order-1",
		Timestamp:   time.Now(),
		GSI1PK:      "LEDGER_ENTRIES",
	}
	item, err := attributevalue.MarshalMap(entry)
	assert.NoError(t, err)

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.IndexName == ledgerGSI &&
			input.Limit != nil && *input.Limit == 10 &&
			input.ScanIndexForward != nil && !*input.ScanIndexForward
	})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil)

	store := newTestStore(mockClient)
	got, err := store.ListLedgerEntries(context.Background(), 10)

	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "e1", got[0].EntryID)
		assert.Equal(t, int64(1000), got[0].Debit)
	}
	mockClient.AssertExpectations(t)
}
