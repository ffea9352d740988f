package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	"github.com/google/uuid"
)

const (
	auditStatusGSI = "audit_status-created_at-index"
)

// CreateOrder atomically freezes the withdrawal amount in the user's wallet
// and creates the order record in pending_audit. This is the intake
// precondition every later lifecycle operation relies on: an order exists only
// if its funds are frozen.
func (s *Store) CreateOrder(ctx context.Context, order *models.WithdrawOrder) (*models.WithdrawOrder, error) {
	wallet, err := s.GetWallet(ctx, order.UserId)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet for intake: %w", err)
	}

	now := time.Now()
	if order.Id == "" {
		order.Id = uuid.New().String()
	}
	order.AuditStatus = models.AuditPending
	order.PayoutStatus = models.PayoutNone
	order.Version = 1
	order.CreatedAt = now
	order.UpdatedAt = now

	orderAV, err := attributevalue.MarshalMap(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	description := fmt.Sprintf("Freeze for order %s", order.Id)
	debitEntry := models.LedgerEntry{
		EntryID:     uuid.New().String(),
		OrderID:     order.Id,
		AccountID:   order.UserId,
		Debit:       order.Amount,
		Description: description,
		Timestamp:   now,
		GSI1PK:      "LEDGER_ENTRIES",
	}
	creditEntry := models.LedgerEntry{
		EntryID:     uuid.New().String(),
		OrderID:     order.Id,
		AccountID:   order.UserId,
		Credit:      order.Amount,
		Description: description,
		Timestamp:   now,
		GSI1PK:      "LEDGER_ENTRIES",
	}
	debitAV, err := attributevalue.MarshalMap(debitEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal debit entry: %w", err)
	}
	creditAV, err := attributevalue.MarshalMap(creditEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credit entry: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.WalletsTableName),
					Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: order.UserId}},
					UpdateExpression:    aws.String("SET balance = balance - :amount, frozen = frozen + :amount, version = version + :inc"),
					ConditionExpression: aws.String("attribute_exists(user_id) AND version = :version AND balance >= :amount"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", order.Amount)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{Put: &types.Put{
				TableName:           aws.String(s.OrdersTableName),
				Item:                orderAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			}},
			{Put: &types.Put{
				TableName:           aws.String(s.LedgerTableName),
				Item:                debitAV,
				ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
			}},
			{Put: &types.Put{
				TableName:           aws.String(s.LedgerTableName),
				Item:                creditAV,
				ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
			}},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if conditionFailed(err) {
			return nil, s.classifyWalletConflict(ctx, order.UserId, wallet.Version)
		}
		return nil, fmt.Errorf("failed to execute intake transaction: %w", err)
	}

	return order, nil
}

// GetOrder retrieves a withdrawal order from DynamoDB by its ID.
func (s *Store) GetOrder(ctx context.Context, orderID string) (*models.WithdrawOrder, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": orderID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.OrdersTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get order from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("order with ID %s: %w", orderID, storage.ErrNotFound)
	}

	var order models.WithdrawOrder
	if err := attributevalue.UnmarshalMap(result.Item, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}

	return &order, nil
}

// UpdateOrder persists the order's lifecycle fields with a conditional put:
// the write succeeds only if the stored version still matches the version the
// caller loaded. Two concurrent auditors of the same order cannot both win.
func (s *Store) UpdateOrder(ctx context.Context, order *models.WithdrawOrder) error {
	loadedVersion := order.Version

	next := *order
	next.Version = loadedVersion + 1
	next.UpdatedAt = time.Now()

	orderAV, err := attributevalue.MarshalMap(&next)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.OrdersTableName),
		Item:                orderAV,
		ConditionExpression: aws.String("attribute_exists(id) AND version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", loadedVersion)},
		},
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		if conditionFailed(err) {
			return fmt.Errorf("order %s: %w", order.Id, storage.ErrConcurrentUpdate)
		}
		return fmt.Errorf("failed to update order in DynamoDB: %w", err)
	}

	order.Version = next.Version
	order.UpdatedAt = next.UpdatedAt
	return nil
}

// ListOrdersByStatus retrieves all orders with the given stored audit status.
func (s *Store) ListOrdersByStatus(ctx context.Context, status models.AuditStatus) ([]models.WithdrawOrder, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.OrdersTableName),
		IndexName:              aws.String(auditStatusGSI),
		KeyConditionExpression: aws.String("audit_status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by status: %w", err)
	}

	var orders []models.WithdrawOrder
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders: %w", err)
	}

	return orders, nil
}

// GetStuckOrders retrieves approved orders whose payout has not reached a
// terminal state within maxAge. These feed the reconciliation process.
func (s *Store) GetStuckOrders(ctx context.Context, maxAge time.Duration) ([]models.WithdrawOrder, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.OrdersTableName),
		IndexName:              aws.String(auditStatusGSI),
		KeyConditionExpression: aws.String("audit_status = :status"),
		FilterExpression:       aws.String("payout_status IN (:none, :processing) AND updated_at < :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(models.AuditApproved)},
			":none":       &types.AttributeValueMemberS{Value: string(models.PayoutNone)},
			":processing": &types.AttributeValueMemberS{Value: string(models.PayoutProcessing)},
			":cutoff":     &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stuck orders: %w", err)
	}

	var orders []models.WithdrawOrder
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stuck orders: %w", err)
	}

	return orders, nil
}
