package dynamodb

import (
	"context"
	"errors"
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

// payoutClearingAccount is the counter-account credited when a confirmed
// debit leaves the user's frozen balance for the payment channel.
const payoutClearingAccount = "payout_clearing"

// CreateWallet creates a new wallet record in DynamoDB.
func (s *Store) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	if wallet.Version == 0 {
		wallet.Version = 1
	}
	walletAV, err := attributevalue.MarshalMap(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.WalletsTableName),
		Item:                walletAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"), // Prevent overwriting existing wallets.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("wallet for user ID %s: %w", wallet.UserId, storage.ErrWalletExists)
		}
		return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
	}

	return wallet, nil
}

// GetWallet retrieves a user's wallet from DynamoDB by their user ID.
func (s *Store) GetWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet user ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("wallet for user ID %s: %w", userID, storage.ErrNotFound)
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Item, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return &wallet, nil
}

// ListWallets retrieves all wallets from DynamoDB.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.WalletsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallets table: %w", err)
	}

	var wallets []models.Wallet
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
	}

	return wallets, nil
}

// AdjustBalance applies delta to a single balance field, conditioned on the
// caller's expectedVersion. The wallet update and the ledger trail entry are
// written in one TransactWriteItems call; the caller's reason goes onto the
// trail entry.
func (s *Store) AdjustBalance(ctx context.Context, userID string, field models.BalanceField, delta int64, reason string, expectedVersion int64) (*models.Wallet, error) {
	update := &types.Update{
		TableName:           aws.String(s.WalletsTableName),
		Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		UpdateExpression:    aws.String("SET #field = #field + :delta, version = version + :inc"),
		ConditionExpression: aws.String("attribute_exists(user_id) AND version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#field": string(field),
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", delta)},
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
			":inc":     &types.AttributeValueMemberN{Value: "1"},
		},
	}

	// The negative-balance floor applies to balance and frozen only.
	if delta < 0 && field != models.FieldBonus {
		update.ConditionExpression = aws.String("attribute_exists(user_id) AND version = :version AND #field >= :floor")
		update.ExpressionAttributeValues[":floor"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", -delta)}
	}

	description := fmt.Sprintf("Manual adjustment of %s by %d", field, delta)
	if reason != "" {
		description = fmt.Sprintf("%s: %s", description, reason)
	}
	entry := models.LedgerEntry{
		EntryID:     uuid.New().String(),
		AccountID:   userID,
		Description: description,
		Timestamp:   time.Now(),
		GSI1PK:      "LEDGER_ENTRIES",
	}
	if delta >= 0 {
		entry.Credit = delta
	} else {
		entry.Debit = -delta
	}
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: update},
			{Put: &types.Put{
				TableName:           aws.String(s.LedgerTableName),
				Item:                entryAV,
				ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
			}},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if conditionFailed(err) {
			return nil, s.classifyWalletConflict(ctx, userID, expectedVersion)
		}
		return nil, fmt.Errorf("failed to execute adjustment transaction: %w", err)
	}

	return s.GetWallet(ctx, userID)
}

// Freeze moves amount from balance to frozen, appending the trail entries.
func (s *Store) Freeze(ctx context.Context, userID string, amount int64, orderID string) (*models.Wallet, error) {
	return s.pairedMove(ctx, userID, amount, orderID,
		"SET balance = balance - :amount, frozen = frozen + :amount, version = version + :inc",
		"attribute_exists(user_id) AND version = :version AND balance >= :amount",
		fmt.Sprintf("Freeze for order %s", orderID),
		userID, userID,
		func(w *models.Wallet) { w.Balance -= amount; w.Frozen += amount })
}

// Unfreeze returns amount from frozen to balance, appending the trail entries.
func (s *Store) Unfreeze(ctx context.Context, userID string, amount int64, orderID string) (*models.Wallet, error) {
	return s.pairedMove(ctx, userID, amount, orderID,
		"SET balance = balance + :amount, frozen = frozen - :amount, version = version + :inc",
		"attribute_exists(user_id) AND version = :version AND frozen >= :amount",
		fmt.Sprintf("Unfreeze for order %s", orderID),
		userID, userID,
		func(w *models.Wallet) { w.Balance += amount; w.Frozen -= amount })
}

// ConfirmDebit consumes amount from frozen permanently, appending the trail entries.
func (s *Store) ConfirmDebit(ctx context.Context, userID string, amount int64, orderID string) (*models.Wallet, error) {
	return s.pairedMove(ctx, userID, amount, orderID,
		"SET frozen = frozen - :amount, version = version + :inc",
		"attribute_exists(user_id) AND version = :version AND frozen >= :amount",
		fmt.Sprintf("Debit confirmation for order %s", orderID),
		userID, payoutClearingAccount,
		func(w *models.Wallet) { w.Frozen -= amount })
}

// pairedMove executes one wallet mutation plus its debit/credit trail entries
// as a single TransactWriteItems call. The wallet update is conditioned on the
// version read just before, so both balance fields move together or not at all.
func (s *Store) pairedMove(ctx context.Context, userID string, amount int64, orderID, updateExpr, condExpr, description, debitAccount, creditAccount string, apply func(*models.Wallet)) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", amount)
	}

	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	now := time.Now()
	debitEntry := models.LedgerEntry{
		EntryID:     uuid.New().String(),
		OrderID:     orderID,
		AccountID:   debitAccount,
		Debit:       amount,
		Description: description,
		Timestamp:   now,
		GSI1PK:      "LEDGER_ENTRIES",
	}
	creditEntry := models.LedgerEntry{
		EntryID:     uuid.New().String(),
		OrderID:     orderID,
		AccountID:   creditAccount,
		Credit:      amount,
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
					Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
					UpdateExpression:    aws.String(updateExpr),
					ConditionExpression: aws.String(condExpr),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
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
			return nil, s.classifyWalletConflict(ctx, userID, wallet.Version)
		}
		return nil, fmt.Errorf("failed to execute wallet transaction: %w", err)
	}

	apply(wallet)
	wallet.Version++
	return wallet, nil
}

// conditionFailed reports whether err is a conditional check failure, either
// directly or as the cancellation reason of a write transaction.
func conditionFailed(err error) bool {
	var condCheckFailed *types.ConditionalCheckFailedException
	if errors.As(err, &condCheckFailed) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}

// classifyWalletConflict distinguishes a stale version from an insufficient
// balance after a conditional check failure, by re-reading the row.
func (s *Store) classifyWalletConflict(ctx context.Context, userID string, expectedVersion int64) error {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to re-read wallet after conflict: %w", err)
	}
	if wallet.Version != expectedVersion {
		return storage.ErrVersionConflict
	}
	return storage.ErrInsufficientFunds
}
