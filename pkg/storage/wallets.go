package storage

import (
	"context"

	"github.com/finbridge/withdrawal-core/pkg/models"
)

// WalletStore defines the interface for the concurrency-controlled ledger.
//
// Every mutation is a compare-and-swap on the wallet's version counter: the
// store applies the change only if the stored version still matches what the
// caller (or the store itself, for the paired moves) read, and increments it
// in the same atomic unit. On a mismatch the mutation is rejected with
// ErrVersionConflict and nothing changes. The store never retries; callers
// must re-read and decide again.
type WalletStore interface {
	// GetWallet retrieves a user's wallet by their user ID.
	GetWallet(ctx context.Context, userID string) (*models.Wallet, error)

	// CreateWallet creates a new wallet for a user.
	CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)

	// ListWallets retrieves all wallets.
	ListWallets(ctx context.Context) ([]models.Wallet, error)

	// AdjustBalance applies delta to a single balance field conditioned on
	// expectedVersion. Used for manual adjustments from the admin console;
	// reason is recorded on the ledger trail entry. A negative resulting
	// balance or frozen balance aborts with ErrInsufficientFunds.
	AdjustBalance(ctx context.Context, userID string, field models.BalanceField, delta int64, reason string, expectedVersion int64) (*models.Wallet, error)

	// Freeze moves amount from balance to frozen in one atomic unit,
	// appending the ledger trail entries. Performed at withdrawal intake.
	Freeze(ctx context.Context, userID string, amount int64, orderID string) (*models.Wallet, error)

	// Unfreeze returns amount from frozen to balance in one atomic unit,
	// appending the ledger trail entries. Performed on audit rejection and
	// payout failure.
	Unfreeze(ctx context.Context, userID string, amount int64, orderID string) (*models.Wallet, error)

	// ConfirmDebit consumes amount from frozen permanently in one atomic
	// unit, appending the ledger trail entries. Performed on payout success.
	ConfirmDebit(ctx context.Context, userID string, amount int64, orderID string) (*models.Wallet, error)
}
