package storage

import (
	"context"

	"github.com/finbridge/withdrawal-core/pkg/models"
)

// LedgerReader defines the interface for reading the ledger trail.
type LedgerReader interface {
	// ListLedgerEntries retrieves the most recent ledger entries.
	ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error)
}
