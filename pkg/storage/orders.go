package storage

import (
	"context"
	"time"

	"github.com/finbridge/withdrawal-core/pkg/models"
)

// OrderReader defines the interface for reading withdrawal orders.
type OrderReader interface {
	// GetOrder retrieves a withdrawal order by its ID.
	GetOrder(ctx context.Context, orderID string) (*models.WithdrawOrder, error)

	// ListOrdersByStatus retrieves all orders whose stored audit status
	// matches the given value.
	ListOrdersByStatus(ctx context.Context, status models.AuditStatus) ([]models.WithdrawOrder, error)

	// GetStuckOrders retrieves approved orders whose payout has not reached a
	// terminal state within maxAge. These are the reconciliation candidates.
	GetStuckOrders(ctx context.Context, maxAge time.Duration) ([]models.WithdrawOrder, error)
}

// OrderWriter defines the interface for mutating withdrawal orders.
type OrderWriter interface {
	// CreateOrder persists a new order in pending_audit. The intake
	// collaborator freezes the funds in the same atomic unit.
	CreateOrder(ctx context.Context, order *models.WithdrawOrder) (*models.WithdrawOrder, error)

	// UpdateOrder persists the order's lifecycle fields conditioned on the
	// stored version still being order.Version. On success the stored and
	// in-memory versions are incremented. A stale write returns
	// ErrConcurrentUpdate and mutates nothing.
	UpdateOrder(ctx context.Context, order *models.WithdrawOrder) error
}

// OrderStore combines order reading and writing.
type OrderStore interface {
	OrderReader
	OrderWriter
}
