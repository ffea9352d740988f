// Package alerts publishes reconciliation alerts for operations staff.
//
// An alert is raised when a lifecycle operation succeeds against the ledger
// but the order write that should follow fails, or when an approved order sits
// without a payout outcome for too long. These are conditions a human must
// resolve; they are reported, never retried automatically.
package alerts

import (
	"context"
	"time"
)

// Stage identifies which half-completed operation produced the alert.
type Stage string

const (
	// StageAuditReject means funds were unfrozen but the rejection was not
	// recorded on the order.
	StageAuditReject Stage = "audit_reject"
	// StagePayoutSuccess means the debit was confirmed but the success was
	// not recorded on the order.
	StagePayoutSuccess Stage = "payout_success"
	// StagePayoutFailure means funds were unfrozen but the failure was not
	// recorded on the order.
	StagePayoutFailure Stage = "payout_failure"
	// StageStuckOrder means an approved order has had no payout outcome for
	// longer than the reconciliation threshold.
	StageStuckOrder Stage = "stuck_order"
)

// ReconciliationAlert describes an order left in a recoverable inconsistent state.
type ReconciliationAlert struct {
	OrderId  string    `json:"order_id"`
	UserId   string    `json:"user_id"`
	Stage    Stage     `json:"stage"`
	Detail   string    `json:"detail"`
	RaisedAt time.Time `json:"raised_at"`
}

// Publisher defines the interface for a component that reports reconciliation alerts.
type Publisher interface {
	// PublishAlert reports one alert for manual reconciliation.
	PublishAlert(ctx context.Context, alert *ReconciliationAlert) error
}

// NoOpPublisher discards alerts. Useful in tests.
type NoOpPublisher struct{}

// PublishAlert does nothing.
func (p *NoOpPublisher) PublishAlert(ctx context.Context, alert *ReconciliationAlert) error {
	return nil
}
