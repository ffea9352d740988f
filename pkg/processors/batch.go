package processors

import (
	"context"

	"github.com/finbridge/withdrawal-core/pkg/models"
)

// Auditor is the single-order audit contract the batch coordinator folds over.
type Auditor interface {
	Audit(ctx context.Context, orderID string, action AuditAction, remark, actorID string) (*models.WithdrawOrder, error)
}

// BatchCoordinator applies one audit decision across a list of orders,
// isolating per-item failures. There is no cross-order atomicity: items
// already processed are never rolled back because a later item fails.
type BatchCoordinator struct {
	Auditor Auditor
}

// NewBatchCoordinator creates a new BatchCoordinator.
func NewBatchCoordinator(auditor Auditor) *BatchCoordinator {
	return &BatchCoordinator{Auditor: auditor}
}

// BatchAudit invokes the audit processor once per order ID, in input order.
// Every ID is accounted for exactly once; orders that are not in
// pending_audit fail with their transition error rather than being skipped.
func (c *BatchCoordinator) BatchAudit(ctx context.Context, orderIDs []string, action AuditAction, remark, actorID string) *models.BatchAuditResult {
	result := &models.BatchAuditResult{
		Outcomes: make([]models.BatchOutcome, 0, len(orderIDs)),
	}

	for _, orderID := range orderIDs {
		if _, err := c.Auditor.Audit(ctx, orderID, action, remark, actorID); err != nil {
			result.FailedCount++
			result.Outcomes = append(result.Outcomes, models.BatchOutcome{
				OrderId: orderID,
				Ok:      false,
				Reason:  err.Error(),
			})
			continue
		}
		result.SuccessCount++
		result.Outcomes = append(result.Outcomes, models.BatchOutcome{
			OrderId: orderID,
			Ok:      true,
		})
	}

	return result
}
