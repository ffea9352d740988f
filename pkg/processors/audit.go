// Package processors implements the lifecycle operations exposed to the admin
// console: single-order audit, payout outcome recording, and batch audit.
//
// Each operation is request/response and performs no retries. Where an
// operation touches both the wallet and the order, the wallet write goes
// first; a failure to record the order transition after the money moved is
// flagged for manual reconciliation, never rolled back or silently retried.
package processors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbridge/withdrawal-core/pkg/alerts"
	"github.com/finbridge/withdrawal-core/pkg/lifecycle"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	"github.com/finbridge/withdrawal-core/pkg/websockets"
)

// AuditAction is the administrator's decision on a pending order.
type AuditAction string

const (
	ActionApprove AuditAction = "approve"
	ActionReject  AuditAction = "reject"
)

// ErrMissingRemark is returned when a rejection carries no remark.
var ErrMissingRemark = errors.New("remark is required for rejection")

// ErrUnknownAction is returned for an action outside the accepted set.
var ErrUnknownAction = errors.New("unknown action")

// AuditProcessor applies a single approve/reject decision to one order.
type AuditProcessor struct {
	Orders    storage.OrderStore
	Wallets   storage.WalletStore
	Alerts    alerts.Publisher
	Publisher websockets.Publisher
}

// NewAuditProcessor creates a new AuditProcessor.
func NewAuditProcessor(orders storage.OrderStore, wallets storage.WalletStore, alertPub alerts.Publisher, wsPub websockets.Publisher) *AuditProcessor {
	return &AuditProcessor{Orders: orders, Wallets: wallets, Alerts: alertPub, Publisher: wsPub}
}

// Audit applies action to the order identified by orderID, stamping the
// auditor identity and decision time. On rejection the frozen amount is
// returned to the user's balance before the order transition is persisted.
func (p *AuditProcessor) Audit(ctx context.Context, orderID string, action AuditAction, remark, actorID string) (*models.WithdrawOrder, error) {
	var event lifecycle.Event
	switch action {
	case ActionApprove:
		event = lifecycle.AuditApprove
	case ActionReject:
		if remark == "" {
			return nil, ErrMissingRemark
		}
		event = lifecycle.AuditReject
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	order, err := p.Orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Next(order, event); err != nil {
		return nil, err
	}

	now := time.Now()
	order.AuditorId = actorID
	order.AuditAt = &now
	order.AuditRemark = remark

	// On rejection the ledger write goes first. If the process dies between
	// the two writes, the order stays in pending_audit with the funds already
	// returned, which reconciliation can detect and resolve.
	var wallet *models.Wallet
	if action == ActionReject {
		wallet, err = p.Wallets.Unfreeze(ctx, order.UserId, order.Amount, order.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to unfreeze funds for order %s: %w", order.Id, err)
		}
	}

	if err := p.Orders.UpdateOrder(ctx, order); err != nil {
		if action == ActionReject {
			flagInconsistency(ctx, p.Alerts, order, alerts.StageAuditReject, err)
			return nil, fmt.Errorf("order %s: funds unfrozen but rejection not recorded, flagged for reconciliation: %w", order.Id, err)
		}
		return nil, err
	}

	publishOrderUpdate(ctx, p.Publisher, order, actorID)
	publishWalletUpdate(ctx, p.Publisher, order.Id, wallet)
	return order, nil
}

// flagInconsistency logs and publishes a reconciliation alert for an order
// whose ledger mutation succeeded while its own write failed.
func flagInconsistency(ctx context.Context, pub alerts.Publisher, order *models.WithdrawOrder, stage alerts.Stage, cause error) {
	slog.Error("INCONSISTENCY: ledger mutated but order write failed",
		"orderId", order.Id,
		"userId", order.UserId,
		"stage", string(stage),
		"error", cause,
	)
	if pub == nil {
		return
	}
	alert := &alerts.ReconciliationAlert{
		OrderId:  order.Id,
		UserId:   order.UserId,
		Stage:    stage,
		Detail:   cause.Error(),
		RaisedAt: time.Now(),
	}
	if err := pub.PublishAlert(ctx, alert); err != nil {
		slog.Error("failed to publish reconciliation alert", "orderId", order.Id, "error", err)
	}
}

// publishOrderUpdate pushes the new order state to connected admin consoles.
// Best effort only; a push failure never fails the request.
func publishOrderUpdate(ctx context.Context, pub websockets.Publisher, order *models.WithdrawOrder, actorID string) {
	if pub == nil {
		return
	}
	msg := websockets.Message{
		Type: websockets.MessageTypeOrderUpdate,
		Payload: websockets.OrderUpdatePayload{
			OrderID: order.Id,
			UserID:  order.UserId,
			Status:  string(order.Status()),
			ActorID: actorID,
		},
	}
	if err := pub.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish order update", "orderId", order.Id, "error", err)
	}
}

// publishWalletUpdate pushes the balances left by a ledger mutation to
// connected admin consoles. Best effort only; a nil wallet means no money
// moved and nothing is pushed.
func publishWalletUpdate(ctx context.Context, pub websockets.Publisher, orderID string, wallet *models.Wallet) {
	if pub == nil || wallet == nil {
		return
	}
	msg := websockets.Message{
		Type: websockets.MessageTypeWalletUpdate,
		Payload: websockets.WalletUpdatePayload{
			UserID:     wallet.UserId,
			OrderID:    orderID,
			NewBalance: wallet.Balance,
			NewFrozen:  wallet.Frozen,
			Version:    wallet.Version,
		},
	}
	if err := pub.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish wallet update", "userId", wallet.UserId, "error", err)
	}
}
