package processors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbridge/withdrawal-core/pkg/alerts"
	"github.com/finbridge/withdrawal-core/pkg/lifecycle"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	"github.com/finbridge/withdrawal-core/pkg/websockets"
)

// PayoutAction is the payment rail's outcome for an audited order.
type PayoutAction string

const (
	PayoutActionSuccess PayoutAction = "success"
	PayoutActionFailed  PayoutAction = "failed"
)

// ErrMissingChannelRef is returned when a payout success carries no channel order number.
var ErrMissingChannelRef = errors.New("channel order number is required for payout success")

// ErrMissingFailureReason is returned when a payout failure carries no reason.
var ErrMissingFailureReason = errors.New("failure reason is required for payout failure")

// PayoutProcessor records a payout outcome against one audited order. The
// payout itself is executed by an external payment rail; this component only
// records what happened and moves the frozen funds accordingly.
type PayoutProcessor struct {
	Orders    storage.OrderStore
	Wallets   storage.WalletStore
	Alerts    alerts.Publisher
	Publisher websockets.Publisher
}

// NewPayoutProcessor creates a new PayoutProcessor.
func NewPayoutProcessor(orders storage.OrderStore, wallets storage.WalletStore, alertPub alerts.Publisher, wsPub websockets.Publisher) *PayoutProcessor {
	return &PayoutProcessor{Orders: orders, Wallets: wallets, Alerts: alertPub, Publisher: wsPub}
}

// StartPayout marks an audited order as handed to the payment rail. The step
// is recorded explicitly; a direct MarkPayout from audit_passed stays legal.
func (p *PayoutProcessor) StartPayout(ctx context.Context, orderID, method, actorID string) (*models.WithdrawOrder, error) {
	order, err := p.Orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Next(order, lifecycle.StartPayout); err != nil {
		return nil, err
	}
	order.PayoutMethod = method

	if err := p.Orders.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	publishOrderUpdate(ctx, p.Publisher, order, actorID)
	return order, nil
}

// MarkPayout records a success or failure outcome. On success the frozen
// amount is consumed (debit confirmed) and the paid amount net of fee is
// recorded; on failure the frozen amount is returned to the balance. The
// ledger write precedes the order write in both cases.
func (p *PayoutProcessor) MarkPayout(ctx context.Context, orderID string, action PayoutAction, channelOrderNo, failureReason, actorID string) (*models.WithdrawOrder, error) {
	var event lifecycle.Event
	switch action {
	case PayoutActionSuccess:
		if channelOrderNo == "" {
			return nil, ErrMissingChannelRef
		}
		event = lifecycle.PayoutSucceed
	case PayoutActionFailed:
		if failureReason == "" {
			return nil, ErrMissingFailureReason
		}
		event = lifecycle.PayoutFail
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
	order.PayoutAt = &now
	var stage alerts.Stage
	var wallet *models.Wallet
	switch action {
	case PayoutActionSuccess:
		order.ChannelOrderNo = channelOrderNo
		actual := order.Amount - order.Fee
		order.ActualAmount = &actual
		stage = alerts.StagePayoutSuccess

		wallet, err = p.Wallets.ConfirmDebit(ctx, order.UserId, order.Amount, order.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to confirm debit for order %s: %w", order.Id, err)
		}
	case PayoutActionFailed:
		order.PayoutFailureReason = failureReason
		stage = alerts.StagePayoutFailure

		wallet, err = p.Wallets.Unfreeze(ctx, order.UserId, order.Amount, order.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to unfreeze funds for order %s: %w", order.Id, err)
		}
	}

	if err := p.Orders.UpdateOrder(ctx, order); err != nil {
		flagInconsistency(ctx, p.Alerts, order, stage, err)
		return nil, fmt.Errorf("order %s: ledger mutated but payout outcome not recorded, flagged for reconciliation: %w", order.Id, err)
	}

	publishOrderUpdate(ctx, p.Publisher, order, actorID)
	publishWalletUpdate(ctx, p.Publisher, order.Id, wallet)
	return order, nil
}
