// Package lifecycle implements the withdrawal order state machine.
//
// It is a pure decision component: given an order's current sub-states and a
// requested event it either applies the transition to the in-memory copy or
// rejects it. It never touches storage and has no side effects beyond the
// order passed in.
package lifecycle

import (
	"errors"

	"github.com/finbridge/withdrawal-core/pkg/models"
)

// Event is a requested lifecycle transition.
type Event string

const (
	// AuditApprove moves pending_audit -> audit_passed. Funds stay frozen.
	AuditApprove Event = "audit.approve"
	// AuditReject moves pending_audit -> rejected. The caller must return
	// the frozen amount to the user's balance.
	AuditReject Event = "audit.reject"
	// StartPayout moves audit_passed -> payout_processing.
	StartPayout Event = "payout.start"
	// PayoutSucceed moves audit_passed|payout_processing -> success. The
	// caller must confirm the debit of the frozen amount.
	PayoutSucceed Event = "payout.succeed"
	// PayoutFail moves audit_passed|payout_processing -> failed. The caller
	// must return the frozen amount to the user's balance.
	PayoutFail Event = "payout.fail"
)

// ErrInvalidTransition is returned when the requested event is not accepted
// from the order's current state.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// ErrTerminalState is returned when an event is requested against an order in
// a terminal state (success, rejected, failed).
var ErrTerminalState = errors.New("order is in a terminal state")

// Next validates event against the order's current state and, if legal,
// applies the resulting sub-states to order. On error the order is unchanged.
func Next(order *models.WithdrawOrder, event Event) error {
	if order.Terminal() {
		return ErrTerminalState
	}

	switch event {
	case AuditApprove:
		if order.Status() != models.StatusPendingAudit {
			return ErrInvalidTransition
		}
		order.AuditStatus = models.AuditApproved

	case AuditReject:
		if order.Status() != models.StatusPendingAudit {
			return ErrInvalidTransition
		}
		order.AuditStatus = models.AuditRejected

	case StartPayout:
		if order.Status() != models.StatusAuditPassed {
			return ErrInvalidTransition
		}
		order.PayoutStatus = models.PayoutProcessing

	case PayoutSucceed:
		if !payoutEligible(order) {
			return ErrInvalidTransition
		}
		order.PayoutStatus = models.PayoutSuccess

	case PayoutFail:
		if !payoutEligible(order) {
			return ErrInvalidTransition
		}
		order.PayoutStatus = models.PayoutFailed

	default:
		return ErrInvalidTransition
	}

	return nil
}

// payoutEligible reports whether a payout outcome may be recorded. A direct
// outcome from audit_passed is accepted and treated as passing through
// payout_processing instantaneously.
func payoutEligible(order *models.WithdrawOrder) bool {
	if order.AuditStatus != models.AuditApproved {
		return false
	}
	s := order.Status()
	return s == models.StatusAuditPassed || s == models.StatusPayoutProcessing
}
