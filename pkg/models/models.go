package models

import (
	"time"
)

// AuditStatus defines the possible audit decisions on a withdrawal order.
type AuditStatus string

const (
	AuditPending  AuditStatus = "PENDING"
	AuditApproved AuditStatus = "APPROVED"
	AuditRejected AuditStatus = "REJECTED"
)

// PayoutStatus defines the possible payout states of a withdrawal order.
type PayoutStatus string

const (
	PayoutNone       PayoutStatus = "NONE"
	PayoutProcessing PayoutStatus = "PROCESSING"
	PayoutSuccess    PayoutStatus = "SUCCESS"
	PayoutFailed     PayoutStatus = "FAILED"
)

// OrderStatus is the externally visible, composite lifecycle tag.
// It is always computed from (AuditStatus, PayoutStatus) and never stored.
type OrderStatus string

const (
	StatusPendingAudit     OrderStatus = "pending_audit"
	StatusAuditPassed      OrderStatus = "audit_passed"
	StatusPayoutProcessing OrderStatus = "payout_processing"
	StatusSuccess          OrderStatus = "success"
	StatusRejected         OrderStatus = "rejected"
	StatusFailed           OrderStatus = "failed"
)

// WithdrawOrder represents the internal domain model for a withdrawal order.
// Monetary fields are int64 minor units. Version is the order's own optimistic
// concurrency counter, distinct from the wallet's.
type WithdrawOrder struct {
	Id           string      `dynamodbav:"id"`
	UserId       string      `dynamodbav:"user_id"`
	Amount       int64       `dynamodbav:"amount"`
	Fee          int64       `dynamodbav:"fee"`
	ActualAmount *int64      `dynamodbav:"actual_amount,omitempty"`
	AuditStatus  AuditStatus `dynamodbav:"audit_status"`
	AuditorId    string      `dynamodbav:"auditor_id,omitempty"`
	AuditAt      *time.Time  `dynamodbav:"audit_at,omitempty"`
	AuditRemark  string      `dynamodbav:"audit_remark,omitempty"`

	PayoutStatus        PayoutStatus `dynamodbav:"payout_status"`
	PayoutMethod        string       `dynamodbav:"payout_method,omitempty"`
	PayoutAt            *time.Time   `dynamodbav:"payout_at,omitempty"`
	PayoutFailureReason string       `dynamodbav:"payout_failure_reason,omitempty"`
	ChannelOrderNo      string       `dynamodbav:"channel_order_no,omitempty"`

	Version   int64     `dynamodbav:"version"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// Status projects the composite lifecycle tag from the two stored sub-states.
func (o *WithdrawOrder) Status() OrderStatus {
	switch o.AuditStatus {
	case AuditRejected:
		return StatusRejected
	case AuditApproved:
		switch o.PayoutStatus {
		case PayoutProcessing:
			return StatusPayoutProcessing
		case PayoutSuccess:
			return StatusSuccess
		case PayoutFailed:
			return StatusFailed
		default:
			return StatusAuditPassed
		}
	}
	return StatusPendingAudit
}

// Terminal reports whether the order accepts no further lifecycle events.
func (o *WithdrawOrder) Terminal() bool {
	switch o.Status() {
	case StatusSuccess, StatusRejected, StatusFailed:
		return true
	}
	return false
}

// Wallet represents the per-user balance row. Every mutation is conditioned on
// Version and increments it, forming a total order of changes per user.
type Wallet struct {
	UserId    string    `json:"user_id" dynamodbav:"user_id"`
	Balance   int64     `json:"balance" dynamodbav:"balance"`
	Frozen    int64     `json:"frozen" dynamodbav:"frozen"`
	Bonus     int64     `json:"bonus" dynamodbav:"bonus"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// BalanceField names a mutable Wallet balance column for single-field adjustments.
type BalanceField string

const (
	FieldBalance BalanceField = "balance"
	FieldFrozen  BalanceField = "frozen"
	FieldBonus   BalanceField = "bonus"
)

// LedgerEntry represents a single entry in the double-entry ledger trail.
type LedgerEntry struct {
	EntryID     string    `dynamodbav:"entry_id"`
	OrderID     string    `dynamodbav:"order_id"`
	AccountID   string    `dynamodbav:"account_id"`
	Debit       int64     `dynamodbav:"debit,omitempty"`
	Credit      int64     `dynamodbav:"credit,omitempty"`
	Description string    `dynamodbav:"description"`
	Timestamp   time.Time `dynamodbav:"timestamp"`
	GSI1PK      string    `dynamodbav:"gsi1pk"`
}

// BatchOutcome records the result of one order inside a batch audit call.
type BatchOutcome struct {
	OrderId string `json:"order_id"`
	Ok      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
}

// BatchAuditResult aggregates per-order outcomes of a batch audit.
// It is constructed per call and never persisted.
type BatchAuditResult struct {
	SuccessCount int            `json:"success_count"`
	FailedCount  int            `json:"failed_count"`
	Outcomes     []BatchOutcome `json:"outcomes"`
}
