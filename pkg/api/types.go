// Package api defines the request and response types of the admin HTTP API.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// AuditRequest is the body of a single-order audit call.
type AuditRequest struct {
	Action string `json:"action"`
	Remark string `json:"remark,omitempty"`
}

// BatchAuditRequest is the body of a batch audit call.
type BatchAuditRequest struct {
	OrderIds []openapi_types.UUID `json:"order_ids"`
	Action   string               `json:"action"`
	Remark   string               `json:"remark,omitempty"`
}

// PayoutRequest is the body of a payout outcome call.
type PayoutRequest struct {
	Action         string `json:"action"`
	ChannelOrderNo string `json:"channel_order_no,omitempty"`
	FailureReason  string `json:"failure_reason,omitempty"`
}

// StartPayoutRequest is the body of an explicit payout-start call.
type StartPayoutRequest struct {
	Method string `json:"method"`
}

// AdjustWalletRequest is the body of a manual wallet adjustment call.
// Type is "increase" or "decrease"; Amount is always positive.
type AdjustWalletRequest struct {
	Field           string `json:"field"`
	Type            string `json:"type"`
	Amount          int64  `json:"amount"`
	Reason          string `json:"reason,omitempty"`
	ExpectedVersion int64  `json:"expected_version"`
}

// NewWallet is the body of a wallet creation call.
type NewWallet struct {
	UserId string `json:"user_id"`
}

// NewOrder is the body of a withdrawal intake call.
type NewOrder struct {
	UserId       string `json:"user_id"`
	Amount       int64  `json:"amount"`
	Fee          int64  `json:"fee"`
	PayoutMethod string `json:"payout_method,omitempty"`
}

// Order is the API representation of a withdrawal order. Status is the
// composite lifecycle tag projected from the audit and payout sub-states.
type Order struct {
	Id                  string     `json:"id"`
	UserId              string     `json:"user_id"`
	Amount              int64      `json:"amount"`
	Fee                 int64      `json:"fee"`
	ActualAmount        *int64     `json:"actual_amount,omitempty"`
	Status              string     `json:"status"`
	AuditStatus         string     `json:"audit_status"`
	AuditorId           string     `json:"auditor_id,omitempty"`
	AuditAt             *time.Time `json:"audit_at,omitempty"`
	AuditRemark         string     `json:"audit_remark,omitempty"`
	PayoutStatus        string     `json:"payout_status"`
	PayoutMethod        string     `json:"payout_method,omitempty"`
	PayoutAt            *time.Time `json:"payout_at,omitempty"`
	PayoutFailureReason string     `json:"payout_failure_reason,omitempty"`
	ChannelOrderNo      string     `json:"channel_order_no,omitempty"`
	Version             int64      `json:"version"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Wallet is the API representation of a user's wallet.
type Wallet struct {
	UserId  string `json:"user_id"`
	Balance int64  `json:"balance"`
	Frozen  int64  `json:"frozen"`
	Bonus   int64  `json:"bonus"`
	Version int64  `json:"version"`
}

// LedgerEntry is the API representation of one ledger trail entry.
type LedgerEntry struct {
	EntryId     string    `json:"entry_id"`
	OrderId     string    `json:"order_id,omitempty"`
	AccountId   string    `json:"account_id"`
	Debit       *int64    `json:"debit,omitempty"`
	Credit      *int64    `json:"credit,omitempty"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// BatchOutcome is the per-order result inside a BatchAuditResponse.
type BatchOutcome struct {
	OrderId string `json:"order_id"`
	Ok      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
}

// BatchAuditResponse reports precise per-item outcomes of a batch audit.
type BatchAuditResponse struct {
	SuccessCount int            `json:"success_count"`
	FailedCount  int            `json:"failed_count"`
	Outcomes     []BatchOutcome `json:"outcomes"`
}

// ListLedgerEntriesParams are the query parameters of the ledger listing call.
type ListLedgerEntriesParams struct {
	Limit *int `json:"limit,omitempty"`
}

// Error is the JSON error envelope. Code is a stable machine-readable
// identifier such as VERSION_CONFLICT.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
