package mapping

import (
	"github.com/finbridge/withdrawal-core/pkg/api"
	"github.com/finbridge/withdrawal-core/pkg/models"
)

// ToApiOrder converts a domain WithdrawOrder to an API Order model.
func ToApiOrder(order *models.WithdrawOrder) *api.Order {
	return &api.Order{
		Id:                  order.Id,
		UserId:              order.UserId,
		Amount:              order.Amount,
		Fee:                 order.Fee,
		ActualAmount:        order.ActualAmount,
		Status:              string(order.Status()),
		AuditStatus:         string(order.AuditStatus),
		AuditorId:           order.AuditorId,
		AuditAt:             order.AuditAt,
		AuditRemark:         order.AuditRemark,
		PayoutStatus:        string(order.PayoutStatus),
		PayoutMethod:        order.PayoutMethod,
		PayoutAt:            order.PayoutAt,
		PayoutFailureReason: order.PayoutFailureReason,
		ChannelOrderNo:      order.ChannelOrderNo,
		Version:             order.Version,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}
}

// ToDomainNewOrder converts an API NewOrder to a domain WithdrawOrder.
// Lifecycle fields are filled in by the store at intake.
func ToDomainNewOrder(newOrder *api.NewOrder) *models.WithdrawOrder {
	return &models.WithdrawOrder{
		UserId:       newOrder.UserId,
		Amount:       newOrder.Amount,
		Fee:          newOrder.Fee,
		PayoutMethod: newOrder.PayoutMethod,
	}
}

// ToApiWallet converts a domain Wallet model to an API Wallet model.
func ToApiWallet(wallet *models.Wallet) *api.Wallet {
	return &api.Wallet{
		UserId:  wallet.UserId,
		Balance: wallet.Balance,
		Frozen:  wallet.Frozen,
		Bonus:   wallet.Bonus,
		Version: wallet.Version,
	}
}

// ToDomainNewWallet converts an API NewWallet model to a domain Wallet model.
func ToDomainNewWallet(newWallet *api.NewWallet) *models.Wallet {
	return &models.Wallet{
		UserId:  newWallet.UserId,
		Version: 1,
	}
}

// ToApiLedgerEntry converts a domain LedgerEntry to its API representation.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	apiEntry := &api.LedgerEntry{
		EntryId:     entry.EntryID,
		OrderId:     entry.OrderID,
		AccountId:   entry.AccountID,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}
	if entry.Debit != 0 {
		apiEntry.Debit = &entry.Debit
	}
	if entry.Credit != 0 {
		apiEntry.Credit = &entry.Credit
	}
	return apiEntry
}

// ToApiBatchResult converts a domain BatchAuditResult to its API representation.
func ToApiBatchResult(result *models.BatchAuditResult) *api.BatchAuditResponse {
	resp := &api.BatchAuditResponse{
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
		Outcomes:     make([]api.BatchOutcome, len(result.Outcomes)),
	}
	for i, outcome := range result.Outcomes {
		resp.Outcomes[i] = api.BatchOutcome{
			OrderId: outcome.OrderId,
			Ok:      outcome.Ok,
			Reason:  outcome.Reason,
		}
	}
	return resp
}
