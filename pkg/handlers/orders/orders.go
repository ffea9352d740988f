package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/finbridge/withdrawal-core/pkg/api"
	"github.com/finbridge/withdrawal-core/pkg/handlers/respond"
	"github.com/finbridge/withdrawal-core/pkg/mapping"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/processors"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// actorHeader carries the caller identity established by the identity
// collaborator. The core records it, never verifies it.
const actorHeader = "X-Actor-Id"

// AuditService is the single-order audit contract consumed by the handler.
type AuditService interface {
	Audit(ctx context.Context, orderID string, action processors.AuditAction, remark, actorID string) (*models.WithdrawOrder, error)
}

// PayoutService is the payout contract consumed by the handler.
type PayoutService interface {
	StartPayout(ctx context.Context, orderID, method, actorID string) (*models.WithdrawOrder, error)
	MarkPayout(ctx context.Context, orderID string, action processors.PayoutAction, channelOrderNo, failureReason, actorID string) (*models.WithdrawOrder, error)
}

// BatchService is the batch audit contract consumed by the handler.
type BatchService interface {
	BatchAudit(ctx context.Context, orderIDs []string, action processors.AuditAction, remark, actorID string) *models.BatchAuditResult
}

// OrdersHandler holds the dependencies for order-related handlers.
type OrdersHandler struct {
	Store  storage.OrderStore
	Audits AuditService
	Batch  BatchService
	Payout PayoutService
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(store storage.OrderStore, audits AuditService, batch BatchService, payout PayoutService) *OrdersHandler {
	return &OrdersHandler{Store: store, Audits: audits, Batch: batch, Payout: payout}
}

// CreateOrder handles withdrawal intake: it creates the order in
// pending_audit and freezes the amount in the same atomic unit.
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var newOrder api.NewOrder
	if err := json.NewDecoder(r.Body).Decode(&newOrder); err != nil {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if newOrder.UserId == "" || newOrder.Amount <= 0 || newOrder.Fee < 0 || newOrder.Fee > newOrder.Amount {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", "user_id, positive amount and a fee not exceeding the amount are required")
		return
	}

	order, err := h.Store.CreateOrder(r.Context(), mapping.ToDomainNewOrder(&newOrder))
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiOrder(order))
}

// GetOrder handles the logic for retrieving an order by its ID.
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request, orderId openapi_types.UUID) {
	order, err := h.Store.GetOrder(r.Context(), orderId.String())
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiOrder(order))
}

// ListOrders handles the logic for listing orders by audit status.
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := models.AuditStatus(r.URL.Query().Get("status"))
	switch status {
	case models.AuditPending, models.AuditApproved, models.AuditRejected:
	default:
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("unknown status %q", status))
		return
	}

	domainOrders, err := h.Store.ListOrdersByStatus(r.Context(), status)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	apiOrders := make([]*api.Order, len(domainOrders))
	for i, order := range domainOrders {
		apiOrders[i] = mapping.ToApiOrder(&order)
	}

	respond.JSON(w, http.StatusOK, apiOrders)
}

// Audit handles a single approve/reject decision on one order.
func (h *OrdersHandler) Audit(w http.ResponseWriter, r *http.Request, orderId openapi_types.UUID) {
	actorID := r.Header.Get(actorHeader)
	if actorID == "" {
		respond.Error(w, http.StatusBadRequest, "MISSING_ACTOR", "X-Actor-Id header is required")
		return
	}

	var req api.AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	order, err := h.Audits.Audit(r.Context(), orderId.String(), processors.AuditAction(req.Action), req.Remark, actorID)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiOrder(order))
}

// BatchAudit applies one decision across many orders. A single item failure
// never fails the batch; the response reports per-item outcomes.
func (h *OrdersHandler) BatchAudit(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get(actorHeader)
	if actorID == "" {
		respond.Error(w, http.StatusBadRequest, "MISSING_ACTOR", "X-Actor-Id header is required")
		return
	}

	var req api.BatchAuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if len(req.OrderIds) == 0 {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", "order_ids must not be empty")
		return
	}

	orderIDs := make([]string, len(req.OrderIds))
	for i, id := range req.OrderIds {
		orderIDs[i] = id.String()
	}

	result := h.Batch.BatchAudit(r.Context(), orderIDs, processors.AuditAction(req.Action), req.Remark, actorID)

	respond.JSON(w, http.StatusOK, mapping.ToApiBatchResult(result))
}

// StartPayout records the hand-off of an audited order to the payment rail.
func (h *OrdersHandler) StartPayout(w http.ResponseWriter, r *http.Request, orderId openapi_types.UUID) {
	actorID := r.Header.Get(actorHeader)
	if actorID == "" {
		respond.Error(w, http.StatusBadRequest, "MISSING_ACTOR", "X-Actor-Id header is required")
		return
	}

	var req api.StartPayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	order, err := h.Payout.StartPayout(r.Context(), orderId.String(), req.Method, actorID)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiOrder(order))
}

// MarkPayout records a payout success or failure reported by the payment rail.
func (h *OrdersHandler) MarkPayout(w http.ResponseWriter, r *http.Request, orderId openapi_types.UUID) {
	actorID := r.Header.Get(actorHeader)
	if actorID == "" {
		respond.Error(w, http.StatusBadRequest, "MISSING_ACTOR", "X-Actor-Id header is required")
		return
	}

	var req api.PayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	order, err := h.Payout.MarkPayout(r.Context(), orderId.String(), processors.PayoutAction(req.Action), req.ChannelOrderNo, req.FailureReason, actorID)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiOrder(order))
}
