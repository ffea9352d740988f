package wallets

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/finbridge/withdrawal-core/pkg/api"
	"github.com/finbridge/withdrawal-core/pkg/handlers/respond"
	"github.com/finbridge/withdrawal-core/pkg/mapping"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	"github.com/finbridge/withdrawal-core/pkg/websockets"
)

// WalletsHandler holds the dependencies for wallet-related handlers.
type WalletsHandler struct {
	Store     storage.WalletStore
	Publisher websockets.Publisher
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(store storage.WalletStore, publisher websockets.Publisher) *WalletsHandler {
	return &WalletsHandler{Store: store, Publisher: publisher}
}

// CreateWallet handles the logic for creating a new wallet.
func (h *WalletsHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var newWallet api.NewWallet
	if err := json.NewDecoder(r.Body).Decode(&newWallet); err != nil {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if newWallet.UserId == "" {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", "user_id is required")
		return
	}

	domainWallet := mapping.ToDomainNewWallet(&newWallet)
	domainWallet.CreatedAt = time.Now()

	createdWallet, err := h.Store.CreateWallet(r.Context(), domainWallet)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiWallet(createdWallet))
}

// GetWalletByUserId handles the logic for retrieving a user's wallet.
func (h *WalletsHandler) GetWalletByUserId(w http.ResponseWriter, r *http.Request, userId string) {
	domainWallet, err := h.Store.GetWallet(r.Context(), userId)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiWallet(domainWallet))
}

// ListWallets handles the logic for retrieving all wallets.
func (h *WalletsHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	domainWallets, err := h.Store.ListWallets(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	// Sort wallets by CreatedAt in descending order.
	sort.Slice(domainWallets, func(i, j int) bool {
		return domainWallets[i].CreatedAt.After(domainWallets[j].CreatedAt)
	})

	apiWallets := make([]*api.Wallet, len(domainWallets))
	for i, wallet := range domainWallets {
		apiWallets[i] = mapping.ToApiWallet(&wallet)
	}

	respond.JSON(w, http.StatusOK, apiWallets)
}

// AdjustWallet handles a manual balance adjustment. The caller supplies the
// version it read; a stale version is answered with 409 VERSION_CONFLICT and
// the caller must re-read before deciding again.
func (h *WalletsHandler) AdjustWallet(w http.ResponseWriter, r *http.Request, userId string) {
	var req api.AdjustWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	field := models.BalanceField(req.Field)
	switch field {
	case models.FieldBalance, models.FieldFrozen, models.FieldBonus:
	default:
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("unknown field %q", req.Field))
		return
	}
	if req.Amount <= 0 {
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", "amount must be positive")
		return
	}

	var delta int64
	switch req.Type {
	case "increase":
		delta = req.Amount
	case "decrease":
		delta = -req.Amount
	default:
		respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("unknown adjustment type %q", req.Type))
		return
	}

	wallet, err := h.Store.AdjustBalance(r.Context(), userId, field, delta, req.Reason, req.ExpectedVersion)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	// Push the new balances to connected admin consoles. Best effort only;
	// a push failure never fails the request.
	if h.Publisher != nil {
		msg := websockets.Message{
			Type: websockets.MessageTypeWalletUpdate,
			Payload: websockets.WalletUpdatePayload{
				UserID:     wallet.UserId,
				NewBalance: wallet.Balance,
				NewFrozen:  wallet.Frozen,
				Version:    wallet.Version,
			},
		}
		if err := h.Publisher.Publish(r.Context(), msg); err != nil {
			slog.Error("failed to publish wallet update", "userId", wallet.UserId, "error", err)
		}
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiWallet(wallet))
}
