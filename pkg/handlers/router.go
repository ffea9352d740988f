package handlers

import (
	"net/http"

	"github.com/finbridge/withdrawal-core/pkg/handlers/ledger"
	"github.com/finbridge/withdrawal-core/pkg/handlers/orders"
	"github.com/finbridge/withdrawal-core/pkg/handlers/respond"
	"github.com/finbridge/withdrawal-core/pkg/handlers/wallets"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NewRouter mounts all resource handlers on a chi router.
func NewRouter(ordersHandler *orders.OrdersHandler, walletsHandler *wallets.WalletsHandler, ledgerHandler *ledger.LedgerHandler) chi.Router {
	r := chi.NewRouter()

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", ordersHandler.CreateOrder)
		r.Get("/", ordersHandler.ListOrders)
		r.Post("/batch-audit", ordersHandler.BatchAudit)
		r.Get("/{orderId}", withOrderID(ordersHandler.GetOrder))
		r.Post("/{orderId}/audit", withOrderID(ordersHandler.Audit))
		r.Post("/{orderId}/payout", withOrderID(ordersHandler.MarkPayout))
		r.Post("/{orderId}/payout/start", withOrderID(ordersHandler.StartPayout))
	})

	r.Route("/wallets", func(r chi.Router) {
		r.Post("/", walletsHandler.CreateWallet)
		r.Get("/", walletsHandler.ListWallets)
		r.Get("/{userId}", func(w http.ResponseWriter, req *http.Request) {
			walletsHandler.GetWalletByUserId(w, req, chi.URLParam(req, "userId"))
		})
		r.Post("/{userId}/adjust", func(w http.ResponseWriter, req *http.Request) {
			walletsHandler.AdjustWallet(w, req, chi.URLParam(req, "userId"))
		})
	})

	r.Get("/ledger/entries", ledgerHandler.ListLedgerEntries)

	return r
}

// withOrderID parses the orderId path parameter as a UUID before delegating.
func withOrderID(next func(http.ResponseWriter, *http.Request, openapi_types.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "orderId"))
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "BAD_REQUEST", "orderId must be a valid UUID")
			return
		}
		next(w, r, openapi_types.UUID(id))
	}
}
