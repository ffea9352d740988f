package wallets

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbridge/withdrawal-core/pkg/api"
	"github.com/finbridge/withdrawal-core/pkg/models"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	storage_mocks "github.com/finbridge/withdrawal-core/pkg/storage/mocks"
	"github.com/finbridge/withdrawal-core/pkg/websockets"
	ws_mocks "github.com/finbridge/withdrawal-core/pkg/websockets/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHandler(store *storage_mocks.WalletStore) *WalletsHandler {
	return NewWalletsHandler(store, &websockets.NoOpPublisher{})
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) api.Error {
	t.Helper()
	var apiErr api.Error
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&apiErr))
	return apiErr
}

func TestCreateWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		created := &models.Wallet{UserId: "user1", Version: 1}
		mockStore.On("CreateWallet", mock.Anything, mock.AnythingOfType("*models.Wallet")).Return(created, nil)

		body, _ := json.Marshal(&api.NewWallet{UserId: "user1"})
		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreateWallet(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.Wallet
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(1), got.Version)
		mockStore.AssertExpectations(t)
	})

	t.Run("Already Exists", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		mockStore.On("CreateWallet", mock.Anything, mock.Anything).Return(nil, storage.ErrWalletExists)

		body, _ := json.Marshal(&api.NewWallet{UserId: "user1"})
		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreateWallet(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "WALLET_EXISTS", decodeError(t, rr).Code)
	})

	t.Run("Missing User ID", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader([]byte(`{}`)))
		rr := httptest.NewRecorder()

		handler.CreateWallet(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "CreateWallet", mock.Anything, mock.Anything)
	})
}

func TestGetWalletByUserId(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		wallet := &models.Wallet{UserId: "user1", Balance: 4000, Frozen: 1000, Version: 7}
		mockStore.On("GetWallet", mock.Anything, "user1").Return(wallet, nil)

		req := httptest.NewRequest(http.MethodGet, "/wallets/user1", nil)
		rr := httptest.NewRecorder()

		handler.GetWalletByUserId(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.Wallet
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(4000), got.Balance)
		assert.Equal(t, int64(1000), got.Frozen)
		assert.Equal(t, int64(7), got.Version)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		mockStore.On("GetWallet", mock.Anything, "ghost").Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/wallets/ghost", nil)
		rr := httptest.NewRecorder()

		handler.GetWalletByUserId(rr, req, "ghost")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListWallets(t *testing.T) {
	mockStore := new(storage_mocks.WalletStore)
	handler := newTestHandler(mockStore)

	older := models.Wallet{UserId: "user1", CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.Wallet{UserId: "user2", CreatedAt: time.Now()}
	mockStore.On("ListWallets", mock.Anything).Return([]models.Wallet{older, newer}, nil)

	req := httptest.NewRequest(http.MethodGet, "/wallets", nil)
	rr := httptest.NewRecorder()

	handler.ListWallets(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []api.Wallet
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	if assert.Len(t, got, 2) {
		// Newest first.
		assert.Equal(t, "user2", got[0].UserId)
		assert.Equal(t, "user1", got[1].UserId)
	}
}

func TestAdjustWallet(t *testing.T) {
	t.Run("Increase Forwards Reason", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		adjusted := &models.Wallet{UserId: "user1", Balance: 6000, Version: 4}
		mockStore.On("AdjustBalance", mock.Anything, "user1", models.FieldBalance, int64(1000), "fraud refund case FR-77", int64(3)).
			Return(adjusted, nil)

		body, _ := json.Marshal(&api.AdjustWalletRequest{
			Field: "balance", Type: "increase", Amount: 1000, Reason: "fraud refund case FR-77", ExpectedVersion: 3,
		})
		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/adjust", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.AdjustWallet(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.Wallet
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(6000), got.Balance)
		assert.Equal(t, int64(4), got.Version)
		mockStore.AssertExpectations(t)
	})

	t.Run("Decrease Passes Negative Delta", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		adjusted := &models.Wallet{UserId: "user1", Balance: 4000, Version: 4}
		mockStore.On("AdjustBalance", mock.Anything, "user1", models.FieldBalance, int64(-1000), "", int64(3)).
			Return(adjusted, nil)

		body, _ := json.Marshal(&api.AdjustWalletRequest{
			Field: "balance", Type: "decrease", Amount: 1000, ExpectedVersion: 3,
		})
		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/adjust", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.AdjustWallet(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Publishes Wallet Update", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		mockPublisher := new(ws_mocks.Publisher)
		handler := NewWalletsHandler(mockStore, mockPublisher)

		adjusted := &models.Wallet{UserId: "user1", Balance: 6000, Frozen: 500, Version: 4}
		mockStore.On("AdjustBalance", mock.Anything, "user1", models.FieldBalance, int64(1000), "", int64(3)).
			Return(adjusted, nil)
		mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg websockets.Message) bool {
			payload, ok := msg.Payload.(websockets.WalletUpdatePayload)
			return msg.Type == websockets.MessageTypeWalletUpdate && ok &&
				payload.UserID == "user1" && payload.NewBalance == 6000 &&
				payload.NewFrozen == 500 && payload.Version == 4
		})).Return(nil)

		body, _ := json.Marshal(&api.AdjustWalletRequest{
			Field: "balance", Type: "increase", Amount: 1000, ExpectedVersion: 3,
		})
		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/adjust", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.AdjustWallet(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("Stale Version", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		mockPublisher := new(ws_mocks.Publisher)
		handler := NewWalletsHandler(mockStore, mockPublisher)

		mockStore.On("AdjustBalance", mock.Anything, "user1", models.FieldBalance, int64(1000), "", int64(2)).
			Return(nil, storage.ErrVersionConflict)

		body, _ := json.Marshal(&api.AdjustWalletRequest{
			Field: "balance", Type: "increase", Amount: 1000, ExpectedVersion: 2,
		})
		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/adjust", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.AdjustWallet(rr, req, "user1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "VERSION_CONFLICT", decodeError(t, rr).Code)
		// Nothing moved, so nothing is pushed.
		mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		mockStore.On("AdjustBalance", mock.Anything, "user1", models.FieldFrozen, int64(-500), "", int64(3)).
			Return(nil, storage.ErrInsufficientFunds)

		body, _ := json.Marshal(&api.AdjustWalletRequest{
			Field: "frozen", Type: "decrease", Amount: 500, ExpectedVersion: 3,
		})
		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/adjust", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.AdjustWallet(rr, req, "user1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "INSUFFICIENT_FUNDS", decodeError(t, rr).Code)
	})

	t.Run("Bad Field", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		body, _ := json.Marshal(&api.AdjustWalletRequest{
			Field: "credit_limit", Type: "increase", Amount: 1000, ExpectedVersion: 3,
		})
		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/adjust", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.AdjustWallet(rr, req, "user1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bad Type", func(t *testing.T) {
		mockStore := new(storage_mocks.WalletStore)
		handler := newTestHandler(mockStore)

		body, _ := json.Marshal(&api.AdjustWalletRequest{
			Field: "balance", Type: "reset", Amount: 1000, ExpectedVersion: 3,
		})
		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/adjust", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.AdjustWallet(rr, req, "user1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
