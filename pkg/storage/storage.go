package storage

// ApiStore defines the complete set of operations needed by the HTTP API and
// the processors. Components should depend on the more granular interfaces
// (OrderStore, WalletStore, LedgerReader) instead of this one.
type ApiStore interface {
	OrderStore
	WalletStore
	LedgerReader
}

// Storage defines the root interface for the entire data layer.
type Storage interface {
	ApiStore
	WebSocketManager
}
