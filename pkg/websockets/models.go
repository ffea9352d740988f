package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeOrderUpdate is for messages that report an order lifecycle change.
	MessageTypeOrderUpdate MessageType = "orderUpdate"
	// MessageTypeWalletUpdate is for messages that report wallet balance changes.
	MessageTypeWalletUpdate MessageType = "walletUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// OrderUpdatePayload is the payload for an orderUpdate message.
type OrderUpdatePayload struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	Status  string `json:"status"`
	ActorID string `json:"actor_id"`
}

// WalletUpdatePayload is the payload for a walletUpdate message.
type WalletUpdatePayload struct {
	UserID     string `json:"user_id"`
	OrderID    string `json:"order_id,omitempty"`
	NewBalance int64  `json:"new_balance"`
	NewFrozen  int64  `json:"new_frozen"`
	Version    int64  `json:"version"`
}
