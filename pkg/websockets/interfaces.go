package websockets

import (
	"context"
)

// ConnectionManager tracks the admin consoles connected to the push channel.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// Publisher broadcasts order and wallet update messages to every connected
// admin console.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
