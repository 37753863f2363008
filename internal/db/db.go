package db

import (
	"context"
	"time"
)

// Store is the shared-state backend used by the distributed rate gate.
type Store interface {
	Pinger
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
