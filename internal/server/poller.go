package server

import (
	"context"

	"sports-deals-service/internal/poller"
)

// Poller defines the minimal refresh-loop behavior needed by the server.
type Poller interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Status() poller.Status
}
