package ports

import (
	"context"

	"printer-agent/internal/features/labels/domain"
)

// JobProvider is the remote order-management API seen from the poll loop.
// This is a Secondary Port (Driven Port).
type JobProvider interface {
	// PendingJobs fetches the orders currently waiting to be printed.
	PendingJobs(ctx context.Context) ([]domain.Order, error)

	// MarkPrinted acknowledges one order as printed.
	MarkPrinted(ctx context.Context, orderID int) error
}
