package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
)

// RetryNotifier decorates another notifier with an in-memory retry queue.
// A failed delivery is logged and parked instead of surfacing to the
// checkout that produced it; Flush re-attempts parked notices and is
// driven by the dispatch retry job.
type RetryNotifier struct {
	next   ports.DispatchNotifier
	logger *slog.Logger

	mu    sync.Mutex
	queue []order.DispatchNotice
}

// NewRetryNotifier wraps next with the retry queue.
func NewRetryNotifier(next ports.DispatchNotifier, logger *slog.Logger) *RetryNotifier {
	return &RetryNotifier{
		next:   next,
		logger: logger.With("component", "dispatch"),
	}
}

// NotifyNewOrder forwards the notice and parks it on failure. It never
// returns an error: a committed order outlives a broken channel.
func (n *RetryNotifier) NotifyNewOrder(ctx context.Context, notice order.DispatchNotice) error {
	err := n.next.NotifyNewOrder(ctx, notice)
	if err == nil {
		return nil
	}

	n.logger.WarnContext(ctx, "Dispatch notice delivery failed, queued for retry",
		"code", notice.Code,
		"error", err,
	)

	n.mu.Lock()
	n.queue = append(n.queue, notice)
	n.mu.Unlock()

	return nil
}

// Flush re-attempts every parked notice once, oldest first. Notices that
// fail again stay parked. Returns how many notices were delivered and how
// many remain.
func (n *RetryNotifier) Flush(ctx context.Context) (delivered, pending int) {
	n.mu.Lock()
	parked := n.queue
	n.queue = nil
	n.mu.Unlock()

	failed := make([]order.DispatchNotice, 0)
	for _, notice := range parked {
		if err := n.next.NotifyNewOrder(ctx, notice); err != nil {
			failed = append(failed, notice)
			continue
		}
		delivered++
	}

	n.mu.Lock()
	// Notices parked while flushing line up behind the ones that failed again.
	n.queue = append(failed, n.queue...)
	pending = len(n.queue)
	n.mu.Unlock()

	return delivered, pending
}

// Pending reports how many notices wait for the next flush.
func (n *RetryNotifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.queue)
}
