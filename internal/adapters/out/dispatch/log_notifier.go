// Package dispatch implements the outbound side of order fulfilment: the
// adapters pushing a committed order's notice to whoever routes couriers.
// The default sink writes the notice to the application log; when a webhook
// endpoint is configured the notice is POSTed as JSON, with failed
// deliveries parked in memory and drained by a scheduled retry.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
)

// LogNotifier writes dispatch notices to the structured log. It is the
// sink of last resort: staff read new orders off the log instead of a
// channel, so it never fails.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs every notice.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "dispatch"),
	}
}

// NotifyNewOrder logs the notice.
func (n *LogNotifier) NotifyNewOrder(ctx context.Context, notice order.DispatchNotice) error {
	n.logger.InfoContext(ctx, "New order ready for dispatch",
		"code", notice.Code,
		"address", notice.Address,
		"city", notice.City,
		"distance_km", notice.DistanceKm,
		"total", notice.Total,
		"items", len(notice.Lines),
	)
	return nil
}
