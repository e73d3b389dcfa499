package ports

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
)

// FeeScheduleRepository stores the single active delivery fee schedule.
type FeeScheduleRepository interface {
	// Get returns the active schedule, or errs.ErrObjectNotFound when no
	// schedule has been configured yet.
	Get(ctx context.Context) (*pricing.Schedule, error)

	// Replace installs schedule as the active one, whether or not a
	// previous schedule exists. Orders priced under the previous schedule
	// keep their snapshot totals.
	Replace(ctx context.Context, schedule *pricing.Schedule) error
}
