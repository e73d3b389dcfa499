package queries

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var (
	ErrGetFeeScheduleQueryIsNotConstructed = errors.New(
		"GetFeeScheduleQuery must be created via NewGetFeeScheduleQuery constructor",
	)
)

// GetFeeScheduleQuery retrieves the active delivery fee schedule: the free
// zone and the distance tiers customers are charged by.
//
// Example:
//
//	query := NewGetFeeScheduleQuery()
//	handler := NewGetFeeScheduleQueryHandler(db)
//
//	schedule, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get fee schedule: %w", err)
//	}
//
//	fmt.Printf("Free zone: %s, %d tiers\n", schedule.FreeZone, len(schedule.Tiers))
type GetFeeScheduleQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFeeScheduleQuery creates a query to retrieve the active schedule.
// This is a parameterless query; there is only ever one schedule.
func NewGetFeeScheduleQuery() GetFeeScheduleQuery {
	return GetFeeScheduleQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFeeScheduleQueryIsNotConstructed if validation fails.
func (q GetFeeScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetFeeScheduleQueryIsNotConstructed)
}

// GetFeeScheduleQueryResponse represents the active schedule in the read
// model. Tiers come back in ascending distance order, as stored.
type GetFeeScheduleQueryResponse struct {
	FreeZone      string
	Tiers         []GetFeeScheduleQueryResponseTier
	PerKmAboveMax kernel.Money
}

// GetFeeScheduleQueryResponseTier is one distance tier of the schedule.
type GetFeeScheduleQueryResponseTier struct {
	MaxDistanceKm float64
	Fee           kernel.Money
}
