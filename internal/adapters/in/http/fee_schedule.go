package http

import (
	"net/http"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
)

// FeeScheduleDoc is the delivery pricing table, both as served on GET and
// as accepted on PUT.
type FeeScheduleDoc struct {
	FreeZone      string    `json:"free_zone"`
	Tiers         []TierDoc `json:"tiers"`
	PerKmAboveMax string    `json:"per_km_above_max"`
}

// TierDoc is one price band of the schedule.
type TierDoc struct {
	MaxDistanceKm float64 `json:"max_distance_km"`
	Fee           string  `json:"fee"`
}

// GetFeeSchedule handles GET /api/v1/fee-schedule - serves the delivery
// pricing so customers can estimate their fee before checking out.
func (s *Server) GetFeeSchedule(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Customer); err != nil {
		return writeError(ctx, err)
	}

	query := queries.NewGetFeeScheduleQuery()

	schedule, err := s.handlers.GetFeeSchedule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	tiers := make([]TierDoc, len(schedule.Tiers))
	for i, tier := range schedule.Tiers {
		tiers[i] = TierDoc{
			MaxDistanceKm: tier.MaxDistanceKm,
			Fee:           tier.Fee.String(),
		}
	}

	return ctx.JSON(http.StatusOK, FeeScheduleDoc{
		FreeZone:      schedule.FreeZone,
		Tiers:         tiers,
		PerKmAboveMax: schedule.PerKmAboveMax.String(),
	})
}

// ReplaceFeeSchedule handles PUT /api/v1/fee-schedule - swaps the whole
// pricing table at once. There are no partial edits, so a half-updated
// schedule can never be observed.
func (s *Server) ReplaceFeeSchedule(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Admin); err != nil {
		return writeError(ctx, err)
	}

	var req FeeScheduleDoc
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	tiers := make([]pricing.Tier, 0, len(req.Tiers))
	for _, doc := range req.Tiers {
		fee, err := kernel.NewMoneyFromString(doc.Fee)
		if err != nil {
			return writeError(ctx, err)
		}

		tier, err := pricing.NewTier(doc.MaxDistanceKm, fee)
		if err != nil {
			return writeError(ctx, err)
		}
		tiers = append(tiers, tier)
	}

	perKm := kernel.ZeroMoney()
	if req.PerKmAboveMax != "" {
		var err error
		if perKm, err = kernel.NewMoneyFromString(req.PerKmAboveMax); err != nil {
			return writeError(ctx, err)
		}
	}

	schedule, err := pricing.NewSchedule(req.FreeZone, tiers, perKm)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReplaceFeeScheduleCommand(schedule)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ReplaceFeeSchedule.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
