package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetFeeScheduleQueryHandler reads the single active fee schedule row.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetFeeScheduleQueryHandler(db)
//	query := NewGetFeeScheduleQuery()
//
//	schedule, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get fee schedule: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Free zone: %s\n", schedule.FreeZone)
type GetFeeScheduleQueryHandler struct {
	db *gorm.DB
}

// NewGetFeeScheduleQueryHandler creates a handler for fee schedule queries.
// Requires a GORM database connection for query execution.
func NewGetFeeScheduleQueryHandler(db *gorm.DB) GetFeeScheduleQueryHandler {
	return GetFeeScheduleQueryHandler{db: db}
}

// Handle executes the query to read the active schedule.
// Returns ObjectNotFoundError when no schedule has been installed yet.
func (h GetFeeScheduleQueryHandler) Handle(
	ctx context.Context,
	query GetFeeScheduleQuery,
) (GetFeeScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFeeScheduleQueryResponse{}, err
	}

	var freeZone string
	var tiersDoc []byte
	var perKm decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			free_zone,
			tiers,
			per_km_above_max
		FROM fee_schedules
		LIMIT 1
	`).Row()

	err := row.Scan(&freeZone, &tiersDoc, &perKm)
	if errors.Is(err, sql.ErrNoRows) {
		return GetFeeScheduleQueryResponse{}, errs.NewObjectNotFoundError("fee schedule", "active")
	}
	if err != nil {
		return GetFeeScheduleQueryResponse{}, err
	}

	var tierDocs []struct {
		MaxDistanceKm float64         `json:"max_distance_km"`
		Fee           decimal.Decimal `json:"fee"`
	}
	if err = json.Unmarshal(tiersDoc, &tierDocs); err != nil {
		return GetFeeScheduleQueryResponse{}, err
	}

	response := GetFeeScheduleQueryResponse{
		FreeZone: freeZone,
		Tiers:    make([]GetFeeScheduleQueryResponseTier, 0, len(tierDocs)),
	}

	for _, doc := range tierDocs {
		fee, feeErr := kernel.NewMoney(doc.Fee)
		if feeErr != nil {
			return GetFeeScheduleQueryResponse{}, feeErr
		}

		response.Tiers = append(response.Tiers, GetFeeScheduleQueryResponseTier{
			MaxDistanceKm: doc.MaxDistanceKm,
			Fee:           fee,
		})
	}

	perKmAboveMax, perKmErr := kernel.NewMoney(perKm)
	if perKmErr != nil {
		return GetFeeScheduleQueryResponse{}, perKmErr
	}
	response.PerKmAboveMax = perKmAboveMax

	return response, nil
}
