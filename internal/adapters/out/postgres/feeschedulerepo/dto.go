// Package feeschedulerepo persists the delivery fee schedule. Exactly one
// schedule is active at a time, stored as a single fixed-key row; replacing
// the schedule upserts that row in place.
package feeschedulerepo

import (
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// activeScheduleID is the fixed primary key of the single active schedule row.
const activeScheduleID = 1

// FeeScheduleDTO represents the database structure for the active fee schedule.
// Tiers live in a jsonb column: they are read and replaced as a whole, never
// queried individually.
type FeeScheduleDTO struct {
	ID            int             `gorm:"primaryKey"`
	FreeZone      string          `gorm:"not null"`
	Tiers         []TierDoc       `gorm:"type:jsonb;serializer:json"`
	PerKmAboveMax decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for the fee schedule.
// Overrides GORM's default naming convention to use "fee_schedules".
func (FeeScheduleDTO) TableName() string {
	return "fee_schedules"
}

// TierDoc is one distance tier inside the schedule's jsonb tiers column.
type TierDoc struct {
	MaxDistanceKm float64         `json:"max_distance_km"`
	Fee           decimal.Decimal `json:"fee"`
}

// fromDomain converts a fee schedule to its database representation.
func fromDomain(schedule *pricing.Schedule) FeeScheduleDTO {
	tiers := make([]TierDoc, 0, len(schedule.Tiers()))
	for _, tier := range schedule.Tiers() {
		tiers = append(tiers, TierDoc{
			MaxDistanceKm: tier.MaxDistanceKm(),
			Fee:           tier.Fee().Amount(),
		})
	}

	return FeeScheduleDTO{
		ID:            activeScheduleID,
		FreeZone:      schedule.FreeZone(),
		Tiers:         tiers,
		PerKmAboveMax: schedule.PerKmAboveMax().Amount(),
	}
}

// toDomain converts a database DTO to a fee schedule.
func toDomain(dto FeeScheduleDTO) (*pricing.Schedule, error) {
	tiers := make([]pricing.Tier, 0, len(dto.Tiers))
	for _, doc := range dto.Tiers {
		fee, err := kernel.NewMoney(doc.Fee)
		if err != nil {
			return nil, err
		}

		tier, err := pricing.NewTier(doc.MaxDistanceKm, fee)
		if err != nil {
			return nil, err
		}

		tiers = append(tiers, tier)
	}

	perKm, err := kernel.NewMoney(dto.PerKmAboveMax)
	if err != nil {
		return nil, err
	}

	return pricing.NewSchedule(dto.FreeZone, tiers, perKm)
}
