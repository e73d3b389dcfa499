package feeschedulerepo

import (
	"context"
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFeeScheduleRepository implements FeeScheduleRepository using GORM.
//
// The schedule is configuration rather than an event-carrying aggregate, so
// the repository takes no aggregate tracker.
type GormFeeScheduleRepository struct {
	db *gorm.DB
}

// NewGormFeeScheduleRepository creates a new GORM fee schedule repository.
func NewGormFeeScheduleRepository(db *gorm.DB) *GormFeeScheduleRepository {
	return &GormFeeScheduleRepository{db: db}
}

// Get returns the active schedule.
func (r *GormFeeScheduleRepository) Get(ctx context.Context) (*pricing.Schedule, error) {
	var dto FeeScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", activeScheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fee schedule", "active")
		}
		return nil, err
	}

	return toDomain(dto)
}

// Replace installs schedule as the active one, upserting the single fixed-key
// row. Orders priced under the previous schedule keep their snapshot totals.
func (r *GormFeeScheduleRepository) Replace(ctx context.Context, schedule *pricing.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(schedule)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
