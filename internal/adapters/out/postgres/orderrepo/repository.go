package orderrepo

import (
	"context"
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatusIn writes the aggregate's mutable fields with a compare-and-set
// on the status column. Only status, courier and the delivery timestamp are
// written; the priced snapshot stays as committed. When the stored status is no
// longer one of current the update matches zero rows and the call fails with a
// version error, leaving the row untouched.
func (r *GormOrderRepository) UpdateIfStatusIn(
	ctx context.Context,
	aggregate *order.Order,
	current ...order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if len(current) == 0 {
		return errs.NewValueIsRequiredError("current")
	}

	statuses := make([]string, 0, len(current))
	for _, status := range current {
		if err := status.Validate(); err != nil {
			return err
		}

		statuses = append(statuses, status.String())
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status IN ?", dto.ID, statuses).
		Updates(map[string]any{
			"status":       dto.Status,
			"courier_id":   dto.CourierID,
			"delivered_at": dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an order by its customer-facing code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithCode reports whether an order already carries the code. Checkout
// regenerates on collision before committing.
func (r *GormOrderRepository) ExistsWithCode(ctx context.Context, code order.Code) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("code = ?", code.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountDeliveredForCustomer reports how many of the customer's orders have
// settled. Feeds the loyalty rank at pricing time.
func (r *GormOrderRepository) CountDeliveredForCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) (int, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("customer_id = ? AND status = ?", customerID.Bytes(), order.Delivered.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
