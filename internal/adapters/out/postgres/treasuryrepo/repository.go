package treasuryrepo

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/treasury"

	"gorm.io/gorm"
)

// GormTreasuryRepository implements TreasuryRepository using GORM.
type GormTreasuryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTreasuryRepository creates a new GORM treasury repository.
func NewGormTreasuryRepository(db *gorm.DB, tracker aggregateTracker) *GormTreasuryRepository {
	return &GormTreasuryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an entry to the ledger. Entries are immutable once written;
// corrections are new adjustment entries.
func (r *GormTreasuryRepository) Add(ctx context.Context, entry *treasury.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}
