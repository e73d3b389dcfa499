// Package treasuryrepo persists the cash ledger. The ledger is append-only:
// the repository exposes writes, and reporting reads the table directly
// through the query side.
package treasuryrepo

import (
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/treasury"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO represents the database structure for persisting treasury entries.
// The order code is indexed so a settlement's ledger line can be found from
// the order it came from.
type EntryDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind       string          `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2)"`
	OrderCode  string          `gorm:"index"`
	Label      string
	OccurredAt time.Time
}

// TableName specifies the database table name for treasury entries.
// Overrides GORM's default naming convention to use "treasury_entries".
func (EntryDTO) TableName() string {
	return "treasury_entries"
}

// fromDomain converts a treasury entry to its database representation.
func fromDomain(entry *treasury.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID().Bytes(),
		Kind:       entry.Kind().String(),
		Amount:     entry.Amount().Amount(),
		OrderCode:  entry.OrderCode(),
		Label:      entry.Label(),
		OccurredAt: entry.OccurredAt(),
	}
}
