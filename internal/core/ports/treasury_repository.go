package ports

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/treasury"
)

// TreasuryRepository appends entries to the cash ledger. The ledger is
// append-only; corrections are new entries, never edits.
type TreasuryRepository interface {
	Add(ctx context.Context, entry *treasury.Entry) error
}
