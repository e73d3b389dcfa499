package treasury

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Kind classifies a treasury entry. The kind carries the sign convention:
// sales and adjustments add to revenue, refunds subtract from it. Amounts
// themselves are always non-negative.
type Kind string

const (
	// KindSale records cash collected at a delivery.
	KindSale Kind = "sale"
	// KindRefund records cash handed back to a customer.
	KindRefund Kind = "refund"
	// KindAdjustment records a manual till correction.
	KindAdjustment Kind = "adjustment"
)

// KindFromString parses a persisted kind name.
func KindFromString(name string) (Kind, error) {
	kind := Kind(name)
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

// Validate checks that the kind is one of the known values.
func (k Kind) Validate() error {
	switch k {
	case KindSale, KindRefund, KindAdjustment:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"kind",
			fmt.Errorf("%q is not a valid treasury entry kind", string(k)),
		)
	}
}

// String returns the persistence name of the kind.
func (k Kind) String() string {
	return string(k)
}

// Entry is one immutable line in the cash ledger. Settlement writes a sale
// entry in the same transaction that flips the order to delivered, so the
// ledger and the order history can never disagree.
type Entry struct {
	// id is the unique identifier for the entry
	id kernel.UUID
	// kind classifies the entry (sale, refund, adjustment)
	kind Kind
	// amount is the cash amount, always non-negative
	amount kernel.Money
	// orderCode links the entry to an order ("" for manual entries)
	orderCode string
	// label is an optional human note
	label string
	// occurredAt is when the cash moved
	occurredAt time.Time
	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewEntry creates a treasury entry.
//
// Parameters:
//   - id: Unique identifier for the entry (must be valid UUID)
//   - kind: Entry classification (must be a known kind)
//   - amount: Cash amount (must be constructed, non-negative)
//   - orderCode: Related order code, or "" for entries with no order
//   - label: Optional human note
//   - occurredAt: When the cash moved (must be non-zero)
//
// Returns:
//   - *Entry: The created entry if all validations pass
//   - error: Validation error if any parameter is invalid
func NewEntry(
	id kernel.UUID,
	kind Kind,
	amount kernel.Money,
	orderCode string,
	label string,
	occurredAt time.Time,
) (*Entry, error) {
	entry := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setKind(kind),
		entry.setAmount(amount),
		entry.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	entry.orderCode = strings.TrimSpace(orderCode)
	entry.label = strings.TrimSpace(label)
	return entry, nil
}

// RestoreEntry reconstructs a treasury entry from persistent storage.
func RestoreEntry(
	id kernel.UUID,
	kind Kind,
	amount kernel.Money,
	orderCode string,
	label string,
	occurredAt time.Time,
) (*Entry, error) {
	return NewEntry(id, kind, amount, orderCode, label, occurredAt)
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}

	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Kind returns the entry classification.
func (e *Entry) Kind() Kind {
	return e.kind
}

// Amount returns the cash amount.
func (e *Entry) Amount() kernel.Money {
	return e.amount
}

// OrderCode returns the related order code ("" if none).
func (e *Entry) OrderCode() string {
	return e.orderCode
}

// Label returns the human note ("" if none).
func (e *Entry) Label() string {
	return e.label
}

// OccurredAt returns when the cash moved.
func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

func (e *Entry) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	e.amount = amount
	return nil
}

func (e *Entry) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	e.occurredAt = occurredAt
	return nil
}
