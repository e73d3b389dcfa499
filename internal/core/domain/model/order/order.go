package order

import (
	"errors"
	"strings"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLinesAreRequired is returned when attempting to create an order without lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// Order is a committed purchase: the aggregate root that carries the priced
// snapshot from checkout through dispatch to cash settlement.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a well-formed code
//   - Must have at least one priced line
//   - Line snapshots and totals are frozen at commit time and never change
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// code is the short customer-facing identifier
	code Code

	// customerID identifies the buying customer
	customerID kernel.UUID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// destination is where the order gets delivered
	destination Destination

	// promoCode is the promo the customer submitted ("" if none)
	promoCode string

	// lines are the priced product snapshots
	lines []Line

	// totals is the priced summary including the cash total
	totals Totals

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when checkout committed the order
	createdAt time.Time

	// deliveredAt is when the order settled (nil until delivered)
	deliveredAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly committed Order in Pending status.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - code: Customer-facing order code (must match the code format)
//   - customerID: Identifier of the buying customer (must be valid UUID)
//   - destination: Validated delivery destination
//   - promoCode: Promo the customer submitted ("" for none; normalized)
//   - lines: Priced line snapshots (at least one, all constructed)
//   - totals: Priced summary computed by checkout
//   - createdAt: Commit timestamp (must be non-zero)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	code Code,
	customerID kernel.UUID,
	destination Destination,
	promoCode string,
	lines []Line,
	totals Totals,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setCustomerID(customerID),
		order.setDestination(destination),
		order.setLines(lines),
		order.setTotals(totals),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	order.promoCode = normalizePromo(promoCode)
	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts orders in Pending status, this
// constructor restores the full persisted state including courier
// assignment and settlement time, and verifies their mutual consistency.
//
// Parameters:
//   - id: Unique identifier for the order
//   - code: Customer-facing order code
//   - customerID: Identifier of the buying customer
//   - courierID: Assigned courier (nil if unassigned)
//   - destination: Delivery destination
//   - promoCode: Promo recorded at commit time ("" for none)
//   - lines: Priced line snapshots
//   - totals: Priced summary
//   - status: Persisted lifecycle status
//   - createdAt: Commit timestamp
//   - deliveredAt: Settlement timestamp (required iff status is Delivered)
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if any parameter is invalid or inconsistent
func RestoreOrder(
	id kernel.UUID,
	code Code,
	customerID kernel.UUID,
	courierID *kernel.UUID,
	destination Destination,
	promoCode string,
	lines []Line,
	totals Totals,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setCustomerID(customerID),
		order.setDestination(destination),
		order.setLines(lines),
		order.setTotals(totals),
		order.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}

		cID := *courierID
		order.courierID = &cID
	}

	if status == Delivered && deliveredAt == nil {
		return nil, errs.NewValueIsRequiredError("deliveredAt")
	}
	if status != Delivered && deliveredAt != nil {
		return nil, errs.NewValueIsInvalidError("deliveredAt")
	}
	if deliveredAt != nil {
		at := *deliveredAt
		order.deliveredAt = &at
	}

	order.status = status
	order.promoCode = normalizePromo(promoCode)
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the customer-facing order code.
func (o *Order) Code() Code {
	return o.code
}

// CustomerID returns the buying customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Destination returns the delivery destination.
func (o *Order) Destination() Destination {
	return o.destination
}

// PromoCode returns the promo recorded at commit time ("" if none).
func (o *Order) PromoCode() string {
	return o.promoCode
}

// Lines returns a copy of the priced line snapshots.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Totals returns the priced summary.
func (o *Order) Totals() Totals {
	return o.totals
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when checkout committed the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns when the order settled, or nil if it has not.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}

	at := *o.deliveredAt
	return &at
}

// Assign assigns the order to a courier and updates the status to Assigned.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must be in Pending or Assigned status
//   - Reassignment is allowed (from Assigned to Assigned)
//
// Returns:
//   - nil on successful assignment
//   - error if the courier ID is invalid or the transition is not allowed
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// StartDelivery marks the order as out for delivery.
//
// Business rules:
//   - The order must be in Assigned status (a courier must exist)
//
// Returns:
//   - nil on success
//   - error if the transition is not allowed from the current status
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver settles the order: cash was collected at the door.
//
// Business rules:
//   - Allowed from any status except Delivered, including Cancelled
//   - A second delivery attempt fails with ErrOrderAlreadySettled
//
// Parameters:
//   - at: Settlement timestamp (must be non-zero)
//
// Returns:
//   - nil on successful settlement
//   - ErrOrderAlreadySettled if the order is already delivered
//   - error if the timestamp is invalid
func (o *Order) Deliver(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

// Cancel calls the order off before settlement.
//
// Business rules:
//   - Allowed from Pending, Assigned, and OutForDelivery
//   - A delivered order fails with ErrOrderAlreadySettled
//   - A cancelled order fails with ErrOrderAlreadyCancelled
//
// Returns:
//   - nil on successful cancellation
//   - ErrOrderAlreadySettled or ErrOrderAlreadyCancelled as above
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCode validates and sets the customer-facing code.
func (o *Order) setCode(code Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

// setCustomerID validates and sets the buying customer's identifier.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setDestination validates and sets the delivery destination.
func (o *Order) setDestination(destination Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

// setLines validates and sets the priced line snapshots.
// At least one line is required.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// setTotals validates and sets the priced summary.
func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}

// setCreatedAt validates and sets the commit timestamp.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// normalizePromo trims and uppercases a submitted promo code.
func normalizePromo(promoCode string) string {
	return strings.ToUpper(strings.TrimSpace(promoCode))
}
