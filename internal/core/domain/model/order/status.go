package order

import (
	"errors"
	"fmt"

	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// Transition errors shared by the status state machine and its callers.
var (
	// ErrOrderAlreadySettled is returned when delivering or cancelling an
	// order that has already been settled. Settlement is final: stock and
	// treasury side effects have already happened and must not repeat.
	ErrOrderAlreadySettled = errors.New("order is already settled")

	// ErrOrderAlreadyCancelled is returned when cancelling an order that is
	// already cancelled. Repeating the cancellation has no further effect.
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ──┬──> Assigned ──> OutForDelivery
//	   │      │        │
//	   │      └────────┘
//	   │ (reassignment allowed)
//	   │
//	   └──> Cancelled
//
// Delivered is reachable from every state above, including Cancelled: the
// intermediate states exist for dispatch tracking, not as gatekeepers, and
// a cancelled order that shows up at the door anyway can still settle.
// Delivered is the only final state.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after checkout commits.
	// Orders in this status are waiting to be assigned to a courier.
	Pending

	// Assigned indicates the order has been assigned to a courier.
	// Orders can be reassigned while in this status.
	Assigned

	// OutForDelivery indicates the assigned courier is en route.
	OutForDelivery

	// Delivered indicates cash was collected and the order settled.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was called off before settlement.
	// Cancellation is soft: a cancelled order can still be delivered.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses a persisted status name back into a Status.
//
// Returns:
//   - the matching Status for a known name
//   - error if the name does not correspond to a valid status
//
// Names are the same lowercase snake_case strings String produces, so a
// round trip through persistence is lossless.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", name),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, OutForDelivery, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence name of the status.
//
// Returns:
//   - "pending", "assigned", "out_for_delivery", "delivered", or "cancelled"
//     for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAssign checks if the status allows courier assignment without
// performing the transition.
//
// Valid statuses for assignment:
//   - Pending (initial assignment)
//   - Assigned (reassignment)
//
// Returns:
//   - nil if assignment is allowed from the current status
//   - error with details if assignment is not allowed
func (s Status) ValidateAssign() error {
	if s != Pending && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Pending orders must not have a courier assigned
//   - Assigned and OutForDelivery orders must have a courier assigned
//   - Delivered and Cancelled orders may have either, depending on how far
//     dispatch got before the final transition
//
// Parameters:
//   - courier: whether the order has a courier assigned
//
// Returns:
//   - error: validation error if status and courier assignment are inconsistent
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Assigned || s == OutForDelivery) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (initial assignment)
//   - Assigned -> Assigned (reassignment to a different courier)
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Assigned -> OutForDelivery (the courier heads out)
//
// Returns:
//   - (OutForDelivery, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) StartDelivery() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to go out for delivery", s.String()),
		)
	}

	return OutForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered
//   - Assigned -> Delivered
//   - OutForDelivery -> Delivered
//   - Cancelled -> Delivered (the order went out anyway and cash changed hands)
//
// Invalid transitions:
//   - Delivered -> Delivered (settlement must not repeat)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, ErrOrderAlreadySettled) if the order is already delivered
//   - (0, error) if the current status is invalid
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Delivered {
		return 0, ErrOrderAlreadySettled
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//   - OutForDelivery -> Cancelled
//
// Invalid transitions:
//   - Delivered -> Cancelled (the money is already in the till)
//   - Cancelled -> Cancelled (repeat cancellation has no effect)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, ErrOrderAlreadySettled) if the order is already delivered
//   - (0, ErrOrderAlreadyCancelled) if the order is already cancelled
//   - (0, error) if the current status is invalid
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Delivered {
		return 0, ErrOrderAlreadySettled
	}
	if s == Cancelled {
		return 0, ErrOrderAlreadyCancelled
	}

	return Cancelled, nil
}
