package account

import (
	"errors"
	"fmt"

	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// ErrUnauthorized is returned when a caller's role does not clear the gate
// for an operation. The HTTP layer maps it to 403.
var ErrUnauthorized = errors.New("operation is not permitted for this role")

// Role is the closed set of access levels in the storefront. Roles form a
// strict ladder: every level can do what the levels below it can.
//
//	Customer < Staff < Admin < Owner
//
// There is exactly one Owner, fixed by configuration. The directory resolves
// the owner's ID to Owner no matter what any stored role says, so the owner
// can never lock themselves out by editing roles.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Customer can browse the catalog, manage a cart, check out,
	// and leave reviews. Every caller has at least this level.
	Customer

	// Staff additionally runs fulfilment: stock corrections, courier
	// assignment, and order status transitions.
	Staff

	// Admin additionally manages the catalog, pricing, the fee schedule,
	// other customers' roles, and reads revenue reports.
	Admin

	// Owner is the single configured superuser. Implies Admin.
	Owner
)

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Staff:    "staff",
		Admin:    "admin",
		Owner:    "owner",
	}
}

// RoleFromString parses a persisted role name.
//
// Returns:
//   - the matching Role for a known name
//   - error if the name does not correspond to a valid role
func RoleFromString(name string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == name {
			return role, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", name),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persistence name of the role, or "unknown" for
// invalid values.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// AtLeast reports whether the role clears the given minimum level.
// Invalid roles never clear any gate.
func (r Role) AtLeast(min Role) bool {
	if r.Validate() != nil || min.Validate() != nil {
		return false
	}
	return r >= min
}

// Authorize checks the role against a minimum level.
//
// Returns:
//   - nil if the role clears the gate
//   - ErrUnauthorized otherwise
func (r Role) Authorize(min Role) error {
	if !r.AtLeast(min) {
		return ErrUnauthorized
	}
	return nil
}
