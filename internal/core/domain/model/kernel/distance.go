package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

// ErrDistanceIsNotConstructed is returned when validating a zero-value
// Distance. Distances must be created via NewDistance or ParseDistance.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance or ParseDistance constructors")

// Distance is an immutable value object representing a delivery distance in
// kilometers, as stated by the customer during checkout. It is a user-supplied
// scalar: the system never computes it from geolocation.
//
// The zero value of Distance is invalid and fails validation - use the
// constructors.
//
// Example:
//
//	d, err := kernel.ParseDistance("12,5")
//	if err != nil {
//	    // re-prompt the customer
//	}
//	fmt.Println(d) // Output: 12.5 km
type Distance struct { //nolint:recvcheck //using for validation
	km    float64
	guard guard.ConstructorGuard
}

// NewDistance creates a Distance from a kilometer value.
// Returns an error if the value is negative or not a finite number.
func NewDistance(km float64) (Distance, error) {
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause(
			"distanceKm",
			fmt.Errorf("%v is not a finite number", km),
		)
	}
	if km < 0 {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause(
			"distanceKm",
			fmt.Errorf("%v is negative", km),
		)
	}

	return Distance{
		km:    km,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseDistance parses a customer-entered distance string.
// A comma is accepted as the decimal separator ("12,5" parses as 12.5), since
// that is how the storefront's customers write decimals. Returns an error for
// non-numeric or negative input; callers re-prompt rather than abort.
func ParseDistance(s string) (Distance, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if normalized == "" {
		return Distance{}, errs.NewValueIsRequiredError("distanceKm")
	}

	km, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause("distanceKm", err)
	}

	return NewDistance(km)
}

// Validate checks that the Distance was created through a constructor.
// Returns ErrDistanceIsNotConstructed for zero-value instances.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Km returns the distance in kilometers.
func (d Distance) Km() float64 {
	return d.km
}

// String renders the distance for display, e.g. "12.5 km".
// This method implements the fmt.Stringer interface.
func (d Distance) String() string {
	return strconv.FormatFloat(d.km, 'f', -1, 64) + " km"
}
