package order

import (
	"errors"
	"strings"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when using an improperly
// initialized Destination.
var ErrDestinationIsNotConstructed = errors.New("Destination must be created via NewDestination constructor")

// Destination is where an order gets delivered: a street address, a city
// (matched against the fee schedule's zones), and the declared distance
// from the shop. All three come from the customer during checkout and are
// frozen onto the order at commit time.
type Destination struct {
	// address is the free-text street address
	address string
	// city is the destination city, used for zone matching
	city string
	// distance is the customer-declared distance from the shop
	distance kernel.Distance
	// guard ensures the destination was properly constructed
	guard guard.ConstructorGuard
}

// NewDestination creates a delivery destination.
//
// Parameters:
//   - address: Street address (must be non-blank; surrounding whitespace trimmed)
//   - city: Destination city (must be non-blank; surrounding whitespace trimmed)
//   - distance: Declared distance from the shop (must be constructed)
//
// Returns:
//   - Destination: The created destination if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDestination(address, city string, distance kernel.Distance) (Destination, error) {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)

	if err := errors.Join(
		requireText("address", address),
		requireText("city", city),
		distance.Validate(),
	); err != nil {
		return Destination{}, err
	}

	return Destination{
		address:  address,
		city:     city,
		distance: distance,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Address returns the street address.
func (d Destination) Address() string {
	return d.address
}

// City returns the destination city.
func (d Destination) City() string {
	return d.city
}

// Distance returns the declared distance from the shop.
func (d Destination) Distance() kernel.Distance {
	return d.distance
}

// Validate checks if the Destination was properly constructed.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// requireText rejects empty strings with a required-value error naming the
// parameter. Callers trim before passing.
func requireText(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
