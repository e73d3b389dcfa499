package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

// Domain errors for fee schedule operations.
var (
	// ErrFreeZoneIsRequired is returned when creating a schedule without a free-zone city.
	ErrFreeZoneIsRequired = errs.NewValueIsRequiredError("freeZone")
	// ErrTiersAreRequired is returned when creating a schedule without any tier.
	ErrTiersAreRequired = errs.NewValueIsRequiredError("tiers")
	// ErrTierIsNotConstructed is returned when using an improperly initialized Tier.
	ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")
	// ErrScheduleIsNotConstructed is returned when using an improperly initialized Schedule.
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")
	// ErrZoneNotCovered is returned when a distance lies beyond the last tier.
	// This is a hard refusal: the schedule has no fallback rate.
	ErrZoneNotCovered = errors.New("delivery zone is not covered")
)

// Tier is a delivery price band: every distance up to MaxDistanceKm (and above
// the previous tier's bound) costs Fee.
type Tier struct { //nolint:recvcheck //using for validation
	maxDistanceKm float64
	fee           kernel.Money
	guard         guard.ConstructorGuard
}

// NewTier creates a price band reaching up to maxDistanceKm.
// The bound must be a positive finite number; the fee must be a constructed,
// non-negative Money.
func NewTier(maxDistanceKm float64, fee kernel.Money) (Tier, error) {
	t := Tier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(t.setMaxDistanceKm(maxDistanceKm), t.setFee(fee)); err != nil {
		return Tier{}, err
	}

	return t, nil
}

// MaxDistanceKm returns the upper distance bound of the band.
func (t Tier) MaxDistanceKm() float64 {
	return t.maxDistanceKm
}

// Fee returns the delivery fee charged within the band.
func (t Tier) Fee() kernel.Money {
	return t.fee
}

// Validate checks that the Tier was created through NewTier.
func (t Tier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

func (t *Tier) setMaxDistanceKm(maxDistanceKm float64) error {
	if math.IsNaN(maxDistanceKm) || math.IsInf(maxDistanceKm, 0) || maxDistanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxDistanceKm",
			fmt.Errorf("%v is not a positive finite number", maxDistanceKm),
		)
	}

	t.maxDistanceKm = maxDistanceKm
	return nil
}

func (t *Tier) setFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}

	t.fee = fee
	return nil
}

// Schedule is the fee tier table: the single process-wide delivery pricing
// configuration. It holds the free-zone city, the ascending list of price
// bands, and the reserved per-km rate.
//
// A schedule is immutable; pricing changes replace the whole value (no partial
// edits), so concurrent readers always see a consistent tier list.
//
// Example usage:
//
//	t1, _ := pricing.NewTier(20, fee20)
//	t2, _ := pricing.NewTier(30, fee30)
//	t3, _ := pricing.NewTier(50, fee50)
//	schedule, err := pricing.NewSchedule("Millau", []pricing.Tier{t1, t2, t3}, kernel.ZeroMoney())
//	if err != nil {
//	    // Handle construction error
//	}
//	fee, err := schedule.FeeFor("Paris", distance)
type Schedule struct {
	// freeZone is the city delivered free of charge regardless of distance
	freeZone string
	// tiers are the price bands, sorted ascending by their distance bound
	tiers []Tier
	// perKmAboveMax is stored and round-tripped but never applied to a fee.
	// Reserved for future tiering.
	perKmAboveMax kernel.Money
	// guard ensures the schedule was properly constructed
	guard guard.ConstructorGuard
}

// NewSchedule creates a fee schedule from a free-zone city and a list of
// tiers.
//
// Validation rules:
//   - freeZone must be non-empty after trimming
//   - at least one tier is required
//   - every tier must be properly constructed
//   - tier bounds must be strictly increasing
//   - perKmAboveMax must be a constructed Money (zero is the usual value)
//
// Returns the schedule or the aggregated validation errors.
func NewSchedule(freeZone string, tiers []Tier, perKmAboveMax kernel.Money) (*Schedule, error) {
	s := &Schedule{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setFreeZone(freeZone),
		s.setTiers(tiers),
		s.setPerKmAboveMax(perKmAboveMax),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// FreeZone returns the city delivered free of charge.
func (s *Schedule) FreeZone() string {
	return s.freeZone
}

// Tiers returns a copy of the price bands, ascending by distance bound.
func (s *Schedule) Tiers() []Tier {
	tiers := make([]Tier, len(s.tiers))
	copy(tiers, s.tiers)
	return tiers
}

// PerKmAboveMax returns the reserved per-km rate. No pricing path applies it.
func (s *Schedule) PerKmAboveMax() kernel.Money {
	return s.perKmAboveMax
}

// FeeFor computes the delivery fee for a city and distance.
//
// Rules, in order:
//   - the free-zone city (case-insensitive) is free regardless of distance;
//   - otherwise the first tier whose bound covers the distance sets the fee;
//   - a distance beyond the last tier fails with ErrZoneNotCovered.
//
// Parameters:
//   - city: Destination city as collected during checkout
//   - distance: Customer-stated distance (must be a constructed Distance)
//
// Returns:
//   - kernel.Money: The delivery fee
//   - error: ErrZoneNotCovered, or a validation error for bad input
func (s *Schedule) FeeFor(city string, distance kernel.Distance) (kernel.Money, error) {
	if err := s.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := distance.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if strings.EqualFold(strings.TrimSpace(city), s.freeZone) {
		return kernel.ZeroMoney(), nil
	}

	for _, tier := range s.tiers {
		if tier.maxDistanceKm >= distance.Km() {
			return tier.fee, nil
		}
	}

	return kernel.Money{}, ErrZoneNotCovered
}

func (s *Schedule) setFreeZone(freeZone string) error {
	freeZone = strings.TrimSpace(freeZone)
	if freeZone == "" {
		return ErrFreeZoneIsRequired
	}

	s.freeZone = freeZone
	return nil
}

func (s *Schedule) setTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return ErrTiersAreRequired
	}

	prev := 0.0
	for i, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return err
		}
		if tier.maxDistanceKm <= prev {
			return errs.NewValueIsInvalidErrorWithCause(
				"tiers",
				fmt.Errorf("tier %d bound %v does not increase on %v", i, tier.maxDistanceKm, prev),
			)
		}
		prev = tier.maxDistanceKm
	}

	s.tiers = make([]Tier, len(tiers))
	copy(s.tiers, tiers)
	return nil
}

func (s *Schedule) setPerKmAboveMax(perKmAboveMax kernel.Money) error {
	if err := perKmAboveMax.Validate(); err != nil {
		return err
	}

	s.perKmAboveMax = perKmAboveMax
	return nil
}

// Validate checks if the Schedule was properly constructed.
func (s *Schedule) Validate() error {
	if s == nil {
		return ErrScheduleIsNotConstructed
	}
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}
