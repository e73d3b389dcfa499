package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

// ErrDiscountPolicyIsNotConstructed is returned when using an improperly
// initialized DiscountPolicy.
var ErrDiscountPolicyIsNotConstructed = errors.New(
	"DiscountPolicy must be created via NewDiscountPolicy constructor")

// DiscountPolicy is the explicit discount configuration applied at checkout
// commit. It is built once from configuration at startup and read once per
// commit; nothing mutates it mid-protocol.
//
// Three additive components:
//   - a flat global discount, applied to every order while active;
//   - a promo-code bonus, applied when the submitted code matches;
//   - an optional loyalty bonus on every Nth delivered order of the customer,
//     disabled unless explicitly enabled.
type DiscountPolicy struct { //nolint:recvcheck //using for validation
	globalActive bool
	globalAmount kernel.Money

	promoCode   string
	promoAmount kernel.Money

	loyaltyEnabled bool
	loyaltyEvery   int
	loyaltyAmount  kernel.Money

	guard guard.ConstructorGuard
}

// NewDiscountPolicy creates a discount policy.
//
// Parameters:
//   - globalActive: Whether the flat discount applies to every order
//   - globalAmount: The flat discount amount
//   - promoCode: The configured promo code (matched case-insensitively; empty
//     disables promo matching)
//   - promoAmount: The bonus for a matching promo code
//   - loyaltyEnabled: Whether the loyalty rule participates at all
//   - loyaltyEvery: Award the loyalty bonus on every Nth delivered order
//     (must be at least 1 when the rule is enabled)
//   - loyaltyAmount: The loyalty bonus amount
//
// All amounts must be constructed, non-negative Money values.
func NewDiscountPolicy(
	globalActive bool,
	globalAmount kernel.Money,
	promoCode string,
	promoAmount kernel.Money,
	loyaltyEnabled bool,
	loyaltyEvery int,
	loyaltyAmount kernel.Money,
) (DiscountPolicy, error) {
	p := DiscountPolicy{
		globalActive:   globalActive,
		promoCode:      strings.ToUpper(strings.TrimSpace(promoCode)),
		loyaltyEnabled: loyaltyEnabled,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setGlobalAmount(globalAmount),
		p.setPromoAmount(promoAmount),
		p.setLoyalty(loyaltyEnabled, loyaltyEvery, loyaltyAmount),
	); err != nil {
		return DiscountPolicy{}, err
	}

	return p, nil
}

// GlobalActive reports whether the flat discount is switched on.
func (p DiscountPolicy) GlobalActive() bool {
	return p.globalActive
}

// PromoCode returns the configured promo code, upper-cased.
func (p DiscountPolicy) PromoCode() string {
	return p.promoCode
}

// LoyaltyEnabled reports whether the loyalty rule participates in pricing.
func (p DiscountPolicy) LoyaltyEnabled() bool {
	return p.loyaltyEnabled
}

// MatchesPromo reports whether a submitted code earns the promo bonus.
// Empty submissions never match; comparison ignores case.
func (p DiscountPolicy) MatchesPromo(code string) bool {
	code = strings.TrimSpace(code)
	return code != "" && p.promoCode != "" && strings.EqualFold(code, p.promoCode)
}

// DiscountFor computes the total discount for one checkout commit.
//
// Parameters:
//   - promoCode: The code the customer submitted ("" for none)
//   - orderRank: The 1-based rank this order would take among the customer's
//     delivered orders; only consulted when the loyalty rule is enabled
//
// Returns the additive discount amount. The caller clamps the discounted
// subtotal at zero; the policy itself never looks at the subtotal.
func (p DiscountPolicy) DiscountFor(promoCode string, orderRank int) (kernel.Money, error) {
	if err := p.Validate(); err != nil {
		return kernel.Money{}, err
	}

	discount := kernel.ZeroMoney()
	var err error

	if p.globalActive {
		discount, err = discount.Add(p.globalAmount)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	if p.MatchesPromo(promoCode) {
		discount, err = discount.Add(p.promoAmount)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	if p.loyaltyEnabled && orderRank > 0 && orderRank%p.loyaltyEvery == 0 {
		discount, err = discount.Add(p.loyaltyAmount)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return discount, nil
}

func (p *DiscountPolicy) setGlobalAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	p.globalAmount = amount
	return nil
}

func (p *DiscountPolicy) setPromoAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	p.promoAmount = amount
	return nil
}

func (p *DiscountPolicy) setLoyalty(enabled bool, every int, amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if enabled && every < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"loyaltyEvery",
			fmt.Errorf("%d is not greater than 0", every),
		)
	}

	p.loyaltyEvery = every
	p.loyaltyAmount = amount
	return nil
}

// Validate checks if the DiscountPolicy was properly constructed.
func (p DiscountPolicy) Validate() error {
	return p.guard.Validate(ErrDiscountPolicyIsNotConstructed)
}
