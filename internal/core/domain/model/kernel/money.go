package kernel

import (
	"errors"
	"fmt"

	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney, NewMoneyFromString, NewMoneyFromFloat,
// or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFromString, NewMoneyFromFloat, or ZeroMoney")

// Money is an immutable value object representing a non-negative monetary
// amount in the store's single currency. It wraps shopspring/decimal to keep
// price arithmetic exact; floating point never touches an amount after
// construction.
//
// The zero value of Money is invalid and fails validation - use one of the
// constructors.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("2.50")
//	if err != nil {
//	    return err
//	}
//	lineTotal, err := price.MulInt(3)
//	// lineTotal.String() == "7.50"
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromString parses a decimal string ("11.90") into Money.
// Returns an error for unparsable or negative input.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount)
}

// NewMoneyFromFloat converts a float amount into Money.
// Intended for inbound payloads where JSON numbers arrive as float64;
// the value is converted once and all further arithmetic is decimal.
func NewMoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// ZeroMoney returns a properly constructed zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks that the Money was created through a constructor.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal value.
// Used by persistence adapters; domain code should prefer the arithmetic
// methods.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.validatePair(other); err != nil {
		return Money{}, err
	}

	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// SubOrZero returns m − other, clamped at zero.
// This is the discount rule: a discount larger than the subtotal never
// produces a negative base amount.
func (m Money) SubOrZero(other Money) (Money, error) {
	if err := m.validatePair(other); err != nil {
		return Money{}, err
	}

	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		result = decimal.Zero
	}

	return Money{
		amount: result,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MulInt returns the amount multiplied by a non-negative integer quantity.
func (m Money) MulInt(qty int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if qty < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"qty",
			fmt.Errorf("%d is negative", qty),
		)
	}

	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(qty))),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// GreaterThanOrEqual reports whether m >= other.
// Both operands must be properly constructed.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if err := m.validatePair(other); err != nil {
		return false, err
	}

	return m.amount.GreaterThanOrEqual(other.amount), nil
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by value, ignoring representation.
// 2.5 and 2.50 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "31.90".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) validatePair(other Money) error {
	return errors.Join(m.Validate(), other.Validate())
}
