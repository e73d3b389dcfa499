package product

import (
	"errors"
	"fmt"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

// Domain errors for catalog operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrInsufficientStock is the sentinel wrapped by InsufficientStockError.
	// Callers classify stock failures with errors.Is against this value.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports that a requested quantity exceeds the
// sellable stock of a product. It carries the product name and the quantities
// involved so the failure can be surfaced to the customer verbatim.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// product and quantities.
func NewInsufficientStockError(productName string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductName: productName,
		Requested:   requested,
		Available:   available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s (requested %d, available %d)",
		ErrInsufficientStock, e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is the aggregate root of the catalog and stock ledger. It is the
// single source of truth for what can be sold and in which quantity.
//
// Key rules:
//   - Name is unique across the catalog; creating an existing name is a no-op
//     handled by the application layer, not an error.
//   - Price is a non-negative exact decimal.
//   - Stock is an absolute quantity, never negative. It is debited only at
//     delivery settlement; the checkout-time check is advisory.
//   - Products are never deleted. Deactivation hides them from customers and
//     from checkout while keeping historical orders intact.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromString("2.50")
//	p, err := product.NewProduct(kernel.NewUUID(), "Bouteille 1.0L", price, 50)
//	if err != nil {
//	    // Handle construction error
//	}
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the unique, human-readable catalog name
	name string
	// price is the current unit price
	price kernel.Money
	// stockQty is the sellable quantity
	stockQty int
	// active controls visibility to customers and checkout
	active bool
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates an active Product with the given identity, name, unit
// price, and initial stock.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Catalog name (must be non-empty)
//   - price: Unit price (must be a constructed, non-negative Money)
//   - stockQty: Initial stock quantity (must be ≥ 0)
//
// Returns:
//   - *Product: A fully initialized, active product
//   - error: Aggregated validation errors, if any
func NewProduct(id kernel.UUID, name string, price kernel.Money, stockQty int) (*Product, error) {
	p := &Product{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stockQty),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage, including its
// active flag. The restored product behaves identically to one created through
// normal domain operations.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price kernel.Money,
	stockQty int,
	active bool,
) (*Product, error) {
	p := &Product{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stockQty),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the unique identifier of the product.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog name of the product.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// StockQty returns the current sellable quantity.
func (p *Product) StockQty() int {
	return p.stockQty
}

// IsActive reports whether the product is visible to customers.
func (p *Product) IsActive() bool {
	return p.active
}

// SetPrice changes the unit price. Historical orders keep the price captured
// in their snapshot and are unaffected.
func (p *Product) SetPrice(price kernel.Money) error {
	return p.setPrice(price)
}

// SetStock replaces the stock quantity with an absolute value.
func (p *Product) SetStock(qty int) error {
	return p.setStock(qty)
}

// Deactivate hides the product from customers and from checkout.
// Deactivating an inactive product is a no-op.
func (p *Product) Deactivate() {
	p.active = false
}

// Reactivate makes the product sellable again.
func (p *Product) Reactivate() {
	p.active = true
}

// CanFulfil checks whether the requested quantity is currently in stock.
// This is the advisory checkout-time check: it reads the loaded state and
// does not reserve anything. The authoritative guard runs at settlement.
//
// Returns an InsufficientStockError carrying the product name and the
// available quantity when stock does not cover the request.
func (p *Product) CanFulfil(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}

	if p.stockQty < qty {
		return NewInsufficientStockError(p.name, qty, p.stockQty)
	}

	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	p.price = price
	return nil
}

func (p *Product) setStock(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockQty",
			fmt.Errorf("%d is negative", qty),
		)
	}

	p.stockQty = qty
	return nil
}

// Validate checks if the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}
