package ports

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, productID kernel.UUID) (*product.Product, error)
	GetByName(ctx context.Context, name string) (*product.Product, error)

	// Debit atomically subtracts qty from the product's stock, but only
	// while at least qty units remain. When the stock has been drained by
	// a concurrent settlement the call fails with
	// product.InsufficientStockError and the row is left untouched.
	Debit(ctx context.Context, productID kernel.UUID, qty int) error
}
