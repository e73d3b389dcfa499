package queries

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var (
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetCatalogQuery retrieves one partition of the product catalog: the
// sellable products (the storefront view) or the deactivated ones (the
// staff view used to pick candidates for reactivation).
//
// Example:
//
//	query := NewGetCatalogQuery(false)
//	handler := NewGetCatalogQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve catalog: %w", err)
//	}
//
//	for _, p := range products {
//	    fmt.Printf("%s — %s (%d in stock)\n", p.Name, p.Price, p.StockQty)
//	}
type GetCatalogQuery struct {
	inactive bool

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a catalog listing query. When inactive is true
// the query selects the deactivated products instead of the sellable ones.
func NewGetCatalogQuery(inactive bool) GetCatalogQuery {
	return GetCatalogQuery{inactive: inactive, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// Inactive reports whether the query targets the deactivated partition.
func (q GetCatalogQuery) Inactive() bool {
	return q.inactive
}

// GetCatalogQueryResponse represents one catalog product in the read model.
type GetCatalogQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	StockQty int
	IsActive bool
}
