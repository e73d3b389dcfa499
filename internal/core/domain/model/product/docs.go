// Package product provides domain entities and business logic for the catalog
// and stock ledger of the storefront. It implements the Product aggregate root
// as the single source of truth for sellable quantity.
//
// The package includes:
//   - Product: The aggregate root holding name, unit price, stock, and active flag
//   - InsufficientStockError: The typed failure for requests exceeding sellable stock
//
// Key business rules:
//   - Product names are unique; recreating an existing name is a no-op
//   - Stock is never negative and is debited only at delivery settlement
//   - The checkout-time stock check is advisory; the settlement-time debit is
//     the authoritative guard
//   - Products are never deleted, only deactivated
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package product
