// Package cart contains the shopping cart aggregate for the ordering domain.
//
// A Cart collects the products a customer intends to buy. It is keyed by the
// owning customer and holds a list of Lines, each a product reference with a
// positive quantity. Adding a product twice merges into one line.
//
// Carts are deliberately thin: they never look at prices or stock. Those
// checks belong to checkout, which reads the catalog at commit time so that
// a cart assembled over a long session still settles against current data.
package cart
