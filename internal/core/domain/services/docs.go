// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the storefront. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderAssembler: A domain service that prices a completed checkout
//     conversation into an Order aggregate
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
