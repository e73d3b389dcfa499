// Package order provides domain entities and business logic for committed
// purchases in the storefront. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root carrying the priced snapshot from checkout
//     through dispatch to cash settlement
//   - Status: A state machine that enforces valid lifecycle transitions
//   - Code: The short customer-facing order identifier (e.g. "CMD-7KQ2ZD")
//   - Destination, Line, Totals: Value objects frozen onto the order at
//     commit time
//   - DispatchNotice: The flattened summary handed to dispatch notifiers
//
// Key business rules:
//   - Line snapshots and totals never change after commit; later catalog
//     edits do not rewrite history
//   - Orders flow pending -> assigned -> out_for_delivery -> delivered, but
//     delivery can be confirmed from any non-delivered status
//   - Settlement (delivery) is final and idempotent at the workflow level:
//     a second attempt fails with ErrOrderAlreadySettled
//   - Cancellation is soft; a cancelled order can still settle
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
