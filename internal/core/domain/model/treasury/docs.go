// Package treasury contains the cash ledger for the storefront. Every time
// cash moves (a sale settles, a refund goes out, the till gets corrected) an
// immutable Entry records it. Revenue reporting aggregates these entries.
package treasury
