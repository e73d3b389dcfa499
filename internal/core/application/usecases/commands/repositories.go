// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TreasuryRepoFactory provides access to the treasury repository within a transaction.
	TreasuryRepoFactory interface {
		TreasuryRepository() ports.TreasuryRepository
	}

	// FeeScheduleRepoFactory provides access to the fee schedule repository within a transaction.
	FeeScheduleRepoFactory interface {
		FeeScheduleRepository() ports.FeeScheduleRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// ProductUoW manages transactions for catalog-only operations.
	// Used by the product administration commands and by cart item
	// validation, which reads but never writes.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW manages transactions for order-only status transitions
	// (assign, out-for-delivery, cancel).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SettlementUoW manages the delivery confirmation transaction, where
	// the status flip, the stock debits and the treasury entry must land
	// atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   treasuryRepo := uow.TreasuryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		TreasuryRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// CheckoutUoW manages the checkout commit transaction: pricing reads
	// and the order insert share one transaction so the commit prices
	// against a consistent snapshot.
	CheckoutUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
		FeeScheduleRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// FeeScheduleUoW manages transactions for fee schedule replacement.
	FeeScheduleUoW interface {
		TxManager
		FeeScheduleRepoFactory
	}

	// FeeScheduleUoWFactory creates new fee schedule unit of work instances.
	FeeScheduleUoWFactory interface {
		Create() FeeScheduleUoW
	}

	// ReviewUoW manages transactions for review submission.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
