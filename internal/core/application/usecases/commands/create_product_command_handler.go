package commands

import (
	"context"
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// CreateProductCommandHandler handles the business logic for catalog additions.
// Product names are unique: creating a name that already exists is a silent
// no-op, so seeding and repeated admin submissions stay safe.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
// Requires a ProductUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Looks the name up first; an existing product short-circuits without any
// write. Otherwise a fresh active product is persisted.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	_, err := productRepo.GetByName(ctx, cmd.Name())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newProduct, err := product.NewProduct(kernel.NewUUID(), cmd.Name(), cmd.Price(), cmd.StockQty())
	if err != nil {
		return err
	}

	if err = productRepo.Add(ctx, newProduct); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
