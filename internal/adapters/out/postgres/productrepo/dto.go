// Package productrepo provides data transfer objects and mapping functions for
// catalog persistence. It implements the repository pattern for the product
// aggregate, including the conditional stock debit used at settlement time.
package productrepo

import (
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Price is stored as a numeric column so cash arithmetic survives the round trip
// without float drift; the name carries a unique index because staff address
// products by name.
type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"uniqueIndex;not null"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2)"`
	StockQty int
	IsActive bool
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:       product.ID().Bytes(),
		Name:     product.Name(),
		Price:    product.Price().Amount(),
		StockQty: product.StockQty(),
		IsActive: product.IsActive(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Reconstructs the complete aggregate including the active flag using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price, dto.StockQty, dto.IsActive)
}
