// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// The priced snapshot (lines, totals, destination) is written once at commit
// time and never updated afterwards; only status, courier and the delivery
// timestamp change over an order's life.
package orderrepo

import (
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer-facing code carries a unique index because staff address orders
// by code; status and customer are indexed for the dispatch and loyalty reads.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code        string     `gorm:"uniqueIndex;not null"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index"`
	CourierID   *uuid.UUID `gorm:"type:uuid"`
	Address     string
	City        string
	DistanceKm  float64
	PromoCode   string
	Lines       []LineDoc       `gorm:"type:jsonb;serializer:json"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Discount    decimal.Decimal `gorm:"type:decimal(12,2)"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(12,2)"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status      string          `gorm:"index"`
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDoc is one priced line inside the order's jsonb lines column. Lines are
// immutable snapshots, so a document column beats a join table here: the order
// always loads and writes as one row.
type LineDoc struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Qty       int             `json:"qty"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional courier assignment and settlement time.
func fromDomain(order *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := order.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var deliveredAt *time.Time
	if at := order.DeliveredAt(); at != nil {
		copied := *at
		deliveredAt = &copied
	}

	lines := make([]LineDoc, 0, len(order.Lines()))
	for _, line := range order.Lines() {
		lines = append(lines, LineDoc{
			ProductID: line.ProductID().String(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Amount(),
			Qty:       line.Qty(),
		})
	}

	return OrderDTO{
		ID:          order.ID().Bytes(),
		Code:        order.Code().String(),
		CustomerID:  order.CustomerID().Bytes(),
		CourierID:   courierID,
		Address:     order.Destination().Address(),
		City:        order.Destination().City(),
		DistanceKm:  order.Destination().Distance().Km(),
		PromoCode:   order.PromoCode(),
		Lines:       lines,
		Subtotal:    order.Totals().Subtotal().Amount(),
		Discount:    order.Totals().Discount().Amount(),
		DeliveryFee: order.Totals().DeliveryFee().Amount(),
		Total:       order.Totals().Total().Amount(),
		Status:      order.Status().String(),
		CreatedAt:   order.CreatedAt(),
		DeliveredAt: deliveredAt,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, courier assignment
// and settlement time using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := order.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	distance, err := kernel.NewDistance(dto.DistanceKm)
	if err != nil {
		return nil, err
	}

	destination, err := order.NewDestination(dto.Address, dto.City, distance)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, doc := range dto.Lines {
		line, lineErr := lineFromDoc(doc)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	totals, err := totalsFromDTO(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		code,
		customerID,
		courierID,
		destination,
		dto.PromoCode,
		lines,
		totals,
		status,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}

func lineFromDoc(doc LineDoc) (order.Line, error) {
	productID, err := kernel.UUIDFromString(doc.ProductID)
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(doc.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(productID, doc.Name, unitPrice, doc.Qty)
}

func totalsFromDTO(dto OrderDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return order.Totals{}, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Totals{}, err
	}

	return order.NewTotals(subtotal, discount, deliveryFee)
}
