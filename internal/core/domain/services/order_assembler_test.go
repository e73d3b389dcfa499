package services_test

import (
	"testing"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustDistance(t *testing.T, km float64) kernel.Distance {
	t.Helper()
	d, err := kernel.NewDistance(km)
	require.NoError(t, err)
	return d
}

// testSchedule builds the standard table: free zone Millau,
// tiers (20km, 20.00), (30km, 30.00), (50km, 50.00).
func testSchedule(t *testing.T) *pricing.Schedule {
	t.Helper()

	t1, err := pricing.NewTier(20, mustMoney(t, "20.00"))
	require.NoError(t, err)
	t2, err := pricing.NewTier(30, mustMoney(t, "30.00"))
	require.NoError(t, err)
	t3, err := pricing.NewTier(50, mustMoney(t, "50.00"))
	require.NoError(t, err)

	s, err := pricing.NewSchedule("Millau", []pricing.Tier{t1, t2, t3}, kernel.ZeroMoney())
	require.NoError(t, err)
	return s
}

// noDiscounts builds a policy with every rule switched off.
func noDiscounts(t *testing.T) pricing.DiscountPolicy {
	t.Helper()

	p, err := pricing.NewDiscountPolicy(
		false, kernel.ZeroMoney(),
		"", kernel.ZeroMoney(),
		false, 1, kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return p
}

func testProduct(t *testing.T, name, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, mustMoney(t, price), stock)
	require.NoError(t, err)
	return p
}

func readyAt(city string, km float64, promo string) checkout.Ready {
	distance, _ := kernel.NewDistance(km)
	return checkout.Ready{
		Address:   "12 rue des Lilas",
		City:      city,
		Distance:  distance,
		PromoCode: promo,
	}
}

func TestOrderAssembler_Assemble(t *testing.T) {
	assembler := services.NewOrderAssembler()

	t.Run("prices a basic order", func(t *testing.T) {
		bottle := testProduct(t, "Bouteille 1.0L", "2.50", 50)
		pack := testProduct(t, "Pack 6x0.5L", "6.90", 30)
		picks := []services.PickedProduct{
			{Product: bottle, Qty: 2},
			{Product: pack, Qty: 1},
		}

		o, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			picks, readyAt("Paris", 15, ""), 1,
			testSchedule(t), noDiscounts(t), time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "11.90", o.Totals().Subtotal().String())
		assert.Equal(t, "0.00", o.Totals().Discount().String())
		assert.Equal(t, "20.00", o.Totals().DeliveryFee().String())
		assert.Equal(t, "31.90", o.Totals().Total().String())

		lines := o.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "Bouteille 1.0L", lines[0].Name())
		assert.Equal(t, "2.50", lines[0].UnitPrice().String())
		assert.Equal(t, 2, lines[0].Qty())

		assert.Equal(t, "Paris", o.Destination().City())
		assert.Empty(t, o.PromoCode())
	})

	t.Run("charges no fee in the free zone", func(t *testing.T) {
		picks := []services.PickedProduct{{Product: testProduct(t, "Bouteille 1.0L", "2.50", 50), Qty: 1}}

		o, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			picks, readyAt("Millau", 42, ""), 1,
			testSchedule(t), noDiscounts(t), time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, "0.00", o.Totals().DeliveryFee().String())
		assert.Equal(t, "2.50", o.Totals().Total().String())
	})

	t.Run("fails on uncovered zone", func(t *testing.T) {
		picks := []services.PickedProduct{{Product: testProduct(t, "Bouteille 1.0L", "2.50", 50), Qty: 1}}

		_, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			picks, readyAt("Paris", 51, ""), 1,
			testSchedule(t), noDiscounts(t), time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, pricing.ErrZoneNotCovered)
	})

	t.Run("drops inactive products", func(t *testing.T) {
		bottle := testProduct(t, "Bouteille 1.0L", "2.50", 50)
		discontinued := testProduct(t, "Pack 6x0.5L", "6.90", 30)
		discontinued.Deactivate()

		picks := []services.PickedProduct{
			{Product: bottle, Qty: 2},
			{Product: discontinued, Qty: 1},
		}

		o, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			picks, readyAt("Paris", 15, ""), 1,
			testSchedule(t), noDiscounts(t), time.Now(),
		)

		require.NoError(t, err)
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, "Bouteille 1.0L", o.Lines()[0].Name())
		assert.Equal(t, "5.00", o.Totals().Subtotal().String())
	})

	t.Run("fails when nothing sellable remains", func(t *testing.T) {
		discontinued := testProduct(t, "Pack 6x0.5L", "6.90", 30)
		discontinued.Deactivate()

		_, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			[]services.PickedProduct{{Product: discontinued, Qty: 1}},
			readyAt("Paris", 15, ""), 1,
			testSchedule(t), noDiscounts(t), time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoSellableProducts)
	})

	t.Run("fails on empty picks", func(t *testing.T) {
		_, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			nil, readyAt("Paris", 15, ""), 1,
			testSchedule(t), noDiscounts(t), time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoSellableProducts)
	})

	t.Run("fails when stock cannot cover a pick", func(t *testing.T) {
		bottle := testProduct(t, "Bouteille 1.0L", "2.50", 2)

		_, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			[]services.PickedProduct{{Product: bottle, Qty: 3}},
			readyAt("Paris", 15, ""), 1,
			testSchedule(t), noDiscounts(t), time.Now(),
		)

		require.Error(t, err)

		var stockErr *product.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Bouteille 1.0L", stockErr.ProductName)
		assert.Equal(t, 3, stockErr.Requested)
		assert.Equal(t, 2, stockErr.Available)
	})

	t.Run("applies and records a matching promo", func(t *testing.T) {
		policy, err := pricing.NewDiscountPolicy(
			true, mustMoney(t, "10.00"),
			"TRESORERIE10", mustMoney(t, "10.00"),
			false, 1, kernel.ZeroMoney(),
		)
		require.NoError(t, err)

		picks := []services.PickedProduct{
			{Product: testProduct(t, "Bouteille 1.0L", "2.50", 50), Qty: 2},
			{Product: testProduct(t, "Pack 6x0.5L", "6.90", 30), Qty: 1},
		}

		o, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			picks, readyAt("Paris", 15, "TRESORERIE10"), 1,
			testSchedule(t), policy, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, "20.00", o.Totals().Discount().String())
		// Goods clamp at zero (11.90 - 20.00), fee still due.
		assert.Equal(t, "20.00", o.Totals().Total().String())
		assert.Equal(t, "TRESORERIE10", o.PromoCode())
	})

	t.Run("does not record a promo that did not match", func(t *testing.T) {
		policy, err := pricing.NewDiscountPolicy(
			true, mustMoney(t, "10.00"),
			"TRESORERIE10", mustMoney(t, "10.00"),
			false, 1, kernel.ZeroMoney(),
		)
		require.NoError(t, err)

		picks := []services.PickedProduct{
			{Product: testProduct(t, "Bouteille 1.0L", "2.50", 50), Qty: 2},
			{Product: testProduct(t, "Pack 6x0.5L", "6.90", 30), Qty: 1},
		}

		o, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			picks, readyAt("Paris", 15, "AUTRE"), 1,
			testSchedule(t), policy, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, "10.00", o.Totals().Discount().String())
		assert.Empty(t, o.PromoCode())
	})

	t.Run("pays the loyalty bonus on the right rank", func(t *testing.T) {
		policy, err := pricing.NewDiscountPolicy(
			false, kernel.ZeroMoney(),
			"", kernel.ZeroMoney(),
			true, 10, mustMoney(t, "10.00"),
		)
		require.NoError(t, err)

		picks := []services.PickedProduct{
			{Product: testProduct(t, "Pod arôme citron", "3.20", 100), Qty: 5},
		}

		o, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			picks, readyAt("Paris", 15, ""), 10,
			testSchedule(t), policy, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, "10.00", o.Totals().Discount().String())
		// 16.00 - 10.00 + 20.00
		assert.Equal(t, "26.00", o.Totals().Total().String())
	})

	t.Run("fails on nil schedule", func(t *testing.T) {
		picks := []services.PickedProduct{{Product: testProduct(t, "Bouteille 1.0L", "2.50", 50), Qty: 1}}

		_, err := assembler.Assemble(
			kernel.NewUUID(), order.GenerateCode(), kernel.NewUUID(),
			picks, readyAt("Paris", 15, ""), 1,
			nil, noDiscounts(t), time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, pricing.ErrScheduleIsNotConstructed)
	})
}
