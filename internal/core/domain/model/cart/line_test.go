package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/cart"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
)

func TestNewLine(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("valid line", func(t *testing.T) {
		line, err := cart.NewLine(productID, 3)
		require.NoError(t, err)
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.Equal(t, 3, line.Qty())
		assert.NoError(t, line.Validate())
	})

	t.Run("zero qty", func(t *testing.T) {
		_, err := cart.NewLine(productID, 0)
		assert.Error(t, err)
	})

	t.Run("negative qty", func(t *testing.T) {
		_, err := cart.NewLine(productID, -2)
		assert.Error(t, err)
	})

	t.Run("invalid product id", func(t *testing.T) {
		var empty kernel.UUID
		_, err := cart.NewLine(empty, 1)
		assert.Error(t, err)
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("zero value line", func(t *testing.T) {
		var line cart.Line
		assert.Equal(t, cart.ErrLineIsNotConstructed, line.Validate())
	})
}
