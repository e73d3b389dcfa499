package commands_test

import (
	"testing"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_ValidInput(t *testing.T) {
	price := mustMoney(t, "2.50")
	cmd, err := commands.NewCreateProductCommand("Bouteille 1.0L", price, 50)
	require.NoError(t, err)
	assert.Equal(t, "Bouteille 1.0L", cmd.Name())
	assert.True(t, price.IsEqual(cmd.Price()))
	assert.Equal(t, 50, cmd.StockQty())
}

func TestNewCreateProductCommand_TrimsName(t *testing.T) {
	cmd, err := commands.NewCreateProductCommand("  Pod arôme citron  ", mustMoney(t, "3.20"), 100)
	require.NoError(t, err)
	assert.Equal(t, "Pod arôme citron", cmd.Name())
}

func TestNewCreateProductCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateProductCommand("   ", mustMoney(t, "2.50"), 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateProductCommand_UnconstructedPrice(t *testing.T) {
	_, err := commands.NewCreateProductCommand("Bouteille 1.0L", kernel.Money{}, 50)
	require.Error(t, err)
}

func TestNewCreateProductCommand_NegativeStock(t *testing.T) {
	_, err := commands.NewCreateProductCommand("Bouteille 1.0L", mustMoney(t, "2.50"), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
