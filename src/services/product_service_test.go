package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallydb/src/engine"
	"tallydb/src/entities"
)

func testProduct(code string, stock, minStock float64) *entities.Product {
	p := entities.NewProduct(code, "Product "+code, "tools", "UN")
	p.CostPrice = 5
	p.SalePrice = 10
	p.StockQuantity = stock
	p.MinStock = minStock
	return p
}

func TestProductService_CreateAndGetByCode(t *testing.T) {
	m := newTestManager(t)

	p := testProduct("P-1", 10, 2)
	require.NoError(t, m.Products.Create(p))

	got, err := m.Products.GetByCode("P-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)

	err = m.Products.Create(testProduct("P-1", 0, 0))
	require.Error(t, err)
	assert.True(t, engine.IsUniqueViolation(err))
}

func TestProductService_GetLowStock(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Products.Create(testProduct("P-1", 1, 5)))
	require.NoError(t, m.Products.Create(testProduct("P-2", 5, 5)))
	require.NoError(t, m.Products.Create(testProduct("P-3", 50, 5)))

	inactive := testProduct("P-4", 0, 5)
	inactive.Active = false
	require.NoError(t, m.Products.Create(inactive))

	low, err := m.Products.GetLowStock()
	require.NoError(t, err)
	codes := make([]string, 0, len(low))
	for _, p := range low {
		codes = append(codes, p.Code)
	}
	assert.ElementsMatch(t, []string{"P-1", "P-2"}, codes,
		"at-threshold counts as low, inactive products are skipped")
}

func TestProductService_AdjustStock(t *testing.T) {
	m := newTestManager(t)

	p := testProduct("P-1", 10, 2)
	require.NoError(t, m.Products.Create(p))

	require.NoError(t, m.Products.AdjustStock(p.ID, -4, entities.StockOut, "damage", "u-1", ""))

	got, err := m.Products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(6), got.StockQuantity)

	movements, err := m.StockMovements.GetByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entities.StockOut, movements[0].Type)
	assert.Equal(t, float64(-4), movements[0].Quantity)
	assert.Equal(t, "damage", movements[0].Reason)
}

func TestProductService_AdjustStockRejectsNegativeResult(t *testing.T) {
	m := newTestManager(t)

	p := testProduct("P-1", 3, 0)
	require.NoError(t, m.Products.Create(p))

	err := m.Products.AdjustStock(p.ID, -5, entities.StockOut, "oversell", "u-1", "")
	require.Error(t, err)

	got, err := m.Products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(3), got.StockQuantity, "a rejected adjustment changes nothing")

	movements, err := m.StockMovements.GetByProduct(p.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestProductService_AdjustStockRevertsWhenMovementFails(t *testing.T) {
	m := newTestManager(t)

	p := testProduct("P-1", 10, 0)
	require.NoError(t, m.Products.Create(p))

	err := m.Products.AdjustStock(p.ID, -2, "teleport", "damage", "u-1", "")
	require.Error(t, err)
	assert.True(t, engine.IsSchemaViolation(err))

	got, err := m.Products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(10), got.StockQuantity, "the stock change is undone when no movement records it")

	movements, err := m.StockMovements.GetByProduct(p.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestProductService_AdjustStockUnknownProduct(t *testing.T) {
	m := newTestManager(t)

	err := m.Products.AdjustStock("ghost", 1, entities.StockIn, "restock", "u-1", "")
	require.Error(t, err)
	assert.True(t, engine.IsNotFound(err))
}
