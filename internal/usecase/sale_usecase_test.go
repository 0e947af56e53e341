package usecase

import (
	"context"
	"testing"
	"time"

	"go-online-store/internal/delivery/dto"
	"go-online-store/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func brazilianSaleRequest(quantity int) *dto.AddSaleRequest {
	return &dto.AddSaleRequest{
		Name:         "Iphone 13",
		Quantity:     quantity,
		ZipCode:      "01025-020",
		Country:      "Brazil",
		City:         "São Paulo",
		State:        "Sp",
		Street:       "Avenida do Estado",
		Neighborhood: "Centro",
	}
}

func productStock(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	var product entity.Product
	require.NoError(t, db.Where("name = ?", name).First(&product).Error)
	return product.AvailableStock
}

func saleCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.Sale{}).Count(&count).Error)
	return count
}

func TestAddSaleDebitsStockAndComputesValue(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)

	sale, err := sales.AddSale(ctx, brazilianSaleRequest(3))
	require.NoError(t, err)

	assert.Equal(t, "Iphone 13", sale.Name)
	assert.Equal(t, 3, sale.Quantity)
	assert.True(t, sale.Value.Equal(decimal.RequireFromString("24900.00")), "value should be 24900.00, got %s", sale.Value)
	assert.Equal(t, "01025-020", sale.ZipCode)
	assert.Equal(t, "Brazil", sale.Country)

	assert.Equal(t, 7, productStock(t, db, "Iphone 13"))

	var stored entity.Sale
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, entity.SaleStatusOpen, stored.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), stored.SaleDate)
}

func TestAddSaleRejectsBadBrazilianZip(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)

	req := brazilianSaleRequest(3)
	req.ZipCode = "12345678"

	_, err = sales.AddSale(ctx, req)
	require.EqualError(t, err, "Incorrect zip code, expected format: nnnnn-nnn or nnnnn-nnnn")

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, kind)

	assert.Equal(t, 10, productStock(t, db, "Iphone 13"), "stock must be unchanged")
	assert.EqualValues(t, 0, saleCount(t, db))
}

func TestAddSaleZipOnlyCheckedForBrazil(t *testing.T) {
	products, sales, _ := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)

	req := brazilianSaleRequest(1)
	req.Country = "Portugal"
	req.ZipCode = "1000-001"

	_, err = sales.AddSale(ctx, req)
	require.NoError(t, err)
}

func TestAddSaleLowercaseCountryIsStillBrazil(t *testing.T) {
	products, sales, _ := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)

	req := brazilianSaleRequest(1)
	req.Country = "brasil"
	req.ZipCode = "12345678"

	_, err = sales.AddSale(ctx, req)
	require.EqualError(t, err, "Incorrect zip code, expected format: nnnnn-nnn or nnnnn-nnnn")
}

func TestAddSaleEmptyCountry(t *testing.T) {
	products, sales, _ := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)

	req := brazilianSaleRequest(1)
	req.Country = "   "

	_, err = sales.AddSale(ctx, req)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, kind)
}

func TestAddSaleUnknownProduct(t *testing.T) {
	_, sales, _ := newTestUsecases(t)

	req := brazilianSaleRequest(1)
	req.Name = "Nokia 3310"

	_, err := sales.AddSale(context.Background(), req)
	require.EqualError(t, err, "The product does not exist")
}

func TestAddSaleInsufficientStockLeavesNoPartialState(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)

	_, err = sales.AddSale(ctx, brazilianSaleRequest(11))
	require.EqualError(t, err, "There are only 10 unit(s) available in stock")

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindInsufficientStock, kind)

	assert.Equal(t, 10, productStock(t, db, "Iphone 13"), "stock must be unchanged")
	assert.EqualValues(t, 0, saleCount(t, db), "no sale row may be created")
}

func TestAddSaleExactStockDrainsToZero(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)

	_, err = sales.AddSale(ctx, brazilianSaleRequest(10))
	require.NoError(t, err)
	assert.Equal(t, 0, productStock(t, db, "Iphone 13"))

	_, err = sales.AddSale(ctx, brazilianSaleRequest(1))
	require.EqualError(t, err, "There are only 0 unit(s) available in stock")
}

func TestCloseSaleIsIdempotentToError(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)
	_, err = sales.AddSale(ctx, brazilianSaleRequest(1))
	require.NoError(t, err)

	var sale entity.Sale
	require.NoError(t, db.First(&sale).Error)

	require.NoError(t, sales.CloseSale(ctx, sale.SalesID))

	err = sales.CloseSale(ctx, sale.SalesID)
	require.EqualError(t, err, "The sale 1 is already closed")

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, kind)

	require.NoError(t, db.First(&sale).Error)
	assert.Equal(t, entity.SaleStatusClosed, sale.Status, "status never reverts")
}

func TestCloseSaleUnknown(t *testing.T) {
	_, sales, _ := newTestUsecases(t)

	err := sales.CloseSale(context.Background(), 42)
	require.EqualError(t, err, "The sale 42 does not exist")
}

func TestDeleteSaleRemovesOpenSale(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)
	_, err = sales.AddSale(ctx, brazilianSaleRequest(1))
	require.NoError(t, err)

	var sale entity.Sale
	require.NoError(t, db.First(&sale).Error)

	require.NoError(t, sales.DeleteSale(ctx, sale.SalesID))
	assert.EqualValues(t, 0, saleCount(t, db))

	_, err = sales.GetOpenSales(ctx)
	require.EqualError(t, err, "There are no open sales")
}

func TestDeleteSaleDoesNotRestoreStock(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)
	_, err = sales.AddSale(ctx, brazilianSaleRequest(4))
	require.NoError(t, err)
	require.Equal(t, 6, productStock(t, db, "Iphone 13"))

	var sale entity.Sale
	require.NoError(t, db.First(&sale).Error)
	require.NoError(t, sales.DeleteSale(ctx, sale.SalesID))

	// The debit survives the delete; reconciliation goes through
	// update_stock, never automatically.
	assert.Equal(t, 6, productStock(t, db, "Iphone 13"))
}

func TestDeleteSaleRejectsClosedSale(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)
	_, err = sales.AddSale(ctx, brazilianSaleRequest(1))
	require.NoError(t, err)

	var sale entity.Sale
	require.NoError(t, db.First(&sale).Error)
	require.NoError(t, sales.CloseSale(ctx, sale.SalesID))

	err = sales.DeleteSale(ctx, sale.SalesID)
	require.EqualError(t, err, "The sale 1 is closed, it is not possible to delete")
	assert.EqualValues(t, 1, saleCount(t, db))
}

func TestDeleteSaleUnknown(t *testing.T) {
	_, sales, _ := newTestUsecases(t)

	err := sales.DeleteSale(context.Background(), 42)
	require.EqualError(t, err, "The sale 42 does not exist")
}

func TestGetOpenSalesJoinsProductSnapshot(t *testing.T) {
	products, sales, _ := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)
	_, err = sales.AddSale(ctx, brazilianSaleRequest(3))
	require.NoError(t, err)

	items, err := sales.GetOpenSales(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Iphone 13", item.Name)
	assert.Equal(t, 3, item.Quantity)
	require.NotNil(t, item.Price)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("8300.00")))
	require.NotNil(t, item.AvailableStock)
	assert.Equal(t, 7, *item.AvailableStock, "the join reflects the current stock, not the stock at sale time")
	require.NotNil(t, item.Supplier)
	assert.Equal(t, "Apple", *item.Supplier)
}

func TestGetOpenSalesExcludesClosedSales(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)
	_, err = sales.AddSale(ctx, brazilianSaleRequest(1))
	require.NoError(t, err)
	_, err = sales.AddSale(ctx, brazilianSaleRequest(2))
	require.NoError(t, err)

	var first entity.Sale
	require.NoError(t, db.Order("sales_id ASC").First(&first).Error)
	require.NoError(t, sales.CloseSale(ctx, first.SalesID))

	items, err := sales.GetOpenSales(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestGetOpenSalesToleratesMissingProduct(t *testing.T) {
	products, sales, db := newTestUsecases(t)
	ctx := context.Background()

	_, err := products.AddProduct(ctx, iphoneRequest())
	require.NoError(t, err)
	_, err = sales.AddSale(ctx, brazilianSaleRequest(2))
	require.NoError(t, err)

	// Drop the product row underneath the sale (bypassing the delete guard)
	// to simulate a vanished join target.
	require.NoError(t, db.Where("name = ?", "Iphone 13").Delete(&entity.Product{}).Error)

	items, err := sales.GetOpenSales(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Iphone 13", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Nil(t, item.Price)
	assert.Nil(t, item.Supplier)
	assert.Nil(t, item.AvailableStock)
}

func TestGetOpenSalesEmpty(t *testing.T) {
	_, sales, _ := newTestUsecases(t)

	_, err := sales.GetOpenSales(context.Background())
	require.EqualError(t, err, "There are no open sales")

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}
