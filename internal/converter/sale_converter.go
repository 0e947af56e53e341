package converter

import (
	"go-online-store/internal/delivery/dto"
	"go-online-store/internal/domain/entity"
)

// SaleToResponse converts a Sale entity to SaleResponse DTO
func SaleToResponse(sale *entity.Sale) *dto.SaleResponse {
	if sale == nil {
		return nil
	}

	return &dto.SaleResponse{
		Name:         sale.Name,
		Quantity:     sale.Quantity,
		Value:        sale.Value,
		ZipCode:      sale.ZipCode,
		Country:      sale.Country,
		City:         sale.City,
		State:        sale.State,
		Street:       sale.Street,
		Neighborhood: sale.Neighborhood,
	}
}

// SaleToOpenSaleResponse converts a Sale entity to a get_sales item.
// Product fields stay nil until MergeProductSnapshot fills them in.
func SaleToOpenSaleResponse(sale *entity.Sale) *dto.OpenSaleResponse {
	if sale == nil {
		return nil
	}

	return &dto.OpenSaleResponse{
		SalesID:      sale.SalesID,
		Name:         sale.Name,
		Quantity:     sale.Quantity,
		Value:        sale.Value,
		ZipCode:      sale.ZipCode,
		Country:      sale.Country,
		City:         sale.City,
		State:        sale.State,
		Street:       sale.Street,
		Neighborhood: sale.Neighborhood,
	}
}

// MergeProductSnapshot copies the current product data into a get_sales item.
func MergeProductSnapshot(item *dto.OpenSaleResponse, product *entity.Product) {
	if item == nil || product == nil {
		return
	}

	price := product.Price
	stock := product.AvailableStock
	item.Price = &price
	item.Supplier = &product.Supplier
	item.Category = &product.Category
	item.Description = &product.Description
	item.AvailableStock = &stock
}
