package converter

import (
	"go-online-store/internal/delivery/dto"
	"go-online-store/internal/domain/entity"
)

// ProductToResponse converts a Product entity to ProductResponse DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		Name:           product.Name,
		Price:          product.Price,
		Supplier:       product.Supplier,
		Category:       product.Category,
		Description:    product.Description,
		AvailableStock: product.AvailableStock,
	}
}
