package dto

import (
	"github.com/shopspring/decimal"
)

// Legacy clients expect price and value as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Request DTOs

type AddProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=30"`
	Price          decimal.Decimal `json:"price"`
	Supplier       string          `json:"supplier" validate:"max=100"`
	Category       string          `json:"category" validate:"max=20"`
	Description    string          `json:"description" validate:"max=500"`
	AvailableStock int             `json:"available_stock" validate:"gte=0"`
}

type UpdateStockRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=30"`
	NewStock int    `json:"new_stock" validate:"gte=0"`
}

type DeleteProductRequest struct {
	Name string `json:"name" validate:"required,min=1,max=30"`
}

// Response DTOs

type ProductResponse struct {
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Supplier       string          `json:"supplier"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	AvailableStock int             `json:"available_stock"`
}

// StockChangeResponse echoes the before/after stock values for audit display.
type StockChangeResponse struct {
	Name              string `json:"name"`
	OldAvailableStock int    `json:"old_available_stock"`
	NewAvailableStock int    `json:"new_available_stock"`
}

type AddProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

type GetProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

type UpdateStockResponse struct {
	Message string              `json:"message"`
	Product StockChangeResponse `json:"product"`
}

type DeleteProductResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}
