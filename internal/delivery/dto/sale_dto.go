package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type AddSaleRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=30"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	ZipCode      string `json:"zip_code" validate:"max=15"`
	Country      string `json:"country" validate:"required,max=50"`
	City         string `json:"city" validate:"max=50"`
	State        string `json:"state" validate:"max=50"`
	Street       string `json:"street" validate:"max=50"`
	Neighborhood string `json:"neighborhood" validate:"max=20"`
}

type SaleIDRequest struct {
	SalesID int `json:"sales_id" validate:"required,gt=0"`
}

// Response DTOs

type SaleResponse struct {
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Value        decimal.Decimal `json:"value"`
	ZipCode      string          `json:"zip_code"`
	Country      string          `json:"country"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Street       string          `json:"street"`
	Neighborhood string          `json:"neighborhood"`
}

// OpenSaleResponse is a get_sales item: the sale fields joined with the
// current product snapshot. Product fields are pointers because the join is
// best effort; when the product row is gone the sale is still returned with
// only the sale fields.
type OpenSaleResponse struct {
	SalesID        int              `json:"sales_id"`
	Name           string           `json:"name"`
	Quantity       int              `json:"quantity"`
	Value          decimal.Decimal  `json:"value"`
	ZipCode        string           `json:"zip_code"`
	Country        string           `json:"country"`
	City           string           `json:"city"`
	State          string           `json:"state"`
	Street         string           `json:"street"`
	Neighborhood   string           `json:"neighborhood"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Supplier       *string          `json:"supplier,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Description    *string          `json:"description,omitempty"`
	AvailableStock *int             `json:"available_stock,omitempty"`
}

type AddSaleResponse struct {
	Message string       `json:"message"`
	Sale    SaleResponse `json:"sale"`
}

type GetSalesResponse struct {
	Message string             `json:"message"`
	Sales   []OpenSaleResponse `json:"sales"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
