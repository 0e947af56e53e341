package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus represents the lifecycle status of a sale
type SaleStatus string

const (
	SaleStatusOpen   SaleStatus = "open"
	SaleStatusClosed SaleStatus = "closed"
)

// Sale records units of a product sold to a shipping address.
// Name is a denormalized copy of the product name at sale time, not a
// foreign key: the product may be stock-adjusted afterwards, but its
// deletion is blocked while any sale row carries its name.
type Sale struct {
	SalesID      int             `gorm:"primaryKey;autoIncrement;column:sales_id"`
	Name         string          `gorm:"type:varchar(30);not null;index"`
	Quantity     int             `gorm:"not null"`
	Value        decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status       SaleStatus      `gorm:"type:varchar(10);not null;default:'open';column:sale_status;index"`
	SaleDate     string          `gorm:"type:varchar(10);column:sale_date"`
	ZipCode      string          `gorm:"type:varchar(15)"`
	Country      string          `gorm:"type:varchar(50)"`
	City         string          `gorm:"type:varchar(50)"`
	State        string          `gorm:"type:varchar(50)"`
	Street       string          `gorm:"type:varchar(50)"`
	Neighborhood string          `gorm:"type:varchar(20)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

func (Sale) TableName() string {
	return "sales"
}

// IsOpen checks if the sale is still open
func (s *Sale) IsOpen() bool {
	return s.Status == SaleStatusOpen
}

// IsClosed checks if the sale has been closed
func (s *Sale) IsClosed() bool {
	return s.Status == SaleStatusClosed
}

// Close moves the sale to its terminal status
func (s *Sale) Close() {
	s.Status = SaleStatusClosed
}
