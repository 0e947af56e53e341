package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable item with a price and stock count.
// Name is the natural key: every lookup in the sale workflow goes through it.
type Product struct {
	ProductID      int             `gorm:"primaryKey;autoIncrement;column:product_id"`
	Name           string          `gorm:"type:varchar(30);uniqueIndex;not null"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Supplier       string          `gorm:"type:varchar(100)"`
	Category       string          `gorm:"type:varchar(20)"`
	Description    string          `gorm:"type:varchar(500)"`
	AvailableStock int             `gorm:"not null;default:0"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
