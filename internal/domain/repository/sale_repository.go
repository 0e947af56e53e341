package repository

import (
	"go-online-store/internal/domain/entity"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(db *gorm.DB, sale *entity.Sale) error
	FindByID(db *gorm.DB, salesID int) (*entity.Sale, error)
	FindOpen(db *gorm.DB) ([]entity.Sale, error)
	CountByProductName(db *gorm.DB, name string) (int64, error)
	CloseSale(db *gorm.DB, salesID int) (int64, error)
	DeleteOpen(db *gorm.DB, salesID int) (int64, error)
}
