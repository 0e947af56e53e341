package repository

import (
	"go-online-store/internal/domain/entity"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(db *gorm.DB, product *entity.Product) error
	FindByName(db *gorm.DB, name string) (*entity.Product, error)
	UpdateStock(db *gorm.DB, name string, newStock int) error
	DebitStock(db *gorm.DB, name string, quantity int) (int64, error)
	Delete(db *gorm.DB, name string) error
}
