package repository

import (
	"errors"

	"go-online-store/internal/domain/entity"
	domainRepo "go-online-store/internal/domain/repository"

	"gorm.io/gorm"
)

type productRepository struct{}

func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(db *gorm.DB, product *entity.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) FindByName(db *gorm.DB, name string) (*entity.Product, error) {
	var product entity.Product
	err := db.Where("name = ?", name).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateStock(db *gorm.DB, name string, newStock int) error {
	return db.Model(&entity.Product{}).
		Where("name = ?", name).
		Update("available_stock", newStock).Error
}

// DebitStock atomically decrements available stock ONLY while enough units
// remain. Returns affected rows: 1 = debited, 0 = insufficient stock (two
// concurrent sales cannot both win the last units).
func (r *productRepository) DebitStock(db *gorm.DB, name string, quantity int) (int64, error) {
	result := db.Model(&entity.Product{}).
		Where("name = ? AND available_stock >= ?", name, quantity).
		Update("available_stock", gorm.Expr("available_stock - ?", quantity))
	return result.RowsAffected, result.Error
}

func (r *productRepository) Delete(db *gorm.DB, name string) error {
	return db.Where("name = ?", name).Delete(&entity.Product{}).Error
}
