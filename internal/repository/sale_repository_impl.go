package repository

import (
	"errors"

	"go-online-store/internal/domain/entity"
	domainRepo "go-online-store/internal/domain/repository"

	"gorm.io/gorm"
)

type saleRepository struct{}

func NewSaleRepository() domainRepo.SaleRepository {
	return &saleRepository{}
}

func (r *saleRepository) Create(db *gorm.DB, sale *entity.Sale) error {
	return db.Create(sale).Error
}

func (r *saleRepository) FindByID(db *gorm.DB, salesID int) (*entity.Sale, error) {
	var sale entity.Sale
	err := db.Where("sales_id = ?", salesID).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) FindOpen(db *gorm.DB) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := db.Where("sale_status = ?", entity.SaleStatusOpen).
		Order("sales_id ASC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) CountByProductName(db *gorm.DB, name string) (int64, error) {
	var count int64
	err := db.Model(&entity.Sale{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

// CloseSale atomically closes a sale ONLY if it is not already closed.
// Returns affected rows: 1 = closed, 0 = already closed (prevents a
// double-close race).
func (r *saleRepository) CloseSale(db *gorm.DB, salesID int) (int64, error) {
	result := db.Model(&entity.Sale{}).
		Where("sales_id = ? AND sale_status <> ?", salesID, entity.SaleStatusClosed).
		Update("sale_status", entity.SaleStatusClosed)
	return result.RowsAffected, result.Error
}

// DeleteOpen removes a sale ONLY while it is still open.
// Returns affected rows: 1 = deleted, 0 = sale was closed in the meantime.
func (r *saleRepository) DeleteOpen(db *gorm.DB, salesID int) (int64, error) {
	result := db.Where("sales_id = ? AND sale_status <> ?", salesID, entity.SaleStatusClosed).
		Delete(&entity.Sale{})
	return result.RowsAffected, result.Error
}
