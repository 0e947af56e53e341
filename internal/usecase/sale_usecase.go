package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go-online-store/internal/converter"
	"go-online-store/internal/delivery/dto"
	"go-online-store/internal/domain/entity"
	"go-online-store/internal/domain/repository"
	"go-online-store/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// brazilZipCodePattern accepts nnnnn-nnn and nnnnn-nnnn.
var brazilZipCodePattern = regexp.MustCompile(`^[0-9]{5}-[0-9]{3,4}$`)

const saleDateLayout = "2006-01-02"

type SaleUsecase interface {
	AddSale(ctx context.Context, req *dto.AddSaleRequest) (*dto.SaleResponse, error)
	CloseSale(ctx context.Context, salesID int) error
	DeleteSale(ctx context.Context, salesID int) error
	GetOpenSales(ctx context.Context) ([]dto.OpenSaleResponse, error)
}

type saleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	productCache *service.ProductCacheService
}

func NewSaleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	productCache *service.ProductCacheService,
) SaleUsecase {
	return &saleUsecase{
		db:           db,
		log:          log,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		productCache: productCache,
	}
}

// AddSale records a sale and debits product stock in one transaction.
//
// Flow:
// 1. Normalize the name and address, validate the zip code for Brazil
// 2. In a transaction: find the product, check stock, debit it with a
//    guarded UPDATE, insert the sale row
// 3. Invalidate the product cache entry after commit
//
// The guarded debit (available_stock >= quantity in the WHERE clause) is the
// linearization point: two concurrent sales for the last units cannot both
// succeed, and any failure rolls the whole transaction back so a debited
// stock without a sale row is never observable.
func (u *saleUsecase) AddSale(ctx context.Context, req *dto.AddSaleRequest) (*dto.SaleResponse, error) {
	name := titleCase(req.Name)
	country := titleCase(req.Country)
	zipCode := strings.TrimSpace(req.ZipCode)

	if country == "" {
		return nil, validationError("The country must be informed")
	}
	if country == "Brazil" || country == "Brasil" {
		if !brazilZipCodePattern.MatchString(zipCode) {
			return nil, validationError("Incorrect zip code, expected format: nnnnn-nnn or nnnnn-nnnn")
		}
	}

	var sale *entity.Sale
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := u.productRepo.FindByName(tx, name)
		if err != nil {
			return err
		}
		if product == nil {
			return notFoundError("The product does not exist")
		}
		if req.Quantity > product.AvailableStock {
			return insufficientStockError("There are only %d unit(s) available in stock", product.AvailableStock)
		}

		rows, err := u.productRepo.DebitStock(tx, name, req.Quantity)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the race to a concurrent sale; report the stock as it is now.
			current, err := u.productRepo.FindByName(tx, name)
			if err != nil {
				return err
			}
			remaining := 0
			if current != nil {
				remaining = current.AvailableStock
			}
			return insufficientStockError("There are only %d unit(s) available in stock", remaining)
		}

		value := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity))).Round(2)

		sale = &entity.Sale{
			Name:         name,
			Quantity:     req.Quantity,
			Value:        value,
			Status:       entity.SaleStatusOpen,
			SaleDate:     time.Now().Format(saleDateLayout),
			ZipCode:      zipCode,
			Country:      country,
			City:         titleCase(req.City),
			State:        titleCase(req.State),
			Street:       titleCase(req.Street),
			Neighborhood: titleCase(req.Neighborhood),
		}

		return u.saleRepo.Create(tx, sale)
	})
	if err != nil {
		if _, ok := KindOf(err); !ok {
			u.log.Errorf("Failed to record sale for %q: %+v", name, err)
		}
		return nil, err
	}

	u.productCache.Invalidate(ctx, name)

	u.log.Infof("Sale recorded: id=%d, product=%s, quantity=%d, value=%s", sale.SalesID, name, sale.Quantity, sale.Value)
	return converter.SaleToResponse(sale), nil
}

// CloseSale moves a sale to its terminal closed status. There is no reopen.
func (u *saleUsecase) CloseSale(ctx context.Context, salesID int) error {
	sale, err := u.saleRepo.FindByID(u.db.WithContext(ctx), salesID)
	if err != nil {
		u.log.Warnf("Failed to fetch sale %d: %+v", salesID, err)
		return err
	}
	if sale == nil {
		return notFoundError("The sale %d does not exist", salesID)
	}
	if sale.IsClosed() {
		return conflictError("The sale %d is already closed", salesID)
	}

	rows, err := u.saleRepo.CloseSale(u.db.WithContext(ctx), salesID)
	if err != nil {
		u.log.Errorf("Failed to close sale %d: %+v", salesID, err)
		return err
	}
	if rows == 0 {
		return conflictError("The sale %d is already closed", salesID)
	}

	u.log.Infof("Sale closed: id=%d", salesID)
	return nil
}

// DeleteSale removes a sale while it is still open. The debited stock is NOT
// credited back; cancelled sales are reconciled through a manual stock
// update, never automatically.
func (u *saleUsecase) DeleteSale(ctx context.Context, salesID int) error {
	sale, err := u.saleRepo.FindByID(u.db.WithContext(ctx), salesID)
	if err != nil {
		u.log.Warnf("Failed to fetch sale %d: %+v", salesID, err)
		return err
	}
	if sale == nil {
		return notFoundError("The sale %d does not exist", salesID)
	}
	if sale.IsClosed() {
		return conflictError("The sale %d is closed, it is not possible to delete", salesID)
	}

	rows, err := u.saleRepo.DeleteOpen(u.db.WithContext(ctx), salesID)
	if err != nil {
		u.log.Errorf("Failed to delete sale %d: %+v", salesID, err)
		return err
	}
	if rows == 0 {
		return conflictError("The sale %d is closed, it is not possible to delete", salesID)
	}

	u.log.Infof("Sale deleted: id=%d", salesID)
	return nil
}

// GetOpenSales returns every open sale joined with the current product
// snapshot. The join is in-process and best effort: a sale whose product
// row has vanished is still returned with only the sale fields.
func (u *saleUsecase) GetOpenSales(ctx context.Context) ([]dto.OpenSaleResponse, error) {
	sales, err := u.saleRepo.FindOpen(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list open sales: %+v", err)
		return nil, err
	}
	if len(sales) == 0 {
		return nil, notFoundError("There are no open sales")
	}

	items := make([]dto.OpenSaleResponse, 0, len(sales))
	for i := range sales {
		item := converter.SaleToOpenSaleResponse(&sales[i])

		product, err := u.lookupProduct(ctx, sales[i].Name)
		if err != nil {
			u.log.Warnf("Product join failed for sale %d (%s): %+v", sales[i].SalesID, sales[i].Name, err)
		}
		converter.MergeProductSnapshot(item, product)

		items = append(items, *item)
	}

	return items, nil
}

func (u *saleUsecase) lookupProduct(ctx context.Context, name string) (*entity.Product, error) {
	if cached := u.productCache.Get(ctx, name); cached != nil {
		return cached, nil
	}

	product, err := u.productRepo.FindByName(u.db.WithContext(ctx), name)
	if err != nil {
		return nil, err
	}
	if product != nil {
		u.productCache.Set(ctx, product)
	}
	return product, nil
}
