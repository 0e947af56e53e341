package usecase

import (
	"context"
	"strings"

	"go-online-store/internal/converter"
	"go-online-store/internal/delivery/dto"
	"go-online-store/internal/domain/entity"
	"go-online-store/internal/domain/repository"
	"go-online-store/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type ProductUsecase interface {
	AddProduct(ctx context.Context, req *dto.AddProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, name string) (*dto.ProductResponse, error)
	UpdateStock(ctx context.Context, req *dto.UpdateStockRequest) (*dto.StockChangeResponse, error)
	DeleteProduct(ctx context.Context, name string) (string, error)
}

type productUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	productCache *service.ProductCacheService
}

func NewProductUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	productCache *service.ProductCacheService,
) ProductUsecase {
	return &productUsecase{
		db:           db,
		log:          log,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		productCache: productCache,
	}
}

// titleCase normalizes a name the way every lookup expects it: trimmed,
// then title-cased word by word ("iphone 13" -> "Iphone 13").
func titleCase(raw string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(raw))
}

func (u *productUsecase) AddProduct(ctx context.Context, req *dto.AddProductRequest) (*dto.ProductResponse, error) {
	name := titleCase(req.Name)

	if req.Price.IsNegative() {
		return nil, validationError("The price cannot be negative")
	}

	existing, err := u.productRepo.FindByName(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to check for existing product %q: %+v", name, err)
		return nil, err
	}
	if existing != nil {
		return nil, duplicateError("Product already registered")
	}

	product := &entity.Product{
		Name:           name,
		Price:          req.Price.Round(2),
		Supplier:       req.Supplier,
		Category:       req.Category,
		Description:    req.Description,
		AvailableStock: req.AvailableStock,
	}

	if err := u.productRepo.Create(u.db.WithContext(ctx), product); err != nil {
		u.log.Errorf("Failed to insert product %q: %+v", name, err)
		return nil, err
	}

	u.productCache.Set(ctx, product)

	u.log.Infof("Product registered: name=%s, price=%s, stock=%d", product.Name, product.Price, product.AvailableStock)
	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetProduct(ctx context.Context, name string) (*dto.ProductResponse, error) {
	normalized := titleCase(name)

	if cached := u.productCache.Get(ctx, normalized); cached != nil {
		return converter.ProductToResponse(cached), nil
	}

	product, err := u.productRepo.FindByName(u.db.WithContext(ctx), normalized)
	if err != nil {
		u.log.Warnf("Failed to fetch product %q: %+v", normalized, err)
		return nil, err
	}
	if product == nil {
		return nil, notFoundError("The product does not exist")
	}

	u.productCache.Set(ctx, product)

	return converter.ProductToResponse(product), nil
}

// UpdateStock overwrites available stock unconditionally. The caller owns
// the new value; the sale workflow is the one place that computes it against
// the current stock, and it does so inside its own transaction.
func (u *productUsecase) UpdateStock(ctx context.Context, req *dto.UpdateStockRequest) (*dto.StockChangeResponse, error) {
	name := titleCase(req.Name)

	product, err := u.productRepo.FindByName(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to fetch product %q: %+v", name, err)
		return nil, err
	}
	if product == nil {
		return nil, notFoundError("The product does not exist")
	}

	oldStock := product.AvailableStock
	if err := u.productRepo.UpdateStock(u.db.WithContext(ctx), name, req.NewStock); err != nil {
		u.log.Errorf("Failed to update stock for %q: %+v", name, err)
		return nil, err
	}

	u.productCache.Invalidate(ctx, name)

	u.log.Infof("Stock updated: name=%s, old=%d, new=%d", name, oldStock, req.NewStock)
	return &dto.StockChangeResponse{
		Name:              name,
		OldAvailableStock: oldStock,
		NewAvailableStock: req.NewStock,
	}, nil
}

// DeleteProduct removes a product that was never sold. A sale row with the
// same name, open or closed, blocks the delete forever. Returns the
// normalized name for the response envelope.
func (u *productUsecase) DeleteProduct(ctx context.Context, name string) (string, error) {
	normalized := titleCase(name)

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := u.productRepo.FindByName(tx, normalized)
		if err != nil {
			return err
		}
		if product == nil {
			return notFoundError("The product does not exist")
		}

		sold, err := u.saleRepo.CountByProductName(tx, normalized)
		if err != nil {
			return err
		}
		if sold > 0 {
			return conflictError("%s has already been sold, it's not possible to delete it", normalized)
		}

		return u.productRepo.Delete(tx, normalized)
	})
	if err != nil {
		if _, ok := KindOf(err); !ok {
			u.log.Errorf("Failed to delete product %q: %+v", normalized, err)
		}
		return "", err
	}

	u.productCache.Invalidate(ctx, normalized)

	u.log.Infof("Product deleted: name=%s", normalized)
	return normalized, nil
}
