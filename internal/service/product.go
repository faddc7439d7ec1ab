package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/pkg/trm"
)

// CatalogPageSize is the number of base products per catalog page.
const CatalogPageSize = 15

type ProductRepo interface {
	SaveProduct(ctx context.Context, baseSku, name string) error
	SaveVariants(ctx context.Context, variants []entities.ProductVariant) error
	Products(ctx context.Context, cursor entities.Cursor, limit int) (entities.ProductsPage, error)
	GetVariant(ctx context.Context, baseSku, variantSku string) (entities.ProductVariant, error)
	UpdateProduct(ctx context.Context, baseSku string, upd entities.ProductUpdate) error
	UpdateVariant(ctx context.Context, baseSku, variantSku string, upd entities.VariantUpdate) error
	DeleteProduct(ctx context.Context, baseSku string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
	DeletePrefix(prefix string)
}

type productService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ProductRepo
	cache     Cache
}

func NewProductService(logger *slog.Logger, txManager trm.Manager, repo ProductRepo, cache Cache) *productService {
	return &productService{
		logger:    logger.With(slog.String("service", "product")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

// CreateProduct stores the base product and all its variants atomically.
func (s *productService) CreateProduct(ctx context.Context, in entities.CreateProduct) (entities.Product, error) {
	if len(in.Variants) == 0 {
		return entities.Product{}, entities.ErrNoVariants
	}
	if len(in.Variants) > entities.MaxVariants {
		return entities.Product{}, entities.ErrTooManyVariants
	}

	product := entities.Product{
		BaseSku:  entities.NormalizeSku(in.Sku),
		Name:     in.Name,
		Variants: make([]entities.ProductVariant, 0, len(in.Variants)),
	}

	seen := make(map[entities.ProductSize]struct{}, len(in.Variants))
	for _, v := range in.Variants {
		if _, ok := seen[v.Size]; ok {
			return entities.Product{}, entities.ErrDuplicateVariant
		}
		seen[v.Size] = struct{}{}

		product.Variants = append(product.Variants, entities.ProductVariant{
			BaseSku:    product.BaseSku,
			VariantSku: entities.VariantSku(product.BaseSku, v.Size),
			Price:      v.Price,
			Size:       v.Size,
			Type:       v.Type,
		})
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveProduct(ctx, product.BaseSku, product.Name); err != nil {
			return err
		}
		return s.repo.SaveVariants(ctx, product.Variants)
	})
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.DebugContext(ctx, "product created",
		slog.String("base_sku", product.BaseSku),
		slog.Int("variants", len(product.Variants)),
	)
	return product, nil
}

func (s *productService) Products(ctx context.Context, cursor entities.Cursor) (entities.ProductsPage, error) {
	return s.repo.Products(ctx, cursor, CatalogPageSize)
}

// GetVariant serves order pricing; hits are answered from the cache.
func (s *productService) GetVariant(ctx context.Context, baseSku, variantSku string) (entities.ProductVariant, error) {
	key := variantKey(baseSku, variantSku)
	if data, ok := s.cache.Get(key); ok {
		var v entities.ProductVariant
		err := v.Unmarshal(data)
		if err == nil {
			return v, nil
		}
		s.logger.WarnContext(ctx, "failed to unmarshal cached variant", slog.String("key", key), slog.Any("error", err))
	}

	v, err := s.repo.GetVariant(ctx, baseSku, variantSku)
	if err != nil {
		return entities.ProductVariant{}, err
	}

	data, err := v.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal variant", slog.String("key", key), slog.Any("error", err))
		return v, nil
	}
	s.cache.Set(key, data)
	return v, nil
}

func (s *productService) UpdateProduct(ctx context.Context, baseSku string, upd entities.ProductUpdate) error {
	return s.repo.UpdateProduct(ctx, baseSku, upd)
}

func (s *productService) UpdateVariant(ctx context.Context, baseSku, variantSku string, upd entities.VariantUpdate) error {
	if err := s.repo.UpdateVariant(ctx, baseSku, variantSku, upd); err != nil {
		return err
	}
	s.cache.Delete(variantKey(baseSku, variantSku))
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, baseSku string) error {
	if err := s.repo.DeleteProduct(ctx, baseSku); err != nil {
		return err
	}
	s.cache.DeletePrefix(baseSku + "/")
	return nil
}

func variantKey(baseSku, variantSku string) string {
	return fmt.Sprintf("%s/%s", baseSku, variantSku)
}
