package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type productRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveProduct inserts the base row of a product.
func (r *productRepo) SaveProduct(ctx context.Context, baseSku, name string) error {
	query, args := r.qb.Insert("products").
		Columns("base_sku", "variant_sku", "name").
		Values(baseSku, baseSku, name).
		Suffix("ON CONFLICT (base_sku, variant_sku) DO NOTHING").
		MustSql()

	res, err := trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductExists
	}
	return nil
}

func (r *productRepo) SaveVariants(ctx context.Context, variants []entities.ProductVariant) error {
	if len(variants) == 0 {
		return nil
	}

	ib := r.qb.Insert("products").Columns("base_sku", "variant_sku", "price", "size", "type")
	for _, v := range variants {
		ib = ib.Values(v.BaseSku, v.VariantSku, v.Price, string(v.Size), nullString(v.Type))
	}
	query, args := ib.MustSql()

	if _, err := trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return entities.ErrProductExists
		}
		return fmt.Errorf("failed to save variants: %w", err)
	}
	return nil
}

type productKey struct {
	BaseSku string `json:"baseSku"`
}

// Products pages over base products ordered by sku, each with its variants.
func (r *productRepo) Products(ctx context.Context, cursor entities.Cursor, limit int) (entities.ProductsPage, error) {
	q := trm.QuerierFrom(ctx, r.db)

	sb := r.qb.Select(productColumns...).
		From("products").
		Where("variant_sku = base_sku").
		OrderBy("base_sku").
		Limit(uint64(limit + 1))

	if cursor != "" {
		var key productKey
		if err := decodeCursor(cursor, &key); err != nil {
			return entities.ProductsPage{}, err
		}
		sb = sb.Where(sq.Gt{"base_sku": key.BaseSku})
	}

	query, args := sb.MustSql()
	var bases []Product
	if err := q.SelectContext(ctx, &bases, query, args...); err != nil {
		return entities.ProductsPage{}, fmt.Errorf("failed to select products: %w", err)
	}

	var page entities.ProductsPage
	if len(bases) > limit {
		bases = bases[:limit]
		next, err := encodeCursor(productKey{BaseSku: bases[len(bases)-1].BaseSku})
		if err != nil {
			return entities.ProductsPage{}, err
		}
		page.Next = next
	}
	if len(bases) == 0 {
		page.Products = []entities.Product{}
		return page, nil
	}

	skus := make([]string, 0, len(bases))
	for _, b := range bases {
		skus = append(skus, b.BaseSku)
	}

	query, args = r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"base_sku": skus}).
		Where("variant_sku <> base_sku").
		OrderBy("base_sku", "variant_sku").
		MustSql()

	var variants []Product
	if err := q.SelectContext(ctx, &variants, query, args...); err != nil {
		return entities.ProductsPage{}, fmt.Errorf("failed to select variants: %w", err)
	}

	byBase := make(map[string][]entities.ProductVariant, len(bases))
	for _, v := range variants {
		byBase[v.BaseSku] = append(byBase[v.BaseSku], VariantToEntity(v))
	}

	page.Products = make([]entities.Product, 0, len(bases))
	for _, b := range bases {
		vs := byBase[b.BaseSku]
		if vs == nil {
			vs = []entities.ProductVariant{}
		}
		page.Products = append(page.Products, entities.Product{
			BaseSku:  b.BaseSku,
			Name:     nullStringToString(b.Name),
			Variants: vs,
		})
	}
	return page, nil
}

func (r *productRepo) GetVariant(ctx context.Context, baseSku, variantSku string) (entities.ProductVariant, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"base_sku": baseSku, "variant_sku": variantSku}).
		Where("variant_sku <> base_sku").
		MustSql()

	var row Product
	err := trm.QuerierFrom(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ProductVariant{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.ProductVariant{}, fmt.Errorf("failed to get variant: %w", err)
	}
	return VariantToEntity(row), nil
}

func (r *productRepo) UpdateProduct(ctx context.Context, baseSku string, upd entities.ProductUpdate) error {
	if upd.Name == nil {
		return entities.ErrEmptyUpdate
	}

	query, args := r.qb.Update("products").
		Set("name", *upd.Name).
		Where(sq.Eq{"base_sku": baseSku, "variant_sku": baseSku}).
		MustSql()

	return r.execOne(ctx, query, args, "failed to update product")
}

func (r *productRepo) UpdateVariant(ctx context.Context, baseSku, variantSku string, upd entities.VariantUpdate) error {
	if upd.Size != nil {
		return entities.ErrSizeImmutable
	}

	ub := r.qb.Update("products").
		Where(sq.Eq{"base_sku": baseSku, "variant_sku": variantSku}).
		Where("variant_sku <> base_sku")

	if upd.Price == nil && upd.Type == nil {
		return entities.ErrEmptyUpdate
	}
	if upd.Price != nil {
		ub = ub.Set("price", *upd.Price)
	}
	if upd.Type != nil {
		ub = ub.Set("type", nullString(*upd.Type))
	}

	query, args := ub.MustSql()
	return r.execOne(ctx, query, args, "failed to update variant")
}

// DeleteProduct removes the base row with all of its variants.
func (r *productRepo) DeleteProduct(ctx context.Context, baseSku string) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"base_sku": baseSku}).
		MustSql()

	return r.execOne(ctx, query, args, "failed to delete product")
}

func (r *productRepo) execOne(ctx context.Context, query string, args []any, msg string) error {
	res, err := trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}
