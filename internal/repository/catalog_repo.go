package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
)

// CatalogRepository is the read-only view of the product catalog. Checkout
// never writes here.
type CatalogRepository struct {
	DB *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// GetProduct returns the product row or (nil, nil) when it does not exist.
func (r *CatalogRepository) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	q := `SELECT product_id, name, image_urls FROM products WHERE product_id=$1`

	var p model.Product
	err := r.DB.QueryRow(ctx, q, productID).Scan(&p.ProductID, &p.Name, &p.ImageURLs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetVariant returns the variant row or (nil, nil) when it does not exist.
func (r *CatalogRepository) GetVariant(ctx context.Context, variantID string) (*model.Variant, error) {
	q := `
		SELECT variant_id, product_id, name, price, stock, maximum_in_order
		FROM variants
		WHERE variant_id=$1
	`

	var v model.Variant
	err := r.DB.QueryRow(ctx, q, variantID).Scan(
		&v.VariantID,
		&v.ProductID,
		&v.Name,
		&v.Price,
		&v.Stock,
		&v.MaximumInOrder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
