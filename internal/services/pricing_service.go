package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
)

// CatalogReader is the read-only catalog lookup the pricer depends on.
// Implementations return (nil, nil) for a miss.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	GetVariant(ctx context.Context, variantID string) (*model.Variant, error)
}

// PricingService turns untrusted cart input into priced order lines. It is
// the only source of truth for prices: nothing client-supplied beyond ids and
// quantities ever reaches a total.
type PricingService struct {
	Catalog CatalogReader
}

func NewPricingService(catalog CatalogReader) *PricingService {
	return &PricingService{Catalog: catalog}
}

// maxLineQuantity bounds a single cart line. Anything above it is treated as
// malformed input, keeping unitPrice*quantity far away from int64 wraparound.
const maxLineQuantity = math.MaxInt32

type normalizedItem struct {
	ProductID string
	VariantID string
	Quantity  int64
}

// PriceCart normalizes, validates and prices the cart. Malformed lines are
// dropped, duplicates merged; every surviving line is priced from the catalog
// fetched at call time.
func (s *PricingService) PriceCart(ctx context.Context, items []model.CheckoutItemInput) ([]model.OrderLine, int64, error) {
	normalized := normalizeItems(items)
	if len(normalized) == 0 {
		return nil, 0, ErrEmptyCart
	}

	type productResult struct {
		idx     int
		product *model.Product
		err     error
	}
	type variantResult struct {
		idx     int
		variant *model.Variant
		err     error
	}

	productCh := make(chan productResult, len(normalized))
	variantCh := make(chan variantResult, len(normalized))

	for i, item := range normalized {
		go func(idx int, productID string) {
			p, err := s.Catalog.GetProduct(ctx, productID)
			productCh <- productResult{idx: idx, product: p, err: err}
		}(i, item.ProductID)

		go func(idx int, variantID string) {
			v, err := s.Catalog.GetVariant(ctx, variantID)
			variantCh <- variantResult{idx: idx, variant: v, err: err}
		}(i, item.VariantID)
	}

	products := make([]*model.Product, len(normalized))
	variants := make([]*model.Variant, len(normalized))
	var fetchErr error
	for range normalized {
		pr := <-productCh
		vr := <-variantCh
		if pr.err != nil && fetchErr == nil {
			fetchErr = pr.err
		}
		if vr.err != nil && fetchErr == nil {
			fetchErr = vr.err
		}
		products[pr.idx] = pr.product
		variants[vr.idx] = vr.variant
	}
	if fetchErr != nil {
		return nil, 0, fmt.Errorf("catalog lookup: %w", fetchErr)
	}

	// validate in input order so failures are deterministic
	lines := make([]model.OrderLine, 0, len(normalized))
	var subtotal int64
	for i, item := range normalized {
		line, err := buildLine(item, products[i], variants[i])
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, line)
		next := subtotal + line.LineTotal
		if next < subtotal {
			return nil, 0, fmt.Errorf("variant %s: %w", item.VariantID, ErrInvalidQuantity)
		}
		subtotal = next
	}

	return lines, subtotal, nil
}

// normalizeItems trims ids, drops malformed entries and merges duplicate
// (productId, variantId) pairs by summing quantities. First-occurrence order
// is preserved so identical input yields identical output.
func normalizeItems(items []model.CheckoutItemInput) []normalizedItem {
	type key struct{ productID, variantID string }

	index := make(map[key]int)
	out := make([]normalizedItem, 0, len(items))
	for _, it := range items {
		productID := strings.TrimSpace(it.ProductID)
		variantID := strings.TrimSpace(it.VariantID)
		if productID == "" || variantID == "" {
			continue
		}
		qty := it.Quantity
		if math.IsNaN(qty) || math.IsInf(qty, 0) || qty <= 0 || qty != math.Trunc(qty) || qty > maxLineQuantity {
			continue
		}

		k := key{productID, variantID}
		if i, ok := index[k]; ok {
			out[i].Quantity += int64(qty)
			continue
		}
		index[k] = len(out)
		out = append(out, normalizedItem{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  int64(qty),
		})
	}
	return out
}

func buildLine(item normalizedItem, product *model.Product, variant *model.Variant) (model.OrderLine, error) {
	if product == nil {
		return model.OrderLine{}, fmt.Errorf("product %s: %w", item.ProductID, ErrProductNotFound)
	}
	if variant == nil {
		return model.OrderLine{}, fmt.Errorf("variant %s: %w", item.VariantID, ErrVariantNotFound)
	}
	if variant.ProductID != product.ProductID {
		return model.OrderLine{}, fmt.Errorf("variant %s: %w", item.VariantID, ErrVariantMismatch)
	}
	if variant.Stock != nil && item.Quantity > *variant.Stock {
		return model.OrderLine{}, fmt.Errorf("variant %s: %w", item.VariantID, ErrInvalidQuantity)
	}
	if variant.MaximumInOrder != nil && item.Quantity > *variant.MaximumInOrder {
		return model.OrderLine{}, fmt.Errorf("variant %s: %w", item.VariantID, ErrInvalidQuantity)
	}
	if variant.Price <= 0 {
		return model.OrderLine{}, fmt.Errorf("variant %s: %w", item.VariantID, ErrInvalidPrice)
	}
	lineTotal := variant.Price * item.Quantity
	if lineTotal/item.Quantity != variant.Price {
		// the multiply wrapped; the line can never be priced honestly
		return model.OrderLine{}, fmt.Errorf("variant %s: %w", item.VariantID, ErrInvalidQuantity)
	}

	imageURL := ""
	if len(product.ImageURLs) > 0 {
		imageURL = product.ImageURLs[0]
	}

	return model.OrderLine{
		ProductID:   item.ProductID,
		VariantID:   item.VariantID,
		Quantity:    item.Quantity,
		UnitPrice:   variant.Price,
		LineTotal:   lineTotal,
		ProductName: product.Name,
		VariantName: variant.Name,
		ImageURL:    imageURL,
	}, nil
}
