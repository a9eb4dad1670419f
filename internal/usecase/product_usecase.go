package usecase

import (
	"context"
	"errors"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/colorful-demo/commerce-gateway/internal/models"
	"github.com/colorful-demo/commerce-gateway/internal/repo/commercetools"
)

const (
	defaultLocale   = "en-US"
	defaultCurrency = "USD"

	// fallbackProductName is returned when no locale in the fallback chain
	// carries a name.
	fallbackProductName = "Product"
)

// localeFallbacks are tried, in order, after the requested locale.
var localeFallbacks = []string{"en-US", "en-GB"}

type ProductUsecase interface {
	// GetProductBySku resolves a product by SKU and normalizes it for the
	// given locale. Every failure mode apart from success is reported as
	// models.ErrNotFound; the underlying cause is logged here.
	GetProductBySku(ctx context.Context, sku, locale string) (*models.ProductData, error)
}

type productUsecase struct {
	commerce commercetools.Client
}

func NewProductUsecase(commerce commercetools.Client) ProductUsecase {
	return &productUsecase{
		commerce: commerce,
	}
}

func (uc *productUsecase) GetProductBySku(ctx context.Context, sku, locale string) (*models.ProductData, error) {
	if locale == "" {
		locale = defaultLocale
	}

	product, err := uc.commerce.ProductBySku(ctx, sku)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.Errorw(ctx, "failed to fetch product from commercetools", "sku", sku, "error", err)
		}
		return nil, models.ErrNotFound
	}

	variant := matchVariant(product, sku)

	imageURL := ""
	if len(variant.Images) > 0 {
		imageURL = variant.Images[0].URL
	}

	centAmount, currency := selectPrice(variant.Prices)

	chain := append([]string{locale}, localeFallbacks...)
	name := product.Name.Get(chain...)
	if name == "" {
		name = fallbackProductName
	}
	description := product.Description.Get(chain...)

	return &models.ProductData{
		ID:          product.ID,
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		Price:       float64(centAmount) / 100,
		Currency:    currency,
		Sku:         sku,
	}, nil
}

// matchVariant returns the master variant when its SKU matches, otherwise
// the first alternate variant with the exact SKU. The search filter should
// guarantee a match, but the master variant is the fallback if it does not.
func matchVariant(product *models.ProductProjection, sku string) models.ProductVariant {
	if product.MasterVariant.Sku == sku {
		return product.MasterVariant
	}
	for _, v := range product.Variants {
		if v.Sku == sku {
			return v
		}
	}
	return product.MasterVariant
}

// selectPrice prefers the USD entry, then the first entry. The discounted
// cent amount wins over the standard one when present. No prices at all
// resolves to zero in the default currency.
func selectPrice(prices []models.Price) (int64, string) {
	if len(prices) == 0 {
		return 0, defaultCurrency
	}

	price := prices[0]
	for _, p := range prices {
		if p.Value.CurrencyCode == defaultCurrency {
			price = p
			break
		}
	}

	if price.Discounted != nil {
		return price.Discounted.Value.CentAmount, price.Value.CurrencyCode
	}
	return price.Value.CentAmount, price.Value.CurrencyCode
}
