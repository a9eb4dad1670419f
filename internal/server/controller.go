package server

import (
	"errors"
	"net/http"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/colorful-demo/commerce-gateway/internal/models"
	"github.com/colorful-demo/commerce-gateway/internal/usecase"
)

// productCacheControl allows shared caches to keep successful lookups for
// five minutes and serve stale entries while revalidating.
const productCacheControl = "public, s-maxage=300, stale-while-revalidate=600"

type ProductRequest struct {
	Sku    string `query:"sku" validate:"required"`
	Locale string `query:"locale" validate:"omitempty,bcp47_language_tag"`
}

type Controller interface {
	GetProduct(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct {
	productUsecase usecase.ProductUsecase
}

func NewHandler(productUsecase usecase.ProductUsecase) Controller {
	return &controller{
		productUsecase: productUsecase,
	}
}

func (h *controller) GetProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	if err := c.Validate(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Field() == "sku" {
			return echo.NewHTTPError(http.StatusBadRequest, "sku is required")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid locale parameter")
	}

	ctx := c.Request().Context()
	product, err := h.productUsecase.GetProductBySku(ctx, req.Sku, req.Locale)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		// The cause stays in the logs; the client gets a generic message.
		log.Errorw(ctx, "product lookup failed", "sku", req.Sku, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch product")
	}

	c.Response().Header().Set("Cache-Control", productCacheControl)
	return c.JSON(http.StatusOK, product)
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "commerce-gateway",
	})
}
