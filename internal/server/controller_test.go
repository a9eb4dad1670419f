package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorful-demo/commerce-gateway/internal/models"
	pkgmdw "github.com/colorful-demo/commerce-gateway/internal/server/middleware"
)

type stubProductUsecase struct {
	product *models.ProductData
	err     error

	gotSku    string
	gotLocale string
}

func (s *stubProductUsecase) GetProductBySku(ctx context.Context, sku, locale string) (*models.ProductData, error) {
	s.gotSku = sku
	s.gotLocale = locale
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func newTestServer(uc *stubProductUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	handler := NewHandler(uc)
	e.GET("/health", handler.Health)
	e.GET("/api/v1/products", handler.GetProduct)
	return e
}

func TestGetProductMissingSku(t *testing.T) {
	e := newTestServer(&stubProductUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "sku is required", body.Error)
}

func TestGetProductInvalidLocale(t *testing.T) {
	e := newTestServer(&stubProductUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sku=SKU-1&locale=not+a+locale", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid locale parameter", body.Error)
	assert.NotContains(t, rec.Body.String(), "bcp47")
}

func TestGetProductNotFound(t *testing.T) {
	e := newTestServer(&stubProductUsecase{err: models.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sku=SKU-404", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "product not found", body.Error)
}

func TestGetProductResolverFailure(t *testing.T) {
	e := newTestServer(&stubProductUsecase{err: errors.New("upstream exploded")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sku=SKU-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed to fetch product", body.Error)
	assert.NotContains(t, rec.Body.String(), "upstream exploded")
}

func TestGetProduct(t *testing.T) {
	uc := &stubProductUsecase{product: &models.ProductData{
		ID:       "prod_1",
		Name:     "Chair",
		ImageURL: "https://img/1.jpg",
		Price:    25.0,
		Currency: "USD",
		Sku:      "SKU-1",
	}}
	e := newTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sku=SKU-1&locale=de-DE", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, s-maxage=300, stale-while-revalidate=600", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "SKU-1", uc.gotSku)
	assert.Equal(t, "de-DE", uc.gotLocale)

	var body models.ProductData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, *uc.product, body)
}

func TestHealth(t *testing.T) {
	e := newTestServer(&stubProductUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
