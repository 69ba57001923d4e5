package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/service"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/validate"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorEnvelopeTaxonomy(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"conflict", repository.ErrItemExists, http.StatusBadRequest, "Item already exists"},
		{"not found", repository.ErrItemNotFound, http.StatusNotFound, "Item does not exist"},
		{"no-op update", service.ErrNoValidFields, http.StatusBadRequest, "No valid fields to update"},
		{"stock guard", service.ErrInsufficientStock, http.StatusBadRequest, "Quantity is greater than current stock"},
		{"missing product", service.ErrProductMissing, http.StatusNotFound, "Product does not exist"},
		{"validation", &validate.ValidationError{Message: "Price cannot be negative"}, http.StatusBadRequest, "Price cannot be negative"},
		{"backend", errors.New("connection reset"), http.StatusInternalServerError, "connection reset"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := errorEnvelope(tc.err)
			assert.Equal(t, tc.status, env.StatusCode)
			assert.Equal(t, tc.message, env.Message)
		})
	}
}

// deadStore fails the test if any store method is reached.
type deadStore struct {
	t *testing.T
}

func (d *deadStore) fail() {
	d.t.Helper()
	d.t.Fatal("store must not be called")
}

func (d *deadStore) Exists(context.Context, repository.Key) (bool, error) { d.fail(); return false, nil }
func (d *deadStore) Create(context.Context, any) error                    { d.fail(); return nil }
func (d *deadStore) Get(context.Context, repository.Key, any) error       { d.fail(); return nil }
func (d *deadStore) GetAll(context.Context, any) error                    { d.fail(); return nil }
func (d *deadStore) QueryByPartition(context.Context, string, any) error  { d.fail(); return nil }
func (d *deadStore) Update(context.Context, repository.Key, []validate.Field, any) error {
	d.fail()
	return nil
}
func (d *deadStore) Delete(context.Context, repository.Key) error { d.fail(); return nil }

func TestCreateValidationFailureNeverTouchesStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	products := service.NewProductService(&deadStore{t: t}, nil, nil, nil, zap.NewNop())
	h := NewProductHandler(products, zap.NewNop())

	router := gin.New()
	router.POST("/products", h.Create)

	body := `{"product_id":"CPU001","product_name":"Ryzen","category":"cpu","price":-1,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, "Price cannot be negative", env.Message)
}

func TestUpdateNoOpEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	products := service.NewProductService(&deadStore{t: t}, nil, nil, nil, zap.NewNop())
	h := NewProductHandler(products, zap.NewNop())

	router := gin.New()
	router.PUT("/products/:id", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/products/CPU001", strings.NewReader(`{"color":"red"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "No valid fields to update", env.Message)
}
