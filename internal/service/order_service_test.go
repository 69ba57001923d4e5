package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProducts struct {
	products map[string]*domain.Product
}

func (f *fakeProducts) Get(_ context.Context, productID string) (*domain.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return p, nil
}

func orderServiceFixture() (*OrderService, *fakeStore) {
	store := newFakeStore("order_id")
	products := &fakeProducts{products: map[string]*domain.Product{
		"CPU001": {
			ProductID:   "CPU001",
			ProductName: "Ryzen 7 7800X3D",
			Category:    "cpu",
			Price:       10.00,
			Quantity:    5,
		},
	}}
	svc := NewOrderService(store, products, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2025, 3, 6, 14, 30, 0, 0, time.UTC)
	}
	return svc, store
}

func placeRequest() domain.PlaceOrderRequest {
	return domain.PlaceOrderRequest{
		ProductID:     "CPU001",
		UserID:        "user-42",
		ContactNumber: "09171234567",
		Quantity:      3,
	}
}

func TestPlaceOrderComputesTotalPrice(t *testing.T) {
	svc, _ := orderServiceFixture()

	order, err := svc.PlaceOrder(context.Background(), placeRequest())
	require.NoError(t, err)
	assert.Equal(t, 30.00, order.TotalPrice)
	assert.Equal(t, domain.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, "Ryzen 7 7800X3D", order.ProductName)
	assert.Equal(t, "2025-03-06 14:30:00", order.Datetime)
}

func TestPlaceOrderKeepsSuppliedTotalPrice(t *testing.T) {
	svc, _ := orderServiceFixture()

	req := placeRequest()
	req.TotalPrice = 25.00
	order, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 25.00, order.TotalPrice)
}

func TestPlaceOrderGeneratesID(t *testing.T) {
	svc, _ := orderServiceFixture()

	order, err := svc.PlaceOrder(context.Background(), placeRequest())
	require.NoError(t, err)

	wantMillis := time.Date(2025, 3, 6, 14, 30, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, "ORD"+strconv.FormatInt(wantMillis, 10), order.OrderID)

	req := placeRequest()
	req.OrderID = "ORD-custom"
	order, err = svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ORD-custom", order.OrderID)
}

func TestPlaceOrderStockGuard(t *testing.T) {
	svc, store := orderServiceFixture()

	req := placeRequest()
	req.Quantity = 6 // stock is 5
	_, err := svc.PlaceOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Zero(t, store.createCalls, "no order may be written on a failed stock check")
}

func TestPlaceOrderExactStockAllowed(t *testing.T) {
	svc, _ := orderServiceFixture()

	req := placeRequest()
	req.Quantity = 5
	_, err := svc.PlaceOrder(context.Background(), req)
	assert.NoError(t, err)
}

func TestPlaceOrderMissingProduct(t *testing.T) {
	svc, store := orderServiceFixture()

	req := placeRequest()
	req.ProductID = "GONE"
	_, err := svc.PlaceOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrProductMissing)
	assert.Zero(t, store.createCalls)
}

func TestOrderCreateUniqueness(t *testing.T) {
	svc, _ := orderServiceFixture()

	req := placeRequest()
	req.OrderID = "ORD1"
	_, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), req)
	assert.ErrorIs(t, err, repository.ErrItemExists)
}

func TestOrderUpdateStatus(t *testing.T) {
	svc, _ := orderServiceFixture()

	req := placeRequest()
	req.OrderID = "ORD1"
	_, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "ORD1", map[string]any{"order_status": "shipped"})
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.OrderStatus)
}

func TestOrderUpdateNoOp(t *testing.T) {
	svc, store := orderServiceFixture()

	req := placeRequest()
	req.OrderID = "ORD1"
	_, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "ORD1", map[string]any{"contact_number": "000"})
	assert.ErrorIs(t, err, ErrNoValidFields)
	assert.Zero(t, store.updateCalls)
}

func TestOrderDeleteRequiresExistence(t *testing.T) {
	svc, _ := orderServiceFixture()
	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}
