package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/validate"
	"go.uber.org/zap"
)

// ProductReader is the product lookup PlaceOrder needs; satisfied by
// *ProductService.
type ProductReader interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
}

// OrderService orchestrates order CRUD plus the place-order flow. Placing an
// order does NOT decrement product stock; that runs as a separate inventory
// flow.
type OrderService struct {
	store    RecordStore
	products ProductReader
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrderService(store RecordStore, products ProductReader, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:    store,
		products: products,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *OrderService) key(orderID string) repository.Key {
	return repository.Key{"order_id": orderID}
}

// PlaceOrder checks the referenced product and its stock, fills in the parts
// the caller left out (order id, datetime, total price, status) and creates
// the order. The stock check is a read-side guard only; it is not atomic with
// the order write.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (*domain.Order, error) {
	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrProductMissing
		}
		return nil, err
	}

	if float64(req.Quantity) > product.Quantity {
		return nil, ErrInsufficientStock
	}

	totalPrice := req.TotalPrice
	if totalPrice == 0 {
		totalPrice = float64(req.Quantity) * product.Price
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = fmt.Sprintf("ORD%d", s.now().UnixMilli())
	}

	productName := req.ProductName
	if productName == "" {
		productName = product.ProductName
	}

	order := &domain.Order{
		OrderID:       orderID,
		ProductID:     req.ProductID,
		UserID:        req.UserID,
		ProductName:   productName,
		Datetime:      s.now().Format(validate.DatetimeLayout),
		ContactNumber: req.ContactNumber,
		Quantity:      req.Quantity,
		TotalPrice:    totalPrice,
		OrderStatus:   domain.OrderStatusPending,
	}

	if err := s.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Create validates the full order and writes it conditioned on the id being
// absent.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if err := validate.Order(order); err != nil {
		return err
	}

	if err := s.store.Create(ctx, order); err != nil {
		if err != repository.ErrItemExists {
			s.logger.Error("Failed to save order",
				zap.String("order_id", order.OrderID),
				zap.Error(err))
		}
		return err
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.OrderID),
		zap.String("product_id", order.ProductID),
		zap.Int("quantity", order.Quantity))

	return nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := s.store.Get(ctx, s.key(orderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) GetAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.store.GetAll(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Update applies a partial update; order_status is the usual field. An empty
// field set short-circuits before any store call.
func (s *OrderService) Update(ctx context.Context, orderID string, fields map[string]any) (*domain.Order, error) {
	if err := validate.Update(orderID, fields); err != nil {
		return nil, err
	}

	set := validate.UpdateSet(fields)
	if len(set) == 0 {
		return nil, ErrNoValidFields
	}

	var updated domain.Order
	if err := s.store.Update(ctx, s.key(orderID), set, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Order updated", zap.String("order_id", orderID))
	return &updated, nil
}

func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	if err := s.store.Delete(ctx, s.key(orderID)); err != nil {
		return err
	}
	s.logger.Info("Order deleted", zap.String("order_id", orderID))
	return nil
}
