package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/events"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/validate"
	"go.uber.org/zap"
)

// ProductStock is the product read/update surface the stock-total flow needs;
// satisfied by *ProductService.
type ProductStock interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Update(ctx context.Context, productID string, fields map[string]any) (*domain.Product, error)
}

// InventoryService records stock movements. Every movement is a new entry
// keyed (product_id, datetime); the running total on the product is updated by
// ApplyStockDelta, a separate non-atomic flow.
type InventoryService struct {
	store    RecordStore
	products ProductStock
	events   EventPublisher
	logger   *zap.Logger
	now      func() time.Time
}

func NewInventoryService(store RecordStore, products ProductStock, eventBus EventPublisher, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		store:    store,
		products: products,
		events:   eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// AddStocks writes a new movement entry and publishes stocks_added on success.
func (s *InventoryService) AddStocks(ctx context.Context, req domain.AddStocksRequest) (*domain.InventoryEntry, error) {
	entry := &domain.InventoryEntry{
		ProductID: req.ProductID,
		Datetime:  s.now().Format(validate.DatetimeLayout),
		Quantity:  req.Quantity,
		Remarks:   req.Remarks,
	}
	if err := validate.InventoryEntry(entry); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, entry); err != nil {
		if err != repository.ErrItemExists {
			s.logger.Error("Failed to save inventory entry",
				zap.String("product_id", entry.ProductID),
				zap.Error(err))
		}
		return nil, err
	}

	if s.events != nil {
		payload, _ := json.Marshal(entry)
		if err := s.events.Publish(ctx, events.StocksAdded, string(payload)); err != nil {
			s.logger.Error("Failed to publish stocks_added",
				zap.String("product_id", entry.ProductID),
				zap.Error(err))
		}
	}

	s.logger.Info("Stocks added",
		zap.String("product_id", entry.ProductID),
		zap.Int("quantity", entry.Quantity))

	return entry, nil
}

// QueryByProduct returns every movement entry for one product, ordered by the
// datetime sort key.
func (s *InventoryService) QueryByProduct(ctx context.Context, productID string) ([]domain.InventoryEntry, error) {
	var entries []domain.InventoryEntry
	if err := s.store.QueryByPartition(ctx, productID, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteForProduct removes every movement entry of one product, typically in
// response to the product itself being deleted. Returns how many entries were
// removed.
func (s *InventoryService) DeleteForProduct(ctx context.Context, productID string) (int, error) {
	entries, err := s.QueryByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, entry := range entries {
		key := repository.Key{"product_id": entry.ProductID, "datetime": entry.Datetime}
		if err := s.store.Delete(ctx, key); err != nil {
			return deleted, err
		}
		deleted++
	}

	s.logger.Info("Inventory entries deleted",
		zap.String("product_id", productID),
		zap.Int("count", deleted))

	return deleted, nil
}

// ApplyStockDelta adds a signed movement quantity to the product's running
// total. Read-add-write with no concurrency control and no link back to which
// entries were already applied; concurrent deltas can double-count. Accepted
// limitation of this flow.
func (s *InventoryService) ApplyStockDelta(ctx context.Context, productID string, delta int) (*domain.Product, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	sum := int(product.Quantity) + delta
	updated, err := s.products.Update(ctx, productID, map[string]any{"quantity": sum})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock total updated",
		zap.String("product_id", productID),
		zap.Int("delta", delta),
		zap.Int("total", sum))

	return updated, nil
}
