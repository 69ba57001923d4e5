package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/events"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/validate"
	"go.uber.org/zap"
)

// ProductService orchestrates product CRUD against the store and fires the
// post-commit notifications. Notifications and the image upload are
// best-effort: a failure after the record is written is logged, never rolled
// back.
type ProductService struct {
	store  RecordStore
	queue  QueuePublisher
	events EventPublisher
	images ObjectStore
	logger *zap.Logger
}

func NewProductService(store RecordStore, queue QueuePublisher, eventBus EventPublisher, images ObjectStore, logger *zap.Logger) *ProductService {
	return &ProductService{
		store:  store,
		queue:  queue,
		events: eventBus,
		images: images,
		logger: logger,
	}
}

func (s *ProductService) key(productID string) repository.Key {
	return repository.Key{"product_id": productID}
}

// Create validates the full record and writes it conditioned on the id being
// absent. On success it uploads the product image (when one was supplied),
// sends the record to the queue and publishes product_added on the bus.
func (s *ProductService) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	product := req.Product()
	if err := validate.Product(product); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, product); err != nil {
		if err != repository.ErrItemExists {
			s.logger.Error("Failed to save product",
				zap.String("product_id", product.ProductID),
				zap.Error(err))
		}
		return nil, err
	}

	if product.ImagePath != "" && s.images != nil {
		if err := s.images.Upload(ctx, product.ImagePath, product.ProductID); err != nil {
			s.logger.Error("Failed to upload product image",
				zap.String("product_id", product.ProductID),
				zap.Error(err))
		}
	}

	payload, _ := json.Marshal(product)
	if s.queue != nil {
		if err := s.queue.Send(ctx, string(payload)); err != nil {
			s.logger.Error("Failed to send product-created message",
				zap.String("product_id", product.ProductID),
				zap.Error(err))
		}
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, events.ProductAdded, string(payload)); err != nil {
			s.logger.Error("Failed to publish product_added",
				zap.String("product_id", product.ProductID),
				zap.Error(err))
		}
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ProductID),
		zap.Float64("initial_quantity", product.Quantity))

	return product, nil
}

func (s *ProductService) Get(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	if err := s.store.Get(ctx, s.key(productID), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.store.GetAll(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SearchByName filters the full scan by case-insensitive substring match.
func (s *ProductService) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	products, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	matched := make([]domain.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.ProductName), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Update applies a partial update. Unrecognized or absent fields are skipped;
// an empty field set short-circuits with ErrNoValidFields before any store
// call.
func (s *ProductService) Update(ctx context.Context, productID string, fields map[string]any) (*domain.Product, error) {
	if err := validate.Update(productID, fields); err != nil {
		return nil, err
	}

	set := validate.UpdateSet(fields)
	if len(set) == 0 {
		return nil, ErrNoValidFields
	}

	var updated domain.Product
	if err := s.store.Update(ctx, s.key(productID), set, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Product updated",
		zap.String("product_id", productID),
		zap.Int("fields", len(set)))

	return &updated, nil
}

// Delete removes the product and publishes product_delete carrying the id
// only; the full record is already gone.
func (s *ProductService) Delete(ctx context.Context, productID string) error {
	if err := s.store.Delete(ctx, s.key(productID)); err != nil {
		return err
	}

	if s.events != nil {
		payload, _ := json.Marshal(map[string]string{"product_id": productID})
		if err := s.events.Publish(ctx, events.ProductDelete, string(payload)); err != nil {
			s.logger.Error("Failed to publish product_delete",
				zap.String("product_id", productID),
				zap.Error(err))
		}
	}

	s.logger.Info("Product deleted", zap.String("product_id", productID))
	return nil
}
