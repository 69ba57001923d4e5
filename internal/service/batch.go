package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"go.uber.org/zap"
)

// ProductWriter is the product surface the batch flows need; satisfied by
// *ProductService.
type ProductWriter interface {
	Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
}

// BatchService runs the CSV bulk flows: an uploaded CSV object drives a
// per-row create or delete. Rows are independent; a failed row is logged and
// skipped, the rest of the file still runs.
type BatchService struct {
	products ProductWriter
	bucket   ObjectStore
	logger   *zap.Logger
}

func NewBatchService(products ProductWriter, bucket ObjectStore, logger *zap.Logger) *BatchService {
	return &BatchService{
		products: products,
		bucket:   bucket,
		logger:   logger,
	}
}

func (s *BatchService) downloadCSV(ctx context.Context, key string) ([][]string, error) {
	localPath := filepath.Join(os.TempDir(), "batch_"+filepath.Base(key))
	if err := s.bucket.Download(ctx, key, localPath); err != nil {
		return nil, err
	}
	defer os.Remove(localPath)

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}

// header row -> column index lookup
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// ImportProducts creates one product per CSV row. The first row is the
// header: product_id, product_name, price, quantity and optionally brand_name.
// Returns how many rows were created.
func (s *BatchService) ImportProducts(ctx context.Context, key string) (int, error) {
	records, err := s.downloadCSV(ctx, key)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	idx := columnIndex(records[0])
	created := 0
	for _, row := range records[1:] {
		price, err := strconv.ParseFloat(field(row, idx, "price"), 64)
		if err != nil {
			s.logger.Error("Skipping row with bad price", zap.Strings("row", row))
			continue
		}
		quantity, err := strconv.ParseFloat(field(row, idx, "quantity"), 64)
		if err != nil {
			s.logger.Error("Skipping row with bad quantity", zap.Strings("row", row))
			continue
		}

		req := domain.CreateProductRequest{
			ProductID:   field(row, idx, "product_id"),
			ProductName: field(row, idx, "product_name"),
			Category:    field(row, idx, "category"),
			BrandName:   field(row, idx, "brand_name"),
			Price:       price,
			Quantity:    quantity,
		}
		if _, err := s.products.Create(ctx, req); err != nil {
			s.logger.Error("Failed to create product from row",
				zap.String("product_id", req.ProductID),
				zap.Error(err))
			continue
		}
		created++
	}

	s.logger.Info("Batch import finished",
		zap.String("object", key),
		zap.Int("created", created))

	return created, nil
}

// DeleteProducts deletes one product per CSV row, matched by the product_id
// column. Returns how many rows were deleted.
func (s *BatchService) DeleteProducts(ctx context.Context, key string) (int, error) {
	records, err := s.downloadCSV(ctx, key)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	idx := columnIndex(records[0])
	deleted := 0
	for _, row := range records[1:] {
		productID := field(row, idx, "product_id")
		if productID == "" {
			continue
		}
		if err := s.products.Delete(ctx, productID); err != nil {
			s.logger.Error("Failed to delete product from row",
				zap.String("product_id", productID),
				zap.Error(err))
			continue
		}
		deleted++
	}

	s.logger.Info("Batch delete finished",
		zap.String("object", key),
		zap.Int("deleted", deleted))

	return deleted, nil
}
