package queue

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"go.uber.org/zap"
)

// Receiver drains messages; satisfied by *Queue.
type Receiver interface {
	Receive(ctx context.Context, max int32, waitSeconds int32) ([]Message, error)
	Delete(ctx context.Context, receiptHandle string) error
}

// Uploader ships a local file to object storage; satisfied by *storage.Bucket.
type Uploader interface {
	Upload(ctx context.Context, localPath, key string) error
}

var csvHeader = []string{"product_id", "product_name", "price", "quantity", "brand_name"}

// Exporter drains product-created messages from the queue and archives each
// batch as a CSV object under a randomized key. Messages are deleted only
// after the upload succeeds, so a failed batch is re-delivered.
type Exporter struct {
	queue  Receiver
	bucket Uploader
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewExporter(queue Receiver, bucket Uploader, logger *zap.Logger) *Exporter {
	ctx, cancel := context.WithCancel(context.Background())
	return &Exporter{
		queue:  queue,
		bucket: bucket,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (e *Exporter) Start() {
	e.logger.Info("Queue exporter started")
	go e.run()
}

func (e *Exporter) run() {
	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Queue exporter stopped")
			return
		default:
			msgs, err := e.queue.Receive(e.ctx, 10, 5)
			if err != nil {
				e.logger.Error("Error receiving messages", zap.Error(err))
				continue
			}
			if len(msgs) == 0 {
				continue
			}
			if err := e.ExportBatch(e.ctx, msgs); err != nil {
				e.logger.Error("Error exporting batch", zap.Error(err))
			}
		}
	}
}

// ExportBatch writes one CSV from the message bodies and uploads it.
func (e *Exporter) ExportBatch(ctx context.Context, msgs []Message) error {
	objectName := fmt.Sprintf("product_created_%s.csv", generateCode("csv_", 8))
	localPath := filepath.Join(os.TempDir(), objectName)

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", localPath, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, msg := range msgs {
		var p domain.Product
		if err := json.Unmarshal([]byte(msg.Body), &p); err != nil {
			e.logger.Error("Skipping malformed message", zap.Error(err))
			continue
		}
		row := []string{
			p.ProductID,
			p.ProductName,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.FormatFloat(p.Quantity, 'f', -1, 64),
			p.BrandName,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", localPath, err)
	}
	defer os.Remove(localPath)

	if err := e.bucket.Upload(ctx, localPath, objectName); err != nil {
		return err
	}

	for _, msg := range msgs {
		if err := e.queue.Delete(ctx, msg.ReceiptHandle); err != nil {
			e.logger.Error("Failed to delete message", zap.Error(err))
		}
	}

	e.logger.Info("Batch exported",
		zap.String("object", objectName),
		zap.Int("messages", len(msgs)))

	return nil
}

func (e *Exporter) Stop() {
	e.cancel()
}

const codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func generateCode(prefix string, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeLetters[rand.Intn(len(codeLetters))]
	}
	return prefix + string(b)
}
