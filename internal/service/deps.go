package service

import (
	"context"
	"errors"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/validate"
)

var (
	// ErrNoValidFields means a partial update carried no recognized field;
	// nothing was sent to the store.
	ErrNoValidFields = errors.New("no valid fields to update")
	// ErrProductMissing means an order referenced a product that is not in the
	// catalog.
	ErrProductMissing = errors.New("product does not exist")
	// ErrInsufficientStock means the requested quantity exceeds current stock.
	ErrInsufficientStock = errors.New("quantity is greater than current stock")
)

// RecordStore is the conditional-write store surface; satisfied by
// *repository.Store.
type RecordStore interface {
	Exists(ctx context.Context, key repository.Key) (bool, error)
	Create(ctx context.Context, record any) error
	Get(ctx context.Context, key repository.Key, out any) error
	GetAll(ctx context.Context, out any) error
	QueryByPartition(ctx context.Context, value string, out any) error
	Update(ctx context.Context, key repository.Key, set []validate.Field, out any) error
	Delete(ctx context.Context, key repository.Key) error
}

// QueuePublisher posts a message body; satisfied by *queue.Queue.
type QueuePublisher interface {
	Send(ctx context.Context, body string) error
}

// EventPublisher posts a named event to the bus; satisfied by *events.Producer.
type EventPublisher interface {
	Publish(ctx context.Context, eventName, payload string) error
}

// ObjectStore moves files to and from object storage; satisfied by
// *storage.Bucket.
type ObjectStore interface {
	Upload(ctx context.Context, localPath, key string) error
	Download(ctx context.Context, key, localPath string) error
}
