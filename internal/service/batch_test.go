package service

import (
	"context"
	"testing"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func batchFixture() (*BatchService, *ProductService, *fakeStore, *fakeBucket) {
	store := newFakeStore("product_id")
	products := NewProductService(store, nil, nil, nil, zap.NewNop())
	bucket := newFakeBucket()
	batch := NewBatchService(products, bucket, zap.NewNop())
	return batch, products, store, bucket
}

func TestImportProducts(t *testing.T) {
	batch, products, _, bucket := batchFixture()

	bucket.objects["for_create.csv"] = "product_id,product_name,category,price,quantity,brand_name\n" +
		"CPU001,Ryzen 7 7800X3D,cpu,449.99,10,AMD\n" +
		"GPU001,RTX 4070,gpu,599.99,4,NVIDIA\n"

	created, err := batch.ImportProducts(context.Background(), "for_create.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	p, err := products.Get(context.Background(), "GPU001")
	require.NoError(t, err)
	assert.Equal(t, 599.99, p.Price)
	assert.Equal(t, 4.0, p.Quantity)
}

func TestImportProductsSkipsBadAndDuplicateRows(t *testing.T) {
	batch, _, _, bucket := batchFixture()

	bucket.objects["for_create.csv"] = "product_id,product_name,category,price,quantity\n" +
		"CPU001,Ryzen 7 7800X3D,cpu,449.99,10\n" +
		"CPU001,duplicate key,cpu,1.00,1\n" +
		"BAD001,Broken,cpu,not-a-price,1\n" +
		"NEG001,Negative,cpu,-5,1\n"

	created, err := batch.ImportProducts(context.Background(), "for_create.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, created, "duplicates and invalid rows are skipped, not fatal")
}

func TestImportProductsMissingObject(t *testing.T) {
	batch, _, _, _ := batchFixture()

	_, err := batch.ImportProducts(context.Background(), "nope.csv")
	assert.Error(t, err)
}

func TestDeleteProducts(t *testing.T) {
	batch, products, _, bucket := batchFixture()

	_, err := products.Create(context.Background(), domain.CreateProductRequest{
		ProductID:   "CPU001",
		ProductName: "Ryzen 7 7800X3D",
		Category:    "cpu",
		Price:       449.99,
		Quantity:    10,
	})
	require.NoError(t, err)

	bucket.objects["for_delete.csv"] = "product_id\nCPU001\nMISSING\n"

	deleted, err := batch.DeleteProducts(context.Background(), "for_delete.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted, "rows for absent products are skipped")

	all, err := products.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
