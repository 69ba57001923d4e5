package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port               string `envconfig:"PORT" default:"8080"`
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-2"`
	ProductTableName   string `envconfig:"PRODUCT_TABLE_NAME" default:"products-table"`
	OrderTableName     string `envconfig:"ORDER_TABLE_NAME" default:"orders-table"`
	InventoryTableName string `envconfig:"INVENTORY_TABLE_NAME" default:"inventory-table"`
	ImageBucketName    string `envconfig:"IMAGE_BUCKET_NAME" default:"product-images"`
	BatchBucketName    string `envconfig:"BATCH_BUCKET_NAME" default:"product-batches"`
	QueueURL           string `envconfig:"SQS_QUEUE_URL" default:""`
	KafkaBrokers       string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	EventTopic         string `envconfig:"EVENT_TOPIC" default:"catalog-events"`
	EventSource        string `envconfig:"EVENT_SOURCE" default:"catalog-service"`
	EventBusName       string `envconfig:"EVENT_BUS_NAME" default:"catalog-bus"`
	ExporterEnabled    bool   `envconfig:"EXPORTER_ENABLED" default:"true"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	// .env is optional; environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
