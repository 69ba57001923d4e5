package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/events"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/handler"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/queue"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/service"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/storage"
	"github.com/cloud-wave-best-zizon/catalog-service/pkg/config"
	"github.com/cloud-wave-best-zizon/catalog-service/pkg/middleware"
	pkgtls "github.com/cloud-wave-best-zizon/catalog-service/pkg/tls"
	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	dynamoClient, err := repository.NewDynamoDBClient(cfg)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client:", err)
	}

	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		log.Fatal("Failed to create S3 client:", err)
	}
	imageBucket := storage.NewBucket(s3Client, cfg.ImageBucketName)
	batchBucket := storage.NewBucket(s3Client, cfg.BatchBucketName)

	var productQueue *queue.Queue
	if cfg.QueueURL != "" {
		sqsClient, err := queue.NewSQSClient(cfg)
		if err != nil {
			log.Fatal("Failed to create SQS client:", err)
		}
		productQueue = queue.NewQueue(sqsClient, cfg.QueueURL, logger)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.EventTopic, cfg.EventSource, cfg.EventBusName, logger)
	defer producer.Close()

	productStore := repository.NewStore(dynamoClient, cfg.ProductTableName, "product_id")
	orderStore := repository.NewStore(dynamoClient, cfg.OrderTableName, "order_id")
	inventoryStore := repository.NewStore(dynamoClient, cfg.InventoryTableName, "product_id")

	var queuePublisher service.QueuePublisher
	if productQueue != nil {
		queuePublisher = productQueue
	}
	productService := service.NewProductService(productStore, queuePublisher, producer, imageBucket, logger)
	orderService := service.NewOrderService(orderStore, productService, logger)
	inventoryService := service.NewInventoryService(inventoryStore, productService, producer, logger)
	batchService := service.NewBatchService(productService, batchBucket, logger)

	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, logger)
	batchHandler := handler.NewBatchHandler(batchService, logger)

	// Drains product-created queue messages into CSV archives.
	var exporter *queue.Exporter
	if cfg.ExporterEnabled && productQueue != nil {
		exporter = queue.NewExporter(productQueue, batchBucket, logger)
		exporter.Start()
		defer exporter.Stop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, domain.Fail(http.StatusMethodNotAllowed, "Method Not Allowed"))
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/products", productHandler.Create)
		v1.GET("/products", productHandler.GetAll)
		v1.GET("/products/:id", productHandler.Get)
		v1.PUT("/products/:id", productHandler.Update)
		v1.DELETE("/products/:id", productHandler.Delete)
		v1.GET("/products/search/:name", productHandler.Search)
		v1.POST("/products/batch/import", batchHandler.Import)
		v1.POST("/products/batch/delete", batchHandler.Delete)

		v1.POST("/orders", orderHandler.Place)
		v1.GET("/orders", orderHandler.GetAll)
		v1.GET("/orders/:id", orderHandler.Get)
		v1.PUT("/orders/:id", orderHandler.Update)
		v1.DELETE("/orders/:id", orderHandler.Delete)

		v1.POST("/add_stocks", inventoryHandler.AddStocks)
		v1.GET("/inventory/:product_id", inventoryHandler.Query)
		v1.POST("/inventory/:product_id/apply", inventoryHandler.ApplyDelta)
		v1.DELETE("/inventory/:product_id", inventoryHandler.DeleteForProduct)

		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy"})
		})
	}

	var tlsCfg pkgtls.TLSConfig
	if err := envconfig.Process("", &tlsCfg); err != nil {
		log.Fatal("Failed to load TLS config:", err)
	}
	tlsConfig, err := pkgtls.LoadTLSConfig(&tlsCfg, logger)
	if err != nil {
		log.Fatal("Failed to load TLS config:", err)
	}

	srv := &http.Server{
		Addr:      ":" + cfg.Port,
		Handler:   router,
		TLSConfig: tlsConfig,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port))
		var err error
		if tlsConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
