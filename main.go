package main

import (
	"log"
	"os"
	"time"

	"canteen-pos/config"
	httpapi "canteen-pos/internal/api/http"
	"canteen-pos/internal/service"
	"canteen-pos/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var cache service.ReportCache
	if os.Getenv("REDIS_HOST") != "" {
		cache = storage.NewRedisCache(config.MustInitRedis(), time.Minute)
	}

	var publisher service.OrderPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("orders")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	qr := service.DefaultQRGenerator{BaseURL: config.QRBaseURL()}

	menuSvc := service.NewMenuService(repo)
	orderSvc := service.NewOrderService(repo, repo, publisher, qr, nil)
	reportSvc := service.NewReportService(repo, cache)

	handler := httpapi.NewHandler(menuSvc, orderSvc, reportSvc)
	httpapi.StartServer(config.ListenAddr(), httpapi.NewRouter(handler))
}
