package main

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	natsadapter "github.com/AnDrELuIzzz/RealStateNeeds/internal/adapter/messaging/nats"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/adapter/repository/cache"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/adapter/repository/memory"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/adapter/repository/mongodb"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/adapter/storage/s3"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/config"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/csvimport"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/export"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/generator"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/geolocation"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/mailer"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/tracer"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/filter"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/observer"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/strategy"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/usecase"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewLogger()

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		tp := tracer.InitTracer()
		defer tp.Shutdown(ctx)
	}

	// Pick the repository backing the catalog
	var repo domain.PropertyRepository
	if cfg.Repository == "mongodb" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect(ctx)
		repo = mongodb.NewPropertyRepository(mongoClient.Database(cfg.MongoDatabase))
		appLogger.Info("main: using MongoDB repository", "database", cfg.MongoDatabase)
	} else {
		repo = memory.NewPropertyRepository()
		appLogger.Info("main: using in-memory repository")
	}

	// Cache-aside layer in front of the repository, when Redis is reachable
	if propertyCache, err := cache.NewPropertyCache(cfg.RedisAddress); err != nil {
		appLogger.Warn("main: Redis unavailable, property cache disabled", "error", err.Error())
	} else {
		defer propertyCache.Close()
		repo = cache.NewCachedPropertyRepository(repo, propertyCache, appLogger)
	}

	catalog := usecase.NewPropertyUsecase(repo, appLogger)

	// Audit trail is always on
	catalog.Subscribe(observer.NewAuditListener(appLogger))

	// Best-effort collaborators: messaging, mail
	if publisher, err := natsadapter.NewPublisher(cfg.NATSURL); err != nil {
		appLogger.Warn("main: NATS unavailable, event publishing disabled", "error", err.Error())
	} else {
		defer publisher.Close()
		catalog.Subscribe(natsadapter.NewEventListener(publisher, appLogger))
	}

	if cfg.AuditEmail != "" && cfg.SMTPEmail != "" {
		m := mailer.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
		catalog.Subscribe(mailer.NewMailListener(m, cfg.AuditEmail, appLogger))
	}

	seedCatalog(ctx, cfg, appLogger, catalog)

	runQueries(ctx, appLogger, catalog)

	exportReport(ctx, cfg, appLogger, catalog)
}

// seedCatalog fills the catalog either from a CSV file or from random
// generation. Out-of-range prices are silently refused by the catalog.
func seedCatalog(ctx context.Context, cfg *config.Config, appLogger *logger.Logger, catalog *usecase.PropertyUsecase) {
	gen := generator.NewPropertyGenerator(cfg.Neighborhood, int64(os.Getpid()))

	var properties []*domain.Property
	if cfg.CSVPath != "" {
		reader := csvimport.NewReader(cfg.Neighborhood, appLogger)
		records, err := reader.ReadFile(cfg.CSVPath)
		if err != nil {
			log.Fatalf("Failed to read CSV seed file: %v", err)
		}
		validator := geolocation.NewValidator(cfg.NominatimURL, cfg.Neighborhood, cfg.NominatimDelay, appLogger)
		for _, record := range records {
			exists, err := validator.StreetExists(ctx, record.Street)
			if err != nil {
				appLogger.Warn("main: street validation failed, keeping record",
					"street", record.Street, "error", err.Error())
			} else if !exists {
				appLogger.Warn("main: street not found in neighborhood, skipping record",
					"street", record.Street)
				continue
			}
			properties = append(properties, gen.ExpandRecord(record, cfg.SeedCount)...)
		}
	} else {
		properties = gen.Generate(cfg.SeedCount)
	}

	for _, p := range properties {
		catalog.AddProperty(ctx, p)
	}
	appLogger.Info("main: catalog seeded", "count", catalog.PropertyCount(ctx))
}

func runQueries(ctx context.Context, appLogger *logger.Logger, catalog *usecase.PropertyUsecase) {
	affordable := filter.NewPriceRangeFilter(domain.MinValidPrice, 10000)
	appLogger.Info("main: filtered catalog",
		"filter", affordable.Description(),
		"matches", len(catalog.FilterProperties(ctx, affordable)))

	combined := filter.NewCompositeFilter(filter.Or,
		filter.NewPriceRangeFilter(11000, domain.MaxValidPrice),
		filter.NewStreetFilter("Rua Bom Pastor"),
	)
	byPrice := strategy.NewPriceSortStrategy(strategy.Ascending)
	results := catalog.FilterAndSort(ctx, combined, byPrice)
	appLogger.Info("main: filtered and sorted catalog",
		"filter", combined.Description(),
		"strategy", byPrice.Description(),
		"matches", len(results))

	// Exercise the notification path on the cheapest match, if any
	if len(results) > 0 {
		target := results[0]
		catalog.UpdatePropertyPrice(ctx, target, target.Price+100)
	}
}

func exportReport(ctx context.Context, cfg *config.Config, appLogger *logger.Logger, catalog *usecase.PropertyUsecase) {
	byAddress := strategy.NewAddressSortStrategy(strategy.Ascending)
	snapshot := catalog.SortProperties(ctx, byAddress)

	exporter := export.NewExporter()
	if err := exporter.WriteFile(cfg.ExportPath, "Property Catalog Report", snapshot); err != nil {
		appLogger.Error("main: failed to write report file", "path", cfg.ExportPath, "error", err.Error())
	} else {
		appLogger.Info("main: report written", "path", cfg.ExportPath)
	}

	storage, err := s3.NewS3Storage(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, appLogger)
	if err != nil {
		appLogger.Warn("main: MinIO unavailable, skipping report upload", "error", err.Error())
		return
	}
	url, err := storage.UploadReport(ctx, exporter.Render("Property Catalog Report", snapshot))
	if err != nil {
		appLogger.Error("main: failed to upload report", "error", err.Error())
		return
	}
	appLogger.Info("main: report uploaded", "url", url)
}
