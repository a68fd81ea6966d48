package main

import (
	"context"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/etaubman/annotations/internal/cache"
	"github.com/etaubman/annotations/internal/config"
	"github.com/etaubman/annotations/internal/database"
	"github.com/etaubman/annotations/internal/database/schema"
	handlers "github.com/etaubman/annotations/internal/http/handler"
	"github.com/etaubman/annotations/internal/http/middleware"
	"github.com/etaubman/annotations/internal/otel"
	"github.com/etaubman/annotations/internal/repository/sqldb"
	"github.com/etaubman/annotations/internal/seed"
	"github.com/etaubman/annotations/internal/service"
	"github.com/etaubman/annotations/internal/storage"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize tracing; degrades to a noop provider when the collector
	// is unreachable or the SDK is disabled
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize tracing")
	}
	defer shutdownTracing(ctx)

	// Open the database; driver is selected from the URL scheme
	// (postgres:// for PostgreSQL, a plain path for SQLite)
	db, err := database.Open(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	// Startup wipes and recreates the schema, then reseeds the
	// reference data. All documents and annotations are ephemeral
	// across restarts.
	if err := schema.Reset(ctx, db, database.DriverFor(cfg.Database.URL)); err != nil {
		logrus.WithError(err).Fatal("failed to reset schema")
	}

	// Object storage: local disk by default, S3-compatible when configured
	var objStore storage.Storage
	switch cfg.Storage.Backend {
	case "s3":
		objStore, err = storage.NewMinIO(cfg.Storage)
	default:
		objStore, err = storage.NewLocal(cfg.Storage.UploadDir)
	}
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize object storage")
	}

	// Document type listing cache: Redis when configured, noop otherwise
	typeCache := cache.NewNoop()
	if cfg.Redis.Addr != "" {
		typeCache, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, continuing without cache")
			typeCache = cache.NewNoop()
		}
	}

	// Initialize repositories and services
	docRepo := sqldb.NewDocumentSQL(db)
	annRepo := sqldb.NewAnnotationSQL(db)
	typeRepo := sqldb.NewDocumentTypeSQL(db)

	docSvc := service.NewDocumentService(objStore, docRepo)
	annSvc := service.NewAnnotationService(annRepo)
	typeSvc := service.NewDocumentTypeService(typeRepo, typeCache)

	// Seed document types, data elements and their associations
	if err := seed.Run(ctx, typeSvc); err != nil {
		logrus.WithError(err).Fatal("failed to seed reference data")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(cors.New())
	app.Use(otelfiber.Middleware())

	// Prometheus request metrics with a dedicated registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to register metrics")
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, docSvc, annSvc, typeSvc, objStore)

	// Swagger UI backed by the static OpenAPI document
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL: "/openapi.yaml",
	}))

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
