package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/striming/videos-ms-go/internal/cache"
	"github.com/striming/videos-ms-go/internal/config"
	"github.com/striming/videos-ms-go/internal/db"
	"github.com/striming/videos-ms-go/internal/guard"
	"github.com/striming/videos-ms-go/internal/handler/api"
	"github.com/striming/videos-ms-go/internal/logger"
	cMiddleware "github.com/striming/videos-ms-go/internal/middleware"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/renderer"
	"github.com/striming/videos-ms-go/internal/repository/mariadb"
	"github.com/striming/videos-ms-go/internal/storage"
	"github.com/striming/videos-ms-go/internal/task"
	"github.com/striming/videos-ms-go/internal/usecase/catalog"
	"github.com/striming/videos-ms-go/internal/usecase/streaming"
	msuuid "github.com/striming/videos-ms-go/internal/uuid"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter()

	strg := initStorage(ctx, cfg)
	initBucket(ctx, strg)

	assetRepo := mariadb.NewAssetRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	var g port.AccessGuard
	if cfg.JWTSecret != "" {
		g = guard.NewJWTGuard(cfg.JWTSecret)
		logger.Info(ctx, "✅  JWT authentication enabled")
	} else {
		logger.Warn(ctx, "⚠️  JWT_SECRET not configured — authentication is disabled")
	}

	listAssetsSvc := catalog.NewAssetLister(assetRepo)
	r.Get("/assets", api.ListAssetsHandler(listAssetsSvc))

	trendingSvc := catalog.NewTrendingLister(assetRepo)
	r.Get("/assets/trending", api.ListTrendingHandler(trendingSvc))

	categoriesSvc := catalog.NewCategoryLister(assetRepo)
	r.Get("/assets/categories", api.ListCategoriesHandler(categoriesSvc))

	getAssetSvc := catalog.NewAssetGetter(assetRepo)
	r.With(cMiddleware.WithAssetID()).
		Get("/assets/{id}", api.GetAssetHandler(getAssetSvc))

	createAssetSvc := catalog.NewAssetCreator(assetRepo, msuuid.NewUUID)
	r.With(cMiddleware.WithAuth(g), cMiddleware.WithRole(guard.RoleAdmin)).
		Post("/assets", api.CreateAssetHandler(createAssetSvc))

	uploadVariantSvc := catalog.NewVariantUploader(assetRepo, strg, ca, dispatcher, msuuid.NewUUID)
	r.With(cMiddleware.WithAuth(g), cMiddleware.WithRole(guard.RoleAdmin), cMiddleware.WithAssetID(), cMiddleware.WithQuality()).
		Post("/assets/{id}/variants/{quality}", api.UploadVariantHandler(uploadVariantSvc))

	manifestSvc := catalog.NewManifestGetter(assetRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca, cfg.ManifestCacheTTL)
	r.With(cMiddleware.WithAssetID(), cMiddleware.WithAssetAuth(g)).
		Get("/assets/{id}/manifest", api.GetManifestHandler(rendererSvc, manifestSvc))

	streamInfoSvc := catalog.NewStreamInfoGetter(assetRepo)
	r.With(cMiddleware.WithAssetID(), cMiddleware.WithAssetAuth(g)).
		Get("/assets/{id}/stream-info", api.GetStreamInfoHandler(streamInfoSvc))

	streamerSvc := streaming.NewStreamer(assetRepo, strg, g, cfg.ForceContentType)
	r.With(cMiddleware.WithAuth(g), cMiddleware.WithVariantRef()).
		Get("/stream/{ref}", api.StreamVariantHandler(streamerSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.BlobStore {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.Bucket,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(ctx context.Context, strg port.BlobStore) {
	if err := strg.InitBucket(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket: %v", err)
		os.Exit(1)
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
